package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"diet-recommender/internal/domain/entity"
)

// treeDump is the on-disk model: XGBoost's JSON tree dump
// (Booster.get_dump(dump_format="json")) wrapped with the class count.
type treeDump struct {
	NumClass  int        `json:"num_class"`
	BaseScore *float64   `json:"base_score,omitempty"`
	Trees     []dumpNode `json:"trees"`
}

type dumpNode struct {
	NodeID         int        `json:"nodeid"`
	Split          string     `json:"split,omitempty"`
	SplitCondition float64    `json:"split_condition,omitempty"`
	Yes            int        `json:"yes,omitempty"`
	No             int        `json:"no,omitempty"`
	Missing        int        `json:"missing,omitempty"`
	Leaf           *float64   `json:"leaf,omitempty"`
	Children       []dumpNode `json:"children,omitempty"`
}

type node struct {
	leaf      bool
	value     float64
	feature   int
	threshold float32
	yes       int
	no        int
}

type tree []node

// TreeEnsemble evaluates a gradient boosted tree ensemble in process. With
// more than one class, tree t adds to the margin of class t mod numClass and
// the prediction is the arg max. With one output the prediction is 1 when the
// margin is positive.
type TreeEnsemble struct {
	numClass    int
	baseMargin  float64
	numFeatures int
	trees       []tree
}

// LoadTreeEnsembleFile reads a model from path. columns is the feature schema
// the model was trained on; split features are resolved against it.
func LoadTreeEnsembleFile(path string, columns []string) (*TreeEnsemble, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model %s: %w", path, err)
	}
	defer f.Close()

	return LoadTreeEnsemble(f, columns)
}

func LoadTreeEnsemble(r io.Reader, columns []string) (*TreeEnsemble, error) {
	var dump treeDump
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, fmt.Errorf("%w: decode model: %v", entity.ErrConfiguration, err)
	}
	if dump.NumClass < 1 {
		return nil, fmt.Errorf("%w: model num_class must be at least 1, got %d", entity.ErrConfiguration, dump.NumClass)
	}
	if len(dump.Trees) == 0 {
		return nil, fmt.Errorf("%w: model has no trees", entity.ErrConfiguration)
	}
	if len(dump.Trees)%dump.NumClass != 0 {
		return nil, fmt.Errorf("%w: %d trees do not divide into %d classes", entity.ErrConfiguration, len(dump.Trees), dump.NumClass)
	}

	index := make(map[string]int, len(columns))
	for i, col := range columns {
		index[col] = i
	}

	e := &TreeEnsemble{
		numClass:    dump.NumClass,
		numFeatures: len(columns),
		trees:       make([]tree, 0, len(dump.Trees)),
	}

	if dump.NumClass == 1 && dump.BaseScore != nil {
		p := *dump.BaseScore
		if p <= 0 || p >= 1 {
			return nil, fmt.Errorf("%w: base_score %v outside (0, 1)", entity.ErrConfiguration, p)
		}
		e.baseMargin = math.Log(p / (1 - p))
	}

	for i, root := range dump.Trees {
		t, err := compileTree(root, index, len(columns))
		if err != nil {
			return nil, fmt.Errorf("%w: tree %d: %v", entity.ErrConfiguration, i, err)
		}
		e.trees = append(e.trees, t)
	}

	return e, nil
}

// compileTree flattens a dump tree into a slice indexed by position, with
// child links rewritten from node ids to positions.
func compileTree(root dumpNode, index map[string]int, numFeatures int) (tree, error) {
	byID := make(map[int]dumpNode)
	stack := []dumpNode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, dup := byID[n.NodeID]; dup {
			return nil, fmt.Errorf("duplicate node id %d", n.NodeID)
		}
		byID[n.NodeID] = n
		stack = append(stack, n.Children...)
	}

	pos := make(map[int]int, len(byID))
	order := []int{root.NodeID}
	pos[root.NodeID] = 0
	for i := 0; i < len(order); i++ {
		n := byID[order[i]]
		for _, c := range n.Children {
			if _, seen := pos[c.NodeID]; !seen {
				pos[c.NodeID] = len(order)
				order = append(order, c.NodeID)
			}
		}
	}

	t := make(tree, len(order))
	for i, id := range order {
		n := byID[id]
		if n.Leaf != nil {
			t[i] = node{leaf: true, value: *n.Leaf}
			continue
		}

		feature, err := resolveFeature(n.Split, index, numFeatures)
		if err != nil {
			return nil, fmt.Errorf("node %d: %v", id, err)
		}
		yes, err := childPosition(n, n.Yes, pos)
		if err != nil {
			return nil, fmt.Errorf("node %d: yes branch: %v", id, err)
		}
		no, err := childPosition(n, n.No, pos)
		if err != nil {
			return nil, fmt.Errorf("node %d: no branch: %v", id, err)
		}
		// Children always sit after their parent, so eval only moves forward.
		if yes <= i || no <= i {
			return nil, fmt.Errorf("node %d: branch points back up the tree", id)
		}
		t[i] = node{
			feature:   feature,
			threshold: float32(n.SplitCondition),
			yes:       yes,
			no:        no,
		}
	}

	return t, nil
}

// childPosition resolves a branch target, which must be one of n's own
// children.
func childPosition(n dumpNode, target int, pos map[int]int) (int, error) {
	if len(n.Children) == 0 {
		return 0, fmt.Errorf("split node has no children")
	}
	for _, c := range n.Children {
		if c.NodeID == target {
			return pos[target], nil
		}
	}
	return 0, fmt.Errorf("target %d is not a child", target)
}

// resolveFeature accepts a schema column name or XGBoost's positional f<N>.
func resolveFeature(split string, index map[string]int, numFeatures int) (int, error) {
	if i, ok := index[split]; ok {
		return i, nil
	}
	if rest, ok := strings.CutPrefix(split, "f"); ok {
		if i, err := strconv.Atoi(rest); err == nil && i >= 0 && i < numFeatures {
			return i, nil
		}
	}
	return 0, fmt.Errorf("split feature %q is not in the feature schema", split)
}

// eval walks from the root to a leaf. compileTree guarantees every branch
// moves to a later position, so the walk ends.
func (t tree) eval(values []float64) float64 {
	i := 0
	for {
		n := t[i]
		if n.leaf {
			return n.value
		}
		// Features and thresholds are compared in float32, as XGBoost stores them.
		if float32(values[n.feature]) < n.threshold {
			i = n.yes
		} else {
			i = n.no
		}
	}
}

func (e *TreeEnsemble) NumClasses() int {
	if e.numClass == 1 {
		return 2
	}
	return e.numClass
}

// Margins returns the raw per-output sums of leaf values.
func (e *TreeEnsemble) Margins(vector *entity.FeatureVector) ([]float64, error) {
	if vector.Len() != e.numFeatures {
		return nil, fmt.Errorf("%w: vector has %d features, model expects %d", entity.ErrConfiguration, vector.Len(), e.numFeatures)
	}

	values := vector.Values()
	margins := make([]float64, e.numClass)
	for i := range margins {
		margins[i] = e.baseMargin
	}
	for i, t := range e.trees {
		margins[i%e.numClass] += t.eval(values)
	}
	return margins, nil
}

func (e *TreeEnsemble) Predict(ctx context.Context, vector *entity.FeatureVector) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	margins, err := e.Margins(vector)
	if err != nil {
		return 0, err
	}

	if e.numClass == 1 {
		if margins[0] > 0 {
			return 1, nil
		}
		return 0, nil
	}

	return argmax(margins), nil
}
