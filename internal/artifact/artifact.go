// Package artifact loads the trained model's companion artifacts: the ordered
// feature schema and the label vocabulary. Both are read once at startup.
package artifact

import (
	"context"
	"fmt"
	"strings"

	"diet-recommender/internal/domain/entity"
)

// Artifacts are the read-only model companions.
type Artifacts struct {
	Columns []string
	Labels  []string
}

// Source yields artifacts from some backing store.
type Source interface {
	Load(ctx context.Context) (*Artifacts, error)
}

// Validate checks that the schema has no blank or repeated column and the
// vocabulary no blank label.
func (a *Artifacts) Validate() error {
	if len(a.Columns) == 0 {
		return fmt.Errorf("%w: feature schema is empty", entity.ErrConfiguration)
	}
	seen := make(map[string]int, len(a.Columns))
	for i, col := range a.Columns {
		if strings.TrimSpace(col) == "" {
			return fmt.Errorf("%w: feature column %d is blank", entity.ErrConfiguration, i)
		}
		if j, dup := seen[col]; dup {
			return fmt.Errorf("%w: feature column %q repeated at %d and %d", entity.ErrConfiguration, col, j, i)
		}
		seen[col] = i
	}

	if len(a.Labels) == 0 {
		return fmt.Errorf("%w: label vocabulary is empty", entity.ErrConfiguration)
	}
	for i, label := range a.Labels {
		if strings.TrimSpace(label) == "" {
			return fmt.Errorf("%w: label %d is blank", entity.ErrConfiguration, i)
		}
	}
	return nil
}

// FeatureColumns converts the schema to repository rows.
func (a *Artifacts) FeatureColumns() []entity.FeatureColumn {
	rows := make([]entity.FeatureColumn, len(a.Columns))
	for i, col := range a.Columns {
		rows[i] = entity.FeatureColumn{Position: i, Name: col}
	}
	return rows
}

// DietLabels converts the vocabulary to repository rows.
func (a *Artifacts) DietLabels() []entity.DietLabel {
	rows := make([]entity.DietLabel, len(a.Labels))
	for i, label := range a.Labels {
		rows[i] = entity.DietLabel{ClassIndex: i, Label: label}
	}
	return rows
}
