package entity

import orderedmap "github.com/wk8/go-ordered-map/v2"

// FeatureVector is an ordered column -> value mapping in the exact column
// order the classifier was trained on. Columns and Values have equal length.
type FeatureVector struct {
	columns []string
	values  []float64
	index   map[string]int
}

// NewFeatureVector returns a zeroed vector over columns. The index is shared
// with the caller and must not be modified.
func NewFeatureVector(columns []string, index map[string]int) *FeatureVector {
	return &FeatureVector{
		columns: columns,
		values:  make([]float64, len(columns)),
		index:   index,
	}
}

func (v *FeatureVector) Len() int {
	return len(v.columns)
}

// Columns returns a copy of the column names in order.
func (v *FeatureVector) Columns() []string {
	out := make([]string, len(v.columns))
	copy(out, v.columns)
	return out
}

// Values returns a copy of the values in column order.
func (v *FeatureVector) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)
	return out
}

// At returns the value at position i.
func (v *FeatureVector) At(i int) float64 {
	return v.values[i]
}

// Get returns the value of column name and whether the column exists.
func (v *FeatureVector) Get(name string) (float64, bool) {
	i, ok := v.index[name]
	if !ok {
		return 0, false
	}
	return v.values[i], true
}

// SetAt sets position i.
func (v *FeatureVector) SetAt(i int, value float64) {
	v.values[i] = value
}

// MarshalJSON encodes the vector as a JSON object whose keys keep column order.
func (v *FeatureVector) MarshalJSON() ([]byte, error) {
	om := orderedmap.New[string, float64](len(v.columns))
	for i, col := range v.columns {
		om.Set(col, v.values[i])
	}
	return om.MarshalJSON()
}
