package service

import (
	"fmt"
	"strings"

	"diet-recommender/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// EncoderOptions control how schema gaps found at construction are treated.
type EncoderOptions struct {
	// StrictSchema fails construction when a numeric column is missing from
	// the schema. Otherwise the value is dropped and a warning is logged.
	StrictSchema bool

	// StrictCategories fails construction when an accepted categorical value
	// has no indicator column. Otherwise the indicator is dropped at encode time.
	StrictCategories bool
}

// SchemaReport lists what the schema cannot represent.
type SchemaReport struct {
	MissingNumeric     []string            `json:"missing_numeric"`
	UnmappedIndicators []UnmappedIndicator `json:"unmapped_indicators"`
}

// UnmappedIndicator is a (field, value) pair whose indicator column is absent.
type UnmappedIndicator struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Column string `json:"column"`
}

type numericSlot struct {
	pos    int
	column entity.NumericColumn
}

// FeatureEncoder maps a PatientInput and its DerivedMetrics onto the
// classifier's ordered column schema. It is immutable after construction and
// safe for concurrent use.
type FeatureEncoder struct {
	columns    []string
	index      map[string]int
	numeric    []numericSlot
	indicators map[string]map[string]int
	report     SchemaReport
	log        *logrus.Logger
}

// NewFeatureEncoder resolves every numeric column and every (field, value)
// indicator against columns once, so encoding never builds keys at runtime.
func NewFeatureEncoder(columns []string, opts EncoderOptions, log *logrus.Logger) (*FeatureEncoder, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: feature schema is empty", entity.ErrConfiguration)
	}

	e := &FeatureEncoder{
		columns:    make([]string, len(columns)),
		index:      make(map[string]int, len(columns)),
		indicators: make(map[string]map[string]int, len(entity.CategoricalFields)),
		log:        log,
	}
	copy(e.columns, columns)

	for i, col := range e.columns {
		if strings.TrimSpace(col) == "" {
			return nil, fmt.Errorf("%w: feature schema column %d is blank", entity.ErrConfiguration, i)
		}
		if prev, dup := e.index[col]; dup {
			return nil, fmt.Errorf("%w: feature schema column %q appears at %d and %d", entity.ErrConfiguration, col, prev, i)
		}
		e.index[col] = i
	}

	for _, nc := range entity.NumericColumns {
		pos, ok := e.index[nc.Name]
		if !ok {
			e.report.MissingNumeric = append(e.report.MissingNumeric, nc.Name)
			continue
		}
		e.numeric = append(e.numeric, numericSlot{pos: pos, column: nc})
	}

	for _, field := range entity.CategoricalFields {
		byValue := make(map[string]int, len(field.Values))
		for _, value := range field.Values {
			col := field.IndicatorColumn(value)
			pos, ok := e.index[col]
			if !ok {
				e.report.UnmappedIndicators = append(e.report.UnmappedIndicators, UnmappedIndicator{
					Field:  field.Name,
					Value:  value,
					Column: col,
				})
				continue
			}
			byValue[value] = pos
		}
		e.indicators[field.Name] = byValue
	}

	if len(e.report.MissingNumeric) > 0 {
		if opts.StrictSchema {
			return nil, fmt.Errorf("%w: feature schema lacks numeric columns %v", entity.ErrSchemaMismatch, e.report.MissingNumeric)
		}
		for _, name := range e.report.MissingNumeric {
			e.log.Warnf("Feature schema has no column %q; its value will not reach the classifier", name)
		}
	}

	if n := len(e.report.UnmappedIndicators); n > 0 {
		if opts.StrictCategories {
			return nil, fmt.Errorf("%w: %d categorical values have no indicator column, first is %q",
				entity.ErrConfiguration, n, e.report.UnmappedIndicators[0].Column)
		}
		for _, u := range e.report.UnmappedIndicators {
			e.log.Warnf("Feature schema has no indicator %q; %s=%q will set no flag", u.Column, u.Field, u.Value)
		}
	}

	return e, nil
}

// Columns returns the schema in order.
func (e *FeatureEncoder) Columns() []string {
	out := make([]string, len(e.columns))
	copy(out, e.columns)
	return out
}

// Report returns the gaps found when the encoder was built.
func (e *FeatureEncoder) Report() SchemaReport {
	return SchemaReport{
		MissingNumeric:     append([]string(nil), e.report.MissingNumeric...),
		UnmappedIndicators: append([]UnmappedIndicator(nil), e.report.UnmappedIndicators...),
	}
}

// Encode builds the feature vector: all columns zero, numeric columns set to
// their raw or derived value, and one indicator per categorical field set to 1
// when the schema has a column for the selected value.
func (e *FeatureEncoder) Encode(in *entity.PatientInput, metrics *entity.DerivedMetrics) (*entity.FeatureVector, error) {
	if in == nil || metrics == nil {
		return nil, fmt.Errorf("%w: input and metrics are required", entity.ErrValidation)
	}

	vector := entity.NewFeatureVector(e.columns, e.index)

	for _, slot := range e.numeric {
		vector.SetAt(slot.pos, slot.column.Value(in, metrics))
	}

	for _, field := range entity.CategoricalFields {
		value := field.Value(in)
		pos, ok := e.indicators[field.Name][value]
		if !ok {
			e.log.Debugf("No indicator column for %s=%q, leaving group unset", field.Name, value)
			continue
		}
		vector.SetAt(pos, 1)
	}

	return vector, nil
}
