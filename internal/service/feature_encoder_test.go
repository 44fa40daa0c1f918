package service

import (
	"slices"
	"strings"
	"testing"

	"diet-recommender/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullSchema lists every numeric column followed by every indicator column.
func fullSchema() []string {
	var cols []string
	for _, nc := range entity.NumericColumns {
		cols = append(cols, nc.Name)
	}
	for _, field := range entity.CategoricalFields {
		for _, value := range field.Values {
			cols = append(cols, field.IndicatorColumn(value))
		}
	}
	return cols
}

func without(cols []string, drop ...string) []string {
	return slices.DeleteFunc(slices.Clone(cols), func(c string) bool {
		return slices.Contains(drop, c)
	})
}

func newTestEncoder(t *testing.T, columns []string, opts EncoderOptions) (*FeatureEncoder, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	enc, err := NewFeatureEncoder(columns, opts, log)
	require.NoError(t, err)
	return enc, hook
}

func encode(t *testing.T, enc *FeatureEncoder, in *entity.PatientInput) *entity.FeatureVector {
	t.Helper()
	metrics, err := DeriveMetrics(in)
	require.NoError(t, err)
	vector, err := enc.Encode(in, metrics)
	require.NoError(t, err)
	return vector
}

func TestFeatureEncoder_Encode_FollowsSchemaOrder(t *testing.T) {
	schema := fullSchema()
	enc, hook := newTestEncoder(t, schema, EncoderOptions{})
	assert.Empty(t, hook.AllEntries())

	vector := encode(t, enc, sampleInput())

	assert.Equal(t, schema, vector.Columns())
	assert.Equal(t, len(schema), vector.Len())
}

func TestFeatureEncoder_Encode_NumericValues(t *testing.T) {
	enc, _ := newTestEncoder(t, fullSchema(), EncoderOptions{})
	in := sampleInput()

	vector := encode(t, enc, in)

	want := map[string]float64{
		entity.ColumnAge:                 30,
		entity.ColumnHeight:              170,
		entity.ColumnWeight:              70,
		entity.ColumnBMI:                 24.22,
		entity.ColumnBMR:                 1617.5,
		entity.ColumnTDEE:                1941,
		entity.ColumnCalorieBalance:      259,
		entity.ColumnDailyCaloricIntake:  2200,
		entity.ColumnCholesterol:         190,
		entity.ColumnBloodPressure:       120,
		entity.ColumnGlucose:             100,
		entity.ColumnWeeklyExerciseHours: 4,
	}
	for col, value := range want {
		got, ok := vector.Get(col)
		require.True(t, ok, col)
		assert.Equal(t, value, got, col)
	}
}

func TestFeatureEncoder_Encode_OneIndicatorPerField(t *testing.T) {
	enc, _ := newTestEncoder(t, fullSchema(), EncoderOptions{})
	in := sampleInput()
	in.Gender = entity.GenderFemale
	in.DiseaseType = "Diabetes"
	in.PreferredCuisine = "Asian"

	vector := encode(t, enc, in)

	for _, field := range entity.CategoricalFields {
		hot := 0
		for _, value := range field.Values {
			got, ok := vector.Get(field.IndicatorColumn(value))
			require.True(t, ok)
			if got == 1 {
				hot++
				assert.Equal(t, field.Value(in), value, field.Name)
			} else {
				assert.Zero(t, got)
			}
		}
		assert.Equal(t, 1, hot, field.Name)
	}
}

func TestFeatureEncoder_Encode_VeganRestriction(t *testing.T) {
	enc, _ := newTestEncoder(t, fullSchema(), EncoderOptions{})
	in := sampleInput()
	in.DietaryRestriction = "Vegan"

	vector := encode(t, enc, in)

	for _, value := range entity.DietaryRestrictions {
		got, _ := vector.Get("Dietary_Restrictions_" + value)
		if value == "Vegan" {
			assert.Equal(t, 1.0, got)
		} else {
			assert.Zero(t, got, value)
		}
	}
}

func TestFeatureEncoder_Encode_ShuffledSchema(t *testing.T) {
	schema := fullSchema()
	reversed := slices.Clone(schema)
	slices.Reverse(reversed)

	encA, _ := newTestEncoder(t, schema, EncoderOptions{})
	encB, _ := newTestEncoder(t, reversed, EncoderOptions{})
	in := sampleInput()

	a := encode(t, encA, in)
	b := encode(t, encB, in)

	assert.Equal(t, reversed, b.Columns())
	for _, col := range schema {
		va, _ := a.Get(col)
		vb, _ := b.Get(col)
		assert.Equal(t, va, vb, col)
	}
}

func TestFeatureEncoder_Encode_UnknownSchemaColumnStaysZero(t *testing.T) {
	schema := append(fullSchema(), "Legacy_Flag")
	enc, _ := newTestEncoder(t, schema, EncoderOptions{})

	vector := encode(t, enc, sampleInput())

	got, ok := vector.Get("Legacy_Flag")
	assert.True(t, ok)
	assert.Zero(t, got)
}

func TestFeatureEncoder_Encode_Idempotent(t *testing.T) {
	enc, _ := newTestEncoder(t, fullSchema(), EncoderOptions{})
	in := sampleInput()

	first := encode(t, enc, in)
	second := encode(t, enc, in)

	assert.Equal(t, first.Values(), second.Values())
}

func TestFeatureEncoder_Encode_NilArguments(t *testing.T) {
	enc, _ := newTestEncoder(t, fullSchema(), EncoderOptions{})

	_, err := enc.Encode(nil, &entity.DerivedMetrics{})

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestFeatureEncoder_MissingIndicator_Dropped(t *testing.T) {
	schema := without(fullSchema(), "Gender_Male")
	enc, hook := newTestEncoder(t, schema, EncoderOptions{})

	report := enc.Report()
	require.Len(t, report.UnmappedIndicators, 1)
	assert.Equal(t, UnmappedIndicator{Field: "gender", Value: "Male", Column: "Gender_Male"}, report.UnmappedIndicators[0])
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	hook.Reset()

	vector := encode(t, enc, sampleInput())

	female, _ := vector.Get("Gender_Female")
	assert.Zero(t, female)
	assert.NotContains(t, vector.Columns(), "Gender_Male")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
}

func TestFeatureEncoder_MissingIndicator_Strict(t *testing.T) {
	log, _ := test.NewNullLogger()
	schema := without(fullSchema(), "Allergies_Seafood")

	enc, err := NewFeatureEncoder(schema, EncoderOptions{StrictCategories: true}, log)

	assert.Nil(t, enc)
	assert.ErrorIs(t, err, entity.ErrConfiguration)
	assert.Contains(t, err.Error(), "Allergies_Seafood")
}

func TestFeatureEncoder_MissingNumeric_Warns(t *testing.T) {
	schema := without(fullSchema(), entity.ColumnBMR, entity.ColumnTDEE)
	enc, hook := newTestEncoder(t, schema, EncoderOptions{})

	assert.Equal(t, []string{entity.ColumnBMR, entity.ColumnTDEE}, enc.Report().MissingNumeric)
	warned := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && strings.Contains(entry.Message, `"BMR"`) {
			warned++
		}
	}
	assert.Equal(t, 1, warned)

	vector := encode(t, enc, sampleInput())
	_, ok := vector.Get(entity.ColumnBMR)
	assert.False(t, ok)
	assert.Equal(t, len(schema), vector.Len())
}

func TestFeatureEncoder_MissingNumeric_Strict(t *testing.T) {
	log, _ := test.NewNullLogger()
	schema := without(fullSchema(), entity.ColumnCalorieBalance)

	_, err := NewFeatureEncoder(schema, EncoderOptions{StrictSchema: true}, log)

	assert.ErrorIs(t, err, entity.ErrSchemaMismatch)
	assert.Contains(t, err.Error(), entity.ColumnCalorieBalance)
}

func TestNewFeatureEncoder_InvalidSchema(t *testing.T) {
	cases := []struct {
		name    string
		columns []string
	}{
		{"empty", nil},
		{"blank column", append(fullSchema(), " ")},
		{"duplicate column", append(fullSchema(), entity.ColumnAge)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			log, _ := test.NewNullLogger()

			enc, err := NewFeatureEncoder(tc.columns, EncoderOptions{}, log)

			assert.Nil(t, enc)
			assert.ErrorIs(t, err, entity.ErrConfiguration)
		})
	}
}

func TestFeatureEncoder_ColumnsIsACopy(t *testing.T) {
	schema := fullSchema()
	enc, _ := newTestEncoder(t, schema, EncoderOptions{})

	cols := enc.Columns()
	cols[0] = "mutated"
	schema[1] = "mutated"

	assert.Equal(t, entity.ColumnAge, enc.Columns()[0])
	assert.Equal(t, entity.ColumnHeight, enc.Columns()[1])
}
