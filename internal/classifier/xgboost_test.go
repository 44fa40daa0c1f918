package classifier

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"diet-recommender/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnsemble struct {
	features int
	outputs  []float64
	err      error
	got      []float64
}

func (e *fakeEnsemble) NFeatures() int     { return e.features }
func (e *fakeEnsemble) NOutputGroups() int { return len(e.outputs) }

func (e *fakeEnsemble) Predict(fvals []float64, nEstimators int, predictions []float64) error {
	e.got = fvals
	copy(predictions, e.outputs)
	return e.err
}

func TestXGBoostModel_Predict_MultiClass(t *testing.T) {
	fake := &fakeEnsemble{features: 3, outputs: []float64{0.2, 0.7, 0.1}}
	m, err := newXGBoostModel(fake, len(testColumns))
	require.NoError(t, err)

	got, err := m.Predict(context.Background(), newVector(testColumns, map[string]float64{"BMI": 24.22}))

	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, 3, m.NumClasses())
	assert.Equal(t, []float64{24.22, 0, 0}, fake.got)
}

func TestXGBoostModel_Predict_Binary(t *testing.T) {
	cases := []struct {
		probability float64
		want        int
	}{
		{0.9, 1},
		{0.5, 0},
		{0.1, 0},
	}

	for _, tc := range cases {
		m, err := newXGBoostModel(&fakeEnsemble{features: 1, outputs: []float64{tc.probability}}, len(testColumns))
		require.NoError(t, err)

		got, err := m.Predict(context.Background(), newVector(testColumns, nil))

		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "p=%v", tc.probability)
		assert.Equal(t, 2, m.NumClasses())
	}
}

func TestXGBoostModel_Predict_Errors(t *testing.T) {
	m, err := newXGBoostModel(&fakeEnsemble{features: 3, outputs: []float64{0, 1}, err: errors.New("bad input")}, len(testColumns))
	require.NoError(t, err)

	_, err = m.Predict(context.Background(), newVector(testColumns, nil))
	assert.ErrorIs(t, err, entity.ErrConfiguration)

	_, err = m.Predict(context.Background(), newVector([]string{"BMI"}, nil))
	assert.ErrorIs(t, err, entity.ErrConfiguration)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.Predict(ctx, newVector(testColumns, nil))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewXGBoostModel_SchemaTooNarrow(t *testing.T) {
	_, err := newXGBoostModel(&fakeEnsemble{features: 5, outputs: []float64{0, 1}}, len(testColumns))

	assert.ErrorIs(t, err, entity.ErrConfiguration)
}

func TestLoadXGBoostModelFile_Unreadable(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "empty.model")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	for _, path := range []string{empty, filepath.Join(t.TempDir(), "absent.model")} {
		_, err := LoadXGBoostModelFile(path, testColumns)
		assert.ErrorIs(t, err, entity.ErrConfiguration, path)
	}
}
