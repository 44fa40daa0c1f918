package classifier

import (
	"context"
	"fmt"

	"diet-recommender/internal/domain/entity"

	"github.com/dmitryikh/leaves"
)

// ensemble is the part of *leaves.Ensemble the classifier uses.
type ensemble interface {
	NFeatures() int
	NOutputGroups() int
	Predict(fvals []float64, nEstimators int, predictions []float64) error
}

// XGBoostModel predicts with a model saved by XGBoost in its binary booster
// format. Outputs carry the model's own transformation: one probability for
// binary objectives, one score per class otherwise.
type XGBoostModel struct {
	model       ensemble
	numFeatures int
}

// LoadXGBoostModelFile reads a binary XGBoost model and checks it against the
// feature schema.
func LoadXGBoostModelFile(path string, columns []string) (*XGBoostModel, error) {
	model, err := leaves.XGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("%w: load xgboost model %s: %v", entity.ErrConfiguration, path, err)
	}
	return newXGBoostModel(model, len(columns))
}

func newXGBoostModel(model ensemble, numFeatures int) (*XGBoostModel, error) {
	if model.NFeatures() > numFeatures {
		return nil, fmt.Errorf("%w: model uses %d features, schema has %d",
			entity.ErrConfiguration, model.NFeatures(), numFeatures)
	}
	if model.NOutputGroups() < 1 {
		return nil, fmt.Errorf("%w: model has no outputs", entity.ErrConfiguration)
	}
	return &XGBoostModel{model: model, numFeatures: numFeatures}, nil
}

func (m *XGBoostModel) NumClasses() int {
	if n := m.model.NOutputGroups(); n > 1 {
		return n
	}
	return 2
}

func (m *XGBoostModel) Predict(ctx context.Context, vector *entity.FeatureVector) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if vector.Len() != m.numFeatures {
		return 0, fmt.Errorf("%w: vector has %d features, model expects %d", entity.ErrConfiguration, vector.Len(), m.numFeatures)
	}

	outputs := make([]float64, m.model.NOutputGroups())
	if err := m.model.Predict(vector.Values(), 0, outputs); err != nil {
		return 0, fmt.Errorf("%w: %v", entity.ErrConfiguration, err)
	}

	if len(outputs) == 1 {
		if outputs[0] > 0.5 {
			return 1, nil
		}
		return 0, nil
	}

	return argmax(outputs), nil
}
