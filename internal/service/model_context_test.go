package service

import (
	"context"
	"testing"

	"diet-recommender/internal/classifier"
	"diet-recommender/internal/domain/entity"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClassifier struct {
	classIndex int
	classes    int
	err        error
}

func (c *fixedClassifier) Predict(ctx context.Context, _ *entity.FeatureVector) (int, error) {
	return c.classIndex, c.err
}

type countingClassifier struct {
	fixedClassifier
}

func (c *countingClassifier) NumClasses() int {
	return c.classes
}

func newTestModelContext(t *testing.T, clf classifier.Classifier) *ModelContext {
	t.Helper()
	log, _ := test.NewNullLogger()
	enc, err := NewFeatureEncoder(fullSchema(), EncoderOptions{}, log)
	require.NoError(t, err)
	decoder, err := classifier.NewLabelDecoder([]string{"Balanced", "Low_Carb", "Low_Sodium"})
	require.NoError(t, err)

	model, err := NewModelContext(enc, clf, decoder)
	require.NoError(t, err)
	return model
}

func TestModelContext_Classify(t *testing.T) {
	model := newTestModelContext(t, &fixedClassifier{classIndex: 2})
	vector := encode(t, model.Encoder(), sampleInput())

	label, classIndex, err := model.Classify(context.Background(), vector)

	require.NoError(t, err)
	assert.Equal(t, "Low_Sodium", label)
	assert.Equal(t, 2, classIndex)
}

func TestModelContext_Classify_UnknownClass(t *testing.T) {
	model := newTestModelContext(t, &fixedClassifier{classIndex: 3})
	vector := encode(t, model.Encoder(), sampleInput())

	_, classIndex, err := model.Classify(context.Background(), vector)

	assert.ErrorIs(t, err, entity.ErrUnknownClass)
	assert.Equal(t, 3, classIndex)
}

func TestModelContext_Classify_PropagatesClassifierError(t *testing.T) {
	model := newTestModelContext(t, &fixedClassifier{err: entity.ErrClassifierUnavailable})
	vector := encode(t, model.Encoder(), sampleInput())

	_, _, err := model.Classify(context.Background(), vector)

	assert.ErrorIs(t, err, entity.ErrClassifierUnavailable)
}

func TestNewModelContext_ClassCountMismatch(t *testing.T) {
	log, _ := test.NewNullLogger()
	enc, err := NewFeatureEncoder(fullSchema(), EncoderOptions{}, log)
	require.NoError(t, err)
	decoder, err := classifier.NewLabelDecoder([]string{"Balanced", "Low_Carb"})
	require.NoError(t, err)

	_, err = NewModelContext(enc, &countingClassifier{fixedClassifier{classes: 3}}, decoder)

	assert.ErrorIs(t, err, entity.ErrConfiguration)
}

func TestNewModelContext_MissingParts(t *testing.T) {
	_, err := NewModelContext(nil, &fixedClassifier{}, nil)

	assert.Error(t, err)
}

func TestModelContext_Labels(t *testing.T) {
	model := newTestModelContext(t, &countingClassifier{fixedClassifier{classes: 3}})

	assert.Equal(t, []string{"Balanced", "Low_Carb", "Low_Sodium"}, model.Labels())
}
