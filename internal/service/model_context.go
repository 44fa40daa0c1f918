package service

import (
	"context"
	"errors"
	"fmt"

	"diet-recommender/internal/classifier"
	"diet-recommender/internal/domain/entity"
)

// ModelContext bundles what is loaded once at startup and only read
// afterwards: the feature encoder, the classifier and the label decoder.
type ModelContext struct {
	encoder    *FeatureEncoder
	classifier classifier.Classifier
	decoder    *classifier.LabelDecoder
}

func NewModelContext(encoder *FeatureEncoder, clf classifier.Classifier, decoder *classifier.LabelDecoder) (*ModelContext, error) {
	if encoder == nil || clf == nil || decoder == nil {
		return nil, errors.New("model context needs an encoder, a classifier and a decoder")
	}

	if counter, ok := clf.(classifier.ClassCounter); ok && counter.NumClasses() != decoder.Len() {
		return nil, fmt.Errorf("%w: classifier emits %d classes but the vocabulary has %d labels",
			entity.ErrConfiguration, counter.NumClasses(), decoder.Len())
	}

	return &ModelContext{
		encoder:    encoder,
		classifier: clf,
		decoder:    decoder,
	}, nil
}

func (m *ModelContext) Encoder() *FeatureEncoder {
	return m.encoder
}

func (m *ModelContext) Labels() []string {
	return m.decoder.Labels()
}

// Classify runs inference on vector and decodes the class index.
func (m *ModelContext) Classify(ctx context.Context, vector *entity.FeatureVector) (string, int, error) {
	classIndex, err := m.classifier.Predict(ctx, vector)
	if err != nil {
		return "", 0, err
	}

	label, err := m.decoder.Decode(classIndex)
	if err != nil {
		return "", classIndex, err
	}
	return label, classIndex, nil
}
