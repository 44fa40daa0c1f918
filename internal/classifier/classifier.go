// Package classifier turns feature vectors into diet plan labels. The trained
// model is consumed as a black box: Predict yields a class index and a
// LabelDecoder maps it back to the label vocabulary.
package classifier

import (
	"context"

	"diet-recommender/internal/domain/entity"
)

type Classifier interface {
	Predict(ctx context.Context, vector *entity.FeatureVector) (int, error)
}

// ClassCounter is implemented by classifiers that know how many classes they
// emit, so the count can be checked against the label vocabulary at startup.
type ClassCounter interface {
	NumClasses() int
}

// argmax returns the index of the largest value; the first one wins a tie.
func argmax(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}
