package classifier

import (
	"fmt"
	"strings"

	"diet-recommender/internal/domain/entity"
)

// LabelDecoder maps class indices to diet plan labels.
type LabelDecoder struct {
	labels []string
}

func NewLabelDecoder(labels []string) (*LabelDecoder, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: label vocabulary is empty", entity.ErrConfiguration)
	}
	for i, label := range labels {
		if strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("%w: label %d is blank", entity.ErrConfiguration, i)
		}
	}

	d := &LabelDecoder{labels: make([]string, len(labels))}
	copy(d.labels, labels)
	return d, nil
}

func (d *LabelDecoder) Decode(classIndex int) (string, error) {
	if classIndex < 0 || classIndex >= len(d.labels) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", entity.ErrUnknownClass, classIndex, len(d.labels))
	}
	return d.labels[classIndex], nil
}

func (d *LabelDecoder) Len() int {
	return len(d.labels)
}

func (d *LabelDecoder) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)
	return out
}
