package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"diet-recommender/internal/domain/entity"
)

// FileSource reads the schema and the vocabulary from JSON string arrays.
type FileSource struct {
	ColumnsPath string
	LabelsPath  string
}

func NewFileSource(columnsPath, labelsPath string) *FileSource {
	return &FileSource{ColumnsPath: columnsPath, LabelsPath: labelsPath}
}

func (s *FileSource) Load(ctx context.Context) (*Artifacts, error) {
	columns, err := readStringArray(s.ColumnsPath)
	if err != nil {
		return nil, err
	}
	labels, err := readStringArray(s.LabelsPath)
	if err != nil {
		return nil, err
	}

	a := &Artifacts{Columns: columns, Labels: labels}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func readStringArray(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %s is not a JSON string array: %v", entity.ErrConfiguration, path, err)
	}
	return values, nil
}
