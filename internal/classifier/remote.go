package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"diet-recommender/internal/domain/entity"
)

// RemoteClassifier delegates inference to an HTTP model server.
type RemoteClassifier struct {
	baseURL    string
	httpClient *http.Client
}

type predictRequest struct {
	Columns []string  `json:"columns"`
	Values  []float64 `json:"values"`
}

type predictResponse struct {
	ClassIndex *int `json:"class_index"`
}

func NewRemoteClassifier(baseURL string, timeout time.Duration) *RemoteClassifier {
	return &RemoteClassifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Predict posts the vector to <baseURL>/predict and reads back the class index.
func (c *RemoteClassifier) Predict(ctx context.Context, vector *entity.FeatureVector) (int, error) {
	body, err := json.Marshal(predictRequest{
		Columns: vector.Columns(),
		Values:  vector.Values(),
	})
	if err != nil {
		return 0, fmt.Errorf("encode predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", entity.ErrClassifierUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return 0, fmt.Errorf("%w: model server returned %d: %s", entity.ErrClassifierUnavailable, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("%w: decode predict response: %v", entity.ErrClassifierUnavailable, err)
	}
	if out.ClassIndex == nil {
		return 0, fmt.Errorf("%w: predict response has no class_index", entity.ErrClassifierUnavailable)
	}

	return *out.ClassIndex, nil
}
