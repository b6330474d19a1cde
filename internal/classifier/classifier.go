// Package classifier calls the external priority model service. The
// result is advisory: it is returned to the caller verbatim and never
// written onto a complaint record.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lskolhar/complain-hub/internal/apperr"
)

// Client talks to the priority model's HTTP endpoint.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a classifier client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTP: http.DefaultClient}
}

// Classify sends the complaint text to POST /predict_priority and returns
// the response body as-is (the service answers with at least a "priority"
// label). Network failures and non-2xx responses surface as
// ClassificationServiceError; there is no retry and no fallback priority.
func (c *Client) Classify(ctx context.Context, text string) (map[string]any, error) {
	body, err := json.Marshal(map[string]string{"complaint": text})
	if err != nil {
		return nil, apperr.Classification("error encoding classification request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/predict_priority", bytes.NewReader(body))
	if err != nil {
		return nil, apperr.Classification("error building classification request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, apperr.Classification("error classifying complaint priority", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.Classification(
			fmt.Sprintf("classification service returned status %d", resp.StatusCode), nil)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperr.Classification("error decoding classification response", err)
	}
	return result, nil
}
