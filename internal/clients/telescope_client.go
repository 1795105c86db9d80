// internal/clients/telescope_client.go
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"timetelescope/internal/telescope"
)

// TelescopeClient calls a remote telescope service.
type TelescopeClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTelescopeClient(baseURL string) *TelescopeClient {
	return &TelescopeClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Calculate asks the service for the light-travel distance to target.
// A future target is reported as telescope.ErrInvalidInput.
func (c *TelescopeClient) Calculate(ctx context.Context, target time.Time) (*telescope.CalculateResponse, error) {
	body, err := json.Marshal(telescope.CalculateRequest{TargetDate: &target})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/calculate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error == "Target date must be in the past." {
			return nil, telescope.ErrInvalidInput
		}
		return nil, fmt.Errorf("bad request: %s", e.Error)
	default:
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var out telescope.CalculateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// Health reports whether the service answers its health check.
func (c *TelescopeClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
