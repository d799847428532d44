package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/twotier/twotier-services/models"
)

// BackendClient is a client for interacting with the backend data API.
type BackendClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

type HTTPError struct {
	Message string
	Status  int
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewBackendClient creates a new instance of BackendClient. The timeout
// bounds every outbound call so an unresponsive backend cannot block a
// frontend request indefinitely.
func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	return &BackendClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// FetchData retrieves the user list payload from the backend data route.
func (bc *BackendClient) FetchData(ctx context.Context) (*models.BackendResponse, error) {
	url := fmt.Sprintf("%s/data", bc.BaseURL)

	respBody, statusCode, err := bc.makeRequest(ctx, http.MethodGet, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch backend data: %w", err)
	}

	if statusCode != http.StatusOK {
		return nil, &HTTPError{
			Message: fmt.Sprintf("backend returned status %d", statusCode),
			Status:  statusCode,
		}
	}

	var data models.BackendResponse
	if err := json.Unmarshal(respBody, &data); err != nil {
		return nil, fmt.Errorf("failed to decode backend response: %w", err)
	}

	// Absent users field renders as an empty list
	if data.Users == nil {
		data.Users = []string{}
	}

	return &data, nil
}

// makeRequest performs an HTTP request and returns the response body and status code.
func (bc *BackendClient) makeRequest(ctx context.Context, method, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := bc.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	return respBody, resp.StatusCode, nil
}
