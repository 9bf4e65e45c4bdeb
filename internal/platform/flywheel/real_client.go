package flywheel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultBaseURL is the production Flywheel API endpoint.
const DefaultBaseURL = "https://api.flywheel.io"

// RealClient implements Client against the Flywheel REST API.
type RealClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithBaseURL points the client at a non-production Flywheel instance.
func WithBaseURL(url string) ClientOption {
	return func(c *RealClient) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client (useful for timeouts and tests).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// NewRealClient creates a RealClient authenticating with the given API key.
func NewRealClient(apiKey string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup resolves a group or group/project path.
func (c *RealClient) Lookup(ctx context.Context, path string) (*Container, error) {
	body := map[string][]string{"path": strings.Split(path, "/")}
	var container Container
	if err := c.do(ctx, http.MethodPost, "/api/lookup", body, &container); err != nil {
		return nil, err
	}
	return &container, nil
}

// AddGroup creates a group and returns its identifier.
func (c *RealClient) AddGroup(ctx context.Context, id, label string) (string, error) {
	body := map[string]string{"_id": id, "label": label}
	var created struct {
		ID string `json:"_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/groups", body, &created); err != nil {
		return "", err
	}
	if created.ID == "" {
		return id, nil
	}
	return created.ID, nil
}

// GetGroup fetches a handle to an existing group.
func (c *RealClient) GetGroup(ctx context.Context, id string) (Group, error) {
	var group struct {
		ID string `json:"_id"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/groups/"+id, nil, &group); err != nil {
		return nil, err
	}
	return &groupHandle{client: c, id: group.ID}, nil
}

// groupHandle scopes project creation to one remote group.
type groupHandle struct {
	client *RealClient
	id     string
}

func (g *groupHandle) ID() string {
	return g.id
}

func (g *groupHandle) AddProject(ctx context.Context, label string) (*Project, error) {
	body := map[string]any{"project": map[string]string{"group": g.id, "label": label}}
	var created struct {
		ID string `json:"_id"`
	}
	if err := g.client.do(ctx, http.MethodPost, "/api/projects", body, &created); err != nil {
		return nil, err
	}
	return &Project{ID: created.ID, Label: label, Group: g.id}, nil
}

// do issues one API request, decoding a JSON response into out when out is
// non-nil. Non-2xx responses become *APIError.
func (c *RealClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "scitran-user "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError builds an APIError from an error response, tolerating bodies
// that are not JSON.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}
	return apiErr
}
