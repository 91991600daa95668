// Package memoryapi is the HTTP client for the remote memory service.
// Every method performs exactly one authenticated round trip: no retries,
// no caching. Non-2xx responses become *StatusError; 2xx responses whose
// payload reports success=false become *APIError. Nothing is swallowed.
package memoryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	mimeJSON          = "application/json"
	headerContentType = "Content-Type"
	headerAuth        = "Authorization"
)

// StatusError is a transport-level failure: the service answered with a
// non-2xx status. The raw response body is carried verbatim.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

// APIError is a logical failure reported by the service inside a 2xx
// response envelope.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// enveloped is satisfied by every response type via the embedded envelope.
type enveloped interface {
	failure() (bool, string)
}

func (e envelope) failure() (bool, string) {
	return !e.Success, e.Error
}

// Client talks to one memory service with one bearer credential.
// It is safe for concurrent use and read-only after construction.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client with a 30s default timeout.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ─── endpoints ───────────────────────────────────────────────────────────────

// Ingest stores content under name via POST /api/ingest.
func (c *Client) Ingest(ctx context.Context, content, name string) (*IngestResult, error) {
	var out IngestResult
	if err := c.call(ctx, http.MethodPost, "/api/ingest", ingestRequest{Content: content, Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Query runs a semantic query via POST /api/query. since and until are
// forwarded untouched when non-empty; the service does all date handling.
func (c *Client) Query(ctx context.Context, query string, limit int, since, until string) (*QueryResult, error) {
	var out QueryResult
	req := queryRequest{Query: query, Limit: limit, Since: since, Until: until}
	if err := c.call(ctx, http.MethodPost, "/api/query", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListArtifacts fetches up to limit artifacts via GET /api/artifacts.
func (c *Client) ListArtifacts(ctx context.Context, limit int) (*ListResult, error) {
	var out ListResult
	path := "/api/artifacts?limit=" + strconv.Itoa(limit)
	if err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteArtifact removes one artifact via DELETE /api/artifacts/{id}.
func (c *Client) DeleteArtifact(ctx context.Context, artifactID string) (*DeleteResult, error) {
	var out DeleteResult
	path := "/api/artifacts/" + url.PathEscape(artifactID)
	if err := c.call(ctx, http.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health checks service reachability via GET /api/health.
func (c *Client) Health(ctx context.Context) (*HealthResult, error) {
	var out HealthResult
	if err := c.call(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Usage fetches storage accounting via GET /api/usage.
func (c *Client) Usage(ctx context.Context) (*UsageResult, error) {
	var out UsageResult
	if err := c.call(ctx, http.MethodGet, "/api/usage", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetIdentity fetches the agent identity snapshot via GET /api/identity.
func (c *Client) GetIdentity(ctx context.Context) (*IdentityResult, error) {
	var out IdentityResult
	if err := c.call(ctx, http.MethodGet, "/api/identity", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetIdentity updates identity fields via POST /api/identity. Nil fields are
// omitted from the request body entirely; the service leaves them unchanged.
func (c *Client) SetIdentity(ctx context.Context, agentName, identitySummary *string) (*MessageResult, error) {
	var out MessageResult
	req := identityUpdateRequest{AgentName: agentName, IdentitySummary: identitySummary}
	if err := c.call(ctx, http.MethodPost, "/api/identity", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EndSession records a session handoff via POST /api/session/end.
// timestamp is generated by the caller at invocation time.
func (c *Client) EndSession(ctx context.Context, summary, workingOn string, extra map[string]any, timestamp, sessionID string) (*MessageResult, error) {
	var out MessageResult
	req := endSessionRequest{
		Summary:   summary,
		WorkingOn: workingOn,
		Context:   extra,
		Timestamp: timestamp,
		SessionID: sessionID,
	}
	if err := c.call(ctx, http.MethodPost, "/api/session/end", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Relationships looks up co-occurring entities via POST /api/relationships.
func (c *Client) Relationships(ctx context.Context, entity, entityType string, limit int) (*RelationshipsResult, error) {
	var out RelationshipsResult
	req := relationshipsRequest{Entity: entity, Type: entityType, Limit: limit}
	if err := c.call(ctx, http.MethodPost, "/api/relationships", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ─── transport helper ────────────────────────────────────────────────────────

// call performs one authenticated request against baseURL+path and decodes
// the JSON response into out. body is JSON-encoded when non-nil. A non-2xx
// status yields *StatusError with the raw body; a success=false envelope
// yields *APIError with the remote message.
func (c *Client) call(ctx context.Context, method, path string, body any, out enveloped) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("memoryapi %s %s: encode request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("memoryapi %s %s: build request: %w", method, path, err)
	}
	req.Header.Set(headerAuth, "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set(headerContentType, mimeJSON)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("memoryapi %s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("memoryapi %s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("memoryapi %s %s: decode response: %w", method, path, err)
	}

	if failed, msg := out.failure(); failed {
		if msg == "" {
			msg = "remote operation failed"
		}
		return &APIError{Message: msg}
	}
	return nil
}
