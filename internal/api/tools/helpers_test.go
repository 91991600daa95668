package tools

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/membridge/internal/infra/memoryapi"
)

// ── Test helpers ────────────────────────────────────────────────────────────

// newTestTools builds a Tools instance backed by a fake remote service.
func newTestTools(t *testing.T, handler http.HandlerFunc) *Tools {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(memoryapi.NewClient(srv.URL, "sk-test"), "test-session")
}

// respondJSON writes a fixed JSON body with status 200.
func respondJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body)) //nolint:errcheck
	}
}

// decodeBody reads the request body into a generic map.
func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
	return body
}

// resultText extracts the single text block from a tool result.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil {
		t.Fatal("nil tool result")
	}
	if len(res.Content) != 1 {
		t.Fatalf("got %d content blocks, want exactly 1", len(res.Content))
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content block is %T, want *mcp.TextContent", res.Content[0])
	}
	return text.Text
}

// wantSuccess fails the test when the result carries the error flag.
func wantSuccess(t *testing.T, res *mcp.CallToolResult) {
	t.Helper()
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}
}

// wantFailure fails the test when the result does not carry the error flag.
func wantFailure(t *testing.T, res *mcp.CallToolResult) {
	t.Helper()
	if !res.IsError {
		t.Fatalf("expected error result, got success: %s", resultText(t, res))
	}
}
