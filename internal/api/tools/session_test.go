package tools

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestEndSession_AttachesTimestampAndSession(t *testing.T) {
	var body map[string]any
	tl := newTestTools(t, func(w http.ResponseWriter, r *http.Request) {
		body = decodeBody(t, r)
		w.Write([]byte(`{"success":true,"message":"handoff recorded"}`)) //nolint:errcheck
	})

	before := time.Now().UTC().Add(-time.Second)
	res, _, err := tl.handleEndSession(context.Background(), nil, EndSessionInput{
		Summary:   "wrapped up the migration",
		WorkingOn: "cutover checklist",
		Context:   map[string]any{"branch": "main"},
	})
	if err != nil {
		t.Fatalf("handleEndSession: %v", err)
	}
	wantSuccess(t, res)

	ts, _ := body["timestamp"].(string)
	parsed, parseErr := time.Parse(time.RFC3339, ts)
	if parseErr != nil {
		t.Fatalf("timestamp %q is not RFC 3339: %v", ts, parseErr)
	}
	if parsed.Before(before) || parsed.After(time.Now().UTC().Add(time.Second)) {
		t.Errorf("timestamp %v not generated at call time", parsed)
	}
	if body["session_id"] != "test-session" {
		t.Errorf("session_id = %v, want the process session id", body["session_id"])
	}
	if body["summary"] != "wrapped up the migration" {
		t.Errorf("summary = %v, want passthrough", body["summary"])
	}
	ctxMap, ok := body["context"].(map[string]any)
	if !ok || ctxMap["branch"] != "main" {
		t.Errorf("context = %v, want the arbitrary JSON object", body["context"])
	}
}

func TestEndSession_EmptySummaryRejected(t *testing.T) {
	called := false
	tl := newTestTools(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	res, _, _ := tl.handleEndSession(context.Background(), nil, EndSessionInput{Summary: "  "})
	wantFailure(t, res)
	if called {
		t.Error("empty summary must not reach the transport layer")
	}
}

func TestEndSession_DefaultConfirmation(t *testing.T) {
	tl := newTestTools(t, respondJSON(`{"success":true}`))

	res, _, _ := tl.handleEndSession(context.Background(), nil, EndSessionInput{Summary: "done"})
	wantSuccess(t, res)
	if resultText(t, res) != "Session handoff recorded." {
		t.Errorf("text = %q, want the default confirmation", resultText(t, res))
	}
}
