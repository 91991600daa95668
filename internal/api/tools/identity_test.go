package tools

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestGetIdentity_FullReport(t *testing.T) {
	tl := newTestTools(t, respondJSON(`{"success":true,
		"agent_name":"atlas","identity_summary":"infra assistant","session_count":12,
		"last_handoff":{"summary":"migrated the queue","working_on":"retry dashboard","timestamp":"2026-08-29T18:00:00Z"},
		"memory_stats":{"artifacts":7,"chunks":41,"used_bytes":9000},
		"recent_activity":[{"source":"runbook"},{"source":"ops-notes"},{"source":"runbook"}]}`))

	res, _, err := tl.handleGetIdentity(context.Background(), nil, EmptyInput{})
	if err != nil {
		t.Fatalf("handleGetIdentity: %v", err)
	}
	wantSuccess(t, res)

	text := resultText(t, res)
	for _, want := range []string{"atlas", "infra assistant", "12", "migrated the queue", "retry dashboard", "7 artifact(s)"} {
		if !strings.Contains(text, want) {
			t.Errorf("text %q must contain %q", text, want)
		}
	}
	if strings.Count(text, "runbook") != 1 {
		t.Errorf("text %q must list each activity source once", text)
	}
}

func TestGetIdentity_DeduplicatesAndTruncatesActivity(t *testing.T) {
	tl := newTestTools(t, respondJSON(`{"success":true,"agent_name":"atlas","identity_summary":"x","session_count":1,
		"recent_activity":[{"source":"A"},{"source":"B"},{"source":"A"},{"source":"C"},
			{"source":"D"},{"source":"E"},{"source":"F"}]}`))

	res, _, _ := tl.handleGetIdentity(context.Background(), nil, EmptyInput{})
	wantSuccess(t, res)

	text := resultText(t, res)
	for _, want := range []string{"- A", "- B", "- C", "- D", "- E"} {
		if !strings.Contains(text, want) {
			t.Errorf("text %q must contain %q", text, want)
		}
	}
	if strings.Contains(text, "- F") {
		t.Errorf("text %q must truncate activity to 5 entries", text)
	}
}

func TestSetIdentity_OmitsAbsentFields(t *testing.T) {
	var body map[string]any
	tl := newTestTools(t, func(w http.ResponseWriter, r *http.Request) {
		body = decodeBody(t, r)
		w.Write([]byte(`{"success":true,"message":"identity updated"}`)) //nolint:errcheck
	})

	res, _, err := tl.handleSetIdentity(context.Background(), nil, SetIdentityInput{AgentName: "atlas"})
	if err != nil {
		t.Fatalf("handleSetIdentity: %v", err)
	}
	wantSuccess(t, res)

	if body["agent_name"] != "atlas" {
		t.Errorf("agent_name = %v, want atlas", body["agent_name"])
	}
	if _, ok := body["identity_summary"]; ok {
		t.Error("identity_summary must be absent so the service leaves it unchanged")
	}
	if resultText(t, res) != "identity updated" {
		t.Errorf("text = %q, want the remote confirmation", resultText(t, res))
	}
}

func TestSetIdentity_BothFieldsAbsentRejected(t *testing.T) {
	called := false
	tl := newTestTools(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	res, _, _ := tl.handleSetIdentity(context.Background(), nil, SetIdentityInput{})
	wantFailure(t, res)
	if called {
		t.Error("empty update must not reach the transport layer")
	}
}
