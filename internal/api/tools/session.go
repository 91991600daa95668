package tools

import (
	"context"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/membridge/internal/infra/memoryapi"
)

// EndSessionInput is the schema for end_session. Context carries arbitrary
// caller-supplied JSON and is forwarded untouched.
type EndSessionInput struct {
	Summary   string         `json:"summary"`
	WorkingOn string         `json:"working_on,omitempty"`
	Context   map[string]any `json:"context,omitempty"`
}

func (t *Tools) handleEndSession(ctx context.Context, req *mcp.CallToolRequest, input EndSessionInput) (*mcp.CallToolResult, any, error) {
	summary := strings.TrimSpace(input.Summary)
	if summary == "" {
		return errorResult("Failed to record handoff: summary is required"), nil, nil
	}

	// Submission time is stamped here, not by the service.
	timestamp := time.Now().UTC().Format(time.RFC3339)

	return runOp("record handoff",
		func() (*memoryapi.MessageResult, error) {
			return t.client.EndSession(ctx, summary, strings.TrimSpace(input.WorkingOn), input.Context, timestamp, t.sessionID)
		},
		func(res *memoryapi.MessageResult) string {
			if res.Message != "" {
				return res.Message
			}
			return "Session handoff recorded."
		}), nil, nil
}
