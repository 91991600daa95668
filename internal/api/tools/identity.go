package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/membridge/internal/domain/memory"
	"github.com/matiasleandrokruk/membridge/internal/infra/memoryapi"
)

// recentActivityMax bounds the deduplicated activity feed in the identity report.
const recentActivityMax = 5

// SetIdentityInput is the schema for set_identity. Both fields are optional;
// an omitted field is left unchanged by the service.
type SetIdentityInput struct {
	AgentName       string `json:"agent_name,omitempty"`
	IdentitySummary string `json:"identity_summary,omitempty"`
}

func (t *Tools) handleGetIdentity(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, any, error) {
	return runOp("load identity",
		func() (*memoryapi.IdentityResult, error) {
			return t.client.GetIdentity(ctx)
		},
		renderIdentity), nil, nil
}

func renderIdentity(res *memoryapi.IdentityResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Agent: %s\n", res.AgentName)
	fmt.Fprintf(&b, "Summary: %s\n", res.IdentitySummary)
	fmt.Fprintf(&b, "Sessions: %d", res.SessionCount)

	if h := res.LastHandoff; h != nil {
		fmt.Fprintf(&b, "\n\nLast handoff: %s", h.Summary)
		if h.WorkingOn != "" {
			fmt.Fprintf(&b, "\nWorking on: %s", h.WorkingOn)
		}
		if h.Timestamp != "" {
			fmt.Fprintf(&b, "\nRecorded: %s", h.Timestamp)
		}
	}

	if s := res.MemoryStats; s != nil {
		fmt.Fprintf(&b, "\n\nMemory: %d artifact(s), %d chunk(s), %d bytes",
			s.Artifacts, s.Chunks, s.UsedBytes)
	}

	if recent := memory.DedupeActivity(res.RecentActivity, recentActivityMax); len(recent) > 0 {
		b.WriteString("\n\nRecent activity:")
		for _, rec := range recent {
			fmt.Fprintf(&b, "\n- %s", rec.Source)
			if rec.Action != "" {
				fmt.Fprintf(&b, ": %s", rec.Action)
			}
		}
	}
	return b.String()
}

func (t *Tools) handleSetIdentity(ctx context.Context, req *mcp.CallToolRequest, input SetIdentityInput) (*mcp.CallToolResult, any, error) {
	var name, summary *string
	if v := strings.TrimSpace(input.AgentName); v != "" {
		name = &v
	}
	if v := strings.TrimSpace(input.IdentitySummary); v != "" {
		summary = &v
	}
	if name == nil && summary == nil {
		return errorResult("Failed to update identity: provide agent_name or identity_summary"), nil, nil
	}

	return runOp("update identity",
		func() (*memoryapi.MessageResult, error) {
			return t.client.SetIdentity(ctx, name, summary)
		},
		func(res *memoryapi.MessageResult) string {
			if res.Message != "" {
				return res.Message
			}
			return "Identity updated."
		}), nil, nil
}
