package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/membridge/internal/domain/memory"
	"github.com/matiasleandrokruk/membridge/internal/infra/memoryapi"
)

const (
	defaultQueryLimit = 5
	maxQueryLimit     = 20
)

// QueryInput is the schema for query_memory.
type QueryInput struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// TimeRangeInput is the schema for query_time_range. Since and until are
// forwarded to the service untouched; no local date validation.
type TimeRangeInput struct {
	Query string `json:"query"`
	Since string `json:"since,omitempty"`
	Until string `json:"until,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

func (t *Tools) handleQuery(ctx context.Context, req *mcp.CallToolRequest, input QueryInput) (*mcp.CallToolResult, any, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return errorResult("Failed to query: query is required"), nil, nil
	}
	limit := memory.ClampLimit(input.Limit, defaultQueryLimit, maxQueryLimit)

	return runOp("query",
		func() (*memoryapi.QueryResult, error) {
			return t.client.Query(ctx, query, limit, "", "")
		},
		func(res *memoryapi.QueryResult) string {
			return renderQuery(query, res, false)
		}), nil, nil
}

func (t *Tools) handleQueryTimeRange(ctx context.Context, req *mcp.CallToolRequest, input TimeRangeInput) (*mcp.CallToolResult, any, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return errorResult("Failed to query: query is required"), nil, nil
	}
	limit := memory.ClampLimit(input.Limit, defaultQueryLimit, maxQueryLimit)

	return runOp("query",
		func() (*memoryapi.QueryResult, error) {
			return t.client.Query(ctx, query, limit, strings.TrimSpace(input.Since), strings.TrimSpace(input.Until))
		},
		func(res *memoryapi.QueryResult) string {
			return renderQuery(query, res, true)
		}), nil, nil
}

// renderQuery formats the ranked match list. The match tier is derived from
// the score at render time only; the underlying data stays untouched.
func renderQuery(query string, res *memoryapi.QueryResult, withDates bool) string {
	var b strings.Builder
	if len(res.Results) == 0 {
		fmt.Fprintf(&b, "No matches for %q.", query)
	} else {
		fmt.Fprintf(&b, "Found %d match(es) for %q:\n", len(res.Results), query)
		for i, m := range res.Results {
			fmt.Fprintf(&b, "\n%d. [%s %.3f] %s", i+1, memory.MatchTier(m.Score), memory.Round3(m.Score), m.Source)
			if withDates && m.Date != "" {
				fmt.Fprintf(&b, " (%s)", m.Date)
			}
			fmt.Fprintf(&b, "\n   %s", m.Text)
		}
	}
	renderInsights(&b, res.Insights)
	return b.String()
}

// renderInsights appends the narrative insight groups when present.
// The groups are an unconstrained passthrough: fixed group order, no
// ranking, no truncation.
func renderInsights(b *strings.Builder, ins *memoryapi.Insights) {
	if ins.Empty() {
		return
	}
	b.WriteString("\n\nNarrative insights:")
	groups := []struct {
		label string
		items []string
	}{
		{"Decisions", ins.Decisions},
		{"Causality", ins.Causality},
		{"Patterns", ins.Patterns},
		{"Implications", ins.Implications},
		{"Gaps", ins.Gaps},
	}
	for _, g := range groups {
		if len(g.items) == 0 {
			continue
		}
		fmt.Fprintf(b, "\n%s:", g.label)
		for _, item := range g.items {
			fmt.Fprintf(b, "\n  - %s", item)
		}
	}
}
