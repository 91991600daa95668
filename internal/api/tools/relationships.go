package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/membridge/internal/infra/memoryapi"
)

const defaultRelationshipsLimit = 10

// RelationshipsInput is the schema for find_relationships.
type RelationshipsInput struct {
	Entity string `json:"entity"`
	Type   string `json:"type,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

func (t *Tools) handleRelationships(ctx context.Context, req *mcp.CallToolRequest, input RelationshipsInput) (*mcp.CallToolResult, any, error) {
	entity := strings.TrimSpace(input.Entity)
	if entity == "" {
		return errorResult("Failed to look up relationships: entity is required"), nil, nil
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultRelationshipsLimit
	}

	return runOp("look up relationships",
		func() (*memoryapi.RelationshipsResult, error) {
			return t.client.Relationships(ctx, entity, strings.TrimSpace(input.Type), limit)
		},
		renderRelationships), nil, nil
}

func renderRelationships(res *memoryapi.RelationshipsResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Entity: %s", res.Entity.Name)
	if res.Entity.Type != "" {
		fmt.Fprintf(&b, " [%s]", res.Entity.Type)
	}
	if len(res.Related) == 0 {
		b.WriteString("\nNo co-occurring entities found.")
		return b.String()
	}
	b.WriteString("\nCo-occurring entities:")
	for _, rel := range res.Related {
		fmt.Fprintf(&b, "\n- %s [%s] strength %d", rel.Name, rel.Type, rel.Strength)
	}
	return b.String()
}
