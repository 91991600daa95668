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
	defaultListLimit = 20
	maxListLimit     = 50
)

// ListInput is the schema for list_artifacts.
type ListInput struct {
	Limit int `json:"limit,omitempty"`
}

// DeleteInput is the schema for delete_artifact.
type DeleteInput struct {
	ArtifactID string `json:"artifact_id"`
}

func (t *Tools) handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, any, error) {
	limit := memory.ClampLimit(input.Limit, defaultListLimit, maxListLimit)

	return runOp("list artifacts",
		func() (*memoryapi.ListResult, error) {
			return t.client.ListArtifacts(ctx, limit)
		},
		renderList), nil, nil
}

func renderList(res *memoryapi.ListResult) string {
	if len(res.Artifacts) == 0 {
		return "No artifacts stored."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Artifacts (%d):", len(res.Artifacts))
	for _, a := range res.Artifacts {
		fmt.Fprintf(&b, "\n- %s [%s] %s, %d chunk(s), %s",
			a.Name, a.Type, a.ID, a.ChunkCount, memory.DayPrecision(a.CreatedAt))
	}
	return b.String()
}

func (t *Tools) handleDelete(ctx context.Context, req *mcp.CallToolRequest, input DeleteInput) (*mcp.CallToolResult, any, error) {
	artifactID := strings.TrimSpace(input.ArtifactID)
	if artifactID == "" {
		return errorResult("Failed to delete: artifact_id is required"), nil, nil
	}

	return runOp("delete",
		func() (*memoryapi.DeleteResult, error) {
			return t.client.DeleteArtifact(ctx, artifactID)
		},
		func(res *memoryapi.DeleteResult) string {
			msg := fmt.Sprintf("Deleted artifact %s (%d chunk(s) removed).", artifactID, res.ChunksDeleted)
			if res.Message != "" {
				msg += "\n" + res.Message
			}
			return msg
		}), nil, nil
}
