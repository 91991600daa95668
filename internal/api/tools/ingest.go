package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/membridge/internal/infra/memoryapi"
)

// IngestInput is the schema for ingest_text.
type IngestInput struct {
	Content string `json:"content"`
	Name    string `json:"name"`
}

func (t *Tools) handleIngest(ctx context.Context, req *mcp.CallToolRequest, input IngestInput) (*mcp.CallToolResult, any, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return errorResult("Failed to ingest: content is required"), nil, nil
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return errorResult("Failed to ingest: name is required"), nil, nil
	}

	return runOp("ingest",
		func() (*memoryapi.IngestResult, error) {
			return t.client.Ingest(ctx, content, name)
		},
		func(res *memoryapi.IngestResult) string {
			return fmt.Sprintf("Ingested %q\nArtifact ID: %s\nChunks stored: %d",
				name, res.ArtifactID, res.ChunkCount)
		}), nil, nil
}
