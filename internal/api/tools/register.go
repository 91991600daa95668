package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register declares all ten memory tools on the MCP server.
// The SDK infers each tool's input schema from its handler's input struct.
func (t *Tools) Register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ingest_text",
		Description: "Store text in remote memory. REQUIRED: content, name. The service chunks and indexes the content; returns the artifact ID and chunk count.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "Ingest Text",
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, t.handleIngest)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query_memory",
		Description: "Semantic search over stored memory. REQUIRED: query. Optional: limit (default 5, max 20). Returns ranked matches with match-quality tiers and any narrative insights.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Query Memory",
			ReadOnlyHint:  true,
			OpenWorldHint: boolPtr(true),
		},
	}, t.handleQuery)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query_time_range",
		Description: "Semantic search restricted to a date range. REQUIRED: query. Optional: since, until (ISO dates, passed through to the service), limit (default 5, max 20).",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Query Time Range",
			ReadOnlyHint:  true,
			OpenWorldHint: boolPtr(true),
		},
	}, t.handleQueryTimeRange)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_artifacts",
		Description: "List stored artifacts. Optional: limit (default 20, max 50). Returns ID, name, type, chunk count and ingestion day for each artifact.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "List Artifacts",
			ReadOnlyHint:  true,
			OpenWorldHint: boolPtr(true),
		},
	}, t.handleList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_artifact",
		Description: "Delete one artifact and all its chunks. REQUIRED: artifact_id.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "Delete Artifact",
			DestructiveHint: boolPtr(true),
			IdempotentHint:  true,
			OpenWorldHint:   boolPtr(true),
		},
	}, t.handleDelete)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "memory_status",
		Description: "Check service health and storage usage. No parameters.",
		Annotations: &mcp.ToolAnnotations{
			Title:          "Memory Status",
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(true),
		},
	}, t.handleStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_identity",
		Description: "Read the agent identity: name, summary, session count, last handoff, memory stats, and recent activity (deduplicated by source, top 5).",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Get Identity",
			ReadOnlyHint:  true,
			OpenWorldHint: boolPtr(true),
		},
	}, t.handleGetIdentity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_identity",
		Description: "Update the agent identity. Optional: agent_name, identity_summary. Omitted fields are left unchanged by the service.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "Set Identity",
			DestructiveHint: boolPtr(false),
			IdempotentHint:  true,
			OpenWorldHint:   boolPtr(true),
		},
	}, t.handleSetIdentity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "end_session",
		Description: "Record a session handoff for the next session. REQUIRED: summary. Optional: working_on, context (arbitrary JSON object). A submission timestamp is attached automatically.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "End Session",
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, t.handleEndSession)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_relationships",
		Description: "Look up entities that co-occur with a given entity. REQUIRED: entity. Optional: type, limit (default 10).",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Find Relationships",
			ReadOnlyHint:  true,
			OpenWorldHint: boolPtr(true),
		},
	}, t.handleRelationships)
}
