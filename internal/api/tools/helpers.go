// Package tools declares the MCP tool surface of membridge: one tool per
// remote memory operation. Handlers validate input, call the memoryapi
// client, and render the outcome as a single text block. Failures of any
// kind — bad input, transport errors, remote-reported errors — become text
// results with the error flag set; no failure escapes to the protocol layer
// and none terminates the process.
package tools

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/membridge/internal/infra/memoryapi"
)

// Tools bundles the dependencies shared by every handler.
// Read-only after construction; handlers keep no per-call state.
type Tools struct {
	client    *memoryapi.Client
	sessionID string
}

// New creates the handler set backed by the given client. sessionID is the
// per-process identifier attached to session handoffs.
func New(client *memoryapi.Client, sessionID string) *Tools {
	return &Tools{client: client, sessionID: sessionID}
}

// EmptyInput is the input schema for tools that take no parameters.
type EmptyInput struct{}

// textResult wraps a rendered report in a successful tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult wraps a failure message in a tool result with the error flag set.
func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// runOp applies the uniform failure-shaping contract: call the remote
// operation, and either render the payload or convert the error into a
// "Failed to <verb>: ..." text result. Transport errors keep their status
// code and raw body; remote-reported errors keep the remote explanation.
func runOp[T any](verb string, call func() (T, error), render func(T) string) *mcp.CallToolResult {
	payload, err := call()
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to %s: %v", verb, err))
	}
	return textResult(render(payload))
}

// boolPtr returns a pointer to b, for optional tool annotation fields.
func boolPtr(b bool) *bool {
	return &b
}
