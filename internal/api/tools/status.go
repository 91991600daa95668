package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/membridge/internal/domain/memory"
)

// statusReport pairs the two status calls' payloads for rendering.
type statusReport struct {
	healthy    bool
	usedBytes  int64
	limitBytes int64
}

// handleStatus performs both status round trips: health first, then usage.
// Either call failing fails the whole operation; partial reports are never
// rendered.
func (t *Tools) handleStatus(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, any, error) {
	return runOp("check status",
		func() (statusReport, error) {
			health, err := t.client.Health(ctx)
			if err != nil {
				return statusReport{}, err
			}
			usage, err := t.client.Usage(ctx)
			if err != nil {
				return statusReport{}, err
			}
			return statusReport{
				healthy:    health.Healthy,
				usedBytes:  usage.UsedBytes,
				limitBytes: usage.LimitBytes,
			}, nil
		},
		func(rep statusReport) string {
			percent := memory.UsagePercent(rep.usedBytes, rep.limitBytes)
			return fmt.Sprintf("Service healthy: %t\nStorage used: %d of %d bytes (%d%%)",
				rep.healthy, rep.usedBytes, rep.limitBytes, percent)
		}), nil, nil
}
