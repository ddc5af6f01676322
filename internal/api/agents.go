package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/gleanwork/langchain-glean/internal/types"
)

// RunAgent executes a named agent and waits for its full output.
func RunAgent(ctx context.Context, rc *resty.Client, req types.AgentRunRequest) (*types.AgentRunResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out types.AgentRunResponse
	resp, err := rc.R().
		SetContext(ctx).
		SetBody(&req).
		SetResult(&out).
		Post("/agents/runs/wait")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &HTTPError{Op: "agent run", StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return &out, nil
}
