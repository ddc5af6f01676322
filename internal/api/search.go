package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/gleanwork/langchain-glean/internal/types"
)

// Search runs a search query against the Glean search endpoint.
func Search(ctx context.Context, rc *resty.Client, req types.SearchRequest) (*types.SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out types.SearchResponse
	resp, err := rc.R().
		SetContext(ctx).
		SetBody(&req).
		SetResult(&out).
		Post("/search")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &HTTPError{Op: "search", StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return &out, nil
}
