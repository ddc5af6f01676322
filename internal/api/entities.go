package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/gleanwork/langchain-glean/internal/types"
)

// ListEntities queries the entity listing endpoint. The people directory is
// reached by setting EntityType to types.EntityTypePeople.
func ListEntities(ctx context.Context, rc *resty.Client, req types.ListEntitiesRequest) (*types.ListEntitiesResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out types.ListEntitiesResponse
	resp, err := rc.R().
		SetContext(ctx).
		SetBody(&req).
		SetResult(&out).
		Post("/listentities")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &HTTPError{Op: "listentities", StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return &out, nil
}
