package api

import (
	"context"
	"io"

	"github.com/go-resty/resty/v2"

	"github.com/gleanwork/langchain-glean/internal/types"
)

// Chat sends a chat request and returns the complete response.
func Chat(ctx context.Context, rc *resty.Client, req types.ChatRequest) (*types.ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out types.ChatResponse
	resp, err := rc.R().
		SetContext(ctx).
		SetBody(&req).
		SetResult(&out).
		Post("/chat")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &HTTPError{Op: "chat", StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return &out, nil
}

// ChatStream sends a chat request with streaming enabled and returns the raw
// newline-delimited JSON body. The caller owns the ReadCloser and must close
// it; ParseChatStream consumes it chunk by chunk.
func ChatStream(ctx context.Context, rc *resty.Client, req types.ChatRequest) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req.Stream = true
	resp, err := rc.R().
		SetContext(ctx).
		SetBody(&req).
		SetDoNotParseResponse(true).
		Post("/chat")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() >= 400 {
		body, _ := io.ReadAll(resp.RawBody())
		_ = resp.RawBody().Close()
		return nil, &HTTPError{Op: "chat stream", StatusCode: resp.StatusCode(), Body: string(body)}
	}
	return resp.RawBody(), nil
}
