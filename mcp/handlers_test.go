package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// fakeTool records the input it was called with and returns a fixed output.
type fakeTool struct {
	name   string
	called string
	out    string
}

func (f *fakeTool) Name() string        { return f.name }
func (f *fakeTool) Description() string { return "fake" }
func (f *fakeTool) Call(_ context.Context, input string) (string, error) {
	f.called = input
	return f.out, nil
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", res.Content[0])
	}
	return tc.Text
}

func TestSearchHandler_PlainQuery(t *testing.T) {
	ft := &fakeTool{name: "glean_search", out: "Result 1:\nTitle: Doc"}
	h := &SearchHandler{tool: ft}

	res, err := h.handleSearch(context.Background(), callRequest(map[string]any{"query": "reports"}))
	if err != nil {
		t.Fatalf("handleSearch: %v", err)
	}
	if ft.called != "reports" {
		t.Fatalf("tool called with %q", ft.called)
	}
	if got := textOf(t, res); got != "Result 1:\nTitle: Doc" {
		t.Fatalf("result text = %q", got)
	}
}

func TestSearchHandler_PageSizeBecomesJSONInput(t *testing.T) {
	ft := &fakeTool{name: "glean_search"}
	h := &SearchHandler{tool: ft}

	_, err := h.handleSearch(context.Background(), callRequest(map[string]any{
		"query":     "reports",
		"page_size": float64(5),
	}))
	if err != nil {
		t.Fatalf("handleSearch: %v", err)
	}
	want := `{"pageSize":5,"query":"reports"}`
	if ft.called != want {
		t.Fatalf("tool input = %q, want %q", ft.called, want)
	}
}

func TestSearchHandler_MissingQueryIsToolError(t *testing.T) {
	h := &SearchHandler{tool: &fakeTool{}}
	res, err := h.handleSearch(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handleSearch: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected a tool error result")
	}
}

func TestPeopleHandler_BuildsStructuredInput(t *testing.T) {
	ft := &fakeTool{name: "glean_people_profile_search"}
	h := &PeopleHandler{tool: ft}

	_, err := h.handlePeopleSearch(context.Background(), callRequest(map[string]any{
		"filters": map[string]any{"email": "jane@acme.com"},
	}))
	if err != nil {
		t.Fatalf("handlePeopleSearch: %v", err)
	}
	want := `{"filters":{"email":"jane@acme.com"}}`
	if ft.called != want {
		t.Fatalf("tool input = %q, want %q", ft.called, want)
	}
}

func TestPeopleHandler_EmptyArgsRejected(t *testing.T) {
	h := &PeopleHandler{tool: &fakeTool{}}
	res, err := h.handlePeopleSearch(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handlePeopleSearch: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected a tool error result")
	}
}

func TestChatHandler_PassesMessageThrough(t *testing.T) {
	ft := &fakeTool{name: "glean_chat", out: "the answer"}
	h := &ChatHandler{tool: ft}

	res, err := h.handleChat(context.Background(), callRequest(map[string]any{"message": "a question"}))
	if err != nil {
		t.Fatalf("handleChat: %v", err)
	}
	if ft.called != "a question" {
		t.Fatalf("tool called with %q", ft.called)
	}
	if got := textOf(t, res); got != "the answer" {
		t.Fatalf("result text = %q", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]string{
		"debug": "debug",
		"WARN":  "warn",
		"error": "error",
		"bogus": "info",
		"":      "info",
		"info":  "info",
	}
	for in, want := range cases {
		if got := parseLogLevel(in).String(); got != want {
			t.Errorf("parseLogLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
