package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	glean "github.com/gleanwork/langchain-glean"
)

// The handlers delegate to the glean tool wrappers, which already render
// results as text and never return an error; every outcome becomes a text
// result for the MCP caller.

// SearchHandler exposes the glean_search tool.
type SearchHandler struct {
	tool glean.Tool
}

// NewSearchHandler builds a search handler backed by the given client.
func NewSearchHandler(c *glean.Client) *SearchHandler {
	return &SearchHandler{tool: glean.NewSearchTool(glean.NewSearchRetriever(c))}
}

// RegisterTools registers the glean_search tool.
func (h *SearchHandler) RegisterTools(s *server.MCPServer) error {
	searchTool := mcp.NewTool(h.tool.Name(),
		mcp.WithDescription(h.tool.Description()),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query text")),
		mcp.WithNumber("page_size", mcp.Description("Number of results to return (1-100)")),
	)
	s.AddTool(searchTool, h.handleSearch)
	return nil
}

func (h *SearchHandler) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	input := query
	if v, ok := req.GetArguments()["page_size"].(float64); ok && v >= 1 {
		b, _ := json.Marshal(map[string]any{"query": query, "pageSize": int(v)})
		input = string(b)
	}

	out, _ := h.tool.Call(ctx, input)
	return mcp.NewToolResultText(out), nil
}

// PeopleHandler exposes the glean_people_profile_search tool.
type PeopleHandler struct {
	tool glean.Tool
}

// NewPeopleHandler builds a people-directory handler backed by the client.
func NewPeopleHandler(c *glean.Client) *PeopleHandler {
	return &PeopleHandler{tool: glean.NewPeopleProfileSearchTool(glean.NewPeopleProfileRetriever(c))}
}

// RegisterTools registers the glean_people_profile_search tool.
func (h *PeopleHandler) RegisterTools(s *server.MCPServer) error {
	peopleTool := mcp.NewTool(h.tool.Name(),
		mcp.WithDescription(h.tool.Description()),
		mcp.WithString("query", mcp.Description("Free-text query to search people by name, title, etc.")),
		mcp.WithObject("filters", mcp.Description("Facet-name to value mapping, e.g. {\"email\": \"jane@acme.com\"}")),
	)
	s.AddTool(peopleTool, h.handlePeopleSearch)
	return nil
}

func (h *PeopleHandler) handlePeopleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	payload := map[string]any{}
	if q, ok := args["query"].(string); ok && q != "" {
		payload["query"] = q
	}
	if f, ok := args["filters"].(map[string]any); ok && len(f) > 0 {
		filters := make(map[string]string, len(f))
		for k, v := range f {
			if s, ok := v.(string); ok {
				filters[k] = s
			}
		}
		payload["filters"] = filters
	}
	if len(payload) == 0 {
		return mcp.NewToolResultError(`at least one of "query" or "filters" must be provided`), nil
	}

	b, _ := json.Marshal(payload)
	out, _ := h.tool.Call(ctx, string(b))
	return mcp.NewToolResultText(out), nil
}

// ChatHandler exposes the glean_chat tool.
type ChatHandler struct {
	tool glean.Tool
}

// NewChatHandler builds a chat handler backed by the client.
func NewChatHandler(c *glean.Client) *ChatHandler {
	return &ChatHandler{tool: glean.NewChatTool(glean.NewChatModel(c))}
}

// RegisterTools registers the glean_chat tool.
func (h *ChatHandler) RegisterTools(s *server.MCPServer) error {
	chatTool := mcp.NewTool(h.tool.Name(),
		mcp.WithDescription(h.tool.Description()),
		mcp.WithString("message", mcp.Required(), mcp.Description("Question for the Glean assistant")),
	)
	s.AddTool(chatTool, h.handleChat)
	return nil
}

func (h *ChatHandler) handleChat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := req.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := h.tool.Call(ctx, message)
	return mcp.NewToolResultText(out), nil
}
