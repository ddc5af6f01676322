package glean

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Tool wrappers sit inside automated agent loops, so Call never surfaces an
// error: every failure is rendered into the returned string instead.

// renderDocuments formats mapped documents as numbered, human-readable
// blocks for a text-only caller.
func renderDocuments(docs []Document) string {
	if len(docs) == 0 {
		return "No results found."
	}
	blocks := make([]string, 0, len(docs))
	for i, doc := range docs {
		title := doc.Metadata["title"]
		if title == "" {
			title = "No title"
		}
		url := doc.Metadata["url"]
		if url == "" {
			url = "No URL"
		}
		blocks = append(blocks, fmt.Sprintf("Result %d:\nTitle: %s\nURL: %s\nContent: %s\n", i+1, title, url, doc.PageContent))
	}
	return strings.Join(blocks, "\n\n")
}

// ------------------------------
// Search tool
// ------------------------------

// SearchTool exposes the search retriever as a text-in/text-out tool.
type SearchTool struct {
	retriever *SearchRetriever
}

// NewSearchTool wraps a search retriever.
func NewSearchTool(r *SearchRetriever) *SearchTool {
	return &SearchTool{retriever: r}
}

func (t *SearchTool) Name() string { return "glean_search" }

func (t *SearchTool) Description() string {
	return "Search for information in Glean. Useful for finding documents, emails, messages, " +
		"and other content across connected datasources. Input should be a search query or a " +
		"JSON object with search parameters."
}

// searchToolInput is the JSON object form the tool accepts besides plain text.
type searchToolInput struct {
	Query    string `json:"query"`
	K        int    `json:"k,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
}

func parseSearchToolInput(input string) searchToolInput {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "{") {
		var parsed searchToolInput
		if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
			return parsed
		}
	}
	return searchToolInput{Query: trimmed}
}

// Call runs the search and renders the results. Failures come back as an
// "Error searching Glean: …" string, never as an error.
func (t *SearchTool) Call(ctx context.Context, input string) (string, error) {
	params := parseSearchToolInput(input)
	if blank(params.Query) {
		return "Error: Search query is required", nil
	}

	var opts []SearchOption
	if params.K > 0 {
		opts = append(opts, SearchWithK(params.K))
	}
	if params.PageSize > 0 {
		opts = append(opts, SearchWithPageSize(params.PageSize))
	}

	docs, err := t.retriever.RetrieveWithOptions(ctx, params.Query, opts...)
	if err != nil {
		return fmt.Sprintf("Error searching Glean: %v", err), nil
	}
	return renderDocuments(docs), nil
}

// ------------------------------
// People profile search tool
// ------------------------------

// PeopleProfileSearchTool exposes the people retriever as a tool.
type PeopleProfileSearchTool struct {
	retriever *PeopleProfileRetriever
}

// NewPeopleProfileSearchTool wraps a people retriever.
func NewPeopleProfileSearchTool(r *PeopleProfileRetriever) *PeopleProfileSearchTool {
	return &PeopleProfileSearchTool{retriever: r}
}

func (t *PeopleProfileSearchTool) Name() string { return "glean_people_profile_search" }

func (t *PeopleProfileSearchTool) Description() string {
	return "Search Glean's people directory by name, title, team or other attributes. Input " +
		"should be a free-text query or a JSON object with \"query\" and/or \"filters\"."
}

type peopleToolInput struct {
	Query    string            `json:"query"`
	Filters  map[string]string `json:"filters,omitempty"`
	PageSize int               `json:"pageSize,omitempty"`
}

// Call looks people up and renders their profiles.
func (t *PeopleProfileSearchTool) Call(ctx context.Context, input string) (string, error) {
	req := PeopleProfileRequest{Query: strings.TrimSpace(input)}
	if strings.HasPrefix(req.Query, "{") {
		var parsed peopleToolInput
		if err := json.Unmarshal([]byte(req.Query), &parsed); err == nil {
			req = PeopleProfileRequest{Query: parsed.Query, Filters: parsed.Filters, PageSize: parsed.PageSize}
		}
	}

	docs, err := t.retriever.RetrieveProfiles(ctx, req)
	if err != nil {
		return fmt.Sprintf("Error searching people profiles: %v", err), nil
	}
	if len(docs) == 0 {
		return "No people found.", nil
	}

	blocks := make([]string, 0, len(docs))
	for i, doc := range docs {
		var b strings.Builder
		fmt.Fprintf(&b, "Person %d:\n%s\n", i+1, doc.PageContent)
		if email := doc.Metadata["email"]; email != "" {
			fmt.Fprintf(&b, "Email: %s\n", email)
		}
		if location := doc.Metadata["location"]; location != "" {
			fmt.Fprintf(&b, "Location: %s\n", location)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n"), nil
}

// ------------------------------
// Chat tool
// ------------------------------

// ChatTool exposes the chat model as a tool: one user message in, the
// assistant's text out.
type ChatTool struct {
	model *ChatModel
}

// NewChatTool wraps a chat model.
func NewChatTool(m *ChatModel) *ChatTool {
	return &ChatTool{model: m}
}

func (t *ChatTool) Name() string { return "glean_chat" }

func (t *ChatTool) Description() string {
	return "Ask Glean's assistant a question grounded in your company's content. Input should " +
		"be the question text."
}

// Call sends the input as a single user turn.
func (t *ChatTool) Call(ctx context.Context, input string) (string, error) {
	if blank(input) {
		return "Error: Chat message is required", nil
	}
	gen, err := t.model.Generate(ctx, []Message{{Role: RoleUser, Content: input}})
	if err != nil {
		return fmt.Sprintf("Error chatting with Glean: %v", err), nil
	}
	return gen.Message.Content, nil
}

// ------------------------------
// Agent tool
// ------------------------------

// AgentTool exposes a specific Glean agent as a tool.
type AgentTool struct {
	model *AgentChatModel
}

// NewAgentTool wraps an agent chat model.
func NewAgentTool(m *AgentChatModel) *AgentTool {
	return &AgentTool{model: m}
}

func (t *AgentTool) Name() string { return "glean_agent" }

func (t *AgentTool) Description() string {
	return "Run a pre-built Glean agent with the given input text and return its answer."
}

// Call runs the agent with the input as its sole user turn.
func (t *AgentTool) Call(ctx context.Context, input string) (string, error) {
	if blank(input) {
		return "Error: Agent input is required", nil
	}
	gen, err := t.model.Generate(ctx, []Message{{Role: RoleUser, Content: input}})
	if err != nil {
		return fmt.Sprintf("Error running Glean agent: %v", err), nil
	}
	return gen.Message.Content, nil
}

var (
	_ Tool = (*SearchTool)(nil)
	_ Tool = (*PeopleProfileSearchTool)(nil)
	_ Tool = (*ChatTool)(nil)
	_ Tool = (*AgentTool)(nil)
)
