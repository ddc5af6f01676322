package glean

import (
	"context"

	"github.com/gleanwork/langchain-glean/internal/types"
)

// Framework-native data model: what component wrappers accept and return.
// Wire shapes live in internal/types; the public aliases at the bottom are
// for callers who need the raw request forms.

// Role identifies the author of a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is a single chat turn. Built fresh per call and never mutated.
type Message struct {
	Role    Role
	Content string
}

// Document is a retrieval result: body text plus a flat string metadata map.
// Immutable once built.
type Document struct {
	PageContent string
	Metadata    map[string]string
}

// Generation is a complete chat output with its session metadata.
type Generation struct {
	Message       Message
	ChatID        string
	TrackingToken string
}

// GenerationChunk is one incremental piece of a streaming chat output.
type GenerationChunk struct {
	Text          string
	ChatID        string
	TrackingToken string
}

// ChatGenerator is the chat-model capability contract.
type ChatGenerator interface {
	Generate(ctx context.Context, messages []Message) (*Generation, error)
}

// Retriever is the retrieval capability contract.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]Document, error)
}

// Tool is the text-in/text-out capability contract for agent loops. Call
// must not fail: implementations report problems in the returned string.
type Tool interface {
	Name() string
	Description() string
	Call(ctx context.Context, input string) (string, error)
}

// Public aliases so callers needing raw vendor request forms can import
// only this package.
type (
	SearchRequest       = types.SearchRequest
	ChatRequest         = types.ChatRequest
	ListEntitiesRequest = types.ListEntitiesRequest
	AgentConfig         = types.AgentConfig
	FacetFilter         = types.FacetFilter
	FacetFilterValue    = types.FacetFilterValue
)
