package types

import "encoding/json"

// ------------------------------
// Response Types
// ------------------------------

// Snippet is one highlighted span of a search hit.
type Snippet struct {
	Text string `json:"text,omitempty"`
}

// PersonRef identifies the author of a document.
type PersonRef struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// ShareInteraction records one share event on a document.
type ShareInteraction struct {
	NumDaysAgo int `json:"numDaysAgo"`
}

// Interactions aggregates activity recorded against a document.
type Interactions struct {
	Shares []ShareInteraction `json:"shares,omitempty"`
}

// DocumentMetadata is the nested metadata block of a search hit document.
type DocumentMetadata struct {
	DatasourceInstance string        `json:"datasourceInstance,omitempty"`
	ObjectType         string        `json:"objectType,omitempty"`
	MimeType           string        `json:"mimeType,omitempty"`
	LoggingID          string        `json:"loggingId,omitempty"`
	Visibility         string        `json:"visibility,omitempty"`
	DocumentCategory   string        `json:"documentCategory,omitempty"`
	CreateTime         string        `json:"createTime,omitempty"`
	UpdateTime         string        `json:"updateTime,omitempty"`
	Author             *PersonRef    `json:"author,omitempty"`
	Interactions       *Interactions `json:"interactions,omitempty"`
}

// ResultDocument is the document block of a search hit.
type ResultDocument struct {
	ID         string            `json:"id,omitempty"`
	Datasource string            `json:"datasource,omitempty"`
	DocType    string            `json:"docType,omitempty"`
	Metadata   *DocumentMetadata `json:"metadata,omitempty"`
}

// SearchResult is one hit returned by the search endpoint.
type SearchResult struct {
	Title            string          `json:"title,omitempty"`
	URL              string          `json:"url,omitempty"`
	TrackingToken    string          `json:"trackingToken,omitempty"`
	Snippets         []Snippet       `json:"snippets,omitempty"`
	Document         *ResultDocument `json:"document,omitempty"`
	ClusteredResults []SearchResult  `json:"clusteredResults,omitempty"`
	DebugInfo        json.RawMessage `json:"debugInfo,omitempty"`
}

// SearchResponse is the search endpoint payload.
type SearchResponse struct {
	Results       []SearchResult `json:"results,omitempty"`
	Cursor        string         `json:"cursor,omitempty"`
	TrackingToken string         `json:"trackingToken,omitempty"`
}

// ChatResponse is the non-streaming chat endpoint payload. A streaming
// response is a sequence of these, one JSON object per line.
type ChatResponse struct {
	Messages                 []ChatMessage `json:"messages,omitempty"`
	ChatID                   string        `json:"chatId,omitempty"`
	ChatSessionTrackingToken string        `json:"chatSessionTrackingToken,omitempty"`
}

// PersonResult is one directory entry returned by the entity listing
// endpoint. The metadata block is kept as a raw map: the vendor surface is
// loosely typed there, so it is normalized once at this boundary and the
// mappers only ever see the map form.
type PersonResult struct {
	Name     string         `json:"name,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ListEntitiesResponse is the entity listing payload.
type ListEntitiesResponse struct {
	Results    []PersonResult `json:"results,omitempty"`
	Cursor     string         `json:"cursor,omitempty"`
	TotalCount int            `json:"totalCount,omitempty"`
}

// AgentRunResponse is the agent run payload; it carries chat-shaped messages.
type AgentRunResponse struct {
	Messages []ChatMessage `json:"messages,omitempty"`
}

// ChatStreamChunk is one incremental fragment extracted from a streaming
// chat response line.
type ChatStreamChunk struct {
	Text          string
	ChatID        string
	TrackingToken string
}
