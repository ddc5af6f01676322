package types

import "encoding/json"

// ------------------------------
// Wire enums
// ------------------------------

// Author values accepted by the Glean chat API.
const (
	AuthorUser    = "USER"
	AuthorGleanAI = "GLEAN_AI"
)

// Message types accepted by the Glean chat API.
const (
	MessageTypeContent = "CONTENT"
	MessageTypeContext = "CONTEXT"
)

// RelationEquals is the facet relation used for simple field=value filters.
const RelationEquals = "EQUALS"

// ------------------------------
// Request Types
// ------------------------------

// ChatMessageFragment is a contiguous span of message text.
type ChatMessageFragment struct {
	Text string `json:"text,omitempty"`
}

// ChatMessage is a single turn in a Glean chat conversation.
type ChatMessage struct {
	Author      string                `json:"author,omitempty"`
	MessageType string                `json:"messageType,omitempty"`
	Fragments   []ChatMessageFragment `json:"fragments,omitempty"`
}

// AgentConfig selects which agent executes a chat request.
type AgentConfig struct {
	Agent string `json:"agent,omitempty"`
	Mode  string `json:"mode,omitempty"`
}

// ChatRequest holds parameters for the chat endpoint.
type ChatRequest struct {
	Messages      []ChatMessage  `json:"messages"`
	SaveChat      bool           `json:"saveChat,omitempty"`
	ChatID        string         `json:"chatId,omitempty"`
	AgentConfig   *AgentConfig   `json:"agentConfig,omitempty"`
	Inclusions    map[string]any `json:"inclusions,omitempty"`
	Exclusions    map[string]any `json:"exclusions,omitempty"`
	TimeoutMillis int            `json:"timeoutMillis,omitempty"`
	ApplicationID string         `json:"applicationId,omitempty"`
	Stream        bool           `json:"stream,omitempty"`
}

// FacetFilterValue is one allowed value for a facet filter.
type FacetFilterValue struct {
	Value        string `json:"value"`
	RelationType string `json:"relationType,omitempty"`
}

// FacetFilter narrows a search or entity listing by a single field.
type FacetFilter struct {
	FieldName string             `json:"fieldName"`
	Values    []FacetFilterValue `json:"values"`
}

// SearchRequestOptions carries the structured filter form.
type SearchRequestOptions struct {
	FacetFilters []FacetFilter `json:"facetFilters,omitempty"`
}

// SearchRequest holds parameters for the search endpoint.
//
// Extra fields are merged verbatim into the outgoing JSON object and never
// override a typed field. This is the passthrough path for vendor parameters
// the typed struct does not model.
type SearchRequest struct {
	Query             string                `json:"query"`
	PageSize          int                   `json:"pageSize,omitempty"`
	Cursor            string                `json:"cursor,omitempty"`
	TimeoutMillis     int                   `json:"timeoutMillis,omitempty"`
	ResultTabIDs      []string              `json:"resultTabIds,omitempty"`
	DisableSpellcheck bool                  `json:"disableSpellcheck,omitempty"`
	RequestOptions    *SearchRequestOptions `json:"requestOptions,omitempty"`

	Extra map[string]any `json:"-"`
}

// MarshalJSON merges Extra into the typed payload.
func (r SearchRequest) MarshalJSON() ([]byte, error) {
	type plain SearchRequest
	b, err := json.Marshal(plain(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return b, nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	for k, v := range r.Extra {
		if _, taken := m[k]; !taken {
			m[k] = v
		}
	}
	return json.Marshal(m)
}

// EntityTypePeople selects the people directory in entity listings.
const EntityTypePeople = "PEOPLE"

// ListEntitiesRequest holds parameters for the entity listing endpoint.
type ListEntitiesRequest struct {
	EntityType string        `json:"entityType"`
	Query      string        `json:"query,omitempty"`
	PageSize   int           `json:"pageSize,omitempty"`
	Filter     []FacetFilter `json:"filter,omitempty"`
}

// AgentRunRequest holds parameters for running a named agent.
type AgentRunRequest struct {
	AgentID string            `json:"agentId"`
	Fields  map[string]string `json:"fields,omitempty"`
	Stream  bool              `json:"stream,omitempty"`
}
