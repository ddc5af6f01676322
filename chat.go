package glean

import (
	"context"
	"strings"

	"github.com/gleanwork/langchain-glean/internal/api"
	"github.com/gleanwork/langchain-glean/internal/types"
)

// ChatModel generates responses from Glean's assistant.
//
// The session pair {chat id, tracking token} is the only mutable state: it
// is set from the first successful response and threaded into following
// requests. Calls on one instance are not coordinated; serialize calls per
// instance, or use separate instances for concurrent sessions.
type ChatModel struct {
	client *Client

	chatID        string
	trackingToken string

	saveChat      bool
	agentConfig   types.AgentConfig
	inclusions    map[string]any
	exclusions    map[string]any
	timeoutMillis int
	applicationID string
}

// ChatOption configures a ChatModel at construction.
type ChatOption func(*ChatModel)

// WithSaveChat makes Glean persist the chat session server-side.
func WithSaveChat(save bool) ChatOption {
	return func(m *ChatModel) { m.saveChat = save }
}

// WithChatID continues an existing chat session.
func WithChatID(id string) ChatOption {
	return func(m *ChatModel) { m.chatID = id }
}

// WithAgentConfig selects the agent and mode executing chat requests.
func WithAgentConfig(agent, mode string) ChatOption {
	return func(m *ChatModel) { m.agentConfig = types.AgentConfig{Agent: agent, Mode: mode} }
}

// WithInclusions restricts chat to the given content filters.
func WithInclusions(filters map[string]any) ChatOption {
	return func(m *ChatModel) { m.inclusions = filters }
}

// WithExclusions keeps chat away from the given content filters. Content
// matched by both inclusions and exclusions is excluded.
func WithExclusions(filters map[string]any) ChatOption {
	return func(m *ChatModel) { m.exclusions = filters }
}

// WithTimeoutMillis sets the server-side handling deadline; the vendor
// answers 408 when exceeded.
func WithTimeoutMillis(ms int) ChatOption {
	return func(m *ChatModel) { m.timeoutMillis = ms }
}

// WithApplicationID tags requests with the originating application.
func WithApplicationID(id string) ChatOption {
	return func(m *ChatModel) { m.applicationID = id }
}

// NewChatModel binds a chat model to an authenticated client.
func NewChatModel(c *Client, opts ...ChatOption) *ChatModel {
	m := &ChatModel{
		client:      c,
		agentConfig: types.AgentConfig{Agent: "DEFAULT", Mode: "DEFAULT"},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ChatID returns the session id captured from the last successful response,
// empty before the first call.
func (m *ChatModel) ChatID() string { return m.chatID }

// TrackingToken returns the correlation token from the last response.
func (m *ChatModel) TrackingToken() string { return m.trackingToken }

// toGleanMessage maps a framework message to the vendor turn shape.
// System prompts become context-type turns attributed to the user role, a
// vendor convention; unrecognized roles default to user content.
func toGleanMessage(msg Message) types.ChatMessage {
	author := types.AuthorUser
	messageType := types.MessageTypeContent
	switch msg.Role {
	case RoleAssistant:
		author = types.AuthorGleanAI
	case RoleSystem:
		messageType = types.MessageTypeContext
	}
	return types.ChatMessage{
		Author:      author,
		MessageType: messageType,
		Fragments:   []types.ChatMessageFragment{{Text: msg.Content}},
	}
}

func (m *ChatModel) buildChatRequest(messages []Message) types.ChatRequest {
	wire := make([]types.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		wire = append(wire, toGleanMessage(msg))
	}
	cfg := m.agentConfig
	req := types.ChatRequest{
		Messages:      wire,
		SaveChat:      m.saveChat,
		AgentConfig:   &cfg,
		Inclusions:    m.inclusions,
		Exclusions:    m.exclusions,
		TimeoutMillis: m.timeoutMillis,
		ApplicationID: m.applicationID,
	}
	if m.chatID != "" {
		req.ChatID = m.chatID
	}
	return req
}

// Generate sends the conversation to Glean and returns the assistant's
// reply. The reply is the last assistant content message in the response
// with its fragments concatenated in order.
func (m *ChatModel) Generate(ctx context.Context, messages []Message) (*Generation, error) {
	req := m.buildChatRequest(messages)

	recordCall("chat")
	resp, err := api.Chat(ctx, m.client.http, req)
	if err != nil {
		ce := handleAPIError(err, "chat")
		recordFailure("chat", ce.Kind)
		return nil, ce
	}
	return m.mapChatResponse(resp)
}

func (m *ChatModel) mapChatResponse(resp *types.ChatResponse) (*Generation, error) {
	var reply *types.ChatMessage
	for i := range resp.Messages {
		msg := &resp.Messages[i]
		if msg.Author == types.AuthorGleanAI && msg.MessageType == types.MessageTypeContent {
			reply = msg
		}
	}
	if reply == nil {
		ce := &Error{Kind: KindAPI, Message: "no assistant response found in the Glean response"}
		recordFailure("chat", ce.Kind)
		return nil, ce
	}

	var content strings.Builder
	for _, frag := range reply.Fragments {
		content.WriteString(frag.Text)
	}

	if resp.ChatID != "" {
		m.chatID = resp.ChatID
	}
	if resp.ChatSessionTrackingToken != "" {
		m.trackingToken = resp.ChatSessionTrackingToken
	}

	return &Generation{
		Message:       Message{Role: RoleAssistant, Content: content.String()},
		ChatID:        m.chatID,
		TrackingToken: resp.ChatSessionTrackingToken,
	}, nil
}

// Stream sends the conversation with streaming enabled and invokes fn once
// per incremental assistant fragment, in order. Any error from fn stops the
// stream and is returned unchanged; a malformed line aborts the whole
// stream with a wrapped error.
func (m *ChatModel) Stream(ctx context.Context, messages []Message, fn func(GenerationChunk) error) error {
	req := m.buildChatRequest(messages)

	recordCall("chat_stream")
	body, err := api.ChatStream(ctx, m.client.http, req)
	if err != nil {
		ce := handleAPIError(err, "chat stream")
		recordFailure("chat_stream", ce.Kind)
		return ce
	}
	defer func() { _ = body.Close() }()

	return api.ParseChatStream(body, func(chunk types.ChatStreamChunk) error {
		if chunk.ChatID != "" && m.chatID == "" {
			m.chatID = chunk.ChatID
		}
		if chunk.TrackingToken != "" {
			m.trackingToken = chunk.TrackingToken
		}
		return fn(GenerationChunk{
			Text:          chunk.Text,
			ChatID:        chunk.ChatID,
			TrackingToken: chunk.TrackingToken,
		})
	})
}

var _ ChatGenerator = (*ChatModel)(nil)
