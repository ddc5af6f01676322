package glean

import (
	"context"
	"strings"

	"github.com/gleanwork/langchain-glean/internal/api"
	"github.com/gleanwork/langchain-glean/internal/types"
)

// AgentChatModel runs a specific, pre-built Glean agent instead of the
// general assistant. The agent is addressed by id; its inputs travel as a
// flat field map.
type AgentChatModel struct {
	client  *Client
	agentID string
}

// NewAgentChatModel binds an agent chat model to an authenticated client.
// The agent id is required.
func NewAgentChatModel(c *Client, agentID string) (*AgentChatModel, error) {
	if blank(agentID) {
		return nil, &Error{Kind: KindValidation, Message: "agent id is required"}
	}
	return &AgentChatModel{client: c, agentID: agentID}, nil
}

// extractUserInput concatenates the user turns into the agent's free-text
// input, one turn per line.
func extractUserInput(messages []Message) string {
	var lines []string
	for _, msg := range messages {
		if msg.Role == RoleUser {
			lines = append(lines, msg.Content)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Generate runs the agent with an input field built from the user turns.
func (m *AgentChatModel) Generate(ctx context.Context, messages []Message) (*Generation, error) {
	return m.GenerateWithFields(ctx, messages, nil)
}

// GenerateWithFields runs the agent with explicit input fields. The "input"
// field is auto-populated from the user turns when the caller has not
// supplied one.
func (m *AgentChatModel) GenerateWithFields(ctx context.Context, messages []Message, fields map[string]string) (*Generation, error) {
	merged := make(map[string]string, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	if _, ok := merged["input"]; !ok {
		if input := extractUserInput(messages); input != "" {
			merged["input"] = input
		}
	}

	req := types.AgentRunRequest{AgentID: m.agentID, Fields: merged}

	recordCall("agent_run")
	resp, err := api.RunAgent(ctx, m.client.http, req)
	if err != nil {
		ce := handleAPIError(err, "agent run")
		recordFailure("agent_run", ce.Kind)
		return nil, ce
	}

	var content strings.Builder
	for i := len(resp.Messages) - 1; i >= 0; i-- {
		if resp.Messages[i].Author == types.AuthorGleanAI {
			for _, frag := range resp.Messages[i].Fragments {
				content.WriteString(frag.Text)
			}
			break
		}
	}
	if content.Len() == 0 {
		ce := &Error{Kind: KindAPI, Message: "no agent response found in the Glean response"}
		recordFailure("agent_run", ce.Kind)
		return nil, ce
	}

	return &Generation{Message: Message{Role: RoleAssistant, Content: content.String()}}, nil
}

var _ ChatGenerator = (*AgentChatModel)(nil)
