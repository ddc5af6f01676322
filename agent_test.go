package glean

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleanwork/langchain-glean/internal/types"
)

func TestNewAgentChatModel_RequiresAgentID(t *testing.T) {
	_, err := NewAgentChatModel(nil, "  ")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestExtractUserInput(t *testing.T) {
	msgs := []Message{
		{Role: RoleSystem, Content: "be brief"},
		{Role: RoleUser, Content: "first question"},
		{Role: RoleAssistant, Content: "an answer"},
		{Role: RoleUser, Content: "second question"},
	}
	assert.Equal(t, "first question\nsecond question", extractUserInput(msgs))
	assert.Equal(t, "", extractUserInput(nil))
}

func TestAgentChatModel_Generate(t *testing.T) {
	var gotReq types.AgentRunRequest
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotReq)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages": [
			{"author": "USER", "fragments": [{"text": "summarize"}]},
			{"author": "GLEAN_AI", "fragments": [{"text": "Here is "}, {"text": "the summary."}]}
		]}`))
	})

	m, err := NewAgentChatModel(c, "agent-1")
	require.NoError(t, err)

	gen, err := m.Generate(context.Background(), []Message{{Role: RoleUser, Content: "summarize"}})
	require.NoError(t, err)
	assert.Equal(t, "agent-1", gotReq.AgentID)
	assert.Equal(t, "summarize", gotReq.Fields["input"])
	assert.Equal(t, "Here is the summary.", gen.Message.Content)
	assert.Equal(t, RoleAssistant, gen.Message.Role)
}

func TestAgentChatModel_ExplicitFieldsWin(t *testing.T) {
	var gotReq types.AgentRunRequest
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotReq)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages": [{"author": "GLEAN_AI", "fragments": [{"text": "ok"}]}]}`))
	})

	m, err := NewAgentChatModel(c, "agent-1")
	require.NoError(t, err)

	_, err = m.GenerateWithFields(context.Background(),
		[]Message{{Role: RoleUser, Content: "ignored"}},
		map[string]string{"input": "explicit", "region": "emea"},
	)
	require.NoError(t, err)
	assert.Equal(t, "explicit", gotReq.Fields["input"])
	assert.Equal(t, "emea", gotReq.Fields["region"])
}

func TestAgentChatModel_EmptyResponseIsError(t *testing.T) {
	c, _ := newTestServer(t, jsonHandler(t, `{"messages": []}`))

	m, err := NewAgentChatModel(c, "agent-1")
	require.NoError(t, err)

	_, err = m.Generate(context.Background(), []Message{{Role: RoleUser, Content: "q"}})
	require.Error(t, err)
	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, KindAPI, ce.Kind)
}
