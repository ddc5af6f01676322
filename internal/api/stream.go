package api

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gleanwork/langchain-glean/internal/types"
)

// maxStreamLine bounds a single NDJSON line; chat fragments are small but a
// line can carry a whole message list.
const maxStreamLine = 1 << 20

// ParseChatStream consumes a newline-delimited JSON chat response body and
// invokes fn once per assistant content fragment, in order.
//
// The chat session id is captured from the first line that carries a
// non-empty chatId and attached to every subsequent chunk; the tracking
// token is whatever the current line carries. Blank lines are skipped. A
// parse failure on any line is fatal for the whole stream: iteration stops
// and a wrapped error is returned.
func ParseChatStream(r io.Reader, fn func(types.ChatStreamChunk) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxStreamLine)

	var chatID string
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var cr types.ChatResponse
		if err := json.Unmarshal(line, &cr); err != nil {
			return fmt.Errorf("glean: parsing stream response: %w", err)
		}
		if chatID == "" && cr.ChatID != "" {
			chatID = cr.ChatID
		}
		for _, msg := range cr.Messages {
			if msg.Author != types.AuthorGleanAI || msg.MessageType != types.MessageTypeContent {
				continue
			}
			for _, frag := range msg.Fragments {
				if frag.Text == "" {
					continue
				}
				chunk := types.ChatStreamChunk{
					Text:          frag.Text,
					ChatID:        chatID,
					TrackingToken: cr.ChatSessionTrackingToken,
				}
				if err := fn(chunk); err != nil {
					return err
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("glean: reading stream: %w", err)
	}
	return nil
}
