// Package chat holds the conversation transcript and talks to the
// OpenAI-compatible completion endpoint of a Gaia node.
package chat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/meowyx/gaia-toolkit/internal/nav"
)

// Message is one turn of the conversation.
type Message struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

// Transcript is the append-only conversation history for one session. It is
// never persisted; it lives and dies with the session.
type Transcript struct {
	messages []Message
}

// NewTranscript returns a transcript, seeded with a system message if a
// system prompt is configured. The seed happens exactly once.
func NewTranscript(systemPrompt string) *Transcript {
	t := &Transcript{}
	if systemPrompt != "" {
		t.messages = append(t.messages, Message{Role: "system", Content: systemPrompt})
	}
	return t
}

// AddUser appends a user turn.
func (t *Transcript) AddUser(content string) {
	t.messages = append(t.messages, Message{Role: "user", Content: content})
}

// AddAssistant appends an assistant turn.
func (t *Transcript) AddAssistant(content string) {
	t.messages = append(t.messages, Message{Role: "assistant", Content: content})
}

// Messages returns a copy of the transcript in order.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Turns counts the non-system messages.
func (t *Transcript) Turns() int {
	n := 0
	for _, m := range t.messages {
		if m.Role != "system" {
			n++
		}
	}
	return n
}

// Client sends the full transcript to a chat-completion endpoint. No
// streaming; one request, one reply.
type Client struct {
	Endpoint   string // base URL, e.g. http://localhost:8080
	Model      string
	APIKey     string // optional bearer token
	HTTPClient *http.Client
}

// NewClient returns a chat client for the given node endpoint.
func NewClient(endpoint, model, apiKey string) *Client {
	return &Client{
		Endpoint:   strings.TrimRight(endpoint, "/"),
		Model:      model,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Complete sends the transcript and returns the assistant's reply.
func (c *Client) Complete(messages []Message) (string, error) {
	body, err := json.Marshal(completionRequest{Model: c.Model, Messages: messages})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.Endpoint+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion endpoint returned %d", resp.StatusCode)
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// Directive resolves a chat command to a navigation transition. Typing one
// mid-conversation has exactly the same effect as picking the corresponding
// menu entry.
func Directive(line string) (nav.Transition, bool) {
	switch strings.TrimSpace(line) {
	case "/menu":
		return nav.ToMenu(), true
	case "/kb":
		return nav.Advance(nav.ScreenKnowledgeBase), true
	case "/exit", "/quit":
		return nav.Quit(), true
	}
	return nav.Transition{}, false
}
