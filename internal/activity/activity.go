// Package activity appends deployment and chat events to a local JSONL log.
// Only metadata is recorded; conversation content never touches disk.
package activity

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Event is one line of the activity log.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"` // deploy, chat, setup
	Model     string    `json:"model,omitempty"`
	Details   string    `json:"details,omitempty"`
	Turns     int       `json:"turns,omitempty"`
	Duration  float64   `json:"duration_secs,omitempty"`
}

func logPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gaiat", "activity.jsonl")
}

// Log appends an event. Logging is best effort; failures are returned but
// callers generally ignore them.
func Log(action, model, details string) error {
	return appendEvent(Event{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Action:    action,
		Model:     model,
		Details:   details,
	})
}

// LogChat records a finished chat session's shape, not its content.
func LogChat(model string, turns int, duration time.Duration) error {
	return appendEvent(Event{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Action:    "chat",
		Model:     model,
		Turns:     turns,
		Duration:  duration.Seconds(),
	})
}

func appendEvent(e Event) error {
	path := logPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	data, _ := json.Marshal(e)
	_, err = fmt.Fprintf(f, "%s\n", data)
	return err
}
