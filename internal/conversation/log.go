// Package conversation holds the in-memory turn history for a chat session.
// Turns are append-only for the lifetime of a view and are not persisted
// across sessions.
package conversation

import (
	"time"

	"github.com/google/uuid"

	"campusmind/internal/sources"
)

// Roles for a turn.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single conversation entry. Immutable once appended.
type Turn struct {
	ID        string                  `json:"id"`
	Content   string                  `json:"content"`
	Role      string                  `json:"role"`
	Timestamp time.Time               `json:"timestamp"`
	AgentType string                  `json:"agent_type,omitempty"`
	Sources   *sources.SourcesPayload `json:"sources,omitempty"`
}

// Log is an ordered, append-only list of turns owned by a single view.
type Log struct {
	turns []Turn
}

// NewLog returns an empty conversation log.
func NewLog() *Log {
	return &Log{}
}

// NewUserTurn builds a user turn stamped with a fresh ID.
func NewUserTurn(content string) Turn {
	return Turn{
		ID:        uuid.NewString(),
		Content:   content,
		Role:      RoleUser,
		Timestamp: time.Now(),
	}
}

// NewAssistantTurn builds an assistant turn with its agent type and sources.
func NewAssistantTurn(content, agentType string, src *sources.SourcesPayload) Turn {
	return Turn{
		ID:        uuid.NewString(),
		Content:   content,
		Role:      RoleAssistant,
		Timestamp: time.Now(),
		AgentType: agentType,
		Sources:   src,
	}
}

// AppendUser records a user turn and returns it.
func (l *Log) AppendUser(content string) Turn {
	turn := NewUserTurn(content)
	l.turns = append(l.turns, turn)
	return turn
}

// AppendAssistant records an assistant turn with its agent type and sources.
func (l *Log) AppendAssistant(content, agentType string, src *sources.SourcesPayload) Turn {
	turn := NewAssistantTurn(content, agentType, src)
	l.turns = append(l.turns, turn)
	return turn
}

// Turns returns a copy of the history so callers cannot mutate it.
func (l *Log) Turns() []Turn {
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Len reports the number of turns.
func (l *Log) Len() int {
	return len(l.turns)
}

// Reset discards the history.
func (l *Log) Reset() {
	l.turns = nil
}
