package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventToolCall   EventType = "tool_call"
	EventToolReturn EventType = "tool_return"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ToolEvent represents one operation call.
// Output, IsError, Cached and Duration are only set on EventToolReturn.
type ToolEvent struct {
	EventBase
	CallID   string        `json:"call_id,omitempty"`
	ToolName string        `json:"tool_name"`
	Input    any           `json:"input,omitempty"`
	Output   any           `json:"output,omitempty"`
	IsError  bool          `json:"is_error,omitempty"`
	Cached   bool          `json:"cached,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

// LifecycleHooks defines callbacks for plugin observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnToolCall   func(context.Context, *ToolEvent)
	OnToolReturn func(context.Context, *ToolEvent)
}
