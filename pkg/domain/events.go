package domain

import (
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventBuild EventType = "build"
	EventStep  EventType = "step"
	EventPhase EventType = "phase"
	EventError EventType = "error"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Kind      Kind      `json:"kind"`
}

// NewEventBase stamps an event of the given type.
func NewEventBase(t EventType, k Kind) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t, Kind: k}
}

// BuildEvent is emitted once an engine has compiled its graph.
type BuildEvent struct {
	EventBase
	States   int      `json:"states"`
	Alphabet []string `json:"alphabet"`
	Starts   []string `json:"starts"`
}

// StepEvent is emitted after every successful Step.
type StepEvent struct {
	EventBase
	Step           int    `json:"step"`
	Symbol         string `json:"symbol,omitempty"`
	Configurations int    `json:"configurations"`
	Accepting      bool   `json:"accepting"`
	Stuck          bool   `json:"stuck,omitempty"`
	Halted         bool   `json:"halted,omitempty"`
}

// PhaseEvent is emitted for each part of a step recorded in the history trace.
type PhaseEvent struct {
	EventBase
	Step           int   `json:"step"`
	Phase          Phase `json:"phase"`
	Configurations int   `json:"configurations"`
}

// ErrorEvent is emitted when Step or Run fails.
type ErrorEvent struct {
	EventBase
	Op  string `json:"op"`
	Err error  `json:"-"`
}

// Hooks defines callbacks for engine observability. Nil callbacks are skipped.
type Hooks struct {
	OnBuild func(*BuildEvent)
	OnStep  func(*StepEvent)
	OnPhase func(*PhaseEvent)
	OnError func(*ErrorEvent)
}

func (h Hooks) Build(e *BuildEvent) {
	if h.OnBuild != nil {
		h.OnBuild(e)
	}
}

func (h Hooks) Stepped(e *StepEvent) {
	if h.OnStep != nil {
		h.OnStep(e)
	}
}

func (h Hooks) Phase(e *PhaseEvent) {
	if h.OnPhase != nil {
		h.OnPhase(e)
	}
}

func (h Hooks) Error(e *ErrorEvent) {
	if h.OnError != nil {
		h.OnError(e)
	}
}

// Merge returns hooks that call h first, then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnBuild: func(e *BuildEvent) { h.Build(e); other.Build(e) },
		OnStep:  func(e *StepEvent) { h.Stepped(e); other.Stepped(e) },
		OnPhase: func(e *PhaseEvent) { h.Phase(e); other.Phase(e) },
		OnError: func(e *ErrorEvent) { h.Error(e); other.Error(e) },
	}
}
