package generator

import (
	"context"
	"time"
)

// Suggestion is one candidate topic block from the suggest step.
type Suggestion struct {
	// Index is the 1-based position in the parsed list.
	Index int
	Text  string
}

// Selection is the operator's chosen topic. Index is 0 for free-form topics.
type Selection struct {
	Index int
	Topic string
}

// Selector presents suggestions to an operator and returns the chosen topic.
type Selector interface {
	Select(ctx context.Context, suggestions []Suggestion) (Selection, error)
}

// StepRecord 记录一次已完成的步骤。
type StepRecord struct {
	Name        string
	CompletedAt time.Time
}
