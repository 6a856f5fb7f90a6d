package generator

import (
	"time"

	"github.com/google/uuid"
)

// PipelineContext carries the artifacts produced so far in one generation run.
// It is a value: every With* method returns a modified copy and leaves the
// receiver untouched.
type PipelineContext struct {
	RunID string

	Reviews         string
	Summaries       []string
	SuggestionCount int

	RawSuggestions string
	Suggestions    []Suggestion
	Topic          string
	TopicIndex     int
	Excerpts       string
	Outline        string
	Draft          string

	Steps []StepRecord
}

// NewPipelineContext starts a run from rendered reviews and optional summaries.
func NewPipelineContext(reviews string, summaries []string, suggestionCount int) PipelineContext {
	if suggestionCount <= 0 {
		suggestionCount = DefaultSuggestionCount
	}
	return PipelineContext{
		RunID:           uuid.NewString(),
		Reviews:         reviews,
		Summaries:       append([]string(nil), summaries...),
		SuggestionCount: suggestionCount,
	}
}

func (pc PipelineContext) WithRawSuggestions(raw string) PipelineContext {
	pc.RawSuggestions = raw
	return pc
}

func (pc PipelineContext) WithSuggestions(s []Suggestion) PipelineContext {
	pc.Suggestions = append([]Suggestion(nil), s...)
	return pc
}

func (pc PipelineContext) WithSelection(sel Selection) PipelineContext {
	pc.Topic = sel.Topic
	pc.TopicIndex = sel.Index
	return pc
}

func (pc PipelineContext) WithExcerpts(excerpts string) PipelineContext {
	pc.Excerpts = excerpts
	return pc
}

func (pc PipelineContext) WithOutline(outline string) PipelineContext {
	pc.Outline = outline
	return pc
}

func (pc PipelineContext) WithDraft(draft string) PipelineContext {
	pc.Draft = draft
	return pc
}

// withStep appends a completion record without sharing the backing array.
func (pc PipelineContext) withStep(name string, at time.Time) PipelineContext {
	steps := make([]StepRecord, len(pc.Steps), len(pc.Steps)+1)
	copy(steps, pc.Steps)
	pc.Steps = append(steps, StepRecord{Name: name, CompletedAt: at})
	return pc
}
