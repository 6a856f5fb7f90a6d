package generator

import (
	"context"
	"errors"
	"log"
	"strings"
)

// Step names, in the order the generation chain runs them.
const (
	StepSuggest          = "suggest"
	StepParseSuggestions = "parse-suggestions"
	StepSelect           = "select"
	StepExcerpts         = "extract-excerpts"
	StepOutline          = "outline"
	StepDraft            = "draft"
)

// Agent 负责把每个生成步骤交给 LLM，并构建对应的步骤链。
type Agent struct {
	llm      LLMClient
	settings GenerationSettings
	logger   *log.Logger
}

func NewAgent(llm LLMClient, settings GenerationSettings, logger *log.Logger) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Agent{llm: llm, settings: settings, logger: logger}, nil
}

// GenerateChain builds the full post flow: suggest, parse, select, excerpts, outline, draft.
func (a *Agent) GenerateChain(selector Selector) (*Chain, error) {
	if selector == nil {
		return nil, errors.New("selector is required")
	}
	return &Chain{
		Name: "generate",
		Steps: []Step{
			{Name: StepSuggest, Run: a.Suggest},
			{Name: StepParseSuggestions, Run: ParseSuggestionsStep},
			{Name: StepSelect, Run: SelectStep(selector)},
			{Name: StepExcerpts, Run: a.Excerpts},
			{Name: StepOutline, Run: a.Outline},
			{Name: StepDraft, Run: a.Draft},
		},
		Logger: a.logger,
	}, nil
}

// SuggestChain builds the suggestions-only flow.
func (a *Agent) SuggestChain() *Chain {
	return &Chain{
		Name: "suggest",
		Steps: []Step{
			{Name: StepSuggest, Run: a.Suggest},
			{Name: StepParseSuggestions, Run: ParseSuggestionsStep},
		},
		Logger: a.logger,
	}
}

func (a *Agent) Suggest(ctx context.Context, pc PipelineContext) (PipelineContext, error) {
	raw, err := a.complete(ctx, KindSuggest, BuildSuggestPrompt(pc.Reviews, pc.Summaries, pc.SuggestionCount))
	if err != nil {
		return pc, err
	}
	return pc.WithRawSuggestions(raw), nil
}

// ParseSuggestionsStep is local; it never calls the model.
func ParseSuggestionsStep(_ context.Context, pc PipelineContext) (PipelineContext, error) {
	return pc.WithSuggestions(ParseSuggestions(pc.RawSuggestions)), nil
}

// SelectStep asks selector for the topic.
func SelectStep(selector Selector) StepFunc {
	return func(ctx context.Context, pc PipelineContext) (PipelineContext, error) {
		sel, err := selector.Select(ctx, pc.Suggestions)
		if err != nil {
			return pc, err
		}
		if strings.TrimSpace(sel.Topic) == "" {
			return pc, errors.New("no topic selected")
		}
		return pc.WithSelection(sel), nil
	}
}

func (a *Agent) Excerpts(ctx context.Context, pc PipelineContext) (PipelineContext, error) {
	out, err := a.complete(ctx, KindExcerpts, BuildExcerptsPrompt(pc.Topic, pc.Reviews))
	if err != nil {
		return pc, err
	}
	return pc.WithExcerpts(out), nil
}

func (a *Agent) Outline(ctx context.Context, pc PipelineContext) (PipelineContext, error) {
	out, err := a.complete(ctx, KindOutline, BuildOutlinePrompt(pc.Topic, pc.Excerpts))
	if err != nil {
		return pc, err
	}
	return pc.WithOutline(out), nil
}

func (a *Agent) Draft(ctx context.Context, pc PipelineContext) (PipelineContext, error) {
	out, err := a.complete(ctx, KindDraft, BuildDraftPrompt(pc.Topic, pc.Outline, pc.Excerpts))
	if err != nil {
		return pc, err
	}
	return pc.WithDraft(out), nil
}

func (a *Agent) complete(ctx context.Context, kind, user string) (string, error) {
	return a.llm.Complete(ctx, Prompt{
		Kind:     kind,
		User:     user,
		Settings: a.settings,
	})
}
