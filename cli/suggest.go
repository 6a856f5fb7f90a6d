package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scionsamurai/tonights-review/generator"
	"github.com/scionsamurai/tonights-review/operator"
	"github.com/scionsamurai/tonights-review/publisher"
)

type suggestOptions struct {
	src       reviewSource
	count     int
	output    string
	summaries []string
	dryRun    bool
}

func newSuggestCmd(a *app) *cobra.Command {
	opts := &suggestOptions{}
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Write topic suggestions for the reviews to a file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSuggest(cmd.Context(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.src.input, "input", defaultReviewsFile, "saved review page to read")
	f.StringVar(&opts.src.url, "url", "", "fetch the review page from this URL instead of --input")
	f.IntVar(&opts.count, "count", generator.DefaultSuggestOnlyCount, "number of topic suggestions to request")
	f.StringVar(&opts.output, "output", publisher.SuggestionsFile, "file to write the raw suggestions to")
	f.StringArrayVar(&opts.summaries, "summary", nil, "context summary for the suggestion prompt (repeatable; prompts when absent)")
	f.BoolVar(&opts.dryRun, "dry-run", false, "use a mock model; no API key needed")
	return cmd
}

func (a *app) runSuggest(ctx context.Context, opts *suggestOptions) error {
	if err := opts.src.checkInput(); err != nil {
		return err
	}
	llm, err := buildLLM(a.cfg, opts.dryRun, opts.count)
	if err != nil {
		return err
	}

	list, err := a.loadReviews(ctx, opts.src)
	if err != nil {
		return err
	}
	rendered, cleanup, err := renderScratch(list)
	if err != nil {
		return err
	}
	defer cleanup()

	summaries, err := a.summaries(ctx, operator.NewConsole(a.in, a.out), opts.summaries)
	if err != nil {
		return err
	}

	agent, err := generator.NewAgent(llm, generator.DraftSettings(a.cfg.LLM.Model), a.logger)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "\nGenerating blog post suggestions...")
	pc, err := agent.SuggestChain().Run(ctx, generator.NewPipelineContext(rendered, summaries, opts.count))
	if err != nil {
		return err
	}

	if err := publisher.WriteSuggestions(opts.output, pc.RawSuggestions); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %d suggestions to %s\n", len(pc.Suggestions), opts.output)
	return nil
}
