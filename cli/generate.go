package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/scionsamurai/tonights-review/generator"
	"github.com/scionsamurai/tonights-review/operator"
	"github.com/scionsamurai/tonights-review/publisher"
)

const defaultReviewsFile = "imdb_reviews.html"

type generateOptions struct {
	src       reviewSource
	count     int
	pick      bool
	postsDir  string
	summaries []string
	html      bool
	dryRun    bool
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Suggest topics from reviews, let the operator pick one, and draft a post.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd.Context(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.src.input, "input", defaultReviewsFile, "saved review page to read")
	f.StringVar(&opts.src.url, "url", "", "fetch the review page from this URL instead of --input")
	f.IntVar(&opts.count, "count", generator.DefaultSuggestionCount, "number of topic suggestions to request")
	f.BoolVar(&opts.pick, "pick", false, "select by pasting part of a suggestion; writes blog_post_<N>.md without frontmatter")
	f.StringVar(&opts.postsDir, "posts-dir", "", "output directory (default from config)")
	f.StringArrayVar(&opts.summaries, "summary", nil, "context summary for the suggestion prompt (repeatable; prompts when absent)")
	f.BoolVar(&opts.html, "html", false, "also write an HTML preview next to the post")
	f.BoolVar(&opts.dryRun, "dry-run", false, "use a mock model; no API key needed")
	return cmd
}

func (a *app) runGenerate(ctx context.Context, opts *generateOptions) error {
	if err := opts.src.checkInput(); err != nil {
		return err
	}
	llm, err := buildLLM(a.cfg, opts.dryRun, opts.count)
	if err != nil {
		return err
	}
	postsDir := opts.postsDir
	if postsDir == "" {
		postsDir = a.cfg.PostsDir
	}
	pub, err := publisher.New(postsDir, a.cfg.AuthorID, a.verbose, a.logger)
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

	console := operator.NewConsole(a.in, a.out)
	console.CopyPaste = opts.pick
	summaries, err := a.summaries(ctx, console, opts.summaries)
	if err != nil {
		return err
	}

	agent, err := generator.NewAgent(llm, generator.DraftSettings(a.cfg.LLM.Model), a.logger)
	if err != nil {
		return err
	}
	chain, err := agent.GenerateChain(console)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "\nGenerating blog post suggestions...")
	pc, err := chain.Run(ctx, generator.NewPipelineContext(rendered, summaries, opts.count))
	if err != nil {
		return err
	}

	var path string
	if opts.pick {
		path, err = pub.WriteNumbered(pc.TopicIndex, pc.Draft)
	} else {
		path, err = pub.WritePost(pc.Topic, pc.Draft, time.Now())
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\nBlog post saved to %s\n", path)

	if opts.html {
		htmlPath, err := pub.WriteHTMLPreview(path, pc.Draft)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "HTML preview saved to %s\n", htmlPath)
	}
	return nil
}

// summaries returns the flag values, or asks the operator when none were given.
func (a *app) summaries(ctx context.Context, console *operator.Console, given []string) ([]string, error) {
	if len(given) > 0 {
		return given, nil
	}
	return console.Summaries(ctx)
}
