package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/scionsamurai/tonights-review/reviews"
)

const defaultExtractFile = "extracted_reviews.md"

type extractOptions struct {
	src    reviewSource
	output string
}

func newExtractCmd(a *app) *cobra.Command {
	opts := &extractOptions{}
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Convert a review page to markdown and print a summary table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExtract(cmd.Context(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.src.input, "input", defaultReviewsFile, "saved review page to read")
	f.StringVar(&opts.src.url, "url", "", "fetch the review page from this URL instead of --input")
	f.StringVarP(&opts.output, "output", "o", defaultExtractFile, "markdown file to write")
	return cmd
}

func (a *app) runExtract(ctx context.Context, opts *extractOptions) error {
	list, err := a.loadReviews(ctx, opts.src)
	if err != nil {
		return err
	}

	out, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := reviews.RenderTo(out, list); err != nil {
		out.Close()
		return fmt.Errorf("render reviews: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(a.out)
	t.AppendHeader(table.Row{"#", "Title", "Reviewer", "Rating"})
	for i, r := range list {
		rating := "-"
		if r.Rating != nil {
			rating = strconv.Itoa(*r.Rating) + "/10"
		}
		t.AppendRow(table.Row{i + 1, r.Title, r.Reviewer, rating})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()

	fmt.Fprintf(a.out, "Extracted %d reviews to %s\n", len(list), opts.output)
	return nil
}
