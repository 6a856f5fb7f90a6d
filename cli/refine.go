package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scionsamurai/tonights-review/generator"
	"github.com/scionsamurai/tonights-review/refiner"
)

type refineOptions struct {
	src    reviewSource
	dryRun bool
}

func newRefineCmd(a *app) *cobra.Command {
	opts := &refineOptions{}
	cmd := &cobra.Command{
		Use:   "refine -f <file.md>",
		Short: "Rewrite a markdown document section by section.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRefine(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.src.input, "file", "f", "", "markdown document to refine")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "use a mock model that returns sections unchanged")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) runRefine(ctx context.Context, opts *refineOptions) error {
	if err := opts.src.checkInput(); err != nil {
		return err
	}
	llm, err := buildLLM(a.cfg, opts.dryRun, 0)
	if err != nil {
		return err
	}
	r, err := refiner.New(llm, generator.RefinerSettings(a.cfg.LLM.Model), a.logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Refining %s...\n", opts.src.input)
	outPath, err := r.RefineFile(ctx, opts.src.input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Enhanced document saved to %s\n", outPath)
	return nil
}
