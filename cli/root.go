package cli

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/scionsamurai/tonights-review/config"
)

// ErrMissingInput is returned when a required input file does not exist.
var ErrMissingInput = errors.New("input file not found")

// app holds what every command shares once the root flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	in     io.Reader
	out    io.Writer
	logger *log.Logger
}

func (a *app) infof(format string, args ...interface{}) {
	if !a.verbose {
		return
	}
	a.logger.Printf("[INFO] "+format, args...)
}

// NewRootCmd builds the command tree reading operator answers from in and
// writing user-facing output to out.
func NewRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{in: in, out: out, logger: log.Default()}

	root := &cobra.Command{
		Use:           "tonights-review",
		Short:         "Turn scraped user reviews into blog post drafts.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.infof("config loaded from %s (provider=%s model=%s)", a.configPath, cfg.LLM.Provider, cfg.LLM.Model)
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to config.json (optional)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable info logs")

	root.AddCommand(
		newGenerateCmd(a),
		newSuggestCmd(a),
		newExtractCmd(a),
		newRefineCmd(a),
	)
	return root
}

// Execute runs the CLI against the process's standard streams.
func Execute(ctx context.Context) error {
	return NewRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx)
}
