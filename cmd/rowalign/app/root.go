package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rowalign/internal/fixture"
	"github.com/katalvlaran/rowalign/internal/logging"
	"github.com/katalvlaran/rowalign/rowmatch"
)

func (a *App) createRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rowalign ORIGINAL MODIFIED",
		Short: "Align the rows of two tabular files",
		Long: `rowalign decides which rows of ORIGINAL correspond to which rows of MODIFIED
and which rows were added or removed.

Inputs are .yaml/.yml/.json files holding a list of rows, or .xlsx workbooks.

Strategies:
  position    row i matches row i
  key-column  rows with equal key cells match (--key)
  lcs         longest common subsequence of whole rows, then similarity
              matching of what is left

Every flag can also be set as ROWALIGN_<FLAG> (e.g. ROWALIGN_STRATEGY=lcs),
in a .env file or in .rowalign.yaml.`,
		Version:       a.version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.run,
	}
	bindFlags(cmd.Flags())
	cmd.SetVersionTemplate("rowalign {{.Version}}\n")

	return cmd
}

func (a *App) run(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(a.viper, cmd.Flags())
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	format, err := ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: a.stderr,
	}))
	logger := logging.FromContext(ctx)
	if cfg.ConfigFile != "" {
		logger.Debug().Str("file", cfg.ConfigFile).Msg("using config file")
	}

	original, err := fixture.Load(args[0], cfg.Sheet)
	if err != nil {
		return err
	}
	modified, err := fixture.Load(args[1], cfg.Sheet)
	if err != nil {
		return err
	}
	logger.Info().
		Str("original", args[0]).Int("original_rows", len(original)).
		Str("modified", args[1]).Int("modified_rows", len(modified)).
		Str("strategy", opts.Strategy.String()).
		Msg("aligning")

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	alignments, err := rowmatch.Align(ctx, original, modified, opts)
	if err != nil {
		return fmt.Errorf("align: %w", err)
	}
	if cfg.Verify {
		if err = rowmatch.Validate(alignments, len(original), len(modified)); err != nil {
			return err
		}
		logger.Debug().Msg("alignment verified")
	}

	report := NewReport(args[0], args[1], opts, alignments)
	logger.Info().
		Int("matched", report.Summary.Matched).
		Int("added", report.Summary.Added).
		Int("removed", report.Summary.Removed).
		Msg("done")

	return NewFormatter(format).Format(a.stdout, report)
}
