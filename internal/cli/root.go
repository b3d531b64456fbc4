package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gobeaver/mimesniff"
	"github.com/gobeaver/mimesniff/internal/log"
)

const (
	cmdName     = "mimesniff"
	cmdDesc     = `Detect the content type of files from their first 512 bytes.`
	cmdExamples = `  # Detect files.
  mimesniff a.bin b.dat

  # Detect standard input.
  curl -s https://example.com | mimesniff -

  # Scan a tree, skipping vendored code.
  mimesniff scan . --include '**.{png,jpg}' --exclude vendor

  # Report files as they are written.
  mimesniff watch ./uploads --filter '**'`
)

type RootArgs struct {
	LogLevel  string
	LogFormat string
	CacheSize int
}

// NewRootArgs returns root arguments defaulting to the values in cfg.
func NewRootArgs(cfg *mimesniff.Config) *RootArgs {
	return &RootArgs{
		LogLevel:  cfg.LogLevel,
		LogFormat: cfg.LogFormat,
		CacheSize: cfg.CacheSize,
	}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", ra.LogLevel, fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", ra.LogFormat, fmt.Sprintf("Log format, one of: %s", log.AllFormats))
	cmd.PersistentFlags().
		IntVar(&ra.CacheSize, "cache-size", ra.CacheSize, "Number of detection results to cache, 0 disables the cache")

	err := cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	must(err)

	err = cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	)
	must(err)
}

// Detector returns the detector selected by the root flags.
func (ra *RootArgs) Detector() mimesniff.Detector {
	cfg := &mimesniff.Config{CacheSize: ra.CacheSize}
	return cfg.NewDetector()
}

// NewRootCmd returns the mimesniff command tree. Flag defaults come from cfg;
// flags given on the command line take precedence.
func NewRootCmd(cfg *mimesniff.Config) *cobra.Command {
	args := NewRootArgs(cfg)
	detectArgs := NewDetectArgs(args)

	detectCmd := NewDetectCmd(detectArgs)
	cmd := &cobra.Command{
		Use:               cmdName + " [path|-]...",
		Short:             cmdDesc,
		Example:           cmdExamples,
		PersistentPreRunE: setupLogging(args),
		Args:              detectCmd.Args,
		RunE:              detectCmd.RunE,
		SilenceUsage:      true,
	}

	args.AddFlags(cmd)
	detectArgs.AddFlags(cmd)
	cmd.AddCommand(
		detectCmd,
		NewScanCmd(NewScanArgs(args, cfg)),
		NewWatchCmd(NewWatchArgs(args, cfg)),
		NewSignaturesCmd(),
	)

	return cmd
}

func setupLogging(rc *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if rc.CacheSize < 0 {
			return fmt.Errorf("%w: cache size must not be negative", log.ErrInvalidArgument)
		}

		logHandler, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), rc.LogLevel, rc.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		logger := slog.New(logHandler)
		slog.SetDefault(logger)
		cmd.SetContext(log.NewContext(cmd.Context(), logger))

		return nil
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
