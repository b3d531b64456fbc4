package cli

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gobeaver/mimesniff"
	"github.com/gobeaver/mimesniff/internal/log"
	"github.com/gobeaver/mimesniff/internal/scan"
)

type ScanArgs struct {
	root           *RootArgs
	Include        string
	Exclude        []string
	Workers        int
	FollowSymlinks bool
	ShowSize       bool
}

func NewScanArgs(root *RootArgs, cfg *mimesniff.Config) *ScanArgs {
	return &ScanArgs{
		root:           root,
		Include:        cfg.Include,
		Exclude:        cfg.ExcludePatterns(),
		Workers:        cfg.Workers,
		FollowSymlinks: cfg.FollowSymlinks,
	}
}

func (sa *ScanArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sa.Include, "include", sa.Include, "Glob of relative paths to scan")
	cmd.Flags().StringSliceVar(&sa.Exclude, "exclude", sa.Exclude, "Globs of relative paths to skip")
	cmd.Flags().IntVarP(&sa.Workers, "workers", "w", sa.Workers, "Number of files read concurrently")
	cmd.Flags().BoolVar(&sa.FollowSymlinks, "follow-symlinks", sa.FollowSymlinks, "Report symlinks to regular files")
	cmd.Flags().BoolVar(&sa.ShowSize, "size", false, "Print file sizes")
}

func NewScanCmd(args *ScanArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan DIR",
		Short: "Detect the content type of every file under a directory",
		Args:  cobra.ExactArgs(1),
		RunE:  args.run,
	}

	args.AddFlags(cmd)

	return cmd
}

func (sa *ScanArgs) run(cmd *cobra.Command, dirs []string) error {
	ctx := cmd.Context()
	logger := log.WithContext(ctx)

	s, err := scan.New(sa.root.Detector(), scan.Options{
		Include:        sa.Include,
		Exclude:        sa.Exclude,
		Workers:        sa.Workers,
		FollowSymlinks: sa.FollowSymlinks,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", log.ErrInvalidArgument, err)
	}

	var files, failed int
	var total int64
	out := cmd.OutOrStdout()

	err = s.Run(ctx, dirs[0], func(r scan.Result) {
		if r.Err != nil {
			failed++
			mustN(fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err))
			return
		}
		files++
		total += r.Size
		printResult(out, r, sa.ShowSize)
	})
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	logger.Info("scan complete",
		slog.Int("files", files),
		slog.Int("failed", failed),
		slog.String("bytes", humanize.Bytes(uint64(total))),
	)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrPathsFailed, failed, files+failed)
	}
	return nil
}
