package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gobeaver/mimesniff"
	"github.com/gobeaver/mimesniff/internal/log"
	"github.com/gobeaver/mimesniff/internal/watch"
)

type WatchArgs struct {
	root   *RootArgs
	Filter string
}

func NewWatchArgs(root *RootArgs, cfg *mimesniff.Config) *WatchArgs {
	return &WatchArgs{root: root, Filter: cfg.Include}
}

func (wa *WatchArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&wa.Filter, "filter", "f", wa.Filter,
		`Glob matched against relative paths and base names, "**" watches subdirectories`)
}

func NewWatchCmd(args *WatchArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch DIR",
		Short: "Print the content type of files as they are created or written",
		Args:  cobra.ExactArgs(1),
		RunE:  args.run,
	}

	args.AddFlags(cmd)

	return cmd
}

func (wa *WatchArgs) run(cmd *cobra.Command, dirs []string) error {
	w, err := watch.New(wa.root.Detector(), wa.Filter)
	if err != nil {
		return fmt.Errorf("%w: %w", log.ErrInvalidArgument, err)
	}

	out := cmd.OutOrStdout()
	err = w.Run(cmd.Context(), dirs[0], func(r watch.Result) {
		if r.Err != nil {
			mustN(fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err))
			return
		}
		mustN(fmt.Fprintf(out, "%s\t%s\t%s\n", r.Op, r.Path, r.ContentType))
	})
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	return nil
}
