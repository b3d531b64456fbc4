package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gobeaver/mimesniff"
	"github.com/gobeaver/mimesniff/internal/log"
	"github.com/gobeaver/mimesniff/internal/scan"
)

const stdinPath = "-"

var ErrPathsFailed = errors.New("some paths failed")

type DetectArgs struct {
	root     *RootArgs
	ShowSize bool
}

func NewDetectArgs(root *RootArgs) *DetectArgs {
	return &DetectArgs{root: root}
}

func (da *DetectArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&da.ShowSize, "size", false, "Print file sizes")
}

func NewDetectCmd(args *DetectArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [path|-]...",
		Short: "Detect the content type of files or standard input",
		Long: `Print the content type of each path, one "path<TAB>type" line per argument.
"-" or no argument reads standard input.`,
		Args: cobra.ArbitraryArgs,
		RunE: args.run,
	}

	args.AddFlags(cmd)

	return cmd
}

func (da *DetectArgs) run(cmd *cobra.Command, paths []string) error {
	if len(paths) == 0 {
		paths = []string{stdinPath}
	}

	logger := log.WithContext(cmd.Context())
	det := da.root.Detector()
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range paths {
		r := da.detect(cmd.InOrStdin(), det, path)
		if r.Err != nil {
			failed++
			logger.Error("detect", slog.String("path", path), slog.Any("err", r.Err))
			mustN(fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, r.Err))
			continue
		}

		printResult(out, r, da.ShowSize)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrPathsFailed, failed, len(paths))
	}
	return nil
}

func (da *DetectArgs) detect(stdin io.Reader, det mimesniff.Detector, path string) scan.Result {
	if path != stdinPath {
		return scan.DetectFile(det, path)
	}

	r := scan.Result{Path: path}
	header, err := io.ReadAll(io.LimitReader(stdin, 512))
	if err != nil {
		r.Err = &mimesniff.DetectError{Op: "read", Err: err}
		return r
	}

	r.Size = int64(len(header))
	r.ContentType = det.Detect(header)

	if da.ShowSize {
		rest, err := io.Copy(io.Discard, stdin)
		if err != nil {
			r.Err = &mimesniff.DetectError{Op: "read", Err: err}
			return r
		}
		r.Size += rest
	}

	return r
}

func printResult(w io.Writer, r scan.Result, showSize bool) {
	if showSize {
		mustN(fmt.Fprintf(w, "%s\t%s\t%s\n", r.Path, r.ContentType, humanize.Bytes(uint64(r.Size))))
		return
	}
	mustN(fmt.Fprintf(w, "%s\t%s\n", r.Path, r.ContentType))
}

func mustN(_ int, err error) {
	must(err)
}
