package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gobeaver/mimesniff"
)

func NewSignaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signatures",
		Short: "List detectable content types in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, label := range mimesniff.Default().Labels() {
				mustN(fmt.Fprintf(out, "%s\t%s\t%s\n", label, mimesniff.Category(label), mimesniff.ExtensionFor(label)))
			}
			return nil
		},
	}
}
