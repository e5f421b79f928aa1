package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewPlatformCommand prints the platform bindings are checked against.
func NewPlatformCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Print the detected platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := opts.resolvePlatform()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), p)
			return err
		},
	}
}
