package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose  bool
	platform string
}

// NewRootCmd creates the nativeprobe root command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	logger := logrus.New()

	rootCmd := &cobra.Command{
		Use:           "nativeprobe",
		Short:         "Check which native functions resolve on this machine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if opts.verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.platform, "platform", "", "override the detected platform (windows, mac, linux, bsd)")

	rootCmd.AddCommand(
		NewCheckCommand(opts, logger),
		NewPlatformCommand(opts),
	)

	return rootCmd
}
