package commands

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/amikos-tech/pure-native/manifest"
	"github.com/amikos-tech/pure-native/native"
)

// ErrRequiredMissing is returned by check when a required function did not
// resolve.
var ErrRequiredMissing = errors.New("required functions are missing")

type checkOptions struct {
	failFast bool
}

// NewCheckCommand binds every function of a manifest file and reports the result.
func NewCheckCommand(root *rootOptions, logger *logrus.Logger) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check <manifest.toml>",
		Short: "Resolve every function in a manifest file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, err := root.resolvePlatform()
			if err != nil {
				return err
			}
			file, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			binder, err := native.NewBinder(native.WithPlatform(platform))
			if err != nil {
				return err
			}
			defer binder.FreeAll()

			logger.WithFields(logrus.Fields{
				"manifest":  args[0],
				"platform":  platform,
				"functions": len(file.Functions),
			}).Debug("checking manifest")

			if opts.failFast {
				return bindAll(cmd.OutOrStdout(), binder, file, logger)
			}
			return report(cmd.OutOrStdout(), binder, file, logger)
		},
	}
	cmd.Flags().BoolVar(&opts.failFast, "fail-fast", false, "stop at the first missing required function")
	return cmd
}

func (o *rootOptions) resolvePlatform() (native.Platform, error) {
	if o.platform == "" {
		return native.CurrentPlatform()
	}
	p, err := native.ParsePlatform(o.platform)
	if err != nil {
		return 0, err
	}
	switch p {
	case native.Windows, native.Mac, native.Linux, native.BSD:
		return p, nil
	default:
		return 0, fmt.Errorf("--platform must name a single platform, got %s", p)
	}
}

// bindAll runs the manifest through Binder.BindAll and prints the slots.
func bindAll(out io.Writer, binder *native.Binder, file *manifest.File, logger *logrus.Logger) error {
	m, slots, err := file.Slots()
	if err != nil {
		return err
	}
	if err := binder.BindAll(m); err != nil {
		var nf *native.NotFoundError
		if errors.As(err, &nf) {
			logger.WithField("symbol", nf.Symbol).WithField("libraries", nf.Libraries).Error("required function missing")
		}
		return err
	}

	for _, entry := range m {
		fmt.Fprintf(out, "%s\t%#x\n", entry.Identifier, uintptr(*slots[entry.Identifier]))
	}
	logger.WithField("libraries", binder.Cache().Len()).Debug("manifest bound")
	return nil
}

// report binds each function on its own so every outcome is listed.
func report(out io.Writer, binder *native.Binder, file *manifest.File, logger *logrus.Logger) error {
	requests, err := file.Requests()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FUNCTION\tSYMBOL\tLIBRARY\tADDRESS\tSTATUS")

	missing := 0
	for _, r := range requests {
		binding, err := binder.Bind(r.Identifier, r.Request)
		status := "ok"
		switch {
		case err != nil:
			status = "missing"
			missing++
			logger.WithError(err).WithField("function", r.Identifier).Debug("bind failed")
		case binding.Skipped:
			status = "skipped"
		case binding.Address.IsNil():
			status = "unresolved"
		}
		library := binding.Library
		if library == "" {
			library = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%#x\t%s\n", r.Identifier, binding.Symbol, library, uintptr(binding.Address), status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if missing > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRequiredMissing, missing, len(requests))
	}
	return nil
}
