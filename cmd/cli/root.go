package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hawkeyes-osint/pushtoken/internal/classifier"
	"github.com/hawkeyes-osint/pushtoken/internal/config"
	"github.com/hawkeyes-osint/pushtoken/internal/render"
	"github.com/hawkeyes-osint/pushtoken/internal/version"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pushtoken <token> [format]",
		Short: "Classify push notification tokens by their format",
		Long: `Push Token Analyzer infers the likely provider, platform and category of a
push notification token from its shape alone (length, character set,
delimiters, known prefixes, URL structure). No network calls are made and
nothing is stored.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		RunE: runAnalyze,
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.Flags().StringP("format", "f", "", "Output format (text, json or yaml)")

	rootCmd.AddCommand(NewTUICommand())
	rootCmd.AddCommand(NewInteractiveCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// errReported marks a failure already printed on the command's output;
// Execute still exits non-zero but must not print it again.
var errReported = errors.New("already reported")

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		printUsage(cmd.OutOrStdout())
		return errReported
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	formatArg := cfg.DefaultFormat
	if len(args) > 1 {
		formatArg = args[1]
	}
	if flagFormat, _ := cmd.Flags().GetString("format"); flagFormat != "" {
		formatArg = flagFormat
	}

	format, err := render.ParseFormat(formatArg)
	if err != nil {
		return err
	}

	r := render.New(rendererOptions(cfg))
	out := cmd.OutOrStdout()

	if format == render.FormatText {
		r.Banner(out, version.GetVersion())
	}

	token := args[0]
	res, err := classifier.Classify(token)
	if err != nil {
		if errors.Is(err, classifier.ErrInvalidToken) {
			if renderErr := r.RenderError(out, format, token); renderErr != nil {
				return renderErr
			}
			return errReported
		}
		return err
	}

	return r.Render(out, format, res)
}

func rendererOptions(cfg *config.Config) render.Options {
	opts := render.DefaultOptions()
	opts.Website = cfg.Website
	opts.SupportEmail = cfg.SupportEmail
	if !cfg.ShowDisclaimer {
		opts.Disclaimer = nil
	}
	return opts
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Error: Missing push token argument.")
	fmt.Fprintln(w, "Usage: pushtoken <token> [format]")
	fmt.Fprintln(w, "Example: pushtoken d4c3b2a1e5f6789012345678901234567890abcdef1234567890abcdef123456")
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
