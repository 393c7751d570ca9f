package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hawkeyes-osint/pushtoken/internal/classifier"
	"github.com/hawkeyes-osint/pushtoken/internal/config"
	"github.com/hawkeyes-osint/pushtoken/internal/render"
)

func NewInteractiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Analyze tokens through a guided prompt",
		Long:  `Prompt for a token and an output format, print the classification, and repeat until done.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd)
		},
	}
}

func runInteractive(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	r := render.New(rendererOptions(cfg))
	out := cmd.OutOrStdout()

	for {
		token := ""
		formatArg := cfg.DefaultFormat

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Push token").
					Placeholder("Paste a push token").
					Value(&token).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return errors.New("a token is required")
						}
						return nil
					}),
				huh.NewSelect[string]().
					Title("Output format").
					Options(huh.NewOptions("text", "json", "yaml")...).
					Value(&formatArg),
			),
		)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		format, err := render.ParseFormat(formatArg)
		if err != nil {
			return err
		}

		res, err := classifier.Classify(token)
		if err != nil {
			if renderErr := r.RenderError(out, format, token); renderErr != nil {
				return renderErr
			}
		} else if err := r.Render(out, format, res); err != nil {
			return err
		}

		again := false
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Analyze another token?").
					Value(&again),
			),
		)
		if err := confirm.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if !again {
			return nil
		}
	}
}
