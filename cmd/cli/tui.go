package cli

import (
	"github.com/spf13/cobra"

	"github.com/hawkeyes-osint/pushtoken/internal/config"
	"github.com/hawkeyes-osint/pushtoken/internal/tui"
)

func NewTUICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive analyzer form",
		Long:  `Open a full-screen terminal form: paste a token, press enter and read the classification in a scrollable panel.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}

	cmd.Flags().Bool("no-color", false, "Disable colors and styling")

	return cmd
}

func runTUI(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	noColor, _ := cmd.Flags().GetBool("no-color")

	return tui.Run(tui.Options{
		Website:      cfg.Website,
		SupportEmail: cfg.SupportEmail,
		NoColor:      noColor || cfg.NoColor,
	})
}
