package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hawkeyes-osint/pushtoken/internal/version"
)

func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd)
		},
	}

	cmd.Flags().Bool("json", false, "Output version information as JSON")

	return cmd
}

func runVersion(cmd *cobra.Command) error {
	info := version.Get()
	out := cmd.OutOrStdout()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(out, "Push Token Analyzer v%s\n", info.Version)
	if info.GitCommit != "" {
		fmt.Fprintf(out, "  commit:   %s\n", info.GitCommit)
	}
	if info.BuildDate != "" {
		fmt.Fprintf(out, "  built:    %s\n", info.BuildDate)
	}
	fmt.Fprintf(out, "  go:       %s\n", info.GoVersion)
	fmt.Fprintf(out, "  platform: %s\n", info.Platform)

	return nil
}
