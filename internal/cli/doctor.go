package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webstarter-labs/webstarter/internal/toolchain"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the external tools the scaffolder depends on",
	Long: `Check that git, python, node, and npm are installed and recent enough.

git is required for repository initialization; python, node, and npm are
only needed for the optional dependency-install step of 'new'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		statuses := toolchain.CheckAll(toolchain.Default)

		requiredFailed := false
		for _, s := range statuses {
			switch {
			case s.Found && s.Satisfied:
				fmt.Printf("  [ OK ] %s %s (%s)\n", s.Tool.Name, s.Version, s.Path)
			case s.Tool.Required:
				requiredFailed = true
				fmt.Printf("  [FAIL] %s\n", s.Detail)
			default:
				fmt.Printf("  [WARN] %s\n", s.Detail)
			}
		}

		if requiredFailed {
			return fmt.Errorf("required tools are missing or too old")
		}
		return nil
	},
}
