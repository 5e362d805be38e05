// Arch command for the wingetman CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/winget-types/pkg/manifest/installer"
)

var archCmd = &cobra.Command{
	Use:   "arch URL...",
	Short: "Detect the installer architecture from download URLs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, url := range args {
			arch, ok := installer.ArchitectureFromURL(url)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "unknown  %s\n", url)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", arch, url)
		}
		return nil
	},
}
