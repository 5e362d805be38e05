// Hash command for the wingetman CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/winget-types/pkg/manifest"
)

var hashCmd = &cobra.Command{
	Use:   "hash FILE...",
	Short: "Print the SHA-256 digest of installer files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			digest, err := manifest.SHA256FromFile(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", digest, path)
		}
		return nil
	},
}
