// Validate command for the wingetman CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Validate manifest files",
	Long: `Validate decodes each file as the manifest kind its ManifestType
names and checks every field against the schema rules. Files are
reported individually; the command fails if any file is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invalid := 0
		for _, path := range args {
			if _, err := loadManifestFile(path); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "invalid: %v\n", err)
				invalid++
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", path)
		}
		if invalid > 0 {
			return fmt.Errorf("%d of %d files invalid", invalid, len(args))
		}
		return nil
	},
}
