// Show command for the wingetman CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/winget-types/pkg/manifest"
	"github.com/dukaforge/winget-types/pkg/manifest/installer"
	"github.com/dukaforge/winget-types/pkg/manifest/locale"
)

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Summarize a manifest file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadManifestFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Identifier: %s\n", loaded.header.PackageIdentifier)
		fmt.Fprintf(out, "Version:    %s\n", loaded.header.PackageVersion)
		fmt.Fprintf(out, "Type:       %s\n", loaded.header.ManifestType)

		switch m := loaded.parsed.(type) {
		case *installer.Manifest:
			fmt.Fprintf(out, "Installers: %d\n", len(m.Installers))
			for _, inst := range m.Installers {
				kind := inst.Type
				if kind == "" {
					kind = m.Type
				}
				fmt.Fprintf(out, "  - %s %s %s\n", inst.Architecture, kind, inst.URL)
			}
		case *locale.DefaultLocaleManifest:
			fmt.Fprintf(out, "Locale:     %s\n", m.PackageLocale)
			fmt.Fprintf(out, "Publisher:  %s\n", m.Publisher)
			fmt.Fprintf(out, "Name:       %s\n", m.PackageName)
			fmt.Fprintf(out, "License:    %s\n", m.License)
			fmt.Fprintf(out, "Summary:    %s\n", m.ShortDescription)
		case *locale.LocaleManifest:
			fmt.Fprintf(out, "Locale:     %s\n", m.PackageLocale)
			if m.PackageName != "" {
				fmt.Fprintf(out, "Name:       %s\n", m.PackageName)
			}
			if m.ShortDescription != "" {
				fmt.Fprintf(out, "Summary:    %s\n", m.ShortDescription)
			}
		case *manifest.VersionManifest:
			fmt.Fprintf(out, "Default:    %s\n", m.DefaultLocale)
		}
		return nil
	},
}
