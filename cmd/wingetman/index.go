// Index commands for the wingetman CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/winget-types/internal/index"
	"github.com/dukaforge/winget-types/pkg/manifest"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the local manifest index",
}

func init() {
	indexCmd.AddCommand(indexAddCmd)
	indexCmd.AddCommand(indexGetCmd)
	indexCmd.AddCommand(indexListCmd)
	indexCmd.AddCommand(indexRemoveCmd)
}

// openStore attaches an index store in the resolved data directory.
// The caller must Detach it.
func openStore() (*index.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}

	s := index.New()
	if err := s.Attach(index.Config{Backend: index.BackendSQLite, DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach index: %w", err)
	}
	return s, nil
}

// argsKey builds an index key from IDENTIFIER VERSION TYPE [LOCALE]
// positional arguments.
func argsKey(args []string) (index.Key, error) {
	version, err := manifest.NewPackageVersion(args[1])
	if err != nil {
		return index.Key{}, err
	}
	kind, err := manifest.ParseManifestType(args[2])
	if err != nil {
		return index.Key{}, err
	}
	key := index.Key{
		Identifier: manifest.PackageIdentifier(args[0]),
		Version:    version,
		Kind:       kind,
	}
	if len(args) > 3 {
		key.Locale = args[3]
	}
	return key, nil
}

var indexAddCmd = &cobra.Command{
	Use:   "add FILE...",
	Short: "Validate manifest files and add them to the index",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Detach()

		for _, path := range args {
			loaded, err := loadManifestFile(path)
			if err != nil {
				return err
			}

			key := index.Key{
				Identifier: loaded.header.PackageIdentifier,
				Version:    loaded.header.PackageVersion,
				Kind:       loaded.header.ManifestType,
			}
			if !loaded.header.PackageLocale.IsZero() {
				key.Locale = loaded.header.PackageLocale.String()
			}

			if _, err := s.Put(key, string(loaded.document)); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added: %s %s %s\n",
				key.Identifier, key.Version, key.Kind)
		}
		return nil
	},
}

var indexGetCmd = &cobra.Command{
	Use:   "get IDENTIFIER VERSION TYPE [LOCALE]",
	Short: "Print an indexed manifest document",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := argsKey(args)
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Detach()

		entry, err := s.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), entry.Document)
		return nil
	},
}

var indexListCmd = &cobra.Command{
	Use:   "list [IDENTIFIER]",
	Short: "List indexed manifests",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Detach()

		var identifier manifest.PackageIdentifier
		if len(args) > 0 {
			identifier = manifest.PackageIdentifier(args[0])
		}

		entries, err := s.List(identifier)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			line := fmt.Sprintf("%s %s %s",
				entry.Key.Identifier, entry.Key.Version, entry.Key.Kind)
			if entry.Key.Locale != "" {
				line += " " + entry.Key.Locale
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

var indexRemoveCmd = &cobra.Command{
	Use:   "remove IDENTIFIER VERSION TYPE [LOCALE]",
	Short: "Remove a manifest from the index",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := argsKey(args)
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Detach()

		if err := s.Delete(key); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed: %s %s %s\n",
			key.Identifier, key.Version, key.Kind)
		return nil
	},
}
