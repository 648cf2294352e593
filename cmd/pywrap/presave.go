package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pywrap/internal/driver"
)

var presaveCmd = &cobra.Command{
	Use:   "presave <file>",
	Short: "Save-hook surface: rewrap one file only when apply_on_save is set",
	Long: `Rewrap a single file the way an editor's pre-save hook would: the command
is a no-op unless apply_on_save is enabled in the settings and the file has
a recognized source extension. Editors invoke it unconditionally on save.`,
	Args: cobra.ExactArgs(1),
	RunE: runPresave,
}

func runPresave(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := setupColor(cmd); err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	path := args[0]
	settings, err := resolveSettings(cmd, filepath.Dir(path))
	if err != nil {
		return err
	}
	if !settings.ApplyOnSave || !settings.Recognized(path) {
		// хук вызывается на каждый save: молча выходим
		return nil
	}

	opts, err := driverOptions(cmd, settings, false, false)
	if err != nil {
		return err
	}
	_, results, err := driver.WrapPaths(cmd.Context(), []string{path}, opts)
	if err != nil {
		return err
	}

	changed := false
	for _, res := range results {
		if res.Err != nil {
			return fmt.Errorf("presave: %s: %w", res.Path, res.Err)
		}
		changed = changed || res.Changed
	}
	if !quiet {
		statusLine(os.Stderr, changed)
	}
	return nil
}
