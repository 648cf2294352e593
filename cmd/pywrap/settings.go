package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pywrap/internal/config"
)

// resolveSettings merges the configuration layers for startDir and applies
// the command-line override on top. Приоритет: флаг → pywrap.toml проекта →
// устаревший .pywrap.toml → глобальный конфиг → 79.
func resolveSettings(cmd *cobra.Command, startDir string) (config.Settings, error) {
	provider := config.NewProvider(startDir)
	settings, err := provider.Settings()
	if err != nil {
		return settings, err
	}

	if f := cmd.Flags().Lookup("max-line-length"); f != nil && f.Changed {
		maxLen, err := cmd.Flags().GetInt("max-line-length")
		if err != nil {
			return settings, err
		}
		if maxLen <= 0 {
			return settings, fmt.Errorf("--max-line-length must be positive, got %d", maxLen)
		}
		settings.MaxLineLength = maxLen
	}
	return settings, nil
}

// setupColor applies the persistent --color flag to the fatih/color state.
func setupColor(cmd *cobra.Command) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch strings.TrimSpace(strings.ToLower(mode)) {
	case "", "auto":
		// fatih/color сам определяет терминал
	case "on", "always":
		color.NoColor = false
	case "off", "never":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	return nil
}
