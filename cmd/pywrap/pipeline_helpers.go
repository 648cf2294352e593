package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pywrap/internal/config"
	"pywrap/internal/driver"
	"pywrap/internal/source"
)

// startDirFor picks the directory that anchors config discovery:
// первый путь из аргументов (его каталог для файла).
func startDirFor(paths []string) string {
	if len(paths) == 0 {
		return "."
	}
	p := paths[0]
	if info, err := os.Stat(p); err == nil && info.IsDir() {
		return p
	}
	return filepath.Dir(p)
}

// driverOptions assembles batch options from flags and settings.
func driverOptions(cmd *cobra.Command, settings config.Settings, check, stdout bool) (driver.Options, error) {
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return driver.Options{}, err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, err
	}

	opts := driver.Options{
		MaxLineLength:  settings.MaxLineLength,
		Extensions:     settings.Extensions,
		Check:          check,
		Stdout:         stdout,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
	}

	noCache := false
	if f := cmd.Flags().Lookup("no-cache"); f != nil {
		noCache, err = cmd.Flags().GetBool("no-cache")
		if err != nil {
			return driver.Options{}, err
		}
	}
	// кэш-хит не даёт выходного буфера, stdout-режиму он нужен всегда
	if !check && !stdout && !noCache {
		// кэш опционален: без него просто медленнее
		if cache, err := driver.OpenDiskCache("pywrap"); err == nil {
			opts.Cache = cache
		}
	}
	return opts, nil
}

// runWrap expands the path list and runs the batch, через TUI или напрямую.
func runWrap(cmd *cobra.Command, title string, paths []string, opts driver.Options, stdout bool) (*source.FileSet, []driver.Result, error) {
	files, err := driver.ListSourceFiles(paths, opts.Extensions)
	if err != nil {
		return nil, nil, err
	}

	mode := uiModeOff
	if f := cmd.Flags().Lookup("ui"); f != nil {
		value, err := cmd.Flags().GetString("ui")
		if err != nil {
			return nil, nil, err
		}
		mode, err = readUIMode(value)
		if err != nil {
			return nil, nil, err
		}
	}

	// TUI рисует на stdout: несовместимо с выводом буферов туда же
	if !stdout && len(files) > 1 && shouldUseTUI(mode) {
		return runWrapWithUI(cmd.Context(), title, files, opts)
	}
	return driver.WrapPaths(cmd.Context(), files, opts)
}
