package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pywrap/internal/driver"
	"pywrap/internal/rewrap"
)

var applyCmd = &cobra.Command{
	Use:   "apply [flags] [path...]",
	Short: "Rewrap long literals and comments in place",
	Long: `Rewrap string literals and comments in the given files or directories so
that no line exceeds the configured width. Without paths, processes the
current directory. This is the manual surface: it runs regardless of the
apply_on_save setting.`,
	Args: cobra.ArbitraryArgs,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().Int("max-line-length", 0, "override the configured width")
	applyCmd.Flags().Bool("stdout", false, "print rewrapped buffers to stdout instead of rewriting files")
	applyCmd.Flags().Bool("stdin", false, "read one buffer from stdin and write the result to stdout")
	applyCmd.Flags().Bool("no-cache", false, "do not consult or update the clean-file cache")
	applyCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

func runApply(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := setupColor(cmd); err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	useStdin, err := cmd.Flags().GetBool("stdin")
	if err != nil {
		return err
	}
	if useStdin {
		return applyStdin(cmd, quiet)
	}

	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}
	settings, err := resolveSettings(cmd, startDirFor(paths))
	if err != nil {
		return err
	}

	opts, err := driverOptions(cmd, settings, false, writeToStdout)
	if err != nil {
		return err
	}

	_, results, err := runWrap(cmd, "wrapping", paths, opts, writeToStdout)
	if err != nil {
		return err
	}

	return renderApply(results, writeToStdout, quiet)
}

// applyStdin rewraps a single buffer from stdin; результат всегда на stdout,
// статус — на stderr.
func applyStdin(cmd *cobra.Command, quiet bool) error {
	settings, err := resolveSettings(cmd, ".")
	if err != nil {
		return err
	}
	buf, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	out, changed := rewrap.Rewrap(string(buf), settings.MaxLineLength)
	if _, err := io.WriteString(os.Stdout, out); err != nil {
		return err
	}
	if !quiet {
		statusLine(os.Stderr, changed)
	}
	return nil
}

func renderApply(results []driver.Result, writeToStdout, quiet bool) error {
	var hasErrors bool
	anyChanged := false
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "apply: %s: %v\n", res.Path, res.Err)
			continue
		}
		if writeToStdout {
			_, _ = io.WriteString(os.Stdout, res.Output)
		}
		if res.Changed {
			anyChanged = true
			if !quiet && !writeToStdout {
				fmt.Fprintf(os.Stderr, "wrapped %s\n", res.Path)
			}
		}
	}
	if !quiet {
		statusLine(os.Stderr, anyChanged)
	}
	if hasErrors {
		return fmt.Errorf("apply: failed to process some files")
	}
	return nil
}

// statusLine prints exactly one of the two status variants.
func statusLine(w io.Writer, changed bool) {
	if changed {
		_, _ = color.New(color.FgGreen).Fprintln(w, "auto-wrap applied")
	} else {
		fmt.Fprintln(w, "no auto-wrap needed")
	}
}
