package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"pywrap/internal/diag"
	"pywrap/internal/driver"
	"pywrap/internal/rewrap"
	"pywrap/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path...]",
	Short: "Report files that need rewrapping without modifying them",
	Args:  cobra.ArbitraryArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("max-line-length", 0, "override the configured width")
	checkCmd.Flags().Bool("lines", false, "list every over-width line")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := setupColor(cmd); err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	listLines, err := cmd.Flags().GetBool("lines")
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
	opts, err := driverOptions(cmd, settings, true, false)
	if err != nil {
		return err
	}

	fileSet, results, err := driver.WrapPaths(cmd.Context(), paths, opts)
	if err != nil {
		return err
	}

	needWork := 0
	var hasErrors bool
	warnColor := color.New(color.FgYellow)
	errColor := color.New(color.FgRed)

	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "check: %s: %v\n", res.Path, res.Err)
			continue
		}
		if res.Changed {
			needWork++
			_, _ = warnColor.Fprintf(os.Stdout, "needs rewrap: %s\n", res.Path)
		}
		if listLines {
			reportOverflowLines(fileSet, res, settings.MaxLineLength)
		}
		if quiet {
			continue
		}
		res.Bag.Sort()
		for _, d := range res.Bag.Items() {
			start, _ := fileSet.Resolve(d.Primary)
			c := warnColor
			if d.Severity >= diag.SevError {
				c = errColor
			}
			_, _ = c.Fprintf(os.Stderr, "%s:%d:%d: %s %s\n",
				res.Path, start.Line, start.Col, d.Code.ID(), d.Message)
		}
	}

	if hasErrors {
		return fmt.Errorf("check: failed to process some files")
	}
	if needWork > 0 {
		return fmt.Errorf("check: %d file(s) need rewrapping", needWork)
	}
	if !quiet {
		fmt.Fprintln(os.Stderr, "no auto-wrap needed")
	}
	return nil
}

// reportOverflowLines lists input lines over the budget; ширина в колонках
// терминала, чтобы сообщение совпадало с тем, что видит пользователь.
func reportOverflowLines(fileSet *source.FileSet, res driver.Result, maxLen int) {
	f := fileSet.Get(res.FileID)
	bag := diag.NewBag(1024)
	rewrap.Overflows(f, maxLen, &diag.BagReporter{Bag: bag})
	for _, d := range bag.Items() {
		start, _ := fileSet.Resolve(d.Primary)
		text := f.GetLine(start.Line)
		fmt.Fprintf(os.Stdout, "%s:%d: %d columns (limit %d)\n",
			res.Path, start.Line, runewidth.StringWidth(text), maxLen)
	}
}
