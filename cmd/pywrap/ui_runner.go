package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pywrap/internal/driver"
	"pywrap/internal/source"
	"pywrap/internal/ui"
)

type wrapOutcome struct {
	fileSet *source.FileSet
	results []driver.Result
	err     error
}

func runWrapWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*source.FileSet, []driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan wrapOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fileSet, results, err := driver.WrapPaths(ctx, files, optsCopy)
		outcomeCh <- wrapOutcome{fileSet: fileSet, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// после выхода из TUI канал никто не читает: дочитываем, чтобы
	// обход файлов не повис на заполненном буфере
	drainEvents(events)
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}

// drainEvents вычитывает канал до закрытия.
func drainEvents(ch <-chan driver.Event) {
	for range ch {
	}
}
