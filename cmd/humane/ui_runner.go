package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"humane/internal/checkrun"
	"humane/internal/ui"
)

type checkOutcome struct {
	results []checkrun.Result
	err     error
}

// runCheckDirWithUI запускает проверку директории в горутине и отдаёт
// терминал Bubble Tea программе до завершения прогона.
func runCheckDirWithUI(ctx context.Context, title, dir string, files []string, opts checkrun.Options, jobs int) ([]checkrun.Result, error) {
	events := make(chan checkrun.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = checkrun.ChannelSink{Ch: events}
		results, err := checkrun.CheckDir(ctx, dir, optsCopy, jobs)
		outcomeCh <- checkOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
