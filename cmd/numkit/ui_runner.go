package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"numkit/internal/primality"
	"numkit/internal/ui"
)

type primeOutcome struct {
	results []primality.Result
	err     error
}

// runPrimeWithUI checks numbers in the background while a Bubble Tea
// program renders progress. Quitting the UI cancels the batch.
func runPrimeWithUI(ctx context.Context, numbers []uint64, opts primality.Options) ([]primality.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan primality.Event, 256)
	outcomeCh := make(chan primeOutcome, 1)

	go func() {
		reqOpts := opts
		sink := primality.Sink(primality.ChannelSink{Ch: events})
		if opts.Sink != nil {
			sink = fanoutSink{opts.Sink, sink}
		}
		reqOpts.Sink = sink
		res, err := primality.CheckAll(ctx, numbers, reqOpts)
		outcomeCh <- primeOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("checking primality", numbers, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// A finished batch ignores the cancel; an interrupted one stops and
	// may still be sending, so drain until it closes the channel.
	cancel()
	for range events {
	}
	outcome := <-outcomeCh
	if outcome.err != nil {
		return outcome.results, outcome.err
	}
	return outcome.results, uiErr
}
