package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// revealMsg carries a due playback callback onto the Update loop.
type revealMsg struct {
	fn func()
}

// fontsDoneMsg reports that the stylesheet prefetch returned.
type fontsDoneMsg struct{}

// callbackQueue is implemented by clocks that hand callbacks to the event
// loop instead of running them, such as playback.LoopClock.
type callbackQueue interface {
	C() <-chan func()
	Done() <-chan struct{}
}

// waitForReveal blocks on the next queued callback. Update re-arms it
// after every reveal.
func waitForReveal(queue callbackQueue) tea.Cmd {
	if queue == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case fn := <-queue.C():
			return revealMsg{fn: fn}
		case <-queue.Done():
			return nil
		}
	}
}

// prefetchFonts runs the prefetch on a command goroutine. Its result is
// never surfaced to the page.
func prefetchFonts(prefetch func()) tea.Cmd {
	if prefetch == nil {
		return nil
	}
	return func() tea.Msg {
		prefetch()
		return fontsDoneMsg{}
	}
}
