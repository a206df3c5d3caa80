package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DebounceMsg is delivered when a scheduled fire comes due
type DebounceMsg struct {
	id uint64
}

// Debouncer is a single cancellable scheduled fire. Scheduling cancels the
// previous fire; only the latest one is reported live.
type Debouncer struct {
	delay   time.Duration
	id      uint64
	pending bool
	stopped bool
}

// NewDebouncer creates a debouncer with the quiet interval delay
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Delay returns the quiet interval
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule cancels any pending fire and schedules a new one.
// It returns nil once the debouncer is stopped.
func (d *Debouncer) Schedule() tea.Cmd {
	if d.stopped {
		return nil
	}
	d.id++
	d.pending = true
	id := d.id
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return DebounceMsg{id: id}
	})
}

// Fire reports whether msg is the live scheduled fire and consumes it
func (d *Debouncer) Fire(msg DebounceMsg) bool {
	if d.stopped || !d.pending || msg.id != d.id {
		return false
	}
	d.pending = false
	return true
}

// Pending reports whether a fire is scheduled
func (d *Debouncer) Pending() bool {
	return d.pending && !d.stopped
}

// Cancel drops the pending fire, if any
func (d *Debouncer) Cancel() {
	d.id++
	d.pending = false
}

// Stop cancels the pending fire and refuses further scheduling
func (d *Debouncer) Stop() {
	d.Cancel()
	d.stopped = true
}
