// Package tui provides the Bubble Tea integration for snakeplus.
// It handles the terminal UI loop, input mapping, rendering of session
// snapshots, and the SSH server for remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a real-time simulation tick. It carries the
// time the tick fired so the model can measure the actual frame delta.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
