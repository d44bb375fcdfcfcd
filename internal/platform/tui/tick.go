// Package tui provides the Bubble Tea integration for SkyRun.
// It handles the terminal UI loop, input mapping, the scoreboard and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// pollFactor is how many tick messages arrive per simulation step. The
// FrameClock decides which of them actually advance the game.
const pollFactor = 2

// tickCmd returns a Bubble Tea command that sends tick messages faster than
// the simulation rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate*pollFactor)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
