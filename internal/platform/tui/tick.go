// Package tui provides the Bubble Tea integration for Block Break.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastTickID atomic.Int64

// nextTickID returns an identifier for a new tick chain. Each game model
// owns one chain and ignores ticks addressed to others.
func nextTickID() int64 {
	return lastTickID.Add(1)
}

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	ID   int64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that delivers one tick after interval.
func tickCmd(id int64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
