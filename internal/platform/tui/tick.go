// Package tui runs games in a terminal with Bubble Tea, locally or per SSH
// connection: key mapping, the fixed tick, timers, menus and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-muncher/internal/core"
)

// TickMsg triggers one simulation tick of the GameModel named by Owner.
type TickMsg struct {
	Owner uint64
	At    time.Time
}

// TimerMsg delivers a game-requested timer back to the game.
// Owner identifies the GameModel that asked for it.
type TimerMsg struct {
	Owner uint64
	ID    uint64
}

// tickCmd schedules the next tick for owner at tickRate per second.
func tickCmd(owner uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Owner: owner, At: t}
	})
}

// timerCmds schedules each requested timer. The game's own state decides
// whether a delivered timer still matters.
func timerCmds(owner uint64, reqs []core.TimerRequest) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(reqs))
	for _, r := range reqs {
		id := r.ID
		cmds = append(cmds, tea.Tick(r.After, func(time.Time) tea.Msg {
			return TimerMsg{Owner: owner, ID: id}
		}))
	}
	return cmds
}
