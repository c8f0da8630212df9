// Package terminal is a bubbletea frontend. It renders the same snapshots as
// the desktop window and turns key presses into application calls.
package terminal

import (
	"fmt"
	"log"
	"strings"

	"snake/internal/app"
	"snake/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
)

// Controller is the part of app.App the terminal needs.
type Controller interface {
	Phase() app.Phase
	Snapshot() (domain.Snapshot, bool)
	BestScore() int
	StartGame() error
	Steer(dir domain.Direction) error
	TogglePause() error
	Retry() error
	ExitToMenu() error
}

type appEventMsg app.AppEvent

type eventsClosedMsg struct{}

type Model struct {
	ctl    Controller
	events <-chan app.AppEvent

	phase   app.Phase
	snap    domain.Snapshot
	hasSnap bool
	best    int
}

func NewModel(ctl Controller, events <-chan app.AppEvent) Model {
	return Model{
		ctl:    ctl,
		events: events,
		phase:  ctl.Phase(),
	}
}

func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan app.AppEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return appEventMsg(event)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case appEventMsg:
		m.refresh()
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) refresh() {
	m.phase = m.ctl.Phase()
	m.snap, m.hasSnap = m.ctl.Snapshot()
	m.best = m.ctl.BestScore()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	var err error
	switch m.phase {
	case app.PhaseMainMenu:
		switch key {
		case "enter", "s":
			err = m.ctl.StartGame()
		case "esc":
			return m, tea.Quit
		}

	case app.PhasePlaying, app.PhaseGameOver:
		if dir, ok := keyDirection(key); ok {
			if m.phase == app.PhasePlaying {
				err = m.ctl.Steer(dir)
			}
			break
		}
		switch key {
		case "p", " ":
			err = m.ctl.TogglePause()
		case "r":
			err = m.ctl.Retry()
		case "esc":
			err = m.ctl.ExitToMenu()
		}
	}
	if err != nil {
		log.Printf("Terminal: %s: %v", key, err)
	}

	m.refresh()
	return m, nil
}

func keyDirection(key string) (domain.Direction, bool) {
	switch key {
	case "up", "w":
		return domain.DirectionUp, true
	case "down", "s":
		return domain.DirectionDown, true
	case "left", "a":
		return domain.DirectionLeft, true
	case "right", "d":
		return domain.DirectionRight, true
	}
	return 0, false
}

func (m Model) View() string {
	var sb strings.Builder

	switch m.phase {
	case app.PhaseMainMenu:
		sb.WriteString("\n  SNAKE GAME\n\n")
		if m.best > 0 {
			fmt.Fprintf(&sb, "  Best this session: %d\n\n", m.best)
		}
		sb.WriteString("  [Enter] Start Game\n")
		sb.WriteString("  [Q]     Quit\n")
		return sb.String()
	}

	if !m.hasSnap {
		return "\n  Starting...\n"
	}

	sb.WriteString(statusLine(m.snap, m.best))
	sb.WriteByte('\n')
	sb.WriteString(RenderBoard(m.snap))

	switch {
	case m.snap.Terminal:
		fmt.Fprintf(&sb, "Game Over! Score: %d. Press R to retry, Esc for menu.\n", m.snap.Score)
	case m.snap.Paused:
		sb.WriteString("Paused. Press P to resume.\n")
	default:
		sb.WriteString("Arrows/WASD steer  P pause  R restart  Esc menu\n")
	}
	return sb.String()
}
