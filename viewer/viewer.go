package viewer

import (
	"fmt"
	"strings"
	"time"

	"tron/engine"
	"tron/game"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg engine.Frame

type doneMsg struct{}

type nextMsg struct{}

type model struct {
	frames <-chan engine.Frame
	delay  time.Duration
	frame  engine.Frame
	done   bool
}

func newModel(frames <-chan engine.Frame, delay time.Duration) model {
	return model{frames: frames, delay: delay}
}

func waitForFrame(frames <-chan engine.Frame) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-frames
		if !ok {
			return doneMsg{}
		}
		return frameMsg(f)
	}
}

func (m model) Init() tea.Cmd {
	return waitForFrame(m.frames)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case frameMsg:
		m.frame = engine.Frame(msg)
		return m, tea.Tick(m.delay, func(time.Time) tea.Msg { return nextMsg{} })
	case nextMsg:
		return m, waitForFrame(m.frames)
	case doneMsg:
		m.done = true
	}
	return m, nil
}

func (m model) View() string {
	if m.frame.State == nil {
		return "Waiting for the first turn...\n"
	}
	s := render(m.frame.State)
	s += fmt.Sprintf("\nTurn %d\n", m.frame.Turn)
	if m.done {
		winner := m.frame.State.Winner()
		if winner == "" {
			winner = "none"
		}
		s += fmt.Sprintf("Game over, winner: %s\n", winner)
	}
	s += "\nPress q to quit.\n"
	return s
}

// render draws one rune per cell: '.' when free, the owner's letter on a
// trail and its capital on a living player's head.
func render(state *game.State) string {
	letters := map[string]rune{}
	heads := map[game.Point]rune{}
	for i, p := range state.Players {
		letters[p.ID] = rune('a' + i%26)
		if p.Alive {
			heads[p.Position.Point()] = rune('A' + i%26)
		}
	}

	var b strings.Builder
	for y := 0; y < state.Board.Height; y++ {
		for x := 0; x < state.Board.Width; x++ {
			p := game.Point{X: x, Y: y}
			if r, ok := heads[p]; ok {
				b.WriteRune(r)
				continue
			}
			if owners := state.Board.Owners(p); len(owners) > 0 {
				b.WriteRune(letters[owners[0]])
				continue
			}
			b.WriteRune('.')
		}
		b.WriteRune('\n')
	}
	return b.String()
}

// Run replays frames until the channel closes and the user quits. Frames
// left after an early quit are discarded so the engine can finish.
func Run(frames <-chan engine.Frame, delay time.Duration) error {
	defer drain(frames)
	_, err := tea.NewProgram(newModel(frames, delay)).Run()
	return err
}

func drain(frames <-chan engine.Frame) {
	for range frames {
	}
}
