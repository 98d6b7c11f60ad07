package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/balancing-act/internal/balance"
	"github.com/vovakirdan/balancing-act/internal/core"
)

// KeyMap defines the frontend-level key bindings. Everything not bound here is
// forwarded to the simulation.
type KeyMap struct {
	Quit     key.Binding
	New      key.Binding
	Clear    key.Binding
	Snapshot key.Binding
	Copy     key.Binding
	Check    key.Binding
	Erase    key.Binding
}

// ShortHelp returns bindings for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Check, k.Erase, k.New, k.Clear, k.Snapshot, k.Copy, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Check, k.Erase},
		{k.New, k.Clear},
		{k.Snapshot, k.Copy, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		New: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("^n", "new problem"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("^l", "clear"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "snapshot"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("^y", "copy equation"),
		),
		Check: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "check"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("del", "erase/remove"),
		),
	}
}

// MapKey translates a key message into simulation events.
func MapKey(msg tea.KeyMsg) []core.Event {
	switch msg.Type {
	case tea.KeyBackspace:
		return []core.Event{core.KeyDown(core.KeyBackspace)}
	case tea.KeyDelete:
		return []core.Event{core.KeyDown(core.KeyDelete)}
	case tea.KeyEnter:
		return []core.Event{core.KeyDown(core.KeyEnter)}
	case tea.KeyEscape:
		return []core.Event{core.KeyDown(core.KeyEscape)}
	case tea.KeyRunes:
		evs := make([]core.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			evs = append(evs, core.RuneDown(r))
		}
		return evs
	}
	return nil
}

// MapMouse translates a mouse message on a cols x rows scene into simulation
// input. Motion only moves the pointer; wheel events are dropped.
func MapMouse(msg tea.MouseMsg, grid balance.Grid, frame *core.InputFrame) {
	p := grid.World(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		frame.MoveTo(p)
	case tea.MouseActionPress:
		if b, ok := mapButton(msg.Button); ok {
			frame.Push(core.PointerDown(p, b))
		}
	case tea.MouseActionRelease:
		// Some terminals report releases without a button.
		b := core.ButtonPrimary
		if mb, ok := mapButton(msg.Button); ok {
			b = mb
		}
		frame.Push(core.PointerUp(p, b))
	}
}

func mapButton(b tea.MouseButton) (core.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return core.ButtonPrimary, true
	case tea.MouseButtonMiddle:
		return core.ButtonMiddle, true
	case tea.MouseButtonRight:
		return core.ButtonSecondary, true
	}
	return 0, false
}
