package gui

import (
	"github.com/vovakirdan/balancing-act/internal/balance"
	"github.com/vovakirdan/balancing-act/internal/platform/audio"
)

// Action is a window-level shortcut.
type Action int

const (
	ActionNone Action = iota
	ActionSnapshot
	ActionCopy
	ActionNew
)

// Shortcut maps a typed character to a window action. Only capitals are bound
// so digits and minus always reach the guess box.
func Shortcut(r rune) Action {
	switch r {
	case 'S':
		return ActionSnapshot
	case 'C':
		return ActionCopy
	case 'N':
		return ActionNew
	}
	return ActionNone
}

// chimeFor picks the melody for an answer verdict. Other messages are silent.
func chimeFor(fb balance.Feedback) []audio.Note {
	switch fb.Text {
	case balance.MsgCorrect:
		return audio.Success()
	case balance.MsgRetry:
		return audio.Failure()
	}
	return nil
}
