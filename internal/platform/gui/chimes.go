package gui

import (
	"fmt"
	"time"

	"github.com/faiface/beep/speaker"

	"github.com/vovakirdan/balancing-act/internal/platform/audio"
)

const chimeVolume = 0.25

type chimes struct{}

func newChimes() (*chimes, error) {
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}
	return &chimes{}, nil
}

// play interrupts any chime still sounding.
func (c *chimes) play(notes []audio.Note) {
	speaker.Clear()
	speaker.Play(audio.Melody(audio.SampleRate, chimeVolume, notes...))
}
