// Package audio synthesizes the short answer chimes.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// SampleRate is the rate all chimes are generated at.
const SampleRate = beep.SampleRate(44100)

// Note is one sine tone.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Tone returns a sine streamer for n with a linear fade out so it ends without
// a click.
func Tone(sr beep.SampleRate, n Note, volume float64) beep.Streamer {
	total := sr.N(n.Duration)
	pos := 0
	step := 2 * math.Pi * n.Freq / float64(sr)

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < total; i++ {
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(step*float64(pos)) * volume * env
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return i, true
	})
}

// Melody plays notes back to back.
func Melody(sr beep.SampleRate, volume float64, notes ...Note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = Tone(sr, n, volume)
	}
	return beep.Seq(parts...)
}

// Success is a rising two-note chime.
func Success() []Note {
	return []Note{
		{Freq: 659.25, Duration: 120 * time.Millisecond},
		{Freq: 987.77, Duration: 220 * time.Millisecond},
	}
}

// Failure is a single low buzz.
func Failure() []Note {
	return []Note{{Freq: 196, Duration: 260 * time.Millisecond}}
}
