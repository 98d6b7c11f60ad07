package audio

import (
	"math"
	"testing"
	"time"
)

// drain streams s to completion and returns the samples produced.
func drain(t *testing.T, stream func([][2]float64) (int, bool)) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for range 10000 {
		n, ok := stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestToneLengthAndAmplitude(t *testing.T) {
	n := Note{Freq: 440, Duration: 100 * time.Millisecond}
	s := Tone(SampleRate, n, 0.5)
	samples := drain(t, s.Stream)

	if want := SampleRate.N(n.Duration); len(samples) != want {
		t.Fatalf("samples = %d, want %d", len(samples), want)
	}
	peak := 0.0
	for _, smp := range samples {
		if smp[0] != smp[1] {
			t.Fatal("tone should be mono")
		}
		peak = math.Max(peak, math.Abs(smp[0]))
	}
	if peak > 0.5 || peak < 0.3 {
		t.Errorf("peak = %v", peak)
	}
	if last := math.Abs(samples[len(samples)-1][0]); last > 0.01 {
		t.Errorf("tone should fade out, last sample %v", last)
	}
}

func TestMelodyConcatenates(t *testing.T) {
	notes := Success()
	samples := drain(t, Melody(SampleRate, 0.3, notes...).Stream)

	want := 0
	for _, n := range notes {
		want += SampleRate.N(n.Duration)
	}
	if len(samples) != want {
		t.Errorf("samples = %d, want %d", len(samples), want)
	}
	if len(Failure()) != 1 {
		t.Error("failure chime is a single note")
	}
}
