package balance

import (
	"errors"
	"testing"
)

func TestParseGuess(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr error
	}{
		{"", 0, ErrEmptyGuess},
		{"   ", 0, ErrEmptyGuess},
		{"-", 0, ErrNotInteger},
		{"abc", 0, ErrNotInteger},
		{"2", 2, nil},
		{" -4 ", -4, nil},
	}

	for _, tt := range tests {
		got, err := ParseGuess(tt.in)
		if !errors.Is(err, tt.wantErr) || got != tt.want {
			t.Errorf("ParseGuess(%q) = %d, %v; want %d, %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestCheckGuess(t *testing.T) {
	tests := []struct {
		in   string
		want Feedback
	}{
		{"2", Feedback{MsgCorrect, ToneGood}},
		{"3", Feedback{MsgRetry, ToneBad}},
		{"", Feedback{MsgPrompt, ToneBad}},
		{"abc", Feedback{MsgFormat, ToneBad}},
	}

	for _, tt := range tests {
		if got := CheckGuess(tt.in, 2); got != tt.want {
			t.Errorf("CheckGuess(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestGuessInputTyping(t *testing.T) {
	g := NewGuessInput(6)

	for _, r := range "-12-a3" {
		g.Type(r)
	}
	if g.Text() != "-123" {
		t.Errorf("text = %q, want -123", g.Text())
	}

	for _, r := range "456789" {
		g.Type(r)
	}
	if g.Text() != "-12345" {
		t.Errorf("text = %q, want max 6 runes", g.Text())
	}

	g.Erase()
	if g.Text() != "-1234" {
		t.Errorf("after erase = %q", g.Text())
	}

	g.SetFocus(true)
	g.Reset()
	if g.Text() != "" || g.Focused() {
		t.Error("reset should empty and unfocus")
	}
	g.Erase()
}
