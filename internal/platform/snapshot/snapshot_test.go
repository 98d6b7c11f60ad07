package snapshot

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/balancing-act/internal/balance"
	"github.com/vovakirdan/balancing-act/internal/config"
	"github.com/vovakirdan/balancing-act/internal/core"
)

func testFrame(t *testing.T) balance.Frame {
	t.Helper()
	s := balance.New(config.DefaultScaleConfig(), 3)
	s.SetEquation(balance.Fallback)
	if err := s.LoadEquation(); err != nil {
		t.Fatal(err)
	}
	return s.Step(core.NewInputFrame())
}

func TestRenderSize(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}
	img := r.Render(testFrame(t))

	b := img.Bounds()
	if b.Dx() != balance.WorldW || b.Dy() != balance.WorldH {
		t.Fatalf("size = %dx%d", b.Dx(), b.Dy())
	}

	got := img.At(5, 790)
	r1, g1, b1, _ := got.RGBA()
	r2, g2, b2, _ := balance.ColorBackground.RGBA()
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Errorf("corner pixel = %v, want background", got)
	}
}

func TestWritePNG(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.WritePNG(&buf, testFrame(t)); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != balance.WorldW {
		t.Errorf("width = %d", img.Bounds().Dx())
	}
}

func TestSave(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "nested", FileName(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)))
	if err := r.Save(path, testFrame(t)); err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "balance_20240301_093000.png" {
		t.Errorf("name = %s", filepath.Base(path))
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("snapshot not written: %v", err)
	}
}
