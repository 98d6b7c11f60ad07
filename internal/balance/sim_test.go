package balance

import (
	"testing"
	"time"

	"github.com/vovakirdan/balancing-act/internal/config"
	"github.com/vovakirdan/balancing-act/internal/core"
)

const tick = 16 * time.Millisecond

// driver feeds a Sim one frame at a time.
type driver struct {
	s  *Sim
	in core.InputFrame
}

func newDriver(t *testing.T, mutate func(*config.ScaleConfig)) *driver {
	t.Helper()
	cfg := config.DefaultScaleConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s := New(cfg, 42)
	s.SetEquation(Fallback)
	return &driver{s: s, in: core.NewInputFrame()}
}

func (d *driver) step(evs ...core.Event) Frame {
	for _, ev := range evs {
		d.in.Push(ev)
	}
	f := d.s.Step(d.in)
	d.in.Clear()
	d.in.Clock += tick
	return f
}

func (d *driver) click(p core.Point) Frame {
	return d.step(core.PointerDown(p, core.ButtonPrimary), core.PointerUp(p, core.ButtonPrimary))
}

func (d *driver) move(p core.Point) Frame {
	d.in.MoveTo(p)
	return d.step()
}

func (d *driver) drag(from, to core.Point) Frame {
	d.step(core.PointerDown(from, core.ButtonPrimary))
	d.move(to)
	return d.step(core.PointerUp(to, core.ButtonPrimary))
}

func (d *driver) typeText(s string) Frame {
	var evs []core.Event
	for _, r := range s {
		evs = append(evs, core.RuneDown(r))
	}
	return d.step(evs...)
}

func center(r core.Rect) core.Point {
	x, y := r.Center()
	return core.Pt(x, y)
}

func TestScenarioBalancedFallback(t *testing.T) {
	d := newDriver(t, nil)
	if err := d.s.LoadEquation(); err != nil {
		t.Fatal(err)
	}
	f := d.step()

	if d.s.Tally() != (Tally{LeftX: 2, LeftUnits: 3, RightX: 1, RightUnits: 5}) {
		t.Fatalf("tally = %+v", d.s.Tally())
	}
	if !f.Balanced || f.Sign != SignEqual || f.Angle != 0 {
		t.Errorf("expected balanced level beam, got sign=%v angle=%v", f.Sign, f.Angle)
	}
	if f.Equation() != "2x + 3 = x + 5" {
		t.Errorf("equation = %q", f.Equation())
	}
	if f.LeftSummary != "Left: 2x + 3" || f.RightSummary != "Right: x + 5" {
		t.Errorf("summaries = %q / %q", f.LeftSummary, f.RightSummary)
	}

	box := center(f.Layout.InputBox)
	d.click(box)

	tests := []struct {
		typed string
		want  Feedback
	}{
		{"2", Feedback{MsgCorrect, ToneGood}},
		{"3", Feedback{MsgRetry, ToneBad}},
		{"", Feedback{MsgPrompt, ToneBad}},
		{"-", Feedback{MsgFormat, ToneBad}},
	}
	for _, tt := range tests {
		// Empty the box first.
		for range 6 {
			d.step(core.KeyDown(core.KeyBackspace))
		}
		d.typeText(tt.typed)
		f = d.step(core.KeyDown(core.KeyEnter))
		if f.Feedback != tt.want {
			t.Errorf("guess %q: feedback = %+v, want %+v", tt.typed, f.Feedback, tt.want)
		}
	}
}

func TestCheckButton(t *testing.T) {
	d := newDriver(t, nil)
	f := d.click(center(d.s.Layout().Check))
	if f.Feedback.Text != MsgPrompt {
		t.Errorf("feedback = %q", f.Feedback.Text)
	}
}

func TestDragRoundTrip(t *testing.T) {
	d := newDriver(t, nil)
	l := d.s.Layout()

	f := d.step(core.PointerDown(center(l.PaletteX), core.ButtonPrimary))
	if len(f.Blocks) != 1 || f.Blocks[0].Rect != l.SpawnRect(KindX) {
		t.Fatalf("spawn: %+v", f.Blocks)
	}
	if l.SpawnRect(KindX) != core.NewRect(536, 326, 44, 44) {
		t.Errorf("spawn rect = %+v", l.SpawnRect(KindX))
	}
	d.step(core.PointerUp(center(l.PaletteX), core.ButtonPrimary))

	// Grab and follow the pointer.
	f = d.step(core.PointerDown(center(l.SpawnRect(KindX)), core.ButtonPrimary))
	if !f.Blocks[0].Selected {
		t.Fatal("block should be selected")
	}
	f = d.move(core.Pt(300, 500))
	if f.Blocks[0].Rect != core.NewRect(278, 478, 44, 44) {
		t.Errorf("dragged rect = %+v", f.Blocks[0].Rect)
	}

	// Drop on the left pan over column 2.
	f = d.step(core.PointerUp(core.Pt(300, f.PanLeft.Y-4), core.ButtonPrimary))
	b := d.s.Blocks()[0]
	if b.Side != SideLeft || b.Column != 2 || b.Level != 0 || b.Selected {
		t.Fatalf("placed block = %+v", b)
	}
	if want := core.NewRect(f.PanLeft.X+118, f.PanLeft.Y-44, 44, 44); b.Rect != want {
		t.Errorf("rect = %+v, want %+v", b.Rect, want)
	}
	if f.Sign != SignGreater || f.Angle >= 0 {
		t.Errorf("left-heavy: sign=%v angle=%v", f.Sign, f.Angle)
	}

	// Picking it up removes its weight.
	d.step(core.PointerDown(center(b.Rect), core.ButtonPrimary))
	if d.s.Tally() != (Tally{}) {
		t.Errorf("dragged block still counted: %+v", d.s.Tally())
	}

	f = d.move(core.Pt(900, 500))
	f = d.step(core.PointerUp(core.Pt(900, f.PanRight.Y-4), core.ButtonPrimary))
	b = d.s.Blocks()[0]
	if b.Side != SideRight || b.Column != 2 {
		t.Errorf("moved block = %+v", b)
	}
	if f.Sign != SignLess {
		t.Errorf("sign = %v", f.Sign)
	}
}

func TestTrashRemovesOnNextFrame(t *testing.T) {
	d := newDriver(t, nil)
	if err := d.s.PlaceOn(KindX, SideLeft, 300); err != nil {
		t.Fatal(err)
	}
	f := d.step()
	b := f.Blocks[0]

	f = d.drag(center(b.Rect), center(f.Layout.Trash))
	if len(f.Blocks) != 0 || d.s.Tally() != (Tally{}) {
		t.Errorf("block not trashed: %+v", f.Blocks)
	}
	if f.Sign != SignEqual {
		t.Errorf("trashed block still weighed: %v", f.Sign)
	}
}

func TestStrayPolicies(t *testing.T) {
	drop := core.Pt(600, 450)
	tests := []struct {
		policy config.StrayPolicy
		blocks int
		rect   core.Rect
	}{
		{config.StrayReturn, 1, DefaultLayout().SpawnRect(KindUnit)},
		{config.StrayKeep, 1, core.NewRect(578, 428, 44, 44)},
		{config.StrayDiscard, 0, core.Rect{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			d := newDriver(t, func(c *config.ScaleConfig) { c.Blocks.Stray = tt.policy })
			d.s.Spawn(KindUnit)
			f := d.drag(center(d.s.Layout().SpawnRect(KindUnit)), drop)

			if len(f.Blocks) != tt.blocks {
				t.Fatalf("blocks = %d, want %d", len(f.Blocks), tt.blocks)
			}
			if tt.blocks == 1 {
				if f.Blocks[0].Rect != tt.rect || f.Blocks[0].Placed || f.Blocks[0].Selected {
					t.Errorf("block = %+v, want rect %+v", f.Blocks[0], tt.rect)
				}
			}
		})
	}
}

func TestPanFullFeedback(t *testing.T) {
	d := newDriver(t, func(c *config.ScaleConfig) { c.Pan.MaxStack = 1 })
	for range 5 {
		if err := d.s.PlaceOn(KindUnit, SideLeft, 300); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.s.PlaceOn(KindUnit, SideLeft, 300); err != ErrPanFull {
		t.Fatalf("expected ErrPanFull, got %v", err)
	}
	f := d.step()

	d.s.Spawn(KindX)
	f = d.drag(center(f.Layout.SpawnRect(KindX)), core.Pt(300, f.PanLeft.Y+10))

	if f.Feedback != (Feedback{MsgPanFull, ToneBad}) {
		t.Errorf("feedback = %+v", f.Feedback)
	}
	if d.s.Tally() != (Tally{LeftUnits: 5}) {
		t.Errorf("tally = %+v", d.s.Tally())
	}
	last := f.Blocks[len(f.Blocks)-1]
	if last.Kind != KindX || last.Placed || last.Rect != f.Layout.SpawnRect(KindX) {
		t.Errorf("rejected block = %+v", last)
	}
}

func TestTopmostAndDelete(t *testing.T) {
	d := newDriver(t, nil)
	palette := center(d.s.Layout().PaletteX)
	d.click(palette)
	d.click(palette)

	f := d.step(core.PointerDown(center(d.s.Layout().SpawnRect(KindX)), core.ButtonPrimary))
	if sel := f.Blocks[len(f.Blocks)-1]; !sel.Selected || sel.ID != 2 {
		t.Fatalf("expected block 2 selected, got %+v", f.Blocks)
	}

	f = d.step(core.KeyDown(core.KeyDelete))
	if len(f.Blocks) != 1 || f.Blocks[0].ID != 1 || d.s.Dragging() {
		t.Errorf("delete: blocks=%+v dragging=%v", f.Blocks, d.s.Dragging())
	}

	// Releasing after the drag ended is a no-op.
	f = d.step(core.PointerUp(core.Pt(10, 700), core.ButtonPrimary))
	if len(f.Blocks) != 1 {
		t.Errorf("blocks = %d", len(f.Blocks))
	}
}

func TestDeleteWhileFocusedErases(t *testing.T) {
	d := newDriver(t, nil)
	d.s.Spawn(KindUnit)
	d.click(center(d.s.Layout().InputBox))
	d.typeText("12")

	f := d.step(core.KeyDown(core.KeyDelete))
	if f.Guess != "1" || len(f.Blocks) != 1 {
		t.Errorf("guess=%q blocks=%d", f.Guess, len(f.Blocks))
	}

	// Clicking elsewhere unfocuses; typing is ignored.
	d.click(core.Pt(1100, 400))
	f = d.typeText("5")
	if f.Guess != "1" || f.GuessFocused {
		t.Errorf("guess=%q focused=%v", f.Guess, f.GuessFocused)
	}
}

func TestSelectedBlocksDrawnLast(t *testing.T) {
	d := newDriver(t, func(c *config.ScaleConfig) { c.Blocks.Stray = config.StrayKeep })
	spawn := center(d.s.Layout().SpawnRect(KindX))
	d.s.Spawn(KindX)
	d.drag(spawn, core.Pt(600, 450))
	d.s.Spawn(KindX)
	d.s.Spawn(KindX)

	f := d.step(core.PointerDown(core.Pt(600, 450), core.ButtonPrimary))
	var ids []int
	for _, b := range f.Blocks {
		ids = append(ids, b.ID)
	}
	if len(ids) != 3 || ids[0] != 2 || ids[1] != 3 || ids[2] != 1 {
		t.Errorf("draw order = %v", ids)
	}
}

func TestNonPrimaryButtonIgnored(t *testing.T) {
	d := newDriver(t, nil)
	p := center(d.s.Layout().PaletteUnit)
	f := d.step(core.PointerDown(p, core.ButtonSecondary), core.PointerDown(p, core.ButtonMiddle))
	if len(f.Blocks) != 0 {
		t.Errorf("blocks = %d", len(f.Blocks))
	}
}

func TestClearKeepsEquationAndAngle(t *testing.T) {
	d := newDriver(t, nil)
	if err := d.s.PlaceOn(KindX, SideRight, 900); err != nil {
		t.Fatal(err)
	}
	for range 10 {
		d.step()
	}
	angle := d.s.Angle()
	if angle <= 0 {
		t.Fatalf("angle = %v", angle)
	}
	d.click(center(d.s.Layout().InputBox))
	d.typeText("4")

	d.s.Clear()
	if d.s.Angle() != angle || d.s.Equation() != Fallback {
		t.Error("clear must keep angle and equation")
	}
	if len(d.s.Blocks()) != 0 || d.s.Guess() != "" || d.s.Feedback() != (Feedback{}) {
		t.Error("clear must empty blocks and input")
	}
}

func TestButtons(t *testing.T) {
	d := newDriver(t, nil)
	l := d.s.Layout()
	d.s.Spawn(KindX)
	if err := d.s.PlaceOn(KindUnit, SideLeft, 300); err != nil {
		t.Fatal(err)
	}
	for range 5 {
		d.step()
	}

	f := d.click(center(l.Clear))
	if len(f.Blocks) != 0 {
		t.Errorf("clear left %d blocks", len(f.Blocks))
	}
	if f.Equation() != Fallback.String() {
		t.Errorf("clear changed equation to %q", f.Equation())
	}

	if err := d.s.PlaceOn(KindUnit, SideLeft, 300); err != nil {
		t.Fatal(err)
	}
	d.step()
	d.click(center(l.InputBox))
	d.typeText("7")

	f = d.click(center(l.New))
	if len(f.Blocks) != 0 || f.Angle != 0 || f.Guess != "" || f.GuessFocused {
		t.Errorf("new problem: %+v", f)
	}
	if !d.s.Equation().Valid() {
		t.Errorf("invalid equation %+v", d.s.Equation())
	}
}

func TestCaretBlink(t *testing.T) {
	d := newDriver(t, nil)
	d.click(center(d.s.Layout().InputBox))

	tests := []struct {
		clock time.Duration
		want  bool
	}{
		{0, true},
		{499 * time.Millisecond, true},
		{600 * time.Millisecond, false},
		{1000 * time.Millisecond, true},
	}
	for _, tt := range tests {
		d.in.Clock = tt.clock
		if f := d.step(); f.CaretVisible != tt.want {
			t.Errorf("clock %v: caret = %v, want %v", tt.clock, f.CaretVisible, tt.want)
		}
	}

	d.click(core.Pt(1100, 400))
	d.in.Clock = 0
	if f := d.step(); f.CaretVisible {
		t.Error("caret shown while unfocused")
	}
}

func TestSimDeterminism(t *testing.T) {
	cfg := config.DefaultScaleConfig()
	a, b := New(cfg, 99), New(cfg, 99)
	for range 20 {
		if a.Equation() != b.Equation() {
			t.Fatalf("equations differ: %v vs %v", a.Equation(), b.Equation())
		}
		a.NewProblem()
		b.NewProblem()
	}
}

func TestPressDuringDragSettlesPreviousBlock(t *testing.T) {
	d := newDriver(t, nil)
	if err := d.s.PlaceOn(KindX, SideLeft, d.s.Pans().Left.X+52); err != nil {
		t.Fatal(err)
	}
	if err := d.s.PlaceOn(KindUnit, SideRight, d.s.Pans().Right.X+52); err != nil {
		t.Fatal(err)
	}
	d.step()

	first := d.s.Blocks()[0]
	d.step(core.PointerDown(center(first.Rect), core.ButtonPrimary))
	d.move(core.Pt(600, 450))

	// The release for the first drag never arrives.
	second := d.s.Blocks()[1]
	d.step(core.PointerDown(center(second.Rect), core.ButtonPrimary))
	trash := center(d.s.Layout().Trash)
	d.move(trash)
	f := d.step(core.PointerUp(trash, core.ButtonPrimary))

	blocks := d.s.Blocks()
	if len(blocks) != 1 || blocks[0].ID != first.ID {
		t.Fatalf("blocks = %+v, want only block %d", blocks, first.ID)
	}
	b := blocks[0]
	if b.Selected || b.Placed() {
		t.Errorf("first block should be settled and unplaced, got %+v", b)
	}
	if b.Rect != d.s.Layout().SpawnRect(KindX) {
		t.Errorf("first block rect = %+v, want the palette spawn point", b.Rect)
	}
	if d.s.Dragging() {
		t.Error("no drag should be in progress")
	}
	for _, v := range f.Blocks {
		if v.Selected {
			t.Errorf("block %d still drawn as selected", v.ID)
		}
	}
}

func TestRepeatedChecksAreCounted(t *testing.T) {
	d := newDriver(t, nil)
	d.click(center(d.s.Layout().InputBox))

	var f Frame
	for i, guess := range []string{"3", "4"} {
		d.step(core.KeyDown(core.KeyBackspace))
		d.typeText(guess)
		f = d.step(core.KeyDown(core.KeyEnter))
		if f.Feedback != (Feedback{MsgRetry, ToneBad}) {
			t.Errorf("guess %q: feedback = %+v", guess, f.Feedback)
		}
		if f.Checks != i+1 {
			t.Errorf("guess %q: checks = %d, want %d", guess, f.Checks, i+1)
		}
	}

	if f = d.click(center(d.s.Layout().Check)); f.Checks != 3 {
		t.Errorf("check button: checks = %d, want 3", f.Checks)
	}
	if d.s.Checks() != 3 {
		t.Errorf("Checks() = %d", d.s.Checks())
	}
}
