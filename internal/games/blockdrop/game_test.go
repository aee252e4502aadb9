package blockdrop

import (
	"errors"
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/games/blockdrop/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New("classic", core.DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
	return g
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := core.DefaultOptions()
	opts.BatchSize = 0

	if _, err := New("classic", opts, nil); !errors.Is(err, core.ErrInvalidOptions) {
		t.Errorf("New() error = %v, want ErrInvalidOptions", err)
	}
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame(t)

	state := g.State()
	if state.Score != 0 || state.Level != 1 || state.GameOver || state.Paused {
		t.Errorf("State() = %+v, want fresh game", state)
	}
	if g.Cursor() != core.C(3, 5) {
		t.Errorf("Cursor() = %s, want (3,5)", g.Cursor())
	}
	if g.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", g.Selected())
	}
	if g.ID() != "blockdrop" || g.Mode() != "classic" {
		t.Errorf("ID/Mode = %s/%s", g.ID(), g.Mode())
	}
}

func TestCursorMovementClamps(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 20; i++ {
		g.Step(frame(platformcore.ActionLeft, platformcore.ActionUp))
	}
	if g.Cursor() != core.C(0, 9) {
		t.Errorf("Cursor() = %s, want (0,9)", g.Cursor())
	}

	for i := 0; i < 20; i++ {
		g.Step(frame(platformcore.ActionRight, platformcore.ActionDown))
	}
	if g.Cursor() != core.C(7, 0) {
		t.Errorf("Cursor() = %s, want (7,0)", g.Cursor())
	}
}

func TestSlotSelection(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(platformcore.ActionNextPiece))
	if g.Selected() != 1 {
		t.Errorf("after NextPiece Selected() = %d, want 1", g.Selected())
	}
	g.Step(frame(platformcore.ActionPrevPiece))
	g.Step(frame(platformcore.ActionPrevPiece))
	if g.Selected() != 2 {
		t.Errorf("PrevPiece should wrap, Selected() = %d, want 2", g.Selected())
	}
	g.Step(frame(platformcore.ActionSlot1))
	if g.Selected() != 0 {
		t.Errorf("Slot1 Selected() = %d, want 0", g.Selected())
	}
	// Slot 4 does not exist with three pieces.
	g.Step(frame(platformcore.ActionSlot4))
	if g.Selected() != 0 {
		t.Errorf("Slot4 should be ignored, Selected() = %d", g.Selected())
	}
}

func TestPlaceAtCursor(t *testing.T) {
	g := newTestGame(t)

	piece := g.Session().Slots()[0].Piece
	anchor, ok := core.FirstFit(g.Session().Board(), piece)
	if !ok {
		t.Fatal("no fit on an empty board")
	}
	g.cursor = anchor

	result := g.Step(frame(platformcore.ActionPlace))
	if result.State.Pieces != 1 {
		t.Fatalf("Pieces = %d, want 1", result.State.Pieces)
	}
	for _, c := range piece.Cells(anchor) {
		if !g.Session().Board().Occupied(c) {
			t.Errorf("cell %s should be filled after placement", c)
		}
	}
}

func TestPlaceRejectedKeepsState(t *testing.T) {
	g := newTestGame(t)

	// No shape fits with its anchor in the top-right corner.
	g.cursor = core.C(7, 9)
	result := g.Step(frame(platformcore.ActionPlace))

	if result.State.Pieces != 0 {
		t.Errorf("Pieces = %d, want 0", result.State.Pieces)
	}
	if result.Message != "Doesn't fit there" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(platformcore.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	g.Step(frame(platformcore.ActionLeft))
	if g.Cursor() != core.C(3, 5) {
		t.Errorf("cursor moved while paused: %s", g.Cursor())
	}

	g.Step(frame(platformcore.ActionPause))
	if g.State().Paused {
		t.Error("second Pause should resume")
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t)
	before := g.Session()

	g.Step(frame(platformcore.ActionRestart))
	if g.Session() != before {
		t.Error("Restart should only apply after game over")
	}
}

func TestSameSeedSameBatch(t *testing.T) {
	g1 := newTestGame(t)
	g2 := newTestGame(t)

	s1, s2 := g1.Session().Snapshot(), g2.Session().Snapshot()
	for i := range s1.Batch {
		if s1.Batch[i] != s2.Batch[i] {
			t.Errorf("slot %d: %s vs %s", i, s1.Batch[i], s2.Batch[i])
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := platformcore.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"BlockDrop", "Score: 0", "Level: 1", "> 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("render should contain %q:\n%s", want, out)
		}
	}
}

func TestRenderPreviewOnlyWhenValid(t *testing.T) {
	g := newTestGame(t)
	screen := platformcore.NewScreen(80, 24)

	anchor, _ := core.FirstFit(g.Session().Board(), g.Session().Slots()[0].Piece)
	g.cursor = anchor
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), '▒') {
		t.Error("valid anchor should show the placement preview")
	}

	g.cursor = core.C(7, 9)
	g.Render(screen)
	out := screen.String()
	if strings.ContainsRune(out, '▒') {
		t.Error("invalid anchor should not show a preview")
	}
	if !strings.Contains(out, "[]") {
		t.Error("cursor marker should be drawn when there is no preview")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	screen := platformcore.NewScreen(30, 10)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small overlay:\n%s", screen.String())
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		p        float64
		expected string
	}{
		{0, "[    ]"},
		{0.5, "[==  ]"},
		{0.99, "[=== ]"},
		{1.5, "[====]"},
	}

	for _, tc := range tests {
		if got := progressBar(tc.p, 4); got != tc.expected {
			t.Errorf("progressBar(%v) = %q, want %q", tc.p, got, tc.expected)
		}
	}
}
