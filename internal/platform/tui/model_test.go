package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/storage"
)

// fakeGame records the frames it receives and ends after a fixed number of steps.
type fakeGame struct {
	steps   []core.InputFrame
	resets  int
	endAt   int
	resized [2]int
}

func (g *fakeGame) ID() string   { return "fake" }
func (g *fakeGame) Mode() string { return "classic" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = nil
}

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.steps = append(g.steps, frame)
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake board")
}

func (g *fakeGame) State() core.GameState {
	n := len(g.steps)
	return core.GameState{
		Score:    n * 100,
		Level:    1,
		Lines:    n,
		Pieces:   n,
		GameOver: g.endAt > 0 && n >= g.endAt,
	}
}

type fakeSaver struct {
	saved []storage.GameResult
	err   error
}

func (s *fakeSaver) SaveScore(r storage.GameResult) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.saved = append(s.saved, r)
	return int64(len(s.saved)), nil
}

func newTestModel(g Game, saver ScoreSaver) Model {
	return NewModel(g, saver, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1, TickRate: 30})
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(m Model) Model {
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func TestModelCollectsInputUntilTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = press(m, runeKey('1'))
	if len(g.steps) != 0 {
		t.Fatal("game should not step before the tick")
	}

	m = tick(m)
	if len(g.steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionLeft) || !g.steps[0].Has(core.ActionSlot1) {
		t.Errorf("step frame = %v, want Left and Slot1", g.steps[0].Actions)
	}

	// Idle ticks do not step the game.
	tick(m)
	if len(g.steps) != 1 {
		t.Errorf("idle tick stepped the game, steps = %d", len(g.steps))
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelSavesScoreOnceOnGameOver(t *testing.T) {
	g := &fakeGame{endAt: 2}
	saver := &fakeSaver{}
	m := newTestModel(g, saver)

	m = press(m, runeKey(' '))
	m = tick(m)
	m = press(m, runeKey(' '))
	m = tick(m)
	m = tick(m)

	if !m.State().GameOver {
		t.Fatal("fake game should be over")
	}
	if len(saver.saved) != 1 {
		t.Fatalf("expected 1 saved score, got %d", len(saver.saved))
	}
	got := saver.saved[0]
	if got.Mode != "classic" || got.Score != 200 || got.Pieces != 2 {
		t.Errorf("saved %+v, want classic/200/2 pieces", got)
	}
}

func TestModelSurvivesSaveError(t *testing.T) {
	g := &fakeGame{endAt: 1}
	saver := &fakeSaver{err: errors.New("disk full")}
	m := newTestModel(g, saver)

	m = press(m, runeKey(' '))
	m = tick(m)

	if !m.State().GameOver {
		t.Error("game over state should be kept after a failed save")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if g.resets != 0 {
		t.Error("resize should not reset the game")
	}
	if g.resized != [2]int{100, 29} {
		t.Errorf("game resized to %v, want [100 29]", g.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)

	view := m.View()
	if !strings.Contains(view, "fake board") {
		t.Error("view should contain the rendered game")
	}
	if !strings.Contains(view, "place") {
		t.Errorf("view should contain the help bar:\n%s", view)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextWithColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawText(0, 1, "ef")

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	for _, want := range []string{"ab", "cd", "ef"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q: %q", want, out)
		}
	}
}
