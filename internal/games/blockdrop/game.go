// Package blockdrop adapts the BlockDrop engine to the terminal platform:
// cursor and slot selection, input actions, and rendering into a Screen.
package blockdrop

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/games/blockdrop/core"
)

const (
	gameID = "blockdrop"

	cellW      = 2  // Terminal columns per board cell
	hudHeight  = 3  // Status line, controls line, separator
	panelGap   = 3  // Columns between the board box and the batch panel
	panelWidth = 16 // Width of the batch panel
	slotStride = 4  // Label row plus up to three shape rows
)

// Game is one BlockDrop game bound to a preset.
type Game struct {
	mode   string
	opts   core.Options
	logger *log.Logger

	rng     *rand.Rand
	session *core.Session
	err     error

	cursor   core.Coord // Anchor under the cursor, in board coordinates
	selected int        // Selected batch slot
	paused   bool
	message  string // Last event summary shown under the board

	screenW int
	screenH int
}

// New creates a game for the given mode name and engine options.
// The options are validated here so Reset cannot fail on them later.
func New(mode string, opts core.Options, logger *log.Logger) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts.Logger = logger.With("mode", mode)

	return &Game{
		mode:   mode,
		opts:   opts,
		logger: logger,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return gameID
}

// Mode returns the preset the game was created for.
func (g *Game) Mode() string {
	return g.mode
}

// Title returns the display name.
func (g *Game) Title() string {
	return "BlockDrop"
}

// Reset starts a new session with the seed from cfg.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.message = ""
	g.selected = 0

	g.session, g.err = core.NewSession(g.opts, g.rng, g.onEvent)
	if g.err != nil {
		g.logger.Error("cannot start session", "err", g.err)
		return
	}
	g.cursor = core.C(g.opts.Width/2-1, g.opts.Height/2)
	g.logger.Info("game started", "seed", cfg.Seed, "board", fmt.Sprintf("%dx%d", g.opts.Width, g.opts.Height))
}

// Resize updates the screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// onEvent turns session events into the status message.
func (g *Game) onEvent(ev core.Event) {
	switch e := ev.(type) {
	case core.ScoreEvent:
		if e.Lines > 0 {
			g.message = fmt.Sprintf("+%d (%d %s)", e.Added, e.Lines, plural(e.Lines, "line", "lines"))
		}
	case core.LevelUpEvent:
		g.message = fmt.Sprintf("Level %d!", e.To)
	case core.GameOverEvent:
		g.message = fmt.Sprintf("No moves left. Final score %d", e.FinalScore)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// Step applies one frame of input.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	if g.session == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionRestart) && g.session.IsOver() {
		g.Reset(platformcore.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.session.IsOver() || g.paused {
		return platformcore.StepResult{State: g.State(), Message: g.message}
	}

	g.handleSelection(input)
	g.handleMovement(input)

	if input.Has(platformcore.ActionPlace) {
		g.place()
	}

	return platformcore.StepResult{State: g.State(), Message: g.message}
}

// handleSelection changes the selected slot. Consumed slots are skipped.
func (g *Game) handleSelection(input platformcore.InputFrame) {
	for a := platformcore.ActionSlot1; a <= platformcore.ActionSlot4; a++ {
		if !input.Has(a) {
			continue
		}
		idx, _ := a.SlotIndex()
		if g.pending(idx) {
			g.selected = idx
		}
	}
	if input.Has(platformcore.ActionNextPiece) {
		g.cycleSelection(1)
	}
	if input.Has(platformcore.ActionPrevPiece) {
		g.cycleSelection(-1)
	}
}

// pending reports whether slot idx holds an unplaced piece.
func (g *Game) pending(idx int) bool {
	slots := g.session.Slots()
	return idx >= 0 && idx < len(slots) && !slots[idx].Consumed
}

// cycleSelection moves the selection by dir to the next pending slot.
func (g *Game) cycleSelection(dir int) {
	n := len(g.session.Slots())
	for i := 1; i <= n; i++ {
		idx := ((g.selected+dir*i)%n + n) % n
		if g.pending(idx) {
			g.selected = idx
			return
		}
	}
}

// handleMovement moves the cursor within the board. Up is toward the top row.
func (g *Game) handleMovement(input platformcore.InputFrame) {
	dx, dy := 0, 0
	if input.Has(platformcore.ActionLeft) {
		dx--
	}
	if input.Has(platformcore.ActionRight) {
		dx++
	}
	if input.Has(platformcore.ActionUp) {
		dy++
	}
	if input.Has(platformcore.ActionDown) {
		dy--
	}
	g.cursor = core.C(
		platformcore.Clamp(g.cursor.X+dx, 0, g.opts.Width-1),
		platformcore.Clamp(g.cursor.Y+dy, 0, g.opts.Height-1),
	)
}

// place tries to place the selected piece at the cursor.
func (g *Game) place() {
	turn, err := g.session.PlacePiece(g.selected, g.cursor)
	if err != nil {
		g.message = "Doesn't fit there"
		g.logger.Debug("placement rejected", "slot", g.selected, "anchor", g.cursor, "err", err)
		return
	}
	if turn.Lines == 0 && !turn.LeveledUp && !turn.GameOver {
		g.message = ""
	}
	if !g.pending(g.selected) {
		g.selected = 0
		if !g.pending(0) {
			g.cycleSelection(1)
		}
	}
}

// Session exposes the running session.
func (g *Game) Session() *core.Session {
	return g.session
}

// Cursor returns the anchor under the cursor.
func (g *Game) Cursor() core.Coord {
	return g.cursor
}

// Selected returns the selected slot index.
func (g *Game) Selected() int {
	return g.selected
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{GameOver: g.err != nil}
	}
	return platformcore.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Lines:    g.session.LinesCleared(),
		Pieces:   g.session.PiecesPlaced(),
		GameOver: g.session.IsOver(),
		Paused:   g.paused,
	}
}

// layout returns the board box and the batch panel origin, or ok=false
// when the screen cannot fit them.
func (g *Game) layout(dst *platformcore.Screen) (box platformcore.Rect, panelX, panelY int, ok bool) {
	boxW := g.opts.Width*cellW + 2
	boxH := g.opts.Height + 2
	panelH := g.opts.BatchSize * slotStride

	totalW := boxW + panelGap + panelWidth
	totalH := platformcore.Max(boxH, panelH) + 1 // Message line below

	if dst.Width() < totalW || dst.Height() < hudHeight+totalH {
		return platformcore.Rect{}, 0, 0, false
	}

	x0 := (dst.Width() - totalW) / 2
	y0 := hudHeight + (dst.Height()-hudHeight-totalH)/2
	box = platformcore.NewRect(x0, y0, boxW, boxH)
	return box, box.Right() + panelGap, y0, true
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.session == nil {
		msg := "No game running"
		if g.err != nil {
			msg = g.err.Error()
		}
		g.renderOverlay(dst, "Cannot start", msg)
		return
	}

	box, panelX, panelY, ok := g.layout(dst)
	if !ok {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst, box)
	g.renderBatch(dst, panelX, panelY)
	if g.message != "" {
		dst.DrawTextWithColor(box.X, box.Bottom(), g.message, platformcore.ColorBrightYellow)
	}

	switch {
	case g.session.IsOver():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d - press R to restart", g.session.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status bar with score, level and level progress.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " BlockDrop"
	if g.session != nil {
		hud = fmt.Sprintf(" BlockDrop [%s] | Score: %d | Level: %d %s | Lines: %d",
			g.mode, g.session.Score(), g.session.Level(), progressBar(g.session.Progress(), 10), g.session.LinesCleared())
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)
	dst.DrawTextWithColor(0, 1, " Arrows: move | Tab/1-4: piece | Space: place | P: pause", platformcore.ColorGray)
	dst.DrawHLine(0, 2, dst.Width(), '─', platformcore.ColorGray)
}

// progressBar renders p in [0,1] as a fixed-width bar.
func progressBar(p float64, width int) string {
	filled := platformcore.Clamp(int(p*float64(width)), 0, width)
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

// renderBoard draws the grid, the placed cells and the placement preview.
// Board row 0 is drawn at the bottom of the box.
func (g *Game) renderBoard(dst *platformcore.Screen, box platformcore.Rect) {
	dst.DrawBox(box, platformcore.ColorGray)
	board := g.session.Board()

	preview := make(map[core.Coord]bool)
	var previewColor core.Color
	if g.session.CanPlace(g.selected, g.cursor) {
		slot := g.session.Slots()[g.selected]
		previewColor = slot.Piece.Color()
		for _, c := range slot.Piece.Cells(g.cursor) {
			preview[c] = true
		}
	}

	for y := 0; y < board.Height(); y++ {
		sy := box.Y + board.Height() - y
		for x := 0; x < board.Width(); x++ {
			sx := box.X + 1 + x*cellW
			c := core.C(x, y)
			cell := board.Cell(c)
			switch {
			case preview[c]:
				g.drawCell(dst, sx, sy, '▒', mapColor(previewColor))
			case cell.Filled:
				g.drawCell(dst, sx, sy, '█', mapColor(cell.Color))
			case c == g.cursor:
				dst.DrawTextWithColor(sx, sy, "[]", platformcore.ColorWhite)
			default:
				dst.SetWithColor(sx, sy, '·', platformcore.ColorDarkGray)
			}
		}
	}
}

func (g *Game) drawCell(dst *platformcore.Screen, x, y int, r rune, c platformcore.Color) {
	for i := 0; i < cellW; i++ {
		dst.SetWithColor(x+i, y, r, c)
	}
}

// renderBatch draws the offered pieces, marking the selected slot.
func (g *Game) renderBatch(dst *platformcore.Screen, x, y int) {
	for _, slot := range g.session.Slots() {
		top := y + slot.Index*slotStride
		label := fmt.Sprintf("  %d ", slot.Index+1)
		labelColor := platformcore.ColorGray
		if slot.Index == g.selected && !slot.Consumed {
			label = fmt.Sprintf("> %d ", slot.Index+1)
			labelColor = platformcore.ColorBrightWhite
		}

		if slot.Consumed {
			dst.DrawTextWithColor(x, top, label+"--", platformcore.ColorDarkGray)
			continue
		}
		dst.DrawTextWithColor(x, top, label+slot.Piece.Kind().String(), labelColor)

		shape := slot.Piece.Shape()
		_, h := shape.Bounds()
		for _, c := range shape {
			g.drawCell(dst, x+4+c.X*cellW, top+h-c.Y, '█', mapColor(slot.Piece.Color()))
		}
	}
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := platformcore.Max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(w, 5)
	dst.FillRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, platformcore.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, platformcore.ColorDefault)
}

// mapColor maps engine colors to platform colors.
func mapColor(c core.Color) platformcore.Color {
	switch c {
	case core.ColorRed:
		return platformcore.ColorRed
	case core.ColorGreen:
		return platformcore.ColorGreen
	case core.ColorBlue:
		return platformcore.ColorBlue
	case core.ColorYellow:
		return platformcore.ColorYellow
	case core.ColorPurple:
		return platformcore.ColorMagenta
	case core.ColorOrange:
		return platformcore.ColorOrange
	case core.ColorCyan:
		return platformcore.ColorCyan
	default:
		return platformcore.ColorWhite
	}
}
