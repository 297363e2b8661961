// Package render draws match snapshots on a tcell screen
// The field is scaled from logical units onto the rows between the scoreboard and the footer
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/effect"
	"github.com/lixenwraith/neon-pong/engine"
	"github.com/lixenwraith/neon-pong/vmath"
)

const (
	MinCols = 20
	MinRows = 6

	headerRows = 1
	footerRows = 1
)

// HUD carries frontend-only status text
type HUD struct {
	Muted bool
	// Debug replaces the key hints in the footer when non-empty
	Debug string
}

// Renderer draws one frame per call; not safe for concurrent use
type Renderer struct {
	screen        tcell.Screen
	palette       Palette
	width, height float64
	rng           vmath.Rand

	// per-frame projection
	cols, top, rows int
	offset          vmath.Vec2
}

func New(screen tcell.Screen, fieldWidth, fieldHeight float64, palette Palette, rng vmath.Rand) *Renderer {
	return &Renderer{
		screen:  screen,
		palette: palette,
		width:   fieldWidth,
		height:  fieldHeight,
		rng:     rng,
	}
}

// Draw renders m as of now and shows the screen
func (r *Renderer) Draw(m *core.Match, now time.Time, hud HUD) {
	s := r.screen
	s.SetStyle(r.palette.Base)
	s.Clear()

	cols, rows := s.Size()
	if cols < MinCols || rows < MinRows {
		r.text(0, 0, "terminal too small", r.palette.Base)
		s.Show()
		return
	}

	r.cols = cols
	r.top = headerRows
	r.rows = rows - headerRows - footerRows
	r.offset = effect.ShakeOffset(m.Shake, now, r.rng)

	r.drawGrid()
	r.drawPowerUps(m)
	r.drawTrails(m)
	r.drawParticles(m)
	r.drawPaddle(&m.Player, core.TintCyan)
	r.drawPaddle(&m.Opponent, core.TintRed)
	r.drawBalls(m, now)

	if gi := effect.GlitchIntensity(m.Glitch, now); gi > 0 {
		r.glitch(gi)
	}

	r.drawHeader(m)
	r.drawFooter(hud)
	r.drawOverlay(m)

	s.Show()
}

func (r *Renderer) cellX(x float64) int {
	return int((x + r.offset.X) / r.width * float64(r.cols))
}

func (r *Renderer) cellY(y float64) int {
	return int((y + r.offset.Y) / r.height * float64(r.rows))
}

// project maps a field position to a screen cell; ok is false outside the field area
func (r *Renderer) project(p vmath.Vec2) (x, y int, ok bool) {
	if p.X+r.offset.X < 0 || p.Y+r.offset.Y < 0 {
		return 0, 0, false
	}
	x, y = r.cellX(p.X), r.cellY(p.Y)
	if x >= r.cols || y >= r.rows {
		return 0, 0, false
	}
	return x, y + r.top, true
}

func (r *Renderer) put(x, y int, ch rune, st tcell.Style) {
	r.screen.SetContent(x, y, ch, nil, st)
}

func (r *Renderer) text(x, y int, s string, st tcell.Style) {
	for _, ch := range s {
		r.put(x, y, ch, st)
		x++
	}
}

func (r *Renderer) centered(y int, s string, st tcell.Style) {
	r.text((r.cols-len([]rune(s)))/2, y, s, st)
}

func (r *Renderer) drawGrid() {
	mid := r.cols / 2
	for y := r.top; y < r.top+r.rows; y += 2 {
		r.put(mid, y, '┊', r.palette.Grid)
	}
}

// drawPaddle fills every cell the paddle rect touches, at least one cell
func (r *Renderer) drawPaddle(pd *core.Paddle, tint core.Tint) {
	const eps = 1e-6
	x0 := clampInt(r.cellX(pd.Pos.X), 0, r.cols-1)
	x1 := clampInt(r.cellX(pd.Pos.X+pd.Width-eps), x0, r.cols-1)
	y0 := clampInt(r.cellY(pd.Pos.Y), 0, r.rows-1)
	y1 := clampInt(r.cellY(pd.Pos.Y+pd.Height-eps), y0, r.rows-1)

	st := r.palette.Tint(tint)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.put(x, y+r.top, '█', st)
		}
	}
}

func (r *Renderer) drawBalls(m *core.Match, now time.Time) {
	for i := range m.Balls {
		b := &m.Balls[i]
		x, y, ok := r.project(b.Pos)
		if !ok {
			continue
		}
		ch, tint := '●', core.TintCyan
		if b.GhostActive(now) {
			ch, tint = '○', core.TintPurple
		}
		r.put(x, y, ch, r.palette.Tint(tint).Bold(true))
	}
}

func (r *Renderer) drawTrails(m *core.Match) {
	for i := range m.Balls {
		b := &m.Balls[i]
		tint := core.TintCyan
		if b.Ghost {
			tint = core.TintPurple
		}
		// oldest first so newer points overwrite; index 0 sits under the ball
		for j := len(b.Trail) - 1; j >= 1; j-- {
			x, y, ok := r.project(b.Trail[j])
			if !ok {
				continue
			}
			ch := '∙'
			if j <= len(b.Trail)/2 {
				ch = '•'
			}
			r.put(x, y, ch, r.palette.Faded(tint))
		}
	}
}

func (r *Renderer) drawParticles(m *core.Match) {
	for _, p := range m.Particles {
		x, y, ok := r.project(p.Pos)
		if !ok {
			continue
		}
		if p.Life > 0.5 {
			r.put(x, y, '*', r.palette.Tint(p.Tint))
		} else {
			r.put(x, y, '·', r.palette.Faded(p.Tint))
		}
	}
}

// PowerUpGlyph returns the icon drawn for a power-up kind
func PowerUpGlyph(k core.PowerUpKind) rune {
	switch k {
	case core.PowerUpExtendPaddle:
		return '↕'
	case core.PowerUpDuplicateBall:
		return '⊕'
	case core.PowerUpGhostBall:
		return '◌'
	}
	return '?'
}

func (r *Renderer) drawPowerUps(m *core.Match) {
	for _, pu := range m.PowerUps {
		if pu.Collected {
			continue
		}
		x, y, ok := r.project(pu.Pos)
		if !ok {
			continue
		}
		tint := pu.Kind.Tint()
		r.put(x, y, PowerUpGlyph(pu.Kind), r.palette.Tint(tint).Bold(true))
		if x > 0 {
			r.put(x-1, y, '[', r.palette.Faded(tint))
		}
		if x+1 < r.cols {
			r.put(x+1, y, ']', r.palette.Faded(tint))
		}
	}
}

// glitch shifts random field rows sideways; row count and shift grow with intensity
func (r *Renderer) glitch(intensity float64) {
	n := 1 + int(intensity*float64(r.rows)/4)
	maxShift := 1 + int(intensity*3)
	for i := 0; i < n; i++ {
		y := r.top + vmath.Pick(r.rng, r.rows)
		shift := vmath.Pick(r.rng, 2*maxShift+1) - maxShift
		if shift != 0 {
			r.shiftRow(y, shift)
		}
	}
}

type cell struct {
	ch rune
	st tcell.Style
}

func (r *Renderer) shiftRow(y, shift int) {
	row := make([]cell, r.cols)
	for x := range row {
		ch, _, st, _ := r.screen.GetContent(x, y)
		row[x] = cell{ch, st}
	}
	for x := range row {
		src := x - shift
		if src < 0 || src >= r.cols {
			r.put(x, y, ' ', r.palette.Base)
			continue
		}
		r.put(x, y, row[src].ch, row[src].st)
	}
}

func (r *Renderer) drawHeader(m *core.Match) {
	left := fmt.Sprintf(" PLAYER %d", m.PlayerScore)
	right := fmt.Sprintf("%d AI ", m.OpponentScore)
	r.text(0, 0, left, r.palette.Tint(core.TintCyan).Bold(true))
	r.text(r.cols-len(right), 0, right, r.palette.Tint(core.TintRed).Bold(true))

	if label := engine.ActiveEffectLabel(m); label != "" {
		r.centered(0, label, r.palette.Tint(core.TintYellow))
		return
	}
	r.centered(0, fmt.Sprintf("first to %d", m.WinningScore), r.palette.Hint)
}

func (r *Renderer) drawFooter(hud HUD) {
	line := hud.Debug
	if line == "" {
		line = "W/S ↑/↓ move  SPACE start/pause  R reset  M mute  Q quit"
	}
	if hud.Muted {
		line += "  [muted]"
	}
	if rs := []rune(line); len(rs) > r.cols {
		line = string(rs[:r.cols])
	}
	r.text(0, r.top+r.rows, line, r.palette.Hint)
}

func (r *Renderer) drawOverlay(m *core.Match) {
	var title, sub string
	titleStyle := r.palette.Title
	switch m.Status {
	case core.StatusIdle:
		title, sub = "NEON PONG", "press SPACE to start"
	case core.StatusPaused:
		title, sub = "PAUSED", "press SPACE to resume"
	case core.StatusGameOver:
		if m.Winner() == core.SideLeft {
			title = "VICTORY!"
		} else {
			title = "GAME OVER"
			titleStyle = r.palette.Tint(core.TintRed).Bold(true)
		}
		sub = fmt.Sprintf("%d - %d  press SPACE to play again", m.PlayerScore, m.OpponentScore)
	default:
		return
	}

	cy := r.top + r.rows/2
	r.centered(cy-1, title, titleStyle)
	r.centered(cy+1, sub, r.palette.Subtitle)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
