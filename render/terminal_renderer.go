package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// TerminalRenderer draws the game view onto a tcell screen
// Each board tile occupies CellWidth columns so tiles stay roughly square
type TerminalRenderer struct {
	screen tcell.Screen
	muted  bool

	// Board origin for the current frame (top-left of the status bar)
	originX int
	originY int
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// SetMuted sets the sound indicator shown in the status bar
func (r *TerminalRenderer) SetMuted(muted bool) {
	r.muted = muted
}

// Render draws one frame
func (r *TerminalRenderer) Render(view engine.View, particles []Particle) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)

	width, height := r.screen.Size()
	boardW := view.TileCount*constants.CellWidth + 2*constants.BorderSize
	boardH := view.TileCount + 2*constants.BorderSize + constants.StatusBarHeight + constants.HelpBarHeight
	if width < boardW || height < boardH {
		r.drawTooSmall(width, height, boardW, boardH, defaultStyle)
		r.screen.Show()
		return
	}

	r.originX = (width - boardW) / 2
	r.originY = (height - boardH) / 2

	r.fill(width, height, defaultStyle)
	r.drawBorder(view.TileCount, defaultStyle)

	switch view.State {
	case engine.StateMenu:
		r.drawStatusBar(view, defaultStyle)
		r.drawMenu(view, defaultStyle)
		r.drawParticles(view.TileCount, particles, defaultStyle)
		r.drawHelp(view.TileCount, "enter start  1/2/3 difficulty  x sound  q quit", defaultStyle)

	case engine.StatePlaying:
		r.drawStatusBar(view, defaultStyle)
		r.drawBoard(view, defaultStyle)
		r.drawParticles(view.TileCount, particles, defaultStyle)
		r.drawHelp(view.TileCount, "arrows/wasd move  p pause  esc menu", defaultStyle)

	case engine.StatePaused:
		r.drawStatusBar(view, defaultStyle)
		r.drawBoard(view, defaultStyle)
		r.drawPaused(view.TileCount, defaultStyle)
		r.drawHelp(view.TileCount, "p/space resume  esc menu", defaultStyle)

	case engine.StateGameOver:
		r.drawStatusBar(view, defaultStyle)
		r.drawBoard(view, defaultStyle)
		r.drawParticles(view.TileCount, particles, defaultStyle)
		r.drawGameOver(view, defaultStyle)
		r.drawHelp(view.TileCount, "enter restart  esc menu  q quit", defaultStyle)
	}

	r.screen.Show()
}

// ===== LAYOUT =====

// boardToScreen maps a board cell to the left column and row of its screen tile
func (r *TerminalRenderer) boardToScreen(x, y int) (int, int) {
	return r.originX + constants.BorderSize + x*constants.CellWidth,
		r.originY + constants.StatusBarHeight + constants.BorderSize + y
}

func (r *TerminalRenderer) fill(width, height int, style tcell.Style) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// drawCentered writes text centred over the board interior on a board row
func (r *TerminalRenderer) drawCentered(tileCount, row int, text string, style tcell.Style) {
	inner := tileCount * constants.CellWidth
	runes := []rune(text)
	x := r.originX + constants.BorderSize + (inner-len(runes))/2
	_, y := r.boardToScreen(0, row)
	r.drawText(x, y, text, style)
}

func (r *TerminalRenderer) drawTooSmall(width, height, needW, needH int, style tcell.Style) {
	lines := []string{
		"terminal too small",
		fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, width, height),
	}
	warn := style.Foreground(RgbWarning)
	for i, line := range lines {
		x := (width - len(line)) / 2
		if x < 0 {
			x = 0
		}
		y := height/2 - 1 + i
		if y < 0 || y >= height {
			continue
		}
		r.drawText(x, y, line, warn)
	}
}

func (r *TerminalRenderer) drawBorder(tileCount int, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbBorder)
	inner := tileCount * constants.CellWidth
	left := r.originX
	right := r.originX + inner + 1
	top := r.originY + constants.StatusBarHeight
	bottom := top + tileCount + 1

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(left, top, '┌', nil, style)
	r.screen.SetContent(right, top, '┐', nil, style)
	r.screen.SetContent(left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

// ===== STATUS =====

func (r *TerminalRenderer) drawStatusBar(view engine.View, defaultStyle tcell.Style) {
	y := r.originY
	x := r.originX

	score := fmt.Sprintf(" Score: %d ", view.Score)
	r.drawText(x, y, score, defaultStyle.Bold(true))
	x += len(score)

	badge := fmt.Sprintf(" %s ", view.DifficultyLabel)
	r.drawText(x, y, badge, defaultStyle.Foreground(RgbBadgeText).Background(badgeColor(view.Difficulty)))
	x += len(badge)

	high := fmt.Sprintf(" High: %d", view.HighScore)
	r.drawText(x, y, high, defaultStyle.Foreground(RgbHighScore))

	if r.muted {
		boardW := view.TileCount*constants.CellWidth + 2*constants.BorderSize
		r.drawText(r.originX+boardW-len("muted"), y, "muted", defaultStyle.Foreground(RgbTextDim))
	}
}

func badgeColor(d engine.Difficulty) tcell.Color {
	switch d {
	case engine.DifficultyEasy:
		return RgbBadgeEasy
	case engine.DifficultyHard:
		return RgbBadgeHard
	default:
		return RgbBadgeMedium
	}
}

func (r *TerminalRenderer) drawHelp(tileCount int, text string, defaultStyle tcell.Style) {
	y := r.originY + constants.StatusBarHeight + tileCount + 2*constants.BorderSize
	r.drawText(r.originX, y, text, defaultStyle.Foreground(RgbTextDim))
}

// ===== BOARD =====

func (r *TerminalRenderer) drawBoard(view engine.View, defaultStyle tcell.Style) {
	gridStyle := defaultStyle.Foreground(RgbGrid)
	for y := 0; y < view.TileCount; y++ {
		for x := 0; x < view.TileCount; x++ {
			sx, sy := r.boardToScreen(x, y)
			r.screen.SetContent(sx, sy, '·', nil, gridStyle)
			r.screen.SetContent(sx+1, sy, ' ', nil, gridStyle)
		}
	}

	if view.HasFood {
		// Brightness pulses with the frame counter
		level := math.Sin(float64(view.Frame)*constants.FoodPulseRate)*0.5 + 0.5
		style := defaultStyle.Foreground(FoodPulseColor(level))
		sx, sy := r.boardToScreen(view.Food.X, view.Food.Y)
		r.screen.SetContent(sx, sy, '●', nil, style)
		r.screen.SetContent(sx+1, sy, ' ', nil, style)
	}

	bodyStyle := defaultStyle.Foreground(RgbSnakeBody)
	for i := len(view.Snake) - 1; i >= 1; i-- {
		sx, sy := r.boardToScreen(view.Snake[i].X, view.Snake[i].Y)
		r.screen.SetContent(sx, sy, '█', nil, bodyStyle)
		r.screen.SetContent(sx+1, sy, '█', nil, bodyStyle)
	}

	if len(view.Snake) > 0 {
		head := view.Snake[0]
		eyes := headGlyphs(view)
		style := defaultStyle.Foreground(RgbBackground).Background(RgbSnakeHead)
		sx, sy := r.boardToScreen(head.X, head.Y)
		r.screen.SetContent(sx, sy, eyes[0], nil, style)
		r.screen.SetContent(sx+1, sy, eyes[1], nil, style)
	}
}

// headGlyphs draws eyes on the head; crossed out once the snake has crashed
func headGlyphs(view engine.View) [2]rune {
	if view.State == engine.StateGameOver && (view.Outcome == engine.OutcomeWall || view.Outcome == engine.OutcomeSelf) {
		return [2]rune{'x', 'x'}
	}
	return [2]rune{'°', '°'}
}

func (r *TerminalRenderer) drawParticles(tileCount int, particles []Particle, defaultStyle tcell.Style) {
	for _, p := range particles {
		if p.X < 0 || p.Y < 0 {
			continue
		}
		bx := int(p.X * constants.CellWidth)
		by := int(p.Y)
		if bx >= tileCount*constants.CellWidth || by >= tileCount {
			continue
		}

		alpha := p.Alpha()
		ch := '·'
		if alpha > 0.5 {
			ch = '*'
		}
		sx := r.originX + constants.BorderSize + bx
		_, sy := r.boardToScreen(0, by)
		r.screen.SetContent(sx, sy, ch, nil, defaultStyle.Foreground(FadeColor(p.Color, alpha)))
	}
}

// ===== SCREENS =====

func (r *TerminalRenderer) drawMenu(view engine.View, defaultStyle tcell.Style) {
	mid := view.TileCount / 2

	r.drawCentered(view.TileCount, mid-5, "V I - S N A K E", defaultStyle.Foreground(RgbTitle).Bold(true))
	r.drawCentered(view.TileCount, mid-3, "select difficulty", defaultStyle.Foreground(RgbTextDim))

	options := []engine.Difficulty{engine.DifficultyEasy, engine.DifficultyMedium, engine.DifficultyHard}
	for i, d := range options {
		label := fmt.Sprintf("  %d  %-6s  ", i+1, d.Label())
		style := defaultStyle
		if d == view.Difficulty {
			label = fmt.Sprintf("> %d  %-6s <", i+1, d.Label())
			style = defaultStyle.Foreground(RgbBadgeText).Background(badgeColor(d))
		}
		r.drawCentered(view.TileCount, mid-1+i, label, style)
	}

	r.drawCentered(view.TileCount, mid+3, fmt.Sprintf("high score %d", view.HighScore), defaultStyle.Foreground(RgbHighScore))
	r.drawCentered(view.TileCount, mid+5, "press enter", defaultStyle.Foreground(RgbText).Blink(true))
}

func (r *TerminalRenderer) drawPaused(tileCount int, defaultStyle tcell.Style) {
	mid := tileCount / 2
	style := defaultStyle.Foreground(RgbBackground).Background(RgbText).Bold(true)
	r.drawCentered(tileCount, mid-1, "            ", style)
	r.drawCentered(tileCount, mid, "   PAUSED   ", style)
	r.drawCentered(tileCount, mid+1, "            ", style)
}

type textLine struct {
	text  string
	style tcell.Style
}

// OutcomeText is the game over reason shown to the player
func OutcomeText(o engine.Outcome) string {
	switch o {
	case engine.OutcomeWall:
		return "hit the wall"
	case engine.OutcomeSelf:
		return "bit your own tail"
	case engine.OutcomeBoardFilled:
		return "board filled!"
	}
	return ""
}

func (r *TerminalRenderer) drawGameOver(view engine.View, defaultStyle tcell.Style) {
	mid := view.TileCount / 2
	panel := defaultStyle.Background(RgbBackground)

	lines := []textLine{
		{"GAME OVER", panel.Foreground(RgbWarning).Bold(true)},
		{OutcomeText(view.Outcome), panel.Foreground(RgbTextDim)},
		{fmt.Sprintf("score  %d", view.Score), panel},
		{fmt.Sprintf("length %d", len(view.Snake)), panel},
		{fmt.Sprintf("food   %d", view.FoodEaten), panel},
	}
	if view.NewHighScore {
		lines = append(lines, textLine{"NEW HIGH SCORE!", panel.Foreground(RgbHighScore).Bold(true)})
	}

	start := mid - len(lines)/2 - 1
	for i, line := range lines {
		r.drawCentered(view.TileCount, start+i, "                    ", panel)
		r.drawCentered(view.TileCount, start+i, line.text, line.style)
	}
}
