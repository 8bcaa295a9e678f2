package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/snakeplus/internal/core"
	"github.com/vovakirdan/snakeplus/internal/game"
)

// Playfield glyphs.
const (
	glyphHead     = 'O'
	glyphBody     = 'o'
	glyphObstacle = '#'
	glyphNormal   = '*'
	glyphGold     = '$'
	glyphPoison   = '%'
	glyphSlow     = 'S'
	glyphGhost    = 'G'
	glyphMulti    = 'M'
	glyphBackdrop = '·'
)

// hudRows is the height of the status area above the playfield.
const hudRows = 2

const speedBarWidth = 8

// requiredScreen returns the minimum terminal size that fits the bordered
// playfield plus the HUD.
func requiredScreen(gridW, gridH int) (w, h int) {
	return gridW + 2, gridH + 2 + hudRows
}

// Draw renders one frame of the session snapshot into the screen buffer.
func Draw(snap game.Snapshot, dst *core.Screen, tooSmall bool) {
	dst.Clear()

	if snap.State == game.StateMenu {
		drawMenu(snap, dst)
		return
	}
	drawRound(snap, dst, tooSmall)
}

// drawMenu renders the option screen shown before a round starts.
func drawMenu(snap game.Snapshot, dst *core.Screen) {
	y := dst.Height()/2 - 8
	if y < 1 {
		y = 1
	}

	dst.DrawTextCentered(y, "S N A K E +", core.ColorBrightGreen)
	dst.DrawTextCentered(y+2, "grid snake with power-ups, poison and mazes", core.ColorGray)

	dst.DrawTextCentered(y+4, fmt.Sprintf("Difficulty   < %s >", snap.Difficulty), core.ColorBrightWhite)
	dst.DrawTextCentered(y+5, fmt.Sprintf("Wrap edges     %s", onOff(snap.Wrap)), core.ColorWhite)
	dst.DrawTextCentered(y+6, fmt.Sprintf("Maze           %s", onOff(snap.Maze)), core.ColorWhite)
	dst.DrawTextCentered(y+7, fmt.Sprintf("Sound          %s", onOff(snap.Sound)), core.ColorWhite)

	dst.DrawTextCentered(y+9, fmt.Sprintf("Best score for these rules: %d", snap.Best), core.ColorYellow)

	dst.DrawTextCentered(y+11, "Enter start   D difficulty   W wrap   M maze   S sound", core.ColorGray)
	dst.DrawTextCentered(y+12, "Tab scores   Q quit", core.ColorGray)
}

// drawRound renders the playfield, HUD, and any overlay for a round that is
// running, paused, or over.
func drawRound(snap game.Snapshot, dst *core.Screen, tooSmall bool) {
	drawHUD(snap, dst)

	if tooSmall {
		reqW, reqH := requiredScreen(snap.GridW, snap.GridH)
		drawOverlay(dst,
			"Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", reqW, reqH, dst.Width(), dst.Height()),
			"Resize to continue")
		return
	}

	// Center the bordered playfield in the space below the HUD.
	fieldW, fieldH := snap.GridW+2, snap.GridH+2
	ox := (dst.Width() - fieldW) / 2
	oy := hudRows + (dst.Height()-hudRows-fieldH)/2
	if ox < 0 {
		ox = 0
	}
	if oy < hudRows {
		oy = hudRows
	}

	// A wrapped (or ghosted) boundary is permeable; dim the border to show it.
	borderColor := core.ColorWhite
	if snap.Wrap || effectActive(snap, game.PowerGhost) {
		borderColor = core.ColorGray
	}
	dst.DrawBox(core.NewRect(ox, oy, fieldW, fieldH), borderColor)

	ix, iy := ox+1, oy+1

	// Checkerboard backdrop so motion reads against an even grid.
	for y := 0; y < snap.GridH; y++ {
		for x := y % 2; x < snap.GridW; x += 2 {
			dst.SetCell(ix+x, iy+y, glyphBackdrop, core.ColorGray)
		}
	}

	for _, c := range snap.Obstacles {
		dst.SetCell(ix+c.X, iy+c.Y, glyphObstacle, core.ColorBlue)
	}

	for _, f := range snap.Foods {
		r, color := foodGlyph(f.Kind)
		dst.SetCell(ix+f.Pos.X, iy+f.Pos.Y, r, color)
	}

	for _, p := range snap.PowerUps {
		r, color := powerUpGlyph(p.Kind)
		dst.SetCell(ix+p.Pos.X, iy+p.Pos.Y, r, color)
	}

	drawSnake(snap, dst, ix, iy)

	switch snap.State {
	case game.StatePaused:
		drawOverlay(dst, "Paused", "P resume   Esc menu")
	case game.StateGameOver:
		drawOverlay(dst,
			endReasonText(snap.EndReason),
			fmt.Sprintf("Score %d   Best %d", snap.Score, snap.Best),
			"R restart   Esc menu")
	}
}

// drawSnake draws the body head-first. The head is brighter than the body;
// while GHOST is active the whole snake fades so the immunity is visible.
func drawSnake(snap game.Snapshot, dst *core.Screen, ix, iy int) {
	headColor, bodyColor := core.ColorBrightGreen, core.ColorGreen
	if effectActive(snap, game.PowerGhost) {
		headColor, bodyColor = core.ColorBrightWhite, core.ColorGray
	}

	for i := len(snap.Snake) - 1; i >= 0; i-- {
		seg := snap.Snake[i]
		if i == 0 {
			dst.SetCell(ix+seg.X, iy+seg.Y, glyphHead, headColor)
		} else {
			dst.SetCell(ix+seg.X, iy+seg.Y, glyphBody, bodyColor)
		}
	}
}

// drawHUD draws the status line and its separator: score, best, the speed
// ramp bar, and a badge for every active effect with its remaining time.
func drawHUD(snap game.Snapshot, dst *core.Screen) {
	x := 1

	score := fmt.Sprintf("Score %d", snap.Score)
	dst.DrawText(x, 0, score, core.ColorBrightWhite)
	x += len(score) + 2

	best := fmt.Sprintf("Best %d", snap.Best)
	dst.DrawText(x, 0, best, core.ColorYellow)
	x += len(best) + 2

	dst.DrawText(x, 0, "Speed ", core.ColorGray)
	x += 6
	x = drawSpeedBar(snap, dst, x)

	for _, e := range snap.Effects {
		if !e.Active {
			continue
		}
		badge := fmt.Sprintf("  %s %.0fs", effectBadge(e.Kind), math.Ceil(e.Remaining))
		dst.DrawText(x, 0, badge, effectColor(e.Kind))
		x += len(badge)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// drawSpeedBar renders the speed as a filled fraction of the base-to-max
// ramp and returns the x position after the bar.
func drawSpeedBar(snap game.Snapshot, dst *core.Screen, x int) int {
	frac := 0.0
	if snap.MaxSpeed > snap.BaseSpeed {
		frac = (snap.Speed - snap.BaseSpeed) / (snap.MaxSpeed - snap.BaseSpeed)
	}
	filled := int(frac*speedBarWidth + 0.5)
	filled = core.Clamp(filled, 0, speedBarWidth)

	for i := 0; i < speedBarWidth; i++ {
		if i < filled {
			dst.SetCell(x+i, 0, '■', core.ColorBrightCyan)
		} else {
			dst.SetCell(x+i, 0, '·', core.ColorGray)
		}
	}
	return x + speedBarWidth
}

// drawOverlay draws a centered box with one message line per argument,
// spaced with blank rows.
func drawOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}

	boxW := maxLen + 6
	boxH := 2*len(lines) + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightWhite
		}
		dst.DrawTextCentered(boxY+1+2*i, line, color)
	}
}

func foodGlyph(kind game.FoodKind) (rune, core.Color) {
	switch kind {
	case game.FoodGold:
		return glyphGold, core.ColorBrightYellow
	case game.FoodPoison:
		return glyphPoison, core.ColorMagenta
	default:
		return glyphNormal, core.ColorBrightRed
	}
}

func powerUpGlyph(kind game.PowerUpKind) (rune, core.Color) {
	switch kind {
	case game.PowerSlow:
		return glyphSlow, core.ColorBrightBlue
	case game.PowerGhost:
		return glyphGhost, core.ColorBrightWhite
	default:
		return glyphMulti, core.ColorOrange
	}
}

func effectBadge(kind game.PowerUpKind) string {
	switch kind {
	case game.PowerSlow:
		return "SLOW"
	case game.PowerGhost:
		return "GHOST"
	default:
		return "x2"
	}
}

func effectColor(kind game.PowerUpKind) core.Color {
	switch kind {
	case game.PowerSlow:
		return core.ColorBrightBlue
	case game.PowerGhost:
		return core.ColorBrightWhite
	default:
		return core.ColorOrange
	}
}

func effectActive(snap game.Snapshot, kind game.PowerUpKind) bool {
	for _, e := range snap.Effects {
		if e.Kind == kind {
			return e.Active
		}
	}
	return false
}

func endReasonText(reason game.Outcome) string {
	switch reason {
	case game.OutcomeWall:
		return "You hit the wall"
	case game.OutcomeSelf:
		return "You bit yourself"
	case game.OutcomeObstacle:
		return "You hit an obstacle"
	default:
		return "Game over"
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
