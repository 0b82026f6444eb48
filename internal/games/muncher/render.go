package muncher

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/pixel-muncher/internal/config"
	"github.com/vovakirdan/pixel-muncher/internal/core"
)

const (
	cellW     = 2 // Screen columns per tile
	hudHeight = 2 // Status line plus separator
)

// tileGlyphs are the two screen cells drawn for each tile kind.
var tileGlyphs = map[Tile]struct {
	runes [cellW]rune
	color core.Color
}{
	Wall:             {[cellW]rune{'█', '█'}, core.ColorBlue},
	Collectible:      {[cellW]rune{'·', ' '}, core.ColorWhite},
	Empty:            {[cellW]rune{' ', ' '}, core.ColorDefault},
	BonusCollectible: {[cellW]rune{'●', ' '}, core.ColorBrightYellow},
	RestrictedZone:   {[cellW]rune{'-', '-'}, core.ColorMagenta},
}

// playerMouth shows which way the player is heading.
var playerMouth = map[Direction]rune{
	DirNone:  '@',
	DirUp:    '^',
	DirDown:  'v',
	DirLeft:  '<',
	DirRight: '>',
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.machine.Snapshot()
	RenderSnapshot(dst, snap)

	switch {
	case snap.State == StateMenu:
		g.renderMenu(dst, snap)
	case snap.State.Terminal():
		g.renderResult(dst, snap)
	case g.held:
		renderOverlay(dst, "Paused", "Press P to continue")
	case snap.State == StatePaused:
		renderOverlay(dst, "Ready!", fmt.Sprintf("Lives left: %d", snap.Lives))
	}
}

// RenderSnapshot draws the HUD and the maze with both characters.
// The maze is centered; if the screen is too small a notice is drawn instead.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	renderHUD(dst, snap)

	boardW := snap.Grid.Width() * cellW
	boardH := snap.Grid.Height()
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	offX := (dst.Width() - boardW) / 2
	offY := hudHeight + (dst.Height()-hudHeight-boardH)/2

	for row := range snap.Grid.Height() {
		for col := range snap.Grid.Width() {
			glyph := tileGlyphs[snap.Grid.Classify(col, row)]
			for i, r := range glyph.runes {
				dst.SetColored(offX+col*cellW+i, offY+row, r, glyph.color)
			}
		}
	}

	clip := core.NewRect(offX, offY, boardW, boardH)
	drawCharacter(dst, clip, snap.TileSize, snap.Pursuer, [cellW]rune{'M', 'M'}, core.ColorBrightRed)
	drawCharacter(dst, clip, snap.TileSize, snap.Player,
		[cellW]rune{'@', playerMouth[snap.Player.Heading]}, core.ColorBrightYellow)
}

// drawCharacter places a two-cell sprite at the character's position.
// Horizontal placement uses half-tile steps so movement between tiles is
// visible; cells outside the board (during a wrap) are clipped.
func drawCharacter(dst *core.Screen, clip core.Rect, tileSize float64, c CharacterView, sprite [cellW]rune, color core.Color) {
	x := clip.X + int(math.Round(c.Pos.X/tileSize*cellW)) - 1
	y := clip.Y + int(math.Floor(c.Pos.Y/tileSize))
	for i, r := range sprite {
		if clip.Contains(x+i, y) {
			dst.SetColored(x+i, y, r, color)
		}
	}
}

func renderHUD(dst *core.Screen, snap Snapshot) {
	lives := strings.Repeat("♥", max(snap.Lives, 0))
	hud := fmt.Sprintf(" Score: %d  High: %d  Lives: %s  Left: %d  %s",
		snap.Score, snap.HighScore, lives, snap.Remaining, snap.Difficulty.Label())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

func (g *Game) renderMenu(dst *core.Screen, snap Snapshot) {
	easy, hard := "  Easy  ", "  Hard  "
	if g.choice == config.DifficultyHard {
		hard = "[ Hard ]"
	} else {
		easy = "[ Easy ]"
	}
	lines := []string{
		"PIXEL MUNCHER",
		snap.MazeName,
		"",
		easy + "   " + hard,
		"",
		"Arrows to choose, Enter to start",
		fmt.Sprintf("High score: %d", snap.HighScore),
	}
	renderBox(dst, lines, core.ColorYellow)
}

func (g *Game) renderResult(dst *core.Screen, snap Snapshot) {
	title, color := "Game Over", core.ColorRed
	if snap.State == StateWon {
		title, color = "You Win!", core.ColorGreen
	}
	score, high, isNew := snap.Score, snap.HighScore, false
	if g.result != nil {
		score, high, isNew = g.result.Score, g.result.HighScore, g.result.NewHighScore
	}

	lines := []string{title, "", fmt.Sprintf("Final Score: %d", score)}
	if isNew {
		lines = append(lines, "New high score!")
	} else {
		lines = append(lines, fmt.Sprintf("High score: %d", high))
	}
	lines = append(lines, "", "Press R for menu")
	renderBox(dst, lines, color)
}

// renderOverlay draws a two-line message box in the middle of the screen.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	renderBox(dst, []string{line1, "", line2}, core.ColorCyan)
}

func renderBox(dst *core.Screen, lines []string, c core.Color) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, core.ColorBrightWhite)
	}
}
