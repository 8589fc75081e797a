package rockets

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-rockets/internal/core"
	"github.com/vovakirdan/tui-rockets/internal/particle"
)

const fuelBarWidth = 10

// Render draws the HUD, the arena border and the particles of the last tick.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(g.arena, core.ColorGray)

	for _, c := range g.lastDraw {
		dst.SetCell(g.arena.X+c.At.X, g.arena.Y+c.At.Y, core.Cell{
			Rune: c.Glyph,
			Fg:   c.Foreground,
			Bg:   c.Background,
		})
	}

	g.renderOverlay(dst)
}

// renderHUD draws fuel gauges on the left (and right in duel mode) and the
// score and tick in the middle.
func (g *Game) renderHUD(dst *core.Screen) {
	left := g.fuelGauge(0)
	dst.DrawTextColored(1, 0, left, playerColors[0])

	if g.mode == ModeDuel {
		right := g.fuelGauge(1)
		dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, playerColors[1])
		dst.DrawTextCentered(0, fmt.Sprintf("%d : %d", g.scores[0], g.scores[1]))
		return
	}

	dst.DrawTextCentered(0, fmt.Sprintf("Score: %d", g.totalScore()))
	tick := fmt.Sprintf("T%d", g.tickCount)
	dst.DrawText(dst.Width()-len(tick)-1, 0, tick)
}

func (g *Game) fuelGauge(player int) string {
	fuel := g.Fuel(player)
	filled := fuel * fuelBarWidth / particle.MaxFuel
	if fuel > 0 && filled == 0 {
		filled = 1
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", fuelBarWidth-filled)
	return fmt.Sprintf("P%d %s %3d", player+1, bar, fuel)
}

// renderOverlay draws pause and game over messages over the arena.
func (g *Game) renderOverlay(dst *core.Screen) {
	midY := g.arena.Y + g.arena.H/2

	switch g.state {
	case StatePaused:
		dst.DrawTextCentered(midY, " PAUSED ")
		dst.DrawTextCentered(midY+1, " Press P to resume ")
	case StateGameOver:
		dst.DrawTextCentered(midY-1, " OUT OF FUEL ")
		dst.DrawTextCentered(midY, fmt.Sprintf(" Fuel cells collected: %d ", g.fuelCollected))
		dst.DrawTextCentered(midY+1, " Press R to restart ")
	}
}
