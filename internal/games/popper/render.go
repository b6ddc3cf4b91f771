package popper

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-popper/internal/core"
	"github.com/vovakirdan/tui-popper/internal/games/popper/core"
)

// Glyphs
const (
	glyphPath       = '·'
	glyphSphere     = '●'
	glyphProjectile = 'o'
	glyphShooter    = '@'
	glyphPit        = 'X'
	glyphGuide      = '.'
)

// Aim guide dots, in world units from the shooter.
const (
	guideStart = 40.0
	guideEnd   = 200.0
	guideStep  = 20.0
)

// sphereColor maps an engine colour to a terminal colour.
func sphereColor(c core.Color) platformcore.Color {
	switch c {
	case core.ColorRed:
		return platformcore.ColorBrightRed
	case core.ColorGreen:
		return platformcore.ColorBrightGreen
	case core.ColorBlue:
		return platformcore.ColorBrightBlue
	case core.ColorYellow:
		return platformcore.ColorBrightYellow
	case core.ColorPurple:
		return platformcore.ColorBrightMagenta
	default:
		return platformcore.ColorWhite
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", MinScreenW, MinScreenH, g.screenW, g.screenH))
		return
	}

	g.renderPath(dst)
	g.renderGuide(dst)
	g.renderChain(dst)
	g.renderProjectiles(dst)
	g.renderShooter(dst)

	switch {
	case g.session.Result() == core.ResultWin:
		g.renderOverlay(dst, "Chain cleared!", fmt.Sprintf("Score: %d  Press R to restart", g.score))
	case g.session.Result() == core.ResultLose:
		g.renderOverlay(dst, "The chain reached the pit", fmt.Sprintf("Score: %d  Press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar with the next colour preview.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" Popper | Score: %d  Chain: %d  Popped: %d  Next: ",
		g.score, g.session.Chain().Len(), g.session.Removed())
	dst.DrawText(0, 0, hud)

	x := utf8.RuneCountInString(hud)
	queue := g.session.Shooter().Queue()
	for _, c := range queue[1:] {
		dst.SetCell(x, 0, glyphSphere, sphereColor(c))
		x += 2
	}
	if g.difficulty != "" {
		dst.DrawTextColor(x+1, 0, "["+g.difficulty+"]", platformcore.ColorGray)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorDarkGray)
}

// renderPath draws every path sample and the pit.
func (g *Game) renderPath(dst *platformcore.Screen) {
	path := g.session.Path()
	for i := 0; i < path.Len(); i++ {
		x, y := g.view.toScreen(path.Sample(i).Pos)
		if y >= hudHeight {
			dst.SetCell(x, y, glyphPath, platformcore.ColorDarkGray)
		}
	}
	x, y := g.view.toScreen(path.End())
	dst.SetCell(x, y, glyphPit, platformcore.ColorRed)
}

// renderGuide draws a dotted line along the aim angle.
func (g *Game) renderGuide(dst *platformcore.Screen) {
	for r := guideStart; r <= guideEnd; r += guideStep {
		x, y := g.view.toScreen(core.FromAngle(g.aim, r))
		if y >= hudHeight {
			dst.SetCell(x, y, glyphGuide, platformcore.ColorGray)
		}
	}
}

// renderChain draws spheres that have entered the path.
// Spheres still queued behind the start (negative distance) are hidden.
func (g *Game) renderChain(dst *platformcore.Screen) {
	path := g.session.Path()
	g.session.Chain().Each(func(_ int, s core.Sphere) {
		if s.Distance < 0 {
			return
		}
		x, y := g.view.toScreen(path.PointAtDistance(s.Distance))
		if y >= hudHeight {
			dst.SetCell(x, y, glyphSphere, sphereColor(s.Color))
		}
	})
}

// renderProjectiles draws projectiles in flight.
func (g *Game) renderProjectiles(dst *platformcore.Screen) {
	for _, p := range g.session.Shooter().Projectiles() {
		x, y := g.view.toScreen(p.Pos)
		if y >= hudHeight {
			dst.SetCell(x, y, glyphProjectile, sphereColor(p.Color))
		}
	}
}

// renderShooter draws the shooter in its loaded colour.
func (g *Game) renderShooter(dst *platformcore.Screen) {
	x, y := g.view.toScreen(core.Vec2{})
	dst.SetCell(x, y, glyphShooter, sphereColor(g.session.Shooter().Loaded()))
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	maxLen := platformcore.Max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	box := platformcore.CenteredRect(dst.Width(), dst.Height(), maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, platformcore.ColorWhite)
	dst.DrawTextCenteredColor(box.Y+1, line1, platformcore.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}
