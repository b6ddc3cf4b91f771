package popper

import (
	"math"

	platformcore "github.com/vovakirdan/tui-popper/internal/core"
	"github.com/vovakirdan/tui-popper/internal/games/popper/core"
)

// Minimum terminal size that still shows the spiral legibly.
const (
	MinScreenW = 44
	MinScreenH = 20
	hudHeight  = 2
)

// viewport projects world coordinates (shooter at the origin, y down) onto
// screen cells. Terminal cells are about twice as tall as wide, so one world
// unit covers scale columns but only scale/2 rows.
type viewport struct {
	field  platformcore.Rect
	cx, cy float64
	scale  float64
}

// newViewport fits the path's bounding box into the play field below the HUD.
func newViewport(screenW, screenH int, path *core.Path) viewport {
	field := platformcore.NewRect(0, hudHeight, screenW, screenH-hudHeight)

	maxX, maxY := 1.0, 1.0
	for i := 0; i < path.Len(); i++ {
		p := path.Sample(i).Pos
		maxX = math.Max(maxX, math.Abs(p.X))
		maxY = math.Max(maxY, math.Abs(p.Y))
	}

	halfW := float64(field.W)/2 - 1
	halfH := float64(field.H)/2 - 1
	scale := math.Min(halfW/maxX, 2*halfH/maxY)

	return viewport{
		field: field,
		cx:    float64(field.X) + float64(field.W)/2,
		cy:    float64(field.Y) + float64(field.H)/2,
		scale: math.Max(scale, 0),
	}
}

// toScreen returns the cell for a world point.
func (v viewport) toScreen(p core.Vec2) (int, int) {
	x := v.cx + p.X*v.scale
	y := v.cy + p.Y*v.scale/2
	return int(math.Floor(x)), int(math.Floor(y))
}

// angleTo returns the world-space angle from the shooter to a screen cell.
func (v viewport) angleTo(x, y int) float64 {
	dx := float64(x) + 0.5 - v.cx
	dy := (float64(y) + 0.5 - v.cy) * 2
	return math.Atan2(dy, dx)
}
