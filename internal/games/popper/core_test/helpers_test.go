package core_test

import (
	"github.com/vovakirdan/tui-popper/internal/games/popper/core"
)

// seqRand replays a fixed list of values; Intn wraps each into range.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

// linePath is a horizontal path from (100,0) to (500,0) with samples every
// 100 units, so every normalized distance is exact.
func linePath() *core.Path {
	return core.NewPath([]core.Vec2{
		core.V(100, 0), core.V(200, 0), core.V(300, 0), core.V(400, 0), core.V(500, 0),
	})
}

// spheres builds a sequence from a colour string like "RRGGB", leader first,
// with the leader at head and exact spacing behind.
func spheres(colors string, head float64) []core.Sphere {
	out := make([]core.Sphere, 0, len(colors))
	for i, ch := range colors {
		c, ok := core.ParseColor(string(ch))
		if !ok {
			panic("bad colour " + string(ch))
		}
		out = append(out, core.Sphere{Color: c, Distance: head - float64(i)*core.DefaultSpacing})
	}
	return out
}

// colorString renders a sequence back to its colour letters.
func colorString(seq []core.Sphere) string {
	b := make([]rune, len(seq))
	for i, s := range seq {
		b[i] = s.Color.Char()
	}
	return string(b)
}
