package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-popper/internal/games/popper/core"
)

func TestFindRun(t *testing.T) {
	tests := []struct {
		name     string
		seq      string
		found    bool
		expected core.Run
	}{
		{"empty", "", false, core.Run{}},
		{"two only", "RR", false, core.Run{}},
		{"no run", "RGRGBY", false, core.Run{}},
		{"pairs only", "RRGGBB", false, core.Run{}},
		{"exact three", "RRR", true, core.Run{Start: 0, Len: 3, Color: core.ColorRed}},
		{"maximal run", "GRRRRRB", true, core.Run{Start: 1, Len: 5, Color: core.ColorRed}},
		{"run at tail", "RGBBB", true, core.Run{Start: 2, Len: 3, Color: core.ColorBlue}},
		{"first of two runs", "YYYPPP", true, core.Run{Start: 0, Len: 3, Color: core.ColorYellow}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			run, ok := core.FindRun(spheres(tc.seq, 1000))
			if ok != tc.found {
				t.Fatalf("FindRun(%q) found = %v, expected %v", tc.seq, ok, tc.found)
			}
			if ok && run != tc.expected {
				t.Errorf("FindRun(%q) = %+v, expected %+v", tc.seq, run, tc.expected)
			}
		})
	}
}

func TestCollapseOnceRemovesWholeRun(t *testing.T) {
	seq, run, ok := core.CollapseOnce(spheres("BGGGGR", 1000))
	if !ok {
		t.Fatal("expected a collapse")
	}
	if run.Len != 4 {
		t.Errorf("run length = %d, expected 4", run.Len)
	}
	if got := colorString(seq); got != "BR" {
		t.Errorf("remaining = %q, expected %q", got, "BR")
	}
}

func TestCollapseAllCascade(t *testing.T) {
	seq, runs := core.CollapseAll(spheres("RRGGGRR", 1000))

	if len(seq) != 0 {
		t.Errorf("remaining = %q, expected empty", colorString(seq))
	}
	expected := []core.Run{
		{Start: 2, Len: 3, Color: core.ColorGreen},
		{Start: 0, Len: 4, Color: core.ColorRed},
	}
	if len(runs) != len(expected) {
		t.Fatalf("got %d runs, expected %d", len(runs), len(expected))
	}
	for i := range expected {
		if runs[i] != expected[i] {
			t.Errorf("run %d = %+v, expected %+v", i, runs[i], expected[i])
		}
	}
}

func TestCollapseAllPartialCascade(t *testing.T) {
	seq, runs := core.CollapseAll(spheres("BRRGGGRY", 1000))
	if got := colorString(seq); got != "BY" {
		t.Errorf("remaining = %q, expected %q", got, "BY")
	}
	if len(runs) != 2 {
		t.Errorf("got %d runs, expected 2", len(runs))
	}
}

func TestCollapseAllReachesFixedPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 500; iter++ {
		n := rng.Intn(40)
		seq := make([]core.Sphere, n)
		for i := range seq {
			// Three colours make long runs and cascades common.
			seq[i] = core.Sphere{Color: core.Color(rng.Intn(3)), Distance: float64(n - i)}
		}

		rest, runs := core.CollapseAll(seq)

		if _, ok := core.FindRun(rest); ok {
			t.Fatalf("iteration %d: run left after CollapseAll: %q", iter, colorString(rest))
		}
		removed := 0
		for _, r := range runs {
			if r.Len < core.MinRunLength {
				t.Fatalf("iteration %d: removed run shorter than %d: %+v", iter, core.MinRunLength, r)
			}
			removed += r.Len
		}
		if removed+len(rest) != n {
			t.Fatalf("iteration %d: removed %d + remaining %d != %d", iter, removed, len(rest), n)
		}
	}
}
