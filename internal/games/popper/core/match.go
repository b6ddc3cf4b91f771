package core

// MinRunLength is the shortest run of same-coloured neighbours that collapses.
const MinRunLength = 3

// Run describes a maximal stretch of adjacent same-coloured spheres.
type Run struct {
	Start int   // Index of the first sphere in the run
	Len   int   // Number of spheres in the run
	Color Color // Shared colour
}

// FindRun scans in index order for the first position where at least
// MinRunLength consecutive spheres share a colour and returns the maximal run
// starting there. A run that ends at the tail is still eligible.
func FindRun(seq []Sphere) (Run, bool) {
	if len(seq) < MinRunLength {
		return Run{}, false
	}

	for i := 0; i+MinRunLength <= len(seq); i++ {
		c := seq[i].Color
		if seq[i+1].Color != c || seq[i+2].Color != c {
			continue
		}
		j := i + MinRunLength
		for j < len(seq) && seq[j].Color == c {
			j++
		}
		return Run{Start: i, Len: j - i, Color: c}, true
	}
	return Run{}, false
}

// CollapseOnce removes the first qualifying run from seq.
// The whole maximal run goes (3, 4, 5, ...), not just three spheres.
// Only one run is removed per call; callers loop because a removal can make
// two previously separate same-coloured runs adjacent.
// The returned slice shares seq's backing array.
func CollapseOnce(seq []Sphere) ([]Sphere, Run, bool) {
	run, ok := FindRun(seq)
	if !ok {
		return seq, Run{}, false
	}
	seq = append(seq[:run.Start], seq[run.Start+run.Len:]...)
	return seq, run, true
}

// CollapseAll calls CollapseOnce until nothing qualifies and returns the
// remaining sequence with every removed run in removal order.
// The loop terminates because each successful collapse shrinks the sequence.
func CollapseAll(seq []Sphere) ([]Sphere, []Run) {
	var runs []Run
	for {
		var run Run
		var removed bool
		seq, run, removed = CollapseOnce(seq)
		if !removed {
			return seq, runs
		}
		runs = append(runs, run)
	}
}
