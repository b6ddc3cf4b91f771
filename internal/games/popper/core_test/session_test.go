package core_test

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-popper/internal/games/popper/core"
)

func smallSessionConfig(count int, head float64) core.SessionConfig {
	cfg := core.DefaultSessionConfig()
	cfg.StartCount = count
	cfg.HeadDistance = head
	cfg.StrictInvariants = true
	return cfg
}

func kinds(events []core.Event) []core.EventKind {
	out := make([]core.EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestNewSession(t *testing.T) {
	s := core.NewSession(core.DefaultSessionConfig(), rand.New(rand.NewSource(1)))

	if s.Chain().Len() != 30 {
		t.Errorf("chain length = %d, expected 30", s.Chain().Len())
	}
	lead, _ := s.Chain().Leader()
	if lead.Distance != 800 {
		t.Errorf("leader distance = %f, expected 800", lead.Distance)
	}
	if s.Result() != core.ResultNone || s.Over() {
		t.Errorf("new session result = %v", s.Result())
	}
	if len(s.Shooter().Queue()) != 2 {
		t.Errorf("queue length = %d, expected 2", len(s.Shooter().Queue()))
	}
}

func TestSessionWinOnCollapse(t *testing.T) {
	s := core.NewSessionOnPath(smallSessionConfig(3, 200), &seqRand{}, linePath())

	events := s.Tick(0.5)

	expected := []core.EventKind{core.EventPop, core.EventWin}
	if !reflect.DeepEqual(kinds(events), expected) {
		t.Fatalf("events = %v, expected %v", kinds(events), expected)
	}
	if events[0].Count != 3 || events[0].Color != core.ColorRed {
		t.Errorf("pop = %+v, expected three red", events[0])
	}
	if s.Result() != core.ResultWin {
		t.Errorf("Result() = %v, expected win", s.Result())
	}
	if s.Removed() != 3 {
		t.Errorf("Removed() = %d, expected 3", s.Removed())
	}
}

func TestSessionLoseAtPit(t *testing.T) {
	s := core.NewSessionOnPath(smallSessionConfig(2, 398), &seqRand{vals: []int{0, 1}}, linePath())

	events := s.Tick(0.5)

	if !reflect.DeepEqual(kinds(events), []core.EventKind{core.EventLose}) {
		t.Fatalf("events = %v, expected [lose]", kinds(events))
	}
	if s.Result() != core.ResultLose {
		t.Errorf("Result() = %v, expected lose", s.Result())
	}
	if s.Chain().IsEmpty() {
		t.Error("lost chain is empty")
	}
}

func TestSessionOverShortCircuits(t *testing.T) {
	s := core.NewSessionOnPath(smallSessionConfig(2, 398), &seqRand{vals: []int{0, 1}}, linePath())
	s.Tick(0.5)
	if !s.Over() {
		t.Fatal("expected the round to be over")
	}

	before := s.Chain().Spheres()
	elapsed := s.Elapsed()

	if events := s.Tick(0.5); events != nil {
		t.Errorf("Tick after game over = %v, expected nil", events)
	}
	if events := s.Fire(0); events != nil {
		t.Errorf("Fire after game over = %v, expected nil", events)
	}
	if !reflect.DeepEqual(before, s.Chain().Spheres()) {
		t.Error("chain changed after game over")
	}
	if s.Elapsed() != elapsed {
		t.Errorf("Elapsed() moved from %f to %f", elapsed, s.Elapsed())
	}
	if len(s.Shooter().Projectiles()) != 0 {
		t.Error("Fire after game over launched a projectile")
	}
}

func TestSessionReset(t *testing.T) {
	s := core.NewSessionOnPath(smallSessionConfig(2, 398), &seqRand{vals: []int{0, 1}}, linePath())
	s.Tick(0.5)

	s.Reset()

	if s.Over() {
		t.Errorf("Result() after Reset = %v, expected playing", s.Result())
	}
	if s.Elapsed() != 0 || s.Removed() != 0 {
		t.Errorf("counters after Reset = %f, %d", s.Elapsed(), s.Removed())
	}
	lead, ok := s.Chain().Leader()
	if !ok || lead.Distance != 398 {
		t.Errorf("leader after Reset = %+v, expected distance 398", lead)
	}
}

func TestSessionFireEmitsShoot(t *testing.T) {
	s := core.NewSessionOnPath(smallSessionConfig(2, 100), &seqRand{vals: []int{0, 1, 2}}, linePath())

	loaded := s.Shooter().Loaded()
	events := s.Fire(math.Pi / 4)

	if len(events) != 1 || events[0].Kind != core.EventShoot || events[0].Color != loaded {
		t.Errorf("events = %+v, expected shoot of %v", events, loaded)
	}
	if math.Abs(s.Shooter().Aim()-math.Pi/4) > 1e-12 {
		t.Errorf("Aim() = %f, expected %f", s.Shooter().Aim(), math.Pi/4)
	}
	if len(s.Shooter().Projectiles()) != 1 {
		t.Errorf("Projectiles() = %d, expected 1", len(s.Shooter().Projectiles()))
	}
}

func TestSessionNeverWinsAndLoses(t *testing.T) {
	s := core.NewSessionOnPath(smallSessionConfig(3, 398), &seqRand{}, linePath())

	// The all-red chain collapses on the same tick the leader would reach the
	// pit; an empty chain cannot have reached it.
	events := s.Tick(0.5)
	if s.Result() != core.ResultWin {
		t.Errorf("Result() = %v, expected win", s.Result())
	}
	for _, e := range events {
		if e.Kind == core.EventLose {
			t.Error("lose emitted alongside win")
		}
	}
}

// play drives a session with a fixed firing pattern and returns a trace of
// every event and chain snapshot.
func play(seed int64, ticks int) ([][]core.Event, [][]core.Sphere) {
	cfg := core.DefaultSessionConfig()
	cfg.StrictInvariants = true
	s := core.NewSession(cfg, rand.New(rand.NewSource(seed)))
	aim := rand.New(rand.NewSource(seed + 1))

	var events [][]core.Event
	var chains [][]core.Sphere
	for i := 0; i < ticks && !s.Over(); i++ {
		var step []core.Event
		if i%12 == 0 {
			step = append(step, s.Fire(aim.Float64()*2*math.Pi-math.Pi)...)
		}
		step = append(step, s.Tick(1.0/60)...)
		events = append(events, step)
		chains = append(chains, s.Chain().Spheres())
	}
	return events, chains
}

func TestSessionDeterministic(t *testing.T) {
	e1, c1 := play(42, 600)
	e2, c2 := play(42, 600)

	if !reflect.DeepEqual(e1, e2) {
		t.Error("event traces differ for the same seed")
	}
	if !reflect.DeepEqual(c1, c2) {
		t.Error("chain traces differ for the same seed")
	}
}

func TestSessionInvariantsUnderPlay(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cfg := core.DefaultSessionConfig()
		cfg.StrictInvariants = true
		s := core.NewSession(cfg, rand.New(rand.NewSource(seed)))
		aim := rand.New(rand.NewSource(seed * 31))

		hits := 0
		for i := 0; i < 3000 && !s.Over(); i++ {
			if i%10 == 0 {
				s.Fire(aim.Float64()*2*math.Pi - math.Pi)
			}
			for _, e := range s.Tick(1.0 / 60) {
				if e.Kind == core.EventHit {
					hits++
				}
			}

			if err := s.Chain().Verify(false); err != nil {
				t.Fatalf("seed %d tick %d: %v", seed, i, err)
			}
			if s.Chain().IsEmpty() && s.Chain().ReachedEnd() {
				t.Fatalf("seed %d tick %d: chain both empty and at the pit", seed, i)
			}
			if s.Over() != (s.Chain().IsEmpty() || s.Chain().ReachedEnd()) {
				t.Fatalf("seed %d tick %d: result %v does not match chain state", seed, i, s.Result())
			}
		}
		if hits == 0 {
			t.Errorf("seed %d: no projectile ever hit the chain", seed)
		}
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		r        core.Result
		expected string
	}{
		{core.ResultNone, "playing"},
		{core.ResultWin, "win"},
		{core.ResultLose, "lose"},
		{core.Result(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.r.String(); got != tc.expected {
			t.Errorf("Result(%d).String() = %q, expected %q", tc.r, got, tc.expected)
		}
	}
}
