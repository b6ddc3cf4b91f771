package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-popper/internal/core"
)

// Effect lengths.
const (
	shootDuration   = 90 * time.Millisecond
	hitDuration     = 60 * time.Millisecond
	popDuration     = 120 * time.Millisecond
	noteDuration    = 110 * time.Millisecond
	loseNoteDuration = 220 * time.Millisecond
)

// CreateShootSound generates a short rising chirp.
func CreateShootSound(rate beep.SampleRate) beep.Streamer {
	return tone(440, 880, shootDuration, WaveTriangle, rate)
}

// CreateHitSound generates a soft click for a sphere joining the chain.
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(220, 180, hitDuration, WaveSquare, rate), 0.5)
}

// CreatePopSound generates a bright pop layered over a noise burst.
func CreatePopSound(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		newVolume(tone(1320, 660, popDuration, WaveSine, rate), 0.7),
		newVolume(tone(0, 0, popDuration/2, WaveNoise, rate), 0.3),
	)
}

// CreateWinSound generates a rising major arpeggio (C5 E5 G5 C6).
func CreateWinSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(523.25, 523.25, noteDuration, WaveSquare, rate),
		tone(659.25, 659.25, noteDuration, WaveSquare, rate),
		tone(783.99, 783.99, noteDuration, WaveSquare, rate),
		tone(1046.50, 1046.50, noteDuration*2, WaveSquare, rate),
	)
}

// CreateLoseSound generates a falling three-note phrase.
func CreateLoseSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(392.00, 370.00, loseNoteDuration, WaveTriangle, rate),
		tone(329.63, 311.13, loseNoteDuration, WaveTriangle, rate),
		tone(261.63, 196.00, loseNoteDuration*2, WaveTriangle, rate),
	)
}

// SoundFor returns the effect for a cue at the given volume, or nil for an
// unknown cue.
func SoundFor(cue core.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case core.CueShoot:
		s = CreateShootSound(rate)
	case core.CueHit:
		s = CreateHitSound(rate)
	case core.CuePop:
		s = CreatePopSound(rate)
	case core.CueWin:
		s = CreateWinSound(rate)
	case core.CueLose:
		s = CreateLoseSound(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}
