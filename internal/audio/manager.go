package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-popper/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Manager plays cue sounds through a single mixer on the speaker.
// All methods are safe to call before Initialize or after Cleanup; they do
// nothing then.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewManager creates a manager at the given master volume (0.0 to 1.0).
func NewManager(volume float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer.
// Calling it again after a successful start is a no-op.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play starts the sound for a cue without waiting for it to finish.
func (m *Manager) Play(cue core.Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}

	s := SoundFor(cue, sampleRate, m.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new value.
// Muting also cuts sounds already playing.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = !m.muted
	if m.muted && m.initialized {
		speaker.Lock()
		m.mixer.Clear()
		speaker.Unlock()
	}
	return m.muted
}

// Muted reports whether sounds are suppressed.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Active reports whether the speaker was opened.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// Cleanup stops all sounds and releases the audio device.
// Initialize may be called again afterwards.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}
