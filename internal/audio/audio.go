package audio

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Manager handles audio playback. The game only needs one-shot feedback
// sounds; a missing sound file disables playback instead of failing.
type Manager struct {
	sounds map[string]rl.Sound
	muted  bool
}

// Init initializes the audio device and returns an empty manager.
func Init() *Manager {
	rl.InitAudioDevice()
	return &Manager{sounds: make(map[string]rl.Sound)}
}

// Load registers a named sound from a file. Absent files are skipped.
func (m *Manager) Load(name, path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	m.sounds[name] = rl.LoadSound(path)
}

// Play fires a named sound if it was loaded and audio is not muted.
func (m *Manager) Play(name string) {
	if m.muted {
		return
	}
	if sound, ok := m.sounds[name]; ok {
		rl.PlaySound(sound)
	}
}

// SetMuted toggles all playback.
func (m *Manager) SetMuted(muted bool) { m.muted = muted }

// Close unloads every sound and shuts the audio device down.
func (m *Manager) Close() {
	for _, sound := range m.sounds {
		rl.UnloadSound(sound)
	}
	rl.CloseAudioDevice()
}
