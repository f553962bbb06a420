// Package audio is the terminal stand-in for a sound mixer. It keeps track of
// which cues are playing or looping and which music track is on, logs every
// request, and lets the front-end show what would be heard.
package audio

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/go-fish/internal/session"
)

// historySize bounds the recent-cue list shown in the HUD.
const historySize = 8

// CueKind is what was requested.
type CueKind string

const (
	CuePlay  CueKind = "play"
	CueLoop  CueKind = "loop"
	CueStop  CueKind = "stop"
	CueMusic CueKind = "music"
)

// Cue is one realized request.
type Cue struct {
	Kind  CueKind
	Sound session.Sound
	Track session.Track
}

// Options configures a Mixer.
type Options struct {
	Logger *log.Logger
	// Missing sounds are silently ignored, like files that failed to load.
	Missing []session.Sound
}

// Mixer implements session.Audio.
type Mixer struct {
	logger  *log.Logger
	missing map[session.Sound]bool
	looping map[session.Sound]bool
	track   session.Track
	history []Cue
}

var _ session.Audio = (*Mixer)(nil)

// NewMixer creates a mixer with no music playing.
func NewMixer(opts Options) *Mixer {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Mixer{
		logger:  logger,
		missing: make(map[session.Sound]bool),
		looping: make(map[session.Sound]bool),
	}
	for _, s := range opts.Missing {
		m.missing[s] = true
	}
	return m
}

// Play plays a one-shot cue.
func (m *Mixer) Play(s session.Sound) {
	if m.missing[s] {
		return
	}
	m.logger.Debug("play", "sound", s)
	m.record(Cue{Kind: CuePlay, Sound: s})
}

// Loop starts s looping until stopped.
func (m *Mixer) Loop(s session.Sound) {
	if m.missing[s] {
		return
	}
	m.looping[s] = true
	m.logger.Debug("loop", "sound", s)
	m.record(Cue{Kind: CueLoop, Sound: s})
}

// Stop stops s. Stopping a sound that is not playing is a no-op.
func (m *Mixer) Stop(s session.Sound) {
	if m.missing[s] || !m.looping[s] {
		return
	}
	delete(m.looping, s)
	m.logger.Debug("stop", "sound", s)
	m.record(Cue{Kind: CueStop, Sound: s})
}

// IsLooping reports whether s is looping.
func (m *Mixer) IsLooping(s session.Sound) bool {
	return m.looping[s]
}

// SetTrack switches the background music. session.TrackNone stops it.
func (m *Mixer) SetTrack(t session.Track) {
	m.track = t
	if t == session.TrackNone {
		m.logger.Debug("music stopped")
	} else {
		m.logger.Debug("music", "track", t)
	}
	m.record(Cue{Kind: CueMusic, Track: t})
}

// Track returns the music track playing.
func (m *Mixer) Track() session.Track {
	return m.track
}

// Looping returns the looping sounds in name order.
func (m *Mixer) Looping() []session.Sound {
	out := make([]session.Sound, 0, len(m.looping))
	for s := range m.looping {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Recent returns up to the last historySize cues, oldest first.
func (m *Mixer) Recent() []Cue {
	return slices.Clone(m.history)
}

func (m *Mixer) record(c Cue) {
	m.history = append(m.history, c)
	if len(m.history) > historySize {
		m.history = m.history[len(m.history)-historySize:]
	}
}
