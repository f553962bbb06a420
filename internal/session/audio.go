package session

import "time"

// Sound identifies a one-shot or looping sound cue.
type Sound string

const (
	SoundClick      Sound = "click"
	SoundCasting    Sound = "casting"
	SoundBite       Sound = "bite"
	SoundReeling    Sound = "reeling"
	SoundSuccess    Sound = "success"
	SoundLose       Sound = "lose"
	SoundCutscene1  Sound = "cutscene_1"
	SoundCutscene30 Sound = "cutscene_30"
	SoundCutscene60 Sound = "cutscene_60"
)

// Sounds lists every cue the controller can request.
var Sounds = []Sound{
	SoundClick, SoundCasting, SoundBite, SoundReeling, SoundSuccess,
	SoundLose, SoundCutscene1, SoundCutscene30, SoundCutscene60,
}

// Track identifies a background music track. TrackNone means silence.
type Track string

const (
	TrackNone    Track = ""
	TrackMain    Track = "main"
	TrackTension Track = "tension"
)

// Audio realizes sound and music requests. Implementations must treat
// unknown or missing sounds as no-ops.
type Audio interface {
	Play(s Sound)
	Loop(s Sound)
	Stop(s Sound)
	IsLooping(s Sound) bool
	SetTrack(t Track)
}

// Cutscene describes the win cutscene, if there is one.
type Cutscene interface {
	Available() bool
	FrameDurations() []time.Duration
}

type nopAudio struct{}

func (nopAudio) Play(Sound)           {}
func (nopAudio) Loop(Sound)           {}
func (nopAudio) Stop(Sound)           {}
func (nopAudio) IsLooping(Sound) bool { return false }
func (nopAudio) SetTrack(Track)       {}

type noCutscene struct{}

func (noCutscene) Available() bool                 { return false }
func (noCutscene) FrameDurations() []time.Duration { return nil }
