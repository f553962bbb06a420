package assets

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFrameDuration applies to frames that set no duration of their own.
const DefaultFrameDuration = 100 * time.Millisecond

// ErrNoFrames is returned for a cutscene file without frames.
var ErrNoFrames = errors.New("cutscene has no frames")

// CutsceneFrame is one frame of the win cutscene.
type CutsceneFrame struct {
	Lines    []string
	Duration time.Duration
}

// Cutscene is a timed sequence of ASCII frames. A nil *Cutscene is valid and
// unavailable.
type Cutscene struct {
	Name   string
	frames []CutsceneFrame
}

type yamlCutscene struct {
	Name              string         `yaml:"name"`
	DefaultDurationMS int            `yaml:"default_duration_ms"`
	Frames            []yamlCutFrame `yaml:"frames"`
}

type yamlCutFrame struct {
	Art        string `yaml:"art"`
	DurationMS int    `yaml:"duration_ms"`
	Repeat     int    `yaml:"repeat"`
}

// ParseCutscene parses a YAML cutscene. Every duration is multiplied by speed
// and truncated to whole milliseconds; a frame with repeat N expands to N
// frames.
func ParseCutscene(data []byte, speed float64) (*Cutscene, error) {
	var yc yamlCutscene
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if speed <= 0 {
		speed = 1
	}

	fallback := DefaultFrameDuration
	if yc.DefaultDurationMS > 0 {
		fallback = time.Duration(yc.DefaultDurationMS) * time.Millisecond
	}

	c := &Cutscene{Name: yc.Name}
	for _, f := range yc.Frames {
		ms := float64(fallback.Milliseconds())
		if f.DurationMS > 0 {
			ms = float64(f.DurationMS)
		}
		frame := CutsceneFrame{
			Lines:    splitArt(f.Art),
			Duration: time.Duration(int(ms*speed)) * time.Millisecond,
		}
		for range max(f.Repeat, 1) {
			c.frames = append(c.frames, frame)
		}
	}

	if len(c.frames) == 0 {
		return nil, ErrNoFrames
	}
	return c, nil
}

// Available reports whether there is anything to play.
func (c *Cutscene) Available() bool {
	return c != nil && len(c.frames) > 0
}

// FrameDurations returns how long each frame is shown.
func (c *Cutscene) FrameDurations() []time.Duration {
	if c == nil {
		return nil
	}
	out := make([]time.Duration, len(c.frames))
	for i, f := range c.frames {
		out[i] = f.Duration
	}
	return out
}

// Len returns the number of frames.
func (c *Cutscene) Len() int {
	if c == nil {
		return 0
	}
	return len(c.frames)
}

// Frame returns frame i, wrapping around past the end.
func (c *Cutscene) Frame(i int) CutsceneFrame {
	if c.Len() == 0 {
		return CutsceneFrame{}
	}
	i %= len(c.frames)
	if i < 0 {
		i += len(c.frames)
	}
	return c.frames[i]
}
