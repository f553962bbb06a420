// Package assets provides the ASCII art the terminal front-end draws: fish
// sprites keyed by catalogue asset key, the screen indicators and the win
// cutscene. Built-in art is embedded; a cutscene file can be supplied from
// disk.
package assets

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/go-fish/internal/config"
	"github.com/vovakirdan/go-fish/internal/core"
)

//go:embed defaults/sprites.yaml
var defaultSpritesYAML []byte

//go:embed defaults/cutscene.yaml
var defaultCutsceneYAML []byte

// Screen art keys.
const (
	KeyWaiting   = "waiting_img"
	KeyBite      = "bite_img"
	KeyMenuTitle = "menu_title"
)

// Sprite is a block of ASCII art.
type Sprite struct {
	Key     string
	Lines   []string
	Color   core.Color
	Missing bool // Placeholder drawn for an unknown key
}

// Width returns the widest line in runes.
func (s Sprite) Width() int {
	w := 0
	for _, l := range s.Lines {
		w = max(w, len([]rune(l)))
	}
	return w
}

// Height returns the number of lines.
func (s Sprite) Height() int {
	return len(s.Lines)
}

// yamlSprites is the on-disk sprite sheet.
type yamlSprites struct {
	Sprites map[string]yamlSprite `yaml:"sprites"`
}

type yamlSprite struct {
	Color string `yaml:"color"`
	Art   string `yaml:"art"`
}

// ParseSprites parses a YAML sprite sheet. Unknown colors fall back to the
// default color.
func ParseSprites(data []byte) (map[string]Sprite, error) {
	var ys yamlSprites
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	out := make(map[string]Sprite, len(ys.Sprites))
	for key, s := range ys.Sprites {
		color, _ := core.ParseColor(s.Color)
		out[key] = Sprite{
			Key:   key,
			Lines: splitArt(s.Art),
			Color: color,
		}
	}
	return out, nil
}

func splitArt(art string) []string {
	art = strings.TrimRight(art, "\n")
	if art == "" {
		return nil
	}
	return strings.Split(art, "\n")
}

// Library holds every loaded sprite and the optional cutscene.
type Library struct {
	sprites  map[string]Sprite
	cutscene *Cutscene
}

// Load builds the library from the embedded art. The cutscene comes from
// cfg.Path when set, otherwise from the embedded one; it is left out
// entirely when disabled.
func Load(cfg config.CutsceneConfig) (*Library, error) {
	sprites, err := ParseSprites(defaultSpritesYAML)
	if err != nil {
		return nil, fmt.Errorf("assets: embedded sprites: %w", err)
	}

	lib := &Library{sprites: sprites}
	if !cfg.Enabled {
		return lib, nil
	}

	data := defaultCutsceneYAML
	source := "embedded cutscene"
	if cfg.Path != "" {
		data, err = os.ReadFile(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("assets: reading cutscene %s: %w", cfg.Path, err)
		}
		source = cfg.Path
	}

	lib.cutscene, err = ParseCutscene(data, cfg.SpeedMultiplier)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", source, err)
	}
	return lib, nil
}

// Sprite returns the sprite for key, or a "Missing: <key>" placeholder.
func (l *Library) Sprite(key string) Sprite {
	if s, ok := l.sprites[key]; ok {
		return s
	}
	return placeholder(key)
}

// Has reports whether a sprite exists for key.
func (l *Library) Has(key string) bool {
	_, ok := l.sprites[key]
	return ok
}

// Missing returns the keys that have no sprite, sorted.
func (l *Library) Missing(keys []string) []string {
	var out []string
	for _, k := range keys {
		if !l.Has(k) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Cutscene returns the win cutscene. It may be nil; a nil cutscene reports
// itself unavailable.
func (l *Library) Cutscene() *Cutscene {
	return l.cutscene
}

func placeholder(key string) Sprite {
	text := "Missing: " + key
	border := "+" + strings.Repeat("-", len(text)+2) + "+"
	return Sprite{
		Key: key,
		Lines: []string{
			border,
			"| " + text + " |",
			border,
		},
		Color:   core.ColorBlue,
		Missing: true,
	}
}
