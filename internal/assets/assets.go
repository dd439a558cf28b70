// Package assets resolves string ids to glyph sprites and synthesised sounds.
// The library is loaded once at startup and read-only afterwards.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/space-warior/internal/core"
)

//go:embed manifest.yaml
var defaultManifest []byte

// ManifestFile is the file name looked up in an override directory.
const ManifestFile = "manifest.yaml"

// ErrMissingAsset is returned when a required id is not in the library.
var ErrMissingAsset = errors.New("missing asset")

// Waveforms understood by audio backends.
const (
	WaveSine   = "sine"
	WaveSquare = "square"
	WaveNoise  = "noise"
)

// Frame is one animation frame: rows of runes.
type Frame []string

// Size returns the frame extent in runes.
func (f Frame) Size() (w, h int) {
	for _, row := range f {
		w = max(w, len([]rune(row)))
	}
	return w, len(f)
}

// At returns the rune at (x, y), or a space outside the frame.
func (f Frame) At(x, y int) rune {
	if y < 0 || y >= len(f) {
		return ' '
	}
	row := []rune(f[y])
	if x < 0 || x >= len(row) {
		return ' '
	}
	return row[x]
}

// Animation is a named sequence of frames played at a fixed rate.
type Animation struct {
	Name   string  `yaml:"name"`
	FPS    float64 `yaml:"fps"`
	Frames []Frame `yaml:"frames"`
}

// FrameAt returns the frame shown after elapsed seconds, looping.
func (a Animation) FrameAt(elapsed float64) Frame {
	if len(a.Frames) == 0 {
		return nil
	}
	if a.FPS <= 0 || elapsed <= 0 {
		return a.Frames[0]
	}
	i := int(math.Floor(elapsed*a.FPS)) % len(a.Frames)
	return a.Frames[i]
}

// Sprite is a coloured set of animations. The first animation is the default.
type Sprite struct {
	ID         string
	Color      core.Color
	Animations []Animation
}

// Animation returns the named animation, falling back to the first one.
func (s Sprite) Animation(name string) Animation {
	for _, a := range s.Animations {
		if a.Name == name {
			return a
		}
	}
	if len(s.Animations) == 0 {
		return Animation{}
	}
	return s.Animations[0]
}

// Sound describes a synthesised sound as a sequence of tones.
// A note of 0 is a rest.
type Sound struct {
	ID         string    `yaml:"-"`
	Wave       string    `yaml:"wave"`
	Notes      []float64 `yaml:"notes"`
	NoteLength float64   `yaml:"note_length"`
	Volume     float64   `yaml:"volume"`
	Loop       bool      `yaml:"loop"`
}

// Duration returns the length of one pass through the notes in seconds.
func (s Sound) Duration() float64 {
	return float64(len(s.Notes)) * s.NoteLength
}

type manifest struct {
	Sprites map[string]struct {
		Color      string      `yaml:"color"`
		Animations []Animation `yaml:"animations"`
	} `yaml:"sprites"`
	Sounds map[string]Sound `yaml:"sounds"`
}

// Library holds every loaded sprite and sound.
type Library struct {
	sprites map[string]Sprite
	sounds  map[string]Sound
}

// Load reads the manifest from dir, or the embedded manifest when dir is empty.
func Load(dir string) (*Library, error) {
	data := defaultManifest
	if dir != "" {
		path := filepath.Join(dir, ManifestFile)
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("assets: read %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse builds a library from manifest YAML.
func Parse(data []byte) (*Library, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: parse manifest: %w", err)
	}

	lib := &Library{
		sprites: make(map[string]Sprite, len(m.Sprites)),
		sounds:  make(map[string]Sound, len(m.Sounds)),
	}
	for id, raw := range m.Sprites {
		color := core.ColorDefault
		if raw.Color != "" {
			c, ok := core.ParseColor(raw.Color)
			if !ok {
				return nil, fmt.Errorf("assets: sprite %q: unknown color %q", id, raw.Color)
			}
			color = c
		}
		if len(raw.Animations) == 0 {
			return nil, fmt.Errorf("assets: sprite %q has no animations", id)
		}
		for _, a := range raw.Animations {
			if len(a.Frames) == 0 {
				return nil, fmt.Errorf("assets: sprite %q animation %q has no frames", id, a.Name)
			}
		}
		lib.sprites[id] = Sprite{ID: id, Color: color, Animations: raw.Animations}
	}
	for id, snd := range m.Sounds {
		switch snd.Wave {
		case WaveSine, WaveSquare, WaveNoise:
		default:
			return nil, fmt.Errorf("assets: sound %q: unknown wave %q", id, snd.Wave)
		}
		if len(snd.Notes) == 0 || snd.NoteLength <= 0 {
			return nil, fmt.Errorf("assets: sound %q has no playable notes", id)
		}
		snd.ID = id
		lib.sounds[id] = snd
	}
	return lib, nil
}

// Sprite returns the sprite with id.
func (l *Library) Sprite(id string) (Sprite, bool) {
	s, ok := l.sprites[id]
	return s, ok
}

// Sound returns the sound with id.
func (l *Library) Sound(id string) (Sound, bool) {
	s, ok := l.sounds[id]
	return s, ok
}

// SoundIDs returns all sound ids in sorted order.
func (l *Library) SoundIDs() []string {
	ids := make([]string, 0, len(l.sounds))
	for id := range l.sounds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Require checks that every listed sprite and sound exists.
func (l *Library) Require(sprites, sounds []string) error {
	var missing []string
	for _, id := range sprites {
		if _, ok := l.sprites[id]; !ok {
			missing = append(missing, "sprite "+id)
		}
	}
	for _, id := range sounds {
		if _, ok := l.sounds[id]; !ok {
			missing = append(missing, "sound "+id)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("assets: %s: %w", strings.Join(missing, ", "), ErrMissingAsset)
	}
	return nil
}
