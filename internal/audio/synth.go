package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/space-warior/internal/assets"
)

// SampleRate is the output rate of every synthesised sound.
const SampleRate = beep.SampleRate(44100)

// Render synthesises one pass of snd into a buffer that can be replayed.
func Render(snd assets.Sound, sr beep.SampleRate, seed int64) (*beep.Buffer, error) {
	n := sr.N(time.Duration(snd.NoteLength * float64(time.Second)))
	if n <= 0 {
		return nil, fmt.Errorf("audio: sound %q: note too short", snd.ID)
	}
	rng := rand.New(rand.NewSource(seed))

	parts := make([]beep.Streamer, 0, len(snd.Notes))
	for _, freq := range snd.Notes {
		s, err := tone(snd.Wave, freq, sr, rng)
		if err != nil {
			return nil, fmt.Errorf("audio: sound %q: %w", snd.ID, err)
		}
		parts = append(parts, beep.Take(n, s))
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(newVolume(beep.Seq(parts...), snd.Volume))
	return buf, nil
}

// tone returns an endless streamer for one note. A frequency of 0 is a rest.
func tone(wave string, freq float64, sr beep.SampleRate, rng *rand.Rand) (beep.Streamer, error) {
	if freq <= 0 {
		return beep.Silence(-1), nil
	}
	switch wave {
	case assets.WaveSine:
		return generators.SineTone(sr, freq)
	case assets.WaveSquare:
		return generators.SquareTone(sr, freq)
	case assets.WaveNoise:
		return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
			for i := range samples {
				v := rng.Float64()*2 - 1
				samples[i][0] = v
				samples[i][1] = v
			}
			return len(samples), true
		}), nil
	default:
		return nil, fmt.Errorf("unknown wave %q", wave)
	}
}

// newVolume maps a linear gain to beep's logarithmic volume.
// math.Log2(0) is -Inf, so zero gain is rendered silent.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, vol)
	return v
}

func setGain(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(vol)
	v.Silent = false
}
