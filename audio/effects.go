package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/pixel-spin/constants"
)

// oscillator generates raw audio waves, optionally sweeping exponentially to freqEnd
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose frequency ramps exponentially from freq to freqEnd
func NewSweep(freq, freqEnd float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		freqEnd:  freqEnd,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// frequency returns the instantaneous frequency at the current position
func (o *oscillator) frequency() float64 {
	if o.freqEnd == o.freq || o.duration == 0 || o.freq <= 0 {
		return o.freq
	}
	progress := float64(o.position) / float64(o.duration)
	return o.freq * math.Pow(o.freqEnd/o.freq, progress)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.frequency() / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// EnvelopeShape maps progress in [0, 1] to a gain
type EnvelopeShape func(progress float64) float64

// LinearFade ramps from start to zero
func LinearFade(start float64) EnvelopeShape {
	return func(p float64) float64 {
		return start * (1 - p)
	}
}

// ExponentialFade ramps from start to floor exponentially
func ExponentialFade(start, floor float64) EnvelopeShape {
	return func(p float64) float64 {
		return start * math.Pow(floor/start, p)
	}
}

// envelope applies a gain shape over a fixed duration
type envelope struct {
	streamer     beep.Streamer
	shape        EnvelopeShape
	position     int
	totalSamples int
}

// NewEnvelope shapes s over duration; samples past the duration are dropped
func NewEnvelope(s beep.Streamer, duration time.Duration, shape EnvelopeShape, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		shape:        shape,
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := e.shape(float64(e.position) / float64(e.totalSamples))
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume is handled by making the stream silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateSpinStartSound generates a rising square sweep
func CreateSpinStartSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.SpinStartDuration

	osc := NewSweep(constants.SpinStartFreqStart, constants.SpinStartFreqEnd, d, WaveSquare, rate)
	shaped := NewEnvelope(osc, d, LinearFade(constants.SpinStartGain), rate)
	return newVolume(shaped, cfg.volume(SoundSpinStart))
}

// CreateTickSound generates a short crisp blip
func CreateTickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.TickDuration

	osc := NewOscillator(constants.TickFreq, d, WaveSquare, rate)
	shaped := NewEnvelope(osc, d, ExponentialFade(constants.TickGain, constants.TickFloor), rate)
	return newVolume(shaped, cfg.volume(SoundTick))
}

// CreateWinSound generates a major arpeggio followed by a held top note
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(constants.WinArpeggio)+1)
	for _, freq := range constants.WinArpeggio {
		osc := NewOscillator(freq, constants.WinNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, constants.WinNoteDuration, LinearFade(constants.WinGain), rate))
	}
	final := NewOscillator(constants.WinFinalNote, constants.WinFinalDuration, WaveSquare, rate)
	notes = append(notes, NewEnvelope(final, constants.WinFinalDuration, LinearFade(constants.WinGain), rate))

	return newVolume(beep.Seq(notes...), cfg.volume(SoundWin))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundSpinStart:
		return CreateSpinStartSound(cfg)
	case SoundTick:
		return CreateTickSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	default:
		return nil
	}
}
