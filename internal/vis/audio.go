package vis

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundPinch SoundKind = iota
	SoundHandSwell
)

// AudioSystem manages the ambient drone and procedural cue sounds.
type AudioSystem struct {
	ctx         *oto.Context
	ready       chan struct{}
	dronePlayer oto.Player
	drone       *droneReader
}

var globalAudio *AudioSystem

var sfxVolume float64 = 0.5
var droneVolume float64 = 0.16

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated cue.
func PlaySound(kind SoundKind) {
	playSamples(generateSound(kind))
}

// PlayShapeChime plays a short bell whose pitch identifies the shape.
func PlayShapeChime(s Shape) {
	base := 440.0 * math.Pow(2, float64(s)/float64(ShapeCount))
	playSamples(genShapeChime(base))
}

func playSamples(samples []byte) {
	if globalAudio == nil || len(samples) == 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// StartDrone begins the ambient pad. Safe to call before the context is
// ready; it simply does nothing until audio is up.
func StartDrone() {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if globalAudio.dronePlayer != nil {
		return
	}
	reader := newDroneReader()
	player := globalAudio.ctx.NewPlayer(reader)
	player.SetVolume(droneVolume)
	globalAudio.drone = reader
	globalAudio.dronePlayer = player
	player.Play()
}

// SetDroneOpenness feeds the current hand openness into the drone so its
// pitch and brightness follow the gesture.
func SetDroneOpenness(v float64) {
	if globalAudio == nil || globalAudio.drone == nil {
		return
	}
	globalAudio.drone.openBits.Store(math.Float64bits(clampF(v, 0, 1)))
}

// droneReader streams an endless two-oscillator pad. The openness value is
// smoothed per sample to avoid zipper noise, and a tween fades the pad in
// from silence on startup.
type droneReader struct {
	t        float64
	smooth   float64
	openBits atomic.Uint64
	fade     *gween.Tween
	fadeGain float64
}

func newDroneReader() *droneReader {
	return &droneReader{
		fade: gween.New(0, 1, 2.5, ease.InSine),
	}
}

func (d *droneReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	if d.fade != nil {
		g, done := d.fade.Update(float32(samples) / SampleRate)
		d.fadeGain = float64(g)
		if done {
			d.fade = nil
			d.fadeGain = 1
		}
	}
	target := math.Float64frombits(d.openBits.Load())
	for i := 0; i < samples; i++ {
		d.smooth += (target - d.smooth) * 0.00004
		freq := 82.0 * math.Pow(2, d.smooth*1.2)
		lfo := 1.0 + 0.004*math.Sin(2*math.Pi*0.13*d.t)
		s := math.Sin(2*math.Pi*freq*lfo*d.t) * 0.45
		s += math.Sin(2*math.Pi*freq*1.01*d.t) * 0.30
		// Third harmonic opens up with the hand.
		s += math.Sin(2*math.Pi*freq*3*d.t) * 0.18 * d.smooth
		putStereoF32(p, i, softSat(s)*d.fadeGain)
		d.t += 1.0 / SampleRate
	}
	return samples * 8, nil
}
