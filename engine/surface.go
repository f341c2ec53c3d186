package engine

import "github.com/lixenwraith/pixel-spin/question"

// SurfaceID names a host element that receives effects
type SurfaceID int

const (
	SurfaceCardA SurfaceID = iota
	SurfaceCardB
	SurfaceNeedleLeft
	SurfaceNeedleRight
	SurfaceScreen
	SurfaceButton
	surfaceCount
)

// CardSurface maps a slot to its surface
func CardSurface(s Slot) SurfaceID {
	return SurfaceCardA + SurfaceID(s)
}

// EffectMask selects which Effect fields are meaningful
type EffectMask uint8

const (
	MaskTransform EffectMask = 1 << iota // Card shift in percent, or needle rotation in degrees
	MaskBlur
	MaskBorder
	MaskSettled
	MaskContent
	MaskLabel
)

// Effect is one fire-and-forget update for a surface
type Effect struct {
	Mask      EffectMask
	Transform float64
	Blur      float64
	Border    bool // Highlighted
	Settled   bool
	Content   question.Item
	Label     string
}

// Has reports whether every bit of m is set
func (e Effect) Has(m EffectMask) bool {
	return e.Mask&m == m
}

// Surface is the host side-effect sink
type Surface interface {
	Apply(id SurfaceID, e Effect)
}

// SurfaceFunc adapts a function to Surface
type SurfaceFunc func(id SurfaceID, e Effect)

// Apply calls f
func (f SurfaceFunc) Apply(id SurfaceID, e Effect) {
	f(id, e)
}

// Cues are the audio triggers fired at phase boundaries
// Implementations must not block
type Cues interface {
	OnSpinStart()
	OnTick()
	OnSpinEnd()
}

// NopCues is used when no audio is available
type NopCues struct{}

func (NopCues) OnSpinStart() {}
func (NopCues) OnTick()      {}
func (NopCues) OnSpinEnd()   {}
