package engine

import (
	"log"

	"github.com/lixenwraith/pixel-spin/constants"
	"github.com/lixenwraith/pixel-spin/question"
)

// Machine runs spin cycles: it owns the motor and the card slots, pushes derived
// effects to the surface on every frame and fires cues at phase boundaries.
// All methods must be called from the loop goroutine.
type Machine struct {
	motor   Motor
	swapper *Swapper
	surface Surface
	cues    Cues
	sched   Scheduler

	frame      FrameHandle
	spunBefore bool
	label      string
	flashGen   uint64

	// OnFinish, if set, is called after a cycle settles
	OnFinish func(active question.Item)
}

// NewMachine creates an idle machine showing question.Ready and pushes the rest layout to surface
func NewMachine(pool Selector, surface Surface, cues Cues, sched Scheduler) *Machine {
	if cues == nil {
		cues = NopCues{}
	}
	m := &Machine{
		swapper: NewSwapper(pool, question.Ready),
		surface: surface,
		cues:    cues,
		sched:   sched,
	}

	for _, slot := range []Slot{SlotA, SlotB} {
		m.surface.Apply(CardSurface(slot), Effect{Mask: MaskContent | MaskSettled, Content: m.swapper.Content(slot)})
	}
	m.restLayout()
	m.surface.Apply(SurfaceScreen, Effect{Mask: MaskBorder})
	m.setLabel(Label(PhaseIdle, false))
	return m
}

// Start begins a spin cycle; ignored while one is in flight
func (m *Machine) Start() bool {
	if !m.motor.Start() {
		return false
	}

	m.cue(m.cues.OnSpinStart)

	for _, slot := range []Slot{SlotA, SlotB} {
		m.surface.Apply(CardSurface(slot), Effect{Mask: MaskSettled})
	}
	next := m.swapper.Prepare()
	m.surface.Apply(CardSurface(next), Effect{Mask: MaskContent, Content: m.swapper.Content(next)})

	log.Printf("spin: cycle %d started", m.motor.Cycle())

	// First frame runs synchronously so speed is never zero outside Idle
	m.tick()
	return true
}

// Abort halts an in-flight cycle and returns to rest without the settle effects
// Pending timers of the aborted cycle are ignored when they fire
func (m *Machine) Abort() {
	if !m.Spinning() {
		return
	}
	m.sched.CancelFrame(m.frame)
	log.Printf("spin: cycle %d aborted in %s", m.motor.Cycle(), m.motor.State().Phase)
	m.motor.Finish()
	m.restLayout()
	m.setLabel(Label(PhaseIdle, m.spunBefore))
}

// Spinning reports whether a cycle is in flight
func (m *Machine) Spinning() bool {
	return m.motor.State().Phase != PhaseIdle
}

// State returns the motor state
func (m *Machine) State() SpinState {
	return m.motor.State()
}

// Cycle returns the current or most recent cycle number
func (m *Machine) Cycle() uint64 {
	return m.motor.Cycle()
}

// Label returns the current button text
func (m *Machine) Label() string {
	return m.label
}

// Active returns the slot at rest position and its content
func (m *Machine) Active() (Slot, question.Item) {
	slot := m.swapper.Active()
	return slot, m.swapper.Content(slot)
}

// tick is the frame callback
func (m *Machine) tick() {
	res := m.motor.Step()

	if res.EnteredCruise {
		cycle := m.motor.Cycle()
		m.sched.ScheduleAfter(constants.CruiseDuration, func() { m.expireCruise(cycle) })
	}

	fx := Derive(m.motor.State(), m.spunBefore)
	m.surface.Apply(SurfaceNeedleLeft, Effect{Mask: MaskTransform, Transform: fx.NeedleLeft})
	m.surface.Apply(SurfaceNeedleRight, Effect{Mask: MaskTransform, Transform: fx.NeedleRight})
	for _, slot := range []Slot{SlotA, SlotB} {
		m.surface.Apply(CardSurface(slot), Effect{Mask: MaskBlur, Blur: fx.Blur})
	}
	m.setLabel(fx.Label)

	if res.Wrapped {
		m.cue(m.cues.OnTick)
		next := m.swapper.Swap()
		m.surface.Apply(CardSurface(next), Effect{Mask: MaskContent, Content: m.swapper.Content(next)})

		if res.Terminal {
			m.finalize()
			return
		}
	}

	m.surface.Apply(CardSurface(m.swapper.Active()), Effect{Mask: MaskTransform, Transform: fx.ActiveShift})
	m.surface.Apply(CardSurface(m.swapper.Next()), Effect{Mask: MaskTransform, Transform: fx.NextShift})

	m.frame = m.sched.ScheduleFrame(m.tick)
}

// expireCruise is the cruise timer callback of the given cycle
func (m *Machine) expireCruise(cycle uint64) {
	if !m.motor.Expire(cycle) {
		log.Printf("spin: stale cruise timer for cycle %d ignored", cycle)
		return
	}
	m.setLabel(Label(PhaseDecelerate, m.spunBefore))
}

// finalize settles the reel on the terminal wraparound
func (m *Machine) finalize() {
	m.cue(m.cues.OnSpinEnd)
	m.sched.CancelFrame(m.frame)

	m.restLayout()
	active := m.swapper.Active()
	m.surface.Apply(CardSurface(active), Effect{Mask: MaskSettled, Settled: true})

	m.spunBefore = true
	m.motor.Finish()
	m.setLabel(Label(PhaseIdle, true))

	m.flashGen++
	gen := m.flashGen
	m.surface.Apply(SurfaceScreen, Effect{Mask: MaskBorder, Border: true})
	m.sched.ScheduleAfter(constants.BorderFlashDuration, func() {
		if gen != m.flashGen {
			return
		}
		m.surface.Apply(SurfaceScreen, Effect{Mask: MaskBorder})
	})

	content := m.swapper.Content(active)
	log.Printf("spin: cycle %d settled on %q", m.motor.Cycle(), content.Primary)
	if m.OnFinish != nil {
		m.OnFinish(content)
	}
}

// restLayout snaps cards to rest, clears blur and centres the needles
func (m *Machine) restLayout() {
	m.surface.Apply(CardSurface(m.swapper.Active()), Effect{Mask: MaskTransform | MaskBlur, Transform: 0})
	m.surface.Apply(CardSurface(m.swapper.Next()), Effect{Mask: MaskTransform | MaskBlur, Transform: -constants.CardSpan})
	m.surface.Apply(SurfaceNeedleLeft, Effect{Mask: MaskTransform})
	m.surface.Apply(SurfaceNeedleRight, Effect{Mask: MaskTransform})
}

func (m *Machine) setLabel(label string) {
	if label == m.label {
		return
	}
	m.label = label
	m.surface.Apply(SurfaceButton, Effect{Mask: MaskLabel, Label: label})
}

// cue fires an audio trigger; a panicking player must not take the loop down
func (m *Machine) cue(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("spin: audio cue panicked: %v", r)
		}
	}()
	fn()
}
