package input

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pixel-spin/question"
)

// Spinner is the spin machine as seen by input
type Spinner interface {
	Start() bool
	Spinning() bool
}

// Sound is the audio side of input feedback
type Sound interface {
	ToggleMute() bool
	OnTick()
}

// Handler routes parsed intents to the reel
// Pool and audio mutations are dropped while a spin is in flight
type Handler struct {
	parser  *Machine
	spinner Spinner
	pool    *question.Pool
	sound   Sound

	// OnResize is called for terminal resize events
	OnResize func()
}

// NewHandler creates an input handler
func NewHandler(parser *Machine, spinner Spinner, pool *question.Pool, sound Sound) *Handler {
	if parser == nil {
		parser = NewMachine(nil)
	}
	return &Handler{
		parser:  parser,
		spinner: spinner,
		pool:    pool,
		sound:   sound,
	}
}

// HandleEvent applies one terminal event
// Returns false when the application should quit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	intent := h.parser.Process(ev)
	if intent == nil {
		return true
	}

	if intent.Mutating() && h.spinner.Spinning() {
		return true
	}

	switch intent.Type {
	case IntentQuit:
		return false

	case IntentResize:
		if h.OnResize != nil {
			h.OnResize()
		}

	case IntentSpin:
		h.spinner.Start()

	case IntentToggleCategory:
		f := h.pool.ToggleCategory(intent.Category)
		h.sound.OnTick()
		log.Printf("filter: %s", f)

	case IntentSelectAll:
		h.pool.SetFilter(question.NewFilter())
		h.sound.OnTick()
		log.Printf("filter: %s", question.All)

	case IntentToggleMute:
		muted := h.sound.ToggleMute()
		log.Printf("muted: %v", muted)
	}
	return true
}
