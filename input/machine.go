package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into semantic intents
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a parser with the given bindings, or the defaults when kt is nil
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{keyTable: kt}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no binding
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() != tcell.KeyRune {
		if e, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
			return &Intent{Type: e.IntentType, Category: e.Category}
		}
		return nil
	}

	r := ev.Rune()
	e, ok := m.keyTable.Runes[r]
	if !ok {
		// Shifted letters fall back to their lower-case binding
		e, ok = m.keyTable.Runes[unicode.ToLower(r)]
	}
	if !ok {
		return nil
	}
	return &Intent{Type: e.IntentType, Category: e.Category}
}
