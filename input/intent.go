package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Reel intents
	IntentSpin           // Space, Enter
	IntentToggleCategory // 1-6
	IntentSelectAll      // 0, a
	IntentToggleMute     // m
)

// String returns the action name of the intent type
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentSpin:
		return "spin"
	case IntentToggleCategory:
		return "toggle_category"
	case IntentSelectAll:
		return "select_all"
	case IntentToggleMute:
		return "toggle_mute"
	}
	return "none"
}

// Intent is a parsed user action
type Intent struct {
	Type     IntentType
	Category string // Tag for IntentToggleCategory
}

// Mutating reports whether the intent changes pool or audio state and must be ignored mid-spin
func (i Intent) Mutating() bool {
	switch i.Type {
	case IntentToggleCategory, IntentSelectAll, IntentToggleMute:
		return true
	}
	return false
}
