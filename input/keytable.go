package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pixel-spin/question"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Category   string
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
// Digits 1-6 follow the order of question.Categories, so 1 selects ALL like 0 does
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyEnter:  {IntentType: IntentSpin},
		},
		Runes: map[rune]KeyEntry{
			' ': {IntentType: IntentSpin},
			'q': {IntentType: IntentQuit},
			'm': {IntentType: IntentToggleMute},
			'0': {IntentType: IntentSelectAll},
			'a': {IntentType: IntentSelectAll},
		},
	}
	for i, c := range question.Categories {
		if i > 8 {
			break
		}
		kt.Runes[rune('1'+i)] = categoryEntry(c.Tag)
	}
	return kt
}

func categoryEntry(tag string) KeyEntry {
	if tag == question.All {
		return KeyEntry{IntentType: IntentSelectAll}
	}
	return KeyEntry{IntentType: IntentToggleCategory, Category: tag}
}

// Clone returns a deep copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}
