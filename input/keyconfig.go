package input

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Key names accepted in keymap config, lower-case
var specialKeyNames = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+q":    tcell.KeyCtrlQ,
	"ctrl+s":    tcell.KeyCtrlS,
}

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// LoadKeyConfig parses key name → action name bindings into a sparse override KeyTable
// Config layers may lower-case names, so "shift+m" is the portable way to bind 'M'
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry),
		Runes:       make(map[rune]KeyEntry),
	}

	// Sorted for deterministic error reporting
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry, err := resolveAction(bindings[name])
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", name)
		}

		if k, ok := specialKeyNames[strings.ToLower(name)]; ok {
			kt.SpecialKeys[k] = entry
			continue
		}
		r, err := parseRuneKey(name)
		if err != nil {
			return nil, err
		}
		kt.Runes[r] = entry
	}
	return kt, nil
}

// parseRuneKey converts a config key string to a rune
func parseRuneKey(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "shift+"); ok && utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		return unicode.ToUpper(r), nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	return 0, errors.Errorf("invalid key: %q (expected single character or key name)", s)
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, errors.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by the override maps
// Override entries with IntentNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if v.IntentType == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
