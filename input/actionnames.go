package input

import (
	"strings"

	"github.com/lixenwraith/pixel-spin/question"
)

// actionRegistry maps canonical action names to KeyEntry structs
// Used by keymap config loader to resolve action strings to bindings
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]KeyEntry {
	reg := map[string]KeyEntry{
		// Unbind sentinel
		"none": {},

		"quit":        {IntentType: IntentQuit},
		"spin":        {IntentType: IntentSpin},
		"toggle_mute": {IntentType: IntentToggleMute},
		"select_all":  {IntentType: IntentSelectAll},
	}
	for _, c := range question.Categories {
		if c.Tag == question.All {
			continue
		}
		reg["category_"+strings.ToLower(c.Tag)] = categoryEntry(c.Tag)
	}
	return reg
}

// ActionEntry returns the KeyEntry for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
