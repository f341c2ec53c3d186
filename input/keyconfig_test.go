package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadKeyConfig(t *testing.T) {
	kt, err := LoadKeyConfig(map[string]string{
		"s":      "spin",
		"space":  "none",
		"ctrl+s": "toggle_mute",
		"f":      "category_food",
	})
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}

	if kt.Runes['s'].IntentType != IntentSpin {
		t.Errorf("s = %v, want spin", kt.Runes['s'].IntentType)
	}
	if e, ok := kt.Runes[' ']; !ok || e.IntentType != IntentNone {
		t.Errorf("space = %+v, want unbind sentinel", e)
	}
	if kt.SpecialKeys[tcell.KeyCtrlS].IntentType != IntentToggleMute {
		t.Errorf("ctrl+s = %v, want toggle_mute", kt.SpecialKeys[tcell.KeyCtrlS].IntentType)
	}
	if e := kt.Runes['f']; e.IntentType != IntentToggleCategory || e.Category != "FOOD" {
		t.Errorf("f = %+v, want FOOD toggle", e)
	}
}

// TestLoadKeyConfigShiftRune verifies upper-case runes survive a lower-casing config layer
func TestLoadKeyConfigShiftRune(t *testing.T) {
	kt, err := LoadKeyConfig(map[string]string{
		"shift+m": "spin",
		"m":       "toggle_mute",
	})
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}
	if kt.Runes['M'].IntentType != IntentSpin {
		t.Errorf("M = %v, want spin", kt.Runes['M'].IntentType)
	}
	if kt.Runes['m'].IntentType != IntentToggleMute {
		t.Errorf("m = %v, want toggle_mute", kt.Runes['m'].IntentType)
	}
	if _, err := LoadKeyConfig(map[string]string{"shift+mm": "spin"}); err == nil {
		t.Error("Expected error for multi-rune shift key")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	if _, err := LoadKeyConfig(map[string]string{"x": "explode"}); err == nil {
		t.Error("Expected error for unknown action")
	}
	if _, err := LoadKeyConfig(map[string]string{"xy": "spin"}); err == nil {
		t.Error("Expected error for multi-rune key")
	}
}

func TestMergeKeyTable(t *testing.T) {
	override, err := LoadKeyConfig(map[string]string{
		"space": "none",
		"s":     "spin",
	})
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}
	base := DefaultKeyTable()
	merged := MergeKeyTable(base, override)

	if _, ok := merged.Runes[' ']; ok {
		t.Error("space should be unbound")
	}
	if merged.Runes['s'].IntentType != IntentSpin {
		t.Error("s should spin")
	}
	if _, ok := base.Runes[' ']; !ok {
		t.Error("Merge must not modify the base table")
	}
	if merged.SpecialKeys[tcell.KeyEnter].IntentType != IntentSpin {
		t.Error("Unrelated bindings should survive the merge")
	}
}

func TestDefaultKeyTableCategories(t *testing.T) {
	kt := DefaultKeyTable()
	want := map[rune]string{'2': "FUN", '3': "TECH", '4': "DEEP", '5': "LIFE", '6': "FOOD"}
	for r, tag := range want {
		if e := kt.Runes[r]; e.IntentType != IntentToggleCategory || e.Category != tag {
			t.Errorf("%c = %+v, want %s toggle", r, e, tag)
		}
	}
	if kt.Runes['1'].IntentType != IntentSelectAll {
		t.Errorf("1 = %v, want select_all", kt.Runes['1'].IntentType)
	}
}
