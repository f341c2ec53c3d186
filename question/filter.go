package question

import "strings"

// All is the sentinel category tag that matches every item
const All = "ALL"

// Category is a selectable filter option
type Category struct {
	Tag  string
	Icon string
}

// Categories lists the filter options in display order
var Categories = []Category{
	{Tag: All, Icon: "🌟"},
	{Tag: "FUN", Icon: "🎉"},
	{Tag: "TECH", Icon: "💻"},
	{Tag: "DEEP", Icon: "🧠"},
	{Tag: "LIFE", Icon: "🌱"},
	{Tag: "FOOD", Icon: "🍕"},
}

// DefaultTags is the startup selection, everything except DEEP
var DefaultTags = []string{"FUN", "TECH", "LIFE", "FOOD"}

// Filter is an immutable category selection, never empty
// The zero value is equivalent to All
type Filter struct {
	tags []string // nil means All, otherwise ordered by insertion
}

// NewFilter builds a filter from tags; no tags, or any All tag, yields All
func NewFilter(tags ...string) Filter {
	var f Filter
	for _, tag := range tags {
		tag = strings.ToUpper(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if tag == All {
			return Filter{}
		}
		if !f.has(tag) {
			f.tags = append(f.tags, tag)
		}
	}
	return f
}

// IsAll reports whether the filter passes every item
func (f Filter) IsAll() bool {
	return len(f.tags) == 0
}

// Tags returns the selected tags, or [All]
func (f Filter) Tags() []string {
	if f.IsAll() {
		return []string{All}
	}
	out := make([]string, len(f.tags))
	copy(out, f.tags)
	return out
}

// Selected reports whether tag is part of the selection, All included
func (f Filter) Selected(tag string) bool {
	if f.IsAll() {
		return tag == All
	}
	return f.has(tag)
}

// Matches reports whether an item with the given category passes the filter
// Uncategorised items only pass All
func (f Filter) Matches(category string) bool {
	if f.IsAll() {
		return true
	}
	if category == "" {
		return false
	}
	return f.has(category)
}

// Toggle returns the selection after the user clicks tag
// All resets to All; a tag clicked while All is active starts a fresh selection;
// otherwise the tag is added or removed. An empty result collapses to All.
func (f Filter) Toggle(tag string) Filter {
	if tag == All {
		return Filter{}
	}

	next := make([]string, 0, len(f.tags)+1)
	found := false
	for _, t := range f.tags {
		if t == tag {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		next = append(next, tag)
	}

	if len(next) == 0 {
		return Filter{}
	}
	return Filter{tags: next}
}

// String renders the selection as a comma separated list
func (f Filter) String() string {
	return strings.Join(f.Tags(), ",")
}

func (f Filter) has(tag string) bool {
	for _, t := range f.tags {
		if t == tag {
			return true
		}
	}
	return false
}
