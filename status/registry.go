// Package status keeps session counters for the reel
package status

import (
	"fmt"
	"strings"
)

const (
	keySpins     = "spins"
	keyAborts    = "aborts"
	settlePrefix = "settled."
)

// Registry counts spin cycles and where they settled
type Registry struct {
	Counters *CounterMap
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{Counters: NewCounterMap()}
}

// RecordSpin counts a started cycle
func (r *Registry) RecordSpin() {
	r.Counters.Get(keySpins).Add(1)
}

// RecordAbort counts a cycle cancelled before it settled
func (r *Registry) RecordAbort() {
	r.Counters.Get(keyAborts).Add(1)
}

// RecordSettle counts a finished cycle by the category of the card it stopped on
func (r *Registry) RecordSettle(category string) {
	if category == "" {
		category = "none"
	}
	r.Counters.Get(settlePrefix + strings.ToUpper(category)).Add(1)
}

// Spins returns the number of started cycles
func (r *Registry) Spins() int64 {
	return r.Counters.Value(keySpins)
}

// Settled returns how many cycles stopped on category
func (r *Registry) Settled(category string) int64 {
	return r.Counters.Value(settlePrefix + strings.ToUpper(category))
}

// Summary renders every counter as key=value in key order
func (r *Registry) Summary() string {
	keys := r.Counters.Keys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, r.Counters.Value(k)))
	}
	return strings.Join(parts, " ")
}
