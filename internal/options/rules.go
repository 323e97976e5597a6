package options

import (
	"reflect"
	"slices"
)

// Predicate tests a prerequisite option's raw value.
type Predicate func(raw any) bool

// Equals holds when the raw value is want.
func Equals(want any) Predicate {
	return func(raw any) bool { return reflect.DeepEqual(raw, want) }
}

// NotEquals holds when the raw value is anything but v.
func NotEquals(v any) Predicate {
	return func(raw any) bool { return !reflect.DeepEqual(raw, v) }
}

// Rule drops Dependent unless Prerequisite is set and satisfies Holds.
type Rule struct {
	Process      Process
	Dependent    string
	Prerequisite string
	Holds        Predicate
}

var rules = []Rule{
	{Map, "Placer Extra Effort", "Placer Effort Level", Equals("High")},
	{Map, "Extra Cost Tables", "Perform Timing-Driven Packing and Placement", Equals(true)},
	{PlaceAndRoute, "Extra Effort (Highest PAR level only)", "Place & Route Effort Level (Overall)", Equals("High")},
	{Synthesize, "Synthesis Constraints File", "Use Synthesis Constraints File", Equals(true)},
	{Synthesize, "Shift Register Minimum Size", "Shift Register Extraction", Equals(true)},
	{Synthesize, "RAM Style", "RAM Extraction", Equals(true)},
	{Synthesize, "ROM Style", "ROM Extraction", Equals(true)},
	{Synthesize, "FSM Encoding Algorithm", "FSM Extraction", Equals(true)},
	{Synthesize, "Safe Implementation", "FSM Extraction", Equals(true)},
}

// Rules returns the elision rules of every process.
func Rules() []Rule { return slices.Clone(rules) }

// Elide returns a copy of prefs without the options of p whose
// prerequisite is missing or does not hold, and the names it dropped in
// the order they were dropped. Rules are reapplied until nothing changes,
// so the result is stable under a second Elide.
func Elide(p Process, prefs Dict) (Dict, []string) {
	return elide(rules, p, prefs)
}

func elide(rules []Rule, p Process, prefs Dict) (Dict, []string) {
	out := prefs.Clone()
	var dropped []string
	for changed := true; changed; {
		changed = false
		for _, r := range rules {
			if r.Process != p {
				continue
			}
			if _, ok := out[r.Dependent]; !ok {
				continue
			}
			if v, ok := out[r.Prerequisite]; ok && r.Holds(v) {
				continue
			}
			delete(out, r.Dependent)
			dropped = append(dropped, r.Dependent)
			changed = true
		}
	}
	return out, dropped
}
