package options

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/vk/isebuild/internal/formatter"
)

// Validate checks that the option tables, the special-case tables and the
// elision rules are consistent with each other. All problems are reported
// together.
func Validate() error {
	return validate(tables, specialCases, rules)
}

func validate(tables map[Process]*Table, special formatter.SpecialCases, rules []Rule) error {
	var errs []string
	referenced := make(map[string]map[string]bool)

	for _, p := range slices.Sorted(maps.Keys(tables)) {
		t := tables[p]
		referenced[string(p)] = make(map[string]bool)
		for _, o := range t.options {
			if o.Format == nil {
				errs = append(errs, fmt.Sprintf("%s: option %q has no formatter", p, o.Name))
				continue
			}
			o.Format.Walk(func(n *formatter.Formatter) {
				switch n.Kind {
				case formatter.KindFlagIfBool, formatter.KindEachPair:
					if o.Flag == "" {
						errs = append(errs, fmt.Sprintf("%s: option %q uses %s without a flag", p, o.Name, n.Kind))
					}
				case formatter.KindSpecialCase, formatter.KindMaybeSpecialCase:
					key := n.Key
					if key == "" {
						key = o.Flag
					}
					if key == "" {
						errs = append(errs, fmt.Sprintf("%s: option %q uses %s without a flag or key", p, o.Name, n.Kind))
						return
					}
					referenced[string(p)][key] = true
					if n.Kind == formatter.KindSpecialCase && !special.HasTable(string(p), key) {
						errs = append(errs, fmt.Sprintf("%s: option %q has no special-case table %q", p, o.Name, key))
					}
				}
			})
		}
	}

	for _, process := range slices.Sorted(maps.Keys(special)) {
		for _, key := range slices.Sorted(maps.Keys(special[process])) {
			if !referenced[process][key] {
				errs = append(errs, fmt.Sprintf("%s: special-case table %q is not used by any option", process, key))
			}
		}
	}

	for _, r := range rules {
		t, ok := tables[r.Process]
		if !ok {
			errs = append(errs, fmt.Sprintf("elision rule for %q: unknown process %q", r.Dependent, r.Process))
			continue
		}
		if _, ok := t.Lookup(r.Dependent); !ok {
			errs = append(errs, fmt.Sprintf("%s: elision rule drops unknown option %q", r.Process, r.Dependent))
		}
		if _, ok := t.Lookup(r.Prerequisite); !ok {
			errs = append(errs, fmt.Sprintf("%s: elision rule for %q depends on unknown option %q", r.Process, r.Dependent, r.Prerequisite))
		}
		if r.Holds == nil {
			errs = append(errs, fmt.Sprintf("%s: elision rule for %q has no predicate", r.Process, r.Dependent))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("option tables validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
