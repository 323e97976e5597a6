package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/isebuild/internal/formatter"
)

func TestValidate_BuiltinTables(t *testing.T) {
	require.NoError(t, Validate())
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	broken := map[Process]*Table{
		Map: newTable(Map,
			run("No Formatter", "-nf", nil),
			run("Effort", "-ol", formatter.SpecialCase()),
			bare("Loose Flag"),
			Option{Name: "Bare Flag", Format: formatter.FlagIfBool(true)},
			Option{Name: "Bare Special", Format: formatter.SpecialCase()},
		),
	}
	special := formatter.SpecialCases{
		string(Map): {"-unused": {"a": "b"}},
	}
	brokenRules := []Rule{
		{Map, "Missing Dependent", "Effort", Equals("High")},
		{Map, "Effort", "Missing Prerequisite", Equals(true)},
		{Map, "Effort", "Loose Flag", nil},
		{Translate, "Anything", "Else", Equals(true)},
	}

	err := validate(broken, special, brokenRules)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "option tables validation failed:\n- ")
	for _, want := range []string{
		`Map: option "No Formatter" has no formatter`,
		`Map: option "Effort" has no special-case table "-ol"`,
		`Map: option "Bare Flag" uses FlagIfBool without a flag`,
		`Map: option "Bare Special" uses SpecialCase without a flag or key`,
		`Map: special-case table "-unused" is not used by any option`,
		`Map: elision rule drops unknown option "Missing Dependent"`,
		`Map: elision rule for "Effort" depends on unknown option "Missing Prerequisite"`,
		`Map: elision rule for "Effort" has no predicate`,
		`elision rule for "Anything": unknown process "Translate"`,
	} {
		assert.Contains(t, msg, want)
	}
}

func TestNewTable_PanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		newTable(Map, run("Effort", "-ol", formatter.Identity()), run("Effort", "-ol", formatter.Identity()))
	})
}
