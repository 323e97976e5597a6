package formatter

import "strings"

// Group is one token group: [flag], [flag, value] or a bare [value].
type Group []string

// String joins the tokens with single spaces.
func (g Group) String() string { return strings.Join(g, " ") }

// Output is everything one option contributes. Empty means the option is
// omitted from the command line.
type Output []Group

// Empty reports whether the option contributes nothing.
func (o Output) Empty() bool { return len(o) == 0 }

// Value is the result of a value node.
type Value struct {
	Text string
	// Null means "no value". It is distinct from the text "None", although
	// the drop-none combinators treat both alike.
	Null bool
}

// Null is the "no value" result.
var Null = Value{Null: true}

// Text returns a non-null value.
func Text(s string) Value { return Value{Text: s} }

func (v Value) isNone() bool { return v.Null || v.Text == "None" }
