package formatter

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Kind identifies a node of a formatter tree.
type Kind int

// Value-level kinds come first; every kind from KindNormal on is output-level.
const (
	KindIdentity Kind = iota
	KindBoolYesNo
	KindBoolOnOff
	KindSpecialCase
	KindMaybeSpecialCase
	KindBoolOrExtras
	KindMustBeIn
	KindAsList
	KindQuoted
	KindLowercased
	KindPrefixed

	KindNormal
	KindFlagIfBool
	KindEachPair
	KindImplies
)

var kindNames = map[Kind]string{
	KindIdentity:         "Identity",
	KindBoolYesNo:        "BoolYesNo",
	KindBoolOnOff:        "BoolOnOff",
	KindSpecialCase:      "SpecialCase",
	KindMaybeSpecialCase: "MaybeSpecialCase",
	KindBoolOrExtras:     "BoolOrExtras",
	KindMustBeIn:         "MustBeIn",
	KindAsList:           "AsList",
	KindQuoted:           "Quoted",
	KindLowercased:       "Lowercased",
	KindPrefixed:         "Prefixed",
	KindNormal:           "Normal",
	KindFlagIfBool:       "FlagIfBool",
	KindEachPair:         "EachPair",
	KindImplies:          "Implies",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsOutput reports whether nodes of this kind produce token groups rather
// than a single value.
func (k Kind) IsOutput() bool { return k >= KindNormal }

// Formatter is one node of a formatter tree. Only the fields meaningful to
// Kind are set; build nodes with the constructors below and never modify
// them afterwards.
type Formatter struct {
	Kind Kind

	// Inner is the wrapped node. A nil Inner evaluates as Identity.
	Inner *Formatter
	// Fallback handles values BoolOrExtras does not list.
	Fallback *Formatter

	// Expect is the boolean that makes FlagIfBool emit its flag.
	Expect bool
	// Allowed is the set MustBeIn accepts.
	Allowed []string
	// Extras maps accepted BoolOrExtras values to their replacement.
	Extras map[string]string
	// Open and Close delimit Quoted values.
	Open, Close string
	// DropNone turns a none result into an omission (Normal, Quoted) or
	// into Null (AsList, for empty input).
	DropNone bool
	// Prefix is prepended by Prefixed.
	Prefix string
	// Key selects the special-case table; the flag is used when empty.
	Key string
	// Extra holds the groups Implies appends.
	Extra Output
}

// Identity passes the raw value through as text.
func Identity() *Formatter { return &Formatter{Kind: KindIdentity} }

// BoolYesNo maps true to YES and false to NO.
func BoolYesNo() *Formatter { return &Formatter{Kind: KindBoolYesNo} }

// BoolOnOff maps true, "on" and "On" to on, and false, "off" and "Off" to off.
func BoolOnOff() *Formatter { return &Formatter{Kind: KindBoolOnOff} }

// FlagIfBool emits the bare flag when the boolean value equals expect and
// omits the option otherwise.
func FlagIfBool(expect bool) *Formatter { return &Formatter{Kind: KindFlagIfBool, Expect: expect} }

// SpecialCase replaces the value from the special-case table under the flag.
func SpecialCase() *Formatter { return &Formatter{Kind: KindSpecialCase} }

// SpecialCaseIn is SpecialCase reading the table under key instead of the flag.
func SpecialCaseIn(key string) *Formatter { return &Formatter{Kind: KindSpecialCase, Key: key} }

// MaybeSpecialCase is SpecialCase falling back to the value as text.
func MaybeSpecialCase() *Formatter { return &Formatter{Kind: KindMaybeSpecialCase} }

// MaybeSpecialCaseIn is MaybeSpecialCase reading the table under key.
func MaybeSpecialCaseIn(key string) *Formatter {
	return &Formatter{Kind: KindMaybeSpecialCase, Key: key}
}

// BoolOrExtras passes the listed string values through verbatim and hands
// everything else to fallback (BoolYesNo when nil).
func BoolOrExtras(extras []string, fallback *Formatter) *Formatter {
	m := make(map[string]string, len(extras))
	for _, e := range extras {
		m[e] = e
	}
	return &Formatter{Kind: KindBoolOrExtras, Extras: m, Fallback: fallback}
}

// BoolOrExtrasMap is BoolOrExtras with a replacement for each listed value.
func BoolOrExtrasMap(extras map[string]string, fallback *Formatter) *Formatter {
	return &Formatter{Kind: KindBoolOrExtras, Extras: maps.Clone(extras), Fallback: fallback}
}

// MustBeIn rejects any inner result outside allowed. Null passes.
func MustBeIn(allowed []string, inner *Formatter) *Formatter {
	return &Formatter{Kind: KindMustBeIn, Allowed: slices.Clone(allowed), Inner: inner}
}

// AsList splits a whitespace separated value, or takes a []string item by
// item, formats every token with inner and joins the results inside braces.
// Only the []string form can carry tokens containing spaces. No value
// yields "{}", or Null when dropNone is set.
func AsList(inner *Formatter, dropNone bool) *Formatter {
	return &Formatter{Kind: KindAsList, Inner: inner, DropNone: dropNone}
}

// Quoted wraps the inner result in open and close. With dropNone a none
// result becomes Null.
func Quoted(inner *Formatter, open, close string, dropNone bool) *Formatter {
	return &Formatter{Kind: KindQuoted, Inner: inner, Open: open, Close: close, DropNone: dropNone}
}

// Lowercased lowercases the inner result.
func Lowercased(inner *Formatter) *Formatter {
	return &Formatter{Kind: KindLowercased, Inner: inner}
}

// Prefixed prepends prefix to the inner result.
func Prefixed(prefix string, inner *Formatter) *Formatter {
	return &Formatter{Kind: KindPrefixed, Prefix: prefix, Inner: inner}
}

// Normal pairs the inner value with the flag. With dropNone a none value
// omits the option entirely.
func Normal(inner *Formatter, dropNone bool) *Formatter {
	return &Formatter{Kind: KindNormal, Inner: inner, DropNone: dropNone}
}

// EachPair emits one [flag, value] group per whitespace separated token.
func EachPair(inner *Formatter) *Formatter {
	return &Formatter{Kind: KindEachPair, Inner: inner}
}

// Implies appends extra groups whenever inner contributes anything.
func Implies(inner *Formatter, extra ...Group) *Formatter {
	out := make(Output, len(extra))
	for i, g := range extra {
		out[i] = slices.Clone(g)
	}
	return &Formatter{Kind: KindImplies, Inner: inner, Extra: out}
}

// Walk calls fn for f and every node below it, depth first.
func (f *Formatter) Walk(fn func(*Formatter)) {
	if f == nil {
		return
	}
	fn(f)
	f.Inner.Walk(fn)
	f.Fallback.Walk(fn)
}

// String renders the tree in constructor notation.
func (f *Formatter) String() string {
	if f == nil {
		return "Identity"
	}
	var args []string
	switch f.Kind {
	case KindFlagIfBool:
		args = append(args, fmt.Sprint(f.Expect))
	case KindSpecialCase, KindMaybeSpecialCase:
		if f.Key != "" {
			args = append(args, fmt.Sprintf("%q", f.Key))
		}
	case KindBoolOrExtras:
		args = append(args, fmt.Sprint(slices.Sorted(maps.Keys(f.Extras))))
		if f.Fallback != nil {
			args = append(args, f.Fallback.String())
		}
	case KindMustBeIn:
		args = append(args, fmt.Sprint(f.Allowed))
	case KindQuoted:
		args = append(args, fmt.Sprintf("%q", f.Open), fmt.Sprintf("%q", f.Close))
	case KindPrefixed:
		args = append(args, fmt.Sprintf("%q", f.Prefix))
	case KindImplies:
		for _, g := range f.Extra {
			args = append(args, fmt.Sprintf("%q", g.String()))
		}
	}
	if f.Inner != nil {
		args = append(args, f.Inner.String())
	}
	if f.DropNone {
		args = append(args, "dropNone")
	}
	if len(args) == 0 {
		return f.Kind.String()
	}
	return f.Kind.String() + "(" + strings.Join(args, ", ") + ")"
}
