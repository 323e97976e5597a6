// Package formatter turns a raw preference value into command-line tokens.
//
// A Formatter is a small tree of nodes built from a fixed set of primitives
// (BoolYesNo, SpecialCase, ...) and combinators (MustBeIn, Quoted, AsList,
// Normal, ...). Trees are plain data: they hold no closures and no state,
// so option tables built from them are immutable and can be shared by any
// number of concurrent compilations. A single evaluator interprets them.
//
// Nodes come in two levels. Value nodes produce one text value or Null
// ("no value"). Output nodes produce the token groups an option contributes
// to a command line: nothing at all, a [flag, value] pair, a bare [flag]
// (FlagIfBool only), a bare value, or several groups. A Null value always
// contributes nothing. Format wraps a value node in
// Normal(node, false) when it is used directly as an option's formatter.
package formatter
