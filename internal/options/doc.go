// Package options compiles tool preferences into command-line token groups.
//
// Every tool process (XST synthesis, ngdbuild, map, par, bitgen) has an
// immutable Table mapping human-readable option names, exactly as they
// appear in a project's properties, to a flag and a formatter tree. Compile
// first drops options whose prerequisite option does not hold (elision),
// rejects any name the table does not know, and then formats the remaining
// options in table order.
//
// Tables, special-case substitutions and elision rules are package data
// built once at init and never modified; they are safe for concurrent use.
// Validate checks that the three agree with each other.
package options
