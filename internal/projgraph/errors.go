package projgraph

import (
	"errors"
	"fmt"
)

// ErrMaxDepth is returned when sub-projects nest deeper than the resolver allows.
var ErrMaxDepth = errors.New("project graph exceeds maximum depth")

// MissingSubProjectError records a referenced sub-project descriptor that
// could not be found. It is never returned by Resolve; it is collected in
// Expansion.Missing.
type MissingSubProjectError struct {
	Path string
	Err  error
}

func (e *MissingSubProjectError) Error() string {
	return fmt.Sprintf("sub-project descriptor %s not found: %v", e.Path, e.Err)
}

func (e *MissingSubProjectError) Unwrap() error { return e.Err }
