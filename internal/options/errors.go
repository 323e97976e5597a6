package options

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownProcess is returned for a process with no option table.
	ErrUnknownProcess = errors.New("unknown tool process")
	// ErrUnknownOption is the sentinel wrapped by *UnknownOptionError.
	ErrUnknownOption = errors.New("unknown option")
)

// UnknownOptionError lists preference keys the process table does not define.
type UnknownOptionError struct {
	Process Process
	Names   []string
}

func (e *UnknownOptionError) Error() string {
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return fmt.Sprintf("%s: unknown option(s) %s", e.Process, strings.Join(quoted, ", "))
}

func (e *UnknownOptionError) Unwrap() error { return ErrUnknownOption }
