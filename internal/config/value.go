package config

import (
	"fmt"
	"strings"

	"github.com/vk/isebuild/internal/options"
)

// Interpret turns preference text into a raw value. The boolean spellings
// become bools, "" and "None" become nil and everything else stays text;
// numbers are not converted because tools take them as text anyway.
func Interpret(s string) any {
	switch s {
	case "true", "TRUE", "True":
		return true
	case "false", "FALSE", "False":
		return false
	case "", "None":
		return nil
	}
	return s
}

// Override is one command-line preference assignment.
type Override struct {
	Process options.Process
	Name    string
	Value   any
}

// ParseOverride parses "Option Name=value" or "process:Option Name=value".
// The process prefix may be a process or tool name; without it def is used.
func ParseOverride(s string, def options.Process) (Override, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return Override{}, fmt.Errorf("invalid override %q: expected \"Option Name=value\"", s)
	}

	p := def
	if prefix, rest, found := strings.Cut(name, ":"); found {
		parsed, err := options.ParseProcess(prefix)
		if err != nil {
			return Override{}, fmt.Errorf("invalid override %q: %w", s, err)
		}
		p, name = parsed, rest
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Override{}, fmt.Errorf("invalid override %q: empty option name", s)
	}
	if p == "" {
		return Override{}, fmt.Errorf("invalid override %q: no process given", s)
	}
	return Override{Process: p, Name: name, Value: Interpret(strings.TrimSpace(value))}, nil
}

// Apply records the override in m.
func (o Override) Apply(m *Model) { m.Set(o.Process, o.Name, o.Value) }
