package assemble

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/vk/isebuild/internal/formatter"
	"github.com/vk/isebuild/internal/options"
)

// Command is one tool invocation, run from Dir.
type Command struct {
	Process options.Process `json:"process" yaml:"process"`
	Tool    string          `json:"tool" yaml:"tool"`
	Args    []string        `json:"args" yaml:"args"`
	Dir     string          `json:"dir" yaml:"dir"`
	// Inputs and Outputs are relative to Dir unless absolute.
	Inputs  []string `json:"inputs" yaml:"inputs"`
	Outputs []string `json:"outputs" yaml:"outputs"`
	// After names the tools whose outputs this command reads.
	After []string `json:"after,omitempty" yaml:"after,omitempty"`
}

// Argv returns the tool followed by its arguments.
func (c Command) Argv() []string {
	return append([]string{c.Tool}, c.Args...)
}

// String renders the command line for a POSIX shell.
func (c Command) String() string {
	argv := c.Argv()
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = shellQuote(a)
	}
	return strings.Join(quoted, " ")
}

// Flatten turns compiled groups into argv tokens. A single-token group may
// hold free-form text and is split with POSIX shell word rules, so quoted
// arguments stay whole; the tokens of a [flag, value] group are kept as
// they are. Shell operators and unterminated quotes are errors.
func Flatten(groups []formatter.Group) ([]string, error) {
	var out []string
	for _, g := range groups {
		if len(g) != 1 {
			out = append(out, g...)
			continue
		}
		p := shellwords.NewParser()
		words, err := p.Parse(g[0])
		if err != nil {
			return nil, fmt.Errorf("splitting %q: %w", g[0], err)
		}
		if p.Position >= 0 {
			return nil, fmt.Errorf("splitting %q: shell operator at offset %d is not supported", g[0], p.Position)
		}
		out = append(out, words...)
	}
	return out, nil
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !isShellSafe(r) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func isShellSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("-_./:=,+@%", r)
}
