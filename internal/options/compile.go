package options

import (
	"context"
	"slices"

	"github.com/vk/isebuild/internal/ctxlog"
	"github.com/vk/isebuild/internal/formatter"
)

// Compiled is the command-line contribution of one process's preferences.
// Set is only ever filled for XST.
type Compiled struct {
	Process Process           `json:"process" yaml:"process"`
	Set     []formatter.Group `json:"set,omitempty" yaml:"set,omitempty"`
	Run     []formatter.Group `json:"run" yaml:"run"`
	// Elided lists options dropped because their prerequisite did not hold.
	Elided []string `json:"elided,omitempty" yaml:"elided,omitempty"`
}

// Groups returns Set followed by Run.
func (c *Compiled) Groups() []formatter.Group {
	return slices.Concat(c.Set, c.Run)
}

// Compile compiles prefs with the table of p.
func Compile(ctx context.Context, p Process, prefs Dict) (*Compiled, error) {
	t, err := TableFor(p)
	if err != nil {
		return nil, err
	}
	return CompileTable(ctx, t, prefs)
}

// CompileTable compiles prefs with t. Any name missing from t fails the
// whole compilation before anything is formatted, as does any formatter
// error. Groups come out in table order.
func CompileTable(ctx context.Context, t *Table, prefs Dict) (*Compiled, error) {
	logger := ctxlog.FromContext(ctx).With("process", string(t.process))

	var unknown []string
	for _, name := range prefs.Names() {
		if _, ok := t.Lookup(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return nil, &UnknownOptionError{Process: t.process, Names: unknown}
	}

	kept, elided := Elide(t.process, prefs)
	for _, name := range elided {
		logger.Debug("Option elided, prerequisite does not hold.", "option", name)
	}

	c := &Compiled{Process: t.process, Elided: elided}
	for _, o := range t.options {
		raw, ok := kept[o.Name]
		if !ok {
			continue
		}
		env := formatter.Env{Process: string(t.process), Option: o.Name, Flag: o.Flag, Special: specialCases}
		out, err := o.Format.Format(env, raw)
		if err != nil {
			return nil, err
		}
		if out.Empty() {
			logger.Debug("Option contributes nothing.", "option", o.Name)
			continue
		}
		if o.Group == SetGroup {
			c.Set = append(c.Set, out...)
		} else {
			c.Run = append(c.Run, out...)
		}
	}

	logger.Debug("Options compiled.", "set_groups", len(c.Set), "run_groups", len(c.Run), "elided", len(elided))
	return c, nil
}
