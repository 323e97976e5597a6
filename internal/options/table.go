package options

import (
	"fmt"
	"slices"

	"github.com/vk/isebuild/internal/formatter"
)

// Group selects where a compiled option lands. Only XST distinguishes
// "set" directives from "run" arguments; every other tool uses RunGroup.
type Group int

const (
	RunGroup Group = iota
	SetGroup
)

func (g Group) String() string {
	if g == SetGroup {
		return "set"
	}
	return "run"
}

// Option is one table entry. An empty Flag emits the value bare.
type Option struct {
	Name   string
	Flag   string
	Format *formatter.Formatter
	Group  Group
}

// Table is the ordered, read-only option table of one process.
type Table struct {
	process Process
	options []Option
	index   map[string]int
}

func newTable(p Process, opts ...Option) *Table {
	t := &Table{process: p, options: opts, index: make(map[string]int, len(opts))}
	for i, o := range opts {
		if _, exists := t.index[o.Name]; exists {
			panic(fmt.Sprintf("option %q declared twice for %s", o.Name, p))
		}
		t.index[o.Name] = i
	}
	return t
}

// Process returns the process the table belongs to.
func (t *Table) Process() Process { return t.process }

// Lookup returns the option declared under name.
func (t *Table) Lookup(name string) (Option, bool) {
	i, ok := t.index[name]
	if !ok {
		return Option{}, false
	}
	return t.options[i], true
}

// Options returns a copy of the entries in declaration order.
func (t *Table) Options() []Option { return slices.Clone(t.options) }

// Names returns the option names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.options))
	for i, o := range t.options {
		names[i] = o.Name
	}
	return names
}

// Len returns the number of options.
func (t *Table) Len() int { return len(t.options) }

// TableFor returns the option table of p.
func TableFor(p Process) (*Table, error) {
	t, ok := tables[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProcess, string(p))
	}
	return t, nil
}

var tables = map[Process]*Table{
	Synthesize:              xstTable,
	Translate:               ngdbuildTable,
	Map:                     mapTable,
	PlaceAndRoute:           parTable,
	GenerateProgrammingFile: bitgenTable,
}

func run(name, flag string, f *formatter.Formatter) Option {
	return Option{Name: name, Flag: flag, Format: f, Group: RunGroup}
}

func set(name, flag string, f *formatter.Formatter) Option {
	return Option{Name: name, Flag: flag, Format: f, Group: SetGroup}
}

// bare is free-form command line text appended verbatim.
func bare(name string) Option {
	return Option{Name: name, Format: formatter.Normal(formatter.Identity(), true)}
}
