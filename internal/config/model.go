package config

import (
	"github.com/vk/isebuild/internal/options"
)

// Model is the merged preference configuration.
type Model struct {
	Toolchain   Toolchain
	Preferences map[options.Process]options.Dict
}

// Toolchain holds settings shared by every tool invocation.
type Toolchain struct {
	// Intstyle is passed to every tool as -intstyle. Empty means unset.
	Intstyle string
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{Preferences: make(map[options.Process]options.Dict)}
}

// Set records one option value for p, replacing any earlier value.
func (m *Model) Set(p options.Process, name string, raw any) {
	if m.Preferences == nil {
		m.Preferences = make(map[options.Process]options.Dict)
	}
	d, ok := m.Preferences[p]
	if !ok {
		d = options.Dict{}
		m.Preferences[p] = d
	}
	d[name] = raw
}

// Merge applies other on top of m: toolchain settings that other sets win,
// and options are overridden one key at a time.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	if other.Toolchain.Intstyle != "" {
		m.Toolchain.Intstyle = other.Toolchain.Intstyle
	}
	for p, d := range other.Preferences {
		for name, raw := range d {
			m.Set(p, name, raw)
		}
	}
}

// For returns a copy of the preferences of p, empty when none are set.
func (m *Model) For(p options.Process) options.Dict {
	return m.Preferences[p].Clone()
}
