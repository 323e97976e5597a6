package options

import (
	"fmt"
	"strings"
)

// Process identifies one stage of the implementation flow. The value is the
// name the project navigator uses for the stage.
type Process string

const (
	Synthesize              Process = "Synthesize - XST"
	Translate               Process = "Translate"
	Map                     Process = "Map"
	PlaceAndRoute           Process = "Place & Route"
	GenerateProgrammingFile Process = "Generate Programming File"
)

// Processes lists every known process in flow order.
var Processes = []Process{Synthesize, Translate, Map, PlaceAndRoute, GenerateProgrammingFile}

var tools = map[Process]string{
	Synthesize:              "xst",
	Translate:               "ngdbuild",
	Map:                     "map",
	PlaceAndRoute:           "par",
	GenerateProgrammingFile: "bitgen",
}

// Tool returns the executable that runs the process.
func (p Process) Tool() string { return tools[p] }

// Known reports whether p is one of Processes.
func (p Process) Known() bool {
	_, ok := tools[p]
	return ok
}

func (p Process) String() string { return string(p) }

// ParseProcess accepts a process name or its tool name. Tool names are
// matched case-insensitively.
func ParseProcess(s string) (Process, error) {
	s = strings.TrimSpace(s)
	if p := Process(s); p.Known() {
		return p, nil
	}
	for _, p := range Processes {
		if strings.EqualFold(s, p.Tool()) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProcess, s)
}
