// Package testutil holds helpers shared by the package tests: temporary
// project trees, descriptor documents and log capture.
package testutil

import (
	"fmt"
	"html"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// File describes one file entry of a generated descriptor.
type File struct {
	Name string
	Type string
	// SeqID is the Implementation association's sequence number.
	SeqID int
	// NoImplementation leaves out the Implementation association.
	NoImplementation bool
}

// Verilog, VHDL, UCF, CDC, XCO and Core are shorthands for common entries.
func Verilog(name string, seq int) File { return File{Name: name, Type: "FILE_VERILOG", SeqID: seq} }
func VHDL(name string, seq int) File    { return File{Name: name, Type: "FILE_VHDL", SeqID: seq} }
func UCF(name string, seq int) File     { return File{Name: name, Type: "FILE_UCF", SeqID: seq} }
func CDC(name string, seq int) File     { return File{Name: name, Type: "FILE_CDC", SeqID: seq} }
func XCO(name string, seq int) File     { return File{Name: name, Type: "FILE_COREGEN", SeqID: seq} }
func Core(name string, seq int) File    { return File{Name: name, Type: "FILE_COREGENISE", SeqID: seq} }

// Descriptor renders an ISE project document listing files in the given
// order, with the given properties.
func Descriptor(files []File, props map[string]string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="no" ?>` + "\n")
	sb.WriteString(`<project xmlns="http://www.xilinx.com/XMLSchema" xmlns:xil_pn="http://www.xilinx.com/XMLSchema">` + "\n")
	sb.WriteString("  <header/>\n  <version xil_pn:ise_version=\"13.4\" xil_pn:schema_version=\"2\"/>\n")
	sb.WriteString("  <files>\n")
	for _, f := range files {
		fmt.Fprintf(&sb, "    <file xil_pn:name=%q xil_pn:type=%q>\n", html.EscapeString(f.Name), f.Type)
		fmt.Fprintf(&sb, "      <association xil_pn:name=\"BehavioralSimulation\" xil_pn:seqID=\"%d\"/>\n", f.SeqID+100)
		if !f.NoImplementation {
			fmt.Fprintf(&sb, "      <association xil_pn:name=\"Implementation\" xil_pn:seqID=\"%d\"/>\n", f.SeqID)
		}
		sb.WriteString("    </file>\n")
	}
	sb.WriteString("  </files>\n  <properties>\n")
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "    <property xil_pn:name=%q xil_pn:value=%q xil_pn:valueState=\"non-default\"/>\n",
			html.EscapeString(name), html.EscapeString(props[name]))
	}
	sb.WriteString("  </properties>\n</project>\n")
	return sb.String()
}

// ProjectProperties returns the properties of a Spartan-6 design with top
// instance /top, suitable for LoadProject.
func ProjectProperties() map[string]string {
	return map[string]string{
		"Device":                           "xc6slx45",
		"Package":                          "csg324",
		"Speed Grade":                      "-2",
		"Working Directory":                "build",
		"Implementation Top Instance Path": "/top",
	}
}

// WriteDesign lays out below dir a design with one HDL file, one
// constraints file and a generated core that has its own descriptor, and
// returns the root descriptor's path.
func WriteDesign(t *testing.T, dir string) string {
	t.Helper()
	WriteTree(t, dir, map[string]string{
		"top.xise": Descriptor([]File{
			Verilog("top.v", 1),
			UCF("top.ucf", 2),
			Core("ipcore_dir/fifo.xise", 3),
			XCO("ipcore_dir/fifo.xco", 4),
		}, ProjectProperties()),
		"ipcore_dir/fifo.xise": Descriptor([]File{
			Verilog("fifo.v", 1),
		}, nil),
	})
	return filepath.Join(dir, "top.xise")
}
