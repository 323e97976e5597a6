package assemble

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vk/isebuild/internal/projgraph"
)

const (
	VerilogExtension = ".v"
	VHDLExtension1   = ".vhd"
	VHDLExtension2   = ".vhdl"
)

// Language returns the .prj language keyword for an HDL source.
func Language(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case VHDLExtension1, VHDLExtension2:
		return "vhdl"
	}
	return "verilog"
}

// WritePrj writes one `<language> work "<absolute path>"` line per source,
// in the given order.
func WritePrj(w io.Writer, sources []string) error {
	for _, src := range sources {
		abs, err := filepath.Abs(src)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", src, err)
		}
		if _, err := fmt.Fprintf(w, "%s work \"%s\"\n", Language(src), abs); err != nil {
			return err
		}
	}
	return nil
}

// CoreSearchDirs returns the directories holding the given CORE Generator
// files, each once, in first-seen order.
func CoreSearchDirs(coregenFiles []string) []string {
	dirs := make([]string, len(coregenFiles))
	for i, f := range coregenFiles {
		dirs[i] = filepath.Dir(f)
	}
	return projgraph.Dedup(dirs)
}
