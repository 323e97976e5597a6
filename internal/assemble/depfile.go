package assemble

import (
	"fmt"
	"io"
	"strings"
)

// WriteDepFile writes a gcc-style depfile stating that target depends on deps.
func WriteDepFile(w io.Writer, target string, deps []string) error {
	if len(deps) == 0 {
		_, err := fmt.Fprintf(w, "%s:\n", target)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: \\\n %s\n", target, strings.Join(deps, " \\\n "))
	return err
}
