package assemble

import (
	"io"
	"text/template"

	"github.com/vk/isebuild/internal/formatter"
)

// XSTScript is the content of the .xst file passed to xst -ifn.
type XSTScript struct {
	Set []formatter.Group
	Run []formatter.Group
	// PrjFile is the .prj source list, relative to the working directory.
	PrjFile string
	// Stem names the output netlist and the top module.
	Stem string
	Part string
}

var xstTemplate = template.Must(template.New("xst").Parse(
	`{{range .Set}}set {{.}}
{{end}}run
-ifn {{.PrjFile}}
-ifmt mixed
-ofn {{.Stem}}
-ofmt NGC
-p {{.Part}}
-top {{.Stem}}
{{range .Run}}{{.}}
{{end}}`))

// Write renders the script.
func (s *XSTScript) Write(w io.Writer) error {
	return xstTemplate.Execute(w, s)
}
