package assemble

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/vk/isebuild/internal/options"
	"github.com/vk/isebuild/internal/xise"
)

// Inputs is everything needed to assemble one project's run.
type Inputs struct {
	Project *xise.Project
	// Intstyle is passed as -intstyle to every tool when set.
	Intstyle string
	// Compiled holds the compiled options per process. A missing process
	// contributes no options.
	Compiled map[options.Process]*options.Compiled
	// Sources lists the HDL sources in expansion order.
	Sources []string
}

// Plan is the assembled run of one project.
type Plan struct {
	Project string `json:"project" yaml:"project"`
	WorkDir string `json:"workDir" yaml:"workDir"`
	// Script and Prj are the contents of ScriptFile and PrjFile.
	ScriptFile string    `json:"scriptFile" yaml:"scriptFile"`
	Script     string    `json:"script" yaml:"script"`
	PrjFile    string    `json:"prjFile" yaml:"prjFile"`
	Prj        string    `json:"prj" yaml:"prj"`
	Commands   []Command `json:"commands" yaml:"commands"`
}

// names are the intermediate files of a run, relative to the working directory.
type names struct {
	stem string
}

func (n names) with(suffix string) string { return n.stem + suffix }

// Build assembles the run: XST script, source list and one command per
// stage in flow order, with the ChipScope inserter between synthesis and
// translate when the project defines a core.
func Build(in Inputs) (*Plan, error) {
	p := in.Project
	if p == nil {
		return nil, fmt.Errorf("assemble: no project")
	}
	workDir, err := filepath.Abs(filepath.Join(p.Dir, p.WorkingDirectory))
	if err != nil {
		return nil, err
	}
	ucf, err := filepath.Abs(filepath.Join(p.Dir, p.UCF))
	if err != nil {
		return nil, err
	}

	n := names{stem: p.FileStem}
	plan := &Plan{
		Project:    p.Path,
		WorkDir:    workDir,
		ScriptFile: n.with(".xst"),
		PrjFile:    n.with(".prj"),
	}

	xst := in.compiled(options.Synthesize)
	script := &XSTScript{Set: xst.Set, Run: xst.Run, PrjFile: plan.PrjFile, Stem: n.stem, Part: p.PartNumber}
	var buf bytes.Buffer
	if err := script.Write(&buf); err != nil {
		return nil, fmt.Errorf("rendering XST script: %w", err)
	}
	plan.Script = buf.String()

	buf.Reset()
	if err := WritePrj(&buf, in.Sources); err != nil {
		return nil, err
	}
	plan.Prj = buf.String()

	intstyle := func() []string {
		if in.Intstyle == "" {
			return nil
		}
		return []string{"-intstyle", in.Intstyle}
	}
	cmd := func(proc options.Process, tool string, inputs, outputs []string, args ...[]string) Command {
		c := Command{Process: proc, Tool: tool, Dir: workDir, Inputs: inputs, Outputs: outputs}
		for _, a := range args {
			c.Args = append(c.Args, a...)
		}
		return c
	}

	// XST options go into the script; the other stages take theirs as argv.
	flat := make(map[options.Process][]string)
	for _, proc := range []options.Process{options.Translate, options.Map, options.PlaceAndRoute, options.GenerateProgrammingFile} {
		args, err := Flatten(in.compiled(proc).Groups())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", proc, err)
		}
		flat[proc] = args
	}

	ngc := n.with(".ngc")
	plan.Commands = append(plan.Commands, cmd(options.Synthesize, options.Synthesize.Tool(),
		[]string{plan.ScriptFile, plan.PrjFile}, []string{ngc, n.with(".syr")},
		intstyle(), []string{"-ifn", plan.ScriptFile, "-ofn", n.with(".syr")}))

	if p.Chipscope != "" {
		cdc, err := filepath.Abs(filepath.Join(p.Dir, p.Chipscope))
		if err != nil {
			return nil, err
		}
		csNgc := n.with("_cs.ngc")
		plan.Commands = append(plan.Commands, cmd(options.Translate, "inserter",
			[]string{ngc, cdc, ucf}, []string{csNgc},
			intstyle(), []string{
				"-mode", "insert",
				"-ise_project_dir", workDir,
				"-proj", cdc,
				"-dd", filepath.Join(workDir, "_ngo"),
				"-uc", ucf,
				"-p", p.PartNumber,
				ngc, csNgc,
			}))
		ngc = csNgc
	}

	ngd := n.with(".ngd")
	plan.Commands = append(plan.Commands, cmd(options.Translate, options.Translate.Tool(),
		[]string{ngc, ucf}, []string{ngd},
		intstyle(), []string{"-dd", "_ngo"}, flat[options.Translate],
		[]string{"-uc", ucf, "-p", p.PartNumber, ngc, ngd}))

	mapNcd, pcf := n.with("_map.ncd"), n.with(".pcf")
	plan.Commands = append(plan.Commands, cmd(options.Map, options.Map.Tool(),
		[]string{ngd}, []string{mapNcd, pcf},
		intstyle(), []string{"-p", p.PartNumber}, flat[options.Map],
		[]string{"-o", mapNcd, ngd, pcf}))

	ncd := n.with(".ncd")
	plan.Commands = append(plan.Commands, cmd(options.PlaceAndRoute, options.PlaceAndRoute.Tool(),
		[]string{mapNcd, pcf}, []string{ncd},
		[]string{"-w"}, intstyle(), flat[options.PlaceAndRoute],
		[]string{mapNcd, ncd, pcf}))

	plan.Commands = append(plan.Commands, cmd(options.GenerateProgrammingFile, options.GenerateProgrammingFile.Tool(),
		[]string{ncd}, []string{n.with(".bit")},
		intstyle(), []string{"-w"}, flat[options.GenerateProgrammingFile],
		[]string{ncd}))

	if err := link(plan.Commands); err != nil {
		return nil, err
	}
	return plan, nil
}

func (in Inputs) compiled(p options.Process) *options.Compiled {
	if c, ok := in.Compiled[p]; ok && c != nil {
		return c
	}
	return &options.Compiled{Process: p}
}
