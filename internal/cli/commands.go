package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vk/isebuild/internal/assemble"
	"github.com/vk/isebuild/internal/options"
	"github.com/vk/isebuild/internal/projgraph"
	"github.com/vk/isebuild/internal/xise"
)

func args(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := v(cmd, a); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// kindSets are the named selections accepted by files --kind.
var kindSets = map[string]projgraph.Predicate{
	"rtl":         projgraph.RTL,
	"nonroot":     projgraph.NonRoot,
	"subprojects": projgraph.SubProjects,
	"all":         func(xise.FileKind) bool { return true },
}

// parseKinds turns --kind values into a predicate. A value is either a
// named selection or a file type such as FILE_UCF.
func parseKinds(values []string) (projgraph.Predicate, error) {
	var preds []projgraph.Predicate
	var kinds []xise.FileKind
	for _, v := range values {
		if p, ok := kindSets[strings.ToLower(v)]; ok {
			preds = append(preds, p)
			continue
		}
		if !strings.HasPrefix(v, "FILE_") {
			return nil, fmt.Errorf("unknown file kind %q: use %s or a file type like FILE_UCF",
				v, strings.Join(kindNames(), ", "))
		}
		kinds = append(kinds, xise.FileKind(v))
	}
	if len(kinds) > 0 {
		preds = append(preds, projgraph.OfKind(kinds...))
	}
	return func(k xise.FileKind) bool {
		return lo.SomeBy(preds, func(p projgraph.Predicate) bool { return p(k) })
	}, nil
}

func kindNames() []string {
	names := lo.Keys(kindSets)
	slices.Sort(names)
	return names
}

func newFilesCommand(g *globals) *cobra.Command {
	var kinds []string
	var dedup bool
	cmd := &cobra.Command{
		Use:   "files ROOT.xise",
		Short: "List the files of a design, following sub-project descriptors",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			match, err := parseKinds(kinds)
			if err != nil {
				return usageError(err)
			}
			app, ctx, err := g.newApp(cmd.Context())
			if err != nil {
				return err
			}
			files, err := app.Files(ctx, a[0], match, dedup)
			if err != nil {
				return err
			}
			return g.render(files, func(w io.Writer) error { return writeLines(w, files) })
		},
	}
	cmd.Flags().StringSliceVarP(&kinds, "kind", "k", []string{"rtl"}, "Kinds to list: rtl, nonroot, subprojects, all or a file type, repeatable")
	cmd.Flags().BoolVar(&dedup, "dedup", true, "Report each path once, at its first occurrence")
	return cmd
}

func newOptionsCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "options [PROCESS]",
		Short: "Compile the preferences of one process, or of every process",
		Long: "Compile the preferences of one process into command-line options.\n" +
			"PROCESS is a process name such as \"Place & Route\" or a tool name such as par.",
		Args: args(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			procs := options.Processes
			if len(a) == 1 {
				p, err := options.ParseProcess(a[0])
				if err != nil {
					return usageError(err)
				}
				procs = []options.Process{p}
			}
			app, ctx, err := g.newApp(cmd.Context())
			if err != nil {
				return err
			}
			compiled := make([]*options.Compiled, 0, len(procs))
			for _, p := range procs {
				c, err := app.Options(ctx, p)
				if err != nil {
					return err
				}
				compiled = append(compiled, c)
			}
			return g.render(compiled, func(w io.Writer) error {
				for _, c := range compiled {
					if len(procs) > 1 {
						fmt.Fprintln(w, heading("# "+c.Process.String()))
					}
					for _, grp := range c.Set {
						fmt.Fprintln(w, "set", grp)
					}
					for _, grp := range c.Run {
						fmt.Fprintln(w, grp)
					}
					for _, name := range c.Elided {
						fmt.Fprintf(w, "# elided: %s\n", name)
					}
				}
				return nil
			})
		},
	}
}

func newScriptCommand(g *globals) *cobra.Command {
	var prj bool
	cmd := &cobra.Command{
		Use:   "script ROOT.xise",
		Short: "Print the XST script of a design, or its source list with --prj",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			app, ctx, err := g.newApp(cmd.Context())
			if err != nil {
				return err
			}
			plan, err := app.Plan(ctx, a[0])
			if err != nil {
				return err
			}
			name, content := plan.ScriptFile, plan.Script
			if prj {
				name, content = plan.PrjFile, plan.Prj
			}
			view := map[string]string{"file": name, "content": content}
			return g.render(view, func(w io.Writer) error {
				_, err := io.WriteString(w, content)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&prj, "prj", false, "Print the .prj source list instead")
	return cmd
}

func newPlanCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "plan ROOT.xise|DIR...",
		Short: "Print every stage's command line for one or more designs",
		Long: "Print every stage's command line for one or more designs.\n" +
			"A directory stands for every descriptor below it that is not a sub-project of another.",
		Args: args(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			app, ctx, err := g.newApp(cmd.Context())
			if err != nil {
				return err
			}
			roots, err := app.Roots(ctx, a)
			if err != nil {
				return err
			}
			plans, err := app.PlanAll(ctx, roots)
			if err != nil {
				return err
			}
			return g.render(plans, func(w io.Writer) error {
				for _, p := range plans {
					writePlan(w, p)
				}
				return nil
			})
		},
	}
}

func writePlan(w io.Writer, p *assemble.Plan) {
	fmt.Fprintln(w, heading("# "+p.Project))
	fmt.Fprintf(w, "cd %s\n", p.WorkDir)
	for _, c := range p.Commands {
		fmt.Fprintln(w, c.String())
	}
}

func newDepsCommand(g *globals) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "deps ROOT.xise",
		Short: "Write a depfile stating which files the bitstream depends on",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			app, ctx, err := g.newApp(cmd.Context())
			if err != nil {
				return err
			}
			if g.output != "text" {
				target, deps, err := app.Deps(ctx, a[0])
				if err != nil {
					return err
				}
				return g.render(map[string]any{"target": target, "deps": deps}, nil)
			}
			if out == "" {
				return app.WriteDepFile(ctx, a[0], g.outW)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := app.WriteDepFile(ctx, a[0], f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Write the depfile here instead of standard output")
	return cmd
}
