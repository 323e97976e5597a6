package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/vk/isebuild/internal/assemble"
	"github.com/vk/isebuild/internal/ctxlog"
	"github.com/vk/isebuild/internal/fsutil"
	"github.com/vk/isebuild/internal/options"
	"github.com/vk/isebuild/internal/projgraph"
	"github.com/vk/isebuild/internal/xise"
)

// coresSearchDirs is the XST option defaulted from the design's CORE
// Generator files.
const coresSearchDirs = "Cores Search Directories"

// Files returns the files of the design rooted at root whose kind satisfies
// match, optionally with duplicates removed.
func (a *App) Files(ctx context.Context, root string, match projgraph.Predicate, dedup bool) ([]string, error) {
	exp, err := a.resolver.Resolve(ctx, root, match)
	if err != nil {
		return nil, err
	}
	if dedup {
		return projgraph.Dedup(exp.Paths), nil
	}
	return exp.Paths, nil
}

// Options compiles the preferences of process p.
func (a *App) Options(ctx context.Context, p options.Process) (*options.Compiled, error) {
	return options.Compile(ctx, p, a.model.For(p))
}

// Plan assembles the full run of the design rooted at root.
func (a *App) Plan(ctx context.Context, root string) (*assemble.Plan, error) {
	logger := ctxlog.FromContext(ctx).With("project", root)

	project, err := xise.LoadProject(ctx, root)
	if err != nil {
		return nil, err
	}
	sources, err := a.Files(ctx, root, projgraph.RTL, true)
	if err != nil {
		return nil, err
	}
	cores, err := a.Files(ctx, root, projgraph.OfKind(xise.KindCoregen), true)
	if err != nil {
		return nil, err
	}

	compiled := make(map[options.Process]*options.Compiled, len(options.Processes))
	for _, p := range options.Processes {
		prefs := a.model.For(p)
		if p == options.Synthesize && len(cores) > 0 {
			if _, set := prefs[coresSearchDirs]; !set {
				dirs, err := absAll(assemble.CoreSearchDirs(cores))
				if err != nil {
					return nil, err
				}
				prefs[coresSearchDirs] = dirs
				logger.Debug("Defaulted core search directories.", "dirs", dirs)
			}
		}
		c, err := options.Compile(ctx, p, prefs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", root, err)
		}
		compiled[p] = c
	}

	plan, err := assemble.Build(assemble.Inputs{
		Project:  project,
		Intstyle: a.intstyle,
		Compiled: compiled,
		Sources:  sources,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("Plan assembled.", "commands", len(plan.Commands), "sources", len(sources))
	return plan, nil
}

// PlanAll assembles every design concurrently. Results are in the order of
// roots; the first failure cancels the rest.
func (a *App) PlanAll(ctx context.Context, roots []string) ([]*assemble.Plan, error) {
	plans := make([]*assemble.Plan, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	limit := a.config.Jobs
	if limit == 0 {
		limit = runtime.NumCPU()
	}
	g.SetLimit(limit)
	for i, root := range roots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			plan, err := a.Plan(gctx, root)
			if err != nil {
				return err
			}
			plans[i] = plan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}

// Roots expands paths into root descriptors. A file is taken as given; a
// directory contributes every .xise file below it that no other descriptor
// found there uses as a sub-project.
func (a *App) Roots(ctx context.Context, paths []string) ([]string, error) {
	var roots []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			roots = append(roots, p)
			continue
		}
		found, err := fsutil.FindFilesByExtension(p, ".xise")
		if err != nil {
			return nil, err
		}
		top, err := a.topLevel(ctx, found)
		if err != nil {
			return nil, err
		}
		roots = append(roots, top...)
	}
	return projgraph.Dedup(roots), nil
}

func (a *App) topLevel(ctx context.Context, descriptors []string) ([]string, error) {
	subs := make(map[string]struct{})
	for _, d := range descriptors {
		exp, err := a.resolver.Resolve(ctx, d, projgraph.SubProjects)
		if err != nil {
			return nil, err
		}
		for _, sub := range exp.Paths {
			if abs, err := filepath.Abs(sub); err == nil {
				subs[abs] = struct{}{}
			}
		}
	}
	return lo.Filter(descriptors, func(d string, _ int) bool {
		abs, err := filepath.Abs(d)
		if err != nil {
			return true
		}
		_, isSub := subs[abs]
		return !isSub
	}), nil
}

// Deps returns the bitstream target of the design rooted at root and every
// file it depends on, excluding the root descriptor itself.
func (a *App) Deps(ctx context.Context, root string) (string, []string, error) {
	project, err := xise.LoadProject(ctx, root)
	if err != nil {
		return "", nil, err
	}
	deps, err := a.Files(ctx, root, projgraph.NonRoot, true)
	if err != nil {
		return "", nil, err
	}
	target := filepath.Join(project.Dir, project.WorkingDirectory, project.FileStem+".bit")
	return target, deps, nil
}

// WriteDepFile writes the depfile of the design rooted at root to w.
func (a *App) WriteDepFile(ctx context.Context, root string, w io.Writer) error {
	target, deps, err := a.Deps(ctx, root)
	if err != nil {
		return err
	}
	return assemble.WriteDepFile(w, target, deps)
}

func absAll(paths []string) ([]string, error) {
	out := make([]string, len(paths))
	for i, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		out[i] = abs
	}
	return out, nil
}
