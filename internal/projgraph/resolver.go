package projgraph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/isebuild/internal/ctxlog"
	"github.com/vk/isebuild/internal/xise"
)

// DefaultMaxDepth bounds sub-project nesting.
const DefaultMaxDepth = 64

// Resolver expands project descriptors. The zero value reads from the local
// file system with DefaultMaxDepth.
type Resolver struct {
	// ReadFile loads a descriptor. Defaults to os.ReadFile.
	ReadFile func(path string) ([]byte, error)
	// MaxDepth is the deepest sub-project nesting accepted. Defaults to DefaultMaxDepth.
	MaxDepth int
}

// Expansion is the result of resolving one root descriptor.
type Expansion struct {
	// Paths holds every accepted file, anchor-joined, in visitation order.
	Paths []string
	// Missing lists referenced sub-project descriptors that do not exist.
	Missing []*MissingSubProjectError
	// Cycles lists descriptors skipped because they were their own ancestor.
	Cycles []string
}

type walk struct {
	r         *Resolver
	ctx       context.Context
	match     Predicate
	ancestors map[string]struct{}
	out       *Expansion
}

// Resolve expands the descriptor at rootPath, yielding the paths of every
// file in its transitive closure whose kind satisfies match.
func (r *Resolver) Resolve(ctx context.Context, rootPath string, match Predicate) (*Expansion, error) {
	w := &walk{
		r:         r,
		ctx:       ctx,
		match:     match,
		ancestors: make(map[string]struct{}),
		out:       &Expansion{},
	}
	root := xise.Entry{Kind: xise.KindRootProject, Name: rootPath}
	if err := w.node(root, ".", 0); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Project graph expanded.", "root", rootPath, "paths", len(w.out.Paths), "missing", len(w.out.Missing))
	return w.out, nil
}

func (w *walk) node(e xise.Entry, anchor string, depth int) error {
	path := filepath.Join(anchor, e.Name)
	if w.match(e.Kind) {
		w.out.Paths = append(w.out.Paths, path)
	}
	if !e.Kind.IsProject() {
		return nil
	}

	logger := ctxlog.FromContext(w.ctx)
	if depth > w.r.maxDepth() {
		return fmt.Errorf("%w: %s is nested %d levels deep", ErrMaxDepth, path, depth)
	}

	key := path
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}
	if _, seen := w.ancestors[key]; seen {
		logger.Warn("Sub-project references one of its ancestors, not descending.", "path", path)
		w.out.Cycles = append(w.out.Cycles, path)
		return nil
	}

	entries, err := w.r.entries(path)
	if err != nil {
		if e.Kind == xise.KindSubProject && xise.IsNotExist(err) {
			missing := &MissingSubProjectError{Path: path, Err: err}
			logger.Warn("Sub-project descriptor not found, treating it as empty.", "error", missing)
			w.out.Missing = append(w.out.Missing, missing)
			return nil
		}
		return err
	}
	logger.Debug("Expanding project descriptor.", "path", path, "entries", len(entries), "depth", depth)

	w.ancestors[key] = struct{}{}
	defer delete(w.ancestors, key)

	childAnchor := filepath.Join(anchor, filepath.Dir(e.Name))
	for _, child := range entries {
		if err := w.node(child, childAnchor, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) entries(path string) ([]xise.Entry, error) {
	read := r.ReadFile
	if read == nil {
		read = os.ReadFile
	}
	data, err := read(path)
	if err != nil {
		return nil, &xise.ParseError{Path: path, Err: err}
	}
	d, err := xise.Decode(data)
	if err != nil {
		return nil, &xise.ParseError{Path: path, Err: err}
	}
	entries, err := d.ImplementationEntries()
	if err != nil {
		return nil, &xise.ParseError{Path: path, Err: err}
	}
	return entries, nil
}

func (r *Resolver) maxDepth() int {
	if r.MaxDepth > 0 {
		return r.MaxDepth
	}
	return DefaultMaxDepth
}

// Expand resolves rootPath from the local file system and returns the
// accepted paths.
func Expand(ctx context.Context, rootPath string, match Predicate) ([]string, error) {
	exp, err := (&Resolver{}).Resolve(ctx, rootPath, match)
	if err != nil {
		return nil, err
	}
	return exp.Paths, nil
}

// ExpandRTL returns every HDL source in the design.
func ExpandRTL(ctx context.Context, rootPath string) ([]string, error) {
	return Expand(ctx, rootPath, RTL)
}

// ExpandNonRoot returns every file in the design except the root descriptor.
func ExpandNonRoot(ctx context.Context, rootPath string) ([]string, error) {
	return Expand(ctx, rootPath, NonRoot)
}

// ExpandSubProjects returns every sub-project descriptor referenced transitively.
func ExpandSubProjects(ctx context.Context, rootPath string) ([]string, error) {
	return Expand(ctx, rootPath, SubProjects)
}
