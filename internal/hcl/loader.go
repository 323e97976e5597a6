package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/isebuild/internal/config"
	"github.com/vk/isebuild/internal/ctxlog"
	"github.com/vk/isebuild/internal/fsutil"
	"github.com/vk/isebuild/internal/options"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL preference loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every .hcl file named by paths and merges them in order, so
// a later file overrides an earlier one option by option.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := config.NewModel()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		fileModel, err := l.translate(ctx, &root)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", file, err)
		}
		model.Merge(fileModel)
		logger.Debug("Loaded preferences from HCL file.", "file", file, "processes", len(root.Processes))
	}

	return model, nil
}

// translate converts one decoded file into the agnostic model.
func (l *Loader) translate(ctx context.Context, root *fileRoot) (*config.Model, error) {
	model := config.NewModel()

	for _, tc := range root.Toolchain {
		if tc.Intstyle != nil {
			model.Toolchain.Intstyle = *tc.Intstyle
		}
	}

	for _, block := range root.Processes {
		p, err := options.ParseProcess(block.Name)
		if err != nil {
			return nil, err
		}
		values, err := l.evalOptions(ctx, block.Options)
		if err != nil {
			return nil, fmt.Errorf("process %q: %w", block.Name, err)
		}
		// An empty block still marks the process as configured.
		if _, ok := model.Preferences[p]; !ok {
			model.Preferences[p] = options.Dict{}
		}
		for name, raw := range values {
			model.Set(p, name, raw)
		}
	}
	return model, nil
}

// evalOptions evaluates an options object without any variables or
// functions in scope.
func (l *Loader) evalOptions(ctx context.Context, expr hcl.Expression) (options.Dict, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("options must be an object, got %s", ty.FriendlyName())
	}

	out := options.Dict{}
	for name, v := range val.AsValueMap() {
		raw, err := toRaw(v)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", name, err)
		}
		out[name] = raw
	}
	ctxlog.FromContext(ctx).Debug("Evaluated process options.", "count", len(out))
	return out, nil
}
