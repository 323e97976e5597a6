package xise

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/isebuild/internal/ctxlog"
)

// Property names read by LoadProject.
const (
	PropDevice           = "Device"
	PropPackage          = "Package"
	PropSpeedGrade       = "Speed Grade"
	PropWorkingDirectory = "Working Directory"
	PropTopInstance      = "Implementation Top Instance Path"
)

// Project is the build-relevant summary of a root descriptor.
type Project struct {
	Path string
	// Dir is the directory every name in the descriptor is relative to.
	Dir string

	Device     string
	Package    string
	SpeedGrade string
	// PartNumber is the -p argument shared by every stage, e.g. xc6slx45-2-csg324.
	PartNumber string

	WorkingDirectory string
	TopInstance      string
	// FileStem names every intermediate output: the top instance without slashes.
	FileStem string

	// UCF is the single user constraints file.
	UCF string
	// Chipscope is the core inserter definition, empty when the design has none.
	Chipscope string

	Properties map[string]string
}

// LoadProject reads the descriptor at path and extracts the settings every
// stage needs. The design must list exactly one UCF file and at most one
// ChipScope definition.
func LoadProject(ctx context.Context, path string) (*Project, error) {
	logger := ctxlog.FromContext(ctx)

	d, err := ReadDescriptor(path)
	if err != nil {
		return nil, err
	}
	props := d.PropertyMap()

	required := func(name string) (string, error) {
		v, ok := props[name]
		if !ok || v == "" {
			return "", &MissingPropertyError{Path: path, Name: name}
		}
		return v, nil
	}

	p := &Project{
		Path:       path,
		Dir:        filepath.Dir(path),
		Properties: props,
	}
	if p.Device, err = required(PropDevice); err != nil {
		return nil, err
	}
	if p.Package, err = required(PropPackage); err != nil {
		return nil, err
	}
	if p.SpeedGrade, err = required(PropSpeedGrade); err != nil {
		return nil, err
	}
	if p.TopInstance, err = required(PropTopInstance); err != nil {
		return nil, err
	}
	p.PartNumber = fmt.Sprintf("%s%s-%s", p.Device, p.SpeedGrade, p.Package)
	p.FileStem = strings.Trim(p.TopInstance, "/")

	p.WorkingDirectory = props[PropWorkingDirectory]
	if p.WorkingDirectory == "" {
		p.WorkingDirectory = "."
	}

	ucfs := d.FilesOfKind(KindUCF)
	if len(ucfs) < 1 {
		return nil, &MissingFilesError{Path: path, Kind: KindUCF, Minimum: 1, Found: ucfs}
	}
	if len(ucfs) > 1 {
		return nil, fmt.Errorf("%s: found %d UCF files, expected exactly one: %q", path, len(ucfs), ucfs)
	}
	p.UCF = ucfs[0]

	chipscopes := d.FilesOfKind(KindChipscope)
	if len(chipscopes) > 1 {
		return nil, fmt.Errorf("%s: found %d ChipScope files, expected at most one: %q", path, len(chipscopes), chipscopes)
	}
	if len(chipscopes) == 1 {
		p.Chipscope = chipscopes[0]
	}

	logger.Debug("Project descriptor loaded.", "path", path, "part", p.PartNumber, "top", p.FileStem, "chipscope", p.Chipscope != "")
	return p, nil
}
