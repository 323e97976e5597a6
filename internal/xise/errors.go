package xise

import "fmt"

// ParseError reports a descriptor that could not be read or decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("project descriptor %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFilesError reports fewer files of a kind than a caller required.
type MissingFilesError struct {
	Path    string
	Kind    FileKind
	Minimum int
	Found   []string
}

func (e *MissingFilesError) Error() string {
	kind := string(e.Kind)
	if kind == "" {
		kind = "any type"
	}
	return fmt.Sprintf("%s: required at least %d files of type %s, found only %d: %q",
		e.Path, e.Minimum, kind, len(e.Found), e.Found)
}

// MissingPropertyError reports a project property that must be set.
type MissingPropertyError struct {
	Path string
	Name string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("%s: project property %q is not set", e.Path, e.Name)
}
