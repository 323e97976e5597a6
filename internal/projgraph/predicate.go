package projgraph

import (
	"github.com/samber/lo"
	"github.com/vk/isebuild/internal/xise"
)

// Predicate selects the file kinds an expansion yields.
type Predicate func(kind xise.FileKind) bool

// RTL matches HDL source files.
func RTL(kind xise.FileKind) bool { return kind.IsRTL() }

// NonRoot matches every kind except the root descriptor itself.
func NonRoot(kind xise.FileKind) bool { return kind != xise.KindRootProject }

// SubProjects matches sub-project descriptors only.
func SubProjects(kind xise.FileKind) bool { return kind == xise.KindSubProject }

// OfKind matches exactly the given kinds.
func OfKind(kinds ...xise.FileKind) Predicate {
	return func(kind xise.FileKind) bool { return lo.Contains(kinds, kind) }
}

// Dedup returns the first occurrence of every element, in original order.
func Dedup[T comparable](seq []T) []T {
	return lo.Uniq(seq)
}
