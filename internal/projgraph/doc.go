// Package projgraph expands a root project descriptor and the sub-project
// descriptors it references into a flat, ordered list of file paths.
//
// Expansion visits a node, yields its path when the caller's predicate
// accepts its kind, and recurses into project kinds. Children are read from
// the node's own descriptor and anchored at that descriptor's directory, in
// ascending Implementation seqID order. The result is the root's own path
// (if accepted) followed by each child's complete expansion in sibling order.
//
// A sub-project descriptor that does not exist yet (cores are often generated
// later in the build) contributes no children and is reported in the
// Expansion rather than as an error. A missing or malformed root descriptor,
// or a malformed sub-project descriptor, fails the whole expansion.
//
// The same sub-project may be referenced from several places; each reference
// is expanded. Duplicates are removed by Dedup as a separate pass. Cycles are
// cut where a descriptor reappears among its own ancestors.
package projgraph
