// Package explorer implements the directory presentation engine: it
// lists a directory, drops dotfiles and user-hidden folders, and
// collapses single-file folders and single-child folder chains into
// composite rows. The output is a flat, ordered slice of Node values;
// everything about rendering, expansion state and commands lives in
// the ui package.
package explorer

// Node describes one presented row. Nodes are built fresh on every
// listing call and never mutated afterwards; nothing holds onto them
// across refreshes.
type Node struct {
	// Label is the display string. For flattened nodes it is the
	// "/"-joined chain of collapsed folder names plus the terminal
	// name, e.g. "a/b/c" or "pkg/main.go".
	Label string

	// LogicalPath is the workspace-relative path of the deepest real
	// entry this node represents. It is the node's identity: hiding
	// and expansion state key on it. Always slash-separated.
	LogicalPath string

	// StorageLocation is the absolute filesystem path to read when
	// expanding or opening the node. For a flattened chain it points
	// through to the first divergence point, which may be deeper than
	// what Label suggests.
	StorageLocation string

	// IsDir marks expandable nodes. Files carry the open action
	// instead.
	IsDir bool

	// OriginFolder is set only on nodes produced by flattening and
	// holds the workspace-relative path of the topmost collapsed
	// folder. Hide targets it so the whole visible chain disappears,
	// not just the deepest segment.
	OriginFolder string
}

// Flattened reports whether the node came out of a flattening
// transform.
func (n Node) Flattened() bool {
	return n.OriginFolder != ""
}

// HideTarget is the workspace-relative path a hide command on this
// node should add to the hidden set: the origin folder for flattened
// nodes, the node's own path otherwise.
func (n Node) HideTarget() string {
	if n.OriginFolder != "" {
		return n.OriginFolder
	}
	return n.LogicalPath
}
