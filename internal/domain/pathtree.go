package domain

import "strings"

// NodeID addresses a node inside a PathTree arena
type NodeID int

// NoParent is the Parent of a top-level node
const NoParent NodeID = -1

// PathNode is one segment of an archive member path
type PathNode struct {
	Name        string // segment name, may be empty
	Path        string // slash-joined segments from the root down to this node
	IsDirectory bool
	Parent      NodeID
	Children    []NodeID // first-seen order, only used by directories
}

// PathTree is a forest of PathNodes built from slash-separated paths.
// Nodes live in a single arena and reference each other by index.
type PathTree struct {
	nodes []PathNode
	roots []NodeID
}

// BuildPathTree groups paths by shared prefix segments. Paths are processed in
// input order; siblings keep first-seen order and duplicates collapse.
// A path that is also a prefix of another path becomes a directory, so it is
// not a leaf: ["a", "a/b"] yields directory a with the single file a/b.
func BuildPathTree(paths []string) *PathTree {
	t := &PathTree{}
	for _, p := range paths {
		t.insert(p)
	}
	return t
}

func (t *PathTree) insert(path string) {
	parts := strings.Split(path, "/")
	parent := NoParent
	for i, part := range parts {
		isLast := i == len(parts)-1
		id, ok := t.child(parent, part)
		if !ok {
			id = t.add(PathNode{
				Name:        part,
				Path:        strings.Join(parts[:i+1], "/"),
				IsDirectory: !isLast,
				Parent:      parent,
			})
		} else if !isLast && !t.nodes[id].IsDirectory {
			// used as a non-terminal segment, so it is a directory
			t.nodes[id].IsDirectory = true
		}
		parent = id
	}
}

func (t *PathTree) add(n PathNode) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	if n.Parent == NoParent {
		t.roots = append(t.roots, id)
	} else {
		t.nodes[n.Parent].Children = append(t.nodes[n.Parent].Children, id)
	}
	return id
}

// child finds a direct child of parent by exact name
func (t *PathTree) child(parent NodeID, name string) (NodeID, bool) {
	level := t.roots
	if parent != NoParent {
		level = t.nodes[parent].Children
	}
	for _, id := range level {
		if t.nodes[id].Name == name {
			return id, true
		}
	}
	return 0, false
}

// Len returns the number of nodes in the tree
func (t *PathTree) Len() int {
	return len(t.nodes)
}

// Roots returns the top-level nodes
func (t *PathTree) Roots() []NodeID {
	return t.roots
}

// Node returns the node with the given id
func (t *PathTree) Node(id NodeID) PathNode {
	return t.nodes[id]
}

// Children returns the children of id
func (t *PathTree) Children(id NodeID) []NodeID {
	return t.nodes[id].Children
}

// Depth returns 0 for top-level nodes
func (t *PathTree) Depth(id NodeID) int {
	depth := 0
	for p := t.nodes[id].Parent; p != NoParent; p = t.nodes[p].Parent {
		depth++
	}
	return depth
}

// Find looks up a node by its full path
func (t *PathTree) Find(path string) (NodeID, bool) {
	parent := NoParent
	var id NodeID
	for _, part := range strings.Split(path, "/") {
		var ok bool
		id, ok = t.child(parent, part)
		if !ok {
			return 0, false
		}
		parent = id
	}
	return id, true
}

// Leaves returns the full path of every file node, depth first. This is the
// input minus duplicates and minus paths that were promoted to directories
// because another path extends them.
func (t *PathTree) Leaves() []string {
	var out []string
	var walk func(ids []NodeID)
	walk = func(ids []NodeID) {
		for _, id := range ids {
			n := t.nodes[id]
			if n.IsDirectory {
				walk(n.Children)
				continue
			}
			out = append(out, n.Path)
		}
	}
	walk(t.roots)
	return out
}

// Visible flattens the tree depth first, descending only into directories
// for which expanded returns true. Used for list rendering.
func (t *PathTree) Visible(expanded func(NodeID) bool) []NodeID {
	var out []NodeID
	var walk func(ids []NodeID)
	walk = func(ids []NodeID) {
		for _, id := range ids {
			out = append(out, id)
			if t.nodes[id].IsDirectory && expanded(id) {
				walk(t.nodes[id].Children)
			}
		}
	}
	walk(t.roots)
	return out
}

// TreeEntry is a nested value view of a PathTree, suitable for JSON
type TreeEntry struct {
	Name        string      `json:"name"`
	Path        string      `json:"path"`
	IsDirectory bool        `json:"isDirectory"`
	Children    []TreeEntry `json:"children,omitempty"`
}

// Forest converts the arena into nested entries
func (t *PathTree) Forest() []TreeEntry {
	var build func(ids []NodeID) []TreeEntry
	build = func(ids []NodeID) []TreeEntry {
		entries := make([]TreeEntry, 0, len(ids))
		for _, id := range ids {
			n := t.nodes[id]
			e := TreeEntry{Name: n.Name, Path: n.Path, IsDirectory: n.IsDirectory}
			if n.IsDirectory {
				e.Children = build(n.Children)
			}
			entries = append(entries, e)
		}
		return entries
	}
	return build(t.roots)
}

// ExpandState tracks which directories of a PathTree are open.
// It is kept outside the tree so a rebuilt tree starts from defaults.
type ExpandState struct {
	open map[NodeID]bool
}

// NewExpandState opens every directory shallower than depth
func NewExpandState(t *PathTree, depth int) *ExpandState {
	s := &ExpandState{open: make(map[NodeID]bool)}
	for id := range t.nodes {
		if t.nodes[id].IsDirectory && t.Depth(NodeID(id)) < depth {
			s.open[NodeID(id)] = true
		}
	}
	return s
}

// IsExpanded reports whether id is open
func (s *ExpandState) IsExpanded(id NodeID) bool {
	return s.open[id]
}

// Toggle expands or collapses id
func (s *ExpandState) Toggle(id NodeID) {
	s.open[id] = !s.open[id]
}

// Expand opens id
func (s *ExpandState) Expand(id NodeID) {
	s.open[id] = true
}

// Collapse closes id
func (s *ExpandState) Collapse(id NodeID) {
	delete(s.open, id)
}
