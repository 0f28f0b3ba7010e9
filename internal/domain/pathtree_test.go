package domain

import (
	"reflect"
	"testing"
)

func names(t *PathTree, ids []NodeID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.Node(id).Name)
	}
	return out
}

func TestBuildPathTree_SharedPrefix(t *testing.T) {
	tree := BuildPathTree([]string{"a/b.class", "a/c.class"})

	roots := tree.Roots()
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	a := tree.Node(roots[0])
	if a.Name != "a" || !a.IsDirectory || a.Path != "a" {
		t.Errorf("unexpected root node %+v", a)
	}
	if got := names(tree, a.Children); !reflect.DeepEqual(got, []string{"b.class", "c.class"}) {
		t.Errorf("children = %v", got)
	}
	for _, id := range a.Children {
		n := tree.Node(id)
		if n.IsDirectory {
			t.Errorf("%s should be a file", n.Name)
		}
		if n.Parent != roots[0] {
			t.Errorf("%s has parent %d, want %d", n.Name, n.Parent, roots[0])
		}
	}
}

func TestBuildPathTree_DuplicateLeaf(t *testing.T) {
	tree := BuildPathTree([]string{"x.class", "x.class"})

	if tree.Len() != 1 {
		t.Fatalf("expected 1 node, got %d", tree.Len())
	}
	n := tree.Node(tree.Roots()[0])
	if n.Name != "x.class" || n.IsDirectory {
		t.Errorf("unexpected node %+v", n)
	}
}

func TestBuildPathTree_Nested(t *testing.T) {
	tree := BuildPathTree([]string{"com/app/Main.class", "com/app/util/Helper.class"})

	want := []TreeEntry{
		{
			Name: "com", Path: "com", IsDirectory: true,
			Children: []TreeEntry{
				{
					Name: "app", Path: "com/app", IsDirectory: true,
					Children: []TreeEntry{
						{Name: "Main.class", Path: "com/app/Main.class"},
						{
							Name: "util", Path: "com/app/util", IsDirectory: true,
							Children: []TreeEntry{
								{Name: "Helper.class", Path: "com/app/util/Helper.class"},
							},
						},
					},
				},
			},
		},
	}

	if got := tree.Forest(); !reflect.DeepEqual(got, want) {
		t.Errorf("Forest() = %+v\nwant %+v", got, want)
	}
}

func TestBuildPathTree_EdgeCases(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		tree := BuildPathTree(nil)
		if tree.Len() != 0 || len(tree.Roots()) != 0 {
			t.Errorf("expected empty forest")
		}
		if got := tree.Forest(); len(got) != 0 {
			t.Errorf("expected empty Forest(), got %v", got)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		tree := BuildPathTree([]string{""})
		if tree.Len() != 1 {
			t.Fatalf("expected 1 node, got %d", tree.Len())
		}
		if n := tree.Node(tree.Roots()[0]); n.Name != "" || n.IsDirectory {
			t.Errorf("unexpected node %+v", n)
		}
	})

	t.Run("leading slash gives empty root segment", func(t *testing.T) {
		tree := BuildPathTree([]string{"/a.class"})
		root := tree.Node(tree.Roots()[0])
		if root.Name != "" || !root.IsDirectory {
			t.Errorf("unexpected root %+v", root)
		}
		if got := names(tree, root.Children); !reflect.DeepEqual(got, []string{"a.class"}) {
			t.Errorf("children = %v", got)
		}
	})

	t.Run("same name at different levels", func(t *testing.T) {
		tree := BuildPathTree([]string{"a/a", "a"})
		if len(tree.Roots()) != 1 {
			t.Fatalf("expected 1 root, got %d", len(tree.Roots()))
		}
		root := tree.Node(tree.Roots()[0])
		if !root.IsDirectory {
			t.Error("root a should stay a directory")
		}
		if got := names(tree, root.Children); !reflect.DeepEqual(got, []string{"a"}) {
			t.Errorf("children = %v", got)
		}
	})

	t.Run("file promoted to directory", func(t *testing.T) {
		tree := BuildPathTree([]string{"a", "a/b"})
		root := tree.Node(tree.Roots()[0])
		if !root.IsDirectory {
			t.Error("a is used as a non-terminal segment and must be a directory")
		}
		if len(root.Children) != 1 {
			t.Errorf("expected 1 child, got %d", len(root.Children))
		}
		if got := tree.Leaves(); !reflect.DeepEqual(got, []string{"a/b"}) {
			t.Errorf("Leaves() = %v, a promoted path is not a leaf", got)
		}
	})

	t.Run("first seen order", func(t *testing.T) {
		tree := BuildPathTree([]string{"z/1", "a/1", "z/2"})
		if got := names(tree, tree.Roots()); !reflect.DeepEqual(got, []string{"z", "a"}) {
			t.Errorf("roots = %v", got)
		}
	})
}

func TestPathTree_LeavesReproduceInput(t *testing.T) {
	paths := []string{
		"com/app/Main.class",
		"com/app/util/Helper.class",
		"com/app/Main.class",
		"org/lib/Util.class",
		"Top.class",
	}
	tree := BuildPathTree(paths)

	want := []string{
		"com/app/Main.class",
		"com/app/util/Helper.class",
		"org/lib/Util.class",
		"Top.class",
	}
	if got := tree.Leaves(); !reflect.DeepEqual(got, want) {
		t.Errorf("Leaves() = %v, want %v", got, want)
	}
}

func TestPathTree_FindAndDepth(t *testing.T) {
	tree := BuildPathTree([]string{"com/app/util/Helper.class"})

	id, ok := tree.Find("com/app/util/Helper.class")
	if !ok {
		t.Fatal("expected to find leaf")
	}
	if d := tree.Depth(id); d != 3 {
		t.Errorf("Depth() = %d, want 3", d)
	}
	if _, ok := tree.Find("com/missing"); ok {
		t.Error("unexpected match for missing path")
	}
	app, _ := tree.Find("com/app")
	if tree.Node(app).Path != "com/app" {
		t.Errorf("unexpected node %+v", tree.Node(app))
	}
}

func TestPathTree_VisibleWithExpandState(t *testing.T) {
	tree := BuildPathTree([]string{"com/app/Main.class", "com/app/util/Helper.class", "Top.class"})

	state := NewExpandState(tree, 2)
	got := names(tree, tree.Visible(state.IsExpanded))
	want := []string{"com", "app", "Main.class", "util", "Top.class"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Visible() = %v, want %v", got, want)
	}

	util, _ := tree.Find("com/app/util")
	state.Expand(util)
	got = names(tree, tree.Visible(state.IsExpanded))
	want = []string{"com", "app", "Main.class", "util", "Helper.class", "Top.class"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Visible() after expand = %v, want %v", got, want)
	}

	com, _ := tree.Find("com")
	state.Collapse(com)
	got = names(tree, tree.Visible(state.IsExpanded))
	want = []string{"com", "Top.class"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Visible() after collapse = %v, want %v", got, want)
	}

	state.Toggle(com)
	if !state.IsExpanded(com) {
		t.Error("Toggle() should reopen com")
	}
}
