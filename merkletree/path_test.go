package merkletree

import "testing"

// TestPathTrackerEightLeaves is the path-soundness scenario: tracking leaf
// index 3 among leaves "0".."7" under the string test backend should
// record exactly the siblings met on the way to the root, and re-folding
// them should reproduce the full tree's root.
func TestPathTrackerEightLeaves(t *testing.T) {
	tracker := NewPathTracker[string](stringBackend{}, nil)
	tracker.TrackIndex(3)

	f := NewFolder[string](tracker)
	var leaves []string
	for i := 0; i < 8; i++ {
		leaves = append(leaves, string(rune('0'+i)))
	}
	for _, leaf := range leaves {
		if err := f.Push([]byte(leaf)); err != nil {
			t.Fatalf("push %q: %v", leaf, err)
		}
	}

	path, ok := tracker.PathResult()
	if !ok {
		t.Fatal("expected a recorded path")
	}
	if path.Leaf != "3" {
		t.Fatalf("path leaf = %q, want %q", path.Leaf, "3")
	}

	wantJoins := []PathJoin[string]{
		{Side: SideLeft, Sibling: "2"},
		{Side: SideLeft, Sibling: "[0,1]"},
		{Side: SideRight, Sibling: "[[4,5],[6,7]]"},
	}
	if len(path.Join) != len(wantJoins) {
		t.Fatalf("got %d joins, want %d: %+v", len(path.Join), len(wantJoins), path.Join)
	}
	for i, want := range wantJoins {
		if path.Join[i] != want {
			t.Errorf("join[%d] = %+v, want %+v", i, path.Join[i], want)
		}
	}

	fold := func(a, b string) string { return "[" + a + "," + b + "]" }
	gotRoot := path.Fold(fold)

	root, ok, err := f.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if !ok {
		t.Fatal("expected a root")
	}
	if gotRoot != root {
		t.Fatalf("re-derived root %q != folder root %q", gotRoot, root)
	}
	if want := "[[[0,1],[2,3]],[[4,5],[6,7]]]"; root != want {
		t.Fatalf("root = %q, want %q", root, want)
	}
}

func TestPathTrackerNoTrackYieldsNoPath(t *testing.T) {
	tracker := NewPathTracker[string](stringBackend{}, nil)
	f := NewFolder[string](tracker)
	for i := 0; i < 4; i++ {
		if err := f.Push([]byte(string(rune('0' + i)))); err != nil {
			t.Fatalf("push: %v", err)
		}
	}
	if _, ok := tracker.PathResult(); ok {
		t.Fatal("expected no path when nothing was tracked")
	}
}
