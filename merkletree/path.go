package merkletree

// Side tags which side of a fold a recorded sibling joined on.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// PathJoin is one step of an inclusion path: a sibling hash together with
// the side it joins the accumulated path value on.
type PathJoin[H any] struct {
	Side    Side
	Sibling H
}

// Path is an inclusion path record: the tracked leaf plus the ordered
// sequence of sibling joins that re-derive the root. Grounded on
// original_source/rust/src/path.rs's Path/PathJoin.
type Path[H any] struct {
	Leaf H
	Join []PathJoin[H]
}

// Fold re-derives the root by folding the leaf with each recorded sibling
// in order, using fold as the two-input combinator. A caller typically
// passes the same Backend.Fold the tree was built with (or an equivalent
// pure function) to verify a path independent of the folder.
func (p Path[H]) Fold(fold func(a, b H) H) H {
	result := p.Leaf
	for _, j := range p.Join {
		switch j.Side {
		case SideLeft:
			result = fold(j.Sibling, result)
		case SideRight:
			result = fold(result, j.Sibling)
		}
	}
	return result
}

// PathTracker is a decorator over a Backend: it implements the same
// Backend capability set and observes input/fold calls to record, for a
// single caller-designated leaf index, the ordered list of sibling
// hashes the leaf meets on its way to the root — including siblings
// synthesised during the fill phase, which are suppressed from path
// bookkeeping mid-fill and accounted for in one step at end_fill.
// Grounded on original_source/rust/src/path.rs's PathTracker, translated
// from Rust's owned self-chaining to Go's explicit receiver mutation. The
// "decorator wraps a backend without knowing the folder" shape mirrors
// NebulousLabs-merkletree's proofLader/addToLader/foldLader machinery,
// which builds a proof by observing Push/joinSubTrees from outside the
// stack structure.
type PathTracker[H any] struct {
	base Backend[H]

	inputIndex int
	stackIndex int

	trackInputIndex *int
	trackStackIndex *int

	path *Path[H]
	fill bool
}

// NewPathTracker wraps base, optionally beginning to track the leaf at
// trackIndex (nil to track none yet; set later with TrackIndex/TrackNext).
func NewPathTracker[H any](base Backend[H], trackIndex *int) *PathTracker[H] {
	return &PathTracker[H]{base: base, trackInputIndex: trackIndex}
}

// PathResult returns the recorded path, if the tracked leaf has been seen.
func (t *PathTracker[H]) PathResult() (Path[H], bool) {
	if t.path == nil {
		return Path[H]{}, false
	}
	return *t.path, true
}

// TrackIndex (re)targets the tracker at the given leaf input index and
// discards any path recorded so far.
func (t *PathTracker[H]) TrackIndex(index int) {
	idx := index
	t.trackInputIndex = &idx
	t.trackStackIndex = nil
	t.path = nil
}

// TrackNext targets the tracker at whichever leaf is input next.
func (t *PathTracker[H]) TrackNext() {
	t.TrackIndex(t.inputIndex)
}

func (t *PathTracker[H]) Input(leaf []byte) (H, error) {
	r, err := t.base.Input(leaf)
	if err != nil {
		return r, err
	}
	if !t.fill {
		if t.trackInputIndex != nil && *t.trackInputIndex == t.inputIndex {
			t.path = &Path[H]{Leaf: r}
			idx := t.stackIndex + 1
			t.trackStackIndex = &idx
		}
		t.inputIndex++
		t.stackIndex++
	}
	return r, nil
}

func (t *PathTracker[H]) Fold(a, b H) (H, error) {
	r, err := t.base.Fold(a, b)
	if err != nil {
		return r, err
	}
	if !t.fill {
		if t.trackStackIndex != nil {
			switch *t.trackStackIndex {
			case t.stackIndex:
				t.path.Join = append(t.path.Join, PathJoin[H]{Side: SideLeft, Sibling: a})
				idx := *t.trackStackIndex - 1
				t.trackStackIndex = &idx
			case t.stackIndex - 1:
				t.path.Join = append(t.path.Join, PathJoin[H]{Side: SideRight, Sibling: b})
			}
		}
		t.stackIndex--
	}
	return r, nil
}

func (t *PathTracker[H]) StartFill() {
	t.fill = true
	t.base.StartFill()
}

func (t *PathTracker[H]) EndFill() {
	t.base.EndFill()
	t.fill = false
	t.stackIndex++
}
