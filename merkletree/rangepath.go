package merkletree

// RangePathTracker composes RangeTarget (4.4) and PathTracker (4.7): on
// each PushRange(l, r), if the caller's find index satisfies
// l < findIndex < r, the range about to be pushed is the one containing
// that index, so the inner tracker is told to track the next input
// before the push is delegated. Grounded directly on 4.8; there is no
// closer analogue in the example pack beyond the general
// tracker-composes-over-target idiom already used for PathTracker.
type RangePathTracker[H any] struct {
	target    *RangeTarget[H]
	tracker   *PathTracker[H]
	findIndex uint32

	foundRange  [2]uint32
	foundRangeOK bool
}

// NewRangePathTracker builds a folder whose backend is a PathTracker over
// base, wraps that folder in a RangeTarget, and returns the composed
// tracker, which is itself the RangePusher the parser should push into.
func NewRangePathTracker[H any](base Backend[H], findIndex uint32) *RangePathTracker[H] {
	tracker := NewPathTracker[H](base, nil)
	folder := NewFolder[H](tracker)
	target := NewRangeTarget[H](folder)
	return &RangePathTracker[H]{target: target, tracker: tracker, findIndex: findIndex}
}

// PushRange instructs the inner tracker to track the next leaf if
// findIndex falls strictly inside (l, r), records (l, r) for reporting,
// and delegates the push.
func (rp *RangePathTracker[H]) PushRange(l, r uint32) error {
	if l < rp.findIndex && rp.findIndex < r {
		rp.tracker.TrackNext()
		rp.foundRange = [2]uint32{l, r}
		rp.foundRangeOK = true
	}
	return rp.target.PushRange(l, r)
}

// Fill delegates to the wrapped range target.
func (rp *RangePathTracker[H]) Fill() error {
	return rp.target.Fill()
}

// Len delegates to the wrapped range target.
func (rp *RangePathTracker[H]) Len() uint64 {
	return rp.target.Len()
}

// Result delegates to the wrapped range target.
func (rp *RangePathTracker[H]) Result() (H, bool, error) {
	return rp.target.Result()
}

// FoundRange returns the (left, right) range containing findIndex, if one
// was pushed.
func (rp *RangePathTracker[H]) FoundRange() (left, right uint32, ok bool) {
	return rp.foundRange[0], rp.foundRange[1], rp.foundRangeOK
}

// Path returns the recorded inclusion path for findIndex's range, if the
// containing range was found.
func (rp *RangePathTracker[H]) Path() (Path[H], bool) {
	return rp.tracker.PathResult()
}
