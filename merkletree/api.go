package merkletree

import "github.com/jmdn-labs/brangetree/internal/gzipstream"

// HashResult is the outcome of HashZipped: the leaf count before and
// after an optional fill, and the root. RootOK is false only if the
// folder received no leaf; Complete always pushes a final range, so even
// an empty stream yields a root.
type HashResult[H any] struct {
	LeafCount   uint64
	FilledCount uint64
	Root        H
	RootOK      bool
}

// PathResult is the outcome of FindMerklePath: the non-revoked range
// containing the requested index, its inclusion path, and the root. Range
// and Path are both absent if no pushed range holds index strictly inside
// it (see FindMerklePath).
type PathResult[H any] struct {
	Left, Right uint32
	FoundRange  bool
	Path        Path[H]
	HasPath     bool
	LeafCount   uint64
	Root        H
	RootOK      bool
}

// HashZipped implements 4.9: it opens path, streams it through the
// bit-stream parser into a range target, optionally pads to a power of
// two, and returns the committed root together with the pre- and
// post-fill leaf counts.
func HashZipped[H any](path string, backend Backend[H], fill bool) (HashResult[H], error) {
	folder := NewFolder[H](backend)
	target := NewRangeTarget[H](folder)
	parser := NewRangeParser(target)

	if err := gzipstream.Stream(path, parser); err != nil {
		return HashResult[H]{}, ioErrorf(err)
	}

	if err := parser.Complete(); err != nil {
		return HashResult[H]{}, err
	}

	leafCount := target.Len()
	if fill {
		if err := target.Fill(); err != nil {
			return HashResult[H]{}, err
		}
	}
	filledCount := target.Len()

	root, ok, err := target.Result()
	if err != nil {
		return HashResult[H]{}, err
	}
	return HashResult[H]{
		LeafCount:   leafCount,
		FilledCount: filledCount,
		Root:        root,
		RootOK:      ok,
	}, nil
}

// FindMerklePath implements 4.9's second operation: identical streaming
// pass, but the range target is wrapped in a path tracker keyed on index,
// and the tree is unconditionally filled (an inclusion proof is only
// meaningful against the finalised, power-of-two-sized commitment). If no
// pushed range satisfies l < index < r (a range boundary, or a revoked
// position reached through single-bit processing), FoundRange/HasPath
// both come back false; the root is still returned. An index inside an
// all-revoked 64-bit word, other than the word's first bit, does fall
// inside the range that follows the word (see RangeParser.ProcessBits).
func FindMerklePath[H any](path string, backend Backend[H], index uint32) (PathResult[H], error) {
	composed := NewRangePathTracker[H](backend, index)
	parser := NewRangeParser(composed)

	if err := gzipstream.Stream(path, parser); err != nil {
		return PathResult[H]{}, ioErrorf(err)
	}

	if err := parser.Complete(); err != nil {
		return PathResult[H]{}, err
	}

	if err := composed.Fill(); err != nil {
		return PathResult[H]{}, err
	}
	leafCount := composed.Len()

	root, rootOK, err := composed.Result()
	if err != nil {
		return PathResult[H]{}, err
	}

	left, right, foundRange := composed.FoundRange()
	inclusionPath, hasPath := composed.Path()

	return PathResult[H]{
		Left:       left,
		Right:      right,
		FoundRange: foundRange,
		Path:       inclusionPath,
		HasPath:    hasPath,
		LeafCount:  leafCount,
		Root:       root,
		RootOK:     rootOK,
	}, nil
}
