package merkletree

// Folder is the online Merkle tree builder of 4.2: it accepts leaves one
// at a time and keeps only the right spine of the partial tree — one
// stack entry per set bit of the running leaf count — merging
// equal-height roots as soon as they become adjacent. Grounded on
// original_source/rust/src/tree.rs's TreeFolder, expressed with Go's
// explicit receiver mutation in place of Rust's owned self-chaining, and
// in the spirit of the teacher's peaksAccumulator (a stack of
// not-yet-merged subtree roots threaded through a single owner) and of
// NebulousLabs-merkletree's Tree (a height-ordered stack merged on Push
// and drained on Root).
type Folder[H any] struct {
	backend   Backend[H]
	stack     []H
	leafCount uint64
}

// NewFolder constructs an empty folder over the given backend.
func NewFolder[H any](backend Backend[H]) *Folder[H] {
	return &Folder[H]{backend: backend}
}

// Push appends one real leaf, folding with the stack top for as long as
// the next leaf count's low bits are zero (amortized O(1) folds, worst
// case O(log leaf_count)).
func (f *Folder[H]) Push(leaf []byte) error {
	h, err := f.backend.Input(leaf)
	if err != nil {
		return unexpectedErrorf("folder: input leaf: %w", err)
	}
	b := f.leafCount + 1
	for b&1 == 0 {
		top := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]
		h, err = f.backend.Fold(top, h)
		if err != nil {
			return unexpectedErrorf("folder: fold: %w", err)
		}
		b >>= 1
	}
	f.stack = append(f.stack, h)
	f.leafCount++
	return nil
}

// Extend pushes every leaf in order.
func (f *Folder[H]) Extend(leaves [][]byte) error {
	for _, leaf := range leaves {
		if err := f.Push(leaf); err != nil {
			return err
		}
	}
	return nil
}

// Fill pads the folder to the next power of two using sentinel as the
// virtual leaf for every synthesised position, in O(log leaf_count)
// backend calls, per the cached-subtree algorithm of 4.3.
func (f *Folder[H]) Fill(sentinel []byte) error {
	var fillCache []H
	filler := func(depth int) (H, error) {
		d := len(fillCache)
		if d > depth {
			return fillCache[depth], nil
		}
		var h H
		var err error
		if d == 0 {
			h, err = f.backend.Input(sentinel)
		} else {
			prev := fillCache[d-1]
			h, err = f.backend.Fold(prev, prev)
		}
		if err != nil {
			var zero H
			return zero, unexpectedErrorf("folder: fill cache: %w", err)
		}
		for {
			fillCache = append(fillCache, h)
			d++
			if d > depth {
				break
			}
			h, err = f.backend.Fold(h, h)
			if err != nil {
				var zero H
				return zero, unexpectedErrorf("folder: fill cache: %w", err)
			}
		}
		return h, nil
	}

	leafCount := f.leafCount
	fillSize := nextPowerOfTwo(leafCount)
	fillCount := fillSize - leafCount
	fillDepth := 0
	leafCountFilled := leafCount

	for fillCount > 0 {
		if fillCount&1 != 0 {
			f.backend.StartFill()
			h, err := filler(fillDepth)
			if err != nil {
				f.backend.EndFill()
				return err
			}
			f.backend.EndFill()
			leafCountFilled += 1 << uint(fillDepth)

			b := leafCountFilled
			c := 0
			for b&1 == 0 {
				b >>= 1
				c++
			}
			c -= fillDepth

			for c > 0 {
				top := f.stack[len(f.stack)-1]
				f.stack = f.stack[:len(f.stack)-1]
				h, err = f.backend.Fold(top, h)
				if err != nil {
					return unexpectedErrorf("folder: fill merge: %w", err)
				}
				c--
			}
			f.stack = append(f.stack, h)
		}
		fillDepth++
		fillCount >>= 1
	}
	f.leafCount = leafCountFilled
	return nil
}

// Result drains the stack, folding right-to-bottom, and returns the root.
// ok is false if no leaf was ever pushed. Result does not consume the
// stack in place (it folds over a local copy of the slice header), so
// calling Result again after Fill/Push without further mutation is
// idempotent — exercised directly by the idempotent-result property.
func (f *Folder[H]) Result() (root H, ok bool, err error) {
	if len(f.stack) == 0 {
		return root, false, nil
	}
	stack := f.stack
	root = stack[len(stack)-1]
	for i := len(stack) - 2; i >= 0; i-- {
		root, err = f.backend.Fold(stack[i], root)
		if err != nil {
			return root, false, unexpectedErrorf("folder: result fold: %w", err)
		}
	}
	return root, true, nil
}

// Len returns the leaf count, including any synthesised by Fill.
func (f *Folder[H]) Len() uint64 {
	return f.leafCount
}

// UpdateBase lets a caller mutate the backend between pushes, e.g. the
// path tracker re-targeting the leaf it follows via TrackNext.
func (f *Folder[H]) UpdateBase(fn func(Backend[H])) {
	fn(f.backend)
}

// Backend exposes the wrapped backend, e.g. so a caller can type-assert
// it back to a *PathTracker[H] to read out the recorded path.
func (f *Folder[H]) Backend() Backend[H] {
	return f.backend
}

func nextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
