package merkletree

import "encoding/binary"

// MaxUint32 is the sentinel boundary value used both to close the final
// range of the address space and to build the fill sentinel leaf
// (MaxUint32, MaxUint32).
const MaxUint32 = ^uint32(0)

// encodeRange serialises (left, right) to the spec's fixed 8-byte
// big-endian leaf layout: left in bytes 0..3, right in bytes 4..7.
func encodeRange(left, right uint32) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint32(buf[0:4], left)
	binary.BigEndian.PutUint32(buf[4:8], right)
	return buf
}

// fillSentinel is the reserved (MAX32, MAX32) padding leaf.
func fillSentinel() []byte {
	return encodeRange(uint32(MaxUint32), uint32(MaxUint32))
}

// RangeTarget adapts a Folder to a range-oriented interface: PushRange
// serialises (left, right) and forwards it as a single leaf push. Grounded
// on original_source/rust/src/range.rs's RangeHash, and on the Go idiom of
// a thin range-typed wrapper around a generic byte-oriented tree shown by
// HyperspaceApp-merkletree's range.go (SubtreeHasher/BuildRangeProof
// layered over a plain merkletree.Tree).
type RangeTarget[H any] struct {
	folder *Folder[H]
}

// NewRangeTarget wraps folder in a range-oriented interface.
func NewRangeTarget[H any](folder *Folder[H]) *RangeTarget[H] {
	return &RangeTarget[H]{folder: folder}
}

// PushRange serialises (left, right) to 8 bytes and pushes it as a leaf.
func (t *RangeTarget[H]) PushRange(left, right uint32) error {
	return t.folder.Push(encodeRange(left, right))
}

// Fill pads the underlying folder using the (MAX32, MAX32) sentinel.
func (t *RangeTarget[H]) Fill() error {
	return t.folder.Fill(fillSentinel())
}

// Len delegates to the folder.
func (t *RangeTarget[H]) Len() uint64 {
	return t.folder.Len()
}

// Result delegates to the folder.
func (t *RangeTarget[H]) Result() (H, bool, error) {
	return t.folder.Result()
}

// Folder exposes the wrapped folder, e.g. so a caller can reach its
// Backend() to read a path tracker's recorded path.
func (t *RangeTarget[H]) Folder() *Folder[H] {
	return t.folder
}
