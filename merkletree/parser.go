package merkletree

// RangePusher is the target a RangeParser emits ranges into: a plain
// RangeTarget when only a root is needed, or a RangePathTracker when an
// inclusion path is being recorded alongside it (4.8's composition).
type RangePusher interface {
	PushRange(left, right uint32) error
}

// RangeParser implements the bit-to-range state machine of 4.5: it
// consumes a sequence of bits, one per identifier starting at index 1,
// and emits maximal (left, right) non-revoked ranges to a RangePusher.
// Grounded on original_source/rust/src/range.rs's RangeParser, with
// bit_idx initialised to 1 rather than 0 per the commitment-format choice
// documented in 9 (the 1-based variant is the one the path-tracker
// example in 8 depends on).
type RangeParser struct {
	left   uint32
	inRev  bool
	bitIdx uint32
	target RangePusher
}

// NewRangeParser constructs a parser in its initial state (left=0,
// in_rev=false, bit_idx=1) over the given target.
func NewRangeParser(target RangePusher) *RangeParser {
	return &RangeParser{bitIdx: 1, target: target}
}

// ProcessBits advances the parser by count identifier positions, all of
// the same revocation status. A fast path for a run of 64 identical bits
// (an all-0 or all-1 64-bit word) calls this once with count=64 instead
// of 64 times with count=1. For a revoked batch, left is set once, to the
// batch's first index, so the range emitted after it starts there rather
// than at the batch's last index as 64 single-bit calls would give.
func (p *RangeParser) ProcessBits(revoked bool, count uint32) error {
	if revoked {
		if !p.inRev {
			if err := p.target.PushRange(p.left, p.bitIdx); err != nil {
				return err
			}
			p.inRev = true
		}
		p.left = p.bitIdx
	} else {
		p.inRev = false
	}
	p.bitIdx += count
	return nil
}

// Complete emits the final range covering the tail of the address space.
func (p *RangeParser) Complete() error {
	return p.target.PushRange(p.left, uint32(MaxUint32))
}
