package merkletree

import "testing"

// TestRangeParserBitString is the literal bit-string scenario of 4.5 and
// 8: the bits 1,0,0,1 should yield exactly the three ranges (0,1), (1,4),
// (4,MaxUint32).
func TestRangeParserBitString(t *testing.T) {
	collector := &rangeCollector{}
	p := NewRangeParser(collector)

	for _, bit := range []bool{true, false, false, true} {
		if err := p.ProcessBits(bit, 1); err != nil {
			t.Fatalf("process bit %v: %v", bit, err)
		}
	}
	if err := p.Complete(); err != nil {
		t.Fatalf("complete: %v", err)
	}

	want := [][2]uint32{{0, 1}, {1, 4}, {4, uint32(MaxUint32)}}
	if len(collector.ranges) != len(want) {
		t.Fatalf("got %d ranges, want %d: %v", len(collector.ranges), len(want), collector.ranges)
	}
	for i, w := range want {
		if collector.ranges[i] != w {
			t.Errorf("range[%d] = %v, want %v", i, collector.ranges[i], w)
		}
	}
}

// TestRangeParserAllNonRevoked covers the all-zero input: a single range
// spanning the whole address space.
func TestRangeParserAllNonRevoked(t *testing.T) {
	collector := &rangeCollector{}
	p := NewRangeParser(collector)

	if err := p.ProcessBits(false, 64); err != nil {
		t.Fatalf("process: %v", err)
	}
	if err := p.Complete(); err != nil {
		t.Fatalf("complete: %v", err)
	}

	want := [][2]uint32{{0, uint32(MaxUint32)}}
	if len(collector.ranges) != len(want) || collector.ranges[0] != want[0] {
		t.Fatalf("got %v, want %v", collector.ranges, want)
	}
}

// TestRangeParserAllRevoked covers the all-one input: the batched revoked
// call emits the empty leading range (0,1) and sets left to 1, the first
// index of the batch, so the closing Complete range is (1, MaxUint32).
func TestRangeParserAllRevoked(t *testing.T) {
	collector := &rangeCollector{}
	p := NewRangeParser(collector)

	if err := p.ProcessBits(true, 64); err != nil {
		t.Fatalf("process: %v", err)
	}
	if err := p.Complete(); err != nil {
		t.Fatalf("complete: %v", err)
	}

	want := [][2]uint32{{0, 1}, {1, uint32(MaxUint32)}}
	if len(collector.ranges) != len(want) {
		t.Fatalf("got %d ranges, want %d: %v", len(collector.ranges), len(want), collector.ranges)
	}
	for i, w := range want {
		if collector.ranges[i] != w {
			t.Errorf("range[%d] = %v, want %v", i, collector.ranges[i], w)
		}
	}
}
