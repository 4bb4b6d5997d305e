package merkletree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func writeGzipped(t *testing.T, name string, raw []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fp, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer fp.Close()
	gz := gzip.NewWriter(fp)
	if _, err := gz.Write(raw); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return path
}

func TestDiffRangesIdenticalFilesHaveNoDiff(t *testing.T) {
	a := writeGzipped(t, "a.bin.gz", []byte{0x90})
	b := writeGzipped(t, "b.bin.gz", []byte{0x90})

	diffs, err := DiffRanges(a, b)
	if err != nil {
		t.Fatalf("diff ranges: %v", err)
	}
	if len(diffs) != 0 {
		t.Fatalf("expected no diffs between identical bitmaps, got %v", diffs)
	}
}

func TestDiffRangesFlaggedBitDiffers(t *testing.T) {
	// a: 1001 0000 -> pushed ranges (0,1),(1,4),(4,MAX32).
	// b: 0011 0000 -> pushed ranges (0,3),(4,MAX32).
	// The two revocation patterns disagree over identifiers 1 and 3.
	a := writeGzipped(t, "a.bin.gz", []byte{0x90})
	b := writeGzipped(t, "b.bin.gz", []byte{0x30})

	diffs, err := DiffRanges(a, b)
	if err != nil {
		t.Fatalf("diff ranges: %v", err)
	}
	if len(diffs) != 2 {
		t.Fatalf("expected exactly two differing spans, got %v", diffs)
	}
	if diffs[0].Left != 1 || diffs[0].Right != 2 {
		t.Fatalf("diff span[0] = (%d, %d), want (1, 2)", diffs[0].Left, diffs[0].Right)
	}
	if diffs[1].Left != 3 || diffs[1].Right != 4 {
		t.Fatalf("diff span[1] = (%d, %d), want (3, 4)", diffs[1].Left, diffs[1].Right)
	}
}
