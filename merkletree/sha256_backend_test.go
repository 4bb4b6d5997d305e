package merkletree

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"
)

// TestSHA256BackendTwoLeafVector is the literal SHA-256 vector of 8: for
// leaves be64(0) and be64(1), the root must equal
// SHA256(SHA256(be64(0)) || SHA256(be64(1))), with no domain-separation
// prefix anywhere.
func TestSHA256BackendTwoLeafVector(t *testing.T) {
	var leafA, leafB [8]byte
	binary.BigEndian.PutUint64(leafA[:], 0)
	binary.BigEndian.PutUint64(leafB[:], 1)

	digestA := sha256.Sum256(leafA[:])
	digestB := sha256.Sum256(leafB[:])
	concat := append(append([]byte{}, digestA[:]...), digestB[:]...)
	want := sha256.Sum256(concat)

	f := NewFolder[SHA256Hash](NewSHA256Backend())
	if err := f.Push(leafA[:]); err != nil {
		t.Fatalf("push a: %v", err)
	}
	if err := f.Push(leafB[:]); err != nil {
		t.Fatalf("push b: %v", err)
	}

	root, ok, err := f.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if !ok {
		t.Fatal("expected a root")
	}
	if root != SHA256Hash(want) {
		t.Fatalf("root = %x, want %x", root, want)
	}
}

func TestSHA256HashFromBytesRoundTrip(t *testing.T) {
	f := NewFolder[SHA256Hash](NewSHA256Backend())
	if err := f.Push([]byte("leaf")); err != nil {
		t.Fatalf("push: %v", err)
	}
	root, ok, err := f.Result()
	if err != nil || !ok {
		t.Fatalf("result: ok=%v err=%v", ok, err)
	}

	decoded, err := SHA256HashFromBytes(root.Bytes())
	if err != nil {
		t.Fatalf("from bytes: %v", err)
	}
	if decoded != root {
		t.Fatalf("round trip mismatch: %x != %x", decoded, root)
	}

	if _, err := SHA256HashFromBytes([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected an error decoding a short buffer")
	}
}
