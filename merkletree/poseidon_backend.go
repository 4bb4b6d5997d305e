package merkletree

import (
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/poseidon2"
)

// PoseidonHash is the field-element hash value produced by
// PoseidonBackend, satisfying the Hash value contract of 3 via its
// canonical 32-byte big-endian encoding.
type PoseidonHash struct {
	elem fr.Element
}

// Bytes returns the canonical 32-byte big-endian encoding of the field
// element.
func (h PoseidonHash) Bytes() []byte {
	b := h.elem.Bytes()
	return b[:]
}

// PoseidonHashFromBytes decodes a value previously produced by Bytes, for
// use as the fromBytes argument to Folder.Restore.
func PoseidonHashFromBytes(b []byte) (PoseidonHash, error) {
	var h PoseidonHash
	h.elem.SetBytes(b)
	return h, nil
}

// PoseidonBackend is the algebraic backend of 4.1: the 8-byte leaf is
// interpreted as a big-endian uint64 lifted into the BN254 scalar field,
// and fold is a 2-to-1 Poseidon2 hash. Grounded on
// other_examples/.../MuriData-muri-zkproof's HashNodes (canonical
// fr.Element encoding fed through poseidon2.NewMerkleDamgardHasher, a
// fresh sponge per call) — consensys/gnark-crypto is the pack's only
// Poseidon implementation with located usage code, so it stands in for
// the Rust original's neptune/BLS12-381 Poseidon (examples/brt-phash.rs),
// generalised to the curve and library this corpus actually exercises.
type PoseidonBackend struct{}

// NewPoseidonBackend constructs the algebraic backend.
func NewPoseidonBackend() *PoseidonBackend {
	return &PoseidonBackend{}
}

func (b *PoseidonBackend) Input(leaf []byte) (PoseidonHash, error) {
	var h PoseidonHash
	if len(leaf) != 8 {
		return h, unexpectedErrorf("poseidon backend: leaf must be 8 bytes, got %d", len(leaf))
	}
	h.elem.SetUint64(binary.BigEndian.Uint64(leaf))
	return h, nil
}

func (b *PoseidonBackend) Fold(a, c PoseidonHash) (PoseidonHash, error) {
	sponge := poseidon2.NewMerkleDamgardHasher()
	aBytes := a.elem.Bytes()
	cBytes := c.elem.Bytes()
	sponge.Write(aBytes[:])
	sponge.Write(cBytes[:])
	sum := sponge.Sum(nil)

	var out PoseidonHash
	out.elem.SetBytes(sum)
	return out, nil
}

func (b *PoseidonBackend) StartFill() {}
func (b *PoseidonBackend) EndFill()   {}
