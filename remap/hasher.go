package remap

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash is a 64-bit content fingerprint.
type Hash = uint64

// Hasher builds a fingerprint by streaming typed fields in a fixed
// order. Field order is part of the fingerprint contract: two values
// hash equal only if the same fields were fed in the same order.
type Hasher struct {
	d       *xxhash.Digest
	scratch [8]byte
}

func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

func (h *Hasher) Data(b []byte) {
	h.d.Write(b)
}

func (h *Hasher) U32(v uint32) {
	binary.LittleEndian.PutUint32(h.scratch[:4], v)
	h.d.Write(h.scratch[:4])
}

func (h *Hasher) S32(v int32) {
	h.U32(uint32(v))
}

func (h *Hasher) U64(v uint64) {
	binary.LittleEndian.PutUint64(h.scratch[:8], v)
	h.d.Write(h.scratch[:8])
}

func (h *Hasher) F32(v float32) {
	h.U32(math.Float32bits(v))
}

func (h *Hasher) Bool(v bool) {
	if v {
		h.U32(1)
	} else {
		h.U32(0)
	}
}

// Str feeds a length-prefixed string, so consecutive strings cannot
// alias each other's bytes.
func (h *Hasher) Str(s string) {
	h.U32(uint32(len(s)))
	h.d.WriteString(s)
}

func (h *Hasher) Sum() Hash {
	return h.d.Sum64()
}
