package service

import (
	"crypto/sha256"
	"encoding/binary"
)

// randSource expands a 32-byte seed into an unbounded, reproducible
// stream of pseudo-random values via counter-based hashing: the n-th
// draw is the first 8 bytes of SHA-256(seed || n). There is no hidden
// mutable state beyond the draw counter, no dependency on wall-clock
// time, and independent sources never interfere with each other, so
// every masker is reproducible regardless of what other maskers drew
// for the same subject.
type randSource struct {
	seed    []byte
	counter uint64
}

func newRandSource(seed []byte) *randSource {
	return &randSource{seed: seed}
}

// Uint64 returns the next draw.
func (r *randSource) Uint64() uint64 {
	h := sha256.New()
	h.Write(r.seed)

	counterBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(counterBytes, r.counter)
	h.Write(counterBytes)
	r.counter++

	return binary.BigEndian.Uint64(h.Sum(nil)[:8])
}

// IntN returns a draw reduced to [0, n). n must be positive. The modulo
// bias is negligible against 64-bit draws for dictionary-sized n.
func (r *randSource) IntN(n int) int {
	return int(r.Uint64() % uint64(n))
}

// Digit returns a single decimal digit as one draw.
func (r *randSource) Digit() byte {
	return byte('0' + r.IntN(10))
}

// Bytes fills a slice of length n, consuming one draw per 8 bytes.
func (r *randSource) Bytes(n int) []byte {
	out := make([]byte, 0, n)
	for len(out) < n {
		chunk := make([]byte, 8)
		binary.BigEndian.PutUint64(chunk, r.Uint64())
		out = append(out, chunk...)
	}
	return out[:n]
}
