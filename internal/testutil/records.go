// Package testutil provides fixtures shared by vectorkit package tests.
package testutil

import (
	"github.com/joshuapare/vectorkit/internal/buf"
)

// I32Size is the slot size used by int32 record fixtures.
const I32Size = 4

// I32 encodes n as a 4-byte little-endian record.
func I32(n int32) []byte {
	b := make([]byte, I32Size)
	buf.PutI32LE(b, n)
	return b
}

// DecodeI32s splits back-to-back 4-byte records into values.
// Trailing bytes that do not form a whole record are ignored.
//
// Example:
//
//	require.Equal(t, []int32{1, 2, 3}, testutil.DecodeI32s(v.Bytes()))
func DecodeI32s(b []byte) []int32 {
	out := make([]int32, 0, len(b)/I32Size)
	for off := 0; off+I32Size <= len(b); off += I32Size {
		out = append(out, buf.I32LE(b[off:]))
	}
	return out
}
