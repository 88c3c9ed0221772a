package gf

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

const (
	gf256Limbs = 4

	// GF256Size is the encoded length of a GF256 element in bytes.
	GF256Size = 32

	gf256Degree = 256
)

// GF256 is an element of GF(2^256): a binary polynomial of degree below 256,
// reduced modulo z^256 + z^10 + z^5 + z^2 + 1. The zero value is the
// additive identity.
type GF256 struct {
	limbs [gf256Limbs]uint64
}

// F256 constructs and samples GF(2^256) elements.
var F256 Field[GF256] = gf256Field{}

// Add returns a + b.
func (a GF256) Add(b GF256) GF256 {
	xorInto(a.limbs[:], b.limbs[:])
	return a
}

// Sub returns a - b, which equals a + b in characteristic 2.
func (a GF256) Sub(b GF256) GF256 {
	return a.Add(b)
}

// Mul returns a * b.
func (a GF256) Mul(b GF256) GF256 {
	var hi, lo [gf256Limbs]uint64
	mulInto(hi[:], lo[:], a.limbs[:], b.limbs[:])
	reduce256(&lo, &hi)
	return GF256{limbs: lo}
}

// reduce256 is the GF256 counterpart of reduce128. Here
// z^256 = z^10 + z^5 + z^2 + 1, giving shifts {0, 2, 5, 10} and carries of
// the top 10, 5, and 2 bits of each high limb into the limb above.
func reduce256(lo, hi *[gf256Limbs]uint64) {
	for i := 0; i < gf256Limbs; i++ {
		h := hi[i]
		lo[i] ^= h ^ h<<2 ^ h<<5 ^ h<<10
		if i+1 < gf256Limbs {
			lo[i+1] ^= h>>62 ^ h>>59 ^ h>>54
		}
	}
	h := hi[gf256Limbs-1]
	top := h>>62 ^ h>>59 ^ h>>54
	lo[0] ^= top ^ top<<2 ^ top<<5 ^ top<<10
}

// Inverse returns a^-1 as a^(2^256 - 2). Inverting zero is a caller error.
func (a GF256) Inverse() GF256 {
	return invert[GF256](gf256Field{}.One(), a, gf256Degree)
}

// Equal reports whether a and b are the same element.
func (a GF256) Equal(b GF256) bool {
	return a.limbs == b.limbs
}

// Bytes encodes the element as 32 little-endian bytes.
func (a GF256) Bytes() []byte {
	out := make([]byte, GF256Size)
	for i, l := range a.limbs {
		binary.LittleEndian.PutUint64(out[8*i:], l)
	}
	return out
}

type gf256Field struct{}

func (gf256Field) Zero() GF256 {
	return GF256{}
}

func (gf256Field) One() GF256 {
	return GF256{limbs: [gf256Limbs]uint64{1}}
}

func (gf256Field) FromUint64(v uint64) GF256 {
	return GF256{limbs: [gf256Limbs]uint64{v}}
}

func (gf256Field) FromBytes(b []byte) (GF256, error) {
	if len(b) != GF256Size {
		return GF256{}, fmt.Errorf("GF256 element must be %d bytes, got %d", GF256Size, len(b))
	}
	var out GF256
	for i := range out.limbs {
		out.limbs[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
	return out, nil
}

func (gf256Field) Random() (GF256, error) {
	var buf [GF256Size]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return GF256{}, err
	}
	out, err := gf256Field{}.FromBytes(buf[:])
	for i := range buf {
		buf[i] = 0
	}
	return out, err
}

func (gf256Field) Size() int {
	return GF256Size
}
