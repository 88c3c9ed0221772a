package gf

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

const (
	gf128Limbs = 2

	// GF128Size is the encoded length of a GF128 element in bytes.
	GF128Size = 16

	// gf128Degree is the extension degree of the field.
	gf128Degree = 128
)

// GF128 is an element of GF(2^128): a binary polynomial of degree below 128,
// reduced modulo z^128 + z^7 + z^2 + z + 1. The zero value is the additive
// identity.
type GF128 struct {
	limbs [gf128Limbs]uint64
}

// F128 constructs and samples GF(2^128) elements.
var F128 Field[GF128] = gf128Field{}

// Add returns a + b.
func (a GF128) Add(b GF128) GF128 {
	xorInto(a.limbs[:], b.limbs[:])
	return a
}

// Sub returns a - b. In characteristic 2 every element is its own negation,
// so subtraction is addition.
func (a GF128) Sub(b GF128) GF128 {
	return a.Add(b)
}

// Mul returns a * b: the unreduced polynomial product folded back under the
// modulus.
func (a GF128) Mul(b GF128) GF128 {
	var hi, lo [gf128Limbs]uint64
	mulInto(hi[:], lo[:], a.limbs[:], b.limbs[:])
	reduce128(&lo, &hi)
	return GF128{limbs: lo}
}

// reduce128 folds the high half of a 256-bit product into lo. Under the
// modulus, z^128 = z^7 + z^2 + z + 1, so each high limb contributes XORed
// copies of itself at shifts {0, 1, 2, 7} one modulus degree lower, with
// the bits shifted past a limb boundary carried into the next limb up.
func reduce128(lo, hi *[gf128Limbs]uint64) {
	for i := 0; i < gf128Limbs; i++ {
		h := hi[i]
		lo[i] ^= h ^ h<<1 ^ h<<2 ^ h<<7
		if i+1 < gf128Limbs {
			lo[i+1] ^= h>>63 ^ h>>62 ^ h>>57
		}
	}
	// The top limb's carry-out lands back above degree 127 and must go
	// through the modulus once more. The modulus is sparse, so this
	// second fold stays inside limb 0 and one pass settles it.
	h := hi[gf128Limbs-1]
	top := h>>63 ^ h>>62 ^ h>>57
	lo[0] ^= top ^ top<<1 ^ top<<2 ^ top<<7
}

// Inverse returns a^-1 as a^(2^128 - 2). The inverse of zero is undefined;
// callers on the reconstruction path guarantee non-zero denominators by
// keeping share indices distinct.
func (a GF128) Inverse() GF128 {
	return invert[GF128](gf128Field{}.One(), a, gf128Degree)
}

// Equal reports whether a and b are the same element. Representations are
// canonical, so this is bitwise comparison.
func (a GF128) Equal(b GF128) bool {
	return a.limbs == b.limbs
}

// Bytes encodes the element as 16 little-endian bytes.
func (a GF128) Bytes() []byte {
	out := make([]byte, GF128Size)
	for i, l := range a.limbs {
		binary.LittleEndian.PutUint64(out[8*i:], l)
	}
	return out
}

type gf128Field struct{}

func (gf128Field) Zero() GF128 {
	return GF128{}
}

func (gf128Field) One() GF128 {
	return GF128{limbs: [gf128Limbs]uint64{1}}
}

func (gf128Field) FromUint64(v uint64) GF128 {
	return GF128{limbs: [gf128Limbs]uint64{v}}
}

func (gf128Field) FromBytes(b []byte) (GF128, error) {
	if len(b) != GF128Size {
		return GF128{}, fmt.Errorf("GF128 element must be %d bytes, got %d", GF128Size, len(b))
	}
	var out GF128
	for i := range out.limbs {
		out.limbs[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
	return out, nil
}

func (gf128Field) Random() (GF128, error) {
	var buf [GF128Size]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return GF128{}, err
	}
	out, err := gf128Field{}.FromBytes(buf[:])
	for i := range buf {
		buf[i] = 0
	}
	return out, err
}

func (gf128Field) Size() int {
	return GF128Size
}
