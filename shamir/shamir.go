/*
Package shamir implements Shamir's Secret Sharing over the binary fields in
package gf.

A secret element is hidden as the constant term of a random polynomial of
degree threshold-1. Each share is the polynomial's evaluation at a fixed
non-zero point derived from the share's index. Any threshold evaluations
determine the polynomial, and with it the secret, by Lagrange interpolation
at zero; fewer evaluations are consistent with every possible secret.
*/
package shamir

import (
	"fmt"

	"github.com/seedtools/seedsplit/gf"
)

// MaxShares is the largest number of shares a secret can be split into.
const MaxShares = 255

// Index is the 0-based position of a share within a sharing. Displayed
// share numbers are 1-based; the field point a share is evaluated at is the
// integer embedding of index+1.
type Index uint8

// point returns the field element the share with this index is evaluated
// at. Zero is never a share point: evaluating there would hand out the
// secret itself.
func point[E gf.Element[E]](f gf.Field[E], i Index) E {
	return f.FromUint64(uint64(i) + 1)
}

// Share pairs a share's index with the polynomial evaluation at its point.
type Share[E gf.Element[E]] struct {
	Index Index
	Value E
}

// Config fixes how many shares a secret is split into and how many of them
// are needed to recover it.
type Config struct {
	Threshold uint8
	Count     uint8
}

// Validate checks that 1 <= Threshold <= Count.
func (c Config) Validate() error {
	if c.Threshold < 1 {
		return fmt.Errorf("threshold must be at least 1")
	}
	if c.Threshold > c.Count {
		return fmt.Errorf("threshold %d cannot exceed the share count %d", c.Threshold, c.Count)
	}
	return nil
}

// polynomial represents a polynomial of arbitrary degree with coefficients
// in one of the binary fields, lowest order first.
type polynomial[E gf.Element[E]] struct {
	coefficients []E
}

// makePolynomial constructs a random polynomial of the given degree but
// with the provided intercept value.
func makePolynomial[E gf.Element[E]](f gf.Field[E], intercept E, degree int) (polynomial[E], error) {
	p := polynomial[E]{
		coefficients: make([]E, degree+1),
	}

	// Ensure the intercept is set
	p.coefficients[0] = intercept

	// The remaining coefficients are drawn independently from the
	// field's uniform distribution.
	for i := 1; i <= degree; i++ {
		c, err := f.Random()
		if err != nil {
			return p, err
		}
		p.coefficients[i] = c
	}
	return p, nil
}

// evaluate returns the value of the polynomial for the given point, using
// Horner's method <https://en.wikipedia.org/wiki/Horner%27s_method>.
func (p polynomial[E]) evaluate(at E) E {
	degree := len(p.coefficients) - 1
	out := p.coefficients[degree]
	for i := degree - 1; i >= 0; i-- {
		out = out.Mul(at).Add(p.coefficients[i])
	}
	return out
}

// wipe clears the coefficient vector. The low coefficient is the secret and
// the others could be combined with shares to recover it, so none of them
// outlive the split.
func (p polynomial[E]) wipe(f gf.Field[E]) {
	for i := range p.coefficients {
		p.coefficients[i] = f.Zero()
	}
}

// Split hides secret as the constant term of a fresh random polynomial of
// degree c.Threshold-1 and evaluates it at the first c.Count share points.
// The shares come back in index order; any c.Threshold of them determine
// the secret uniquely.
func Split[E gf.Element[E]](f gf.Field[E], secret E, c Config) ([]Share[E], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	poly, err := makePolynomial(f, secret, int(c.Threshold)-1)
	if err != nil {
		return nil, err
	}
	defer poly.wipe(f)

	out := make([]Share[E], 0, c.Count)
	for i := 0; i < int(c.Count); i++ {
		idx := Index(i)
		out = append(out, Share[E]{
			Index: idx,
			Value: poly.evaluate(point(f, idx)),
		})
	}
	return out, nil
}

// Combine recovers the secret from a set of shares as the interpolation of
// their points at zero:
//
//	secret = sum_j y_j * prod_{i != j} a_i * (a_i - a_j)^-1
//
// The order of the shares does not affect the result, and supplying more
// shares than the sharing's threshold still recovers the secret. Two
// preconditions are the caller's burden: indices must be distinct (a
// repeated index puts zero in a denominator and the result means nothing),
// and at least threshold shares must be present (fewer yield a well-formed
// element unrelated to the secret, with no indication of failure).
func Combine[E gf.Element[E]](f gf.Field[E], shares []Share[E]) E {
	points := make([]E, len(shares))
	for i, s := range shares {
		points[i] = point(f, s.Index)
	}
	out := f.Zero()
	for j, s := range shares {
		out = out.Add(s.Value.Mul(lagrangeCoefficient(f, points, j)))
	}
	return out
}

// lagrangeCoefficient is the weight of the j-th share in the interpolation
// at zero <https://en.wikipedia.org/wiki/Lagrange_polynomial>.
func lagrangeCoefficient[E gf.Element[E]](f gf.Field[E], points []E, j int) E {
	top := f.One()
	bottom := f.One()
	for i, a := range points {
		if i == j {
			continue
		}
		top = top.Mul(a)
		bottom = bottom.Mul(a.Sub(points[j]))
	}
	return top.Mul(bottom.Inverse())
}
