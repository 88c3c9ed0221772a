/*
Package seedsplit splits BIP-39 seed phrases into threshold shares that are
themselves BIP-39 phrases.

A phrase's entropy block becomes an element of one of two binary fields
(GF(2^128) for 12-word phrases, GF(2^256) for 24-word phrases). The element
is shared with Shamir's scheme, and each share's evaluation is encoded back
into a phrase of the same length, prefixed with its 1-based share number.
Any threshold shares recombine to the original phrase; fewer reveal nothing
about it.
*/
package seedsplit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tyler-smith/go-bip39"

	"github.com/seedtools/seedsplit/gf"
	"github.com/seedtools/seedsplit/logging"
	"github.com/seedtools/seedsplit/shamir"
)

var log *logrus.Logger

func init() {
	log = logging.NewLogger("SEEDSPLIT")
}

const (
	// Entropy128 is the byte width of 12-word seed phrases.
	Entropy128 = 16
	// Entropy256 is the byte width of 24-word seed phrases.
	Entropy256 = 32
)

// Share is one piece of a split seed phrase: a 0-based index and the phrase
// encoding the sharing polynomial's evaluation at that index's point.
type Share struct {
	Index    uint8
	Mnemonic string
}

// String renders the share in its wire form: the 1-based decimal share
// number, a single space, and the phrase.
func (s Share) String() string {
	return fmt.Sprintf("%d %s", int(s.Index)+1, s.Mnemonic)
}

// ParseShare parses the wire form produced by String. The number must be
// decimal and between 1 and 256; everything after the first space is the
// phrase, which is validated later when the share is combined.
func ParseShare(line string) (Share, error) {
	line = strings.TrimRight(line, "\r\n")
	number, mnemonic, found := strings.Cut(line, " ")
	if !found || mnemonic == "" {
		return Share{}, &MalformedShareError{Line: line, Reason: "expected \"<number> <seed phrase>\""}
	}
	n, err := strconv.ParseUint(number, 10, 16)
	if err != nil {
		return Share{}, &MalformedShareError{Line: line, Reason: fmt.Sprintf("share number %q is not a decimal number", number)}
	}
	if n < 1 || n > 256 {
		return Share{}, &MalformedShareError{Line: line, Reason: fmt.Sprintf("share number %d is out of range", n)}
	}
	return Share{Index: uint8(n - 1), Mnemonic: mnemonic}, nil
}

// Random generates a fresh 12-word seed phrase from the system entropy
// source.
func Random() (string, error) {
	entropy, err := bip39.NewEntropy(8 * Entropy128)
	if err != nil {
		return "", errors.Wrap(err, "gathering entropy")
	}
	defer wipe(entropy)
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "encoding seed phrase")
	}
	return mnemonic, nil
}

// Split splits a seed phrase into count shares, any threshold of which
// recover it through Combine.
func Split(mnemonic string, threshold, count uint8) ([]Share, error) {
	entropy, err := bip39.EntropyFromMnemonic(strings.TrimSpace(mnemonic))
	if err != nil {
		return nil, &InvalidMnemonicError{Err: err}
	}
	defer wipe(entropy)
	return SplitEntropy(entropy, threshold, count)
}

// SplitEntropy splits a raw entropy block. 16-byte blocks are shared in
// GF(2^128) and 32-byte blocks in GF(2^256). Blocks shorter than 16 bytes
// are right-padded with zeros to the 128-bit width, a behavior kept for
// inputs produced by older tooling; every other width is rejected.
func SplitEntropy(entropy []byte, threshold, count uint8) ([]Share, error) {
	cfg := shamir.Config{Threshold: threshold, Count: count}
	if err := cfg.Validate(); err != nil {
		return nil, &InvalidArgumentsError{Reason: err.Error()}
	}
	if len(entropy) < Entropy128 {
		padded := make([]byte, Entropy128)
		copy(padded, entropy)
		defer wipe(padded)
		entropy = padded
	}
	log.WithFields(logrus.Fields{
		"threshold": threshold,
		"count":     count,
		"bits":      8 * len(entropy),
	}).Info("Splitting seed entropy")
	switch len(entropy) {
	case Entropy128:
		return splitElement(gf.F128, entropy, cfg)
	case Entropy256:
		return splitElement(gf.F256, entropy, cfg)
	default:
		return nil, &UnsupportedEntropyError{Size: len(entropy)}
	}
}

// Combine recovers the original seed phrase from a set of shares. All
// shares must decode to the same entropy width; indices must be distinct
// and at least as many shares must be given as the threshold chosen at
// split time. The last two conditions cannot be checked here: shares carry
// no record of their sharing, so too few shares or a repeated index
// reconstruct a well-formed but unrelated phrase.
func Combine(shares []Share) (string, error) {
	if len(shares) == 0 {
		return "", &InvalidArgumentsError{Reason: "at least one share is required"}
	}
	entropies := make([][]byte, 0, len(shares))
	defer func() {
		for _, e := range entropies {
			wipe(e)
		}
	}()
	sizes := make([]int, len(shares))
	indices := make([]uint8, len(shares))
	mismatch := false
	for i, s := range shares {
		entropy, err := bip39.EntropyFromMnemonic(s.Mnemonic)
		if err != nil {
			return "", &InvalidMnemonicError{Share: int(s.Index) + 1, Err: err}
		}
		entropies = append(entropies, entropy)
		sizes[i] = len(entropy)
		indices[i] = s.Index
		if sizes[i] != sizes[0] {
			mismatch = true
		}
	}
	if mismatch {
		return "", &InconsistentShareSizesError{Indices: indices, Sizes: sizes}
	}
	log.WithField("shares", len(shares)).Info("Reconstructing seed entropy")
	switch sizes[0] {
	case Entropy128:
		return combineElement(gf.F128, shares, entropies)
	case Entropy256:
		return combineElement(gf.F256, shares, entropies)
	default:
		return "", &UnsupportedEntropyError{Size: sizes[0]}
	}
}

func splitElement[E gf.Element[E]](f gf.Field[E], entropy []byte, cfg shamir.Config) ([]Share, error) {
	secret, err := f.FromBytes(entropy)
	if err != nil {
		return nil, err
	}
	pieces, err := shamir.Split(f, secret, cfg)
	if err != nil {
		return nil, err
	}
	out := make([]Share, 0, len(pieces))
	for _, p := range pieces {
		b := p.Value.Bytes()
		mnemonic, err := bip39.NewMnemonic(b)
		wipe(b)
		if err != nil {
			return nil, errors.Wrap(err, "encoding share")
		}
		out = append(out, Share{Index: uint8(p.Index), Mnemonic: mnemonic})
	}
	return out, nil
}

func combineElement[E gf.Element[E]](f gf.Field[E], shares []Share, entropies [][]byte) (string, error) {
	pieces := make([]shamir.Share[E], len(shares))
	for i := range shares {
		value, err := f.FromBytes(entropies[i])
		if err != nil {
			return "", err
		}
		pieces[i] = shamir.Share[E]{Index: shamir.Index(shares[i].Index), Value: value}
	}
	secret := shamir.Combine(f, pieces)
	b := secret.Bytes()
	defer wipe(b)
	mnemonic, err := bip39.NewMnemonic(b)
	if err != nil {
		return "", errors.Wrap(err, "encoding reconstructed seed phrase")
	}
	return mnemonic, nil
}

// wipe zeroes a secret-bearing buffer once it is no longer needed.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
