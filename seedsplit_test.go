package seedsplit

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
)

// Standard BIP-39 test vectors: all-zero and all-ones entropy at both
// supported widths.
var (
	mnemonic12Zero = strings.TrimSpace(strings.Repeat("abandon ", 11) + "about")
	mnemonic12Ones = strings.TrimSpace(strings.Repeat("zoo ", 11) + "wrong")
	mnemonic24Zero = strings.TrimSpace(strings.Repeat("abandon ", 23) + "art")
	mnemonic24Ones = strings.TrimSpace(strings.Repeat("zoo ", 23) + "vote")
)

// choose returns every k-element index subset of {0, ..., n-1}.
func choose(n, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for first := 0; first <= n-k; first++ {
		for _, rest := range choose(n-first-1, k-1) {
			subset := []int{first}
			for _, r := range rest {
				subset = append(subset, first+1+r)
			}
			out = append(out, subset)
		}
	}
	return out
}

func pick(shares []Share, indices []int) []Share {
	out := make([]Share, 0, len(indices))
	for _, i := range indices {
		out = append(out, shares[i])
	}
	return out
}

func TestRandomGeneratesValidPhrase(t *testing.T) {
	first, err := Random()
	require.NoError(t, err)
	assert.True(t, bip39.IsMnemonicValid(first))
	assert.Len(t, strings.Fields(first), 12)

	second, err := Random()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSplitCombineRoundTrip12(t *testing.T) {
	for _, mnemonic := range []string{mnemonic12Zero, mnemonic12Ones} {
		shares, err := Split(mnemonic, 2, 3)
		require.NoError(t, err)
		require.Len(t, shares, 3)
		for i, s := range shares {
			assert.Equal(t, uint8(i), s.Index)
			assert.True(t, bip39.IsMnemonicValid(s.Mnemonic), "share %d must itself be a valid phrase", i+1)
		}
		for _, subset := range choose(3, 2) {
			got, err := Combine(pick(shares, subset))
			require.NoError(t, err)
			assert.Equal(t, mnemonic, got, "subset %v must recover the phrase", subset)
		}
		got, err := Combine(shares)
		require.NoError(t, err)
		assert.Equal(t, mnemonic, got, "extra shares must not change the result")
	}
}

func TestSplitCombineRoundTrip24(t *testing.T) {
	for _, mnemonic := range []string{mnemonic24Zero, mnemonic24Ones} {
		shares, err := Split(mnemonic, 3, 5)
		require.NoError(t, err)
		require.Len(t, shares, 5)
		for _, subset := range choose(5, 3) {
			got, err := Combine(pick(shares, subset))
			require.NoError(t, err)
			assert.Equal(t, mnemonic, got, "subset %v must recover the phrase", subset)
		}
	}
}

func TestSplitRejectsInvalidArguments(t *testing.T) {
	_, err := Split(mnemonic12Zero, 3, 2)
	require.Error(t, err)
	var argErr *InvalidArgumentsError
	assert.ErrorAs(t, err, &argErr)

	_, err = Split(mnemonic12Zero, 0, 2)
	assert.Error(t, err)
}

func TestSplitRejectsInvalidMnemonic(t *testing.T) {
	_, err := Split("definitely not a seed phrase", 2, 3)
	require.Error(t, err)
	var mnErr *InvalidMnemonicError
	assert.ErrorAs(t, err, &mnErr)
}

func TestSplitEntropyPadsShortBlocks(t *testing.T) {
	short := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	shares, err := SplitEntropy(short, 2, 2)
	require.NoError(t, err)

	padded := make([]byte, Entropy128)
	copy(padded, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	want, err := bip39.NewMnemonic(padded)
	require.NoError(t, err)

	got, err := Combine(shares)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSplitEntropyRejectsUnsupportedSizes(t *testing.T) {
	for _, size := range []int{20, 24, 28, 33, 64} {
		_, err := SplitEntropy(make([]byte, size), 2, 3)
		require.Error(t, err, "size %d", size)
		var entErr *UnsupportedEntropyError
		assert.ErrorAs(t, err, &entErr, "size %d", size)
	}
}

func TestCombineRejectsInconsistentShareSizes(t *testing.T) {
	shares12, err := Split(mnemonic12Zero, 2, 2)
	require.NoError(t, err)
	shares24, err := Split(mnemonic24Zero, 2, 2)
	require.NoError(t, err)

	_, err = Combine([]Share{shares12[0], shares24[1]})
	require.Error(t, err)
	var sizeErr *InconsistentShareSizesError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, []int{Entropy128, Entropy256}, sizeErr.Sizes)
}

func TestCombineRejectsInvalidShareMnemonic(t *testing.T) {
	_, err := Combine([]Share{{Index: 0, Mnemonic: "garbage words here"}})
	require.Error(t, err)
	var mnErr *InvalidMnemonicError
	require.ErrorAs(t, err, &mnErr)
	assert.Equal(t, 1, mnErr.Share)
}

func TestCombineRejectsEmptyShareSet(t *testing.T) {
	_, err := Combine(nil)
	require.Error(t, err)
	var argErr *InvalidArgumentsError
	assert.ErrorAs(t, err, &argErr)
}

func TestParseShare(t *testing.T) {
	share, err := ParseShare("2 " + mnemonic12Zero)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), share.Index)
	assert.Equal(t, mnemonic12Zero, share.Mnemonic)

	// A trailing line break is permitted.
	share, err = ParseShare("1 " + mnemonic12Ones + "\n")
	require.NoError(t, err)
	assert.Equal(t, uint8(0), share.Index)
	assert.Equal(t, mnemonic12Ones, share.Mnemonic)
}

func TestParseShareRejectsMalformedLines(t *testing.T) {
	for _, line := range []string{
		"",
		"nospace",
		"2",
		"2 ",
		"x " + mnemonic12Zero,
		"0 " + mnemonic12Zero,
		"-1 " + mnemonic12Zero,
		"257 " + mnemonic12Zero,
	} {
		_, err := ParseShare(line)
		require.Error(t, err, "line %q", line)
		var shareErr *MalformedShareError
		assert.ErrorAs(t, err, &shareErr, "line %q", line)
	}
}

func TestShareStringRoundTrip(t *testing.T) {
	shares, err := Split(mnemonic12Ones, 2, 3)
	require.NoError(t, err)
	for i, s := range shares {
		line := s.String()
		assert.True(t, strings.HasPrefix(line, fmt.Sprintf("%d ", i+1)), line)
		parsed, err := ParseShare(line)
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
		assert.Equal(t, uint8(i), parsed.Index)
	}
}
