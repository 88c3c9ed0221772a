package seedsplit

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/fatih/color"
	"github.com/goware/prefixer"
	wordwrap "github.com/mitchellh/go-wordwrap"
)

// UserError is a well-formatted error for the purpose of being displayed to
// the end user.
type UserError interface {
	error
	UserError() string
}

var statusMatch = color.New(color.FgGreen).Sprint("OK")
var statusMismatch = color.New(color.FgRed).Sprint("MISMATCH")

// InvalidArgumentsError reports a threshold/count pair violating
// 1 <= threshold <= count, or an empty share set.
type InvalidArgumentsError struct {
	Reason string
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("invalid arguments: %s", e.Reason)
}

func (e *InvalidArgumentsError) UserError() string {
	return e.Error()
}

// MalformedShareError reports a share line that does not follow the
// "<number> <seed phrase>" wire form.
type MalformedShareError struct {
	Line   string
	Reason string
}

func (e *MalformedShareError) Error() string {
	return fmt.Sprintf("malformed share line: %s", e.Reason)
}

func (e *MalformedShareError) UserError() string {
	help := wordwrap.WrapString("A share is submitted exactly as printed by "+
		"the split command: its 1-based number, a single space, and its seed "+
		"phrase.", 75)
	return fmt.Sprintf("%s\n\n%s", e.Error(), help)
}

// InvalidMnemonicError wraps a phrase the BIP-39 codec rejected, either the
// source phrase of a split or one share's phrase during a combine.
type InvalidMnemonicError struct {
	// Share is the 1-based number of the rejected share, or 0 when the
	// source phrase itself was rejected.
	Share int
	Err   error
}

func (e *InvalidMnemonicError) Error() string {
	if e.Share > 0 {
		return fmt.Sprintf("share %d has an invalid seed phrase: %s", e.Share, e.Err)
	}
	return fmt.Sprintf("invalid seed phrase: %s", e.Err)
}

func (e *InvalidMnemonicError) UserError() string {
	help := wordwrap.WrapString("The phrase must be a BIP-39 mnemonic: a list "+
		"of words from the English wordlist with a valid checksum. Check the "+
		"words for typos, extra spaces, and missing words.", 75)
	return fmt.Sprintf("%s\n\n%s", e.Error(), help)
}

// InconsistentShareSizesError reports shares whose phrases decode to
// different entropy widths and therefore cannot belong to one sharing.
type InconsistentShareSizesError struct {
	// Indices holds the 0-based index of each submitted share, parallel
	// to Sizes.
	Indices []uint8
	// Sizes holds the decoded entropy width of each share in bytes.
	Sizes []int
}

func (e *InconsistentShareSizesError) Error() string {
	return fmt.Sprintf("shares decode to inconsistent entropy sizes: %v", e.Sizes)
}

func (e *InconsistentShareSizesError) UserError() string {
	want := e.Sizes[0]
	var lines []string
	for i, size := range e.Sizes {
		status := statusMatch
		if size != want {
			status = statusMismatch
		}
		lines = append(lines, fmt.Sprintf("Share %d: %d-bit phrase %s", int(e.Indices[i])+1, 8*size, status))
	}
	reader := prefixer.New(strings.NewReader(strings.Join(lines, "\n")), "  ")
	// Safe to ignore this error, as reading from a strings.Reader can't fail
	report, _ := ioutil.ReadAll(reader)
	trailer := wordwrap.WrapString("All shares of one split decode to the "+
		"same entropy width, 128 or 256 bits. Mixing shares from different "+
		"splits, or dropping a word so that a phrase decodes at a different "+
		"length, produces this mismatch.", 75)
	return fmt.Sprintf("submitted shares do not belong to a single sharing\n%s\n\n%s",
		string(report), trailer)
}

// UnsupportedEntropyError reports an entropy block whose width has no field
// to carry it.
type UnsupportedEntropyError struct {
	Size int
}

func (e *UnsupportedEntropyError) Error() string {
	return fmt.Sprintf("unsupported entropy size of %d bytes", e.Size)
}

func (e *UnsupportedEntropyError) UserError() string {
	help := wordwrap.WrapString("Only 12-word (128-bit) and 24-word (256-bit) "+
		"seed phrases can be split and combined.", 75)
	return fmt.Sprintf("%s\n\n%s", e.Error(), help)
}
