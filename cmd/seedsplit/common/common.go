// Package common defines helper functions shared by the seedsplit
// subcommands.
package common

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Prompt writes msg to stderr when standard input is an interactive
// terminal. Piped input stays silent, so prompts never end up interleaved
// with output that is being captured or redirected.
func Prompt(msg string) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, msg)
	}
}

// ReadLine reads one line from in, without its trailing line break. A final
// line that ends at EOF without a line break is still returned; an empty
// read at EOF or any other read failure is an error.
func ReadLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrap(err, "could not read from standard input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
