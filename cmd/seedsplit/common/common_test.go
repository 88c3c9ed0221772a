package common

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLineStripsLineBreaks(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("first line\r\nsecond line\n"))
	line, err := ReadLine(in)
	require.NoError(t, err)
	assert.Equal(t, "first line", line)
	line, err = ReadLine(in)
	require.NoError(t, err)
	assert.Equal(t, "second line", line)
}

func TestReadLineReturnsFinalUnterminatedLine(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("no newline at end"))
	line, err := ReadLine(in)
	require.NoError(t, err)
	assert.Equal(t, "no newline at end", line)
}

func TestReadLineFailsOnEmptyInput(t *testing.T) {
	in := bufio.NewReader(strings.NewReader(""))
	_, err := ReadLine(in)
	assert.Error(t, err)
}
