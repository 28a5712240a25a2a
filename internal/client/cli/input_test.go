package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, tty bool, pw []byte, err error) {
	t.Helper()
	oldTTY, oldRead := isTerminal, readPassword
	isTerminal = func(int) bool { return tty }
	readPassword = func(int) ([]byte, error) { return pw, err }
	t.Cleanup(func() {
		isTerminal = oldTTY
		readPassword = oldRead
	})
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("secret1"), nil)
	var out bytes.Buffer
	pw, err := GetPassword(rdr("ignored\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "secret1", string(pw))
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_TerminalError(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))
	_, err := GetPassword(rdr(""), io.Discard)
	assert.EqualError(t, err, "boom")
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))
	pw, err := GetPassword(rdr("secret1\nnext\n"), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "secret1", string(pw))
}

func TestGetPassword_PipedInputKeepsInnerWhitespace(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	pw, err := GetPassword(rdr("  pass word \r\n"), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "  pass word ", string(pw))

	pw, err = GetPassword(rdr("\ttabbed\t"), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "\ttabbed\t", string(pw), "partial line at EOF")
}
