package calendars

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(argv ...string) (string, error) {
	verbose = false
	buf := &bytes.Buffer{}
	Cmd.SetOut(buf)
	Cmd.SetErr(io.Discard)
	Cmd.SetArgs(argv)
	err := Cmd.Execute()
	return buf.String(), err
}

// nolint:paralleltest // the command shares package level flags
func TestCalendars(t *testing.T) {
	out, err := run()
	require.NoError(t, err)
	assert.Equal(t, "BOND (default)\nSTOCK\n", out)

	out, err = run("--verbose")
	require.NoError(t, err)
	assert.Equal(t, "BOND (default)\tAmerica/New_York\t08:00:00-17:00:00\n"+
		"STOCK\tAmerica/New_York\t09:30:00-16:00:00\n", out)

	_, err = run("extra")
	assert.Error(t, err)
}
