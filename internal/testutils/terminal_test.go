package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_RecordsWritesAndFlushes(t *testing.T) {
	term := &Terminal{}

	_, err := term.Write([]byte("one"))
	require.NoError(t, err)
	require.NoError(t, term.Flush())
	_, err = term.Write([]byte("two"))
	require.NoError(t, err)

	assert.Equal(t, "onetwo", term.Output())
	assert.Equal(t, []string{"one", "two"}, term.Writes())
	assert.Equal(t, 1, term.Flushes())
}

func TestTerminal_FailWrites(t *testing.T) {
	term := &Terminal{}
	term.FailWrites(1)

	_, err := term.Write([]byte("lost"))
	assert.ErrorIs(t, err, ErrBrokenPipe)

	_, err = term.Write([]byte("kept"))
	assert.NoError(t, err)
	assert.Equal(t, "kept", term.Output())
}

func TestReplay(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []string
	}{
		{"plain", "10%", []string{"10%"}},
		{"overwrite single line", "100%\r\x1b[0J20%", []string{"20%"}},
		{"shrink multi line", "a\nb\nc\x1b[2F\x1b[0Jx", []string{"x"}},
		{"grow", "x\r\x1b[0Ja\nb", []string{"a", "b"}},
		{"erase everything", "a\nb\x1b[1F\x1b[0J", nil},
		{"keeps earlier content", "log line\nstatus\r\x1b[0J", []string{"log line"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Replay(tt.out))
		})
	}
}
