package interaction

import (
	"context"
	"errors"
	"io"
	"net/netip"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCustomNonEmpty(t *testing.T) {
	t.Run("first attempt", func(t *testing.T) {
		p, out := newTestPrompter("42\n")
		got, err := ReadCustomNonEmpty(context.Background(), p, "Age", strconv.Atoi)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, "Age: ", out.String())
	})

	t.Run("retry on parse failure", func(t *testing.T) {
		p, out := newTestPrompter("abc\n7\n")
		got, err := ReadCustomNonEmpty(context.Background(), p, "Age", strconv.Atoi)
		require.NoError(t, err)
		assert.Equal(t, 7, got)
		// the retry explanation carries the parser's own message
		assert.Contains(t, out.String(), `"abc" is not valid`)
		assert.Contains(t, out.String(), "invalid syntax")
	})

	t.Run("retry on empty line", func(t *testing.T) {
		p, out := newTestPrompter("\n5\n")
		got, err := ReadCustomNonEmpty(context.Background(), p, "Age", strconv.Atoi)
		require.NoError(t, err)
		assert.Equal(t, 5, got)
		assert.Contains(t, out.String(), "input must not be empty")
	})

	t.Run("end of input mid-loop", func(t *testing.T) {
		p, _ := newTestPrompter("abc\n")
		_, err := ReadCustomNonEmpty(context.Background(), p, "Age", strconv.Atoi)
		require.Error(t, err)
		assert.True(t, errors.Is(err, io.EOF))
	})
}

func TestReadText(t *testing.T) {
	var addr netip.Addr
	p, out := newTestPrompter("not-an-ip\n192.168.0.1\n")
	err := ReadText(context.Background(), p, "Bind address", &addr)
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.1", addr.String())
	assert.Contains(t, out.String(), `"not-an-ip" is not valid`)
}

func TestReadInt(t *testing.T) {
	p, _ := newTestPrompter("1024\n")
	got, err := p.ReadInt(context.Background(), "Port")
	require.NoError(t, err)
	assert.Equal(t, 1024, got)
}

func TestReadDuration(t *testing.T) {
	p, out := newTestPrompter("soon\n1h30m\n")
	got, err := p.ReadDuration(context.Background(), "Timeout")
	require.NoError(t, err)
	assert.Equal(t, "1h30m0s", got.String())
	assert.Contains(t, out.String(), `"soon" is not valid`)
}
