package runner

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineSource_CloseStopsPump(t *testing.T) {
	l := newLineSource(strings.NewReader("tap 0 0\nshow\nquit\n"))

	line, err := l.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tap 0 0\n", line)

	// The pump now holds "show" with nobody reading.
	require.NoError(t, l.Close())
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-l.lines:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	_, err = l.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.NoError(t, l.Close())
}
