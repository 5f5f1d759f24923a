package runner

import (
	"bufio"
	"context"
	"io"
	"sync"
)

type lineResult struct {
	text string
	err  error
}

// lineSource reads lines on a background goroutine so a blocked read never
// prevents the caller from observing context cancellation.
// Close releases the goroutine.
type lineSource struct {
	reader *bufio.Reader
	lines  chan lineResult
	once   sync.Once

	done      chan struct{}
	closeOnce sync.Once
}

func newLineSource(r io.Reader) *lineSource {
	return &lineSource{reader: bufio.NewReader(r), done: make(chan struct{})}
}

// Close stops the reader goroutine once its current read returns.
// Next reports io.EOF afterwards.
func (l *lineSource) Close() error {
	l.closeOnce.Do(func() { close(l.done) })
	return nil
}

func (l *lineSource) send(res lineResult) bool {
	select {
	case l.lines <- res:
		return true
	case <-l.done:
		return false
	}
}

func (l *lineSource) pump() {
	defer close(l.lines)
	for {
		text, err := l.reader.ReadString('\n')
		if text != "" && !l.send(lineResult{text: text}) {
			return
		}
		if err != nil {
			if err != io.EOF {
				l.send(lineResult{err: err})
			}
			return
		}
	}
}

// Next returns the next line, io.EOF at the end of input, or ctx.Err().
func (l *lineSource) Next(ctx context.Context) (string, error) {
	select {
	case <-l.done:
		return "", io.EOF
	default:
	}

	l.once.Do(func() {
		l.lines = make(chan lineResult)
		go l.pump()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-l.done:
		return "", io.EOF
	case res, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}
