package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// LineReader reads lines from a terminal without blocking past context cancellation.
type LineReader struct {
	reader *bufio.Reader
	mu     sync.Mutex
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

// ReadLine reads one line and trims surrounding whitespace.
// A final line without a newline is returned as-is; io.EOF is returned only when nothing was read.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInputCancelled
	}

	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		value, err := r.reader.ReadString('\n')
		if errors.Is(err, io.EOF) && value != "" {
			err = nil
		}
		resultCh <- result{value: value, err: err}
	}()

	// The read goroutine outlives a canceled context until the terminal delivers a line.
	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimSpace(res.value), nil
	}
}
