package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_ReadLine(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedValue string
		expectError   bool
	}{
		{name: "successful read", input: "mia\n", expectedValue: "mia"},
		{name: "extra whitespace", input: "  mia  \n", expectedValue: "mia"},
		{name: "empty line", input: "\n", expectedValue: ""},
		{name: "no trailing newline", input: "mia", expectedValue: "mia"},
		{name: "eof", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewLineReader(strings.NewReader(tt.input))
			got, err := r.ReadLine(context.Background())

			if tt.expectError {
				assert.ErrorIs(t, err, io.EOF)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedValue, got)
		})
	}
}

func TestLineReader_Cancellation(t *testing.T) {
	t.Run("already canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewLineReader(strings.NewReader("mia\n")).ReadLine(ctx)
		assert.ErrorIs(t, err, ErrInputCancelled)
	})

	t.Run("canceled while waiting", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer func() { _ = pr.Close() }()
		defer func() { _ = pw.Close() }()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := NewLineReader(pr).ReadLine(ctx)
		assert.ErrorIs(t, err, ErrInputCancelled)
	})
}

func TestLineReader_MultipleReads(t *testing.T) {
	r := NewLineReader(strings.NewReader("line1\nline2\n"))
	ctx := context.Background()

	line1, err := r.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "line1", line1)

	line2, err := r.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "line2", line2)
}
