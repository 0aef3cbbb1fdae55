package framing

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Next(t *testing.T) {
	t.Run("Reassembles messages from partial reads", func(t *testing.T) {
		// Given: two messages delivered one byte at a time
		reader := NewReader(iotest.OneByteReader(strings.NewReader("{\"a\":1}\n{\"b\":2}\n")), 64)

		// When: reading both
		first, err := reader.Next()
		require.NoError(t, err)
		second, err := reader.Next()
		require.NoError(t, err)

		// Then: each message arrives whole and the stream ends cleanly
		assert.Equal(t, `{"a":1}`, string(first))
		assert.Equal(t, `{"b":2}`, string(second))

		_, err = reader.Next()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Skips blank lines and trims carriage returns", func(t *testing.T) {
		reader := NewReader(strings.NewReader("\n  \r\n{}\r\n"), 64)

		message, err := reader.Next()

		require.NoError(t, err)
		assert.Equal(t, "{}", string(message))
	})

	t.Run("Rejects oversized messages", func(t *testing.T) {
		reader := NewReader(strings.NewReader(strings.Repeat("x", 100)+"\n"), 10)

		_, err := reader.Next()

		assert.ErrorIs(t, err, ErrMessageTooLarge)
	})

	t.Run("Rejects messages larger than the read buffer", func(t *testing.T) {
		reader := NewReader(strings.NewReader(strings.Repeat("x", 10000)+"\n"), 5000)

		_, err := reader.Next()

		assert.ErrorIs(t, err, ErrMessageTooLarge)
	})

	t.Run("Accepts a message of exactly the limit", func(t *testing.T) {
		reader := NewReader(strings.NewReader("12345\n"), 5)

		message, err := reader.Next()

		require.NoError(t, err)
		assert.Equal(t, "12345", string(message))
	})

	t.Run("Truncated message is an unexpected EOF", func(t *testing.T) {
		reader := NewReader(strings.NewReader(`{"a":`), 64)

		_, err := reader.Next()

		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestWriter_Write(t *testing.T) {
	t.Run("Appends the delimiter", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, NewWriter(&buf, 64).Write([]byte(`{"a":1}`)))

		assert.Equal(t, "{\"a\":1}\n", buf.String())
	})

	t.Run("Rejects multi-line and oversized messages", func(t *testing.T) {
		var buf bytes.Buffer
		writer := NewWriter(&buf, 4)

		assert.ErrorIs(t, writer.Write([]byte("a\nb")), ErrMultiline)
		assert.ErrorIs(t, writer.Write([]byte("abcde")), ErrMessageTooLarge)
		assert.Zero(t, buf.Len())
	})

	t.Run("Concurrent writes never interleave", func(t *testing.T) {
		// Given: a pipe read by a framing reader
		pr, pw := io.Pipe()
		writer := NewWriter(pw, 1024)
		message := strings.Repeat("z", 512)

		// When: many goroutines write at once
		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, writer.Write([]byte(message)))
			}()
		}
		go func() {
			wg.Wait()
			_ = pw.Close()
		}()

		// Then: every message comes out intact
		reader := NewReader(pr, 1024)
		for range 20 {
			got, err := reader.Next()
			require.NoError(t, err)
			assert.Equal(t, message, string(got))
		}
	})
}
