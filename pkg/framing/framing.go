package framing

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/sasha-s/go-deadlock"
)

const delimiter = '\n'

var (
	ErrMessageTooLarge = errors.New("message exceeds the size limit")
	ErrMultiline       = errors.New("message contains a line break")
)

// Reader - splits a byte stream into newline delimited messages.
type Reader struct {
	reader  *bufio.Reader
	maxSize int
}

func NewReader(r io.Reader, maxSize int) *Reader {
	return &Reader{
		reader:  bufio.NewReader(r),
		maxSize: maxSize,
	}
}

// Next - returns the next non-blank message without its delimiter.
// io.EOF means the stream ended cleanly between messages.
func (that *Reader) Next() ([]byte, error) {
	for {
		line, err := that.readLine()
		if err != nil {
			return nil, err
		}

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		return line, nil
	}
}

func (that *Reader) readLine() ([]byte, error) {
	var line []byte

	for {
		chunk, err := that.reader.ReadSlice(delimiter)
		line = append(line, chunk...)

		size := len(line)
		if err == nil {
			size--
		}

		if size > that.maxSize {
			return nil, fmt.Errorf("%w: more than %d bytes", ErrMessageTooLarge, that.maxSize)
		}

		switch {
		case err == nil:
			return line, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(bytes.TrimSpace(line)) == 0 {
				return nil, io.EOF
			}

			return nil, io.ErrUnexpectedEOF
		default:
			return nil, fmt.Errorf("failed to read message: %w", err)
		}
	}
}

// Writer - writes one message per line. Safe for concurrent use.
type Writer struct {
	mu      deadlock.Mutex
	writer  io.Writer
	maxSize int
}

func NewWriter(w io.Writer, maxSize int) *Writer {
	return &Writer{
		writer:  w,
		maxSize: maxSize,
	}
}

func (that *Writer) Write(message []byte) error {
	if len(message) > that.maxSize {
		return fmt.Errorf("%w: %d of %d bytes", ErrMessageTooLarge, len(message), that.maxSize)
	}

	if bytes.ContainsAny(message, "\r\n") {
		return ErrMultiline
	}

	frame := make([]byte, 0, len(message)+1)
	frame = append(frame, message...)
	frame = append(frame, delimiter)

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, err := that.writer.Write(frame); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
