package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"nhooyr.io/websocket"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
	"github.com/rocketscienceinc/santorini-backend/pkg/framing"
)

// Conn - a message oriented connection to one remote player.
// Read must not be called concurrently; Write may be.
type Conn interface {
	Read(ctx context.Context) (Envelope, error)
	Write(ctx context.Context, envelope Envelope) error
	Close() error
}

type streamConn struct {
	conn   net.Conn
	reader *framing.Reader
	writer *framing.Writer
}

// NewStreamConn - newline delimited JSON over a raw TCP (or any stream) connection.
func NewStreamConn(conn net.Conn, maxSize int) Conn {
	return &streamConn{
		conn:   conn,
		reader: framing.NewReader(conn, maxSize),
		writer: framing.NewWriter(conn, maxSize),
	}
}

func (that *streamConn) Read(ctx context.Context) (Envelope, error) {
	if err := that.conn.SetReadDeadline(time.Time{}); err != nil {
		return Envelope{}, fmt.Errorf("failed to reset read deadline: %w", err)
	}

	stop := context.AfterFunc(ctx, func() {
		_ = that.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	raw, err := that.reader.Next()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Envelope{}, ctxErr
		}

		if errors.Is(err, framing.ErrMessageTooLarge) {
			return Envelope{}, fmt.Errorf("%w: %w", apperror.ErrProtocolViolation, err)
		}

		return Envelope{}, fmt.Errorf("failed to read message: %w", err)
	}

	return decodeEnvelope(raw)
}

func (that *streamConn) Write(ctx context.Context, envelope Envelope) error {
	raw, err := encodeEnvelope(envelope)
	if err != nil {
		return err
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}

	if err = that.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.writer.Write(raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", envelope.Type, err)
	}

	return nil
}

func (that *streamConn) Close() error {
	return that.conn.Close()
}

type websocketConn struct {
	conn *websocket.Conn
}

// NewWebsocketConn - one JSON envelope per text message. Messages above maxSize close the connection.
func NewWebsocketConn(conn *websocket.Conn, maxSize int) Conn {
	conn.SetReadLimit(int64(maxSize))

	return &websocketConn{
		conn: conn,
	}
}

func (that *websocketConn) Read(ctx context.Context) (Envelope, error) {
	typ, raw, err := that.conn.Read(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Envelope{}, ctxErr
		}

		return Envelope{}, fmt.Errorf("failed to read message: %w", err)
	}

	if typ != websocket.MessageText {
		return Envelope{}, fmt.Errorf("%w: binary message", apperror.ErrProtocolViolation)
	}

	return decodeEnvelope(raw)
}

func (that *websocketConn) Write(ctx context.Context, envelope Envelope) error {
	raw, err := encodeEnvelope(envelope)
	if err != nil {
		return err
	}

	if err = that.conn.Write(ctx, websocket.MessageText, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", envelope.Type, err)
	}

	return nil
}

func (that *websocketConn) Close() error {
	return that.conn.Close(websocket.StatusNormalClosure, "bye")
}
