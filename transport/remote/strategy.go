package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/sasha-s/go-deadlock"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
	"github.com/rocketscienceinc/santorini-backend/internal/entity"
)

const byeTimeout = time.Second

var ErrConnectionClosed = errors.New("connection closed")

type reply struct {
	envelope Envelope
	err      error
}

// Strategy - a player sitting on the other end of a connection.
// A single goroutine reads the connection and routes responses to waiting requests by seq.
type Strategy struct {
	logger *slog.Logger
	conn   Conn
	id     entity.PlayerID
	name   string

	seq     atomic.Uint64
	mu      deadlock.Mutex
	pending map[uint64]chan reply
	lost    error
	done    chan struct{}
}

func NewStrategy(logger *slog.Logger, conn Conn, id entity.PlayerID, name string) *Strategy {
	strategy := &Strategy{
		logger:  logger.With("component", "remote", "playerID", id),
		conn:    conn,
		id:      id,
		name:    name,
		pending: make(map[uint64]chan reply),
		done:    make(chan struct{}),
	}

	go strategy.readLoop()

	return strategy
}

func (that *Strategy) Name() string {
	return that.name
}

func (that *Strategy) ID() entity.PlayerID {
	return that.id
}

// Done - closed once the connection is gone.
func (that *Strategy) Done() <-chan struct{} {
	return that.done
}

func (that *Strategy) NextPlacement(ctx context.Context, self entity.PlayerID, placed []entity.InitWorker) (entity.PlaceRequest, error) {
	envelope, err := that.request(ctx, TypePlacementRequest, PlacementRequestPayload{Player: self, Placed: placed}, TypePlacementResponse)
	if err != nil {
		return entity.PlaceRequest{}, err
	}

	var req entity.PlaceRequest
	if err = envelope.Decode(&req); err != nil {
		return entity.PlaceRequest{}, err
	}

	return req, nil
}

func (that *Strategy) NextTurn(ctx context.Context, view entity.GameView) (entity.Turn, error) {
	envelope, err := that.request(ctx, TypeTurnRequest, TurnRequestPayload{View: view}, TypeTurnResponse)
	if err != nil {
		return entity.Turn{}, err
	}

	var turn entity.Turn
	if err = envelope.Decode(&turn); err != nil {
		return entity.Turn{}, err
	}

	return turn, nil
}

func (that *Strategy) Notify(ctx context.Context, view entity.GameView) error {
	return that.send(ctx, TypeNotify, NotifyPayload{View: view})
}

func (that *Strategy) Finish(ctx context.Context, outcome entity.GameOutcome) error {
	return that.send(ctx, TypeFinish, FinishPayload{Outcome: outcome})
}

// Close - says goodbye and drops the connection.
func (that *Strategy) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), byeTimeout)
	defer cancel()

	if err := that.send(ctx, TypeBye, nil); err != nil {
		that.logger.Debug("failed to say bye", "error", err)
	}

	if err := that.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}

	return nil
}

func (that *Strategy) send(ctx context.Context, typ MessageType, payload any) error {
	if err := that.lostErr(); err != nil {
		return err
	}

	envelope, err := NewEnvelope(typ, that.seq.Add(1), payload)
	if err != nil {
		return err
	}

	if err = that.conn.Write(ctx, envelope); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrTimeout, err)
	}

	return nil
}

// request - sends a request and waits for the response carrying the same seq.
func (that *Strategy) request(ctx context.Context, typ MessageType, payload any, want MessageType) (Envelope, error) {
	seq := that.seq.Add(1)

	envelope, err := NewEnvelope(typ, seq, payload)
	if err != nil {
		return Envelope{}, err
	}

	replies := make(chan reply, 1)

	that.mu.Lock()
	if that.lost != nil {
		that.mu.Unlock()
		return Envelope{}, that.lost
	}
	that.pending[seq] = replies
	that.mu.Unlock()

	defer func() {
		that.mu.Lock()
		delete(that.pending, seq)
		that.mu.Unlock()
	}()

	if err = that.conn.Write(ctx, envelope); err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", apperror.ErrTimeout, err)
	}

	select {
	case <-ctx.Done():
		return Envelope{}, fmt.Errorf("%w: no %s for seq %d: %w", apperror.ErrTimeout, want, seq, ctx.Err())
	case got := <-replies:
		if got.err != nil {
			return Envelope{}, got.err
		}

		switch got.envelope.Type {
		case want:
			return got.envelope, nil
		case TypeError:
			var message ErrorPayload
			if err = got.envelope.Decode(&message); err != nil {
				return Envelope{}, err
			}

			return Envelope{}, fmt.Errorf("%w: %s", apperror.ErrInvalidAction, message.Message)
		default:
			return Envelope{}, fmt.Errorf("%w: expected %s, got %s", apperror.ErrProtocolViolation, want, got.envelope.Type)
		}
	}
}

func (that *Strategy) readLoop() {
	log := that.logger.With("method", "readLoop")

	for {
		envelope, err := that.conn.Read(context.Background())

		switch {
		case errors.Is(err, apperror.ErrProtocolViolation):
			// The stream is still framed; only the outstanding request is broken.
			log.Warn("malformed message", "error", err)
			that.failPending(err)

			continue
		case err != nil:
			log.Info("connection lost", "error", err)
			that.shutdown(fmt.Errorf("%w: %w", apperror.ErrTimeout, err))

			return
		}

		if envelope.Type == TypeBye {
			log.Info("player left")
			that.shutdown(fmt.Errorf("%w: %w", apperror.ErrTimeout, ErrConnectionClosed))

			return
		}

		that.mu.Lock()
		replies, ok := that.pending[envelope.Seq]
		if ok {
			delete(that.pending, envelope.Seq)
		}
		that.mu.Unlock()

		if !ok {
			log.Debug("dropping stale message", "type", envelope.Type, "seq", envelope.Seq)
			continue
		}

		replies <- reply{envelope: envelope}
	}
}

func (that *Strategy) failPending(err error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for seq, replies := range that.pending {
		replies <- reply{err: err}
		delete(that.pending, seq)
	}
}

func (that *Strategy) shutdown(err error) {
	that.mu.Lock()
	that.lost = err
	that.mu.Unlock()

	that.failPending(err)
	close(that.done)
}

func (that *Strategy) lostErr() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.lost
}
