package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
	"github.com/rocketscienceinc/santorini-backend/internal/entity"
	"github.com/rocketscienceinc/santorini-backend/internal/player"
)

// Client - plays on a remote referee with a local strategy.
type Client struct {
	logger   *slog.Logger
	conn     Conn
	strategy player.Strategy
	id       entity.PlayerID
}

func NewClient(logger *slog.Logger, conn Conn, strategy player.Strategy) *Client {
	return &Client{
		logger:   logger.With("component", "client"),
		conn:     conn,
		strategy: strategy,
	}
}

// ID - identity assigned by the server, empty before Join.
func (that *Client) ID() entity.PlayerID {
	return that.id
}

// Join - introduces the player and waits for the assigned identity.
func (that *Client) Join(ctx context.Context, name string) (entity.PlayerID, error) {
	hello, err := NewEnvelope(TypeHello, 0, HelloPayload{Name: name})
	if err != nil {
		return "", err
	}

	if err = that.conn.Write(ctx, hello); err != nil {
		return "", fmt.Errorf("failed to send hello: %w", err)
	}

	envelope, err := that.conn.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read welcome: %w", err)
	}

	switch envelope.Type {
	case TypeWelcome:
	case TypeError:
		var message ErrorPayload
		_ = envelope.Decode(&message)

		return "", fmt.Errorf("server refused to join: %s", message.Message)
	default:
		return "", fmt.Errorf("%w: expected %s, got %s", apperror.ErrProtocolViolation, TypeWelcome, envelope.Type)
	}

	var welcome WelcomePayload
	if err = envelope.Decode(&welcome); err != nil {
		return "", err
	}

	that.id = welcome.PlayerID

	that.logger.Info("joined", "playerID", that.id, "name", name)

	return that.id, nil
}

// Serve - answers server requests until the server says bye or the context ends.
func (that *Client) Serve(ctx context.Context) error {
	log := that.logger.With("method", "Serve", "playerID", that.id)

	for {
		envelope, err := that.conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			if errors.Is(err, apperror.ErrProtocolViolation) {
				log.Warn("ignoring malformed message", "error", err)
				continue
			}

			return fmt.Errorf("failed to read request: %w", err)
		}

		if err = that.handle(ctx, envelope); err != nil {
			if errors.Is(err, ErrConnectionClosed) {
				return nil
			}

			return err
		}
	}
}

func (that *Client) handle(ctx context.Context, envelope Envelope) error {
	log := that.logger.With("method", "handle", "type", envelope.Type, "seq", envelope.Seq)

	switch envelope.Type {
	case TypePlacementRequest:
		var req PlacementRequestPayload
		if err := envelope.Decode(&req); err != nil {
			return that.reply(ctx, TypeError, envelope.Seq, ErrorPayload{Message: err.Error()})
		}

		placement, err := that.strategy.NextPlacement(ctx, req.Player, req.Placed)
		if err != nil {
			log.Error("strategy failed to place", "error", err)
			return that.reply(ctx, TypeError, envelope.Seq, ErrorPayload{Message: err.Error()})
		}

		return that.reply(ctx, TypePlacementResponse, envelope.Seq, placement)
	case TypeTurnRequest:
		var req TurnRequestPayload
		if err := envelope.Decode(&req); err != nil {
			return that.reply(ctx, TypeError, envelope.Seq, ErrorPayload{Message: err.Error()})
		}

		turn, err := that.strategy.NextTurn(ctx, req.View)
		if err != nil {
			log.Error("strategy failed to turn", "error", err)
			return that.reply(ctx, TypeError, envelope.Seq, ErrorPayload{Message: err.Error()})
		}

		return that.reply(ctx, TypeTurnResponse, envelope.Seq, turn)
	case TypeNotify:
		var notify NotifyPayload
		if err := envelope.Decode(&notify); err != nil {
			log.Warn("bad notification", "error", err)
			return nil
		}

		if err := that.strategy.Notify(ctx, notify.View); err != nil {
			log.Warn("strategy rejected notification", "error", err)
		}

		return nil
	case TypeFinish:
		var finish FinishPayload
		if err := envelope.Decode(&finish); err != nil {
			log.Warn("bad finish", "error", err)
			return nil
		}

		if err := that.strategy.Finish(ctx, finish.Outcome); err != nil {
			log.Warn("strategy rejected finish", "error", err)
		}

		return nil
	case TypeBye:
		log.Info("server said bye")
		return ErrConnectionClosed
	default:
		log.Warn("unexpected message")
		return nil
	}
}

func (that *Client) reply(ctx context.Context, typ MessageType, seq uint64, payload any) error {
	envelope, err := NewEnvelope(typ, seq, payload)
	if err != nil {
		return err
	}

	if err = that.conn.Write(ctx, envelope); err != nil {
		return fmt.Errorf("failed to reply: %w", err)
	}

	return nil
}

// Close - says goodbye and drops the connection.
func (that *Client) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), byeTimeout)
	defer cancel()

	if bye, err := NewEnvelope(TypeBye, 0, nil); err == nil {
		_ = that.conn.Write(ctx, bye)
	}

	if err := that.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}

	return nil
}
