package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sasha-s/go-deadlock"
	"nhooyr.io/websocket"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
	"github.com/rocketscienceinc/santorini-backend/internal/entity"
)

const maxNameLength = 32

var ErrLobbyClosed = errors.New("lobby is closed")

// Lobby - admits remote players over TCP and websocket and hands them out as strategies.
type Lobby struct {
	logger           *slog.Logger
	handshakeTimeout time.Duration
	maxMessageSize   int

	mu        deadlock.Mutex
	players   []*Strategy
	joined    chan struct{}
	listeners []net.Listener
	closed    bool
}

func NewLobby(logger *slog.Logger, handshakeTimeout time.Duration, maxMessageSize int) *Lobby {
	return &Lobby{
		logger:           logger.With("component", "lobby"),
		handshakeTimeout: handshakeTimeout,
		maxMessageSize:   maxMessageSize,
		joined:           make(chan struct{}),
	}
}

// ServeTCP - accepts stream players until the listener is closed.
func (that *Lobby) ServeTCP(ctx context.Context, listener net.Listener) error {
	log := that.logger.With("method", "ServeTCP", "addr", listener.Addr().String())

	that.mu.Lock()
	if that.closed {
		that.mu.Unlock()
		_ = listener.Close()

		return ErrLobbyClosed
	}
	that.listeners = append(that.listeners, listener)
	that.mu.Unlock()

	log.Info("accepting players")

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("failed to accept connection: %w", err)
		}

		go func() {
			if _, err := that.admit(ctx, NewStreamConn(conn, that.maxMessageSize)); err != nil {
				log.Warn("player rejected", "remote", conn.RemoteAddr().String(), "error", err)
			}
		}()
	}
}

// ServeHTTP - upgrades to websocket and keeps the request open while the player is connected.
func (that *Lobby) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP", "remote", r.RemoteAddr)

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Error("failed to accept websocket", "error", err)
		return
	}

	strategy, err := that.admit(r.Context(), NewWebsocketConn(conn, that.maxMessageSize))
	if err != nil {
		log.Warn("player rejected", "error", err)
		return
	}

	select {
	case <-strategy.Done():
	case <-r.Context().Done():
		_ = strategy.Close()
	}
}

// Wait - blocks until n players have joined and returns the first n in join order.
func (that *Lobby) Wait(ctx context.Context, n int) ([]*Strategy, error) {
	for {
		that.mu.Lock()
		if len(that.players) >= n {
			players := append([]*Strategy(nil), that.players[:n]...)
			that.mu.Unlock()

			return players, nil
		}

		if that.closed {
			that.mu.Unlock()
			return nil, ErrLobbyClosed
		}

		joined := that.joined
		that.mu.Unlock()

		select {
		case <-joined:
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for %d players: %w", n, ctx.Err())
		}
	}
}

// Players - everyone admitted so far.
func (that *Lobby) Players() []*Strategy {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]*Strategy(nil), that.players...)
}

// Close - stops accepting players and disconnects everyone.
func (that *Lobby) Close() error {
	that.mu.Lock()
	if that.closed {
		that.mu.Unlock()
		return nil
	}

	that.closed = true
	listeners := that.listeners
	players := that.players
	close(that.joined)
	that.mu.Unlock()

	var errs []error
	for _, listener := range listeners {
		if err := listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			errs = append(errs, err)
		}
	}

	for _, strategy := range players {
		if err := strategy.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// admit - runs the handshake: hello with a name, then welcome with a fresh identity.
func (that *Lobby) admit(ctx context.Context, conn Conn) (*Strategy, error) {
	ctx, cancel := context.WithTimeout(ctx, that.handshakeTimeout)
	defer cancel()

	name, err := that.handshake(ctx, conn)
	if err != nil {
		if envelope, encodeErr := NewEnvelope(TypeError, 0, ErrorPayload{Message: err.Error()}); encodeErr == nil {
			_ = conn.Write(ctx, envelope)
		}

		_ = conn.Close()

		return nil, err
	}

	id := entity.NewPlayerID()

	welcome, err := NewEnvelope(TypeWelcome, 0, WelcomePayload{PlayerID: id})
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err = conn.Write(ctx, welcome); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to welcome %s: %w", name, err)
	}

	strategy := NewStrategy(that.logger, conn, id, name)

	that.mu.Lock()
	if that.closed {
		that.mu.Unlock()
		_ = strategy.Close()

		return nil, ErrLobbyClosed
	}

	that.players = append(that.players, strategy)
	count := len(that.players)
	close(that.joined)
	that.joined = make(chan struct{})
	that.mu.Unlock()

	that.logger.Info("player joined", "playerID", id, "name", name, "players", count)

	return strategy, nil
}

func (that *Lobby) handshake(ctx context.Context, conn Conn) (string, error) {
	envelope, err := conn.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read hello: %w", err)
	}

	if envelope.Type != TypeHello {
		return "", fmt.Errorf("%w: expected %s, got %s", apperror.ErrProtocolViolation, TypeHello, envelope.Type)
	}

	var hello HelloPayload
	if err = envelope.Decode(&hello); err != nil {
		return "", err
	}

	name := strings.TrimSpace(hello.Name)
	if name == "" || len(name) > maxNameLength {
		return "", fmt.Errorf("%w: name must have 1 to %d characters", apperror.ErrProtocolViolation, maxNameLength)
	}

	return name, nil
}
