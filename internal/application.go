package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"nhooyr.io/websocket"

	"github.com/rocketscienceinc/santorini-backend/internal/config"
	"github.com/rocketscienceinc/santorini-backend/internal/entity"
	"github.com/rocketscienceinc/santorini-backend/internal/player"
	"github.com/rocketscienceinc/santorini-backend/internal/referee"
	"github.com/rocketscienceinc/santorini-backend/internal/repository"
	"github.com/rocketscienceinc/santorini-backend/internal/repository/storage"
	"github.com/rocketscienceinc/santorini-backend/internal/santorini"
	"github.com/rocketscienceinc/santorini-backend/internal/strategy"
	"github.com/rocketscienceinc/santorini-backend/internal/tournament"
	"github.com/rocketscienceinc/santorini-backend/transport/remote"
	"github.com/rocketscienceinc/santorini-backend/transport/rest"
)

// archiveTimeout - time left to the tournament for storing its standings on shutdown.
const archiveTimeout = 5 * time.Second

var (
	ErrAddrNotFound    = errors.New("redis address string is empty")
	ErrUnknownStrategy = errors.New("unknown strategy kind")
)

// PlayerOptions - how the play command joins a server.
type PlayerOptions struct {
	Addr     string
	Name     string
	Strategy string
	Seed     uint64
	Script   string
}

// RunApp - runs the tournament server until it receives a signal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := withSignals(log)
	defer cancel()

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" || redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(repository.StandingsModels()...); err != nil {
		return fmt.Errorf("could not migrate sqlite storage: %w", err)
	}

	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	playerRepo := repository.NewPlayerRepository(redisStorage.Connection)
	outcomeRepo := repository.NewOutcomeRepository(redisStorage.Connection)
	standingsRepo := repository.NewStandingsRepository(sqliteStorage.Connection)

	gameReferee := newReferee(logger, conf.Referee, gameRepo)

	lobby := remote.NewLobby(logger, conf.Transport.HandshakeTimeout, conf.Transport.MaxMessageSize)
	defer func() {
		if err = lobby.Close(); err != nil {
			log.Error("could not close lobby", "error", err)
		}
	}()

	listener, err := net.Listen("tcp", ":"+conf.TCPPort)
	if err != nil {
		return fmt.Errorf("could not listen for players: %w", err)
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		handler := rest.NewHandler(logger, gameRepo, playerRepo, outcomeRepo, standingsRepo)
		if httpErr := rest.Start(ctx, conf.HTTPPort, handler); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		mux := http.NewServeMux()
		mux.Handle("/ws", lobby)
		if wsErr := rest.StartStreaming(ctx, conf.SocketPort, mux); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	// run TCP lobby
	tcpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting TCP lobby", "port", conf.TCPPort)
		if tcpErr := lobby.ServeTCP(ctx, listener); tcpErr != nil {
			log.Error("TCP lobby error", "error", tcpErr)
			tcpErrCh <- tcpErr
		}
	}()

	tournamentCh := make(chan error, 1)
	tournamentDone := make(chan struct{})
	go func() {
		defer close(tournamentDone)
		tournamentCh <- runTournament(ctx, logger, conf.Tournament, lobby, gameReferee, playerRepo, outcomeRepo, standingsRepo)
	}()

	// Runs before the storages and the lobby are closed.
	defer func() {
		cancel()

		// Aborting a game still delivers the outcome to both players.
		timeout := 2*conf.Referee.ActionTimeout + archiveTimeout
		if !awaitTournament(tournamentDone, timeout) {
			log.Warn("tournament did not stop in time", "timeout", timeout)
		}
	}()

	for {
		select {
		case err = <-httpErrCh:
			return fmt.Errorf("HTTP server error: %w", err)
		case err = <-wsErrCh:
			return fmt.Errorf("WebSocket server error: %w", err)
		case err = <-tcpErrCh:
			return fmt.Errorf("TCP lobby error: %w", err)
		case err = <-tournamentCh:
			tournamentCh = nil
			if err != nil {
				log.Error("tournament failed", "error", err)
			}

			log.Info("Tournament over, serving results until shutdown")
		case <-ctx.Done():
			log.Info("Application context canceled, shutting down")
			return nil
		}
	}
}

// RunPlayer - joins a remote tournament server with a local strategy.
func RunPlayer(logger *slog.Logger, conf *config.Config, options PlayerOptions) error {
	log := logger.With("component", "player")

	ctx, cancel := withSignals(log)
	defer cancel()

	local, release, err := newStrategy(options.Strategy, options.Name, options.Seed, options.Script)
	if err != nil {
		return err
	}
	defer release()

	conn, err := dial(ctx, options.Addr, conf.Transport.MaxMessageSize)
	if err != nil {
		return err
	}

	client := remote.NewClient(logger, conn, local)
	defer func() {
		if err = client.Close(); err != nil {
			log.Debug("could not close connection", "error", err)
		}
	}()

	joinCtx, joinCancel := context.WithTimeout(ctx, conf.Transport.HandshakeTimeout)
	id, err := client.Join(joinCtx, options.Name)
	joinCancel()

	if err != nil {
		return fmt.Errorf("could not join %s: %w", options.Addr, err)
	}

	log.Info("Waiting for games", "playerID", id, "strategy", local.Name())

	if err = client.Serve(ctx); err != nil {
		return fmt.Errorf("connection to %s failed: %w", options.Addr, err)
	}

	return nil
}

// awaitTournament - reports whether the tournament stopped within the timeout.
func awaitTournament(done <-chan struct{}, timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}

func withSignals(log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}

		signal.Stop(sigs)
	}()

	return ctx, cancel
}

func newReferee(logger *slog.Logger, conf config.Referee, games repository.GameRepository) *referee.Referee {
	log := logger.With("component", "observer")

	return referee.New(logger, santorini.NewRules(),
		referee.WithWorkersPerPlayer(conf.WorkersPerPlayer),
		referee.WithActionTimeout(conf.ActionTimeout),
		referee.WithPlacementAttempts(conf.PlacementAttempts),
		referee.WithTurnAttempts(conf.TurnAttempts),
		referee.WithObserver(referee.ObserverFunc(func(ctx context.Context, state *entity.GameState) {
			if err := games.CreateOrUpdate(context.WithoutCancel(ctx), state); err != nil {
				log.Warn("could not store game snapshot", "gameID", state.ID, "error", err)
			}
		})),
	)
}

type playerRegistry interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
}

type outcomeLog interface {
	Save(ctx context.Context, tournamentID string, outcome *entity.GameOutcome) error
}

type standingsArchive interface {
	Save(ctx context.Context, standings entity.Standings) error
}

type gameReferee interface {
	StartGame(ctx context.Context, players [2]*player.Player) *entity.GameOutcome
}

type remoteLobby interface {
	Wait(ctx context.Context, n int) ([]*remote.Strategy, error)
}

// runTournament - gathers bots and remote players, plays the series and archives the standings.
func runTournament(
	ctx context.Context,
	logger *slog.Logger,
	conf config.Tournament,
	lobby remoteLobby,
	gameReferee gameReferee,
	players playerRegistry,
	outcomes outcomeLog,
	standings standingsArchive,
) error {
	log := logger.With("method", "runTournament")

	entrants, err := botEntrants(conf.Bots)
	if err != nil {
		return err
	}

	if conf.RemotePlayers > 0 {
		log.Info("Waiting for remote players", "count", conf.RemotePlayers, "timeout", conf.JoinTimeout)

		waitCtx, cancel := context.WithTimeout(ctx, conf.JoinTimeout)
		remotes, waitErr := lobby.Wait(waitCtx, conf.RemotePlayers)
		cancel()

		if waitErr != nil {
			return fmt.Errorf("not enough remote players: %w", waitErr)
		}

		for _, remotePlayer := range remotes {
			entrants = append(entrants, tournament.NewEntrant(remotePlayer.ID(), remotePlayer.Name(), tournament.Shared(remotePlayer)))
		}
	}

	for _, entrant := range entrants {
		if err = players.CreateOrUpdate(ctx, &entity.Player{ID: entrant.ID, Name: entrant.Name}); err != nil {
			log.Warn("could not register player", "playerID", entrant.ID, "error", err)
		}
	}

	tournamentID := conf.ID
	if tournamentID == "" {
		tournamentID = uuid.New().String()
	}

	runner := tournament.NewRunner(logger, gameReferee, outcomes, standings, conf.Concurrency, conf.GamesPerPairing)

	result, err := runner.Run(ctx, tournamentID, entrants)
	if result != nil {
		for rank, playerResult := range result.PlayerResults() {
			log.Info("standing", "tournamentID", tournamentID, "rank", rank+1, "playerID", playerResult.PlayerID, "wins", playerResult.Wins)
		}

		for _, id := range result.DisqualifiedList() {
			log.Info("disqualified", "tournamentID", tournamentID, "playerID", id)
		}
	}

	if err != nil {
		return fmt.Errorf("tournament %s: %w", tournamentID, err)
	}

	return nil
}

func botEntrants(bots []config.Bot) ([]*tournament.Entrant, error) {
	entrants := make([]*tournament.Entrant, 0, len(bots))

	for _, bot := range bots {
		// Fail on a broken bot before the series starts, not in its first game.
		local, release, err := newStrategy(bot.Kind, bot.Name, bot.Seed, bot.Script)
		if err != nil {
			return nil, fmt.Errorf("bot %s: %w", bot.Name, err)
		}

		// Lua bots get a fresh interpreter per game; the others, the console included, are shared.
		factory := tournament.Shared(local)
		if strings.EqualFold(bot.Kind, "lua") {
			release()

			factory = func() (player.Strategy, func(), error) {
				return newStrategy(bot.Kind, bot.Name, bot.Seed, bot.Script)
			}
		}

		entrants = append(entrants, tournament.NewEntrant(entity.NewPlayerID(), bot.Name, factory))
	}

	return entrants, nil
}

// newStrategy - builds a local strategy and the func releasing it.
func newStrategy(kind, name string, seed uint64, script string) (player.Strategy, func(), error) {
	switch strings.ToLower(kind) {
	case "random":
		return strategy.NewRandom(seed), func() {}, nil
	case "greedy":
		return strategy.NewGreedy(), func() {}, nil
	case "human":
		return strategy.NewHuman(os.Stdin, os.Stdout), func() {}, nil
	case "lua":
		lua, err := strategy.NewLuaFromFile(name, script)
		if err != nil {
			return nil, nil, fmt.Errorf("could not load lua strategy: %w", err)
		}

		return lua, lua.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, kind)
	}
}

func dial(ctx context.Context, addr string, maxMessageSize int) (remote.Conn, error) {
	if strings.HasPrefix(addr, "ws://") || strings.HasPrefix(addr, "wss://") {
		conn, _, err := websocket.Dial(ctx, addr, nil)
		if err != nil {
			return nil, fmt.Errorf("could not dial %s: %w", addr, err)
		}

		return remote.NewWebsocketConn(conn, maxMessageSize), nil
	}

	var dialer net.Dialer

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("could not dial %s: %w", addr, err)
	}

	return remote.NewStreamConn(conn, maxMessageSize), nil
}
