package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
	"github.com/rocketscienceinc/santorini-backend/internal/entity"
)

type gameStore interface {
	GetByID(ctx context.Context, id string) (*entity.GameState, error)
}

type playerStore interface {
	GetByID(ctx context.Context, id entity.PlayerID) (*entity.Player, error)
}

type outcomeStore interface {
	List(ctx context.Context, tournamentID string) ([]entity.GameOutcome, error)
}

type standingsStore interface {
	Get(ctx context.Context, tournamentID string) (entity.Standings, error)
}

type handlers struct {
	logger    *slog.Logger
	games     gameStore
	players   playerStore
	outcomes  outcomeStore
	standings standingsStore
}

// NewHandler - read-only API over games, players and tournament results.
func NewHandler(
	logger *slog.Logger,
	games gameStore,
	players playerStore,
	outcomes outcomeStore,
	standings standingsStore,
) http.Handler {
	that := &handlers{
		logger:    logger.With("component", "rest"),
		games:     games,
		players:   players,
		outcomes:  outcomes,
		standings: standings,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", that.PingHandler)
	mux.HandleFunc("GET /games/{id}", that.GetGame)
	mux.HandleFunc("GET /players/{id}", that.GetPlayer)
	mux.HandleFunc("GET /tournaments/{id}/outcomes", that.ListOutcomes)
	mux.HandleFunc("GET /tournaments/{id}/standings", that.GetStandings)

	return mux
}

// GetGame - latest snapshot of a live or recently finished game.
func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		that.fail(w, "GetGame", err)
		return
	}

	that.respond(w, game)
}

func (that *handlers) GetPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := that.players.GetByID(r.Context(), entity.PlayerID(r.PathValue("id")))
	if err != nil {
		that.fail(w, "GetPlayer", err)
		return
	}

	that.respond(w, player)
}

func (that *handlers) ListOutcomes(w http.ResponseWriter, r *http.Request) {
	outcomes, err := that.outcomes.List(r.Context(), r.PathValue("id"))
	if err != nil {
		that.fail(w, "ListOutcomes", err)
		return
	}

	that.respond(w, outcomes)
}

func (that *handlers) GetStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := that.standings.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		that.fail(w, "GetStandings", err)
		return
	}

	that.respond(w, standings)
}

func (that *handlers) respond(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *handlers) fail(w http.ResponseWriter, method string, err error) {
	if errors.Is(err, apperror.ErrNotFound) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	that.logger.Error("request failed", "method", method, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
