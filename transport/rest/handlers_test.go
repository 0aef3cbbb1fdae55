package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
	"github.com/rocketscienceinc/santorini-backend/internal/entity"
	mockedRest "github.com/rocketscienceinc/santorini-backend/mocks/rest"
)

type stores struct {
	games     *mockedRest.MockgameStore
	players   *mockedRest.MockplayerStore
	outcomes  *mockedRest.MockoutcomeStore
	standings *mockedRest.MockstandingsStore
	handler   http.Handler
}

func newStores(t *testing.T) *stores {
	t.Helper()

	s := &stores{
		games:     mockedRest.NewMockgameStore(t),
		players:   mockedRest.NewMockplayerStore(t),
		outcomes:  mockedRest.NewMockoutcomeStore(t),
		standings: mockedRest.NewMockstandingsStore(t),
	}
	s.handler = NewHandler(slog.New(slog.NewJSONHandler(io.Discard, nil)), s.games, s.players, s.outcomes, s.standings)

	return s
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

	return recorder
}

func TestHandlers_Ping(t *testing.T) {
	response := get(newStores(t).handler, "/ping")

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "pong", response.Body.String())
}

func TestHandlers_GetGame(t *testing.T) {
	t.Run("Returns the stored snapshot", func(t *testing.T) {
		// Given: a stored game
		s := newStores(t)
		game := entity.NewGameState("g1", "alice", "bob")
		s.games.EXPECT().GetByID(mock.Anything, "g1").Return(game, nil).Once()

		// When: requesting it
		response := get(s.handler, "/games/g1")

		// Then: the snapshot is returned as JSON
		require.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "application/json", response.Header().Get("Content-Type"))

		var body entity.GameState
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
		assert.Equal(t, "g1", body.ID)
		assert.Equal(t, entity.PhasePlacing, body.Phase)
	})

	t.Run("Unknown game is a 404", func(t *testing.T) {
		s := newStores(t)
		s.games.EXPECT().GetByID(mock.Anything, "nope").Return(&entity.GameState{}, apperror.ErrNotFound).Once()

		response := get(s.handler, "/games/nope")

		assert.Equal(t, http.StatusNotFound, response.Code)
	})

	t.Run("Storage failure is a 500", func(t *testing.T) {
		s := newStores(t)
		s.games.EXPECT().GetByID(mock.Anything, "g1").Return(nil, errors.New("redis down")).Once()

		response := get(s.handler, "/games/g1")

		assert.Equal(t, http.StatusInternalServerError, response.Code)
	})
}

func TestHandlers_GetPlayer(t *testing.T) {
	s := newStores(t)
	s.players.EXPECT().GetByID(mock.Anything, entity.PlayerID("p1")).Return(&entity.Player{ID: "p1", Name: "randy"}, nil).Once()

	response := get(s.handler, "/players/p1")

	require.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"id":"p1","name":"randy"}`, response.Body.String())
}

func TestHandlers_Tournament(t *testing.T) {
	t.Run("Lists outcomes", func(t *testing.T) {
		s := newStores(t)
		s.outcomes.EXPECT().
			List(mock.Anything, "cup").
			Return([]entity.GameOutcome{{GameID: "g1", Players: [2]entity.PlayerID{"a", "b"}, Winner: "a", Turns: 9}}, nil).
			Once()

		response := get(s.handler, "/tournaments/cup/outcomes")

		require.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `[{"game_id":"g1","players":["a","b"],"winner":"a","turns":9}]`, response.Body.String())
	})

	t.Run("Returns standings", func(t *testing.T) {
		s := newStores(t)
		s.standings.EXPECT().
			Get(mock.Anything, "cup").
			Return(entity.Standings{
				TournamentID: "cup",
				Results:      []entity.PlayerResult{{PlayerID: "a", Wins: 2}},
				Disqualified: []entity.PlayerID{"b"},
			}, nil).
			Once()

		response := get(s.handler, "/tournaments/cup/standings")

		require.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{"tournament_id":"cup","results":[{"player_id":"a","wins":2}],"disqualified":["b"]}`, response.Body.String())
	})

	t.Run("Standings of an unfinished tournament are a 404", func(t *testing.T) {
		s := newStores(t)
		s.standings.EXPECT().Get(mock.Anything, "cup").Return(entity.Standings{}, apperror.ErrNotFound).Once()

		response := get(s.handler, "/tournaments/cup/standings")

		assert.Equal(t, http.StatusNotFound, response.Code)
	})
}

func TestHandlers_MethodNotAllowed(t *testing.T) {
	recorder := httptest.NewRecorder()
	newStores(t).handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/games/g1", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
