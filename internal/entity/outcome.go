package entity

type DisqualificationReason string

const (
	ReasonInvalidAction     DisqualificationReason = "invalid_action"
	ReasonTimeout           DisqualificationReason = "timeout"
	ReasonProtocolViolation DisqualificationReason = "protocol_violation"
)

// GameOutcome - terminal result of one game.
type GameOutcome struct {
	GameID       string                 `json:"game_id"`
	Players      [2]PlayerID            `json:"players"`
	Winner       PlayerID               `json:"winner,omitempty"`
	Disqualified PlayerID               `json:"disqualified,omitempty"`
	Reason       DisqualificationReason `json:"reason,omitempty"`
	Turns        int                    `json:"turns"`
	// Aborted - the game was cut short by shutdown and has no winner.
	Aborted bool `json:"aborted,omitempty"`
}

func (that GameOutcome) IsDisqualification() bool {
	return that.Disqualified != ""
}

// Loser - the participant who did not win, empty when there is no winner.
func (that GameOutcome) Loser() PlayerID {
	switch that.Winner {
	case that.Players[0]:
		return that.Players[1]
	case that.Players[1]:
		return that.Players[0]
	default:
		return ""
	}
}

type PlayerResult struct {
	PlayerID PlayerID `json:"player_id"`
	Wins     int      `json:"wins"`
}

// Standings - persisted ranking of a finished tournament.
type Standings struct {
	TournamentID string         `json:"tournament_id"`
	Results      []PlayerResult `json:"results"`
	Disqualified []PlayerID     `json:"disqualified"`
}
