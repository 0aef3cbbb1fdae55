package entity

// PlaceRequest - puts a worker on an empty cell during the placing phase.
type PlaceRequest struct {
	Player   PlayerID `json:"player,omitempty"`
	Position Position `json:"position"`
}

type MoveRequest struct {
	Worker    WorkerID  `json:"worker"`
	Direction Direction `json:"direction"`
}

// BuildRequest - direction is relative to the moved worker's new position.
type BuildRequest struct {
	Direction Direction `json:"direction"`
}

// Turn - a move followed by a build. Build is nil when the move wins the game.
type Turn struct {
	Player PlayerID      `json:"player,omitempty"`
	Move   MoveRequest   `json:"move"`
	Build  *BuildRequest `json:"build,omitempty"`
}

func NewTurn(worker WorkerID, move Direction, build Direction) Turn {
	return Turn{
		Move:  MoveRequest{Worker: worker, Direction: move},
		Build: &BuildRequest{Direction: build},
	}
}

func NewWinningTurn(worker WorkerID, move Direction) Turn {
	return Turn{Move: MoveRequest{Worker: worker, Direction: move}}
}
