package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// PlayerID - opaque identifier of a participant, stable for a whole tournament series.
type PlayerID string

// NewPlayerID - generates a fresh random identifier.
func NewPlayerID() PlayerID {
	return PlayerID(uuid.New().String())
}

// ParsePlayerID - validates that the given string is a well-formed identifier.
func ParsePlayerID(raw string) (PlayerID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("failed to parse player id %q: %w", raw, err)
	}

	return PlayerID(id.String()), nil
}

func (that PlayerID) String() string {
	return string(that)
}

type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`
}
