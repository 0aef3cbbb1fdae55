package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
)

const (
	BoardSize = 5

	// MaxLevel is the highest level a worker can stand on; building on it places a dome.
	MaxLevel  = 3
	DomeLevel = 4
)

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Step - returns the neighbouring position in the given direction.
func (that Position) Step(direction Direction) Position {
	delta := directionDeltas[direction]

	return Position{Row: that.Row + delta.Row, Col: that.Col + delta.Col}
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

type Direction string

const (
	North     Direction = "N"
	NorthEast Direction = "NE"
	East      Direction = "E"
	SouthEast Direction = "SE"
	South     Direction = "S"
	SouthWest Direction = "SW"
	West      Direction = "W"
	NorthWest Direction = "NW"
)

// Directions lists the eight neighbourhood directions in clockwise order.
var Directions = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var directionDeltas = map[Direction]Position{
	North:     {Row: -1, Col: 0},
	NorthEast: {Row: -1, Col: 1},
	East:      {Row: 0, Col: 1},
	SouthEast: {Row: 1, Col: 1},
	South:     {Row: 1, Col: 0},
	SouthWest: {Row: 1, Col: -1},
	West:      {Row: 0, Col: -1},
	NorthWest: {Row: -1, Col: -1},
}

func (that Direction) Valid() bool {
	_, ok := directionDeltas[that]
	return ok
}

// ParseDirection - accepts any case, e.g. "ne".
func ParseDirection(raw string) (Direction, error) {
	direction := Direction(strings.ToUpper(strings.TrimSpace(raw)))
	if !direction.Valid() {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidDirection, raw)
	}

	return direction, nil
}

// Cell - a single board square. Occupancy is kept as a worker reference by value.
type Cell struct {
	Height int      `json:"height"`
	Domed  bool     `json:"domed"`
	Worker WorkerID `json:"worker"`
}

func (that Cell) IsOccupied() bool {
	return that.Worker.Owner != ""
}

// Board - fixed grid of cells. Copying the value yields an independent snapshot.
type Board struct {
	Cells [BoardSize][BoardSize]Cell `json:"cells"`
}

// Cell - returns the cell at the position; the position must be in bounds.
func (that *Board) Cell(pos Position) Cell {
	return that.Cells[pos.Row][pos.Col]
}

func (that *Board) Height(pos Position) int {
	return that.Cells[pos.Row][pos.Col].Height
}

func (that *Board) IsOccupied(pos Position) bool {
	return that.Cells[pos.Row][pos.Col].IsOccupied()
}

func (that *Board) occupy(pos Position, worker WorkerID) {
	that.Cells[pos.Row][pos.Col].Worker = worker
}

func (that *Board) vacate(pos Position) {
	that.Cells[pos.Row][pos.Col].Worker = WorkerID{}
}

// Raise - adds one level to the cell, domes it when it reaches DomeLevel.
func (that *Board) Raise(pos Position) error {
	if !pos.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, pos)
	}

	cell := &that.Cells[pos.Row][pos.Col]
	if cell.Domed {
		return fmt.Errorf("%w: %s", apperror.ErrCellDomed, pos)
	}

	if cell.IsOccupied() {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, pos)
	}

	cell.Height++
	cell.Domed = cell.Height == DomeLevel

	return nil
}
