package strategy

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/sasha-s/go-deadlock"

	"github.com/rocketscienceinc/santorini-backend/internal/entity"
	"github.com/rocketscienceinc/santorini-backend/internal/santorini"
)

// Human - asks a person at a console. Input that fails the local rule check is re-prompted.
//
//	placement: "<row> <col>"
//	turn:      "<worker> <move-dir> [<build-dir>]", e.g. "0 NE S"
type Human struct {
	rules *santorini.Rules

	mu   deadlock.Mutex
	in   *bufio.Scanner
	out  io.Writer
	self entity.PlayerID

	reading sync.Once
	lines   chan inputLine
}

type inputLine struct {
	text string
	err  error
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		rules: santorini.NewRules(),
		in:    bufio.NewScanner(in),
		out:   out,
		lines: make(chan inputLine),
	}
}

func (that *Human) Name() string {
	return "human"
}

func (that *Human) NextPlacement(ctx context.Context, self entity.PlayerID, placed []entity.InitWorker) (entity.PlaceRequest, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.self = self
	board := placementBoard(placed)
	that.render(board)

	for {
		line, err := that.prompt(ctx, "place a worker (row col): ")
		if err != nil {
			return entity.PlaceRequest{}, err
		}

		req, err := parsePlacement(line)
		if err == nil {
			err = checkPlacement(that.rules, placed, req)
		}

		if err != nil {
			fmt.Fprintf(that.out, "  %v\n", err)
			continue
		}

		return req, nil
	}
}

func (that *Human) NextTurn(ctx context.Context, view entity.GameView) (entity.Turn, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.self = view.Viewer
	that.render(view.Board)

	for {
		line, err := that.prompt(ctx, fmt.Sprintf("turn %d (worker move [build]): ", view.TurnCount+1))
		if err != nil {
			return entity.Turn{}, err
		}

		turn, err := parseTurn(view.Viewer, line)
		if err == nil {
			err = checkTurn(that.rules, view, turn)
		}

		if err != nil {
			fmt.Fprintf(that.out, "  %v\n", err)
			continue
		}

		return turn, nil
	}
}

func (that *Human) Notify(_ context.Context, view entity.GameView) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if view.Phase == entity.PhasePlaying && view.Turn != view.Viewer {
		fmt.Fprintln(that.out, "waiting for the opponent...")
	}

	return nil
}

func (that *Human) Finish(_ context.Context, outcome entity.GameOutcome) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch {
	case outcome.Aborted:
		fmt.Fprintln(that.out, "the game was aborted")
	case outcome.Disqualified == that.self:
		fmt.Fprintf(that.out, "you were disqualified: %s\n", outcome.Reason)
	case outcome.Winner == that.self:
		fmt.Fprintf(that.out, "you won after %d turns\n", outcome.Turns)
	default:
		fmt.Fprintf(that.out, "you lost after %d turns\n", outcome.Turns)
	}

	return nil
}

// prompt - waits for the next non-blank line or the end of the context, whichever comes first.
func (that *Human) prompt(ctx context.Context, text string) (string, error) {
	that.reading.Do(func() {
		go that.readLines()
	})

	fmt.Fprint(that.out, text)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case line, ok := <-that.lines:
			if !ok {
				return "", io.ErrUnexpectedEOF
			}

			if line.err != nil {
				return "", line.err
			}

			if trimmed := strings.TrimSpace(line.text); trimmed != "" {
				return trimmed, nil
			}
		}
	}
}

// readLines - the only reader of the input. A line is handed over only while a prompt waits for it.
func (that *Human) readLines() {
	defer close(that.lines)

	for that.in.Scan() {
		that.lines <- inputLine{text: that.in.Text()}
	}

	if err := that.in.Err(); err != nil {
		that.lines <- inputLine{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

// render - one cell per column: height (^ for a dome) followed by the worker, "S" for
// the viewer's own workers and "O" for the opponent's.
func (that *Human) render(board entity.Board) {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := range entity.BoardSize {
		fmt.Fprintf(&sb, " %-3d", col)
	}
	sb.WriteByte('\n')

	for row := range entity.BoardSize {
		fmt.Fprintf(&sb, "%d  ", row)

		for col := range entity.BoardSize {
			cell := board.Cells[row][col]

			height := strconv.Itoa(cell.Height)
			if cell.Domed {
				height = "^"
			}

			worker := ".."
			if cell.IsOccupied() {
				owner := "O"
				if cell.Worker.Owner == that.self {
					owner = "S"
				}
				worker = owner + strconv.Itoa(cell.Worker.Index)
			}

			fmt.Fprintf(&sb, " %s%s", height, worker)
		}

		sb.WriteByte('\n')
	}

	fmt.Fprint(that.out, sb.String())
}

func parsePlacement(line string) (entity.PlaceRequest, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.PlaceRequest{}, fmt.Errorf("expected \"row col\", got %q", line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.PlaceRequest{}, fmt.Errorf("failed to parse row: %w", err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.PlaceRequest{}, fmt.Errorf("failed to parse column: %w", err)
	}

	return entity.PlaceRequest{Position: entity.Position{Row: row, Col: col}}, nil
}

func parseTurn(self entity.PlayerID, line string) (entity.Turn, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return entity.Turn{}, fmt.Errorf("expected \"worker move [build]\", got %q", line)
	}

	index, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Turn{}, fmt.Errorf("failed to parse worker: %w", err)
	}

	move, err := entity.ParseDirection(fields[1])
	if err != nil {
		return entity.Turn{}, err
	}

	worker := entity.WorkerID{Owner: self, Index: index}
	if len(fields) == 2 {
		return entity.NewWinningTurn(worker, move), nil
	}

	build, err := entity.ParseDirection(fields[2])
	if err != nil {
		return entity.Turn{}, err
	}

	return entity.NewTurn(worker, move, build), nil
}
