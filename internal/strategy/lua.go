package strategy

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sasha-s/go-deadlock"
	lua "github.com/yuin/gopher-lua"

	"github.com/rocketscienceinc/santorini-backend/internal/entity"
	"github.com/rocketscienceinc/santorini-backend/internal/santorini"
)

var ErrMissingFunction = errors.New("script does not define the required function")

const (
	placeFunction = "place"
	turnFunction  = "turn"
)

// Lua - a bot written as a Lua script exporting two functions:
//
//	place(view) -> {row=, col=}
//	turn(view)  -> {worker=, move=, build=}   -- build is nil for a winning move
//
// Positions are zero based. view.legal lists every legal answer.
type Lua struct {
	passive

	name  string
	rules *santorini.Rules

	mu    deadlock.Mutex
	state *lua.LState
}

func NewLua(name, script string) (*Lua, error) {
	state := lua.NewState()

	if err := state.DoString(script); err != nil {
		state.Close()
		return nil, fmt.Errorf("failed to load lua script: %w", err)
	}

	for _, function := range []string{placeFunction, turnFunction} {
		if state.GetGlobal(function).Type() != lua.LTFunction {
			state.Close()
			return nil, fmt.Errorf("%w: %s", ErrMissingFunction, function)
		}
	}

	return &Lua{
		name:  name,
		rules: santorini.NewRules(),
		state: state,
	}, nil
}

func NewLuaFromFile(name, path string) (*Lua, error) {
	script, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lua script: %w", err)
	}

	return NewLua(name, string(script))
}

func (that *Lua) Name() string {
	return that.name
}

func (that *Lua) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.state.Close()
}

func (that *Lua) NextPlacement(ctx context.Context, self entity.PlayerID, placed []entity.InitWorker) (entity.PlaceRequest, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	view := that.state.NewTable()
	view.RawSetString("self", lua.LString(self))

	workers := that.state.NewTable()
	for _, worker := range placed {
		table := that.positionTable(worker.Position)
		table.RawSetString("owner", lua.LString(worker.Owner))
		workers.Append(table)
	}
	view.RawSetString("placed", workers)

	legal := that.state.NewTable()
	for _, req := range that.rules.LegalPlacements(placementBoard(placed)) {
		legal.Append(that.positionTable(req.Position))
	}
	view.RawSetString("legal", legal)

	answer, err := that.invoke(ctx, placeFunction, view)
	if err != nil {
		return entity.PlaceRequest{}, err
	}

	req := entity.PlaceRequest{Position: entity.Position{
		Row: int(lua.LVAsNumber(answer.RawGetString("row"))),
		Col: int(lua.LVAsNumber(answer.RawGetString("col"))),
	}}

	if err = checkPlacement(that.rules, placed, req); err != nil {
		return entity.PlaceRequest{}, err
	}

	return req, nil
}

func (that *Lua) NextTurn(ctx context.Context, gameView entity.GameView) (entity.Turn, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	view := that.state.NewTable()
	view.RawSetString("self", lua.LString(gameView.Viewer))
	view.RawSetString("turn_count", lua.LNumber(gameView.TurnCount))
	view.RawSetString("board", that.boardTable(gameView.Board))

	workers := that.state.NewTable()
	for _, worker := range gameView.Workers {
		table := that.positionTable(worker.Position)
		table.RawSetString("owner", lua.LString(worker.ID.Owner))
		table.RawSetString("index", lua.LNumber(worker.ID.Index))
		workers.Append(table)
	}
	view.RawSetString("workers", workers)

	legal := that.state.NewTable()
	for _, turn := range that.rules.LegalTurns(gameView.State()) {
		table := that.state.NewTable()
		table.RawSetString("worker", lua.LNumber(turn.Move.Worker.Index))
		table.RawSetString("move", lua.LString(turn.Move.Direction))
		if turn.Build != nil {
			table.RawSetString("build", lua.LString(turn.Build.Direction))
		}
		legal.Append(table)
	}
	view.RawSetString("legal", legal)

	answer, err := that.invoke(ctx, turnFunction, view)
	if err != nil {
		return entity.Turn{}, err
	}

	worker := entity.WorkerID{Owner: gameView.Viewer, Index: int(lua.LVAsNumber(answer.RawGetString("worker")))}
	turn := entity.NewWinningTurn(worker, entity.Direction(lua.LVAsString(answer.RawGetString("move"))))

	if build := answer.RawGetString("build"); build != lua.LNil {
		turn.Build = &entity.BuildRequest{Direction: entity.Direction(lua.LVAsString(build))}
	}

	if err = checkTurn(that.rules, gameView, turn); err != nil {
		return entity.Turn{}, err
	}

	return turn, nil
}

// invoke - calls a script function with the view; the script is interrupted when ctx is done.
func (that *Lua) invoke(ctx context.Context, function string, view *lua.LTable) (*lua.LTable, error) {
	that.state.SetContext(ctx)
	defer that.state.RemoveContext()

	err := that.state.CallByParam(lua.P{
		Fn:      that.state.GetGlobal(function),
		NRet:    1,
		Protect: true,
	}, view)
	if err != nil {
		return nil, fmt.Errorf("lua %s failed: %w", function, err)
	}

	ret := that.state.Get(-1)
	that.state.Pop(1)

	answer, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("lua %s returned %s instead of a table", function, ret.Type())
	}

	return answer, nil
}

func (that *Lua) positionTable(pos entity.Position) *lua.LTable {
	table := that.state.NewTable()
	table.RawSetString("row", lua.LNumber(pos.Row))
	table.RawSetString("col", lua.LNumber(pos.Col))

	return table
}

func (that *Lua) boardTable(board entity.Board) *lua.LTable {
	rows := that.state.NewTable()

	for row := range entity.BoardSize {
		cols := that.state.NewTable()

		for col := range entity.BoardSize {
			cell := board.Cells[row][col]

			table := that.state.NewTable()
			table.RawSetString("height", lua.LNumber(cell.Height))
			table.RawSetString("domed", lua.LBool(cell.Domed))
			if cell.IsOccupied() {
				table.RawSetString("owner", lua.LString(cell.Worker.Owner))
				table.RawSetString("worker", lua.LNumber(cell.Worker.Index))
			}
			cols.Append(table)
		}

		rows.Append(cols)
	}

	return rows
}
