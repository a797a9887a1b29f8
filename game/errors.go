package game

import (
	"errors"
	"fmt"
)

// ErrEndedGame reports an operation attempted after the game reached
// its terminal state.
var ErrEndedGame = errors.New("game is already ended")

// OutOfBoundsError reports a coordinate outside the board.
type OutOfBoundsError struct {
	Coord Coord
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinate %v is out of bounds", e.Coord)
}

// CellTakenError reports an attempt to move onto an occupied cell.
type CellTakenError struct {
	Coord Coord
}

func (e *CellTakenError) Error() string {
	return fmt.Sprintf("cell %v is already taken", e.Coord)
}

// EmptyCellError reports a disk operation on an empty cell.
type EmptyCellError struct {
	Coord Coord
}

func (e *EmptyCellError) Error() string {
	return fmt.Sprintf("cell %v holds no disk", e.Coord)
}

// IllegalMoveError reports a move that captures no disks in any
// direction.
type IllegalMoveError struct {
	Coord Coord
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("move at %v captures no disks", e.Coord)
}
