package game

import "fmt"

// Status of a turn: either in progress with a side to move, or ended.
// Ended is terminal; no operation transitions out of it.
type Status struct {
	side  Side
	ended bool
}

// InProgress returns the status with the given side to move next.
func InProgress(side Side) Status {
	return Status{side: side}
}

// GameEnded returns the terminal status.
func GameEnded() Status {
	return Status{ended: true}
}

// Ended reports whether the game has reached its terminal state.
func (s Status) Ended() bool {
	return s.ended
}

// Side returns the side to move, and false once the game has ended.
func (s Status) Side() (Side, bool) {
	return s.side, !s.ended
}

func (s Status) String() string {
	if s.ended {
		return "ended"
	}
	return s.side.String() + " to move"
}

// Turn is a full snapshot of a game: the board, whose move it is (or
// that the game has ended), and both running scores. A Turn is never
// mutated: MakeMove returns a fresh value, so the history of a game is
// an append-only chain of independent snapshots and any of them can be
// explored concurrently without locking.
type Turn struct {
	board      Board
	status     Status
	scoreDark  int
	scoreLight int
}

// Initial sets up the first turn: the standard four-disk cross in the
// center of the board, with Dark to move.
func Initial() Turn {
	var board Board
	start := []struct {
		side  Side
		coord Coord
	}{
		{Dark, NewCoord(3, 4)},
		{Dark, NewCoord(4, 3)},
		{Light, NewCoord(3, 3)},
		{Light, NewCoord(4, 4)},
	}
	for _, placement := range start {
		if err := board.PlaceDisk(placement.side, placement.coord); err != nil {
			panic(fmt.Sprintf("starting cell %v not placeable: %v", placement.coord, err))
		}
	}
	return Turn{
		board:      board,
		status:     InProgress(Dark),
		scoreDark:  2,
		scoreLight: 2,
	}
}

// Board returns a copy of the turn's board.
func (t Turn) Board() Board {
	return t.board
}

// Cell returns the board cell at coord.
func (t Turn) Cell(coord Coord) (Cell, error) {
	return t.board.Cell(coord)
}

// Status returns the turn's status.
func (t Turn) Status() Status {
	return t.status
}

// IsEndgame reports whether the game has ended.
func (t Turn) IsEndgame() bool {
	return t.status.Ended()
}

// Score returns the current disk counts for Dark and Light.
func (t Turn) Score() (dark, light int) {
	return t.scoreDark, t.scoreLight
}

// ScoreDiff returns Light's score minus Dark's.
func (t Turn) ScoreDiff() int {
	return t.scoreLight - t.scoreDark
}

// Tempo is the total number of disks on the board.
func (t Turn) Tempo() int {
	return t.scoreDark + t.scoreLight
}

// CheckMove reports whether placing a disk at coord is legal for the
// side to move. It fails with ErrEndedGame on a finished game, with
// CellTakenError when the target cell is occupied (which also bounds-
// checks coord), and with IllegalMoveError when no direction captures
// anything.
func (t Turn) CheckMove(coord Coord) error {
	if t.status.Ended() {
		return ErrEndedGame
	}
	cell, err := t.board.Cell(coord)
	if err != nil {
		return err
	}
	if !cell.IsEmpty() {
		return &CellTakenError{Coord: coord}
	}
	for _, dir := range Directions {
		if len(t.captureRun(coord, dir)) > 0 {
			return nil
		}
	}
	return &IllegalMoveError{Coord: coord}
}

// MakeMove plays a disk at coord for the side to move and returns the
// resulting turn. The receiver is left untouched, so callers may keep
// using it independently of the result. Failure modes are the same as
// CheckMove's.
func (t Turn) MakeMove(coord Coord) (Turn, error) {
	if t.status.Ended() {
		return Turn{}, ErrEndedGame
	}
	side, _ := t.status.Side()
	cell, err := t.board.Cell(coord)
	if err != nil {
		return Turn{}, err
	}
	if !cell.IsEmpty() {
		return Turn{}, &CellTakenError{Coord: coord}
	}

	next := t
	flips := 0
	for _, dir := range Directions {
		run := t.captureRun(coord, dir)
		for _, captured := range run {
			if err := next.board.FlipDisk(captured); err != nil {
				return Turn{}, err
			}
		}
		flips += len(run)
	}
	if flips == 0 {
		return Turn{}, &IllegalMoveError{Coord: coord}
	}
	if err := next.board.PlaceDisk(side, coord); err != nil {
		return Turn{}, err
	}

	// The mover gains the new disk plus every flipped one; the opponent
	// loses exactly the flipped ones. Net occupancy grows by one.
	switch side {
	case Dark:
		next.scoreDark += 1 + flips
		next.scoreLight -= flips
	case Light:
		next.scoreLight += 1 + flips
		next.scoreDark -= flips
	}

	// The opposite player moves next if it has any legal move. If not,
	// the turn passes back to the mover. If neither side can move, or
	// the board has filled up, the game is ended.
	if next.Tempo() == NumCells {
		next.status = GameEnded()
	} else {
		next.status = InProgress(side.Opposite())
		if !next.canMove() {
			next.status = InProgress(side)
			if !next.canMove() {
				next.status = GameEnded()
			}
		}
	}
	return next, nil
}

// captureRun scans outward from coord and returns, in board order, the
// coordinates of the opponent disks a move at coord would capture in
// direction dir. A capture needs a contiguous run of one or more
// opposite-side disks starting right next to coord and closed off by a
// disk of the moving side before the scan hits an empty cell or the
// edge. Returns nil when the direction captures nothing. Both the
// legality check and the flip execution use this one scan, so the two
// can never disagree.
func (t Turn) captureRun(coord Coord, dir Direction) []Coord {
	side, ok := t.status.Side()
	if !ok {
		return nil
	}
	var run []Coord
	next := coord
	for next.Step(dir) == nil {
		cell, err := t.board.Cell(next)
		if err != nil {
			return nil // unreachable: Step keeps next on the board
		}
		disk, taken := cell.Disk()
		if !taken {
			return nil
		}
		if disk.Side() == side {
			if len(run) == 0 {
				return nil
			}
			return run
		}
		run = append(run, next)
	}
	// Ran off the board before the run was closed.
	return nil
}

// canMove reports whether the side to move has at least one legal move
// anywhere on the board. Full-board scan; called at most twice per
// applied move.
func (t Turn) canMove() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			coord := NewCoord(row, col)
			cell, err := t.board.Cell(coord)
			if err != nil || !cell.IsEmpty() {
				continue
			}
			for _, dir := range Directions {
				if len(t.captureRun(coord, dir)) > 0 {
					return true
				}
			}
		}
	}
	return false
}
