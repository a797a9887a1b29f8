package game

import "hash/fnv"

// Player returns the name of the side to move, or "" once the game has
// ended.
func (t Turn) Player() string {
	side, ok := t.status.Side()
	if !ok {
		return ""
	}
	return side.String()
}

// LegalMoves enumerates every legal placement for the side to move.
// The slice is empty once the game has ended.
func (t Turn) LegalMoves() []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			coord := NewCoord(row, col)
			if t.CheckMove(coord) == nil {
				moves = append(moves, Placement{Coord: coord})
			}
		}
	}
	return moves
}

// Play applies a move and returns the resulting state. It panics on a
// move MakeMove rejects; drivers must pick from LegalMoves.
func (t Turn) Play(move Move) State {
	placement, ok := move.(Placement)
	if !ok {
		panic("unexpected move type")
	}
	next, err := t.MakeMove(placement.Coord)
	if err != nil {
		panic(err)
	}
	return next
}

// Hash folds the grid and the side to move into a 64-bit FNV-1a value.
func (t Turn) Hash() StateHash {
	hasher := fnv.New64a()

	for _, row := range t.board.Cells() {
		for _, cell := range row {
			marker := byte(0)
			if disk, ok := cell.Disk(); ok {
				marker = byte(disk.Side()) + 1
			}
			hasher.Write([]byte{marker})
		}
	}

	marker := byte(0)
	if side, ok := t.status.Side(); ok {
		marker = byte(side) + 1
	}
	hasher.Write([]byte{marker})

	return StateHash(hasher.Sum64())
}

// Winner names the side holding more disks once the game has ended.
// Returns "" while the game is running and on a drawn endgame.
func (t Turn) Winner() string {
	if !t.status.Ended() {
		return ""
	}
	switch {
	case t.scoreDark > t.scoreLight:
		return Dark.String()
	case t.scoreLight > t.scoreDark:
		return Light.String()
	default:
		return ""
	}
}
