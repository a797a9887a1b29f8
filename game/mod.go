package game

// Move is a single action a player can take on a State.
type Move interface {
	IsStochastic() bool
}

// Placement puts a new disk on the named cell. It is the only kind of
// move in the game, and it is fully deterministic.
type Placement struct {
	Coord Coord
}

func (p Placement) IsStochastic() bool {
	return false
}

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() string
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Winner() string
}

// Evaluate scores a game state between -1 and 1 indicating how
// favorable the current player's position is to a winning (positive)
// outcome.
type Evaluate func(State) float64
