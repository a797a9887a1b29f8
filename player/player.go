package player

import (
	"fmt"

	"reversi/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random player. The same seed replays the same
// choices.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// FindMove picks one of the legal placements at random.
func (p *Random) FindMove(turn game.Turn) (game.Coord, error) {
	moves := turn.LegalMoves()
	if len(moves) == 0 {
		return game.Coord{}, fmt.Errorf("no legal moves for %s", turn.Player())
	}
	move := moves[p.rng.Intn(len(moves))]
	return move.(game.Placement).Coord, nil
}

// Greedy plays the legal move that maximizes its disk lead right after
// the move. One ply only, it never searches ahead.
type Greedy struct{}

// FindMove tries every legal placement and keeps the one with the best
// resulting disk lead. Earlier moves win ties, so the choice is
// deterministic.
func (p Greedy) FindMove(turn game.Turn) (game.Coord, error) {
	side, ok := turn.Status().Side()
	if !ok {
		return game.Coord{}, game.ErrEndedGame
	}

	var best game.Coord
	bestLead := 0
	found := false
	for _, move := range turn.LegalMoves() {
		coord := move.(game.Placement).Coord
		next, err := turn.MakeMove(coord)
		if err != nil {
			return game.Coord{}, err
		}
		lead := next.ScoreDiff() // Light minus Dark
		if side == game.Dark {
			lead = -lead
		}
		if !found || lead > bestLead {
			best = coord
			bestLead = lead
			found = true
		}
	}
	if !found {
		return game.Coord{}, fmt.Errorf("no legal moves for %s", side)
	}
	return best, nil
}
