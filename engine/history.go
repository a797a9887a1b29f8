package engine

import "reversi/game"

// History is an append-only record of every turn a game produced,
// starting with the initial one. Snapshots are independent values:
// reading one never observes changes from moves played later, so
// callers may branch off any index without copying or locking.
type History struct {
	turns []game.Turn
}

// Record appends a snapshot.
func (h *History) Record(turn game.Turn) {
	h.turns = append(h.turns, turn)
}

// Len returns the number of recorded snapshots.
func (h *History) Len() int {
	return len(h.turns)
}

// Snapshot returns the i-th recorded turn.
func (h *History) Snapshot(i int) game.Turn {
	return h.turns[i]
}

// Latest returns the most recent snapshot, and false when the history
// is still empty.
func (h *History) Latest() (game.Turn, bool) {
	if len(h.turns) == 0 {
		return game.Turn{}, false
	}
	return h.turns[len(h.turns)-1], true
}
