package engine

import (
	"fmt"

	"reversi/game"

	"github.com/rs/zerolog/log"
)

// Agent picks the next move for one side. FindMove is only called on
// turns where the agent's side has at least one legal move.
type Agent interface {
	FindMove(turn game.Turn) (game.Coord, error)
}

// Update pairs a played move with the turn it produced.
type Update struct {
	Move game.Coord
	Turn game.Turn
}

// UpdateGetter drains played moves one at a time, in order. ok is
// false when no update is available.
type UpdateGetter func() (Update, bool)

// Engine drives a local game between two agents.
type Engine struct {
	turn     game.Turn
	agents   map[game.Side]Agent
	history  History
	updateCh chan Update
}

// LocalEngine builds an engine on a fresh initial turn.
func LocalEngine(dark, light Agent) *Engine {
	return &Engine{
		turn: game.Initial(),
		agents: map[game.Side]Agent{
			game.Dark:  dark,
			game.Light: light,
		},
		// A game can never produce more moves than there are cells.
		updateCh: make(chan Update, game.NumCells),
	}
}

// Turn returns the current turn.
func (e *Engine) Turn() game.Turn {
	return e.turn
}

// History returns the snapshots recorded so far.
func (e *Engine) History() *History {
	return &e.history
}

// Updates returns a getter for the engine's move feed. The feed is
// closed once the game is over and every update has been drained.
func (e *Engine) Updates() UpdateGetter {
	return func() (Update, bool) {
		select {
		case update, ok := <-e.updateCh:
			return update, ok
		default:
			// No updates yet.
			return Update{}, false
		}
	}
}

// Run plays the game to its end and returns the winner's name, or ""
// on a draw.
func (e *Engine) Run() (string, error) {
	e.history.Record(e.turn)
	log.Info().Msgf("game started, %s moves first", e.turn.Player())

	for !e.turn.IsEndgame() {
		side, _ := e.turn.Status().Side()
		coord, err := e.agents[side].FindMove(e.turn)
		if err != nil {
			return "", fmt.Errorf("agent %s: %w", side, err)
		}

		next, err := e.turn.MakeMove(coord)
		if err != nil {
			return "", fmt.Errorf("move at %v by %s: %w", coord, side, err)
		}
		if nextSide, ok := next.Status().Side(); ok && nextSide == side {
			log.Info().Msgf("%s has no legal reply and passes", side.Opposite())
		}

		dark, light := next.Score()
		log.Info().
			Str("side", side.String()).
			Int("row", coord.Row).
			Int("col", coord.Col).
			Int("dark", dark).
			Int("light", light).
			Msg("move played")

		e.turn = next
		e.history.Record(next)
		e.updateCh <- Update{Move: coord, Turn: next}
	}
	close(e.updateCh)

	winner := e.turn.Winner()
	dark, light := e.turn.Score()
	if winner == "" {
		log.Info().Msgf("game over: draw %d-%d", dark, light)
	} else {
		log.Info().Msgf("game over: %s wins %d-%d", winner, dark, light)
	}
	return winner, nil
}
