package main

import (
	"fmt"

	"reversi/engine"
	"reversi/player"

	"github.com/rs/zerolog"
)

type config struct {
	games int
	seed  uint64
}

func main() {
	// Keep the per-move engine log quiet for batch play.
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	runMatch(config{games: 10, seed: 1})
}

// runMatch plays a batch of games between a random Dark player and a
// greedy Light player and tallies the winners.
func runMatch(cfg config) {
	fmt.Printf("Running %d games: Random (Dark) vs Greedy (Light)...\n", cfg.games)

	tally := map[string]int{}
	for i := 0; i < cfg.games; i++ {
		// A fresh seed per game so the batch is not one repeated game.
		dark := player.NewRandom(cfg.seed + uint64(i))
		light := player.Greedy{}

		e := engine.LocalEngine(dark, light)
		winner, err := e.Run()
		if err != nil {
			fmt.Printf("Game %d aborted: %v\n", i+1, err)
			continue
		}

		if winner == "" {
			winner = "Draw"
		}
		darkScore, lightScore := e.Turn().Score()
		fmt.Printf("Game %d over! Winner: %s (%d-%d in %d moves)\n",
			i+1, winner, darkScore, lightScore, e.History().Len()-1)
		tally[winner]++
	}

	fmt.Printf("Finished: %+v\n", tally)
}
