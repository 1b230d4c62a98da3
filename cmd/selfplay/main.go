package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"checkers-engine/draughts"
	"checkers-engine/internal/config"
)

func main() {
	cfg := config.Load()
	cfg.SetupLogging(os.Stderr)

	app := &cli.App{
		Name:  "selfplay",
		Usage: "Play random legal games and check position invariants after every ply",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "games", Aliases: []string{"n"}, Usage: "number of games", Value: cfg.SelfplayGames},
			&cli.Int64Flag{Name: "seed", Usage: "random seed", Value: cfg.SelfplaySeed},
			&cli.IntFlag{Name: "max-plies", Usage: "declare a draw after this many plies", Value: 400},
			&cli.StringFlag{Name: "pos", Usage: "starting position string", Value: draughts.StartPosition},
			&cli.BoolFlag{Name: "legacy-kings", Usage: "end a king's turn after a single capture"},
			&cli.BoolFlag{Name: "json", Usage: "print each final position as JSON"},
		},
		Action: func(cCtx *cli.Context) error {
			start, err := draughts.ParsePosition(cCtx.String("pos"))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			start.SetRules(draughts.Rules{LegacyKingChains: cCtx.Bool("legacy-kings")})

			rng := rand.New(rand.NewSource(cCtx.Int64("seed")))
			var tally Tally
			for game := 0; game < cCtx.Int("games"); game++ {
				res, err := PlayRandom(start, rng, cCtx.Int("max-plies"))
				if err != nil {
					log.Error().Err(err).Int("game", game).Msg("invariant violated")
					return cli.Exit(err.Error(), 1)
				}
				tally.Add(res)
				log.Debug().Int("game", game).Int("ply", res.Plies).Str("winner", res.Winner()).Msg("game over")
				if cCtx.Bool("json") {
					out, err := json.Marshal(res.Final.Render())
					if err != nil {
						return err
					}
					fmt.Println(string(out))
				}
			}
			log.Info().
				Int("games", tally.Games).
				Int("red", tally.Wins[draughts.Red]).
				Int("white", tally.Wins[draughts.White]).
				Int("draws", tally.Draws).
				Int("ply", tally.Plies).
				Msg("selfplay done")
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("selfplay failed")
	}
}
