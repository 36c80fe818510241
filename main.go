package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"obstruction/experiments"
)

const (
	lookaheadDepth = 4
	demoSeed       = 1
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	err := experiments.RunSearchBenchmark(lookaheadDepth)
	if err != nil {
		log.Fatal().Err(err).Msg("search benchmark failed")
	}

	winner, err := experiments.RunGame(6, 6, lookaheadDepth, demoSeed)
	if err != nil {
		log.Fatal().Err(err).Msg("demo game failed")
	}
	log.Info().Msgf("demo game winner: player %s", winner)
}
