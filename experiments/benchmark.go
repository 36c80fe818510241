package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"obstruction/engine"
	"obstruction/experiments/metrics"
	"obstruction/game"
	"obstruction/searcher"
	"obstruction/searcher/agent"
)

const recordDir = "experiments/records"

type boardSize struct {
	width  int
	height int
}

var benchmarkSizes = []boardSize{
	{6, 6},
	{6, 7},
	{7, 8},
	{8, 8},
}

// RunSearchBenchmark measures the first-move search from an empty board for
// every benchmark size and both algorithms, and stores the expanded-node
// records as CSV. The same size and depth always reproduce the same move
// and node count, so runs are comparable across machines.
func RunSearchBenchmark(depth int) error {
	writer, err := metrics.NewWriter(recordDir)
	if err != nil {
		return fmt.Errorf("failed to create benchmark writer: %w", err)
	}

	records := []metrics.SearchRecord{}
	for _, size := range benchmarkSizes {
		for _, algorithm := range []searcher.Algorithm{searcher.Minimax, searcher.AlphaBeta} {
			board, err := game.NewBoard(size.width, size.height)
			if err != nil {
				return err
			}
			s, err := searcher.New(depth, searcher.WithAlgorithm(algorithm))
			if err != nil {
				return err
			}

			move, metric, err := s.FindMove(board)
			if err != nil {
				return fmt.Errorf("search failed on %dx%d: %w", size.width, size.height, err)
			}

			log.Info().Msgf("%dx%d %s depth %d: move %s, %d nodes expanded in %s",
				size.width, size.height, metric.Algorithm, metric.Depth,
				move, metric.NodesExpanded, metric.Duration)
			records = append(records, metrics.SearchRecord{
				Width:        size.width,
				Height:       size.height,
				SearchMetric: metric,
			})
		}
	}

	err = writer.WriteSearchRecords(records)
	if err != nil {
		return fmt.Errorf("failed to store benchmark records: %w", err)
	}
	log.Info().Msgf("benchmark records stored in %s", writer.Dir())
	return nil
}

// RunGame plays one full game on a width x height board between an
// alpha-beta agent and a seeded random baseline, storing per-move search
// records as CSV.
func RunGame(width, height, depth int, seed uint64) (game.Player, error) {
	board, err := game.NewBoard(width, height)
	if err != nil {
		return game.NoPlayer, err
	}
	s, err := searcher.New(depth, searcher.WithAlphaBeta())
	if err != nil {
		return game.NoPlayer, err
	}

	e := engine.LocalEngine(board, agent.NewSearchAgent(s), agent.NewRandomAgent(seed))
	winner, records, err := e.Run()
	if err != nil {
		return game.NoPlayer, err
	}

	writer, err := metrics.NewWriter(recordDir)
	if err != nil {
		return game.NoPlayer, fmt.Errorf("failed to create game writer: %w", err)
	}
	err = writer.WriteMoveRecords(records)
	if err != nil {
		return game.NoPlayer, fmt.Errorf("failed to store move records: %w", err)
	}
	return winner, nil
}
