package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"obstruction/experiments/metrics"
	"obstruction/game"
	"obstruction/searcher/agent"
)

// Engine drives a local game between two in-process agents.
type Engine struct {
	State    game.State
	maxAgent agent.Agent
	minAgent agent.Agent
}

func LocalEngine(start game.State, maxAgent, minAgent agent.Agent) *Engine {
	if maxAgent == nil || minAgent == nil {
		panic("both players need an agent")
	}
	return &Engine{
		State:    start,
		maxAgent: maxAgent,
		minAgent: minAgent,
	}
}

// Run alternates turns until the side to move has no legal move, and
// returns the winner together with one record per move played. The first
// agent error aborts the game.
func (e *Engine) Run() (game.Player, []metrics.MoveRecord, error) {
	log.Info().Msgf("player %s is starting", e.State.Player())

	var records []metrics.MoveRecord
	step := 1
	for !e.State.IsTerminal() {
		mover := e.State.Player()
		current := e.maxAgent
		if mover == game.Min {
			current = e.minAgent
		}

		move, metric, err := current.FindMove(e.State)
		if err != nil {
			return game.NoPlayer, records, fmt.Errorf("player %s found no move at step %d: %w", mover, step, err)
		}

		next, err := e.State.Play(move)
		if err != nil {
			return game.NoPlayer, records, fmt.Errorf("player %s chose an illegal move at step %d: %w", mover, step, err)
		}

		log.Info().Msgf("step %d: player %s plays %s (%s, %d nodes expanded)",
			step, mover, move, metric.Algorithm, metric.NodesExpanded)

		records = append(records, metrics.MoveRecord{
			Step:         step,
			Player:       mover.String(),
			SearchMetric: metric,
		})
		e.State = next
		step++
	}

	winner := e.State.Winner()
	log.Info().Msgf("game over after %d moves: player %s wins", step-1, winner)
	return winner, records, nil
}
