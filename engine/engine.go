// Package engine plays whole games between two players on top of a
// gamemaster and checks the field invariants after every step.
package engine

import "cerke/experiments/metrics"

const MaxMoves = 300

type Engine interface {
	// Run plays until a player has nothing to do or the move limit is reached.
	Run() (metrics.GameMetric, []metrics.MoveMetric, error)
}
