// Package experiments runs batches of soak games and stores their metrics.
package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"cerke/engine"
	"cerke/experiments/metrics"
	"cerke/game"
)

type SoakConfig struct {
	Games    int
	MaxMoves int
	Seed     uint64
}

// RunSoak plays cfg.Games games, alternating the first mover, and writes the
// records through w. w may be nil, in which case nothing is stored.
func RunSoak(cfg SoakConfig, w *metrics.Writer) ([]metrics.GameRecord, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Int("games", cfg.Games).Int("max_moves", cfg.MaxMoves).Msg("starting soak experiment...")

	for i := 0; i < cfg.Games; i++ {
		first := game.IASide
		if i%2 == 1 {
			first = game.ASide
		}
		e := engine.NewLocalEngine(
			engine.WithMaxMoves(cfg.MaxMoves),
			engine.WithSeed(cfg.Seed+uint64(2*i)),
			engine.WithFirst(first),
			engine.WithCollector(metrics.NewCollector()),
		)

		gameMetric, moveMetrics, err := e.Run()
		if err != nil {
			return gameRecords, fmt.Errorf("game %d: %w", i+1, err)
		}

		gameRecords = append(gameRecords, metrics.GameRecord{ID: i + 1, GameMetric: gameMetric})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
		}
		log.Info().Msgf("completed game %d of %d with %d moves", i+1, cfg.Games, gameMetric.TotalMoves)
	}

	log.Info().Msg("completed soak experiment")
	if w == nil {
		return gameRecords, nil
	}

	err := w.WriteGameRecords(gameRecords)
	if err != nil {
		return gameRecords, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Str("dir", w.Dir()).Msg("stored game records")

	err = w.WriteMoveRecords(moveRecords)
	if err != nil {
		return gameRecords, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", w.Dir()).Msg("stored move records")
	return gameRecords, nil
}
