package experiments

import (
	"fmt"

	"tron/engine"
	"tron/experiments/metrics"
	"tron/meta"
	"tron/searcher"
	"tron/searcher/agent"

	"github.com/rs/zerolog/log"
)

// RunDepthExperiment pairs every configured depth against the random
// baseline. Seats alternate between games so neither agent always starts
// on the same side of the arena.
func RunDepthExperiment(config meta.Config) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.Random, Seed: config.Seed}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for i, depth := range config.Experiment.Depths {
		c := metrics.AgentConfig{ID: i + 1, Kind: metrics.Lookahead, Depth: depth, Seed: config.Seed}
		configs = append(configs, c)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, c})
	}

	return runExperiment("depth", config, configs, matchUps)
}

func runExperiment(name string, config meta.Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	numGames := config.Experiment.Games

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < numGames; i++ {
			config1, config2 := matchup[0], matchup[1]
			if i%2 == 1 {
				config1, config2 = config2, config1
			}

			count++
			winner, gameMetric, moveMetrics := runGame(config, count, config1, config2)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.NewMoveRecord(count, mm))
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(config.Experiment.OutDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored %d games and %d moves in %s", len(gameRecords), len(moveRecords), writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(config meta.Config, game int, config1, config2 metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	agents := []agent.Agent{createAgent(config1, game), createAgent(config2, game)}
	e := engine.LocalEngine(agents, config.Width, config.Height).WithMaxTurns(config.MaxTurns)

	return e.Run()
}

// createAgent derives a per-game seed so repeated games differ but the whole
// experiment is reproducible from one seed.
func createAgent(config metrics.AgentConfig, game int) agent.Agent {
	seed := config.Seed + uint64(game)*1000 + uint64(config.ID)
	switch config.Kind {
	case metrics.Random:
		return agent.NewRandomAgent(seed)
	default:
		s := searcher.NewSearcher(searcher.WithSeed(seed), searcher.WithMetrics())
		return agent.NewLookaheadAgent(s, config.Depth)
	}
}
