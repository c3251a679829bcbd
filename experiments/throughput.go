package experiments

import (
	"tron/experiments/metrics"
	"tron/meta"
)

// RunThroughputExperiment measures search cost per depth. Both seats use the
// same config for the same playing strength and similar game length.
func RunThroughputExperiment(config meta.Config) (string, error) {
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for i, depth := range config.Experiment.Depths {
		c := metrics.AgentConfig{ID: i + 1, Kind: metrics.Lookahead, Depth: depth, Seed: config.Seed}
		configs = append(configs, c)
		matchUps = append(matchUps, []metrics.AgentConfig{c, c})
	}

	return runExperiment("throughput", config, configs, matchUps)
}
