package agent

import (
	"math"

	"tron/experiments/metrics"
	"tron/game"
	"tron/searcher"

	"golang.org/x/exp/rand"
)

type samplingAgent struct {
	searcher    *searcher.Searcher
	depth       int
	temperature float64
	rand        *rand.Rand
}

// NewSamplingAgent returns an agent that samples its move from the final
// search scores instead of always playing the best one. It is used to
// diversify self-play matches.
func NewSamplingAgent(s *searcher.Searcher, depth int, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &samplingAgent{
		searcher:    s,
		depth:       depth,
		temperature: temperature,
		rand:        rand.New(rand.NewSource(seed)),
	}
}

func (a *samplingAgent) FindMove(correlationID string, pos game.Position, grid *game.Grid) (game.Move, metrics.SearchMetric) {
	report := a.searcher.Play(correlationID, pos, grid, a.depth, nil)
	policy := adjustTemperature(report.Scores, a.temperature)
	return sample(policy, a.rand.Float64()), report.Metric
}

// adjustTemperature turns scores into move probabilities. Negative scores
// count as zero. When every score is zero the policy is uniform.
func adjustTemperature(scores map[game.Move]int, temperature float64) map[game.Move]float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	policy := make(map[game.Move]float64, len(game.Moves))
	for _, move := range game.Moves {
		prob := math.Pow(math.Max(float64(scores[move]), 0), exponent)
		sum += prob
		policy[move] = prob
	}
	for _, move := range game.Moves {
		if sum == 0 {
			policy[move] = 1.0 / float64(len(game.Moves))
			continue
		}
		policy[move] /= sum
	}
	return policy
}

func sample(policy map[game.Move]float64, sampled float64) game.Move {
	cumulative := 0.0
	lastMove := game.Forward
	for _, move := range game.Moves {
		if policy[move] == 0 {
			continue
		}
		lastMove = move
		cumulative += policy[move]
		if sampled < cumulative {
			return move
		}
	}
	return lastMove // Fallback in case of rounding errors
}
