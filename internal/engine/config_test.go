package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	require.Equal(t, AlgorithmAlphaBeta, cfg.Algorithm)
	require.Equal(t, 2, cfg.Depth)
	require.Equal(t, 8, cfg.MaxBranch)
	require.Equal(t, 2, cfg.Heuristic)
	require.Equal(t, 2, cfg.CandidateRadius)
	require.Equal(t, 20, cfg.MaxCandidates)
	require.Equal(t, defaultWeights, cfg.Weights)
	require.Zero(t, cfg.TimeLimit)
	require.Zero(t, cfg.NodeBudget)
}

func TestResolveConfigFillsZeroFields(t *testing.T) {
	cfg := resolveConfig(SearchConfig{Depth: 5})
	require.Equal(t, 5, cfg.Depth)
	require.Equal(t, AlgorithmAlphaBeta, cfg.Algorithm)
	require.Equal(t, 8, cfg.MaxBranch)
	require.Equal(t, defaultWeights, cfg.Weights)
}

func TestResolveConfigRejectsUnknownHeuristic(t *testing.T) {
	cfg := resolveConfig(SearchConfig{Heuristic: 7})
	require.Equal(t, 2, cfg.Heuristic)

	cfg = resolveConfig(SearchConfig{Heuristic: 1})
	require.Equal(t, 1, cfg.Heuristic)
}
