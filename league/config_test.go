package league

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[League]
n_teams = 4
max_budget = 600
penalty_weight = 0.25

[TeamStructure]
GK = 1
DEF = 3
MID = 2
FWD = 1

[GA]
pop_size = 60
generations = 50
elitism = false
selection = fitness_proportionate # roulette
crossover = positionbased_2child
mutation = between_teams
n_runs = 5
seed = 1234
output = TRACE
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.League.NumTeams)
	assert.Equal(t, 7, cfg.League.TeamSize)
	assert.Equal(t, 600.0, cfg.League.MaxBudget)
	assert.Equal(t, 0.25, cfg.League.PenaltyWeight)
	assert.Equal(t, 0.001, cfg.League.MinFitness)
	assert.Equal(t, []Position{GK, DEF, MID, FWD}, cfg.League.Positions())
	assert.Equal(t, 3, cfg.League.Quota(DEF))

	assert.Equal(t, 60, cfg.GA.PopSize)
	assert.Equal(t, 50, cfg.GA.Generations)
	assert.False(t, cfg.GA.Elitism)
	assert.Equal(t, SelectionFitnessProportionate, cfg.GA.Selection)
	assert.Equal(t, CrossoverPositionBasedPair, cfg.GA.Crossover)
	assert.Equal(t, MutationBetweenTeams, cfg.GA.Mutation)
	assert.Equal(t, 5, cfg.GA.Runs)
	assert.Equal(t, int64(1234), cfg.GA.Seed)
	assert.Equal(t, OutputTrace, cfg.GA.Output)

	// Untouched keys keep their defaults.
	assert.Equal(t, 0.9, cfg.GA.CrossoverProb)
	assert.Equal(t, 5, cfg.GA.TournamentSize)
}

func TestParseConfigEmptyUsesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 7, cfg.League.TeamSize)
	assert.Equal(t, 0, cfg.League.Quota(Position("XX")))
}

func TestParseConfigErrors(t *testing.T) {
	cases := map[string]string{
		"bad position":     "[TeamStructure]\nGK = 1\nLIBERO = 1\n",
		"bad count":        "[TeamStructure]\nGK = one\n",
		"zero quota":       "[TeamStructure]\nGK = 0\n",
		"size mismatch":    "[League]\nteam_size = 6\n",
		"no teams":         "[League]\nn_teams = 0\n",
		"negative budget":  "[League]\nmax_budget = -1\n",
		"min fitness":      "[League]\nmin_fitness = 0\n",
		"crossover prob":   "[GA]\ncrossover_prob = 1.5\n",
		"mutation prob":    "[GA]\nmutation_prob = -0.1\n",
		"tournament":       "[GA]\ntournament_size = 0\n",
		"unknown select":   "[GA]\nselection = rank\n",
		"unknown xo":       "[GA]\ncrossover = uniform\n",
		"unknown mutation": "[GA]\nmutation = scramble\n",
		"unknown output":   "[GA]\noutput = plot\n",
	}
	for name, src := range cases {
		_, err := ParseConfig([]byte(src))
		assert.Error(t, err, name)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "league-config")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.League.NumTeams)
	assert.Equal(t, SelectionFitnessProportionate, cfg.GA.Selection)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestCleanIniString(t *testing.T) {
	assert.Equal(t, "tournament", cleanIniString("  tournament ; comment"))
	assert.Equal(t, "global_perm", cleanIniString("global_perm"))
	assert.Equal(t, "", cleanIniString("# only a comment"))
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "configs", "league-config"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
