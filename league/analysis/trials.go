// Package analysis runs repeated evolutions of a league search and summarises the
// per-generation best fitness, for comparing operator combinations.
package analysis

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/baldhumanity/league-go/league"
)

// Combination is one choice of operators plus the elitism switch.
type Combination struct {
	Selection string
	Crossover string
	Mutation  string
	Elitism   bool
}

// Label names the combination, e.g. "tournament|blockwise|global_perm|elitism_true".
func (c Combination) Label() string {
	return fmt.Sprintf("%s|%s|%s|elitism_%t", c.Selection, c.Crossover, c.Mutation, c.Elitism)
}

// Apply returns a copy of base using the combination's operators.
func (c Combination) Apply(base league.GAConfig) (league.GAConfig, error) {
	cfg := base
	cfg.Selection = c.Selection
	cfg.Crossover = c.Crossover
	cfg.Mutation = c.Mutation
	cfg.Elitism = c.Elitism
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("combination %s: %w", c.Label(), err)
	}
	return cfg, nil
}

// Combinations returns the cartesian product of the given operator names and elitism options,
// in selection, crossover, mutation, elitism nesting order.
func Combinations(selections, crossovers, mutations []string, elitism []bool) []Combination {
	var out []Combination
	for _, s := range selections {
		for _, c := range crossovers {
			for _, m := range mutations {
				for _, e := range elitism {
					out = append(out, Combination{Selection: s, Crossover: c, Mutation: m, Elitism: e})
				}
			}
		}
	}
	return out
}

// SampleCombinations draws n distinct combinations at random, keeping their relative order.
// It returns all of them when n >= len(combos).
func SampleCombinations(combos []Combination, n int, rng *rand.Rand) []Combination {
	if n >= len(combos) {
		out := make([]Combination, len(combos))
		copy(out, combos)
		return out
	}
	picked := make([]bool, len(combos))
	for _, idx := range rng.Perm(len(combos))[:n] {
		picked[idx] = true
	}
	out := make([]Combination, 0, n)
	for i, c := range combos {
		if picked[i] {
			out = append(out, c)
		}
	}
	return out
}

// TrialResult holds the runs × generations best-fitness matrix of one combination.
type TrialResult struct {
	Combination Combination
	Runs        [][]float64
}

// RunTrials evolves cfg.Runs independent populations one after another and returns the
// best fitness of every generation of every run.
func RunTrials(lg *league.League, cfg league.GAConfig, rng *rand.Rand, log *logrus.Entry) ([][]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ops, err := league.NewOperators(lg, &cfg)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = league.DiscardLogger()
	}

	runs := make([][]float64, 0, cfg.Runs)
	for run := 0; run < cfg.Runs; run++ {
		runLog := log.WithField("run", run+1)
		pop, err := league.NewPopulation(&cfg, ops, rng, runLog)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", run+1, err)
		}
		result, err := pop.Run()
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", run+1, err)
		}
		runs = append(runs, result.Trace)
	}
	return runs, nil
}

// GridSearch runs trials for every combination in order.
func GridSearch(lg *league.League, base league.GAConfig, combos []Combination, rng *rand.Rand, log *logrus.Entry) ([]TrialResult, error) {
	if log == nil {
		log = league.DiscardLogger()
	}
	results := make([]TrialResult, 0, len(combos))
	for _, combo := range combos {
		cfg, err := combo.Apply(base)
		if err != nil {
			return nil, err
		}
		comboLog := log.WithField("combination", combo.Label())
		comboLog.Info("running combination")

		runs, err := RunTrials(lg, cfg, rng, comboLog)
		if err != nil {
			return nil, fmt.Errorf("combination %s: %w", combo.Label(), err)
		}
		results = append(results, TrialResult{Combination: combo, Runs: runs})
	}
	return results, nil
}
