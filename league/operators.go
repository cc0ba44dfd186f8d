package league

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Operator names as used in configuration files and grid-search labels.
const (
	SelectionTournament           = "tournament"
	SelectionFitnessProportionate = "fitness_proportionate"

	CrossoverBlockwise         = "blockwise"
	CrossoverPositionBased     = "positionbased"
	CrossoverBlockwisePair     = "blockwise_2child"
	CrossoverPositionBasedPair = "positionbased_2child"

	MutationGlobalPermutation = "global_perm"
	MutationRandomSwap        = "random_swap"
	MutationBetweenTeams      = "between_teams"
)

var selectionNames = map[string]bool{
	SelectionTournament:           true,
	SelectionFitnessProportionate: true,
}

// crossoverNames maps each crossover to the number of children it produces.
var crossoverNames = map[string]int{
	CrossoverBlockwise:         1,
	CrossoverPositionBased:     1,
	CrossoverBlockwisePair:     2,
	CrossoverPositionBasedPair: 2,
}

// MutationFunctions maps mutation names to operators.
var MutationFunctions = map[string]func(*Solution, *rand.Rand) *Solution{
	MutationGlobalPermutation: GlobalPositionPermutation,
	MutationRandomSwap:        RandomPositionSwap,
	MutationBetweenTeams:      SwapBetweenTeams,
}

// SelectionNames lists the known selection operators in a stable order.
func SelectionNames() []string { return sortedKeys(selectionNames) }

// CrossoverNames lists the known crossover operators in a stable order.
func CrossoverNames() []string {
	names := make([]string, 0, len(crossoverNames))
	for name := range crossoverNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MutationNames lists the known mutation operators in a stable order.
func MutationNames() []string {
	names := make([]string, 0, len(MutationFunctions))
	for name := range MutationFunctions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewOperators resolves the operator names in config into a runnable set for league.
func NewOperators(league *League, config *GAConfig) (Operators[*Solution], error) {
	ops := Operators[*Solution]{
		Init: func(rng *rand.Rand) (*Solution, error) {
			return RandomSolution(league, rng)
		},
	}

	switch config.Selection {
	case SelectionTournament:
		k := config.TournamentSize
		ops.Select = func(pop []*Solution, rng *rand.Rand) (*Solution, error) {
			return TournamentSelection(pop, k, rng)
		}
	case SelectionFitnessProportionate:
		ops.Select = FitnessProportionateSelection[*Solution]
	default:
		return ops, fmt.Errorf("unknown selection operator '%s'", config.Selection)
	}

	switch config.Crossover {
	case CrossoverBlockwise:
		ops.Crossover = single(BlockwiseCrossover)
	case CrossoverPositionBased:
		ops.Crossover = single(PositionBasedCrossover)
	case CrossoverBlockwisePair:
		ops.Crossover = pair(BlockwiseCrossoverPair)
	case CrossoverPositionBasedPair:
		ops.Crossover = pair(PositionBasedCrossoverPair)
	default:
		return ops, fmt.Errorf("unknown crossover operator '%s'", config.Crossover)
	}
	ops.Children = crossoverNames[config.Crossover]

	mutate, ok := MutationFunctions[config.Mutation]
	if !ok {
		return ops, fmt.Errorf("unknown mutation operator '%s'", config.Mutation)
	}
	ops.Mutate = mutate

	return ops, nil
}

// NewRand returns a generator for seed, or a time-based one when seed is 0.
// The seed actually used is returned so runs can be reproduced.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

func single(fn func(p1, p2 *Solution, rng *rand.Rand) (*Solution, error)) func(p1, p2 *Solution, rng *rand.Rand) ([]*Solution, error) {
	return func(p1, p2 *Solution, rng *rand.Rand) ([]*Solution, error) {
		child, err := fn(p1, p2, rng)
		if err != nil {
			return nil, err
		}
		return []*Solution{child}, nil
	}
}

func pair(fn func(p1, p2 *Solution, rng *rand.Rand) (*Solution, *Solution, error)) func(p1, p2 *Solution, rng *rand.Rand) ([]*Solution, error) {
	return func(p1, p2 *Solution, rng *rand.Rand) ([]*Solution, error) {
		c1, c2, err := fn(p1, p2, rng)
		if err != nil {
			return nil, err
		}
		return []*Solution{c1, c2}, nil
	}
}

func sortedKeys(m map[string]bool) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
