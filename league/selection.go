package league

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrEmptyPopulation is returned when selecting from an empty population.
var ErrEmptyPopulation = errors.New("empty population")

// TournamentSelection samples k distinct individuals uniformly at random and returns a
// copy of the fittest. Ties go to the first maximum in sampled order. k is capped at the
// population size.
func TournamentSelection[S Individual[S]](population []S, k int, rng *rand.Rand) (S, error) {
	var zero S
	if len(population) == 0 {
		return zero, ErrEmptyPopulation
	}
	if k > len(population) {
		k = len(population)
	}
	if k < 1 {
		k = 1
	}

	var best S
	bestFitness := 0.0
	for i, idx := range rng.Perm(len(population))[:k] {
		fit, err := population[idx].Fitness()
		if err != nil {
			return zero, fmt.Errorf("tournament selection: %w", err)
		}
		if i == 0 || fit > bestFitness {
			best, bestFitness = population[idx], fit
		}
	}
	return best.Clone(), nil
}

// FitnessProportionateSelection spins a roulette wheel whose slots are sized by fitness
// and returns a copy of the winner. Population order defines the cumulative order.
// When total fitness is zero a uniformly random individual is returned.
func FitnessProportionateSelection[S Individual[S]](population []S, rng *rand.Rand) (S, error) {
	var zero S
	if len(population) == 0 {
		return zero, ErrEmptyPopulation
	}

	fitnesses := make([]float64, len(population))
	total := 0.0
	for i, ind := range population {
		fit, err := ind.Fitness()
		if err != nil {
			return zero, fmt.Errorf("fitness proportionate selection: %w", err)
		}
		fitnesses[i] = fit
		total += fit
	}
	if total == 0 {
		return population[rng.Intn(len(population))].Clone(), nil
	}

	threshold := rng.Float64() * total
	cumulative := 0.0
	for i, fit := range fitnesses {
		cumulative += fit
		if threshold <= cumulative {
			return population[i].Clone(), nil
		}
	}
	// Rounding can leave the threshold just above the final cumulative sum.
	return population[len(population)-1].Clone(), nil
}
