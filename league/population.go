package league

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Individual is a candidate solution the evolution loop can rank and copy.
// Fitness must fail for a structurally invalid candidate; Clone must return a copy that
// shares no mutable state with the receiver.
type Individual[S any] interface {
	Fitness() (float64, error)
	Clone() S
}

// Operators wires the representation-specific pieces into the generic loop.
type Operators[S Individual[S]] struct {
	// Init creates a random valid individual.
	Init func(rng *rand.Rand) (S, error)
	// Select picks a parent and returns an independent copy.
	Select func(population []S, rng *rand.Rand) (S, error)
	// Crossover combines two parents into Children offspring.
	Crossover func(p1, p2 S, rng *rand.Rand) ([]S, error)
	// Children is the number of offspring Crossover produces (1 or 2).
	Children int
	// Mutate returns a perturbed individual or the input unchanged.
	Mutate func(s S, rng *rand.Rand) S
}

func (o Operators[S]) validate() error {
	if o.Init == nil || o.Select == nil || o.Crossover == nil || o.Mutate == nil {
		return fmt.Errorf("operators: init, select, crossover and mutate are all required")
	}
	if o.Children != 1 && o.Children != 2 {
		return fmt.Errorf("operators: crossover must produce 1 or 2 children, got %d", o.Children)
	}
	return nil
}

// Population holds the state of one evolutionary run.
type Population[S Individual[S]] struct {
	Config     *GAConfig
	Members    []S       // Current generation
	Generation int       // Number of completed generations
	History    []float64 // Best fitness of each completed generation

	ops Operators[S]
	rng *rand.Rand
	log *logrus.Entry
}

// Result is what a finished run hands to reporting: the best individual of the final
// population and the per-generation best-fitness trace.
type Result[S any] struct {
	Best        S
	BestFitness float64
	Trace       []float64
}

// NewPopulation creates a Population and fills the first generation with Init.
func NewPopulation[S Individual[S]](config *GAConfig, ops Operators[S], rng *rand.Rand, log *logrus.Entry) (*Population[S], error) {
	if err := ops.validate(); err != nil {
		return nil, err
	}
	if config.PopSize <= 0 {
		return nil, fmt.Errorf("population size must be positive")
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	members := make([]S, 0, config.PopSize)
	for i := 0; i < config.PopSize; i++ {
		ind, err := ops.Init(rng)
		if err != nil {
			return nil, fmt.Errorf("failed to create initial individual %d: %w", i, err)
		}
		members = append(members, ind)
	}

	return &Population[S]{
		Config:  config,
		Members: members,
		History: make([]float64, 0, config.Generations),
		ops:     ops,
		rng:     rng,
		log:     log,
	}, nil
}

// RunGeneration replaces the population with the next generation and records its best fitness.
func (p *Population[S]) RunGeneration() error {
	genStart := time.Now()
	next := make([]S, 0, p.Config.PopSize)

	if p.Config.Elitism {
		elite, _, err := p.Best()
		if err != nil {
			return fmt.Errorf("elitism failed in generation %d: %w", p.Generation, err)
		}
		next = append(next, elite.Clone())
	}

	for len(next) < p.Config.PopSize {
		p1, err := p.ops.Select(p.Members, p.rng)
		if err != nil {
			return fmt.Errorf("selection failed in generation %d: %w", p.Generation, err)
		}
		p2, err := p.ops.Select(p.Members, p.rng)
		if err != nil {
			return fmt.Errorf("selection failed in generation %d: %w", p.Generation, err)
		}

		var children []S
		if p.rng.Float64() < p.Config.CrossoverProb {
			children, err = p.ops.Crossover(p1, p2, p.rng)
			if err != nil {
				return fmt.Errorf("crossover failed in generation %d: %w", p.Generation, err)
			}
		} else {
			// Selection already returned copies.
			children = []S{p1, p2}[:p.ops.Children]
		}

		for _, child := range children {
			if p.rng.Float64() < p.Config.MutationProb {
				child = p.ops.Mutate(child, p.rng)
			}
			if len(next) < p.Config.PopSize {
				next = append(next, child)
			}
		}
	}

	p.Members = next
	_, bestFitness, err := p.Best()
	if err != nil {
		return fmt.Errorf("evaluation failed in generation %d: %w", p.Generation, err)
	}
	p.History = append(p.History, bestFitness)
	p.Generation++

	p.log.WithFields(logrus.Fields{
		"generation":   p.Generation,
		"best_fitness": bestFitness,
		"elapsed":      time.Since(genStart),
	}).Debug("generation finished")
	return nil
}

// Run evolves the remaining generations of the budget and returns the final result.
func (p *Population[S]) Run() (Result[S], error) {
	start := time.Now()
	p.log.WithFields(logrus.Fields{
		"pop_size":    p.Config.PopSize,
		"generations": p.Config.Generations,
		"elitism":     p.Config.Elitism,
	}).Info("evolution started")

	for p.Generation < p.Config.Generations {
		if err := p.RunGeneration(); err != nil {
			return Result[S]{}, err
		}
	}

	best, bestFitness, err := p.Best()
	if err != nil {
		return Result[S]{}, err
	}
	trace := make([]float64, len(p.History))
	copy(trace, p.History)

	p.log.WithFields(logrus.Fields{
		"best_fitness": bestFitness,
		"elapsed":      time.Since(start),
	}).Info("evolution finished")
	return Result[S]{Best: best, BestFitness: bestFitness, Trace: trace}, nil
}

// Best returns the fittest member of the current population (first one on ties).
func (p *Population[S]) Best() (S, float64, error) {
	var best S
	bestFitness := 0.0
	for i, ind := range p.Members {
		fit, err := ind.Fitness()
		if err != nil {
			var zero S
			return zero, 0, err
		}
		if i == 0 || fit > bestFitness {
			best, bestFitness = ind, fit
		}
	}
	if len(p.Members) == 0 {
		return best, 0, ErrEmptyPopulation
	}
	return best, bestFitness, nil
}
