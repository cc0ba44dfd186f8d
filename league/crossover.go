package league

import (
	"fmt"
	"math/rand"
)

// Blockwise crossover inherits between blockMin and blockMax whole teams from the first parent.
const (
	blockMin = 2
	blockMax = 3
)

// PositionBasedCrossover builds one child team by team. For each team index the players of
// both parents' teams at that index are pooled by position; each quota is filled from the
// shuffled pool with players not yet used in the child, then topped up from the full pool.
func PositionBasedCrossover(p1, p2 *Solution, rng *rand.Rand) (*Solution, error) {
	league := p1.league
	used := make(map[string]struct{}, league.Rules.NumTeams*league.Rules.TeamSize)
	teams := make([]*Team, league.Rules.NumTeams)
	for i := range teams {
		team, err := positionBasedTeam(league, p1, p2, i, used, rng)
		if err != nil {
			return nil, err
		}
		teams[i] = team
	}
	return NewSolution(league, teams), nil
}

// PositionBasedCrossoverPair runs the position-based procedure twice with independent
// used-name sets. The children may share players with each other.
func PositionBasedCrossoverPair(p1, p2 *Solution, rng *rand.Rand) (*Solution, *Solution, error) {
	league := p1.league
	n := league.Rules.NumTeams
	used1 := make(map[string]struct{}, n*league.Rules.TeamSize)
	used2 := make(map[string]struct{}, n*league.Rules.TeamSize)
	teams1 := make([]*Team, n)
	teams2 := make([]*Team, n)

	for i := 0; i < n; i++ {
		t1, err := positionBasedTeam(league, p1, p2, i, used1, rng)
		if err != nil {
			return nil, nil, fmt.Errorf("first child: %w", err)
		}
		t2, err := positionBasedTeam(league, p1, p2, i, used2, rng)
		if err != nil {
			return nil, nil, fmt.Errorf("second child: %w", err)
		}
		teams1[i], teams2[i] = t1, t2
	}
	return NewSolution(league, teams1), NewSolution(league, teams2), nil
}

// positionBasedTeam assembles the child team at idx and records its players in used.
func positionBasedTeam(league *League, p1, p2 *Solution, idx int, used map[string]struct{}, rng *rand.Rand) (*Team, error) {
	candidates := make(map[Position][]Player, len(league.Rules.Structure))
	for _, parent := range []*Solution{p1, p2} {
		for _, p := range parent.teams[idx].players {
			candidates[p.Position] = append(candidates[p.Position], p)
		}
	}

	players := make([]Player, 0, league.Rules.TeamSize)
	for _, q := range league.Rules.Structure {
		selected := make([]Player, 0, q.Count)
		for _, p := range shuffled(candidates[q.Position], rng) {
			if len(selected) == q.Count {
				break
			}
			if _, taken := used[p.Name]; taken {
				continue
			}
			selected = append(selected, p)
			used[p.Name] = struct{}{}
		}

		if len(selected) < q.Count {
			for _, p := range shuffled(league.Pool.Available(q.Position, used), rng) {
				if len(selected) == q.Count {
					break
				}
				selected = append(selected, p)
				used[p.Name] = struct{}{}
			}
		}

		if len(selected) < q.Count {
			return nil, fmt.Errorf("%w: could not fill %d %s players for team %d",
				ErrStructureViolation, q.Count, q.Position, idx+1)
		}
		players = append(players, selected...)
	}
	return NewTeam(league.Rules, players), nil
}

// BlockwiseCrossover inherits a random block of whole teams from p1 at random slots and
// fills the remaining slots from p2. Players of p2 already used in the child are dropped and
// the missing positions are refilled from the pool.
func BlockwiseCrossover(p1, p2 *Solution, rng *rand.Rand) (*Solution, error) {
	return blockwiseChild(p1, p2, randomBlockSize(p1.league.Rules.NumTeams, rng), rng)
}

// BlockwiseCrossoverPair runs the blockwise procedure twice, each child with its own block
// choice and used-name tracking.
func BlockwiseCrossoverPair(p1, p2 *Solution, rng *rand.Rand) (*Solution, *Solution, error) {
	n := p1.league.Rules.NumTeams
	c1, err := blockwiseChild(p1, p2, randomBlockSize(n, rng), rng)
	if err != nil {
		return nil, nil, fmt.Errorf("first child: %w", err)
	}
	c2, err := blockwiseChild(p1, p2, randomBlockSize(n, rng), rng)
	if err != nil {
		return nil, nil, fmt.Errorf("second child: %w", err)
	}
	return c1, c2, nil
}

// randomBlockSize draws the number of teams inherited from the first parent.
func randomBlockSize(numTeams int, rng *rand.Rand) int {
	lo, hi := blockMin, blockMax
	if hi > numTeams {
		hi = numTeams
	}
	if lo > hi {
		lo = hi
	}
	return lo + rng.Intn(hi-lo+1)
}

// blockwiseChild builds one child taking n1 whole teams from p1.
func blockwiseChild(p1, p2 *Solution, n1 int, rng *rand.Rand) (*Solution, error) {
	league := p1.league
	rules := league.Rules
	n := rules.NumTeams

	fromP1 := make([]bool, n)
	for _, idx := range rng.Perm(n)[:n1] {
		fromP1[idx] = true
	}

	used := make(map[string]struct{}, n*rules.TeamSize)
	teams := make([]*Team, n)

	// Parent-1 blocks are placed first so their players win any name clash.
	for i := 0; i < n; i++ {
		if !fromP1[i] {
			continue
		}
		teams[i] = p1.teams[i].Clone()
		for _, p := range teams[i].players {
			used[p.Name] = struct{}{}
		}
	}

	for i := 0; i < n; i++ {
		if fromP1[i] {
			continue
		}
		players := make([]Player, 0, rules.TeamSize)
		for _, p := range p2.teams[i].players {
			if _, taken := used[p.Name]; taken {
				continue
			}
			players = append(players, p)
			used[p.Name] = struct{}{}
		}

		if len(players) < rules.TeamSize {
			have := make(map[Position]int, len(rules.Structure))
			for _, p := range players {
				have[p.Position]++
			}
			for _, pos := range rules.Positions() {
				missing := rules.Quota(pos) - have[pos]
				if missing <= 0 {
					continue
				}
				available := shuffled(league.Pool.Available(pos, used), rng)
				if len(available) < missing {
					return nil, fmt.Errorf("%w: could not fill %d %s players for team %d",
						ErrStructureViolation, missing, pos, i+1)
				}
				for _, p := range available[:missing] {
					players = append(players, p)
					used[p.Name] = struct{}{}
				}
			}
		}
		teams[i] = NewTeam(rules, players)
	}
	return NewSolution(league, teams), nil
}
