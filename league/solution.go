package league

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrInvalidSolution marks a roster that breaks the structural invariants.
	// Seeing it from Fitness means an operator produced a broken roster.
	ErrInvalidSolution = errors.New("invalid solution")
	// ErrStructureViolation is returned when a crossover cannot fill a quota even from the full pool.
	ErrStructureViolation = errors.New("structure violation")
	// ErrInitExhausted is returned when random initialization gives up.
	ErrInitExhausted = errors.New("random initialization exhausted")
)

// League bundles the structural rules with the pool every roster is drawn from.
type League struct {
	Rules *LeagueConfig
	Pool  *Pool
}

// NewLeague validates rules and pairs them with the pool.
func NewLeague(rules *LeagueConfig, pool *Pool) (*League, error) {
	if rules == nil || pool == nil {
		return nil, fmt.Errorf("league needs both rules and a player pool")
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &League{Rules: rules, Pool: pool}, nil
}

// Solution is an ordered assignment of players into NumTeams teams.
type Solution struct {
	league *League
	teams  []*Team

	fitness float64
	scored  bool
}

// NewSolution wraps teams into a Solution. Invariants are checked by Validate and Fitness.
func NewSolution(league *League, teams []*Team) *Solution {
	ts := make([]*Team, len(teams))
	copy(ts, teams)
	return &Solution{league: league, teams: ts}
}

// RandomSolution builds a valid roster from the league pool.
// Each attempt shuffles the position groups and assembles all teams from unused
// players; an attempt that runs short is discarded and construction restarts.
func RandomSolution(league *League, rng *rand.Rand) (*Solution, error) {
	rules := league.Rules
	var lastShort Position

	for attempt := 0; attempt < rules.MaxInitAttempts; attempt++ {
		byPosition := make(map[Position][]Player, len(rules.Structure))
		for _, q := range rules.Structure {
			group := league.Pool.ByPosition(q.Position)
			rng.Shuffle(len(group), func(i, j int) { group[i], group[j] = group[j], group[i] })
			byPosition[q.Position] = group
		}

		used := make(map[string]struct{}, rules.NumTeams*rules.TeamSize)
		teams := make([]*Team, 0, rules.NumTeams)
		failed := false

		for len(teams) < rules.NumTeams && !failed {
			players := make([]Player, 0, rules.TeamSize)
			for _, q := range rules.Structure {
				available := unused(byPosition[q.Position], used)
				if len(available) < q.Count {
					lastShort = q.Position
					failed = true
					break
				}
				players = append(players, sample(available, q.Count, rng)...)
			}
			if failed {
				break
			}
			team := NewTeam(rules, players)
			if !team.IsValid() {
				failed = true
				break
			}
			for _, p := range players {
				used[p.Name] = struct{}{}
			}
			teams = append(teams, team)
		}

		if !failed {
			return NewSolution(league, teams), nil
		}
	}
	return nil, fmt.Errorf("%w: could not build %d teams after %d attempts (not enough %s players)",
		ErrInitExhausted, rules.NumTeams, rules.MaxInitAttempts, lastShort)
}

// League returns the league the solution belongs to.
func (s *Solution) League() *League { return s.league }

// Teams returns the teams in order. Teams are immutable, so the slice may be read freely.
func (s *Solution) Teams() []*Team {
	out := make([]*Team, len(s.teams))
	copy(out, s.teams)
	return out
}

// Team returns the team at index i.
func (s *Solution) Team(i int) *Team { return s.teams[i] }

// Len returns the number of teams.
func (s *Solution) Len() int { return len(s.teams) }

// Names returns every player name in team order.
func (s *Solution) Names() []string {
	var names []string
	for _, t := range s.teams {
		for _, p := range t.players {
			names = append(names, p.Name)
		}
	}
	return names
}

// Validate checks team count, per-team validity, global name uniqueness and pool membership.
func (s *Solution) Validate() error {
	rules := s.league.Rules
	if len(s.teams) != rules.NumTeams {
		return fmt.Errorf("%w: there must be exactly %d teams, got %d", ErrInvalidSolution, rules.NumTeams, len(s.teams))
	}
	seen := make(map[string]int, rules.NumTeams*rules.TeamSize)
	for i, team := range s.teams {
		if team == nil {
			return fmt.Errorf("%w: team %d is missing", ErrInvalidSolution, i+1)
		}
		if !team.IsValid() {
			return fmt.Errorf("%w: team %d does not match the team structure", ErrInvalidSolution, i+1)
		}
		for _, p := range team.players {
			if prev, dup := seen[p.Name]; dup {
				return fmt.Errorf("%w: player %s appears in teams %d and %d", ErrInvalidSolution, p.Name, prev+1, i+1)
			}
			seen[p.Name] = i
			pooled, ok := s.league.Pool.Lookup(p.Name)
			if !ok {
				return fmt.Errorf("%w: player %s is not in the pool", ErrInvalidSolution, p.Name)
			}
			if pooled != p {
				return fmt.Errorf("%w: player %s does not match the pool record", ErrInvalidSolution, p.Name)
			}
		}
	}
	return nil
}

// IsUnique reports whether no player name repeats across teams.
func (s *Solution) IsUnique() bool {
	seen := make(map[string]struct{})
	for _, t := range s.teams {
		for _, p := range t.players {
			if _, dup := seen[p.Name]; dup {
				return false
			}
			seen[p.Name] = struct{}{}
		}
	}
	return true
}

// Fitness validates the roster and scores its balance, penalised by budget overruns.
//
//	penalty = sum(max(0, salary - MaxBudget)) * PenaltyWeight
//	balance = 1 / (1 + popstddev(average skill per team))
//	fitness = max(MinFitness, balance - penalty)
//
// The score is cached; a Solution never changes after construction.
func (s *Solution) Fitness() (float64, error) {
	if s.scored {
		return s.fitness, nil
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	rules := s.league.Rules

	penalty := 0.0
	skills := make([]float64, len(s.teams))
	for i, team := range s.teams {
		if excess := team.TotalSalary() - rules.MaxBudget; excess > 0 {
			penalty += excess * rules.PenaltyWeight
		}
		skills[i] = team.AverageSkill()
	}
	balance := 1 / (1 + stat.PopStdDev(skills, nil))

	s.fitness = math.Max(rules.MinFitness, balance-penalty)
	s.scored = true
	return s.fitness, nil
}

// Clone returns a deep copy of the solution.
func (s *Solution) Clone() *Solution {
	teams := make([]*Team, len(s.teams))
	for i, t := range s.teams {
		teams[i] = t.Clone()
	}
	return &Solution{league: s.league, teams: teams, fitness: s.fitness, scored: s.scored}
}

// Equal reports whether both solutions hold the same players in the same slots.
func (s *Solution) Equal(other *Solution) bool {
	if other == nil || len(s.teams) != len(other.teams) {
		return false
	}
	for i, t := range s.teams {
		o := other.teams[i]
		if len(t.players) != len(o.players) {
			return false
		}
		for j := range t.players {
			if t.players[j] != o.players[j] {
				return false
			}
		}
	}
	return true
}

// String renders every team followed by the fitness.
func (s *Solution) String() string {
	var sb strings.Builder
	sb.WriteString("\n===== League =====\n")
	for idx, team := range s.teams {
		fmt.Fprintf(&sb, "\n--- Team %d ---\n", idx+1)
		for _, p := range team.players {
			fmt.Fprintf(&sb, "%-25s | %-3s | Skill: %-5.1f | %-6.1fM\n", p.Name, p.Position, p.Skill, p.Salary)
		}
	}
	if fit, err := s.Fitness(); err != nil {
		fmt.Fprintf(&sb, "\nFitness: invalid (%v)\n", err)
	} else {
		fmt.Fprintf(&sb, "\nFitness: %.4f\n", fit)
	}
	return sb.String()
}

// unused filters out players whose names are already in used.
func unused(players []Player, used map[string]struct{}) []Player {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		if _, taken := used[p.Name]; !taken {
			out = append(out, p)
		}
	}
	return out
}

// sample draws n distinct players uniformly at random. len(players) must be >= n.
func sample(players []Player, n int, rng *rand.Rand) []Player {
	out := make([]Player, n)
	for i, idx := range rng.Perm(len(players))[:n] {
		out[i] = players[idx]
	}
	return out
}

// shuffled returns a shuffled copy of players.
func shuffled(players []Player, rng *rand.Rand) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
