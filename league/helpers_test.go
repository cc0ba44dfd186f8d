package league

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// testPlayers returns exactly enough players for the default structure
// (5 GK, 10 DEF, 10 MID, 10 FWD) plus extra players per position.
func testPlayers(extra int) []Player {
	counts := []struct {
		pos Position
		n   int
	}{{GK, 5}, {DEF, 10}, {MID, 10}, {FWD, 10}}

	var players []Player
	for _, c := range counts {
		for i := 0; i < c.n+extra; i++ {
			players = append(players, Player{
				Name:     fmt.Sprintf("%s-%02d", c.pos, i+1),
				Position: c.pos,
				Skill:    60 + float64((i*7)%35),
				Salary:   80 + float64((i*13)%60),
			})
		}
	}
	return players
}

func newTestLeague(t *testing.T, extra int) *League {
	t.Helper()
	pool, err := NewPool(testPlayers(extra))
	require.NoError(t, err)
	cfg := DefaultConfig()
	lg, err := NewLeague(&cfg.League, pool)
	require.NoError(t, err)
	return lg
}

// toyLeague is a goalkeeper-only league of numTeams single-player teams.
func toyLeague(t *testing.T, numTeams int, players ...Player) *League {
	t.Helper()
	pool, err := NewPool(players)
	require.NoError(t, err)
	rules := &LeagueConfig{
		NumTeams:        numTeams,
		MaxBudget:       750,
		PenaltyWeight:   0.5,
		MinFitness:      0.001,
		MaxInitAttempts: 10,
		Structure:       []Quota{{Position: GK, Count: 1}},
	}
	lg, err := NewLeague(rules, pool)
	require.NoError(t, err)
	return lg
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func randomSolution(t *testing.T, lg *League, rng *rand.Rand) *Solution {
	t.Helper()
	s, err := RandomSolution(lg, rng)
	require.NoError(t, err)
	return s
}

// requireValidRoster checks every roster invariant.
func requireValidRoster(t *testing.T, s *Solution) {
	t.Helper()
	require.NoError(t, s.Validate())
	rules := s.League().Rules
	names := s.Names()
	require.Len(t, names, rules.NumTeams*rules.TeamSize)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		require.False(t, seen[n], "player %s used twice", n)
		seen[n] = true
	}
}

func gk(name string, skill, salary float64) Player {
	return Player{Name: name, Position: GK, Skill: skill, Salary: salary}
}
