package league

import "math/rand"

// Mutation operators never modify their input. They return a new Solution when the
// perturbation keeps every touched team valid and all names unique, and the input
// itself otherwise.

// SwapBetweenTeams exchanges one player of a shared position between two random teams.
func SwapBetweenTeams(s *Solution, rng *rand.Rand) *Solution {
	if len(s.teams) < 2 {
		return s
	}
	pick := rng.Perm(len(s.teams))[:2]
	a, b := s.teams[pick[0]], s.teams[pick[1]]

	inB := make(map[Position]bool)
	for _, p := range b.players {
		inB[p.Position] = true
	}
	var shared []Position
	seen := make(map[Position]bool)
	for _, p := range a.players {
		if inB[p.Position] && !seen[p.Position] {
			shared = append(shared, p.Position)
			seen[p.Position] = true
		}
	}
	if len(shared) == 0 {
		return s
	}
	pos := shared[rng.Intn(len(shared))]

	ia := indicesAt(a, pos)
	ib := indicesAt(b, pos)
	i := ia[rng.Intn(len(ia))]
	j := ib[rng.Intn(len(ib))]

	return s.withSwap(pick[0], i, pick[1], j)
}

// GlobalPositionPermutation reshuffles every player of one random position across all teams,
// two per team. It only applies when that position has exactly two players per team.
func GlobalPositionPermutation(s *Solution, rng *rand.Rand) *Solution {
	var present []Position
	seen := make(map[Position]bool)
	for _, t := range s.teams {
		for _, p := range t.players {
			if !seen[p.Position] {
				present = append(present, p.Position)
				seen[p.Position] = true
			}
		}
	}
	if len(present) == 0 {
		return s
	}
	pos := present[rng.Intn(len(present))]

	var pooled []Player
	for _, t := range s.teams {
		for _, p := range t.players {
			if p.Position == pos {
				pooled = append(pooled, p)
			}
		}
	}
	if len(pooled) != 2*len(s.teams) {
		return s
	}
	pooled = shuffled(pooled, rng)

	next := 0
	teams := make([]*Team, len(s.teams))
	for ti, t := range s.teams {
		players := t.Players()
		placed := 0
		for i, p := range players {
			if p.Position == pos && placed < 2 {
				players[i] = pooled[next]
				next++
				placed++
			}
		}
		teams[ti] = NewTeam(t.rules, players)
	}
	return s.accept(teams, teams...)
}

// RandomPositionSwap swaps one uniformly chosen same-position player pair between two random teams.
func RandomPositionSwap(s *Solution, rng *rand.Rand) *Solution {
	if len(s.teams) < 2 {
		return s
	}
	pick := rng.Perm(len(s.teams))[:2]
	a, b := s.teams[pick[0]], s.teams[pick[1]]

	type pair struct{ i, j int }
	var pairs []pair
	for i, pa := range a.players {
		for j, pb := range b.players {
			if pa.Position == pb.Position {
				pairs = append(pairs, pair{i, j})
			}
		}
	}
	if len(pairs) == 0 {
		return s
	}
	chosen := pairs[rng.Intn(len(pairs))]
	return s.withSwap(pick[0], chosen.i, pick[1], chosen.j)
}

// withSwap exchanges player i of team ta with player j of team tb.
func (s *Solution) withSwap(ta, i, tb, j int) *Solution {
	pa := s.teams[ta].Players()
	pb := s.teams[tb].Players()
	pa[i], pb[j] = pb[j], pa[i]

	teams := make([]*Team, len(s.teams))
	copy(teams, s.teams)
	teams[ta] = NewTeam(s.teams[ta].rules, pa)
	teams[tb] = NewTeam(s.teams[tb].rules, pb)
	return s.accept(teams, teams[ta], teams[tb])
}

// accept wraps teams into a new Solution when every touched team is valid and names are
// unique, otherwise it returns s unchanged.
func (s *Solution) accept(teams []*Team, touched ...*Team) *Solution {
	for _, t := range touched {
		if !t.IsValid() {
			return s
		}
	}
	candidate := NewSolution(s.league, teams)
	if !candidate.IsUnique() {
		return s
	}
	return candidate
}

func indicesAt(t *Team, pos Position) []int {
	var out []int
	for i, p := range t.players {
		if p.Position == pos {
			out = append(out, i)
		}
	}
	return out
}
