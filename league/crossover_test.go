package league

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parents(t *testing.T, lg *League, rng *rand.Rand) (*Solution, *Solution) {
	t.Helper()
	return randomSolution(t, lg, rng), randomSolution(t, lg, rng)
}

func TestCrossoversProduceValidChildren(t *testing.T) {
	for _, extra := range []int{0, 4} {
		lg := newTestLeague(t, extra)
		for seed := int64(1); seed <= 25; seed++ {
			rng := newRand(seed)
			p1, p2 := parents(t, lg, rng)

			child, err := BlockwiseCrossover(p1, p2, rng)
			require.NoError(t, err)
			requireValidRoster(t, child)

			child, err = PositionBasedCrossover(p1, p2, rng)
			require.NoError(t, err)
			requireValidRoster(t, child)

			c1, c2, err := BlockwiseCrossoverPair(p1, p2, rng)
			require.NoError(t, err)
			requireValidRoster(t, c1)
			requireValidRoster(t, c2)

			c1, c2, err = PositionBasedCrossoverPair(p1, p2, rng)
			require.NoError(t, err)
			requireValidRoster(t, c1)
			requireValidRoster(t, c2)
		}
	}
}

func TestCrossoversLeaveParentsUntouched(t *testing.T) {
	lg := newTestLeague(t, 2)
	rng := newRand(5)
	p1, p2 := parents(t, lg, rng)
	before1, before2 := p1.Clone(), p2.Clone()

	_, _, err := BlockwiseCrossoverPair(p1, p2, rng)
	require.NoError(t, err)
	_, _, err = PositionBasedCrossoverPair(p1, p2, rng)
	require.NoError(t, err)

	assert.True(t, p1.Equal(before1))
	assert.True(t, p2.Equal(before2))
}

func TestBlockwiseChildKeepsParentBlocksInPlace(t *testing.T) {
	lg := newTestLeague(t, 0)
	for seed := int64(1); seed <= 20; seed++ {
		rng := newRand(seed)
		p1, p2 := parents(t, lg, rng)

		child, err := blockwiseChild(p1, p2, 2, rng)
		require.NoError(t, err)
		requireValidRoster(t, child)

		inherited := 0
		for i := 0; i < child.Len(); i++ {
			if assert.ObjectsAreEqual(p1.Team(i).Players(), child.Team(i).Players()) {
				inherited++
			}
		}
		assert.GreaterOrEqual(t, inherited, 2, "seed %d", seed)
	}
}

func TestRandomBlockSize(t *testing.T) {
	rng := newRand(1)
	for i := 0; i < 100; i++ {
		n := randomBlockSize(5, rng)
		assert.GreaterOrEqual(t, n, blockMin)
		assert.LessOrEqual(t, n, blockMax)
	}
	assert.Equal(t, 2, randomBlockSize(2, rng))
	assert.Equal(t, 1, randomBlockSize(1, rng))
}

func TestPositionBasedFirstTeamComesFromParents(t *testing.T) {
	lg := newTestLeague(t, 3)
	for seed := int64(1); seed <= 20; seed++ {
		rng := newRand(seed)
		p1, p2 := parents(t, lg, rng)

		child, err := PositionBasedCrossover(p1, p2, rng)
		require.NoError(t, err)

		fromParents := make(map[string]bool)
		for _, p := range append(p1.Team(0).Players(), p2.Team(0).Players()...) {
			fromParents[p.Name] = true
		}
		for _, p := range child.Team(0).Players() {
			assert.True(t, fromParents[p.Name], "seed %d: %s not in either parent's first team", seed, p.Name)
		}
	}
}

func TestCrossoverStructureViolation(t *testing.T) {
	a := gk("A", 70, 100)
	lg := toyLeague(t, 2, a)
	team := NewTeam(lg.Rules, []Player{a})
	p := NewSolution(lg, []*Team{team, team})

	_, err := PositionBasedCrossover(p, p, newRand(1))
	assert.True(t, errors.Is(err, ErrStructureViolation))

	_, _, err = PositionBasedCrossoverPair(p, p, newRand(1))
	assert.True(t, errors.Is(err, ErrStructureViolation))
	assert.Contains(t, err.Error(), "first child")

	_, err = blockwiseChild(p, p, 1, newRand(1))
	assert.True(t, errors.Is(err, ErrStructureViolation))
}
