package league

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Team is a fixed-size group of players that should satisfy the positional quotas.
// A Team is never modified after construction; operators build new Teams instead.
type Team struct {
	players []Player
	rules   *LeagueConfig
}

// NewTeam creates a team from a copy of players. It does not check the quotas; see IsValid.
func NewTeam(rules *LeagueConfig, players []Player) *Team {
	ps := make([]Player, len(players))
	copy(ps, players)
	return &Team{players: ps, rules: rules}
}

// Len returns the number of players on the team.
func (t *Team) Len() int { return len(t.players) }

// Players returns a copy of the team's players.
func (t *Team) Players() []Player {
	out := make([]Player, len(t.players))
	copy(out, t.players)
	return out
}

// PositionCounts counts players per position.
func (t *Team) PositionCounts() map[Position]int {
	counts := make(map[Position]int, len(t.rules.Structure))
	for _, p := range t.players {
		counts[p.Position]++
	}
	return counts
}

// IsValid reports whether every position count exactly matches its quota
// and no player falls outside the structure.
func (t *Team) IsValid() bool {
	counts := t.PositionCounts()
	matched := 0
	for _, q := range t.rules.Structure {
		if counts[q.Position] != q.Count {
			return false
		}
		matched += q.Count
	}
	return matched == len(t.players)
}

// AverageSkill is the arithmetic mean of player skill.
func (t *Team) AverageSkill() float64 {
	skills := make([]float64, len(t.players))
	for i, p := range t.players {
		skills[i] = p.Skill
	}
	return stat.Mean(skills, nil)
}

// TotalSalary is the sum of player salaries.
func (t *Team) TotalSalary() float64 {
	salaries := make([]float64, len(t.players))
	for i, p := range t.players {
		salaries[i] = p.Salary
	}
	return floats.Sum(salaries)
}

// Clone returns an independent copy of the team.
func (t *Team) Clone() *Team {
	return NewTeam(t.rules, t.players)
}

// String renders the team as a table followed by a summary line.
func (t *Team) String() string {
	var sb strings.Builder
	header := fmt.Sprintf("%-20s %-10s %-6s %-10s", "Player", "Position", "Skill", "Salary")
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", len(header)))
	sb.WriteString("\n")
	for _, p := range t.players {
		fmt.Fprintf(&sb, "%-20s %-10s %-6.1f %-10.1f\n", p.Name, p.Position, p.Skill, p.Salary)
	}
	fmt.Fprintf(&sb, "\nAverage Skill: %.2f | Total Salary: %.2fM | Valid: %t",
		t.AverageSkill(), t.TotalSalary(), t.IsValid())
	return sb.String()
}
