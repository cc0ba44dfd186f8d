package league

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Position is a playing position category.
type Position string

const (
	GK  Position = "GK"  // Goalkeeper
	DEF Position = "DEF" // Defender
	MID Position = "MID" // Midfielder
	FWD Position = "FWD" // Forward
)

// ParsePosition converts a raw position label into a Position.
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case GK, DEF, MID, FWD:
		return p, nil
	}
	return "", fmt.Errorf("unknown position %q", s)
}

// Player is an immutable player record supplied by the dataset loader.
// Name identifies the player across the whole pool.
type Player struct {
	Name     string
	Position Position
	Skill    float64
	Salary   float64
}

// ErrDuplicatePlayer is returned when a pool contains the same name twice.
var ErrDuplicatePlayer = errors.New("duplicate player name")

// Pool is the read-only set of players every roster is drawn from.
type Pool struct {
	players    []Player
	byName     map[string]Player
	byPosition map[Position][]Player
}

// NewPool indexes the given players. Names must be unique and values non-negative.
func NewPool(players []Player) (*Pool, error) {
	p := &Pool{
		players:    make([]Player, 0, len(players)),
		byName:     make(map[string]Player, len(players)),
		byPosition: make(map[Position][]Player),
	}
	for _, pl := range players {
		if pl.Name == "" {
			return nil, fmt.Errorf("player with empty name in pool")
		}
		if _, exists := p.byName[pl.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, pl.Name)
		}
		if !nonNegative(pl.Skill) || !nonNegative(pl.Salary) {
			return nil, fmt.Errorf("player %s: skill and salary must be finite and non-negative", pl.Name)
		}
		p.players = append(p.players, pl)
		p.byName[pl.Name] = pl
		p.byPosition[pl.Position] = append(p.byPosition[pl.Position], pl)
	}
	return p, nil
}

// Len returns the number of players in the pool.
func (p *Pool) Len() int { return len(p.players) }

// Players returns a copy of the pool in its original order.
func (p *Pool) Players() []Player {
	out := make([]Player, len(p.players))
	copy(out, p.players)
	return out
}

// Lookup finds a player by name.
func (p *Pool) Lookup(name string) (Player, bool) {
	pl, ok := p.byName[name]
	return pl, ok
}

// ByPosition returns a copy of all players holding the given position, in pool order.
func (p *Pool) ByPosition(pos Position) []Player {
	src := p.byPosition[pos]
	out := make([]Player, len(src))
	copy(out, src)
	return out
}

// Available returns the players at pos whose names are not in used, in pool order.
func (p *Pool) Available(pos Position, used map[string]struct{}) []Player {
	var out []Player
	for _, pl := range p.byPosition[pos] {
		if _, taken := used[pl.Name]; !taken {
			out = append(out, pl)
		}
	}
	return out
}

// nonNegative reports whether v is a finite value >= 0.
func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
