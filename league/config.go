package league

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Config stores the configuration parameters for a league search.
type Config struct {
	League LeagueConfig
	GA     GAConfig
}

// Quota is the number of players a team must field at one position.
type Quota struct {
	Position Position
	Count    int
}

// LeagueConfig holds the structural rules every roster must satisfy.
type LeagueConfig struct {
	NumTeams        int     `ini:"n_teams"`
	TeamSize        int     `ini:"team_size"` // Optional; derived from Structure when 0
	MaxBudget       float64 `ini:"max_budget"`
	PenaltyWeight   float64 `ini:"penalty_weight"`
	MinFitness      float64 `ini:"min_fitness"`
	MaxInitAttempts int     `ini:"max_init_attempts"`

	// Structure is read from the [TeamStructure] section; key order is position order.
	Structure []Quota `ini:"-"`
}

// GAConfig holds parameters of the evolutionary loop.
type GAConfig struct {
	PopSize        int     `ini:"pop_size"`
	Generations    int     `ini:"generations"`
	Elitism        bool    `ini:"elitism"`
	CrossoverProb  float64 `ini:"crossover_prob"`
	MutationProb   float64 `ini:"mutation_prob"`
	TournamentSize int     `ini:"tournament_size"`
	Selection      string  `ini:"selection"` // tournament, fitness_proportionate
	Crossover      string  `ini:"crossover"` // blockwise, positionbased, blockwise_2child, positionbased_2child
	Mutation       string  `ini:"mutation"`  // global_perm, random_swap, between_teams
	Runs           int     `ini:"n_runs"`
	Seed           int64   `ini:"seed"`   // 0 picks a time-based seed
	Output         string  `ini:"output"` // best, trace
}

const (
	OutputBest  = "best"
	OutputTrace = "trace"
)

// DefaultConfig returns the standard five-team league with the usual GA settings.
func DefaultConfig() *Config {
	return &Config{
		League: LeagueConfig{
			NumTeams:        5,
			TeamSize:        7,
			MaxBudget:       750,
			PenaltyWeight:   0.5,
			MinFitness:      0.001,
			MaxInitAttempts: 1000,
			Structure: []Quota{
				{Position: GK, Count: 1},
				{Position: DEF, Count: 2},
				{Position: MID, Count: 2},
				{Position: FWD, Count: 2},
			},
		},
		GA: GAConfig{
			PopSize:        40,
			Generations:    100,
			Elitism:        true,
			CrossoverProb:  0.9,
			MutationProb:   0.1,
			TournamentSize: 5,
			Selection:      SelectionTournament,
			Crossover:      CrossoverBlockwisePair,
			Mutation:       MutationGlobalPermutation,
			Runs:           30,
			Output:         OutputBest,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return configFromFile(cfg)
}

// ParseConfig parses configuration parameters from INI source bytes.
func ParseConfig(data []byte) (*Config, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return configFromFile(cfg)
}

func configFromFile(cfg *ini.File) (*Config, error) {
	config := DefaultConfig()

	// Keys missing from the file keep their default values.
	if err := cfg.Section("League").MapTo(&config.League); err != nil {
		return nil, fmt.Errorf("failed to map [League] section: %w", err)
	}
	if err := cfg.Section("GA").MapTo(&config.GA); err != nil {
		return nil, fmt.Errorf("failed to map [GA] section: %w", err)
	}

	if cfg.HasSection("TeamStructure") {
		keys := cfg.Section("TeamStructure").Keys()
		if len(keys) > 0 {
			config.League.Structure = make([]Quota, 0, len(keys))
		}
		for _, key := range keys {
			pos, err := ParsePosition(key.Name())
			if err != nil {
				return nil, fmt.Errorf("config error: [TeamStructure]: %w", err)
			}
			count, err := key.Int()
			if err != nil {
				return nil, fmt.Errorf("config error: [TeamStructure] %s: %w", key.Name(), err)
			}
			config.League.Structure = append(config.League.Structure, Quota{Position: pos, Count: count})
		}
		// Recompute the size from the new structure unless it was given explicitly.
		if !cfg.Section("League").HasKey("team_size") {
			config.League.TeamSize = 0
		}
	}

	config.GA.Selection = cleanIniString(config.GA.Selection)
	config.GA.Crossover = cleanIniString(config.GA.Crossover)
	config.GA.Mutation = cleanIniString(config.GA.Mutation)
	config.GA.Output = cleanIniString(config.GA.Output)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks value ranges and fills derived fields.
func (c *Config) Validate() error {
	if err := c.League.Validate(); err != nil {
		return err
	}
	return c.GA.Validate()
}

// Validate checks the league rules. A zero TeamSize is derived from the structure.
func (lc *LeagueConfig) Validate() error {
	if lc.NumTeams <= 0 {
		return fmt.Errorf("config error: n_teams must be positive")
	}
	if len(lc.Structure) == 0 {
		return fmt.Errorf("config error: team structure must list at least one position")
	}
	seen := make(map[Position]bool, len(lc.Structure))
	sum := 0
	for _, q := range lc.Structure {
		if seen[q.Position] {
			return fmt.Errorf("config error: position %s listed twice in team structure", q.Position)
		}
		seen[q.Position] = true
		if q.Count <= 0 {
			return fmt.Errorf("config error: quota for %s must be positive", q.Position)
		}
		sum += q.Count
	}
	if lc.TeamSize == 0 {
		lc.TeamSize = sum
	}
	if lc.TeamSize != sum {
		return fmt.Errorf("config error: team_size %d does not match the structure total %d", lc.TeamSize, sum)
	}
	if lc.MaxBudget < 0 {
		return fmt.Errorf("config error: max_budget cannot be negative")
	}
	if lc.PenaltyWeight < 0 {
		return fmt.Errorf("config error: penalty_weight cannot be negative")
	}
	if lc.MinFitness <= 0 || lc.MinFitness > 1 {
		return fmt.Errorf("config error: min_fitness must be in (0, 1]")
	}
	if lc.MaxInitAttempts <= 0 {
		return fmt.Errorf("config error: max_init_attempts must be positive")
	}
	return nil
}

// Validate checks the evolutionary loop parameters.
func (gc *GAConfig) Validate() error {
	if gc.PopSize <= 0 {
		return fmt.Errorf("config error: pop_size must be positive")
	}
	if gc.Generations <= 0 {
		return fmt.Errorf("config error: generations must be positive")
	}
	if gc.CrossoverProb < 0 || gc.CrossoverProb > 1 {
		return fmt.Errorf("config error: crossover_prob must be between 0 and 1")
	}
	if gc.MutationProb < 0 || gc.MutationProb > 1 {
		return fmt.Errorf("config error: mutation_prob must be between 0 and 1")
	}
	if gc.TournamentSize <= 0 {
		return fmt.Errorf("config error: tournament_size must be positive")
	}
	if gc.Runs <= 0 {
		return fmt.Errorf("config error: n_runs must be positive")
	}
	if _, ok := selectionNames[gc.Selection]; !ok {
		return fmt.Errorf("config error: invalid selection '%s'", gc.Selection)
	}
	if _, ok := crossoverNames[gc.Crossover]; !ok {
		return fmt.Errorf("config error: invalid crossover '%s'", gc.Crossover)
	}
	if _, ok := MutationFunctions[gc.Mutation]; !ok {
		return fmt.Errorf("config error: invalid mutation '%s'", gc.Mutation)
	}
	switch strings.ToLower(gc.Output) {
	case OutputBest, OutputTrace:
		gc.Output = strings.ToLower(gc.Output)
	default:
		return fmt.Errorf("config error: invalid output '%s', must be one of 'best', 'trace'", gc.Output)
	}
	return nil
}

// Positions returns the positions of the structure in order.
func (lc *LeagueConfig) Positions() []Position {
	out := make([]Position, len(lc.Structure))
	for i, q := range lc.Structure {
		out[i] = q.Position
	}
	return out
}

// Quota returns the required count for pos, or 0 when pos is not part of the structure.
func (lc *LeagueConfig) Quota(pos Position) int {
	for _, q := range lc.Structure {
		if q.Position == pos {
			return q.Count
		}
	}
	return 0
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
