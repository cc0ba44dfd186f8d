package league

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
)

// SolutionSaveData is the on-disk form of a finished roster.
// The league rules and pool are not saved; they are re-linked on load.
type SolutionSaveData struct {
	Teams   [][]Player
	Fitness float64
}

// SaveSolution writes the roster to filePath as gzip-compressed gob.
func SaveSolution(filePath string, s *Solution) error {
	fitness, err := s.Fitness()
	if err != nil {
		return fmt.Errorf("refusing to save solution: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create solution file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)

	saveData := SolutionSaveData{
		Teams:   make([][]Player, len(s.teams)),
		Fitness: fitness,
	}
	for i, t := range s.teams {
		saveData.Teams[i] = t.Players()
	}

	if err := gob.NewEncoder(gzWriter).Encode(saveData); err != nil {
		return fmt.Errorf("failed to encode solution data: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush solution file '%s': %w", filePath, err)
	}
	return file.Close()
}

// LoadSolution reads a roster saved by SaveSolution and re-links it to league.
// Players are resolved by name against the league pool, so a reload scores the current
// records. The roster is validated against the league before it is returned.
func LoadSolution(filePath string, league *League) (*Solution, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open solution file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for solution: %w", err)
	}
	defer gzReader.Close()

	saveData := SolutionSaveData{}
	if err := gob.NewDecoder(gzReader).Decode(&saveData); err != nil {
		return nil, fmt.Errorf("failed to decode solution data: %w", err)
	}

	// Player records come from the current pool; only names are taken from the file.
	teams := make([]*Team, len(saveData.Teams))
	for i, saved := range saveData.Teams {
		players := make([]Player, len(saved))
		for j, p := range saved {
			pooled, ok := league.Pool.Lookup(p.Name)
			if !ok {
				return nil, fmt.Errorf("saved solution does not fit the league: %w: player %s is not in the pool",
					ErrInvalidSolution, p.Name)
			}
			players[j] = pooled
		}
		teams[i] = NewTeam(league.Rules, players)
	}
	s := NewSolution(league, teams)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("saved solution does not fit the league: %w", err)
	}
	return s, nil
}
