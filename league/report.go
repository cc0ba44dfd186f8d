package league

import (
	"fmt"
	"io"
	"os"
)

// WriteLeagueReport writes the league overview followed by each team's table.
func WriteLeagueReport(w io.Writer, s *Solution) error {
	if _, err := fmt.Fprintf(w, "=== League Overview ===\n%s\n\n", s); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "=== Individual Teams ==="); err != nil {
		return err
	}
	for idx, team := range s.teams {
		if _, err := fmt.Fprintf(w, "\nTeam %d:\n%s\n", idx+1, team); err != nil {
			return err
		}
	}
	return nil
}

// SaveLeagueReport writes the report for s to filePath.
func SaveLeagueReport(filePath string, s *Solution) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create report file '%s': %w", filePath, err)
	}
	defer file.Close()

	if err := WriteLeagueReport(file, s); err != nil {
		return fmt.Errorf("failed to write report '%s': %w", filePath, err)
	}
	return file.Close()
}
