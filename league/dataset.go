package league

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadPlayersCSV reads a player dataset from a CSV file. See ReadPlayers for the format.
func LoadPlayersCSV(filePath string) ([]Player, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open player dataset '%s': %w", filePath, err)
	}
	defer file.Close()

	players, err := ReadPlayers(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read player dataset '%s': %w", filePath, err)
	}
	return players, nil
}

// ReadPlayers parses CSV records with a header row naming the columns Name, Position,
// Skill and Salary. Any header starting with "salary" is accepted for the salary column
// (e.g. "Salary (€M)"); other columns are ignored.
func ReadPlayers(r io.Reader) ([]Player, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dataset is empty")
		}
		return nil, err
	}

	cols := map[string]int{"name": -1, "position": -1, "skill": -1, "salary": -1}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if strings.HasPrefix(key, "salary") {
			key = "salary"
		}
		if idx, ok := cols[key]; ok && idx == -1 {
			cols[key] = i
		}
	}
	for name, idx := range cols {
		if idx == -1 {
			return nil, fmt.Errorf("missing column %q in header", name)
		}
	}

	var players []Player
	seen := make(map[string]bool)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		name := strings.TrimSpace(record[cols["name"]])
		if name == "" {
			return nil, fmt.Errorf("line %d: empty player name", line)
		}
		if seen[name] {
			return nil, fmt.Errorf("line %d: %w: %s", line, ErrDuplicatePlayer, name)
		}
		seen[name] = true

		pos, err := ParsePosition(record[cols["position"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		skill, err := parseNonNegative(record[cols["skill"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: skill: %w", line, err)
		}
		salary, err := parseNonNegative(record[cols["salary"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: salary: %w", line, err)
		}

		players = append(players, Player{Name: name, Position: pos, Skill: skill, Salary: salary})
	}
	return players, nil
}

func parseNonNegative(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if !nonNegative(v) {
		return 0, fmt.Errorf("value %v must be finite and non-negative", v)
	}
	return v, nil
}
