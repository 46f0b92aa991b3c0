package mapgen

import (
	"fmt"
	"strings"
)

// Strategy selects an obstacle generation scheme.
type Strategy int

const (
	// Random places each obstacle independently with probability density.
	Random Strategy = iota
	// Clustered places roughly square blobs of obstacles.
	Clustered
	// Maze carves a recursive-division corridor maze.
	Maze
	// Mixed is the union of a Random and a Clustered map at half density each.
	Mixed
)

// Strategies lists every strategy in canonical order.
var Strategies = []Strategy{Random, Clustered, Maze, Mixed}

var strategyNames = [...]string{
	Random:    "random",
	Clustered: "clustered",
	Maze:      "maze",
	Mixed:     "mixed",
}

// String returns the lowercase strategy name used in result tables.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy resolves a case-insensitive strategy name.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == key {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(strategyNames) {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(s), ErrUnknownStrategy)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
