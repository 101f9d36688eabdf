package solver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned by ParseStrategy for an unsupported name.
var ErrUnknownStrategy = errors.New("solver: unknown strategy")

// Strategy names one search algorithm.
type Strategy string

const (
	DFS   Strategy = "dfs"
	BFS   Strategy = "bfs"
	AStar Strategy = "astar"
)

// AllStrategies returns every strategy in the order they are run by default.
func AllStrategies() []Strategy {
	return []Strategy{DFS, BFS, AStar}
}

// ParseStrategy accepts "dfs", "bfs", "astar" (also "a*"), case-insensitive.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs":
		return DFS, nil
	case "bfs":
		return BFS, nil
	case "astar", "a*":
		return AStar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// ParseStrategies parses a list of names, rejecting duplicates.
func ParseStrategies(names []string) ([]Strategy, error) {
	out := make([]Strategy, 0, len(names))
	seen := make(map[Strategy]bool, len(names))
	for _, n := range names {
		s, err := ParseStrategy(n)
		if err != nil {
			return nil, err
		}
		if seen[s] {
			return nil, fmt.Errorf("solver: strategy %q listed twice", s)
		}
		seen[s] = true
		out = append(out, s)
	}

	return out, nil
}

// Title is the human label printed for a strategy.
func (s Strategy) Title() string {
	switch s {
	case DFS:
		return "Depth-first search"
	case BFS:
		return "Breadth-first search"
	case AStar:
		return "A* search"
	default:
		return string(s)
	}
}
