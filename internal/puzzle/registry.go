package puzzle

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownDay is returned when no solver is registered for a day.
var ErrUnknownDay = errors.New("unknown puzzle day")

var registry = make(map[int]Solver)

// Register adds a day's solver to the registry. Day packages call it from
// init; it panics on a duplicate day.
func Register(s Solver) {
	if _, exists := registry[s.Day()]; exists {
		panic(fmt.Sprintf("puzzle: duplicate solver for day %d", s.Day()))
	}
	registry[s.Day()] = s
}

// Get returns the solver registered for a day.
func Get(day int) (Solver, error) {
	s, exists := registry[day]
	if !exists {
		return nil, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	return s, nil
}

// Days returns all registered days in ascending order.
func Days() []int {
	days := make([]int, 0, len(registry))
	for day := range registry {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// Solvers returns all registered solvers in day order.
func Solvers() []Solver {
	solvers := make([]Solver, 0, len(registry))
	for _, day := range Days() {
		solvers = append(solvers, registry[day])
	}
	return solvers
}
