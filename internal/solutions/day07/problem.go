package day07

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zargony/advent-of-code-2021/internal/input"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

func init() {
	puzzle.Register(solver{})
}

type solver struct{}

func (solver) Day() int      { return 7 }
func (solver) Title() string { return "The Treachery of Whales" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(7)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	line, err := in.Line()
	if err != nil {
		return nil, err
	}
	swarm, err := parseSwarm(line)
	if err != nil {
		return nil, err
	}

	_, fuel := swarm.leastFuelRequired(simpleFuel)
	_, realisticTotal := swarm.leastFuelRequired(realisticFuel)

	return []puzzle.Answer{
		puzzle.Num("Least fuel to align", fuel),
		puzzle.Num("Least realistic fuel to align", realisticTotal),
	}, nil
}

// simpleFuel costs one unit of fuel per step.
func simpleFuel(distance int) int {
	return distance
}

// realisticFuel costs one more unit for each additional step, so a distance
// of 4 costs 1+2+3+4 units.
func realisticFuel(distance int) int {
	return (1 + distance) * distance / 2
}

// swarm holds the horizontal positions of all crab submarines.
type swarm struct {
	positions []int
}

func parseSwarm(line string) (*swarm, error) {
	s := &swarm{}
	for _, field := range strings.Split(line, ",") {
		position, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("bad crab position %q: %w", field, err)
		}
		s.positions = append(s.positions, position)
	}
	return s, nil
}

func (s *swarm) maxPosition() int {
	max := 0
	for _, pos := range s.positions {
		if pos > max {
			max = pos
		}
	}
	return max
}

// fuelRequired totals the fuel for moving every crab to position.
func (s *swarm) fuelRequired(position int, fuel func(distance int) int) int {
	total := 0
	for _, pos := range s.positions {
		distance := pos - position
		if distance < 0 {
			distance = -distance
		}
		total += fuel(distance)
	}
	return total
}

// leastFuelRequired brute-forces the cheapest position to align the swarm at
// and returns that position together with the fuel it takes.
func (s *swarm) leastFuelRequired(fuel func(distance int) int) (int, int) {
	bestPos, bestFuel := 0, 0
	for pos := 0; pos < s.maxPosition(); pos++ {
		if total := s.fuelRequired(pos, fuel); pos == 0 || total < bestFuel {
			bestPos, bestFuel = pos, total
		}
	}
	return bestPos, bestFuel
}
