package day06

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

func (solver) Day() int      { return 6 }
func (solver) Title() string { return "Lanternfish" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(6)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	line, err := in.Line()
	if err != nil {
		return nil, err
	}
	population, err := parsePopulation(line)
	if err != nil {
		return nil, err
	}

	population.evolve(80)
	after80 := population.count()
	population.evolve(256 - 80)
	after256 := population.count()

	return []puzzle.Answer{
		puzzle.Num("Population after 80 days", after80),
		puzzle.Num("Population after 256 days", after256),
	}, nil
}

// population groups lanternfish counts by timer state, so a whole day of
// evolution is a rotation of nine counters instead of a walk over every fish.
type population struct {
	states [9]uint64
}

func parsePopulation(line string) (*population, error) {
	p := &population{}
	for _, field := range strings.Split(line, ",") {
		state, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("bad lanternfish state %q: %w", field, err)
		}
		if state < 0 || state >= len(p.states) {
			return nil, fmt.Errorf("lanternfish state %d out of range", state)
		}
		p.states[state]++
	}
	return p, nil
}

// evolve advances the population day by day. Every timer decreases by one,
// fish at zero restart at six and spawn offspring starting at eight.
func (p *population) evolve(days int) {
	for ; days > 0; days-- {
		spawning := p.states[0]
		copy(p.states[:8], p.states[1:])
		p.states[6] += spawning
		p.states[8] = spawning
	}
}

func (p *population) count() uint64 {
	var count uint64
	for _, n := range p.states {
		count += n
	}
	return count
}
