package day11

import (
	"context"
	"fmt"

	"github.com/zargony/advent-of-code-2021/internal/input"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

func init() {
	puzzle.Register(solver{})
}

type solver struct{}

func (solver) Day() int      { return 11 }
func (solver) Title() string { return "Dumbo Octopus" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(11)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	lines, err := in.Lines()
	if err != nil {
		return nil, err
	}

	first, err := parseGrid(lines)
	if err != nil {
		return nil, err
	}
	second, err := parseGrid(lines)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		puzzle.Num("Total flashes after 100 steps", first.steps(100)),
		puzzle.Num("Steps until full flash", second.stepUntilFullFlash()),
	}, nil
}

// grid holds the energy level of every octopus, rows first.
type grid [][]int

func parseGrid(lines []string) (grid, error) {
	var g grid
	for _, line := range lines {
		row := make([]int, 0, len(line))
		for _, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("bad energy level %q in %q", ch, line)
			}
			row = append(row, int(ch-'0'))
		}
		g = append(g, row)
	}
	return g, nil
}

// increase raises the energy level at x, y. An octopus reaching exactly ten
// flashes and raises all adjacent levels as well, so each octopus cascades
// at most once per step.
func (g grid) increase(x, y int) {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return
	}
	g[y][x]++
	if g[y][x] != 10 {
		return
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				g.increase(x+dx, y+dy)
			}
		}
	}
}

// step raises every energy level, cascades the flashes and resets flashed
// octopuses to zero. It returns the number of flashes.
func (g grid) step() int {
	for y := range g {
		for x := range g[y] {
			g.increase(x, y)
		}
	}
	flashes := 0
	for y := range g {
		for x := range g[y] {
			if g[y][x] >= 10 {
				g[y][x] = 0
				flashes++
			}
		}
	}
	return flashes
}

func (g grid) steps(count int) int {
	flashes := 0
	for i := 0; i < count; i++ {
		flashes += g.step()
	}
	return flashes
}

func (g grid) size() int {
	size := 0
	for _, row := range g {
		size += len(row)
	}
	return size
}

// stepUntilFullFlash steps until every octopus flashes in the same step and
// returns the number of steps taken.
func (g grid) stepUntilFullFlash() int {
	size := g.size()
	for steps := 1; ; steps++ {
		if g.step() == size {
			return steps
		}
	}
}
