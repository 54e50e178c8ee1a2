package day05

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

func (solver) Day() int      { return 5 }
func (solver) Title() string { return "Hydrothermal Venture" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(5)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	lines, err := input.ParseLines(in, parseVentLine)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		puzzle.Num("Number of danger areas", newFloor(lines, true).dangerAreas()),
		puzzle.Num("Number of danger areas with diagonals", newFloor(lines, false).dangerAreas()),
	}, nil
}

type point struct {
	x, y int
}

// ventLine is a line of hydrothermal vents between two coordinates. Lines
// are horizontal, vertical or diagonal at exactly 45 degrees.
type ventLine struct {
	from, to point
}

func parseVentLine(s string) (ventLine, error) {
	var l ventLine
	if _, err := fmt.Sscanf(s, "%d,%d -> %d,%d", &l.from.x, &l.from.y, &l.to.x, &l.to.y); err != nil {
		return ventLine{}, fmt.Errorf("bad vent line %q: %w", s, err)
	}
	if dx, dy := l.to.x-l.from.x, l.to.y-l.from.y; dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return ventLine{}, fmt.Errorf("vent line %q is neither straight nor diagonal", s)
	}
	return l, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// direction is the unit step from the line start towards its end.
func (l ventLine) direction() (dx, dy int) {
	return sign(l.to.x - l.from.x), sign(l.to.y - l.from.y)
}

func (l ventLine) isDiagonal() bool {
	dx, dy := l.direction()
	return dx != 0 && dy != 0
}

// points returns every coordinate the line covers, endpoints included.
func (l ventLine) points() []point {
	dx, dy := l.direction()
	points := []point{l.from}
	for p := l.from; p != l.to; {
		p.x += dx
		p.y += dy
		points = append(points, p)
	}
	return points
}

// floor records how many vent lines cover each point of the ocean floor.
type floor struct {
	density map[point]int
}

func newFloor(lines []ventLine, ignoreDiagonals bool) *floor {
	f := &floor{density: make(map[point]int)}
	for _, l := range lines {
		if ignoreDiagonals && l.isDiagonal() {
			continue
		}
		for _, p := range l.points() {
			f.density[p]++
		}
	}
	return f
}

// dangerAreas counts points covered by at least two lines.
func (f *floor) dangerAreas() int {
	count := 0
	for _, d := range f.density {
		if d >= 2 {
			count++
		}
	}
	return count
}
