package day09

import (
	"context"
	"fmt"
	"sort"

	"github.com/zargony/advent-of-code-2021/internal/input"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

func init() {
	puzzle.Register(solver{})
}

type solver struct{}

func (solver) Day() int      { return 9 }
func (solver) Title() string { return "Smoke Basin" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(9)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	lines, err := in.Lines()
	if err != nil {
		return nil, err
	}
	heights, err := parseHeightMap(lines)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		puzzle.Num("Low points total risk", heights.lowPointsTotalRisk()),
		puzzle.Num("Top basins size factor", heights.topBasinsSizeFactor()),
	}, nil
}

// heightMap is the grid of floor heights, rows first.
type heightMap [][]int

func parseHeightMap(lines []string) (heightMap, error) {
	var heights heightMap
	for _, line := range lines {
		row := make([]int, 0, len(line))
		for _, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("bad height %q in %q", ch, line)
			}
			row = append(row, int(ch-'0'))
		}
		heights = append(heights, row)
	}
	return heights, nil
}

type point struct {
	x, y int
}

// at returns the height at x, y and whether that position exists.
func (m heightMap) at(x, y int) (int, bool) {
	if y < 0 || y >= len(m) || x < 0 || x >= len(m[y]) {
		return 0, false
	}
	return m[y][x], true
}

// isLowPoint reports whether every existing neighbor is strictly higher.
func (m heightMap) isLowPoint(x, y int) bool {
	height, ok := m.at(x, y)
	if !ok {
		return false
	}
	for _, p := range [4]point{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
		if h, ok := m.at(p.x, p.y); ok && h <= height {
			return false
		}
	}
	return true
}

func (m heightMap) lowPoints() []point {
	var points []point
	for y := range m {
		for x := range m[y] {
			if m.isLowPoint(x, y) {
				points = append(points, point{x, y})
			}
		}
	}
	return points
}

// lowPointsTotalRisk sums each low point's height plus one.
func (m heightMap) lowPointsTotalRisk() int {
	risk := 0
	for _, p := range m.lowPoints() {
		if height, ok := m.at(p.x, p.y); ok {
			risk += height + 1
		}
	}
	return risk
}

// basinPoints flood-fills the basin around x, y. Heights of nine never
// belong to any basin.
func (m heightMap) basinPoints(x, y int) map[point]bool {
	points := make(map[point]bool)
	m.fillBasin(points, x, y)
	return points
}

func (m heightMap) fillBasin(points map[point]bool, x, y int) {
	if points[point{x, y}] {
		return
	}
	height, ok := m.at(x, y)
	if !ok || height >= 9 {
		return
	}
	points[point{x, y}] = true
	m.fillBasin(points, x-1, y)
	m.fillBasin(points, x, y-1)
	m.fillBasin(points, x+1, y)
	m.fillBasin(points, x, y+1)
}

// topBasinsSizeFactor multiplies the sizes of the three largest basins.
func (m heightMap) topBasinsSizeFactor() int {
	var sizes []int
	for _, p := range m.lowPoints() {
		sizes = append(sizes, len(m.basinPoints(p.x, p.y)))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	factor := 1
	for i := 0; i < len(sizes) && i < 3; i++ {
		factor *= sizes[i]
	}
	return factor
}
