package day15

import (
	"container/heap"
	"context"
	"errors"
	"fmt"

	"github.com/zargony/advent-of-code-2021/internal/input"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

func init() {
	puzzle.Register(solver{})
}

type solver struct{}

func (solver) Day() int      { return 15 }
func (solver) Title() string { return "Chiton" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(15)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	lines, err := in.Lines()
	if err != nil {
		return nil, err
	}
	risks, err := parseRiskMap(lines)
	if err != nil {
		return nil, err
	}

	lowest, err := risks.lowestRisk()
	if err != nil {
		return nil, err
	}
	fullLowest, err := risks.enlarge(5).lowestRisk()
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		puzzle.Num("Lowest risk", lowest),
		puzzle.Num("Lowest risk (full map)", fullLowest),
	}, nil
}

// riskMap is the rectangular grid of risk levels, rows first.
type riskMap [][]int

func parseRiskMap(lines []string) (riskMap, error) {
	var risks riskMap
	for _, line := range lines {
		if len(risks) > 0 && len(line) != len(risks[0]) {
			return nil, fmt.Errorf("ragged risk map row %q", line)
		}
		row := make([]int, 0, len(line))
		for _, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("bad risk level %q in %q", ch, line)
			}
			row = append(row, int(ch-'0'))
		}
		risks = append(risks, row)
	}
	return risks, nil
}

// enlarge tiles the map factor times in both directions. Each tile further
// down or right increases every risk by one, wrapping from nine back to one.
func (m riskMap) enlarge(factor int) riskMap {
	if len(m) == 0 {
		return m
	}
	height, width := len(m), len(m[0])
	enlarged := make(riskMap, height*factor)
	for y := range enlarged {
		enlarged[y] = make([]int, width*factor)
		for x := range enlarged[y] {
			risk := m[y%height][x%width] + y/height + x/width
			enlarged[y][x] = (risk-1)%9 + 1
		}
	}
	return enlarged
}

// pathNode is a queue entry of a position and the risk to reach it.
type pathNode struct {
	x, y int
	risk int
}

// riskQueue is a min-heap of path nodes ordered by risk.
type riskQueue []pathNode

func (q riskQueue) Len() int           { return len(q) }
func (q riskQueue) Less(i, j int) bool { return q[i].risk < q[j].risk }
func (q riskQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *riskQueue) Push(x any) {
	*q = append(*q, x.(pathNode))
}

func (q *riskQueue) Pop() any {
	old := *q
	node := old[len(old)-1]
	*q = old[:len(old)-1]
	return node
}

// lowestRisk finds the risk sum of the safest path from the top left to the
// bottom right corner with Dijkstra's algorithm.
func (m riskMap) lowestRisk() (int, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, errors.New("empty risk map")
	}
	height, width := len(m), len(m[0])

	best := make([][]int, height)
	for y := range best {
		best[y] = make([]int, width)
		for x := range best[y] {
			best[y][x] = -1
		}
	}
	best[0][0] = 0

	queue := &riskQueue{{x: 0, y: 0, risk: 0}}
	for queue.Len() > 0 {
		node := heap.Pop(queue).(pathNode)
		if node.y == height-1 && node.x == width-1 {
			return node.risk, nil
		}
		if node.risk > best[node.y][node.x] {
			// stale queue entry, a cheaper path was found meanwhile
			continue
		}
		for _, next := range [4]pathNode{
			{x: node.x + 1, y: node.y},
			{x: node.x - 1, y: node.y},
			{x: node.x, y: node.y + 1},
			{x: node.x, y: node.y - 1},
		} {
			if next.y < 0 || next.y >= height || next.x < 0 || next.x >= width {
				continue
			}
			next.risk = node.risk + m[next.y][next.x]
			if best[next.y][next.x] >= 0 && next.risk >= best[next.y][next.x] {
				continue
			}
			best[next.y][next.x] = next.risk
			heap.Push(queue, next)
		}
	}
	return 0, errors.New("no path to the bottom right corner")
}
