package day02

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

func (solver) Day() int      { return 2 }
func (solver) Title() string { return "Dive!" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(2)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	course, err := input.ParseLines(in, parseMovement)
	if err != nil {
		return nil, err
	}

	var pos position
	pos.follow(course)

	var exact exactPosition
	exact.follow(course)

	return []puzzle.Answer{
		puzzle.Num("Final position product", pos.horizontal*pos.depth),
		puzzle.Num("Final exact position product", exact.horizontal*exact.depth),
	}, nil
}

type direction string

const (
	forward direction = "forward"
	down    direction = "down"
	up      direction = "up"
)

// movement is one course instruction, a direction and a distance.
type movement struct {
	direction direction
	distance  int
}

func parseMovement(s string) (movement, error) {
	word, distanceStr, found := strings.Cut(s, " ")
	if !found {
		return movement{}, fmt.Errorf("bad movement %q", s)
	}

	distance, err := strconv.Atoi(distanceStr)
	if err != nil {
		return movement{}, fmt.Errorf("bad movement %q: %w", s, err)
	}

	switch dir := direction(word); dir {
	case forward, down, up:
		return movement{direction: dir, distance: distance}, nil
	default:
		return movement{}, fmt.Errorf("bad movement %q", s)
	}
}

// position tracks the submarine where down and up steer depth directly.
type position struct {
	horizontal int
	depth      int
}

func (p *position) follow(course []movement) {
	for _, m := range course {
		switch m.direction {
		case forward:
			p.horizontal += m.distance
		case down:
			p.depth += m.distance
		case up:
			p.depth -= m.distance
		}
	}
}

// exactPosition tracks the submarine where down and up steer aim and
// forward moves both horizontally and by aim times distance in depth.
type exactPosition struct {
	horizontal int
	depth      int
	aim        int
}

func (p *exactPosition) follow(course []movement) {
	for _, m := range course {
		switch m.direction {
		case forward:
			p.horizontal += m.distance
			p.depth += p.aim * m.distance
		case down:
			p.aim += m.distance
		case up:
			p.aim -= m.distance
		}
	}
}
