package day17

import (
	"context"
	"errors"

	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

func init() {
	puzzle.Register(solver{})
}

type solver struct{}

func (solver) Day() int      { return 17 }
func (solver) Title() string { return "Trick Shot" }

// targetArea is given in the puzzle text instead of an input file.
var targetArea = target{minX: 57, maxX: 116, minY: -198, maxY: -148}

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	best, hits := bruteForceHits(targetArea)
	if hits == 0 {
		return nil, errors.New("no velocity hits the target area")
	}

	return []puzzle.Answer{
		puzzle.Num("Max probe height", best.maxY),
		puzzle.Num("Number of initial velocities with hits", hits),
	}, nil
}

// target is the area the probe must hit, both ranges inclusive.
type target struct {
	minX, maxX int
	minY, maxY int
}

type probeResult int

const (
	resultUncertain probeResult = iota
	resultHit
	resultMiss
)

// probe is a ballistic probe launched from the origin.
type probe struct {
	x, y   int
	vx, vy int
	maxY   int
}

func launch(vx, vy int) *probe {
	return &probe{vx: vx, vy: vy}
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

// step moves the probe. Drag pulls the horizontal velocity towards zero,
// gravity decreases the vertical velocity by one.
func (p *probe) step() {
	p.x += p.vx
	p.vx -= sign(p.vx)
	p.y += p.vy
	p.vy--
	if p.y > p.maxY {
		p.maxY = p.y
	}
}

// check reports whether the probe is inside the target area, has missed it
// for good, or is still on a course that may reach it.
func (p *probe) check(area target) probeResult {
	switch {
	case p.x >= area.minX && p.x <= area.maxX && p.y >= area.minY && p.y <= area.maxY:
		return resultHit
	case p.x < area.minX && p.vx > 0,
		p.x > area.maxX && p.vx < 0,
		p.y < area.minY && p.vy > 0,
		p.y > area.maxY:
		return resultUncertain
	}
	return resultMiss
}

const maxSteps = 400

// hit describes a successful shot: the initial velocity, the steps flown,
// the final position and the highest point of the flight.
type hit struct {
	vx, vy int
	steps  int
	x, y   int
	maxY   int
}

// fire launches a probe with the given velocity and reports its flight if
// it hits the target area.
func fire(vx, vy int, area target) (hit, bool) {
	p := launch(vx, vy)
	for i := 0; i < maxSteps; i++ {
		p.step()
		switch p.check(area) {
		case resultHit:
			return hit{vx: vx, vy: vy, steps: i + 1, x: p.x, y: p.y, maxY: p.maxY}, true
		case resultMiss:
			return hit{}, false
		}
	}
	return hit{}, false
}

// bruteForceHits fires probes with all velocities in a generous window. It
// returns the highest flight among the hits and the number of distinct
// velocities that hit.
func bruteForceHits(area target) (best hit, hits int) {
	found := false
	for vx := -200; vx < 200; vx++ {
		for vy := -200; vy < 200; vy++ {
			h, ok := fire(vx, vy, area)
			if !ok {
				continue
			}
			hits++
			if !found || h.maxY > best.maxY {
				best, found = h, true
			}
		}
	}
	return best, hits
}
