package day14

import (
	"context"
	"fmt"
	"strings"

	"github.com/zargony/advent-of-code-2021/internal/input"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

func init() {
	puzzle.Register(solver{})
}

type solver struct{}

func (solver) Day() int      { return 14 }
func (solver) Title() string { return "Extended Polymerization" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(14)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	template, err := in.Line()
	if err != nil {
		return nil, err
	}
	if _, err := in.Line(); err != nil {
		return nil, err
	}
	lines, err := in.Lines()
	if err != nil {
		return nil, err
	}
	insertions, err := parseRules(lines)
	if err != nil {
		return nil, err
	}

	poly, err := parsePolymer(template)
	if err != nil {
		return nil, err
	}
	poly.process(10, insertions)
	after10 := poly.mostLeastScore()
	poly.process(30, insertions)
	after40 := poly.mostLeastScore()

	return []puzzle.Answer{
		puzzle.Num("Most/least common element score (10 steps)", after10),
		puzzle.Num("Most/least common element score (40 steps)", after40),
	}, nil
}

type pair [2]byte

// rules maps an element pair to the element inserted between them.
type rules map[pair]byte

func parseRules(lines []string) (rules, error) {
	insertions := make(rules)
	for _, line := range lines {
		left, right, found := strings.Cut(line, "->")
		if !found {
			return nil, fmt.Errorf("bad insertion rule %q", line)
		}
		left, right = strings.TrimSpace(left), strings.TrimSpace(right)
		if len(left) != 2 || len(right) != 1 {
			return nil, fmt.Errorf("bad insertion rule %q", line)
		}
		insertions[pair{left[0], left[1]}] = right[0]
	}
	return insertions, nil
}

// polymer tracks how often each overlapping element pair occurs instead of
// the whole chain, which keeps growth over many steps manageable. The last
// element of the chain never changes and is kept for element counting.
type polymer struct {
	pairs map[pair]uint64
	last  byte
}

func parsePolymer(s string) (*polymer, error) {
	if len(s) < 2 {
		return nil, fmt.Errorf("polymer template %q too short", s)
	}
	p := &polymer{pairs: make(map[pair]uint64), last: s[len(s)-1]}
	for i := 0; i+1 < len(s); i++ {
		p.pairs[pair{s[i], s[i+1]}]++
	}
	return p, nil
}

// length is the number of elements in the polymer.
func (p *polymer) length() uint64 {
	var length uint64 = 1
	for _, n := range p.pairs {
		length += n
	}
	return length
}

// step applies every matching insertion rule once. A pair AB with the rule
// AB -> C splits into the pairs AC and CB.
func (p *polymer) step(insertions rules) {
	next := make(map[pair]uint64, len(p.pairs))
	for pr, n := range p.pairs {
		if insert, ok := insertions[pr]; ok {
			next[pair{pr[0], insert}] += n
			next[pair{insert, pr[1]}] += n
		} else {
			next[pr] += n
		}
	}
	p.pairs = next
}

func (p *polymer) process(steps int, insertions rules) {
	for i := 0; i < steps; i++ {
		p.step(insertions)
	}
}

// counts tallies each element, counting every pair's first element plus the
// final element of the chain.
func (p *polymer) counts() map[byte]uint64 {
	counts := map[byte]uint64{p.last: 1}
	for pr, n := range p.pairs {
		counts[pr[0]] += n
	}
	return counts
}

// mostLeastScore is the count of the most common element minus the count of
// the least common one.
func (p *polymer) mostLeastScore() uint64 {
	var min, max uint64
	first := true
	for _, n := range p.counts() {
		if first || n < min {
			min = n
		}
		if first || n > max {
			max = n
		}
		first = false
	}
	return max - min
}
