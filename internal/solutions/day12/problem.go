package day12

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/zargony/advent-of-code-2021/internal/input"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

func init() {
	puzzle.Register(solver{})
}

type solver struct{}

func (solver) Day() int      { return 12 }
func (solver) Title() string { return "Passage Pathing" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(12)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	lines, err := in.Lines()
	if err != nil {
		return nil, err
	}
	system, err := parseCaves(lines)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		puzzle.Num("Number of possible paths", system.countPaths(false)),
		puzzle.Num("Number of possible paths with extra rule", system.countPaths(true)),
	}, nil
}

const (
	caveStart = "start"
	caveEnd   = "end"
)

// isBig reports whether the cave name is all uppercase. Big caves may be
// visited any number of times.
func isBig(name string) bool {
	for _, ch := range name {
		if !unicode.IsUpper(ch) {
			return false
		}
	}
	return true
}

func isSmall(name string) bool {
	for _, ch := range name {
		if !unicode.IsLower(ch) {
			return false
		}
	}
	return true
}

// caveRank orders exits: start first, then big caves, then small caves,
// then end.
func caveRank(name string) int {
	switch {
	case name == caveStart:
		return 0
	case name == caveEnd:
		return 3
	case isBig(name):
		return 1
	}
	return 2
}

// caves maps each cave to its exits, sorted so walks take a deterministic
// order.
type caves map[string][]string

func parseCaves(lines []string) (caves, error) {
	system := make(caves)
	for _, line := range lines {
		from, to, found := strings.Cut(line, "-")
		if !found {
			return nil, fmt.Errorf("bad cave connection %q", line)
		}
		for _, name := range []string{from, to} {
			if !isBig(name) && !isSmall(name) {
				return nil, fmt.Errorf("bad cave name %q", name)
			}
		}
		system[from] = append(system[from], to)
		system[to] = append(system[to], from)
	}
	for _, exits := range system {
		sort.Slice(exits, func(i, j int) bool {
			if ri, rj := caveRank(exits[i]), caveRank(exits[j]); ri != rj {
				return ri < rj
			}
			return exits[i] < exits[j]
		})
	}
	return system, nil
}

// walk visits every distinct path from start to end in exit order. Small
// caves may appear once per path, or one of them twice when extraVisit is
// set. The path slice is reused between visits, visitors that keep it must
// copy it.
func (c caves) walk(extraVisit bool, visit func(path []string)) {
	c.explore([]string{caveStart}, "", extraVisit, visit)
}

// explore continues the path at its last cave. dupe names the small cave
// already entered twice, empty if none.
func (c caves) explore(path []string, dupe string, extraVisit bool, visit func(path []string)) {
	last := path[len(path)-1]
	if last == caveEnd {
		visit(path)
		return
	}
	for _, next := range c[last] {
		if next == caveStart {
			continue
		}
		nextDupe := dupe
		if !isBig(next) && containsCave(path, next) {
			if !extraVisit || dupe != "" {
				continue
			}
			nextDupe = next
		}
		c.explore(append(path, next), nextDupe, extraVisit, visit)
	}
}

func containsCave(path []string, name string) bool {
	for _, cave := range path {
		if cave == name {
			return true
		}
	}
	return false
}

// countPaths counts the distinct paths from start to end.
func (c caves) countPaths(extraVisit bool) int {
	count := 0
	c.walk(extraVisit, func([]string) { count++ })
	return count
}
