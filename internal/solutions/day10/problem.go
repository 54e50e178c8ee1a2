package day10

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/zargony/advent-of-code-2021/internal/input"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

func init() {
	puzzle.Register(solver{})
}

type solver struct{}

func (solver) Day() int      { return 10 }
func (solver) Title() string { return "Syntax Scoring" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(10)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	lines, err := in.Lines()
	if err != nil {
		return nil, err
	}

	median, err := medianIncompleteScore(lines)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		puzzle.Num("Total corrupt syntax error score", totalCorruptScore(lines)),
		puzzle.Num("Median incomplete syntax error score", median),
	}, nil
}

// scanChunks walks the chunk pairs of line. It returns the closers still
// expected for open chunks (innermost last) and the first mismatched
// closer, zero if the line is not corrupted.
func scanChunks(line string) (open []byte, corrupt byte, err error) {
	for i := 0; i < len(line); i++ {
		switch token := line[i]; token {
		case '(':
			open = append(open, ')')
		case '[':
			open = append(open, ']')
		case '{':
			open = append(open, '}')
		case '<':
			open = append(open, '>')
		case ')', ']', '}', '>':
			if len(open) == 0 {
				return nil, 0, fmt.Errorf("unexpected %q in line %q", token, line)
			}
			expected := open[len(open)-1]
			open = open[:len(open)-1]
			if token != expected {
				return nil, token, nil
			}
		default:
			return nil, 0, fmt.Errorf("bad token %q in line %q", token, line)
		}
	}
	return open, 0, nil
}

var corruptScores = map[byte]int{')': 3, ']': 57, '}': 1197, '>': 25137}

var completionScores = map[byte]int{')': 1, ']': 2, '}': 3, '>': 4}

// corruptScore scores the first mismatched closer of a corrupted line.
// Lines that are not corrupted score zero.
func corruptScore(line string) int {
	_, corrupt, err := scanChunks(line)
	if err != nil {
		return 0
	}
	return corruptScores[corrupt]
}

// incompleteScore scores the completion of an incomplete line, closing open
// chunks from the innermost out. Lines that are not incomplete score zero.
func incompleteScore(line string) int {
	open, corrupt, err := scanChunks(line)
	if err != nil || corrupt != 0 {
		return 0
	}
	score := 0
	for i := len(open) - 1; i >= 0; i-- {
		score = score*5 + completionScores[open[i]]
	}
	return score
}

func totalCorruptScore(lines []string) int {
	total := 0
	for _, line := range lines {
		total += corruptScore(line)
	}
	return total
}

func medianIncompleteScore(lines []string) (int, error) {
	var scores []int
	for _, line := range lines {
		if score := incompleteScore(line); score > 0 {
			scores = append(scores, score)
		}
	}
	if len(scores) == 0 {
		return 0, errors.New("no incomplete lines")
	}
	sort.Ints(scores)
	return scores[len(scores)/2], nil
}
