package day01

import (
	"context"

	"github.com/zargony/advent-of-code-2021/internal/input"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

func init() {
	puzzle.Register(solver{})
}

type solver struct{}

func (solver) Day() int      { return 1 }
func (solver) Title() string { return "Sonar Sweep" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(1)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	depths, err := input.ParseLines(in, input.Int)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		puzzle.Num("Increasing depths", countIncreasing(depths)),
		puzzle.Num("Increasing sliding-window depths", countIncreasing(slidingWindowSums(depths))),
	}, nil
}

// countIncreasing counts measurements that are larger than the one before.
func countIncreasing(depths []int) int {
	count := 0
	for i := 1; i < len(depths); i++ {
		if depths[i] > depths[i-1] {
			count++
		}
	}
	return count
}

// slidingWindowSums sums each three-measurement window.
func slidingWindowSums(depths []int) []int {
	var sums []int
	for i := 2; i < len(depths); i++ {
		sums = append(sums, depths[i-2]+depths[i-1]+depths[i])
	}
	return sums
}
