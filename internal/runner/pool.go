package runner

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

// Outcome is what one day's solve produced, a result or an error.
type Outcome struct {
	Day    int
	Result *puzzle.Result
	Err    error
}

// Pool solves several puzzle days concurrently. Days are independent, so
// the only coordination needed is bounding how many run at once.
type Pool struct {
	workers int
	logger  *zerolog.Logger
}

func NewPool(workers int, logger *zerolog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}

	return &Pool{
		workers: workers,
		logger:  logger,
	}
}

// Run solves all given days and returns their outcomes in day order. A
// failing day does not stop its siblings; cancelling ctx makes days that
// have not started yet fail fast with the context error.
func (p *Pool) Run(ctx context.Context, solvers []puzzle.Solver) []Outcome {
	jobs := make(chan puzzle.Solver)
	results := make(chan Outcome, len(solvers))
	var wg sync.WaitGroup

	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for solver := range jobs {
				results <- p.solve(ctx, solver)
			}
		}()
	}

	for _, solver := range solvers {
		jobs <- solver
	}
	close(jobs)

	wg.Wait()
	close(results)

	outcomes := make([]Outcome, 0, len(solvers))
	for outcome := range results {
		outcomes = append(outcomes, outcome)
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].Day < outcomes[j].Day })

	return outcomes
}

func (p *Pool) solve(ctx context.Context, solver puzzle.Solver) Outcome {
	day := solver.Day()

	if err := ctx.Err(); err != nil {
		return Outcome{Day: day, Err: err}
	}

	p.logger.Debug().Int("day", day).Str("title", solver.Title()).Msg("Solving puzzle")

	start := time.Now()
	answers, err := solver.Solve(ctx)
	duration := time.Since(start)

	if err != nil {
		p.logger.Error().Err(err).Int("day", day).Msg("Puzzle failed")
		return Outcome{Day: day, Err: fmt.Errorf("day %02d: %w", day, err)}
	}

	p.logger.Info().Int("day", day).Dur("duration", duration).Msg("Puzzle solved")

	return Outcome{
		Day: day,
		Result: &puzzle.Result{
			Day:      day,
			Title:    solver.Title(),
			Answers:  answers,
			Duration: duration,
		},
	}
}
