package runner

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

type fakeSolver struct {
	day     int
	answers []puzzle.Answer
	err     error
	delay   time.Duration
	running *int32
	maxSeen *int32
}

func (s *fakeSolver) Day() int      { return s.day }
func (s *fakeSolver) Title() string { return "Fake Puzzle" }

func (s *fakeSolver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	if s.running != nil {
		now := atomic.AddInt32(s.running, 1)
		for {
			max := atomic.LoadInt32(s.maxSeen)
			if now <= max || atomic.CompareAndSwapInt32(s.maxSeen, max, now) {
				break
			}
		}
		defer atomic.AddInt32(s.running, -1)
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.answers, s.err
}

func TestPool_ResultsInDayOrder(t *testing.T) {
	solvers := []puzzle.Solver{
		&fakeSolver{day: 9, answers: []puzzle.Answer{{Label: "a", Value: "1"}}},
		&fakeSolver{day: 2, answers: []puzzle.Answer{{Label: "a", Value: "2"}}},
		&fakeSolver{day: 5, answers: []puzzle.Answer{{Label: "a", Value: "3"}}},
	}

	pool := NewPool(3, newTestLogger())
	outcomes := pool.Run(context.Background(), solvers)

	if len(outcomes) != 3 {
		t.Fatalf("Expected 3 outcomes, got %d", len(outcomes))
	}
	for i, expected := range []int{2, 5, 9} {
		if outcomes[i].Day != expected {
			t.Errorf("Outcome %d: expected day %d, got %d", i, expected, outcomes[i].Day)
		}
	}
}

func TestPool_FailureDoesNotStopSiblings(t *testing.T) {
	solvers := []puzzle.Solver{
		&fakeSolver{day: 1, answers: []puzzle.Answer{{Label: "a", Value: "1"}}},
		&fakeSolver{day: 2, err: errors.New("corrupt input")},
		&fakeSolver{day: 3, answers: []puzzle.Answer{{Label: "a", Value: "3"}}},
	}

	pool := NewPool(2, newTestLogger())
	outcomes := pool.Run(context.Background(), solvers)

	if len(outcomes) != 3 {
		t.Fatalf("Expected 3 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Err != nil || outcomes[0].Result == nil {
		t.Errorf("Day 1 should have succeeded: %v", outcomes[0].Err)
	}
	if outcomes[1].Err == nil {
		t.Error("Day 2 should have failed")
	}
	if outcomes[2].Err != nil || outcomes[2].Result == nil {
		t.Errorf("Day 3 should have succeeded: %v", outcomes[2].Err)
	}
}

func TestPool_ErrorNamesDay(t *testing.T) {
	solvers := []puzzle.Solver{
		&fakeSolver{day: 7, err: errors.New("boom")},
	}

	pool := NewPool(1, newTestLogger())
	outcomes := pool.Run(context.Background(), solvers)

	if outcomes[0].Err == nil {
		t.Fatal("Expected error outcome")
	}
	if got := outcomes[0].Err.Error(); got != "day 07: boom" {
		t.Errorf("Expected error to name the day, got %q", got)
	}
}

func TestPool_WorkerCountCapsConcurrency(t *testing.T) {
	var running, maxSeen int32
	var solvers []puzzle.Solver
	for day := 1; day <= 6; day++ {
		solvers = append(solvers, &fakeSolver{
			day:     day,
			answers: []puzzle.Answer{{Label: "a", Value: "1"}},
			delay:   10 * time.Millisecond,
			running: &running,
			maxSeen: &maxSeen,
		})
	}

	pool := NewPool(2, newTestLogger())
	pool.Run(context.Background(), solvers)

	if max := atomic.LoadInt32(&maxSeen); max > 2 {
		t.Errorf("Expected at most 2 concurrent solves, saw %d", max)
	}
}

func TestPool_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	solvers := []puzzle.Solver{
		&fakeSolver{day: 1, answers: []puzzle.Answer{{Label: "a", Value: "1"}}},
		&fakeSolver{day: 2, answers: []puzzle.Answer{{Label: "a", Value: "2"}}},
	}

	pool := NewPool(2, newTestLogger())
	outcomes := pool.Run(ctx, solvers)

	if len(outcomes) != 2 {
		t.Fatalf("Expected 2 outcomes, got %d", len(outcomes))
	}
	for _, outcome := range outcomes {
		if !errors.Is(outcome.Err, context.Canceled) {
			t.Errorf("Day %d: expected context.Canceled, got: %v", outcome.Day, outcome.Err)
		}
	}
}

func TestPool_MinimumOneWorker(t *testing.T) {
	solvers := []puzzle.Solver{
		&fakeSolver{day: 1, answers: []puzzle.Answer{{Label: "a", Value: "1"}}},
	}

	pool := NewPool(0, newTestLogger())
	outcomes := pool.Run(context.Background(), solvers)

	if len(outcomes) != 1 || outcomes[0].Err != nil {
		t.Errorf("Expected one successful outcome, got %+v", outcomes)
	}
}
