package puzzle

import (
	"context"
	"errors"
	"sort"
	"testing"
)

type fakeSolver struct {
	day     int
	title   string
	answers []Answer
	err     error
}

func (s *fakeSolver) Day() int      { return s.day }
func (s *fakeSolver) Title() string { return s.title }

func (s *fakeSolver) Solve(ctx context.Context) ([]Answer, error) {
	return s.answers, s.err
}

func withEmptyRegistry(t *testing.T) {
	t.Helper()
	old := registry
	registry = make(map[int]Solver)
	t.Cleanup(func() { registry = old })
}

func TestRegisterAndGet(t *testing.T) {
	withEmptyRegistry(t)

	solver := &fakeSolver{day: 7, title: "Test Puzzle"}
	Register(solver)

	got, err := Get(7)
	if err != nil {
		t.Fatalf("Get(7) failed: %v", err)
	}
	if got != solver {
		t.Error("Get(7) returned a different solver")
	}
}

func TestGet_UnknownDay(t *testing.T) {
	withEmptyRegistry(t)

	_, err := Get(42)
	if err == nil {
		t.Fatal("Expected error for unregistered day")
	}
	if !errors.Is(err, ErrUnknownDay) {
		t.Errorf("Expected ErrUnknownDay, got: %v", err)
	}
}

func TestRegister_DuplicateDayPanics(t *testing.T) {
	withEmptyRegistry(t)

	Register(&fakeSolver{day: 3})

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate day registration")
		}
	}()
	Register(&fakeSolver{day: 3})
}

func TestDays_Sorted(t *testing.T) {
	withEmptyRegistry(t)

	for _, day := range []int{9, 2, 17, 5} {
		Register(&fakeSolver{day: day})
	}

	days := Days()
	if len(days) != 4 {
		t.Fatalf("Expected 4 days, got %d", len(days))
	}
	if !sort.IntsAreSorted(days) {
		t.Errorf("Expected sorted days, got %v", days)
	}
	if days[0] != 2 || days[3] != 17 {
		t.Errorf("Unexpected day order: %v", days)
	}
}

func TestSolvers_DayOrder(t *testing.T) {
	withEmptyRegistry(t)

	Register(&fakeSolver{day: 11})
	Register(&fakeSolver{day: 4})

	solvers := Solvers()
	if len(solvers) != 2 {
		t.Fatalf("Expected 2 solvers, got %d", len(solvers))
	}
	if solvers[0].Day() != 4 || solvers[1].Day() != 11 {
		t.Errorf("Solvers not in day order: %d, %d", solvers[0].Day(), solvers[1].Day())
	}
}

func TestNum_FormatsValue(t *testing.T) {
	answer := Num("Lowest risk", 315)
	if answer.Label != "Lowest risk" {
		t.Errorf("Unexpected label: %q", answer.Label)
	}
	if answer.Value != "315" {
		t.Errorf("Expected value '315', got %q", answer.Value)
	}

	big := Num("Population", uint64(26984457539))
	if big.Value != "26984457539" {
		t.Errorf("Expected value '26984457539', got %q", big.Value)
	}
}
