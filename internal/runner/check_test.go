package runner

import (
	"errors"
	"testing"

	"github.com/zargony/advent-of-code-2021/internal/config"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

func successOutcome(day int, values ...string) Outcome {
	answers := make([]puzzle.Answer, len(values))
	for i, value := range values {
		answers[i] = puzzle.Answer{Label: "part", Value: value}
	}
	return Outcome{
		Day:    day,
		Result: &puzzle.Result{Day: day, Answers: answers},
	}
}

func TestCheck_AllMatch(t *testing.T) {
	outcomes := []Outcome{
		successOutcome(1, "7", "5"),
		successOutcome(2, "150", "900"),
	}
	answers := &config.AnswersConfig{Days: map[int][]string{
		1: {"7", "5"},
		2: {"150", "900"},
	}}

	failures := Check(outcomes, answers, newTestLogger())
	if len(failures) != 0 {
		t.Errorf("Expected no failures, got %+v", failures)
	}
}

func TestCheck_Mismatch(t *testing.T) {
	outcomes := []Outcome{successOutcome(1, "7", "6")}
	answers := &config.AnswersConfig{Days: map[int][]string{1: {"7", "5"}}}

	failures := Check(outcomes, answers, newTestLogger())
	if len(failures) != 1 {
		t.Fatalf("Expected 1 failure, got %d", len(failures))
	}

	failure := failures[0]
	if failure.Day != 1 || failure.Part != 2 {
		t.Errorf("Expected failure for day 1 part 2, got day %d part %d", failure.Day, failure.Part)
	}
	if failure.Expected != "5" || failure.Actual != "6" {
		t.Errorf("Unexpected failure values: %+v", failure)
	}
}

func TestCheck_SkipsUnconfiguredDays(t *testing.T) {
	outcomes := []Outcome{successOutcome(11, "1656", "195")}
	answers := &config.AnswersConfig{Days: map[int][]string{1: {"7"}}}

	failures := Check(outcomes, answers, newTestLogger())
	if len(failures) != 0 {
		t.Errorf("Expected no failures for unconfigured day, got %+v", failures)
	}
}

func TestCheck_SkipsFailedDays(t *testing.T) {
	outcomes := []Outcome{{Day: 4, Err: errors.New("no input")}}
	answers := &config.AnswersConfig{Days: map[int][]string{4: {"4512", "1924"}}}

	failures := Check(outcomes, answers, newTestLogger())
	if len(failures) != 0 {
		t.Errorf("Expected failed day to be skipped, got %+v", failures)
	}
}

func TestCheck_MissingAnswerCountsAsMismatch(t *testing.T) {
	outcomes := []Outcome{successOutcome(9, "15")}
	answers := &config.AnswersConfig{Days: map[int][]string{9: {"15", "1134"}}}

	failures := Check(outcomes, answers, newTestLogger())
	if len(failures) != 1 {
		t.Fatalf("Expected 1 failure, got %d", len(failures))
	}
	if failures[0].Part != 2 || failures[0].Actual != "" {
		t.Errorf("Expected missing part 2 answer, got %+v", failures[0])
	}
}
