package runner

import (
	"github.com/rs/zerolog"
	"github.com/zargony/advent-of-code-2021/internal/config"
)

// CheckFailure describes one answer that does not match its expectation.
type CheckFailure struct {
	Day      int
	Part     int
	Expected string
	Actual   string
}

// Check compares solved outcomes against the configured expected answers.
// Days without expectations and days that already failed are skipped.
func Check(outcomes []Outcome, answers *config.AnswersConfig, logger *zerolog.Logger) []CheckFailure {
	var failures []CheckFailure

	for _, outcome := range outcomes {
		if outcome.Err != nil || outcome.Result == nil {
			continue
		}

		expected, ok := answers.For(outcome.Day)
		if !ok {
			continue
		}

		mismatches := 0
		for i, want := range expected {
			var got string
			if i < len(outcome.Result.Answers) {
				got = outcome.Result.Answers[i].Value
			}
			if got != want {
				failures = append(failures, CheckFailure{
					Day:      outcome.Day,
					Part:     i + 1,
					Expected: want,
					Actual:   got,
				})
				mismatches++
				logger.Error().
					Int("day", outcome.Day).
					Int("part", i+1).
					Str("expected", want).
					Str("actual", got).
					Msg("Answer mismatch")
			}
		}

		if mismatches == 0 {
			logger.Info().Int("day", outcome.Day).Msg("Answers match expectations")
		}
	}

	return failures
}
