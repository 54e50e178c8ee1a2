package puzzle

import (
	"context"
	"fmt"
	"time"
)

// Solver computes both answers of one puzzle day. Solvers acquire their own
// input and run fully local, synchronous computations.
type Solver interface {
	Day() int
	Title() string
	Solve(ctx context.Context) ([]Answer, error)
}

// Answer is one labeled puzzle answer.
type Answer struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Result holds a solved day's answers and how long the solve took.
type Result struct {
	Day      int           `json:"day"`
	Title    string        `json:"title"`
	Answers  []Answer      `json:"answers"`
	Duration time.Duration `json:"duration_ns"`
}

// Integer covers the answer value types the days produce.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Num returns an Answer holding a numeric value.
func Num[T Integer](label string, value T) Answer {
	return Answer{Label: label, Value: fmt.Sprintf("%d", value)}
}

// Text returns an Answer holding a textual value, e.g. a rendered grid.
func Text(label, value string) Answer {
	return Answer{Label: label, Value: value}
}
