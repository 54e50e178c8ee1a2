package day03

import (
	"context"
	"fmt"
	"strconv"

	"github.com/zargony/advent-of-code-2021/internal/input"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

func init() {
	puzzle.Register(solver{})
}

type solver struct{}

func (solver) Day() int      { return 3 }
func (solver) Title() string { return "Binary Diagnostic" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(3)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	lines, err := in.Lines()
	if err != nil {
		return nil, err
	}

	diag, err := newDiagnostic(lines)
	if err != nil {
		return nil, err
	}

	life, err := diag.lifeSupport()
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		puzzle.Num("Power consumption", diag.power()),
		puzzle.Num("Life support rating", life),
	}, nil
}

// diagnostic holds the report values and the bit width of the longest entry.
type diagnostic struct {
	values []uint
	width  int
}

func newDiagnostic(lines []string) (*diagnostic, error) {
	diag := &diagnostic{}
	for _, line := range lines {
		value, err := strconv.ParseUint(line, 2, 16)
		if err != nil {
			return nil, fmt.Errorf("bad report entry %q: %w", line, err)
		}
		diag.values = append(diag.values, uint(value))
		if len(line) > diag.width {
			diag.width = len(line)
		}
	}
	return diag, nil
}

// countOnes counts values with a one bit at position i.
func countOnes(values []uint, i int) int {
	ones := 0
	for _, value := range values {
		if value&(1<<i) != 0 {
			ones++
		}
	}
	return ones
}

// gamma has a one bit wherever ones are strictly more common than zeros.
func (d *diagnostic) gamma() uint {
	var gamma uint
	for i := 0; i < d.width; i++ {
		if countOnes(d.values, i)*2 > len(d.values) {
			gamma |= 1 << i
		}
	}
	return gamma
}

// epsilon has a one bit wherever ones are not strictly more common.
func (d *diagnostic) epsilon() uint {
	var epsilon uint
	for i := 0; i < d.width; i++ {
		if countOnes(d.values, i)*2 <= len(d.values) {
			epsilon |= 1 << i
		}
	}
	return epsilon
}

func (d *diagnostic) power() uint {
	return d.gamma() * d.epsilon()
}

// filterRating narrows the values bit by bit from the highest position down
// until a single value remains. With keepMost set it keeps values matching
// the most common bit (ones on a tie), otherwise the least common bit.
func (d *diagnostic) filterRating(keepMost bool) (uint, error) {
	values := append([]uint(nil), d.values...)
	for i := d.width - 1; i >= 0 && len(values) > 1; i-- {
		keepOnes := countOnes(values, i)*2 >= len(values)
		if !keepMost {
			keepOnes = !keepOnes
		}
		kept := values[:0]
		for _, value := range values {
			if (value&(1<<i) != 0) == keepOnes {
				kept = append(kept, value)
			}
		}
		values = kept
	}
	if len(values) != 1 {
		return 0, fmt.Errorf("bit criteria left %d values instead of one", len(values))
	}
	return values[0], nil
}

func (d *diagnostic) oxygen() (uint, error) {
	return d.filterRating(true)
}

func (d *diagnostic) co2() (uint, error) {
	return d.filterRating(false)
}

func (d *diagnostic) lifeSupport() (uint, error) {
	oxygen, err := d.oxygen()
	if err != nil {
		return 0, err
	}
	co2, err := d.co2()
	if err != nil {
		return 0, err
	}
	return oxygen * co2, nil
}
