package day08

import (
	"context"
	"fmt"
	"math/bits"
	"strings"

	"github.com/zargony/advent-of-code-2021/internal/input"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

func init() {
	puzzle.Register(solver{})
}

type solver struct{}

func (solver) Day() int      { return 8 }
func (solver) Title() string { return "Seven Segment Search" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(8)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	entries, err := input.ParseLines(in, parseEntry)
	if err != nil {
		return nil, err
	}

	sum, err := sumOfValues(entries)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		puzzle.Num("Simple digits", countSimpleNumberDigits(entries)),
		puzzle.Num("Sum of values", sum),
	}, nil
}

// digit is a set of active segments of a seven-segment display, one bit per
// segment a through g.
type digit uint8

func parseDigit(s string) (digit, error) {
	var d digit
	for _, ch := range s {
		if ch < 'a' || ch > 'g' {
			return 0, fmt.Errorf("bad segment %q in %q", ch, s)
		}
		d |= 1 << (ch - 'a')
	}
	return d, nil
}

// segments counts the active segments.
func (d digit) segments() int {
	return bits.OnesCount8(uint8(d))
}

// overlap counts segments active in both digits.
func (d digit) overlap(other digit) int {
	return bits.OnesCount8(uint8(d & other))
}

func (d digit) isOne() bool  { return d.segments() == 2 }
func (d digit) isFour() bool { return d.segments() == 4 }

// isSimpleNumber reports whether the digit shows a 1, 4, 7 or 8. Those
// light a unique number of segments.
func (d digit) isSimpleNumber() bool {
	switch d.segments() {
	case 2, 3, 4, 7:
		return true
	}
	return false
}

// number decodes the digit. The scrambled patterns showing 1 and 4 serve as
// references to tell apart the numbers with five and six active segments.
func (d digit) number(one, four digit) (int, error) {
	segments := d.segments()
	sameAsOne := d.overlap(one)
	sameAsFour := d.overlap(four)
	switch {
	case segments == 2:
		return 1, nil
	case segments == 3:
		return 7, nil
	case segments == 4:
		return 4, nil
	case segments == 5 && sameAsOne == 1 && sameAsFour == 2:
		return 2, nil
	case segments == 5 && sameAsOne == 1 && sameAsFour == 3:
		return 5, nil
	case segments == 5 && sameAsOne == 2:
		return 3, nil
	case segments == 6 && sameAsOne == 1:
		return 6, nil
	case segments == 6 && sameAsOne == 2 && sameAsFour == 3:
		return 0, nil
	case segments == 6 && sameAsOne == 2 && sameAsFour == 4:
		return 9, nil
	case segments == 7:
		return 8, nil
	}
	return 0, fmt.Errorf("cannot decode digit with %d segments", segments)
}

// entry is one observed display: the ten scrambled digit patterns and the
// four digits of the output value.
type entry struct {
	patterns [10]digit
	digits   [4]digit
}

func parseEntry(s string) (entry, error) {
	var e entry
	patterns, digits, found := strings.Cut(s, "|")
	if !found {
		return e, fmt.Errorf("bad entry %q", s)
	}
	if err := parseDigits(e.patterns[:], patterns); err != nil {
		return e, fmt.Errorf("bad entry %q: %w", s, err)
	}
	if err := parseDigits(e.digits[:], digits); err != nil {
		return e, fmt.Errorf("bad entry %q: %w", s, err)
	}
	return e, nil
}

func parseDigits(out []digit, s string) error {
	fields := strings.Fields(s)
	if len(fields) != len(out) {
		return fmt.Errorf("want %d digits, got %d", len(out), len(fields))
	}
	for i, field := range fields {
		d, err := parseDigit(field)
		if err != nil {
			return err
		}
		out[i] = d
	}
	return nil
}

func (e *entry) findPattern(matches func(digit) bool) (digit, bool) {
	for _, d := range e.patterns {
		if matches(d) {
			return d, true
		}
	}
	return 0, false
}

func (e *entry) countSimpleNumberDigits() int {
	count := 0
	for _, d := range e.digits {
		if d.isSimpleNumber() {
			count++
		}
	}
	return count
}

// value decodes the four output digits into the number they show.
func (e *entry) value() (int, error) {
	one, ok := e.findPattern(digit.isOne)
	if !ok {
		return 0, fmt.Errorf("entry has no pattern showing 1")
	}
	four, ok := e.findPattern(digit.isFour)
	if !ok {
		return 0, fmt.Errorf("entry has no pattern showing 4")
	}
	value := 0
	for _, d := range e.digits {
		number, err := d.number(one, four)
		if err != nil {
			return 0, err
		}
		value = value*10 + number
	}
	return value, nil
}

func countSimpleNumberDigits(entries []entry) int {
	count := 0
	for i := range entries {
		count += entries[i].countSimpleNumberDigits()
	}
	return count
}

func sumOfValues(entries []entry) (int, error) {
	sum := 0
	for i := range entries {
		value, err := entries[i].value()
		if err != nil {
			return 0, err
		}
		sum += value
	}
	return sum, nil
}
