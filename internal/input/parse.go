package input

import (
	"errors"
	"fmt"
	"strconv"
)

// ParseFunc converts one raw line into a T.
type ParseFunc[T any] func(string) (T, error)

// ParseError reports a line that does not match the expected record shape.
type ParseError struct {
	Pos  int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse line %d %q: %v", e.Pos, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Record is one typed line. Err carries the parse failure of this record
// alone; later records are still produced.
type Record[T any] struct {
	Pos   int
	Text  string
	Value T
	Err   error
}

// Parser applies a ParseFunc to each remaining line of an Input. A parse
// failure is recorded on the yielded record without stopping the stream;
// only read errors end it early.
type Parser[T any] struct {
	in     *Input
	parse  ParseFunc[T]
	record Record[T]
}

// NewParser returns a Parser over the remaining lines of in.
func NewParser[T any](in *Input, parse ParseFunc[T]) *Parser[T] {
	return &Parser[T]{
		in:    in,
		parse: parse,
	}
}

// Scan advances to the next record. It returns false when the stream is
// exhausted or a read failed; Err tells the two apart.
func (p *Parser[T]) Scan() bool {
	if !p.in.Scan() {
		return false
	}

	record := Record[T]{Pos: p.in.Pos(), Text: p.in.Text()}
	value, err := p.parse(record.Text)
	if err != nil {
		record.Err = &ParseError{Pos: record.Pos, Text: record.Text, Err: err}
	} else {
		record.Value = value
	}
	p.record = record

	return true
}

// Record returns the record the parser is on.
func (p *Parser[T]) Record() Record[T] {
	return p.record
}

// Err returns the read error that ended the stream, if any.
func (p *Parser[T]) Err() error {
	return p.in.Err()
}

// ParseLine consumes exactly one line and parses it.
func ParseLine[T any](in *Input, parse ParseFunc[T]) (T, error) {
	var zero T

	line, err := in.Line()
	if err != nil {
		return zero, err
	}

	value, err := parse(line)
	if err != nil {
		return zero, &ParseError{Pos: in.Pos(), Text: line, Err: err}
	}
	return value, nil
}

// ParseLines consumes the remaining stream, parsing every line. The first
// parse or read failure aborts the collection.
func ParseLines[T any](in *Input, parse ParseFunc[T]) ([]T, error) {
	var values []T

	parser := NewParser(in, parse)
	for parser.Scan() {
		record := parser.Record()
		if record.Err != nil {
			return nil, record.Err
		}
		values = append(values, record.Value)
	}
	if err := parser.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// ParseBlocks consumes the remaining stream, parsing every block. The first
// parse or read failure aborts the collection.
func ParseBlocks[T any](in *Input, parse func(Block) (T, error)) ([]T, error) {
	var values []T

	for {
		block, err := in.ReadBlock()
		if errors.Is(err, ErrExhausted) {
			return values, nil
		}
		if err != nil {
			return nil, err
		}

		value, err := parse(block)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
}

// Int parses a line holding a single decimal number.
func Int(s string) (int, error) {
	return strconv.Atoi(s)
}
