package input

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultDir = "input"
	fileExt    = ".txt"
	dirEnvVar  = "AOC_INPUT_DIR"
)

// ErrExhausted is returned when a read is requested beyond the end of the
// stream.
var ErrExhausted = errors.New("input exhausted")

// Input reads one puzzle input file. It is a forward-only cursor over the
// file's lines: once a line is consumed it cannot be re-read except by
// opening a fresh Input for the same puzzle.
type Input struct {
	file    *os.File
	scanner *bufio.Scanner
	pos     int
	text    string
	done    bool
	err     error
}

// Dir returns the base directory puzzle input files are resolved against.
func Dir() string {
	if dir := os.Getenv(dirEnvVar); dir != "" {
		return dir
	}
	return defaultDir
}

// Filename returns the conventional file name of a day's input, e.g.
// day03.txt for day 3.
func Filename(day int) string {
	return dayName(day) + fileExt
}

// ForDay opens the input file of a puzzle day. Day 3 resolves to
// input/day03.txt.
func ForDay(day int) (*Input, error) {
	return Open(dayName(day))
}

func dayName(day int) string {
	return fmt.Sprintf("day%02d", day)
}

// Open opens a named input file below the input directory, e.g.
// Open("test-numbers") resolves to input/test-numbers.txt.
func Open(name string) (*Input, error) {
	path := filepath.Join(Dir(), name+fileExt)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	return &Input{
		file:    file,
		scanner: bufio.NewScanner(file),
	}, nil
}

// Close releases the underlying file.
func (in *Input) Close() error {
	return in.file.Close()
}

// Scan advances the cursor to the next line. It returns false when the
// stream is exhausted or a read failed; Err tells the two apart.
func (in *Input) Scan() bool {
	if in.done {
		return false
	}
	if !in.scanner.Scan() {
		in.done = true
		in.err = in.scanner.Err()
		return false
	}
	in.pos++
	in.text = in.scanner.Text()
	return true
}

// Text returns the line the cursor is on, newline-stripped.
func (in *Input) Text() string {
	return in.text
}

// Pos returns the 1-based number of the line the cursor is on.
func (in *Input) Pos() int {
	return in.pos
}

// Err returns the read error that ended the stream, if any.
func (in *Input) Err() error {
	return in.err
}

// Line consumes and returns exactly one line, leaving the rest of the
// stream for later reads. It fails with ErrExhausted when no line remains.
func (in *Input) Line() (string, error) {
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", ErrExhausted
	}
	return in.Text(), nil
}

// Lines consumes the remaining stream and returns all lines in file order.
func (in *Input) Lines() ([]string, error) {
	var lines []string
	for in.Scan() {
		lines = append(lines, in.Text())
	}
	if err := in.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Block is a maximal run of non-blank lines, bounded by blank lines or the
// ends of the file. Lines keep their original order.
type Block []string

// String returns the block's lines joined with newlines.
func (b Block) String() string {
	return strings.Join(b, "\n")
}

// ReadBlock consumes lines up to and including the next block separator and
// returns the block. Blank runs before the block are skipped, so a file of
// blank lines holds no blocks at all. It fails with ErrExhausted when no
// block remains; a read failure mid-block is propagated, not dropped.
func (in *Input) ReadBlock() (Block, error) {
	var block Block
	for in.Scan() {
		if isBlank(in.Text()) {
			if len(block) > 0 {
				return block, nil
			}
			continue
		}
		block = append(block, in.Text())
	}
	if err := in.Err(); err != nil {
		return nil, err
	}
	if len(block) == 0 {
		return nil, ErrExhausted
	}
	return block, nil
}

// Blocks consumes the remaining stream and returns all blocks in file order.
func (in *Input) Blocks() ([]Block, error) {
	var blocks []Block
	for {
		block, err := in.ReadBlock()
		if errors.Is(err, ErrExhausted) {
			return blocks, nil
		}
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
}

// isBlank reports whether a line separates blocks.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
