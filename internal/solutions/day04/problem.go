package day04

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zargony/advent-of-code-2021/internal/input"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

func init() {
	puzzle.Register(solver{})
}

type solver struct{}

func (solver) Day() int      { return 4 }
func (solver) Title() string { return "Giant Squid" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(4)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	line, err := in.Line()
	if err != nil {
		return nil, err
	}
	draws, err := parseDraws(line)
	if err != nil {
		return nil, err
	}

	boards, err := input.ParseBlocks(in, parseBoard)
	if err != nil {
		return nil, err
	}

	first, ok := newGame(boards).play(draws)
	if !ok {
		return nil, errors.New("no board wins")
	}
	last, ok := newGame(boards).playLast(draws)
	if !ok {
		return nil, errors.New("no board wins")
	}

	return []puzzle.Answer{
		puzzle.Num("First winning board score", first.score),
		puzzle.Num("Last winning board score", last.score),
	}, nil
}

func parseDraws(line string) ([]int, error) {
	var draws []int
	for _, field := range strings.Split(line, ",") {
		number, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("bad drawn number %q: %w", field, err)
		}
		draws = append(draws, number)
	}
	return draws, nil
}

const boardSize = 5

// board is a bingo board with marks for the numbers drawn so far.
type board struct {
	numbers [boardSize][boardSize]int
	marks   [boardSize][boardSize]bool
}

func parseBoard(block input.Block) (board, error) {
	var b board
	if len(block) != boardSize {
		return b, fmt.Errorf("board needs %d rows, got %d", boardSize, len(block))
	}
	for y, line := range block {
		fields := strings.Fields(line)
		if len(fields) != boardSize {
			return b, fmt.Errorf("board row %q needs %d numbers", line, boardSize)
		}
		for x, field := range fields {
			number, err := strconv.Atoi(field)
			if err != nil {
				return b, fmt.Errorf("bad board number %q: %w", field, err)
			}
			b.numbers[y][x] = number
		}
	}
	return b, nil
}

// mark marks number on the board. It reports the score and true when the
// mark completes a row or a column.
func (b *board) mark(number int) (int, bool) {
	for y := 0; y < boardSize; y++ {
		for x := 0; x < boardSize; x++ {
			if b.numbers[y][x] != number {
				continue
			}
			b.marks[y][x] = true
			if b.rowMarked(y) || b.columnMarked(x) {
				return b.score() * number, true
			}
		}
	}
	return 0, false
}

func (b *board) rowMarked(y int) bool {
	for x := 0; x < boardSize; x++ {
		if !b.marks[y][x] {
			return false
		}
	}
	return true
}

func (b *board) columnMarked(x int) bool {
	for y := 0; y < boardSize; y++ {
		if !b.marks[y][x] {
			return false
		}
	}
	return true
}

// score sums all unmarked numbers.
func (b *board) score() int {
	sum := 0
	for y := 0; y < boardSize; y++ {
		for x := 0; x < boardSize; x++ {
			if !b.marks[y][x] {
				sum += b.numbers[y][x]
			}
		}
	}
	return sum
}

// winner identifies the winning board, the round it won in and its score.
type winner struct {
	round int
	board int
	score int
}

type game struct {
	boards []board
}

// newGame starts a fresh game on a copy of boards, so several games can be
// played from the same parsed input.
func newGame(boards []board) *game {
	return &game{boards: append([]board(nil), boards...)}
}

// playRound marks number on every board and collects the boards winning on it.
func (g *game) playRound(number int) []winner {
	var winners []winner
	for b := range g.boards {
		if score, won := g.boards[b].mark(number); won {
			winners = append(winners, winner{board: b, score: score})
		}
	}
	return winners
}

// play draws all numbers in order and returns the first winner.
func (g *game) play(draws []int) (winner, bool) {
	for round, number := range draws {
		if winners := g.playRound(number); len(winners) > 0 {
			w := winners[0]
			w.round = round
			return w, true
		}
	}
	return winner{}, false
}

// playLast draws all numbers in order and returns the board that wins last.
func (g *game) playLast(draws []int) (winner, bool) {
	won := make(map[int]bool)
	var last winner
	var found bool
	for round, number := range draws {
		for _, w := range g.playRound(number) {
			if won[w.board] {
				continue
			}
			won[w.board] = true
			w.round = round
			last, found = w, true
		}
	}
	return last, found
}
