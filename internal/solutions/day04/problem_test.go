package day04

import (
	"testing"

	"github.com/zargony/advent-of-code-2021/internal/input"
)

const drawsLine = "7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1"

var boardBlocks = []input.Block{
	{
		"22 13 17 11  0",
		" 8  2 23  4 24",
		"21  9 14 16  7",
		" 6 10  3 18  5",
		" 1 12 20 15 19",
	},
	{
		" 3 15  0  2 22",
		" 9 18 13 17  5",
		"19  8  7 25 23",
		"20 11 10 24  4",
		"14 21 16 12  6",
	},
	{
		"14 21 17 24  4",
		"10 16 15  9 19",
		"18  8 23 26 20",
		"22 11 13  6  5",
		" 2  0 12  3  7",
	},
}

func parseGame(t *testing.T) ([]int, []board) {
	t.Helper()
	draws, err := parseDraws(drawsLine)
	if err != nil {
		t.Fatalf("parseDraws() error = %v", err)
	}
	var boards []board
	for _, block := range boardBlocks {
		b, err := parseBoard(block)
		if err != nil {
			t.Fatalf("parseBoard() error = %v", err)
		}
		boards = append(boards, b)
	}
	return draws, boards
}

func TestFirstWinner(t *testing.T) {
	draws, boards := parseGame(t)

	got, ok := newGame(boards).play(draws)
	if !ok {
		t.Fatal("play() found no winner")
	}
	want := winner{round: 11, board: 2, score: 4512}
	if got != want {
		t.Errorf("play() = %+v, want %+v", got, want)
	}
}

func TestLastWinner(t *testing.T) {
	draws, boards := parseGame(t)

	got, ok := newGame(boards).playLast(draws)
	if !ok {
		t.Fatal("playLast() found no winner")
	}
	want := winner{round: 14, board: 1, score: 1924}
	if got != want {
		t.Errorf("playLast() = %+v, want %+v", got, want)
	}
}

func TestGamesAreIndependent(t *testing.T) {
	draws, boards := parseGame(t)

	if _, ok := newGame(boards).play(draws); !ok {
		t.Fatal("play() found no winner")
	}
	// The second game starts over on unmarked boards.
	got, ok := newGame(boards).play(draws)
	if !ok {
		t.Fatal("play() found no winner")
	}
	if got.round != 11 {
		t.Errorf("play() round = %d, want 11", got.round)
	}
}

func TestParseBoardErrors(t *testing.T) {
	if _, err := parseBoard(input.Block{"1 2 3 4 5"}); err == nil {
		t.Error("parseBoard() expected error for short board, got nil")
	}
	block := input.Block{
		"1 2 3 4 5",
		"1 2 3 4 5",
		"1 2 3 4",
		"1 2 3 4 5",
		"1 2 3 4 5",
	}
	if _, err := parseBoard(block); err == nil {
		t.Error("parseBoard() expected error for short row, got nil")
	}
}
