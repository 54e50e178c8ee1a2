package day13

import (
	"testing"

	"github.com/zargony/advent-of-code-2021/internal/input"
)

var dotsBlock = input.Block{
	"6,10", "0,14", "9,10", "0,3", "10,4", "4,11", "6,0", "6,12", "4,1",
	"0,13", "10,12", "3,4", "3,0", "8,4", "1,10", "2,14", "8,10", "9,0",
}

var foldsBlock = input.Block{"fold along y=7", "fold along x=5"}

func parseTestPaper(t *testing.T) (paper, []fold) {
	t.Helper()
	sheet, err := parsePaper(dotsBlock)
	if err != nil {
		t.Fatalf("parsePaper() error = %v", err)
	}
	folds, err := parseFolds(foldsBlock)
	if err != nil {
		t.Fatalf("parseFolds() error = %v", err)
	}
	return sheet, folds
}

func TestFoldCounts(t *testing.T) {
	sheet, folds := parseTestPaper(t)

	if got := sheet.count(); got != 18 {
		t.Errorf("count() = %d, want 18", got)
	}
	sheet = sheet.apply(folds[0])
	if got := sheet.count(); got != 17 {
		t.Errorf("count() after 1st fold = %d, want 17", got)
	}
	sheet = sheet.apply(folds[1])
	if got := sheet.count(); got != 16 {
		t.Errorf("count() after 2nd fold = %d, want 16", got)
	}
}

func TestRender(t *testing.T) {
	sheet, folds := parseTestPaper(t)
	for _, f := range folds {
		sheet = sheet.apply(f)
	}

	want := "#####\n#...#\n#...#\n#...#\n#####"
	if got := sheet.render(); got != want {
		t.Errorf("render() = \n%s\nwant\n%s", got, want)
	}
}

func TestParseFold(t *testing.T) {
	f, err := parseFold("fold along y=7")
	if err != nil {
		t.Fatalf("parseFold() error = %v", err)
	}
	if !f.alongY || f.pos != 7 {
		t.Errorf("parseFold() = %+v, want along y at 7", f)
	}

	for _, s := range []string{"", "fold along y", "fold along z=3", "fold along x=a"} {
		if _, err := parseFold(s); err == nil {
			t.Errorf("parseFold(%q) expected error, got nil", s)
		}
	}
}

func TestParsePaper(t *testing.T) {
	if _, err := parsePaper(input.Block{"6,10", "6;10"}); err == nil {
		t.Error("parsePaper() expected error for bad dot, got nil")
	}
}
