package day13

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

func (solver) Day() int      { return 13 }
func (solver) Title() string { return "Transparent Origami" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(13)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	dots, err := in.ReadBlock()
	if err != nil {
		return nil, err
	}
	sheet, err := parsePaper(dots)
	if err != nil {
		return nil, err
	}

	instructions, err := in.ReadBlock()
	if err != nil {
		return nil, err
	}
	folds, err := parseFolds(instructions)
	if err != nil {
		return nil, err
	}
	if len(folds) == 0 {
		return nil, errors.New("no fold instructions")
	}

	sheet = sheet.apply(folds[0])
	afterFirst := sheet.count()
	for _, f := range folds[1:] {
		sheet = sheet.apply(f)
	}

	return []puzzle.Answer{
		puzzle.Num("Number of dots after 1st fold", afterFirst),
		puzzle.Text("Resulting folded paper", sheet.render()),
	}, nil
}

// fold is one fold instruction. Along y folds the bottom half up, along x
// folds the right half left.
type fold struct {
	alongY bool
	pos    int
}

func parseFold(s string) (fold, error) {
	prefix, posStr, found := strings.Cut(s, "=")
	if !found {
		return fold{}, fmt.Errorf("bad fold instruction %q", s)
	}
	pos, err := strconv.Atoi(posStr)
	if err != nil {
		return fold{}, fmt.Errorf("bad fold instruction %q: %w", s, err)
	}
	switch prefix {
	case "fold along y":
		return fold{alongY: true, pos: pos}, nil
	case "fold along x":
		return fold{alongY: false, pos: pos}, nil
	}
	return fold{}, fmt.Errorf("bad fold instruction %q", s)
}

func parseFolds(block input.Block) ([]fold, error) {
	var folds []fold
	for _, line := range block {
		f, err := parseFold(line)
		if err != nil {
			return nil, err
		}
		folds = append(folds, f)
	}
	return folds, nil
}

type dot struct {
	x, y int
}

// paper is a transparent sheet with dots at the given coordinates.
type paper map[dot]bool

func parsePaper(block input.Block) (paper, error) {
	sheet := make(paper)
	for _, line := range block {
		var d dot
		if _, err := fmt.Sscanf(line, "%d,%d", &d.x, &d.y); err != nil {
			return nil, fmt.Errorf("bad dot %q: %w", line, err)
		}
		sheet[d] = true
	}
	return sheet, nil
}

func (p paper) count() int {
	return len(p)
}

// apply folds the paper, mirroring dots beyond the fold line onto the near
// side. Dots that land on each other merge.
func (p paper) apply(f fold) paper {
	folded := make(paper, len(p))
	for d := range p {
		switch {
		case f.alongY && d.y > f.pos:
			d.y = f.pos - (d.y - f.pos)
		case !f.alongY && d.x > f.pos:
			d.x = f.pos - (d.x - f.pos)
		}
		folded[d] = true
	}
	return folded
}

func (p paper) dimension() (width, height int) {
	for d := range p {
		if d.x+1 > width {
			width = d.x + 1
		}
		if d.y+1 > height {
			height = d.y + 1
		}
	}
	return width, height
}

// render draws the dots as a grid of # and . characters.
func (p paper) render() string {
	width, height := p.dimension()
	var sb strings.Builder
	for y := 0; y < height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			if p[dot{x, y}] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
