// Package solutions pulls in every puzzle solution, so importing it
// registers all days with the puzzle registry.
package solutions

import (
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day01"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day02"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day03"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day04"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day05"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day06"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day07"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day08"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day09"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day10"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day11"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day12"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day13"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day14"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day15"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day16"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions/day17"
)
