package day02

import "testing"

var courseLines = []string{
	"forward 5",
	"down 5",
	"forward 8",
	"up 3",
	"down 8",
	"forward 2",
}

func course(t *testing.T) []movement {
	t.Helper()
	var movements []movement
	for _, line := range courseLines {
		m, err := parseMovement(line)
		if err != nil {
			t.Fatalf("parseMovement(%q) failed: %v", line, err)
		}
		movements = append(movements, m)
	}
	return movements
}

func TestParseMovement(t *testing.T) {
	movements := course(t)

	expected := []movement{
		{forward, 5},
		{down, 5},
		{forward, 8},
		{up, 3},
		{down, 8},
		{forward, 2},
	}
	for i, m := range movements {
		if m != expected[i] {
			t.Errorf("Movement %d: expected %+v, got %+v", i, expected[i], m)
		}
	}
}

func TestParseMovement_Malformed(t *testing.T) {
	for _, line := range []string{"forward", "sideways 3", "up three", ""} {
		if _, err := parseMovement(line); err == nil {
			t.Errorf("Expected error for %q", line)
		}
	}
}

func TestPositionFollow(t *testing.T) {
	var pos position
	pos.follow(course(t))

	if pos.horizontal != 15 {
		t.Errorf("Expected horizontal position 15, got %d", pos.horizontal)
	}
	if pos.depth != 10 {
		t.Errorf("Expected depth 10, got %d", pos.depth)
	}
}

func TestExactPositionFollow(t *testing.T) {
	var pos exactPosition
	pos.follow(course(t))

	if pos.horizontal != 15 {
		t.Errorf("Expected horizontal position 15, got %d", pos.horizontal)
	}
	if pos.depth != 60 {
		t.Errorf("Expected depth 60, got %d", pos.depth)
	}
}
