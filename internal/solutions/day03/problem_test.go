package day03

import "testing"

var report = []string{
	"00100", "11110", "10110", "10111", "10101", "01111",
	"00111", "11100", "10000", "11001", "00010", "01010",
}

func TestPowerConsumption(t *testing.T) {
	diag, err := newDiagnostic(report)
	if err != nil {
		t.Fatalf("newDiagnostic() error = %v", err)
	}

	if got := diag.gamma(); got != 22 {
		t.Errorf("gamma() = %d, want 22", got)
	}
	if got := diag.epsilon(); got != 9 {
		t.Errorf("epsilon() = %d, want 9", got)
	}
	if got := diag.power(); got != 198 {
		t.Errorf("power() = %d, want 198", got)
	}
}

func TestLifeSupportRating(t *testing.T) {
	diag, err := newDiagnostic(report)
	if err != nil {
		t.Fatalf("newDiagnostic() error = %v", err)
	}

	oxygen, err := diag.oxygen()
	if err != nil {
		t.Fatalf("oxygen() error = %v", err)
	}
	if oxygen != 23 {
		t.Errorf("oxygen() = %d, want 23", oxygen)
	}

	co2, err := diag.co2()
	if err != nil {
		t.Fatalf("co2() error = %v", err)
	}
	if co2 != 10 {
		t.Errorf("co2() = %d, want 10", co2)
	}

	life, err := diag.lifeSupport()
	if err != nil {
		t.Fatalf("lifeSupport() error = %v", err)
	}
	if life != 230 {
		t.Errorf("lifeSupport() = %d, want 230", life)
	}
}

func TestBadReportEntry(t *testing.T) {
	if _, err := newDiagnostic([]string{"10110", "10201"}); err == nil {
		t.Error("newDiagnostic() expected error for non-binary entry, got nil")
	}
}
