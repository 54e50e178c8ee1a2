package day07

import "testing"

func testSwarm() *swarm {
	return &swarm{positions: []int{16, 1, 2, 0, 4, 2, 7, 1, 2, 14}}
}

func TestRealisticFuel(t *testing.T) {
	wants := map[int]int{1: 1, 2: 3, 3: 6, 4: 10, 5: 15}
	for distance, want := range wants {
		if got := realisticFuel(distance); got != want {
			t.Errorf("realisticFuel(%d) = %d, want %d", distance, got, want)
		}
	}
}

func TestLeastSimpleFuel(t *testing.T) {
	swarm := testSwarm()

	wants := map[int]int{1: 41, 2: 37, 3: 39, 10: 71}
	for position, want := range wants {
		if got := swarm.fuelRequired(position, simpleFuel); got != want {
			t.Errorf("fuelRequired(%d) = %d, want %d", position, got, want)
		}
	}

	position, fuel := swarm.leastFuelRequired(simpleFuel)
	if position != 2 || fuel != 37 {
		t.Errorf("leastFuelRequired() = (%d, %d), want (2, 37)", position, fuel)
	}
}

func TestLeastRealisticFuel(t *testing.T) {
	swarm := testSwarm()

	if got := swarm.fuelRequired(2, realisticFuel); got != 206 {
		t.Errorf("fuelRequired(2) = %d, want 206", got)
	}
	if got := swarm.fuelRequired(5, realisticFuel); got != 168 {
		t.Errorf("fuelRequired(5) = %d, want 168", got)
	}

	position, fuel := swarm.leastFuelRequired(realisticFuel)
	if position != 5 || fuel != 168 {
		t.Errorf("leastFuelRequired() = (%d, %d), want (5, 168)", position, fuel)
	}
}

func TestParseSwarm(t *testing.T) {
	swarm, err := parseSwarm("16,1,2,0,4")
	if err != nil {
		t.Fatalf("parseSwarm() error = %v", err)
	}
	if len(swarm.positions) != 5 || swarm.positions[0] != 16 {
		t.Errorf("parseSwarm() positions = %v", swarm.positions)
	}

	if _, err := parseSwarm("16,x,2"); err == nil {
		t.Error("parseSwarm() expected error, got nil")
	}
}
