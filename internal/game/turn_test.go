package game

import "testing"

func TestTurnRotation(t *testing.T) {
	t.Parallel()
	ts := newTurnState(NumSeats - 1)
	if ts.seat != 3 || ts.hand != 0 || ts.phase != phaseMoveChip {
		t.Fatalf("initial turn state = %+v", ts)
	}

	// Hands 0..3 of the same seat; the chip does not move between them.
	for want := 1; want <= 3; want++ {
		if !ts.advance() {
			t.Fatal("rotation exhausted early")
		}
		if ts.seat != 3 || ts.hand != want || ts.phase != phaseTurnStart {
			t.Fatalf("after advance: %+v, want seat 3 hand %d", ts, want)
		}
	}

	// Leaving the last slot moves to the next seat down and the chip moves.
	if !ts.advance() {
		t.Fatal("rotation exhausted early")
	}
	if ts.seat != 2 || ts.hand != 0 || ts.phase != phaseMoveChip {
		t.Fatalf("after seat change: %+v", ts)
	}
}

func TestTurnRotationVisitsEachSeatOnce(t *testing.T) {
	t.Parallel()
	ts := newTurnState(NumSeats - 1)
	visits := map[int]int{ts.seat: 1}
	for ts.advance() {
		if ts.hand == 0 {
			visits[ts.seat]++
		}
	}
	for seat := 0; seat < NumSeats; seat++ {
		if visits[seat] != 1 {
			t.Errorf("seat %d visited %d times", seat, visits[seat])
		}
	}
	// Exhaustion happens after the human seat (id 0), never revisiting.
	if ts.seat != -1 {
		t.Errorf("rotation ended at seat %d, want -1", ts.seat)
	}
}
