package core

import "testing"

func TestSlotForKey(t *testing.T) {
	tests := []struct {
		name     string
		key      rune
		slot     int
		expected bool
	}{
		{"zero", '0', 0, true},
		{"five", '5', 5, true},
		{"eight", '8', 8, true},
		{"nine is not a slot", '9', 0, false},
		{"star", '*', 0, false},
		{"letter", 'a', 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slot, ok := SlotForKey(tc.key)
			if ok != tc.expected {
				t.Fatalf("SlotForKey(%q) ok = %v, expected %v", tc.key, ok, tc.expected)
			}
			if ok && slot != tc.slot {
				t.Errorf("SlotForKey(%q) = %d, expected %d", tc.key, slot, tc.slot)
			}
		})
	}
}

func TestSlotPositionRoundTrip(t *testing.T) {
	for idx := 0; idx < SlotCount; idx++ {
		pos := SlotPosition(idx)
		if got := SlotAt(pos.Row, pos.Col); got != idx {
			t.Errorf("SlotAt(SlotPosition(%d)) = %d", idx, got)
		}
		if got, _ := SlotForKey(KeyForSlot(idx)); got != idx {
			t.Errorf("SlotForKey(KeyForSlot(%d)) = %d", idx, got)
		}
	}
	if SlotAt(3, 0) != -1 || SlotAt(0, -1) != -1 {
		t.Error("SlotAt outside the grid should return -1")
	}
}

func TestMillisSince(t *testing.T) {
	if Millis(100).Since(40) != 60 {
		t.Error("Since should subtract")
	}
	if Millis(10).Since(40) != 0 {
		t.Error("Since should not underflow")
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(5)
	c.Sleep(10)
	if c.Now() != 15 {
		t.Errorf("Now() = %d, expected 15", c.Now())
	}
	c.Set(3)
	if c.Now() != 15 {
		t.Error("Set should never move the clock backwards")
	}
	c.Set(100)
	if c.Now() != 100 {
		t.Errorf("Now() = %d, expected 100", c.Now())
	}
}

func TestKeyLatch(t *testing.T) {
	l := NewKeyLatch()
	if _, ok := l.Poll(); ok {
		t.Fatal("Empty latch should report no key")
	}

	l.Press('1')
	l.Press('7')
	key, ok := l.Poll()
	if !ok || key != '7' {
		t.Errorf("Poll() = %q, %v, expected '7', true", key, ok)
	}
	if _, ok := l.Poll(); ok {
		t.Error("Poll should consume the key")
	}
}

func TestFrameLit(t *testing.T) {
	f := SolidFrame(Black)
	f[2] = Red
	f[7] = Green

	lit := f.Lit()
	if len(lit) != 2 || lit[0] != 2 || lit[1] != 7 {
		t.Errorf("Lit() = %v, expected [2 7]", lit)
	}
	if Red.Hex() != "#ff0000" {
		t.Errorf("Hex() = %q, expected #ff0000", Red.Hex())
	}
}
