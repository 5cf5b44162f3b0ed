package world

import "testing"

func TestDirection_DeltaMatchesOrientationCodes(t *testing.T) {
	tests := []struct {
		dir    Direction
		code   int
		dx, dy int
	}{
		{North, 0, 0, -1},
		{East, 1, 1, 0},
		{South, 2, 0, 1},
		{West, 3, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if int(tt.dir) != tt.code {
				t.Errorf("int(%v) = %d, want %d", tt.dir, int(tt.dir), tt.code)
			}
			dx, dy := tt.dir.Delta()
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("%v.Delta() = (%d, %d), want (%d, %d)", tt.dir, dx, dy, tt.dx, tt.dy)
			}
		})
	}
}

func TestDirection_IsValid(t *testing.T) {
	if Direction(4).IsValid() || Direction(-1).IsValid() {
		t.Error("out of range direction reported valid")
	}
	if Direction(4).String() != "Unknown" {
		t.Errorf("Direction(4).String() = %q, want Unknown", Direction(4).String())
	}
}

func TestCoord_Step(t *testing.T) {
	c := At(2, 2)
	if got := c.Step(North); got != At(2, 1) {
		t.Errorf("Step(North) = %v, want (2, 1)", got)
	}
	if got := c.Step(West); got != At(1, 2) {
		t.Errorf("Step(West) = %v, want (1, 2)", got)
	}
}

func TestCoord_Less(t *testing.T) {
	if !At(4, 0).Less(At(0, 1)) {
		t.Error("(4, 0) should sort before (0, 1)")
	}
	if At(1, 1).Less(At(1, 1)) {
		t.Error("coordinate should not be less than itself")
	}
}

func TestBounds_Contains(t *testing.T) {
	b := Bounds{Width: 5, Height: 3}
	for _, c := range []Coord{At(0, 0), At(4, 2)} {
		if !b.Contains(c) {
			t.Errorf("Contains(%v) = false, want true", c)
		}
	}
	for _, c := range []Coord{At(-1, 0), At(5, 0), At(0, 3)} {
		if b.Contains(c) {
			t.Errorf("Contains(%v) = true, want false", c)
		}
	}
	if (Bounds{Width: 0, Height: 2}).Valid() {
		t.Error("zero-width bounds reported valid")
	}
}
