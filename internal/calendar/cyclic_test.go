package calendar

import "testing"

func TestForGregorian_EpochOffset(t *testing.T) {
	tests := []struct {
		gregorian   int
		wantElapsed int
	}{
		{1984, 4621},
		{2000, 4637},
		{1900, 4537},
		{0, 2637},
		{-2637, 0},
	}

	for _, tt := range tests {
		got := ForGregorian(tt.gregorian).Elapsed()
		if got != tt.wantElapsed {
			t.Errorf("ForGregorian(%d).Elapsed() = %d, want %d", tt.gregorian, got, tt.wantElapsed)
		}
	}
}

func TestCyclicYear_RoundTrip(t *testing.T) {
	for g := -10000; g <= 10000; g += 7 {
		if got := ForGregorian(g).RelatedGregorianYear(); got != g {
			t.Fatalf("RelatedGregorianYear round trip: got %d, want %d", got, g)
		}
	}
}

func TestCyclicYear_CyclePosition(t *testing.T) {
	tests := []struct {
		gregorian   int
		wantCycle   int
		wantOfCycle int
	}{
		{1984, 78, 1},  // cycle 78 began 1984
		{1983, 77, 60}, // last year of cycle 77
		{2023, 78, 40},
		{2043, 78, 60},
		{2044, 79, 1},
		{1900, 76, 37},
	}

	for _, tt := range tests {
		y := ForGregorian(tt.gregorian)
		if y.Cycle() != tt.wantCycle {
			t.Errorf("ForGregorian(%d).Cycle() = %d, want %d", tt.gregorian, y.Cycle(), tt.wantCycle)
		}
		if y.YearOfCycle() != tt.wantOfCycle {
			t.Errorf("ForGregorian(%d).YearOfCycle() = %d, want %d", tt.gregorian, y.YearOfCycle(), tt.wantOfCycle)
		}

		// ForCyclePosition must invert the decomposition.
		back := ForCyclePosition(y.Cycle(), y.YearOfCycle())
		if back.Elapsed() != y.Elapsed() {
			t.Errorf("ForCyclePosition(%d, %d).Elapsed() = %d, want %d",
				y.Cycle(), y.YearOfCycle(), back.Elapsed(), y.Elapsed())
		}
	}
}

func TestCyclicYear_CyclePosition_BeforeEpoch(t *testing.T) {
	// Cycle arithmetic must stay consistent for years before the epoch.
	for g := -3000; g < -2500; g += 11 {
		y := ForGregorian(g)
		if y.YearOfCycle() < 1 || y.YearOfCycle() > 60 {
			t.Fatalf("ForGregorian(%d).YearOfCycle() = %d, out of 1..60", g, y.YearOfCycle())
		}
		back := ForCyclePosition(y.Cycle(), y.YearOfCycle())
		if back.Elapsed() != y.Elapsed() {
			t.Fatalf("cycle position round trip failed for gregorian %d", g)
		}
	}
}

func TestCyclicYear_Name(t *testing.T) {
	tests := []struct {
		gregorian int
		want      string
	}{
		{1984, "jia-zi"},
		{2020, "geng-zi"},
		{2023, "gui-mao"},
		{2044, "jia-zi"}, // names repeat every 60 years
	}

	for _, tt := range tests {
		if got := ForGregorian(tt.gregorian).Name(); got != tt.want {
			t.Errorf("ForGregorian(%d).Name() = %q, want %q", tt.gregorian, got, tt.want)
		}
	}
}

func TestFloorMath(t *testing.T) {
	tests := []struct {
		a, b     int
		wantDiv  int
		wantMod  int
	}{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{6, 3, 2, 0},
		{-6, 3, -2, 0},
		{0, 60, 0, 0},
	}

	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.wantDiv {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantDiv)
		}
		if got := floorMod(tt.a, tt.b); got != tt.wantMod {
			t.Errorf("floorMod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantMod)
		}
	}
}
