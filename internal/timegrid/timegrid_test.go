package timegrid

import "testing"

func TestBuildUniformIntervalIncludesEndDay(t *testing.T) {
	t.Parallel()
	grid, err := Build(Params{StartDay: 0, EndDay: 1000, Interval: 365})
	if err != nil {
		t.Fatal(err)
	}
	if grid[len(grid)-1] != 1000 {
		t.Fatalf("grid must end exactly at end_day, got %v", grid[len(grid)-1])
	}
	for i := 1; i < len(grid); i++ {
		if grid[i] <= grid[i-1] {
			t.Fatalf("grid not strictly increasing at index %d: %v <= %v", i, grid[i], grid[i-1])
		}
	}
}

func TestBuildNonUniformUsesVisibleRange(t *testing.T) {
	t.Parallel()
	vr := &VisibleRange{Start: 100, End: 200}
	grid, err := Build(Params{StartDay: 0, EndDay: 300, Interval: 10, VisibleRange: vr})
	if err != nil {
		t.Fatal(err)
	}
	if grid[0] != 0 {
		t.Fatalf("grid must start at start_day, got %v", grid[0])
	}
	if grid[len(grid)-1] != 300 {
		t.Fatalf("grid must end at end_day, got %v", grid[len(grid)-1])
	}
	foundMid := false
	for _, g := range grid {
		if g == 150 {
			foundMid = true
		}
	}
	if !foundMid {
		t.Fatalf("expected a visible_range step at 150, grid=%v", grid)
	}
}

func TestBuildInsertsCurrentDay(t *testing.T) {
	t.Parallel()
	cd := 123.0
	grid, err := Build(Params{StartDay: 0, EndDay: 365, Interval: 365, CurrentDay: &cd})
	if err != nil {
		t.Fatal(err)
	}
	found := false
	prev := -1.0
	for _, g := range grid {
		if g == cd {
			found = true
		}
		if g <= prev {
			t.Fatalf("grid not sorted/deduped: %v", grid)
		}
		prev = g
	}
	if !found {
		t.Fatalf("current_day %v not present in grid %v", cd, grid)
	}
}

func TestBuildRejectsMaxGridPointsExceeded(t *testing.T) {
	t.Parallel()
	_, err := Build(Params{StartDay: 0, EndDay: 1000, Interval: 1, VisibleRange: &VisibleRange{Start: 0, End: 1000}, MaxPoints: 5})
	if err == nil {
		t.Fatal("expected error when grid exceeds MaxPoints")
	}
}
