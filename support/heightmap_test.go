package support

import "testing"

func TestHeightMapCombinedHeightLowerClearsCutoff(t *testing.T) {
	hm := NewHeightMap(1, 1)
	hm.Set(0, 0, 3.0, 2.0)
	if got := hm.CombinedHeight(0, 0); got != 2.0 {
		t.Fatalf("expected lower height 2.0 (clears 1.01mm cutoff), got %v", got)
	}
}

func TestHeightMapCombinedHeightLowerBelowCutoffFallsBackToUpper(t *testing.T) {
	hm := NewHeightMap(1, 1)
	hm.Set(0, 0, 3.0, 0.5)
	if got := hm.CombinedHeight(0, 0); got != 3.0 {
		t.Fatalf("expected upper height 3.0 (lower below 1.01mm cutoff), got %v", got)
	}
}

func TestHeightMapCombinedHeightBothNoHit(t *testing.T) {
	hm := NewHeightMap(1, 1)
	if got := hm.CombinedHeight(0, 0); got != NoHit {
		t.Fatalf("expected NoHit for a cell with no ray hit on either side, got %v", got)
	}
}

func TestHeightMapCombinedHeightLowerNoHitFallsBackToUpper(t *testing.T) {
	hm := NewHeightMap(1, 1)
	hm.Set(0, 0, 4.0, NoHit)
	if got := hm.CombinedHeight(0, 0); got != 4.0 {
		t.Fatalf("expected upper height 4.0 when lower never hit, got %v", got)
	}
}
