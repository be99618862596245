package generator

import (
	"testing"

	"github.com/vovakirdan/levelgen/internal/catalog"
)

func costOf(roster []catalog.Entry, fallback, name string) int {
	if name == fallback {
		return 1
	}
	for _, e := range roster {
		if e.Name == name {
			return e.Cost
		}
	}
	return -1
}

func TestFillNeverPicksUnaffordable(t *testing.T) {
	roster := []catalog.Entry{{Name: "a", Cost: 3}, {Name: "b", Cost: 4}, {Name: "c", Cost: 10}}

	for seed := uint64(1); seed <= 300; seed++ {
		names, spent := Fill(7, roster, "imp", NewRNG(seed))

		sum := 0
		for _, n := range names {
			if n == "c" {
				t.Fatalf("seed %d: picked c with budget 7", seed)
			}
			sum += costOf(roster, "imp", n)
		}
		if sum != spent {
			t.Fatalf("seed %d: reported spent %d, names cost %d", seed, spent, sum)
		}
		if spent != 7 {
			t.Fatalf("seed %d: expected to spend exactly 7, spent %d (%v)", seed, spent, names)
		}
	}
}

func TestFillMeetsBudgetWithoutOvershoot(t *testing.T) {
	roster := []catalog.Entry{{Name: "a", Cost: 1}, {Name: "b", Cost: 2}, {Name: "c", Cost: 3}, {Name: "d", Cost: 5}, {Name: "e", Cost: 8}}

	for seed := uint64(1); seed <= 200; seed++ {
		rng := NewRNG(seed)
		budget := 1 + rng.Intn(60)

		names, spent := Fill(budget, roster, "imp", rng)
		if spent < budget {
			t.Fatalf("seed %d: undershoot, spent %d of %d", seed, spent, budget)
		}
		last := costOf(roster, "imp", names[len(names)-1])
		if spent-budget > last {
			t.Fatalf("seed %d: overshoot %d exceeds last cost %d", seed, spent-budget, last)
		}
	}
}

func TestFillStarvationUsesFallback(t *testing.T) {
	roster := []catalog.Entry{{Name: "gargantuar", Cost: 10}}

	names, spent := Fill(3, roster, "tutorial_imp", NewRNG(1))

	if spent != 3 {
		t.Errorf("expected spent 3, got %d", spent)
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 fallback units, got %v", names)
	}
	for _, n := range names {
		if n != "tutorial_imp" {
			t.Errorf("expected fallback unit, got %s", n)
		}
	}
}

func TestFillFallbackOncePerStarvedStep(t *testing.T) {
	roster := []catalog.Entry{{Name: "b", Cost: 2}}

	names, spent := Fill(3, roster, "imp", NewRNG(5))

	if spent != 3 {
		t.Errorf("expected spent 3, got %d", spent)
	}
	if len(names) != 2 || names[0] != "b" || names[1] != "imp" {
		t.Errorf("expected [b imp], got %v", names)
	}
}

func TestFillZeroBudget(t *testing.T) {
	names, spent := Fill(0, []catalog.Entry{{Name: "a", Cost: 1}}, "imp", NewRNG(1))
	if len(names) != 0 || spent != 0 {
		t.Errorf("expected nothing for zero budget, got %v (%d)", names, spent)
	}
}

func TestFillReusesEntries(t *testing.T) {
	names, _ := Fill(6, []catalog.Entry{{Name: "a", Cost: 2}}, "imp", NewRNG(1))
	if len(names) != 3 {
		t.Errorf("expected a to be picked three times, got %v", names)
	}
}

func TestRollPlantfoodRate(t *testing.T) {
	src := newScripted(1, 0, 1, 2, 14)
	want := []bool{true, true, false, false}
	for i, w := range want {
		if got := rollPlantfood(src); got != w {
			t.Errorf("roll %d: expected %v, got %v", i, w, got)
		}
	}
	for _, n := range src.calls {
		if n != 15 {
			t.Errorf("expected a 1..15 die, drew from %d", n)
		}
	}
}
