package generator

import (
	"testing"

	"github.com/vovakirdan/levelgen/internal/config"
)

func TestPlanStructureStaysInOptions(t *testing.T) {
	for _, d := range config.Difficulties() {
		options := StructureOptions(d)
		for seed := uint64(1); seed <= 200; seed++ {
			plan := PlanStructure(d, NewRNG(seed))

			found := false
			for _, o := range options {
				if o == plan {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("%s seed %d: plan %+v not in %+v", d, seed, plan, options)
			}
			if plan.FlagInterval < 1 {
				t.Fatalf("%s seed %d: flag interval %d < 1", d, seed, plan.FlagInterval)
			}
			if plan.FlagInterval != plan.WaveCount/plan.FlagCount {
				t.Fatalf("%s seed %d: interval %d != %d/%d", d, seed,
					plan.FlagInterval, plan.WaveCount, plan.FlagCount)
			}
		}
	}
}

func TestStructureOptionsTable(t *testing.T) {
	want := map[config.Difficulty][]StructurePlan{
		config.DifficultyEasy: {
			{10, 1, 10}, {10, 2, 5}, {12, 2, 6},
		},
		config.DifficultyMedium: {
			{12, 3, 4}, {15, 3, 5}, {16, 2, 8}, {18, 3, 6},
		},
		config.DifficultyHard: {
			{16, 4, 4}, {18, 3, 6}, {20, 4, 5}, {20, 5, 4},
		},
	}

	for d, plans := range want {
		got := StructureOptions(d)
		if len(got) != len(plans) {
			t.Errorf("%s: expected %d options, got %d", d, len(plans), len(got))
			continue
		}
		for i := range plans {
			if got[i] != plans[i] {
				t.Errorf("%s option %d: expected %+v, got %+v", d, i, plans[i], got[i])
			}
		}
	}
}

func TestPlanStructureUsesEveryOption(t *testing.T) {
	seen := make(map[StructurePlan]bool)
	rng := NewRNG(7)
	for i := 0; i < 500; i++ {
		seen[PlanStructure(config.DifficultyMedium, rng)] = true
	}
	if len(seen) != len(StructureOptions(config.DifficultyMedium)) {
		t.Errorf("expected every medium option to be drawn, saw %d", len(seen))
	}
}

func TestIsFlagWave(t *testing.T) {
	plan := StructurePlan{WaveCount: 20, FlagCount: 5, FlagInterval: 4}
	for wave := 1; wave <= plan.WaveCount; wave++ {
		want := wave%4 == 0
		if plan.IsFlagWave(wave) != want {
			t.Errorf("wave %d: expected flag=%v", wave, want)
		}
	}
}

func TestWaveBudget(t *testing.T) {
	cases := []struct {
		d      config.Difficulty
		wave   int
		budget int
	}{
		{config.DifficultyEasy, 1, 2},
		{config.DifficultyEasy, 3, 2},
		{config.DifficultyEasy, 4, 4},
		{config.DifficultyEasy, 12, 8},
		{config.DifficultyMedium, 7, 12},
		{config.DifficultyHard, 1, 8},
		{config.DifficultyHard, 20, 56},
	}
	for _, c := range cases {
		if got := WaveBudget(c.d, c.wave); got != c.budget {
			t.Errorf("WaveBudget(%s, %d) = %d, want %d", c.d, c.wave, got, c.budget)
		}
	}
}

func TestWaveBudgetNonDecreasing(t *testing.T) {
	for _, d := range config.Difficulties() {
		prev := 0
		for wave := 1; wave <= 20; wave++ {
			b := WaveBudget(d, wave)
			want := 2 * d.Intensity() * ((wave-1)/3 + 1)
			if b != want {
				t.Errorf("%s wave %d: expected %d, got %d", d, wave, want, b)
			}
			if b < prev {
				t.Errorf("%s wave %d: budget %d dropped below %d", d, wave, b, prev)
			}
			prev = b
		}
	}
}
