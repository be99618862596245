package generator

import "github.com/vovakirdan/levelgen/internal/config"

// StructurePlan is the wave layout of a level.
type StructurePlan struct {
	WaveCount    int
	FlagCount    int
	FlagInterval int // WaveCount / FlagCount, truncated
}

// IsFlagWave reports whether a 1-based wave index is a flag (huge) wave.
func (p StructurePlan) IsFlagWave(wave int) bool {
	return p.FlagInterval > 0 && wave%p.FlagInterval == 0
}

// structureOptions lists the (waves, flags) pairs allowed per difficulty.
var structureOptions = map[config.Difficulty][][2]int{
	config.DifficultyEasy:   {{10, 1}, {10, 2}, {12, 2}},
	config.DifficultyMedium: {{12, 3}, {15, 3}, {16, 2}, {18, 3}},
	config.DifficultyHard:   {{16, 4}, {18, 3}, {20, 4}, {20, 5}},
}

// StructureOptions returns every plan PlanStructure can produce for d.
func StructureOptions(d config.Difficulty) []StructurePlan {
	pairs := structureOptions[d]
	plans := make([]StructurePlan, len(pairs))
	for i, p := range pairs {
		plans[i] = newPlan(p[0], p[1])
	}
	return plans
}

// PlanStructure picks one of the difficulty's plans uniformly at random.
// d must be valid.
func PlanStructure(d config.Difficulty, src Source) StructurePlan {
	options := StructureOptions(d)
	return options[src.Intn(len(options))]
}

func newPlan(waves, flags int) StructurePlan {
	return StructurePlan{
		WaveCount:    waves,
		FlagCount:    flags,
		FlagInterval: waves / flags,
	}
}
