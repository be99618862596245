// Package generator builds PvZ2 levels from a difficulty tier: it plans the
// wave layout, picks an enemy roster, fills every wave's point budget and
// attaches ambush events, writing everything into a level document.
//
// All randomness goes through a Source, so a seeded RNG reproduces a level
// exactly.
package generator

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/levelgen/internal/catalog"
	"github.com/vovakirdan/levelgen/internal/config"
	"github.com/vovakirdan/levelgen/internal/level"
)

// Options configures a Generator.
type Options struct {
	Roster   RosterOptions
	Fallback string // Cost-1 unit spawned when nothing affordable is left
	Version  int    // Written to the document's top-level version field
}

// OptionsFromConfig maps the file configuration onto generator options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Roster: RosterOptions{
			BroadPool:      cfg.Roster.BroadPool,
			MandatoryPools: cfg.Roster.MandatoryPools,
		},
		Fallback: cfg.Filler,
		Version:  cfg.Version,
	}
}

// WaveSummary describes one generated wave.
type WaveSummary struct {
	Index     int
	Budget    int // Points actually spent on the wave (doubled on flag waves)
	Flag      bool
	Enemies   []string
	Plantfood bool
	Ambush    Ambush // nil when the wave has none
}

// Result describes a generated level.
type Result struct {
	Difficulty config.Difficulty
	Plan       StructurePlan
	Roster     Roster
	Waves      []WaveSummary
}

// Ambushes returns every ambush in wave order.
func (r *Result) Ambushes() []Ambush {
	var out []Ambush
	for _, w := range r.Waves {
		if w.Ambush != nil {
			out = append(out, w.Ambush)
		}
	}
	return out
}

// Generator turns a difficulty into a populated level document.
// A Generator is not safe for concurrent use; its Source is shared by calls.
type Generator struct {
	catalog *catalog.Catalog
	opts    Options
	src     Source
	logger  *log.Logger
}

// New creates a generator. A nil logger discards output.
func New(cat *catalog.Catalog, opts Options, src Source, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{
		catalog: cat,
		opts:    opts,
		src:     src,
		logger:  logger,
	}
}

// Validate checks the difficulty, catalog and template without drawing any
// random numbers or touching the document.
func (g *Generator) Validate(d config.Difficulty, doc *level.Document) error {
	if !d.Valid() {
		return configErrorf(CodeBadDifficulty, "unknown difficulty %q", string(d))
	}
	if g.catalog == nil {
		return configErrorf(CodeMissingPool, "no enemy catalog loaded")
	}
	if err := validateRosterInputs(d, g.catalog, g.opts.Roster); err != nil {
		return err
	}
	if g.opts.Fallback == "" {
		return configErrorf(CodeBadFallback, "no fallback unit configured")
	}
	if e, ok := g.catalog.Lookup(g.opts.Fallback); ok && e.Cost != 1 {
		return configErrorf(CodeBadFallback, "fallback unit %q costs %d, want 1", e.Name, e.Cost)
	}
	if doc == nil {
		return configErrorf(CodeNoWaveManager, "no level template loaded")
	}
	if _, err := doc.WaveManager(); err != nil {
		if errors.Is(err, level.ErrNoWaveManager) {
			return configErrorf(CodeNoWaveManager, "template has no %s object", level.WaveManagerClass)
		}
		return configErrorf(CodeNoWaveManager, "%v", err)
	}
	return nil
}

// Generate fills doc with a level for difficulty d. Configuration problems
// are reported as ConfigError before doc is modified.
func (g *Generator) Generate(d config.Difficulty, doc *level.Document) (*Result, error) {
	if err := g.Validate(d, doc); err != nil {
		return nil, err
	}
	wm, _ := doc.WaveManager()

	plan := PlanStructure(d, g.src)
	wm.SetFlagWaveInterval(plan.FlagInterval)
	wm.SetWaveCount(plan.WaveCount)
	g.logger.Info("planned level",
		"difficulty", d,
		"waves", plan.WaveCount,
		"flags", plan.FlagCount,
		"flag_interval", plan.FlagInterval,
	)

	roster, err := SelectRoster(d, g.catalog, g.opts.Roster, g.src)
	if err != nil {
		return nil, err
	}
	g.logger.Info("selected roster", "size", len(roster), "enemies", roster.Names())

	result := &Result{
		Difficulty: d,
		Plan:       plan,
		Roster:     roster,
		Waves:      make([]WaveSummary, 0, plan.WaveCount),
	}

	// Ordinary wave content
	refs := make([][]string, 0, plan.WaveCount)
	for wave := 1; wave <= plan.WaveCount; wave++ {
		budget := WaveBudget(d, wave)
		flag := plan.IsFlagWave(wave)
		if flag {
			budget *= 2
		}

		names, spent := Fill(budget, roster, g.opts.Fallback, g.src)
		plantfood := rollPlantfood(g.src)

		data := level.WaveActionData{Zombies: level.ZombieRefs(names)}
		if plantfood {
			data.AdditionalPlantfood = 1
		}
		doc.Append(level.Object{
			Aliases:  []string{level.WaveAlias(wave)},
			ObjClass: level.WaveActionClass,
			ObjData:  data,
		})
		refs = append(refs, []string{level.RTID(level.WaveAlias(wave))})

		result.Waves = append(result.Waves, WaveSummary{
			Index:     wave,
			Budget:    spent,
			Flag:      flag,
			Enemies:   names,
			Plantfood: plantfood,
		})
		g.logger.Debug("filled wave", "wave", wave, "budget", budget, "enemies", len(names), "flag", flag)
	}
	wm.SetWaves(refs)

	// Ambushes
	for wave := 1; wave <= plan.WaveCount; wave++ {
		if !shouldAmbush(d, plan, wave, g.src) {
			continue
		}

		kind := pickAmbushKind(g.src)
		ambush := buildAmbush(kind, wave, WaveBudget(d, wave), d, roster, g.opts.Fallback, g.src)

		doc.Append(ambush.Object())
		if err := wm.AppendWaveRef(wave, AmbushKey(ambush)); err != nil {
			return nil, err
		}
		result.Waves[wave-1].Ambush = ambush
		g.logger.Debug("attached ambush", "wave", wave, "kind", kind)
	}

	doc.Version = g.opts.Version
	g.logger.Info("level generated", "ambushes", len(result.Ambushes()))

	return result, nil
}
