// Package pipeline wires configuration, the enemy catalog, the level
// template, the generator and the history store into a single Run call used
// by every front end (CLI, TUI and SSH kiosk).
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/levelgen/internal/catalog"
	"github.com/vovakirdan/levelgen/internal/config"
	"github.com/vovakirdan/levelgen/internal/generator"
	"github.com/vovakirdan/levelgen/internal/level"
	"github.com/vovakirdan/levelgen/internal/storage"
)

// Request describes one generation.
type Request struct {
	Difficulty config.Difficulty
	Seed       uint64 // 0 derives a seed from the clock
	OutputPath string // Explicit output file; overrides OutputDir
	OutputDir  string // When set, the level is written as <run-id>.json here
	DryRun     bool   // Generate and encode but write nothing and record nothing
}

// Outcome is the result of a Run.
type Outcome struct {
	RunID    string
	Seed     uint64
	Path     string // Empty on dry runs
	Document []byte
	Result   *generator.Result
}

// Pipeline is safe for concurrent use: every Run parses a fresh template and
// owns its random source.
type Pipeline struct {
	cfg      config.Config
	catalog  *catalog.Catalog
	template []byte
	store    *storage.Store
	logger   *log.Logger
	now      func() time.Time
}

// New loads the catalog and template named by cfg, falling back to the
// embedded assets. store may be nil to disable history.
func New(cfg config.Config, store *storage.Store, logger *log.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	tmpl, err := loadTemplate(cfg.Template)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		cfg:      cfg,
		catalog:  cat,
		template: tmpl,
		store:    store,
		logger:   logger,
		now:      time.Now,
	}, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	var cat *catalog.Catalog
	var err error
	if path == "" {
		cat, err = catalog.Parse(config.DefaultCatalog(), ".json")
	} else {
		path, err = config.ExpandHome(path)
		if err != nil {
			return nil, err
		}
		cat, err = catalog.Load(path)
	}

	var costErr *catalog.CostError
	if errors.As(err, &costErr) {
		return nil, generator.ConfigError{Code: generator.CodeBadCost, Message: costErr.Error()}
	}
	return cat, err
}

// loadTemplate returns the template as encoded bytes; every Run parses its own
// copy. An empty path selects the embedded template.
func loadTemplate(path string) ([]byte, error) {
	if path == "" {
		tmpl := config.DefaultTemplate()
		if _, err := level.Parse(tmpl); err != nil {
			return nil, fmt.Errorf("pipeline: template: %w", err)
		}
		return tmpl, nil
	}

	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	doc, err := level.Load(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: template: %w", err)
	}
	tmpl, err := doc.Encode()
	if err != nil {
		return nil, fmt.Errorf("pipeline: template: %w", err)
	}
	return tmpl, nil
}

// Catalog returns the loaded enemy catalog.
func (p *Pipeline) Catalog() *catalog.Catalog {
	return p.catalog
}

// Config returns the configuration the pipeline was built with.
func (p *Pipeline) Config() config.Config {
	return p.cfg
}

// Run generates one level, writes it and records it in history.
func (p *Pipeline) Run(req Request) (*Outcome, error) {
	doc, err := level.Parse(p.template)
	if err != nil {
		return nil, fmt.Errorf("pipeline: template: %w", err)
	}

	seed := req.Seed
	if seed == 0 {
		seed = uint64(p.now().UnixNano())
	}
	runID := uuid.NewString()
	logger := p.logger.With("run", runID[:8])

	gen := generator.New(p.catalog, generator.OptionsFromConfig(p.cfg), generator.NewRNG(seed), logger)
	result, err := gen.Generate(req.Difficulty, doc)
	if err != nil {
		return nil, err
	}

	data, err := doc.Encode()
	if err != nil {
		return nil, err
	}

	out := &Outcome{
		RunID:    runID,
		Seed:     seed,
		Document: data,
		Result:   result,
	}
	if req.DryRun {
		return out, nil
	}

	out.Path = p.outputPath(req, runID)
	if err := level.WriteFile(out.Path, doc); err != nil {
		return nil, err
	}
	logger.Info("wrote level", "path", out.Path, "seed", seed)

	if p.store != nil {
		_, err := p.store.SaveRun(storage.Run{
			RunID:        runID,
			Difficulty:   string(req.Difficulty),
			Seed:         seed,
			WaveCount:    result.Plan.WaveCount,
			FlagCount:    result.Plan.FlagCount,
			FlagInterval: result.Plan.FlagInterval,
			AmbushCount:  len(result.Ambushes()),
			Roster:       result.Roster.Names(),
			OutputPath:   out.Path,
		})
		if err != nil {
			// The level is already on disk; losing the history row is not fatal.
			logger.Warn("could not record run", "err", err)
		}
	}

	return out, nil
}

func (p *Pipeline) outputPath(req Request, runID string) string {
	switch {
	case req.OutputPath != "":
		return req.OutputPath
	case req.OutputDir != "":
		return filepath.Join(req.OutputDir, runID+".json")
	default:
		return p.cfg.Output
	}
}
