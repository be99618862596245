package pipeline

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/levelgen/internal/config"
	"github.com/vovakirdan/levelgen/internal/generator"
	"github.com/vovakirdan/levelgen/internal/level"
	"github.com/vovakirdan/levelgen/internal/storage"
)

func newTestPipeline(t *testing.T, store *storage.Store) *Pipeline {
	t.Helper()
	cfg := config.Default()
	cfg.Output = filepath.Join(t.TempDir(), "Future6.json")
	p, err := New(cfg, store, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return p
}

func TestRunWritesLevel(t *testing.T) {
	p := newTestPipeline(t, nil)

	out, err := p.Run(Request{Difficulty: config.DifficultyMedium, Seed: 42})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if out.Path != p.Config().Output {
		t.Errorf("Expected default output path %s, got %s", p.Config().Output, out.Path)
	}

	data, err := os.ReadFile(out.Path)
	if err != nil {
		t.Fatalf("Level not written: %v", err)
	}
	if !bytes.Equal(data, out.Document) {
		t.Error("File contents differ from the returned document")
	}

	doc, err := level.Parse(data)
	if err != nil {
		t.Fatalf("Written level does not parse: %v", err)
	}
	wm, err := doc.WaveManager()
	if err != nil {
		t.Fatalf("Written level lost its wave manager: %v", err)
	}
	if wm.WaveCount() != out.Result.Plan.WaveCount {
		t.Errorf("WaveCount %d does not match plan %d", wm.WaveCount(), out.Result.Plan.WaveCount)
	}
}

func TestRunSameSeedSameBytes(t *testing.T) {
	p := newTestPipeline(t, nil)

	a, err := p.Run(Request{Difficulty: config.DifficultyHard, Seed: 7, DryRun: true})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	b, err := p.Run(Request{Difficulty: config.DifficultyHard, Seed: 7, DryRun: true})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if !bytes.Equal(a.Document, b.Document) {
		t.Error("Same seed produced different documents")
	}
	if a.RunID == b.RunID {
		t.Error("Run IDs should be unique")
	}
}

func TestRunDryRunWritesNothing(t *testing.T) {
	p := newTestPipeline(t, nil)

	out, err := p.Run(Request{Difficulty: config.DifficultyEasy, Seed: 1, DryRun: true})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if out.Path != "" {
		t.Errorf("Dry run should not report a path, got %s", out.Path)
	}
	if _, err := os.Stat(p.Config().Output); !os.IsNotExist(err) {
		t.Error("Dry run wrote the output file")
	}
}

func TestRunZeroSeedUsesClock(t *testing.T) {
	p := newTestPipeline(t, nil)

	out, err := p.Run(Request{Difficulty: config.DifficultyEasy, DryRun: true})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if out.Seed == 0 {
		t.Error("Expected a clock-derived seed")
	}
}

func TestRunOutputDirAndHistory(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	p := newTestPipeline(t, store)
	dir := t.TempDir()

	out, err := p.Run(Request{Difficulty: config.DifficultyHard, Seed: 99, OutputDir: dir})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if filepath.Dir(out.Path) != dir || !strings.HasSuffix(out.Path, out.RunID+".json") {
		t.Errorf("Unexpected output path %s", out.Path)
	}

	run, err := store.RunByID(out.RunID)
	if err != nil || run == nil {
		t.Fatalf("Run not recorded: %v", err)
	}
	if run.Seed != 99 || run.Difficulty != "hard" {
		t.Errorf("Unexpected history row: %+v", run)
	}
	if run.AmbushCount != len(out.Result.Ambushes()) {
		t.Errorf("Expected %d ambushes recorded, got %d", len(out.Result.Ambushes()), run.AmbushCount)
	}
	if run.AmbushCount < out.Result.Plan.FlagCount {
		t.Errorf("Every flag wave carries an ambush: %d < %d", run.AmbushCount, out.Result.Plan.FlagCount)
	}
}

func TestRunBadDifficulty(t *testing.T) {
	p := newTestPipeline(t, nil)

	_, err := p.Run(Request{Difficulty: "nightmare", Seed: 1})
	var cfgErr generator.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Code != generator.CodeBadDifficulty {
		t.Fatalf("Expected BAD_DIFFICULTY, got %v", err)
	}
	if _, err := os.Stat(p.Config().Output); !os.IsNotExist(err) {
		t.Error("Failed run wrote the output file")
	}
}

func TestNewRejectsMissingTemplate(t *testing.T) {
	cfg := config.Default()
	cfg.Template = filepath.Join(t.TempDir(), "missing.json")

	if _, err := New(cfg, nil, nil); err == nil {
		t.Error("Expected error for missing template")
	}
}

func TestNewLoadsTemplateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.json")
	tmpl := `{"objects": [{"aliases": [], "objclass": "WaveManagerProps", "#note": "a & b", "objdata": null}], "version": 1}`
	if err := os.WriteFile(path, []byte(tmpl), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	cfg := config.Default()
	cfg.Template = path
	p, err := New(cfg, nil, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	out, err := p.Run(Request{Difficulty: config.DifficultyEasy, Seed: 3, DryRun: true})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	s := string(out.Document)
	if !strings.Contains(s, `"#note": "a & b"`) || !strings.Contains(s, `"aliases": []`) {
		t.Errorf("template fields not carried through:\n%s", s)
	}
	if !strings.Contains(s, `"WaveCount": `) {
		t.Errorf("wave manager was not filled:\n%s", s)
	}
}

func TestNewReportsFractionalCostAsBadCost(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zombies.yaml")
	if err := os.WriteFile(path, []byte("All Zombies:\n  future: 1.5\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	cfg := config.Default()
	cfg.Catalog = path
	_, err := New(cfg, nil, nil)

	var cfgErr generator.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Code != generator.CodeBadCost {
		t.Fatalf("Expected BAD_COST, got %v", err)
	}
}
