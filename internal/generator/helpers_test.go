package generator

import (
	"testing"

	"github.com/vovakirdan/levelgen/internal/catalog"
	"github.com/vovakirdan/levelgen/internal/config"
)

// scriptedSource replays fixed draws, then falls back to a seeded RNG.
// Every requested range is recorded in calls.
type scriptedSource struct {
	script []int
	rest   Source
	calls  []int
}

func newScripted(seed uint64, script ...int) *scriptedSource {
	return &scriptedSource{script: script, rest: NewRNG(seed)}
}

func (s *scriptedSource) Intn(n int) int {
	s.calls = append(s.calls, n)
	if len(s.script) > 0 {
		v := s.script[0]
		s.script = s.script[1:]
		return v % n
	}
	return s.rest.Intn(n)
}

// defaultCatalog loads the embedded catalog.
func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse(config.DefaultCatalog(), ".json")
	if err != nil {
		t.Fatalf("embedded catalog: %v", err)
	}
	return cat
}

func defaultRosterOptions() RosterOptions {
	return OptionsFromConfig(config.Default()).Roster
}
