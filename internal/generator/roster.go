package generator

import (
	"github.com/vovakirdan/levelgen/internal/catalog"
	"github.com/vovakirdan/levelgen/internal/config"
)

// Roster is the set of enemy types a level may spawn, unique by name,
// in selection order.
type Roster []catalog.Entry

// Has reports whether the roster already contains name.
func (r Roster) Has(name string) bool {
	for _, e := range r {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Names returns the enemy names in selection order.
func (r Roster) Names() []string {
	names := make([]string, len(r))
	for i, e := range r {
		names[i] = e.Name
	}
	return names
}

// RosterSize is the number of entries drawn from the broad pool.
func RosterSize(d config.Difficulty) int {
	return 2*d.Intensity() + 3
}

// RosterOptions names the catalog categories used to build a roster.
type RosterOptions struct {
	BroadPool      string
	MandatoryPools []string
}

// SelectRoster draws RosterSize(d) distinct entries from the broad pool, then
// adds one random entry from each mandatory pool unless an entry with that
// name is already present. Mandatory picks may push the roster past RosterSize.
func SelectRoster(d config.Difficulty, cat *catalog.Catalog, opts RosterOptions, src Source) (Roster, error) {
	if err := validateRosterInputs(d, cat, opts); err != nil {
		return nil, err
	}

	broad, _ := cat.Pool(opts.BroadPool)
	size := RosterSize(d)

	// Partial Fisher-Yates: the first size slots become a uniform sample.
	for i := 0; i < size; i++ {
		j := i + src.Intn(len(broad)-i)
		broad[i], broad[j] = broad[j], broad[i]
	}

	roster := make(Roster, 0, size+len(opts.MandatoryPools))
	roster = append(roster, broad[:size]...)

	for _, name := range opts.MandatoryPools {
		pool, _ := cat.Pool(name)
		pick := pool[src.Intn(len(pool))]
		if !roster.Has(pick.Name) {
			roster = append(roster, pick)
		}
	}

	return roster, nil
}

// validateRosterInputs checks every precondition of SelectRoster.
func validateRosterInputs(d config.Difficulty, cat *catalog.Catalog, opts RosterOptions) error {
	if !d.Valid() {
		return configErrorf(CodeBadDifficulty, "unknown difficulty %q", string(d))
	}

	broad, err := requirePool(cat, opts.BroadPool)
	if err != nil {
		return err
	}
	if size := RosterSize(d); len(broad) < size {
		return configErrorf(CodePoolTooSmall,
			"pool %q has %d enemy types, %s needs at least %d",
			opts.BroadPool, len(broad), d.Title(), size)
	}

	for _, name := range opts.MandatoryPools {
		if _, err := requirePool(cat, name); err != nil {
			return err
		}
	}
	return nil
}

// requirePool returns a non-empty pool whose costs are all at least 1.
func requirePool(cat *catalog.Catalog, name string) ([]catalog.Entry, error) {
	pool, ok := cat.Pool(name)
	if !ok {
		return nil, configErrorf(CodeMissingPool, "catalog has no %q category", name)
	}
	if len(pool) == 0 {
		return nil, configErrorf(CodeEmptyPool, "catalog category %q is empty", name)
	}
	for _, e := range pool {
		if e.Cost < 1 {
			return nil, configErrorf(CodeBadCost, "%s in %q costs %d, must be at least 1", e.Name, name, e.Cost)
		}
	}
	return pool, nil
}
