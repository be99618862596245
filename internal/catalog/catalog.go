// Package catalog holds the enemy catalog: named categories of enemy types,
// each with a point cost.
package catalog

import "sort"

// Entry is a single enemy type and its point cost.
type Entry struct {
	Name string
	Cost int
}

// Catalog maps category names to their entries.
// Entries within a category are sorted by name so that random draws are
// reproducible for a given seed.
type Catalog struct {
	pools map[string][]Entry
}

// New builds a catalog from category -> enemy name -> cost.
func New(pools map[string]map[string]int) *Catalog {
	c := &Catalog{pools: make(map[string][]Entry, len(pools))}
	for category, enemies := range pools {
		entries := make([]Entry, 0, len(enemies))
		for name, cost := range enemies {
			entries = append(entries, Entry{Name: name, Cost: cost})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name < entries[j].Name
		})
		c.pools[category] = entries
	}
	return c
}

// Pool returns a copy of the entries in a category.
func (c *Catalog) Pool(category string) ([]Entry, bool) {
	entries, ok := c.pools[category]
	if !ok {
		return nil, false
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, true
}

// Categories returns all category names in sorted order.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.pools))
	for name := range c.pools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds an enemy by name in any category.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	for _, category := range c.Categories() {
		for _, e := range c.pools[category] {
			if e.Name == name {
				return e, true
			}
		}
	}
	return Entry{}, false
}
