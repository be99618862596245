// Package config provides YAML-based generator configuration loading and
// difficulty handling for levelgen.
package config

// Config contains all configuration for the level generator.
type Config struct {
	Template  string       `yaml:"template"`   // Base level template; empty uses the embedded one
	Catalog   string       `yaml:"catalog"`    // Enemy catalog (.json/.yaml); empty uses the embedded one
	Output    string       `yaml:"output"`     // Where the generated level is written
	HistoryDB string       `yaml:"history_db"` // SQLite database recording every run
	Version   int          `yaml:"version"`    // Version marker written into the level
	Roster    RosterConfig `yaml:"roster"`
	Filler    string       `yaml:"filler"` // Cost-1 unit used when nothing in the roster is affordable
}

// RosterConfig names the catalog categories the roster is drawn from.
type RosterConfig struct {
	BroadPool      string   `yaml:"broad_pool"`
	MandatoryPools []string `yaml:"mandatory_pools"`
}

// withDefaults fills zero-valued fields from Default().
func (c Config) withDefaults() Config {
	def := Default()
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.HistoryDB == "" {
		c.HistoryDB = def.HistoryDB
	}
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.Roster.BroadPool == "" {
		c.Roster.BroadPool = def.Roster.BroadPool
	}
	if c.Roster.MandatoryPools == nil {
		c.Roster.MandatoryPools = def.Roster.MandatoryPools
	}
	if c.Filler == "" {
		c.Filler = def.Filler
	}
	return c
}
