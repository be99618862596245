package config

import (
	_ "embed"
)

//go:embed defaults/levelgen.yaml
var defaultConfigYAML []byte

//go:embed defaults/template.json
var defaultTemplateJSON []byte

//go:embed defaults/zombies.json
var defaultCatalogJSON []byte

// Default returns the default generator configuration.
func Default() Config {
	return Config{
		Output:    "Future6.json",
		HistoryDB: "~/.levelgen/history.db",
		Version:   1,
		Roster: RosterConfig{
			BroadPool:      "All Zombies",
			MandatoryPools: []string{"Basics", "Coneheads", "Imps"},
		},
		Filler: "tutorial_imp",
	}
}

// DefaultTemplate returns the embedded base level template.
func DefaultTemplate() []byte {
	return defaultTemplateJSON
}

// DefaultCatalog returns the embedded enemy catalog (JSON).
func DefaultCatalog() []byte {
	return defaultCatalogJSON
}

// GetDefaultYAML returns the embedded default configuration file.
func GetDefaultYAML() []byte {
	return defaultConfigYAML
}
