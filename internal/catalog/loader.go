package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a catalog file. The format is chosen by extension.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	cat, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes catalog data in the format named by ext (".json", ".yaml", ".yml").
// Costs must be whole numbers; range checks are left to the consumer.
func Parse(data []byte, ext string) (*Catalog, error) {
	var raw map[string]map[string]float64

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
			return nil, fmt.Errorf("json decode: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %q (want one of %v)", ext, FormatExtensions())
	}

	pools := make(map[string]map[string]int, len(raw))
	for category, enemies := range raw {
		pools[category] = make(map[string]int, len(enemies))
		for name, cost := range enemies {
			if cost != math.Trunc(cost) || math.Abs(cost) > math.MaxInt32 {
				return nil, &CostError{Category: category, Name: name, Cost: cost}
			}
			pools[category][name] = int(cost)
		}
	}

	return New(pools), nil
}

// CostError reports a catalog cost that is not a whole number.
type CostError struct {
	Category string
	Name     string
	Cost     float64
}

func (e *CostError) Error() string {
	return fmt.Sprintf("%s/%s: cost %v is not a whole number", e.Category, e.Name, e.Cost)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}
