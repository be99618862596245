package level

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoWaveManager is returned when a document has no WaveManagerProps object.
var ErrNoWaveManager = errors.New("level: document has no " + WaveManagerClass + " object")

// WaveManager is a typed handle on the wave manager block of a document.
// It is found by objclass, so its position in the object list does not matter.
type WaveManager struct {
	data map[string]any
}

// WaveManager locates the wave manager block.
func (d *Document) WaveManager() (*WaveManager, error) {
	for i := range d.Objects {
		obj := &d.Objects[i]
		if obj.ObjClass != WaveManagerClass {
			continue
		}

		switch data := obj.ObjData.(type) {
		case map[string]any:
			return &WaveManager{data: data}, nil
		case nil:
			m := make(map[string]any)
			obj.ObjData = m
			return &WaveManager{data: m}, nil
		default:
			return nil, fmt.Errorf("level: %s objdata is %T, want an object", WaveManagerClass, obj.ObjData)
		}
	}
	return nil, ErrNoWaveManager
}

// FlagWaveInterval returns the configured flag interval, or 0 if unset.
func (w *WaveManager) FlagWaveInterval() int {
	return intValue(w.data["FlagWaveInterval"])
}

// SetFlagWaveInterval sets how many waves separate two flag waves.
func (w *WaveManager) SetFlagWaveInterval(n int) {
	w.data["FlagWaveInterval"] = n
}

// WaveCount returns the configured wave count, or 0 if unset.
func (w *WaveManager) WaveCount() int {
	return intValue(w.data["WaveCount"])
}

// SetWaveCount sets the total number of waves.
func (w *WaveManager) SetWaveCount(n int) {
	w.data["WaveCount"] = n
}

// Waves returns a copy of the per-wave reference key lists.
func (w *WaveManager) Waves() [][]string {
	switch v := w.data["Waves"].(type) {
	case [][]string:
		out := make([][]string, len(v))
		for i, refs := range v {
			out[i] = append([]string(nil), refs...)
		}
		return out
	case []any:
		out := make([][]string, 0, len(v))
		for _, item := range v {
			list, _ := item.([]any)
			refs := make([]string, 0, len(list))
			for _, r := range list {
				if s, ok := r.(string); ok {
					refs = append(refs, s)
				}
			}
			out = append(out, refs)
		}
		return out
	default:
		return nil
	}
}

// SetWaves replaces the per-wave reference key lists.
func (w *WaveManager) SetWaves(refs [][]string) {
	out := make([][]string, len(refs))
	for i, r := range refs {
		out[i] = append([]string(nil), r...)
	}
	w.data["Waves"] = out
}

// AppendWaveRef adds a reference key to the list of the given 1-based wave.
func (w *WaveManager) AppendWaveRef(wave int, key string) error {
	waves, ok := w.data["Waves"].([][]string)
	if !ok {
		waves = w.Waves()
	}
	if wave < 1 || wave > len(waves) {
		return fmt.Errorf("level: wave %d out of range 1..%d", wave, len(waves))
	}
	waves[wave-1] = append(waves[wave-1], key)
	w.data["Waves"] = waves
	return nil
}

// intValue reads an integer stored either by the generator or by the decoder.
func intValue(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return int(i)
	case float64:
		return int(n)
	default:
		return 0
	}
}
