package generator

import "github.com/vovakirdan/levelgen/internal/config"

// WaveBudget returns the point budget of a 1-based wave. It steps up every
// three waves and scales with intensity. Flag waves double it at the call site.
func WaveBudget(d config.Difficulty, wave int) int {
	return 2 * d.Intensity() * ((wave-1)/3 + 1)
}
