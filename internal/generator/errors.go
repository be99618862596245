package generator

import "fmt"

// Configuration error codes.
const (
	CodeBadDifficulty = "BAD_DIFFICULTY"
	CodeMissingPool   = "MISSING_POOL"
	CodeEmptyPool     = "EMPTY_POOL"
	CodePoolTooSmall  = "POOL_TOO_SMALL"
	CodeBadCost       = "BAD_COST"
	CodeNoWaveManager = "NO_WAVE_MANAGER"
	CodeBadFallback   = "BAD_FALLBACK"
)

// ConfigError reports inputs the generator cannot work with. It is always
// returned before the document is touched.
type ConfigError struct {
	Code    string
	Message string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func configErrorf(code, format string, args ...any) ConfigError {
	return ConfigError{Code: code, Message: fmt.Sprintf(format, args...)}
}
