package generation

import "time"

// Config controls the behavior of the Client.
type Config struct {
	// BatchSize is the number of questions requested per batch, before the
	// session's age policy truncates it.
	BatchSize int

	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature controls model output randomness (0.0-1.0).
	Temperature float64

	// SeedFn produces the seed used for fallback selection. Defaults to a
	// time-derived value; tests inject a fixed function.
	SeedFn func() int64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		BatchSize:   8,
		MaxTokens:   2048,
		Temperature: 0.8,
		SeedFn:      func() int64 { return time.Now().UnixNano() },
	}
}
