package tutor

// Config tunes generation parameters for tutor calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard tutor generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}
