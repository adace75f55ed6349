package config

// SimulationConfig holds turn-runner configuration
type SimulationConfig struct {
	// TurnsPerSecond throttles the batch runner; zero means unthrottled
	TurnsPerSecond float64 `mapstructure:"turns_per_second" validate:"min=0"`

	// DefaultTurns is the number of turns `run` advances when no flag is given
	DefaultTurns int `mapstructure:"default_turns" validate:"min=1"`
}
