package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env  string `mapstructure:"env"`  // current application environment (local, dev, prod etc)
	Game Game   `mapstructure:"game"` // gameplay configuration section
}

// Game contains gameplay-related configuration parameters.
type Game struct {
	QuestionsPath    string `mapstructure:"questions_path"`    // default path to the questions JSON file
	PlayerPrefix     string `mapstructure:"player_prefix"`     // prefix for generated player names ("Player" -> "Player 1")
	ShuffleQuestions bool   `mapstructure:"shuffle_questions"` // permute question order once before the first turn
	ShuffleOptions   bool   `mapstructure:"shuffle_options"`   // reshuffle option order on every presentation
	Seed             int64  `mapstructure:"seed"`              // fixed RNG seed; 0 seeds from the clock
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("game.questions_path", "assets/questions.json")
	v.SetDefault("game.player_prefix", "Player")
	v.SetDefault("game.shuffle_questions", true)
	v.SetDefault("game.shuffle_options", true)
	v.SetDefault("game.seed", 0)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
