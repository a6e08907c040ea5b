// Package config loads the application configuration from TOML files and
// the environment. Precedence, lowest to highest: defaults, system config,
// user config under ~/.akinator, project config found by walking up from
// the working directory, then AKINATOR_* environment variables.
package config

import (
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/engine"
)

// Config is the root configuration for the game host and CLI.
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Simulate SimulateConfig `mapstructure:"simulate"`
}

// CatalogConfig locates the knowledge base files.
type CatalogConfig struct {
	Path            string `mapstructure:"path"`             // entity/attribute catalog (JSON)
	RelatedPath     string `mapstructure:"related_path"`     // related-attribute skip table (TOML), optional
	DefaultLanguage string `mapstructure:"default_language"` // fallback question language
	Watch           bool   `mapstructure:"watch"`            // hot-reload entities on file change
}

// EngineConfig carries the inference tuning knobs. It mirrors
// engine.Tuning field for field so the TOML surface stays flat and
// documented in one place.
type EngineConfig struct {
	LikelihoodEpsilon           float64 `mapstructure:"likelihood_epsilon"`
	PruneThreshold              float64 `mapstructure:"prune_threshold"`
	GuessThreshold              float64 `mapstructure:"guess_threshold"`
	SecondGuessThreshold        float64 `mapstructure:"second_guess_threshold"`
	MaxQuestions                int     `mapstructure:"max_questions"`
	MinQuestionsBeforeEarlyStop int     `mapstructure:"min_questions_before_early_stop"`
	EarlyStopCandidates         int     `mapstructure:"early_stop_candidates"`
}

// Tuning converts the config section into the engine's tuning struct.
func (c EngineConfig) Tuning() engine.Tuning {
	return engine.Tuning{
		LikelihoodEpsilon:           c.LikelihoodEpsilon,
		PruneThreshold:              c.PruneThreshold,
		GuessThreshold:              c.GuessThreshold,
		SecondGuessThreshold:        c.SecondGuessThreshold,
		MaxQuestions:                c.MaxQuestions,
		MinQuestionsBeforeEarlyStop: c.MinQuestionsBeforeEarlyStop,
		EarlyStopCandidates:         c.EarlyStopCandidates,
	}
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	JSON      bool `mapstructure:"json"`      // structured JSON instead of console output
	Verbosity int  `mapstructure:"verbosity"` // 0 = warn, 1 = info, 2+ = debug
}

// SimulateConfig controls the self-play harness output.
type SimulateConfig struct {
	ShowResults bool `mapstructure:"show_results"` // per-game rows in batch output
}
