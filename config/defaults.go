package config

import (
	"github.com/spf13/viper"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/engine"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Catalog defaults
	v.SetDefault("catalog.path", "catalog.json")
	v.SetDefault("catalog.related_path", "")
	v.SetDefault("catalog.default_language", "en")
	v.SetDefault("catalog.watch", false)

	// Engine defaults track the tuned production values
	t := engine.DefaultTuning()
	v.SetDefault("engine.likelihood_epsilon", t.LikelihoodEpsilon)
	v.SetDefault("engine.prune_threshold", t.PruneThreshold)
	v.SetDefault("engine.guess_threshold", t.GuessThreshold)
	v.SetDefault("engine.second_guess_threshold", t.SecondGuessThreshold)
	v.SetDefault("engine.max_questions", t.MaxQuestions)
	v.SetDefault("engine.min_questions_before_early_stop", t.MinQuestionsBeforeEarlyStop)
	v.SetDefault("engine.early_stop_candidates", t.EarlyStopCandidates)

	// Logging defaults
	v.SetDefault("logging.json", false)
	v.SetDefault("logging.verbosity", 0)

	// Simulate defaults
	v.SetDefault("simulate.show_results", true)
}
