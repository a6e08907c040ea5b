package config

import "github.com/MyNameIsAlexandro/Akinator-2.0-sub000/errors"

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Catalog.Path == "" {
		return errors.New("catalog.path cannot be empty")
	}
	if c.Catalog.DefaultLanguage == "" {
		return errors.New("catalog.default_language cannot be empty")
	}

	if c.Logging.Verbosity < 0 {
		return errors.Newf("logging.verbosity must be >= 0, got %d", c.Logging.Verbosity)
	}

	// The engine owns the range rules for its own knobs
	if err := c.Engine.Tuning().Validate(); err != nil {
		return errors.Wrap(err, "engine configuration invalid")
	}

	return nil
}
