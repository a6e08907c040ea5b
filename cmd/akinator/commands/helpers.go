package commands

import (
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/catalog"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/config"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/engine"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/errors"
)

// gameData bundles everything a game-playing command needs from disk.
type gameData struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	related catalog.RelatedTable
	tuning  engine.Tuning
}

// loadGameData loads and validates configuration, then the catalog and the
// optional related-attribute table it points at.
func loadGameData() (*gameData, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	var related catalog.RelatedTable
	if cfg.Catalog.RelatedPath != "" {
		related, err = catalog.LoadRelatedTable(cfg.Catalog.RelatedPath)
		if err != nil {
			return nil, err
		}
	}

	return &gameData{
		cfg:     cfg,
		catalog: cat,
		related: related,
		tuning:  cfg.Engine.Tuning(),
	}, nil
}

// catalogWatcher starts hot-reloading of the entity list from the catalog
// file. Caller stops the returned watcher.
func catalogWatcher(data *gameData) (*catalog.Watcher, error) {
	w, err := catalog.NewWatcher(data.cfg.Catalog.Path, data.catalog)
	if err != nil {
		return nil, err
	}
	w.Start()
	return w, nil
}
