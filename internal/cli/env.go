package cli

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/chentanran/allschemas"
	"github.com/chentanran/allschemas/dict"
	"github.com/chentanran/allschemas/i18n"
	"github.com/chentanran/allschemas/internal/config"
	"github.com/chentanran/allschemas/source"
)

// env is the composition root shared by the subcommands.
type env struct {
	cfg      *config.Config
	log      *slog.Logger
	dicts    *dict.Cache
	registry *source.Registry
	engine   *allschemas.Engine
}

func newEnv(cfg *config.Config, stderr io.Writer) (*env, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	log := newLogger(stderr, level)

	if cfg.Catalog != "" {
		cat, err := i18n.LoadCatalogFile(cfg.Catalog)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		i18n.SetTranslator(cat)
		if cfg.Lang != "" {
			log.Debug("translation language", "requested", cfg.Lang, "selected", cat.SetLanguage(cfg.Lang))
		}
	}

	cache := dict.New()
	if cfg.Dicts != "" {
		if err := cache.LoadFile(cfg.Dicts); err != nil {
			return nil, fmt.Errorf("dictionaries: %w", err)
		}
	}

	client := &http.Client{Timeout: cfg.HTTPTimeout}
	reg := source.NewRegistry(source.WithClient(client))
	for name, url := range cfg.APIs {
		reg.Register(name, source.HTTP(url, source.WithClient(client)))
	}

	eng := allschemas.NewEngine(
		allschemas.WithDictionary(cache),
		allschemas.WithLogger(log),
		allschemas.WithLabelFieldMode(cfg.Mode()),
	)
	return &env{cfg: cfg, log: log, dicts: cache, registry: reg, engine: eng}, nil
}
