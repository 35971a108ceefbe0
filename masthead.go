// Package masthead models contributors, publications and the works that link
// them, with validated construction and derived relationship queries.
//
// All entities are created through a Registry:
//
//	reg := masthead.New()
//	vogue, _ := reg.NewPublication("Vogue", "Fashion")
//	ada, _ := reg.NewContributor("Ada")
//	_, _ = ada.AddWork(vogue, "Fashion Forward 2024")
//	areas, ok := ada.TopicAreas() // ["Fashion"], true
package masthead

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/zjrosen/masthead/internal/catalog"
	"github.com/zjrosen/masthead/internal/config"
	"github.com/zjrosen/masthead/internal/log"
)

type (
	// Registry owns every publication and work created through it.
	Registry = catalog.Registry
	// Contributor is an alias of catalog.Contributor.
	Contributor = catalog.Contributor
	// Publication is an alias of catalog.Publication.
	Publication = catalog.Publication
	// Work is an alias of catalog.Work.
	Work = catalog.Work
	// ValidationError is an alias of catalog.ValidationError.
	ValidationError = catalog.ValidationError
	// Option is an alias of catalog.Option.
	Option = catalog.Option
	// Config is an alias of config.Config.
	Config = config.Config
)

// ErrValidation matches every construction failure via errors.Is.
var ErrValidation = catalog.ErrValidation

// WithFrequentThreshold sets the default threshold for
// Publication.FrequentContributors.
func WithFrequentThreshold(n int) Option {
	return catalog.WithFrequentThreshold(n)
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	return catalog.NewRegistry(opts...)
}

// Open loads configuration from configPath (empty for defaults and
// environment only), starts the debug log if enabled, and returns a registry
// configured accordingly. A configPath that does not exist yet is created
// from the default template first. The returned cleanup closes the log.
func Open(configPath string) (*Registry, func(), error) {
	created := false
	if configPath != "" {
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			if err := config.WriteDefaultConfig(configPath); err != nil {
				log.ErrorErr(log.CatConfig, "writing default config failed", err, "path", configPath)
				return nil, nil, fmt.Errorf("writing default config: %w", err)
			}
			created = true
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.ErrorErr(log.CatConfig, "loading config failed", err, "path", configPath)
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	cleanup, err := startLog(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("starting log: %w", err)
	}

	if created {
		log.Info(log.CatConfig, "default config written", "path", configPath)
	}
	log.Info(log.CatConfig, "registry opened", "frequent_threshold", cfg.Catalog.FrequentThreshold)
	return catalog.NewRegistry(cfg.Catalog.RegistryOptions()...), cleanup, nil
}

// SaveFrequentThreshold persists n as the catalog frequent threshold in the
// config file at configPath. Other sections and their comments are kept.
// Registries already open are unaffected; the value applies from the next Open.
func SaveFrequentThreshold(configPath string, n int) error {
	if err := config.SaveCatalog(configPath, config.CatalogConfig{FrequentThreshold: n}); err != nil {
		log.ErrorErr(log.CatConfig, "saving frequent threshold failed", err, "path", configPath)
		return fmt.Errorf("saving frequent threshold: %w", err)
	}
	return nil
}

func startLog(l config.LogConfig) (func(), error) {
	if !l.Enabled {
		// Silence any sink left installed by an earlier Open.
		log.SetEnabled(false)
		return func() {}, nil
	}

	var (
		cleanup func()
		err     error
	)
	if l.TeaPrefix != "" {
		cleanup, err = log.InitWithTeaLog(l.Path, l.TeaPrefix)
	} else {
		cleanup, err = log.Init(l.Path)
	}
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(l.Level)
	if err != nil {
		cleanup()
		return nil, err
	}
	log.SetMinLevel(level)
	return cleanup, nil
}
