package native

import "fmt"

// Option configures NewBinder.
type Option func(*binderConfig) error

type binderConfig struct {
	loader   Loader
	cache    *LibraryCache
	platform Platform
}

// WithLoader sets the Loader used for a binder-owned cache.
func WithLoader(loader Loader) Option {
	return func(cfg *binderConfig) error {
		if loader == nil {
			return fmt.Errorf("loader cannot be nil")
		}
		cfg.loader = loader
		return nil
	}
}

// WithCache shares an existing LibraryCache between binders.
func WithCache(cache *LibraryCache) Option {
	return func(cfg *binderConfig) error {
		if cache == nil {
			return fmt.Errorf("library cache cannot be nil")
		}
		cfg.cache = cache
		return nil
	}
}

// WithPlatform overrides the detected host platform. p must name exactly one
// platform family.
func WithPlatform(p Platform) Option {
	return func(cfg *binderConfig) error {
		switch p {
		case Windows, Mac, Linux, BSD:
			cfg.platform = p
			return nil
		default:
			return fmt.Errorf("platform override must be a single platform, got %s", p)
		}
	}
}

func resolveBinderConfig(opts ...Option) (binderConfig, error) {
	var cfg binderConfig
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return binderConfig{}, err
		}
	}

	if cfg.cache != nil && cfg.loader != nil {
		return binderConfig{}, fmt.Errorf("WithLoader and WithCache cannot be combined; the cache already owns a loader")
	}
	if cfg.cache == nil {
		cfg.cache = NewLibraryCache(cfg.loader)
	}

	if cfg.platform == 0 {
		p, err := CurrentPlatform()
		if err != nil {
			return binderConfig{}, err
		}
		cfg.platform = p
	}
	return cfg, nil
}
