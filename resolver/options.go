package resolver

import (
	"fmt"

	"github.com/sduikit/sduitools/sduierrors"
)

// Option is a function that configures a resolution run.
type Option func(*resolveConfig) error

// resolveConfig holds configuration for a resolution run.
type resolveConfig struct {
	// Input source
	filePath *string

	// Configuration options
	maxDepth    int
	webOnly     bool
	cyclicNames []string
	logger      Logger
	cache       *DocumentCache
}

// WithFilePath sets the root schema file to resolve.
func WithFilePath(path string) Option {
	return func(cfg *resolveConfig) error {
		if path == "" {
			return &sduierrors.ConfigError{Option: "file_path", Message: "must not be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithMaxDepth sets the recursion ceiling. Must be positive.
func WithMaxDepth(depth int) Option {
	return func(cfg *resolveConfig) error {
		if depth <= 0 {
			return &sduierrors.ConfigError{Option: "max_depth", Value: depth, Message: "must be positive"}
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithWebOnly enables the web release filter: components whose
// releaseVersion.web status is not released become not_web_released stubs.
func WithWebOnly(enabled bool) Option {
	return func(cfg *resolveConfig) error {
		cfg.webOnly = enabled
		return nil
	}
}

// WithCyclicNames overrides the component names subject to the tighter
// CyclicDuplicateCap. Passing an empty slice disables the tighter cap.
func WithCyclicNames(names []string) Option {
	return func(cfg *resolveConfig) error {
		if names == nil {
			names = []string{}
		}
		cfg.cyclicNames = names
		return nil
	}
}

// WithLogger sets the structured logger for the run.
func WithLogger(logger Logger) Option {
	return func(cfg *resolveConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithCache sets a shared read-only document cache.
func WithCache(cache *DocumentCache) Option {
	return func(cfg *resolveConfig) error {
		cfg.cache = cache
		return nil
	}
}

// ResolveWithOptions resolves an SDUI schema using functional options.
// This provides a flexible, extensible API that combines input source
// selection and configuration in a single function call.
//
// Example:
//
//	result, err := resolver.ResolveWithOptions(
//	    resolver.WithFilePath("Screen.json"),
//	    resolver.WithWebOnly(true),
//	)
func ResolveWithOptions(opts ...Option) (*ResolveResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("resolver: invalid options: %w", err)
	}

	r := &Resolver{
		MaxDepth:    cfg.maxDepth,
		WebOnly:     cfg.webOnly,
		CyclicNames: cfg.cyclicNames,
		Logger:      cfg.logger,
		Cache:       cfg.cache,
	}
	return r.Resolve(*cfg.filePath)
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*resolveConfig, error) {
	cfg := &resolveConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.filePath == nil {
		return nil, &sduierrors.ConfigError{Option: "file_path", Message: "no input source specified"}
	}
	return cfg, nil
}
