package mimesniff

import (
	"fmt"
	"strings"

	"github.com/gobeaver/beaver-kit/config"
	"github.com/gobwas/glob"
)

// Config holds settings for the tools built around the detector: the result
// cache, directory scans and logging. Detection itself takes no
// configuration.
type Config struct {
	// Maximum number of cached detection results (0 disables the cache)
	CacheSize int `env:"MIMESNIFF_CACHE_SIZE,default:1024"`

	// Number of files read concurrently during a scan
	Workers int `env:"MIMESNIFF_WORKERS,default:4"`

	// Scan filters, slash-separated glob patterns relative to the scan root
	Include string `env:"MIMESNIFF_INCLUDE,default:**"`
	Exclude string `env:"MIMESNIFF_EXCLUDE"` // comma-separated

	FollowSymlinks bool `env:"MIMESNIFF_FOLLOW_SYMLINKS,default:false"`

	// Logging
	LogLevel  string `env:"MIMESNIFF_LOG_LEVEL,default:info"`
	LogFormat string `env:"MIMESNIFF_LOG_FORMAT,default:text"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConfigWithPrefix returns config loaded from environment variables
// carrying prefix instead of the default one.
func GetConfigWithPrefix(prefix string) (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: prefix}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExcludePatterns returns the exclude globs as a list.
func (c *Config) ExcludePatterns() []string {
	if c.Exclude == "" {
		return nil
	}
	var patterns []string
	for _, p := range strings.Split(c.Exclude, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// Validate checks the config for values the tools cannot work with.
func (c *Config) Validate() error {
	if c.CacheSize < 0 {
		return fmt.Errorf("cache size must not be negative, got %d", c.CacheSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := glob.Compile(c.Include, '/'); err != nil {
		return fmt.Errorf("invalid include pattern %q: %w", c.Include, err)
	}
	for _, p := range c.ExcludePatterns() {
		if _, err := glob.Compile(p, '/'); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
	}
	return nil
}

// NewDetector returns the detector described by the config: a
// [CachedDetector] over the default registry, or the registry itself when
// caching is disabled.
func (c *Config) NewDetector() Detector {
	if c.CacheSize <= 0 {
		return Default()
	}
	return NewCachedDetector(Default(), c.CacheSize)
}
