package mimesniff

import (
	"os"
	"reflect"
	"testing"
)

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    Config
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want: Config{
				CacheSize: 1024,
				Workers:   4,
				Include:   "**",
				LogLevel:  "info",
				LogFormat: "text",
			},
		},
		{
			name: "scan configuration",
			envVars: map[string]string{
				"BEAVER_MIMESNIFF_WORKERS":         "16",
				"BEAVER_MIMESNIFF_INCLUDE":         "uploads/**",
				"BEAVER_MIMESNIFF_EXCLUDE":         "**/.git/**,*.tmp",
				"BEAVER_MIMESNIFF_FOLLOW_SYMLINKS": "true",
			},
			want: Config{
				CacheSize:      1024,
				Workers:        16,
				Include:        "uploads/**",
				Exclude:        "**/.git/**,*.tmp",
				FollowSymlinks: true,
				LogLevel:       "info",
				LogFormat:      "text",
			},
		},
		{
			name: "cache and logging configuration",
			envVars: map[string]string{
				"BEAVER_MIMESNIFF_CACHE_SIZE": "0",
				"BEAVER_MIMESNIFF_LOG_LEVEL":  "debug",
				"BEAVER_MIMESNIFF_LOG_FORMAT": "json",
			},
			want: Config{
				CacheSize: 0,
				Workers:   4,
				Include:   "**",
				LogLevel:  "debug",
				LogFormat: "json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Set environment variables
			for k, v := range tt.envVars {
				k := k // capture for closure
				os.Setenv(k, v)
				t.Cleanup(func() { os.Unsetenv(k) })
			}

			cfg, err := GetConfig()
			if err != nil {
				t.Fatalf("GetConfig() error = %v", err)
			}

			if cfg.CacheSize != tt.want.CacheSize {
				t.Errorf("CacheSize = %v, want %v", cfg.CacheSize, tt.want.CacheSize)
			}
			if cfg.Workers != tt.want.Workers {
				t.Errorf("Workers = %v, want %v", cfg.Workers, tt.want.Workers)
			}
			if cfg.Include != tt.want.Include {
				t.Errorf("Include = %v, want %v", cfg.Include, tt.want.Include)
			}
			if cfg.Exclude != tt.want.Exclude {
				t.Errorf("Exclude = %v, want %v", cfg.Exclude, tt.want.Exclude)
			}
			if cfg.FollowSymlinks != tt.want.FollowSymlinks {
				t.Errorf("FollowSymlinks = %v, want %v", cfg.FollowSymlinks, tt.want.FollowSymlinks)
			}
			if cfg.LogLevel != tt.want.LogLevel {
				t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, tt.want.LogLevel)
			}
			if cfg.LogFormat != tt.want.LogFormat {
				t.Errorf("LogFormat = %v, want %v", cfg.LogFormat, tt.want.LogFormat)
			}
		})
	}
}

func TestGetConfigWithPrefix(t *testing.T) {
	t.Setenv("EDGE_MIMESNIFF_WORKERS", "2")

	cfg, err := GetConfigWithPrefix("EDGE_")
	if err != nil {
		t.Fatalf("GetConfigWithPrefix() error = %v", err)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %v, want 2", cfg.Workers)
	}
	if cfg.CacheSize != 1024 {
		t.Errorf("CacheSize = %v, want default 1024", cfg.CacheSize)
	}
}

func TestConfig_ExcludePatterns(t *testing.T) {
	tests := []struct {
		exclude string
		want    []string
	}{
		{exclude: "", want: nil},
		{exclude: "*.tmp", want: []string{"*.tmp"}},
		{exclude: " **/.git/** , *.tmp ,", want: []string{"**/.git/**", "*.tmp"}},
	}

	for _, tt := range tests {
		cfg := &Config{Exclude: tt.exclude}
		if got := cfg.ExcludePatterns(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ExcludePatterns(%q) = %v, want %v", tt.exclude, got, tt.want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{CacheSize: 10, Workers: 1, Include: "**"}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "negative cache size", mutate: func(c *Config) { c.CacheSize = -1 }, wantErr: true},
		{name: "negative workers", mutate: func(c *Config) { c.Workers = -3 }, wantErr: true},
		{name: "bad include", mutate: func(c *Config) { c.Include = "[" }, wantErr: true},
		{name: "bad exclude", mutate: func(c *Config) { c.Exclude = "*.tmp,{a" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_NewDetector(t *testing.T) {
	cfg := &Config{CacheSize: 0}
	if _, ok := cfg.NewDetector().(*Registry); !ok {
		t.Errorf("NewDetector() with cache disabled = %T, want *Registry", cfg.NewDetector())
	}

	cfg.CacheSize = 8
	if _, ok := cfg.NewDetector().(*CachedDetector); !ok {
		t.Errorf("NewDetector() with cache enabled = %T, want *CachedDetector", cfg.NewDetector())
	}
}
