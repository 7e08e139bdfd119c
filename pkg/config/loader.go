package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mindwell-labs/support-router/pkg/observability/logging"
)

var (
	config     *RouterConfig
	configOnce sync.Once
	configErr  error
	configMu   sync.RWMutex
)

// Load loads the configuration from the specified YAML file once and caches
// it globally.
func Load(configPath string) (*RouterConfig, error) {
	configOnce.Do(func() {
		cfg, err := Parse(configPath)
		if err != nil {
			configErr = err
			return
		}
		configMu.Lock()
		config = cfg
		configMu.Unlock()
	})
	if configErr != nil {
		return nil, configErr
	}
	configMu.RLock()
	defer configMu.RUnlock()
	return config, nil
}

// Parse parses and validates a YAML config file without touching the global
// cache.
func Parse(configPath string) (*RouterConfig, error) {
	// Resolve symlinks to handle Kubernetes ConfigMap mounts.
	resolved, _ := filepath.EvalSymlinks(configPath)
	if resolved == "" {
		resolved = configPath
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &RouterConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.ApplyDefaults()

	if err := validateConfigStructure(cfg); err != nil {
		return nil, err
	}

	logging.Infof("Config loaded: path=%s, extra_high=%d, extra_mild=%d, extra_crisis=%d",
		configPath, len(cfg.Distress.ExtraHighPhrases), len(cfg.Distress.ExtraMildPhrases), len(cfg.Crisis.ExtraPhrases))
	return cfg, nil
}

// Replace replaces the globally cached config. It is safe for concurrent
// readers and is the hook for lexicon/threshold tuning without a restart.
func Replace(newCfg *RouterConfig) {
	configMu.Lock()
	config = newCfg
	configErr = nil
	configMu.Unlock()
	logging.Infof("Config replaced: high_threshold=%.1f", newCfg.Distress.HighThreshold)
}

// Get returns the globally cached config, or defaults when nothing was
// loaded.
func Get() *RouterConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	if config == nil {
		return Default()
	}
	return config
}
