package config

import (
	"fmt"
	"strings"

	"github.com/mindwell-labs/support-router/pkg/lexicon"
)

// validateConfigStructure enforces the invariants a loaded config must hold
// before the engine is built from it.
func validateConfigStructure(cfg *RouterConfig) error {
	if cfg.Distress.HighThreshold <= 0 {
		return fmt.Errorf("distress.high_threshold must be positive, got %v", cfg.Distress.HighThreshold)
	}
	if cfg.Distress.IntensifierMultiplier < 1 {
		return fmt.Errorf("distress.intensifier_multiplier must be at least 1, got %v", cfg.Distress.IntensifierMultiplier)
	}
	if cfg.Distress.ExclamationWeight < 0 {
		return fmt.Errorf("distress.exclamation_weight must not be negative, got %v", cfg.Distress.ExclamationWeight)
	}
	if cfg.Distress.CapsWeight < 0 {
		return fmt.Errorf("distress.caps_weight must not be negative, got %v", cfg.Distress.CapsWeight)
	}
	if cfg.Distress.NegationWindow <= 0 {
		return fmt.Errorf("distress.negation_window must be positive, got %d", cfg.Distress.NegationWindow)
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", cfg.Logging.Level)
	}

	// A phrase present in both tables would silently score twice.
	if err := lexicon.ValidateDisjoint(cfg.HighTable(), cfg.MildTable()); err != nil {
		return err
	}
	return nil
}
