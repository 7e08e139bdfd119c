// Package config defines the router configuration and its YAML loader. The
// built-in lexicon covers the default deployment; config exists for tuning
// thresholds and adding deployment-specific phrases without a rebuild.
package config

import (
	"strings"

	"github.com/mindwell-labs/support-router/pkg/lexicon"
)

// RouterConfig is the root configuration for the routing engine.
type RouterConfig struct {
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Distress DistressConfig `yaml:"distress,omitempty"`
	Crisis   CrisisConfig   `yaml:"crisis,omitempty"`
	Menu     MenuConfig     `yaml:"menu,omitempty"`
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
	// Format is json or console.
	Format string `yaml:"format,omitempty"`
}

// DistressConfig tunes the distress scorer. Zero values select the defaults
// below; misclassifications are corrected here, not in code.
type DistressConfig struct {
	// HighThreshold is the score at or above which a message is classified
	// as high distress. Any score above zero but below it is mild.
	HighThreshold float64 `yaml:"high_threshold,omitempty"`
	// IntensifierMultiplier is applied once when any intensity adverb is
	// present, regardless of how many appear.
	IntensifierMultiplier float64 `yaml:"intensifier_multiplier,omitempty"`
	// ExclamationWeight is added per exclamation mark.
	ExclamationWeight float64 `yaml:"exclamation_weight,omitempty"`
	// CapsWeight is added per ALL-CAPS token of length >= 2.
	CapsWeight float64 `yaml:"caps_weight,omitempty"`
	// NegationWindow is how many characters before a phrase match are
	// inspected for negation.
	NegationWindow int `yaml:"negation_window,omitempty"`
	// ExtraHighPhrases and ExtraMildPhrases are merged over the built-in
	// tables at weight 5 and 1 respectively.
	ExtraHighPhrases []string `yaml:"extra_high_phrases,omitempty"`
	ExtraMildPhrases []string `yaml:"extra_mild_phrases,omitempty"`
}

// CrisisConfig extends the crisis phrase set.
type CrisisConfig struct {
	ExtraPhrases []string `yaml:"extra_phrases,omitempty"`
}

// MenuConfig extends the resource-indicator vocabulary used to re-route
// menu selections.
type MenuConfig struct {
	ExtraResourceIndicators []string `yaml:"extra_resource_indicators,omitempty"`
}

// Default configuration values.
const (
	DefaultHighThreshold         = 5.0
	DefaultIntensifierMultiplier = 1.5
	DefaultExclamationWeight     = 2.0
	DefaultCapsWeight            = 3.0
	DefaultNegationWindow        = 30
)

// Default returns a RouterConfig populated with default values.
func Default() *RouterConfig {
	cfg := &RouterConfig{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero-valued tuning fields with their defaults.
func (c *RouterConfig) ApplyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Distress.HighThreshold == 0 {
		c.Distress.HighThreshold = DefaultHighThreshold
	}
	if c.Distress.IntensifierMultiplier == 0 {
		c.Distress.IntensifierMultiplier = DefaultIntensifierMultiplier
	}
	if c.Distress.ExclamationWeight == 0 {
		c.Distress.ExclamationWeight = DefaultExclamationWeight
	}
	if c.Distress.CapsWeight == 0 {
		c.Distress.CapsWeight = DefaultCapsWeight
	}
	if c.Distress.NegationWindow == 0 {
		c.Distress.NegationWindow = DefaultNegationWindow
	}
}

// HighTable returns the built-in severe-distress table merged with any
// configured extra phrases.
func (c *RouterConfig) HighTable() lexicon.PhraseWeights {
	return mergePhrases(lexicon.HighDistress(), c.Distress.ExtraHighPhrases, lexicon.HighWeight)
}

// MildTable returns the built-in general-distress table merged with any
// configured extra phrases.
func (c *RouterConfig) MildTable() lexicon.PhraseWeights {
	return mergePhrases(lexicon.MildDistress(), c.Distress.ExtraMildPhrases, lexicon.MildWeight)
}

// CrisisPhrases returns the built-in crisis set merged with any configured
// extra phrases.
func (c *RouterConfig) CrisisPhrases() []string {
	return mergeStrings(lexicon.CrisisPhrases(), c.Crisis.ExtraPhrases)
}

// ResourceIndicators returns the built-in resource-indicator vocabulary
// merged with any configured extras.
func (c *RouterConfig) ResourceIndicators() []string {
	return mergeStrings(lexicon.ResourceIndicators(), c.Menu.ExtraResourceIndicators)
}

func mergePhrases(table lexicon.PhraseWeights, extras []string, weight int) lexicon.PhraseWeights {
	for _, phrase := range extras {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			continue
		}
		table[phrase] = weight
	}
	return table
}

func mergeStrings(base, extras []string) []string {
	seen := make(map[string]struct{}, len(base))
	for _, s := range base {
		seen[s] = struct{}{}
	}
	for _, s := range extras {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		base = append(base, s)
	}
	return base
}
