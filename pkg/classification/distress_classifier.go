package classification

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mindwell-labs/support-router/pkg/config"
	"github.com/mindwell-labs/support-router/pkg/lexicon"
)

// DistressLevel is the support-urgency tier assigned to a message.
type DistressLevel string

const (
	DistressNone DistressLevel = "none"
	DistressMild DistressLevel = "mild"
	DistressHigh DistressLevel = "high"
)

// weightedPattern is a distress phrase precompiled with its weight.
type weightedPattern struct {
	phrasePattern
	weight int
}

// DistressClassifier scores emotional distress from weighted phrase matches
// plus intensity modifiers. The two-tier high/mild scheme was collapsed from
// an earlier three-tier one: boundary misclassification between adjacent
// tiers cost more than the lost resolution.
type DistressClassifier struct {
	patterns []weightedPattern
	adverbs  []phrasePattern
	negation *NegationChecker

	highThreshold float64
	multiplier    float64
	exclWeight    float64
	capsWeight    float64
}

// NewDistressClassifier builds a classifier from the configured tables and
// tuning weights.
func NewDistressClassifier(cfg *config.RouterConfig) (*DistressClassifier, error) {
	high := cfg.HighTable()
	mild := cfg.MildTable()
	if err := lexicon.ValidateDisjoint(high, mild); err != nil {
		return nil, err
	}

	patterns, err := compileWeighted(high)
	if err != nil {
		return nil, err
	}
	mildPatterns, err := compileWeighted(mild)
	if err != nil {
		return nil, err
	}
	patterns = append(patterns, mildPatterns...)

	adverbs, err := compilePhrases(lexicon.IntensityAdverbs())
	if err != nil {
		return nil, err
	}

	negation, err := NewNegationChecker(cfg.Distress.NegationWindow)
	if err != nil {
		return nil, err
	}

	return &DistressClassifier{
		patterns:      patterns,
		adverbs:       adverbs,
		negation:      negation,
		highThreshold: cfg.Distress.HighThreshold,
		multiplier:    cfg.Distress.IntensifierMultiplier,
		exclWeight:    cfg.Distress.ExclamationWeight,
		capsWeight:    cfg.Distress.CapsWeight,
	}, nil
}

// compileWeighted precompiles a phrase table in sorted order so matched-phrase
// reporting stays deterministic.
func compileWeighted(table lexicon.PhraseWeights) ([]weightedPattern, error) {
	phrases := make([]string, 0, len(table))
	for phrase := range table {
		phrases = append(phrases, phrase)
	}
	sort.Strings(phrases)

	out := make([]weightedPattern, 0, len(phrases))
	for _, phrase := range phrases {
		re, err := compilePhrase(phrase)
		if err != nil {
			return nil, err
		}
		out = append(out, weightedPattern{
			phrasePattern: phrasePattern{phrase: phrase, re: re},
			weight:        table[phrase],
		})
	}
	return out, nil
}

// Score accumulates the weights of all matched, non-negated phrases, applies
// the intensity modifiers, and classifies the result. Each phrase counts at
// most once; overlapping matches of distinct phrases are additive by design.
func (c *DistressClassifier) Score(text string) (DistressLevel, float64) {
	level, score, _ := c.ScoreWithMatches(text)
	return level, score
}

// ScoreWithMatches is Score plus the list of phrases that contributed,
// for debug logging and the CLI.
func (c *DistressClassifier) ScoreWithMatches(text string) (DistressLevel, float64, []string) {
	var score float64
	var matched []string

	for _, p := range c.patterns {
		loc := p.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if c.negation.IsNegated(text, loc[0]) {
			continue
		}
		score += float64(p.weight)
		matched = append(matched, p.phrase)
	}

	score = c.applyIntensity(text, score)

	switch {
	case score >= c.highThreshold:
		return DistressHigh, score, matched
	case score > 0:
		return DistressMild, score, matched
	default:
		return DistressNone, score, matched
	}
}

// applyIntensity applies the three modifiers in order: the adverb multiplier
// (once, non-compounding), then exclamation marks, then ALL-CAPS tokens.
func (c *DistressClassifier) applyIntensity(text string, score float64) float64 {
	for _, adverb := range c.adverbs {
		if adverb.re.MatchString(text) {
			score *= c.multiplier
			break
		}
	}

	score += c.exclWeight * float64(strings.Count(text, "!"))
	score += c.capsWeight * float64(countCapsTokens(text))

	return score
}

// countCapsTokens counts whitespace-delimited tokens of length >= 2 that
// contain at least one letter and no lowercase letters, a shouting signal.
func countCapsTokens(text string) int {
	count := 0
	for _, token := range strings.Fields(text) {
		if utf8.RuneCountInString(token) < 2 {
			continue
		}
		hasUpper := false
		hasLower := false
		for _, r := range token {
			if unicode.IsLower(r) {
				hasLower = true
				break
			}
			if unicode.IsUpper(r) {
				hasUpper = true
			}
		}
		if hasUpper && !hasLower {
			count++
		}
	}
	return count
}
