package classification

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/mindwell-labs/support-router/pkg/lexicon"
)

// DefaultNegationWindow is how many characters preceding a phrase match are
// inspected for negation.
const DefaultNegationWindow = 30

// phrasePattern couples a lowercase phrase with its precompiled
// case-insensitive word-boundary regex.
type phrasePattern struct {
	phrase string
	re     *regexp.Regexp
}

// compilePhrase builds the matching regex for a phrase. Phrases containing
// word characters are wrapped in \b so "over" cannot match inside
// "overwhelmed"; multi-word phrases match only as contiguous word sequences.
func compilePhrase(phrase string) (*regexp.Regexp, error) {
	pattern := regexp.QuoteMeta(phrase)
	if hasWordChar(phrase) {
		pattern = `\b` + pattern + `\b`
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern for phrase %q: %w", phrase, err)
	}
	return re, nil
}

func compilePhrases(phrases []string) ([]phrasePattern, error) {
	prepped := make([]phrasePattern, 0, len(phrases))
	for _, phrase := range phrases {
		re, err := compilePhrase(phrase)
		if err != nil {
			return nil, err
		}
		prepped = append(prepped, phrasePattern{phrase: phrase, re: re})
	}
	return prepped, nil
}

func hasWordChar(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return true
		}
	}
	return false
}

// Matches reports whether phrase occurs in text constrained to word
// boundaries, case-insensitively. Classifiers precompile their tables; this
// entry point compiles on the fly and suits one-off checks.
func Matches(phrase, text string) bool {
	re, err := compilePhrase(phrase)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// NegationChecker detects whether a phrase match is preceded by negating
// vocabulary and therefore should not contribute to distress scoring.
type NegationChecker struct {
	window      int
	compound    []phrasePattern // negation+modifier: "not at all", "never really"
	intensified []phrasePattern // negation+intensifier: "not so", "not very"
	bare        []phrasePattern // "not", "never", "doesn't", ...
	diminishers []phrasePattern // "hardly", "barely", "scarcely"
}

// NewNegationChecker builds a checker over the built-in negation vocabulary.
// window <= 0 selects DefaultNegationWindow.
func NewNegationChecker(window int) (*NegationChecker, error) {
	if window <= 0 {
		window = DefaultNegationWindow
	}
	compound, err := compilePhrases(lexicon.CompoundNegations())
	if err != nil {
		return nil, err
	}
	intensified, err := compilePhrases(lexicon.NegatedIntensifiers())
	if err != nil {
		return nil, err
	}
	bare, err := compilePhrases(lexicon.BareNegations())
	if err != nil {
		return nil, err
	}
	diminishers, err := compilePhrases(lexicon.Diminishers())
	if err != nil {
		return nil, err
	}
	return &NegationChecker{
		window:      window,
		compound:    compound,
		intensified: intensified,
		bare:        bare,
		diminishers: diminishers,
	}, nil
}

// IsNegated reports whether the match starting at matchPos in text is
// preceded, within the look-behind window, by negating vocabulary. Compound
// patterns are checked before negated intensifiers, which are checked before
// bare negations and diminishers.
func (n *NegationChecker) IsNegated(text string, matchPos int) bool {
	if matchPos <= 0 || matchPos > len(text) {
		return false
	}
	start := matchPos - n.window
	if start < 0 {
		start = 0
	}
	// Never slice into the middle of a rune.
	for start > 0 && start < len(text) && !utf8.RuneStart(text[start]) {
		start++
	}
	prefix := text[start:matchPos]

	for _, group := range [][]phrasePattern{n.compound, n.intensified, n.bare, n.diminishers} {
		for _, p := range group {
			if p.re.MatchString(prefix) {
				return true
			}
		}
	}
	return false
}
