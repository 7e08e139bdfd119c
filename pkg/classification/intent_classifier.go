package classification

import "github.com/mindwell-labs/support-router/pkg/lexicon"

// IntentClassifier recognizes requests that name a specific downstream
// capability rather than expressing emotional state. Groups are evaluated in
// fixed priority order and the first match wins, so an explicit request
// outranks any distress the same message scores.
type IntentClassifier struct {
	groups []intentGroup
}

type intentGroup struct {
	label    string
	patterns []phrasePattern
}

// NewIntentClassifier builds a classifier over the ordered intent groups.
func NewIntentClassifier(groups []lexicon.IntentGroup) (*IntentClassifier, error) {
	prepped := make([]intentGroup, 0, len(groups))
	for _, g := range groups {
		patterns, err := compilePhrases(g.Phrases)
		if err != nil {
			return nil, err
		}
		prepped = append(prepped, intentGroup{label: g.Label, patterns: patterns})
	}
	return &IntentClassifier{groups: prepped}, nil
}

// Detect returns the label of the first intent group with a matching phrase,
// or "" when the message names no capability.
func (c *IntentClassifier) Detect(text string) string {
	for _, g := range c.groups {
		for _, p := range g.patterns {
			if p.re.MatchString(text) {
				return g.label
			}
		}
	}
	return ""
}
