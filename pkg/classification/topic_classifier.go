package classification

import "github.com/mindwell-labs/support-router/pkg/lexicon"

// TopicClassifier is the fallback tier: pure keyword lookup over ordered
// topic groups, so coarse routing never needs a generative call. No scoring,
// first group with a hit wins.
type TopicClassifier struct {
	groups []topicGroup
}

type topicGroup struct {
	label    string
	patterns []phrasePattern
}

// NewTopicClassifier builds a classifier over the ordered topic groups.
func NewTopicClassifier(groups []lexicon.TopicGroup) (*TopicClassifier, error) {
	prepped := make([]topicGroup, 0, len(groups))
	for _, g := range groups {
		patterns, err := compilePhrases(g.Keywords)
		if err != nil {
			return nil, err
		}
		prepped = append(prepped, topicGroup{label: g.Label, patterns: patterns})
	}
	return &TopicClassifier{groups: prepped}, nil
}

// Classify returns the label of the first topic group with a keyword hit,
// defaulting to the general-information label.
func (c *TopicClassifier) Classify(text string) string {
	for _, g := range c.groups {
		for _, p := range g.patterns {
			if p.re.MatchString(text) {
				return g.label
			}
		}
	}
	return lexicon.LabelGeneral
}
