package classification

import "strings"

// CrisisClassifier detects explicit self-harm or suicide intent. It is the
// highest-priority detector in the router: a positive result overrides every
// other classifier.
//
// Matching is plain case-insensitive substring, and negation suppression is
// deliberately not applied — "I will never hurt myself" still fires. Missing
// a real crisis costs far more than a false positive.
type CrisisClassifier struct {
	phrases []string
}

// NewCrisisClassifier builds a classifier over the given phrase set.
func NewCrisisClassifier(phrases []string) *CrisisClassifier {
	lowered := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			lowered = append(lowered, p)
		}
	}
	return &CrisisClassifier{phrases: lowered}
}

// Detect reports whether text contains any crisis phrase.
func (c *CrisisClassifier) Detect(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range c.phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
