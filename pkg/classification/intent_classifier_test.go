package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell-labs/support-router/pkg/lexicon"
)

func newIntentClassifier(t *testing.T) *IntentClassifier {
	t.Helper()
	c, err := NewIntentClassifier(lexicon.ExplicitIntentGroups())
	require.NoError(t, err)
	return c
}

func TestExplicitIntentDetection(t *testing.T) {
	c := newIntentClassifier(t)

	tests := []struct {
		text string
		want string
	}{
		{"I want to take an assessment", lexicon.LabelAssessment},
		{"Can you test my mental health?", lexicon.LabelAssessment},
		{"Where can I find a therapist in Singapore?", lexicon.LabelResource},
		{"I need professional help services", lexicon.LabelResource},
		{"I want to talk to a real person", lexicon.LabelEscalation},
		{"Can I speak to a human counselor?", lexicon.LabelEscalation},
		{"How are you feeling today?", ""},
		{"What is anxiety?", ""},
		// "help" alone is ambiguous and must fall through to distress
		// scoring rather than match the resource group.
		{"I need help", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Detect(tt.text))
		})
	}
}

func TestIntentDetectsServiceMenuVocabulary(t *testing.T) {
	c := newIntentClassifier(t)

	// Menu-style service names typed without a pending menu still route to
	// the resource handler.
	for _, text := range []string{
		"Support services in Singapore",
		"IMH Helpline",
		"SOS Hotline",
		"CHAT service",
		"therapy",
		"where can i get help",
	} {
		assert.Equal(t, lexicon.LabelResource, c.Detect(text), "text %q", text)
	}
}

func TestIntentPriorityOverridesDistressVocabulary(t *testing.T) {
	c := newIntentClassifier(t)

	tests := []struct {
		text string
		want string
	}{
		{"I'm feeling anxious and want to take an assessment", lexicon.LabelAssessment},
		{"I'm worried and need to find a therapist", lexicon.LabelResource},
		{"I feel sad but want to talk to a counselor", lexicon.LabelEscalation},
		{"I'm depressed, can you test me?", lexicon.LabelAssessment},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Detect(tt.text))
		})
	}
}

func TestAssessmentOutranksResource(t *testing.T) {
	c := newIntentClassifier(t)

	// Both groups match; the assessment group is evaluated first.
	assert.Equal(t, lexicon.LabelAssessment, c.Detect("can my therapist give me an assessment"))
}
