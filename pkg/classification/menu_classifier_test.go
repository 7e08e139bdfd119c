package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell-labs/support-router/pkg/lexicon"
)

func newMenuClassifier(t *testing.T) *MenuClassifier {
	t.Helper()
	c, err := NewMenuClassifier(lexicon.ResourceIndicators())
	require.NoError(t, err)
	return c
}

func TestMenuReplyDetection(t *testing.T) {
	c := newMenuClassifier(t)

	options := []string{
		"Learn about anxiety management",
		"Find local support groups",
		"Take a mental health assessment",
	}

	tests := []struct {
		text          string
		wantReply     bool
		wantSelection string
	}{
		{"1", true, "Learn about anxiety management"},
		{"2", true, "Find local support groups"},
		{"3", true, "Take a mental health assessment"},
		{" 2 ", true, "Find local support groups"},
		{"4", false, ""}, // out of range
		{"0", false, ""},
		{"-1", false, ""},
		{"first", true, "Learn about anxiety management"},
		{"second one", true, "Find local support groups"},
		{"the third", true, "Take a mental health assessment"},
		{"option 2", true, "Find local support groups"},
		{"Option 1 please", true, "Learn about anxiety management"},
		{"hello", false, ""},
		{"I'd like something else", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.wantReply, c.DetectReply(tt.text, options))
			assert.Equal(t, tt.wantSelection, c.ExtractSelection(tt.text, options))
		})
	}
}

func TestMenuReplyRequiresOptions(t *testing.T) {
	c := newMenuClassifier(t)

	assert.False(t, c.DetectReply("1", nil))
	assert.Equal(t, "", c.ExtractSelection("first", nil))
}

func TestExtractSelectionReturnsMemberOrEmpty(t *testing.T) {
	c := newMenuClassifier(t)

	options := []string{"Hotline A", "Therapy B", "Talk C"}
	for _, text := range []string{"1", "2", "3", "4", "second", "nope", ""} {
		got := c.ExtractSelection(text, options)
		if got == "" {
			continue
		}
		assert.Contains(t, options, got)
	}
}

func TestEarliestOrdinalWins(t *testing.T) {
	c := newMenuClassifier(t)

	options := []string{"A", "B", "C"}
	assert.Equal(t, "B", c.ExtractSelection("the second, not the third", options))
}

func TestIsResourceSelection(t *testing.T) {
	c := newMenuClassifier(t)

	tests := []struct {
		selection string
		want      bool
	}{
		{"Hotline A", true},
		{"Therapy B", true},
		{"IMH CHAT service", true},
		{"SOS helpline", true},
		{"Talk C", false},
		{"Learn about anxiety management", false},
		{"Find local support groups", false}, // "groups" is not "group"
	}

	for _, tt := range tests {
		t.Run(tt.selection, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsResourceSelection(tt.selection))
		})
	}
}
