package classification

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mindwell-labs/support-router/pkg/lexicon"
)

var optionNumberRe = regexp.MustCompile(`(?i)\boption\s+(\d+)\b`)

// MenuClassifier recognizes replies that select among the options a handler
// most recently presented: a bare in-range number, an ordinal word
// ("first", "second one", "the third"), or "option N".
type MenuClassifier struct {
	ordinals  map[string]int
	indicator []phrasePattern
}

// NewMenuClassifier builds a classifier. resourceIndicators is the
// vocabulary that marks a selected option as a concrete service.
func NewMenuClassifier(resourceIndicators []string) (*MenuClassifier, error) {
	indicator, err := compilePhrases(resourceIndicators)
	if err != nil {
		return nil, err
	}
	return &MenuClassifier{
		ordinals:  lexicon.OrdinalWords(),
		indicator: indicator,
	}, nil
}

// DetectReply reports whether text selects one of options. Always false when
// no menu was shown; an out-of-range number is not a reply, so the message
// falls through to the next priority tier.
func (c *MenuClassifier) DetectReply(text string, options []string) bool {
	return c.selectionIndex(text, len(options)) > 0
}

// ExtractSelection returns the original text of the selected option, or ""
// when text is not a menu reply.
func (c *MenuClassifier) ExtractSelection(text string, options []string) string {
	idx := c.selectionIndex(text, len(options))
	if idx == 0 {
		return ""
	}
	return options[idx-1]
}

// IsResourceSelection reports whether a selected option names a concrete
// service (hotline, therapy, ...) and should route to the resource handler
// instead of the default information handler.
func (c *MenuClassifier) IsResourceSelection(selection string) bool {
	for _, p := range c.indicator {
		if p.re.MatchString(selection) {
			return true
		}
	}
	return false
}

// selectionIndex resolves text to a 1-based option index, or 0 when text is
// not a reply or the index is out of range.
func (c *MenuClassifier) selectionIndex(text string, optionCount int) int {
	if optionCount == 0 {
		return 0
	}

	idx := 0
	trimmed := strings.TrimSpace(text)

	if n, err := strconv.Atoi(trimmed); err == nil {
		idx = n
	} else if m := optionNumberRe.FindStringSubmatch(trimmed); m != nil {
		idx, _ = strconv.Atoi(m[1])
	} else {
		idx = c.earliestOrdinal(strings.ToLower(trimmed))
	}

	if idx < 1 || idx > optionCount {
		return 0
	}
	return idx
}

// earliestOrdinal returns the position mapped by the ordinal word occurring
// first in text, so "the second, not the third" resolves to 2.
func (c *MenuClassifier) earliestOrdinal(lower string) int {
	best, bestPos := 0, -1
	for word, position := range c.ordinals {
		at := indexWord(lower, word)
		if at < 0 {
			continue
		}
		if bestPos == -1 || at < bestPos {
			best, bestPos = position, at
		}
	}
	return best
}

// indexWord finds word in text on word boundaries, returning -1 when absent.
func indexWord(text, word string) int {
	for from := 0; from < len(text); {
		at := strings.Index(text[from:], word)
		if at < 0 {
			return -1
		}
		at += from
		end := at + len(word)
		if boundaryBefore(text, at) && boundaryAfter(text, end) {
			return at
		}
		from = at + 1
	}
	return -1
}

func boundaryBefore(text string, at int) bool {
	return at == 0 || !isWordByte(text[at-1])
}

func boundaryAfter(text string, end int) bool {
	return end >= len(text) || !isWordByte(text[end])
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
