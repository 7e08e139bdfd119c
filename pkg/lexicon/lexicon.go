// Package lexicon holds the built-in phrase tables the classifiers match
// against. Tables are constructed once at process start and must never be
// mutated afterwards; accessors hand out copies so callers can merge in
// config-supplied phrases without touching the defaults.
package lexicon

import "fmt"

// PhraseWeights maps a lowercase phrase (which may contain spaces) to the
// score it contributes when matched.
type PhraseWeights map[string]int

const (
	// HighWeight is the contribution of a severe-distress phrase.
	HighWeight = 5
	// MildWeight is the contribution of a general-distress phrase.
	MildWeight = 1
)

// highDistress covers severe emotional states that on their own push a
// message over the high-distress threshold.
var highDistress = PhraseWeights{
	"don't feel good": HighWeight, "dont feel good": HighWeight, "not feel good": HighWeight,
	"feel terrible": HighWeight, "feel awful": HighWeight, "feel horrible": HighWeight,
	"can't take it": HighWeight, "cant take it": HighWeight, "can't take this": HighWeight,
	"breaking down": HighWeight, "falling apart": HighWeight, "falling to pieces": HighWeight,
	"overwhelmed": HighWeight, "can't cope": HighWeight, "cant cope": HighWeight,
	"losing it": HighWeight, "giving up": HighWeight, "lost control": HighWeight,
	"can't breathe": HighWeight, "cant breathe": HighWeight, "suffocating": HighWeight,
	"drowning": HighWeight, "sinking": HighWeight, "spiraling": HighWeight,
	"can't handle": HighWeight, "cant handle": HighWeight, "too much": HighWeight,
	"breaking": HighWeight, "broken": HighWeight, "shattered": HighWeight,
	"devastated": HighWeight, "destroyed": HighWeight, "crushed": HighWeight,
	"unbearable": HighWeight, "agonizing": HighWeight, "tormented": HighWeight,
	"desperate": HighWeight, "hopeless": HighWeight, "no hope": HighWeight,
	"worthless": HighWeight, "useless": HighWeight, "failure": HighWeight,
	"empty inside": HighWeight, "hollow": HighWeight, "void": HighWeight,
	"paralyzed": HighWeight, "frozen": HighWeight, "trapped": HighWeight,
	"ruined": HighWeight, "over": HighWeight, "done": HighWeight,
	"hate myself": HighWeight, "hate my life": HighWeight, "want to disappear": HighWeight,
	"nothing matters": HighWeight, "why bother": HighWeight, "what's the point": HighWeight,
}

// mildDistress covers general low-mood and help-seeking vocabulary. Bare
// emotion words stand in for their "feeling X" variants; compound phrases
// whose words also appear as standalone keys ("stressed out") deliberately
// score both.
var mildDistress = PhraseWeights{
	"feel bad": MildWeight, "feeling blue": MildWeight, "down in the dumps": MildWeight,
	"sad": MildWeight, "depressed": MildWeight, "anxious": MildWeight,
	"stressed": MildWeight, "down": MildWeight, "melancholy": MildWeight,
	"stressed out": MildWeight, "burnt out": MildWeight,
	"not okay": MildWeight, "not ok": MildWeight, "not well": MildWeight, "unwell": MildWeight,
	"struggling": MildWeight, "hard time": MildWeight, "difficult time": MildWeight,
	"tough time": MildWeight, "rough time": MildWeight, "bad day": MildWeight,
	"exhausted": MildWeight, "drained": MildWeight, "tired": MildWeight, "worn out": MildWeight,
	"worried": MildWeight, "scared": MildWeight, "afraid": MildWeight, "fearful": MildWeight,
	"lonely": MildWeight, "alone": MildWeight, "isolated": MildWeight, "disconnected": MildWeight,
	"helpless": MildWeight, "powerless": MildWeight, "stuck": MildWeight,
	"empty": MildWeight, "numb": MildWeight, "detached": MildWeight,
	"anxious mess": MildWeight, "emotional wreck": MildWeight, "emotional": MildWeight,
	"can't focus": MildWeight, "cant focus": MildWeight, "distracted": MildWeight,
	"irritable": MildWeight, "restless": MildWeight, "tense": MildWeight, "uneasy": MildWeight,
	"overthinking": MildWeight, "ruminating": MildWeight, "obsessing": MildWeight,
	"doubting myself": MildWeight, "insecure": MildWeight,
	"frustrated": MildWeight, "angry": MildWeight, "upset": MildWeight,
	"unhappy": MildWeight, "hurt": MildWeight, "bothered": MildWeight,
	"need help": MildWeight, "confused": MildWeight,
	"not sure": MildWeight, "don't know": MildWeight, "dont know": MildWeight,
	"need someone": MildWeight, "need to talk": MildWeight, "someone to talk to": MildWeight,
}

// crisisPhrases signal an unconditional safety emergency. Matched as plain
// substrings and never suppressed by negation: "I will never hurt myself"
// still fires, a deliberate bias toward never missing a crisis.
var crisisPhrases = []string{
	"suicide", "suicidal", "kill myself", "end my life", "want to die",
	"self harm", "hurt myself", "cutting", "overdose", "no reason to live",
	"better off dead", "can't go on", "end it all",
}

// Explicit-intent labels, also used as fallback topic labels where they
// coincide.
const (
	LabelAssessment = "assessment"
	LabelResource   = "resource"
	LabelEscalation = "human_escalation"
	LabelEducation  = "education"
	LabelGeneral    = "general"
)

// IntentGroup is one (label, phrase-set) entry of the ordered explicit-intent
// rules.
type IntentGroup struct {
	Label   string
	Phrases []string
}

// explicitIntentGroups are evaluated in order; the first group with a match
// wins. Assessment outranks resource outranks human escalation.
var explicitIntentGroups = []IntentGroup{
	{
		Label: LabelAssessment,
		Phrases: []string{
			"assessment", "assess me", "test me", "test my mental",
			"mental health test", "screening", "questionnaire", "dass",
			"dass-21", "take a test", "evaluate me", "check my mental",
		},
	},
	{
		Label: LabelResource,
		Phrases: []string{
			"therapist", "therapy", "hotline", "helpline", "imh", "sos",
			"support service", "support services", "support group",
			"support groups", "professional help", "mental health services",
			"where can i get help", "where can i find", "chat service",
			"clinic",
		},
	},
	{
		Label: LabelEscalation,
		Phrases: []string{
			"real person", "talk to a person", "speak to a person",
			"human", "talk to someone", "speak to someone",
			"counselor", "counsellor", "live agent",
		},
	},
}

// TopicGroup is one (label, keyword-set) entry of the fallback topic
// classifier.
type TopicGroup struct {
	Label    string
	Keywords []string
}

// topicGroups drive the fallback classifier: coarse keyword routing so
// general queries never need a generative call just to pick a handler.
var topicGroups = []TopicGroup{
	{
		Label:    LabelAssessment,
		Keywords: []string{"assess", "test", "scale", "dass", "questionnaire", "screening", "evaluation"},
	},
	{
		Label:    LabelResource,
		Keywords: []string{"service", "services", "doctor", "therapist", "therapy", "hotline", "helpline", "where", "clinic", "counseling"},
	},
	{
		Label:    LabelEscalation,
		Keywords: []string{"human", "person", "someone", "talk", "speak", "vent", "listen"},
	},
	{
		Label:    LabelEducation,
		Keywords: []string{"anxiety", "depression", "stress", "mental health", "wellbeing", "coping", "mindfulness", "explain", "learn", "understand"},
	},
}

// intensityAdverbs trigger the single 1.5x score multiplier. The multiplier
// does not compound across multiple adverbs.
var intensityAdverbs = []string{
	"very", "really", "so", "extremely", "incredibly", "totally",
	"completely", "absolutely", "utterly", "quite",
}

// Negation vocabulary, checked against the text immediately preceding a
// distress match. Compound patterns are checked before bare words.
var (
	compoundNegations   = []string{"not at all", "not really", "never really", "don't really", "doesn't really"}
	negatedIntensifiers = []string{"not that", "not so", "not too", "not very"}
	bareNegations       = []string{
		"not", "no", "never",
		"don't", "dont", "doesn't", "doesnt", "didn't", "didnt",
		"isn't", "isnt", "wasn't", "wasnt", "aren't", "arent",
		"won't", "wont",
	}
	diminishers = []string{"hardly", "barely", "scarcely"}
)

// ordinalWords map positional replies onto 1-based menu indices.
var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
}

// resourceIndicators flag a selected menu option as a concrete service,
// re-routing the reply to the resource handler instead of the default
// information handler.
var resourceIndicators = []string{
	"hotline", "helpline", "chat", "imh", "sos", "service", "services",
	"therapy", "counseling", "counselling", "support group",
}

// HighDistress returns a copy of the severe-distress table.
func HighDistress() PhraseWeights { return copyWeights(highDistress) }

// MildDistress returns a copy of the general-distress table.
func MildDistress() PhraseWeights { return copyWeights(mildDistress) }

// CrisisPhrases returns a copy of the crisis phrase set.
func CrisisPhrases() []string { return copyStrings(crisisPhrases) }

// ExplicitIntentGroups returns a copy of the ordered explicit-intent rules.
func ExplicitIntentGroups() []IntentGroup {
	out := make([]IntentGroup, len(explicitIntentGroups))
	for i, g := range explicitIntentGroups {
		out[i] = IntentGroup{Label: g.Label, Phrases: copyStrings(g.Phrases)}
	}
	return out
}

// TopicGroups returns a copy of the ordered fallback topic groups.
func TopicGroups() []TopicGroup {
	out := make([]TopicGroup, len(topicGroups))
	for i, g := range topicGroups {
		out[i] = TopicGroup{Label: g.Label, Keywords: copyStrings(g.Keywords)}
	}
	return out
}

// IntensityAdverbs returns a copy of the intensifier adverb list.
func IntensityAdverbs() []string { return copyStrings(intensityAdverbs) }

// CompoundNegations returns a copy of the negation+modifier patterns.
func CompoundNegations() []string { return copyStrings(compoundNegations) }

// NegatedIntensifiers returns a copy of the negation+intensifier patterns.
func NegatedIntensifiers() []string { return copyStrings(negatedIntensifiers) }

// BareNegations returns a copy of the bare negation words.
func BareNegations() []string { return copyStrings(bareNegations) }

// Diminishers returns a copy of the diminisher words.
func Diminishers() []string { return copyStrings(diminishers) }

// OrdinalWords returns a copy of the ordinal-word → position map.
func OrdinalWords() map[string]int {
	out := make(map[string]int, len(ordinalWords))
	for k, v := range ordinalWords {
		out[k] = v
	}
	return out
}

// ResourceIndicators returns a copy of the resource-indicator vocabulary.
func ResourceIndicators() []string { return copyStrings(resourceIndicators) }

// ValidateDisjoint reports an error if any phrase appears in both tables.
// Duplicate keys would silently double a phrase's weight, so merged tables
// are checked at load time.
func ValidateDisjoint(high, mild PhraseWeights) error {
	for phrase := range high {
		if _, ok := mild[phrase]; ok {
			return fmt.Errorf("phrase %q present in both high and mild distress tables", phrase)
		}
	}
	return nil
}

func copyWeights(src PhraseWeights) PhraseWeights {
	out := make(PhraseWeights, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func copyStrings(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}
