package decision

import (
	"testing"

	"github.com/mindwell-labs/support-router/pkg/classification"
	"github.com/mindwell-labs/support-router/pkg/config"
	"github.com/mindwell-labs/support-router/pkg/session"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(nil)
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	return e
}

func TestRouteTiers(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name       string
		text       string
		wantTarget Target
		wantTier   string
		wantCrisis bool
		wantLevel  classification.DistressLevel
	}{
		{
			name:       "crisis phrase",
			text:       "I want to kill myself",
			wantTarget: TargetCrisis,
			wantTier:   TierCrisis,
			wantCrisis: true,
			wantLevel:  classification.DistressNone,
		},
		{
			name:       "crisis despite negation",
			text:       "I don't want to die",
			wantTarget: TargetCrisis,
			wantTier:   TierCrisis,
			wantCrisis: true,
			wantLevel:  classification.DistressNone,
		},
		{
			name:       "explicit assessment intent",
			text:       "I want to take an assessment",
			wantTarget: TargetAssessment,
			wantTier:   TierExplicitIntent,
			wantLevel:  classification.DistressNone,
		},
		{
			name:       "explicit resource intent",
			text:       "Where can I find a therapist?",
			wantTarget: TargetResource,
			wantTier:   TierExplicitIntent,
			wantLevel:  classification.DistressNone,
		},
		{
			name:       "explicit escalation intent",
			text:       "I want to talk to a real person",
			wantTarget: TargetEscalation,
			wantTier:   TierExplicitIntent,
			wantLevel:  classification.DistressNone,
		},
		{
			name:       "intent outranks distress",
			text:       "I'm anxious, can you test me?",
			wantTarget: TargetAssessment,
			wantTier:   TierExplicitIntent,
			wantLevel:  classification.DistressMild,
		},
		{
			name:       "high distress",
			text:       "I feel hopeless",
			wantTarget: TargetInformation,
			wantTier:   TierDistress,
			wantLevel:  classification.DistressHigh,
		},
		{
			name:       "mild distress",
			text:       "I'm a bit sad today",
			wantTarget: TargetInformation,
			wantTier:   TierDistress,
			wantLevel:  classification.DistressMild,
		},
		{
			name:       "negated distress falls through",
			text:       "I'm not sad",
			wantTarget: TargetInformation,
			wantTier:   TierFallback,
			wantLevel:  classification.DistressNone,
		},
		{
			name:       "education fallback",
			text:       "tell me about anxiety",
			wantTarget: TargetInformation,
			wantTier:   TierFallback,
			wantLevel:  classification.DistressNone,
		},
		{
			name:       "escalation fallback",
			text:       "can someone listen",
			wantTarget: TargetEscalation,
			wantTier:   TierFallback,
			wantLevel:  classification.DistressNone,
		},
		{
			name:       "greeting fallback",
			text:       "hello",
			wantTarget: TargetInformation,
			wantTier:   TierFallback,
			wantLevel:  classification.DistressNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := e.Route(tt.text, session.NewState())
			if d.TargetAgent != tt.wantTarget {
				t.Errorf("Route(%q) target = %q, want %q", tt.text, d.TargetAgent, tt.wantTarget)
			}
			if d.Tier != tt.wantTier {
				t.Errorf("Route(%q) tier = %q, want %q", tt.text, d.Tier, tt.wantTier)
			}
			if d.CrisisDetected != tt.wantCrisis {
				t.Errorf("Route(%q) crisis = %v, want %v", tt.text, d.CrisisDetected, tt.wantCrisis)
			}
			if d.DistressLevel != tt.wantLevel {
				t.Errorf("Route(%q) distress = %q, want %q", tt.text, d.DistressLevel, tt.wantLevel)
			}
		})
	}
}

func TestRouteMenuReplies(t *testing.T) {
	e := newTestEngine(t)
	options := []string{"Hotline A", "Therapy B", "Talk C"}

	tests := []struct {
		name          string
		text          string
		wantTarget    Target
		wantTier      string
		wantSelection string
	}{
		{
			name:          "numeric reply to resource option",
			text:          "2",
			wantTarget:    TargetResource,
			wantTier:      TierMenuReply,
			wantSelection: "Therapy B",
		},
		{
			name:          "ordinal reply to resource option",
			text:          "first",
			wantTarget:    TargetResource,
			wantTier:      TierMenuReply,
			wantSelection: "Hotline A",
		},
		{
			name:          "reply to non-resource option",
			text:          "3",
			wantTarget:    TargetInformation,
			wantTier:      TierMenuReply,
			wantSelection: "Talk C",
		},
		{
			name:       "out of range falls through",
			text:       "4",
			wantTarget: TargetInformation,
			wantTier:   TierFallback,
		},
		{
			name:       "non-reply text falls through",
			text:       "tell me about anxiety",
			wantTarget: TargetInformation,
			wantTier:   TierFallback,
		},
		{
			name:       "crisis overrides pending menu",
			text:       "I want to end my life",
			wantTarget: TargetCrisis,
			wantTier:   TierCrisis,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := session.NewState()
			sess.SetMenuOptions(options)

			d := e.Route(tt.text, sess)
			if d.TargetAgent != tt.wantTarget {
				t.Errorf("Route(%q) target = %q, want %q", tt.text, d.TargetAgent, tt.wantTarget)
			}
			if d.Tier != tt.wantTier {
				t.Errorf("Route(%q) tier = %q, want %q", tt.text, d.Tier, tt.wantTier)
			}
			if d.MenuSelection != tt.wantSelection {
				t.Errorf("Route(%q) selection = %q, want %q", tt.text, d.MenuSelection, tt.wantSelection)
			}
			// The engine never consumes the pending menu; that is the
			// presenting handler's job.
			if got := len(sess.MenuOptions()); got != len(options) {
				t.Errorf("Route(%q) left %d menu options, want %d", tt.text, got, len(options))
			}
		})
	}
}

func TestRouteWithoutPendingMenu(t *testing.T) {
	e := newTestEngine(t)

	// A bare number with no menu pending is not a reply.
	d := e.Route("2", session.NewState())
	if d.Tier == TierMenuReply {
		t.Fatalf("Route(\"2\") tier = %q without a pending menu", d.Tier)
	}
}

func TestRouteIncrementsTurnCount(t *testing.T) {
	e := newTestEngine(t)
	sess := session.NewState()

	e.Route("hello", sess)
	e.Route("I feel sad", sess)
	if got := sess.TurnCount(); got != 2 {
		t.Errorf("TurnCount() = %d, want 2", got)
	}
}

func TestRouteNilSession(t *testing.T) {
	e := newTestEngine(t)

	d := e.Route("hello", nil)
	if d.TargetAgent != TargetInformation {
		t.Errorf("Route with nil session target = %q, want %q", d.TargetAgent, TargetInformation)
	}
}

func TestRouteAttachesDistressToEveryDecision(t *testing.T) {
	e := newTestEngine(t)

	// The explicit-intent tier wins, but distress still rides along.
	d := e.Route("I'm worried and need to find a therapist", session.NewState())
	if d.TargetAgent != TargetResource {
		t.Fatalf("target = %q, want %q", d.TargetAgent, TargetResource)
	}
	if d.DistressLevel != classification.DistressMild {
		t.Errorf("distress = %q, want %q", d.DistressLevel, classification.DistressMild)
	}
	if d.DistressScore <= 0 {
		t.Errorf("score = %v, want > 0", d.DistressScore)
	}
}

func TestRouteIsDeterministic(t *testing.T) {
	e := newTestEngine(t)

	first := e.Route("I'm really overwhelmed!!!", session.NewState())
	for i := 0; i < 10; i++ {
		d := e.Route("I'm really overwhelmed!!!", session.NewState())
		if d != first {
			t.Fatalf("decision %d = %+v, want %+v", i, d, first)
		}
	}
}

func TestRouteConfiguredThreshold(t *testing.T) {
	cfg := config.Default()
	cfg.Distress.HighThreshold = 10

	e, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}

	// "hopeless" scores 5.0: high under the default threshold, mild here.
	d := e.Route("I feel hopeless", session.NewState())
	if d.DistressLevel != classification.DistressMild {
		t.Errorf("distress = %q, want %q", d.DistressLevel, classification.DistressMild)
	}
	if d.TargetAgent != TargetInformation || d.Tier != TierDistress {
		t.Errorf("decision = %+v, want information via distress tier", d)
	}
}
