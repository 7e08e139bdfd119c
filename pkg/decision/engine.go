// Package decision composes the classifiers into one ordered routing
// decision per message.
package decision

import (
	"time"

	"github.com/mindwell-labs/support-router/pkg/classification"
	"github.com/mindwell-labs/support-router/pkg/config"
	"github.com/mindwell-labs/support-router/pkg/lexicon"
	"github.com/mindwell-labs/support-router/pkg/observability/logging"
	"github.com/mindwell-labs/support-router/pkg/observability/metrics"
	"github.com/mindwell-labs/support-router/pkg/session"
)

// Target identifies the specialized handler a message is dispatched to.
type Target string

const (
	TargetCrisis      Target = "crisis"
	TargetAssessment  Target = "assessment"
	TargetResource    Target = "resource"
	TargetEscalation  Target = "human_escalation"
	TargetInformation Target = "information"
)

// Priority tier names, in evaluation order.
const (
	TierCrisis         = "crisis"
	TierMenuReply      = "menu_reply"
	TierExplicitIntent = "explicit_intent"
	TierDistress       = "distress"
	TierFallback       = "fallback"
)

// RoutingDecision is the engine's output for one message. It is produced
// fresh per message and consumed once by the dispatch layer.
type RoutingDecision struct {
	TargetAgent    Target
	CrisisDetected bool

	// Distress is always computed and attached, even when a higher-priority
	// tier picked the target, so handlers can adjust tone.
	DistressLevel classification.DistressLevel
	DistressScore float64

	// MenuSelection carries the original text of the resolved option when
	// the menu-reply tier fired.
	MenuSelection string

	// Tier names the priority tier that produced the decision.
	Tier string
}

// routeInput carries one message through the tier chain with its
// precomputed distress level, so no tier rescores.
type routeInput struct {
	text  string
	sess  *session.State
	level classification.DistressLevel
}

// tier pairs a name with its decision producer. Keeping the priority chain
// as an explicit ordered list makes the order auditable and each tier
// independently testable.
type tier struct {
	name     string
	evaluate func(in routeInput) (RoutingDecision, bool)
}

// Engine evaluates the priority tiers for each inbound message. It is pure
// and synchronous: no I/O, deterministic given its inputs, safe for
// concurrent use across sessions.
type Engine struct {
	crisis   *classification.CrisisClassifier
	menu     *classification.MenuClassifier
	intent   *classification.IntentClassifier
	distress *classification.DistressClassifier
	topics   *classification.TopicClassifier

	tiers []tier
}

// NewEngine builds an engine from cfg; nil selects defaults.
func NewEngine(cfg *config.RouterConfig) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	distress, err := classification.NewDistressClassifier(cfg)
	if err != nil {
		return nil, err
	}
	intent, err := classification.NewIntentClassifier(lexicon.ExplicitIntentGroups())
	if err != nil {
		return nil, err
	}
	menu, err := classification.NewMenuClassifier(cfg.ResourceIndicators())
	if err != nil {
		return nil, err
	}
	topics, err := classification.NewTopicClassifier(lexicon.TopicGroups())
	if err != nil {
		return nil, err
	}

	e := &Engine{
		crisis:   classification.NewCrisisClassifier(cfg.CrisisPhrases()),
		menu:     menu,
		intent:   intent,
		distress: distress,
		topics:   topics,
	}
	e.tiers = []tier{
		{name: TierCrisis, evaluate: e.evaluateCrisis},
		{name: TierMenuReply, evaluate: e.evaluateMenuReply},
		{name: TierExplicitIntent, evaluate: e.evaluateExplicitIntent},
		{name: TierDistress, evaluate: e.evaluateDistress},
		{name: TierFallback, evaluate: e.evaluateFallback},
	}
	return e, nil
}

// Route evaluates the priority tiers for one message and returns the
// decision. The fallback tier is total, so Route always returns one.
//
// Side effect: increments sess.TurnCount. Route never touches the pending
// menu options; clearing or replacing them belongs to whichever handler next
// presents a menu.
func (e *Engine) Route(text string, sess *session.State) RoutingDecision {
	start := time.Now()
	defer func() {
		metrics.RecordDecisionEvaluation(time.Since(start).Seconds())
	}()

	if sess == nil {
		sess = session.NewState()
	}
	sess.IncrementTurn()

	level, score, matched := e.distress.ScoreWithMatches(text)
	metrics.RecordDistressLevel(string(level))
	if len(matched) > 0 {
		logging.Debugf("Distress matches for session %s: %v (score=%.1f)", sess.ID(), matched, score)
	}

	in := routeInput{text: text, sess: sess, level: level}
	var decision RoutingDecision
	for _, t := range e.tiers {
		d, ok := t.evaluate(in)
		if !ok {
			continue
		}
		decision = d
		decision.Tier = t.name
		break
	}
	decision.DistressLevel = level
	decision.DistressScore = score

	if decision.CrisisDetected {
		metrics.RecordCrisisDetection()
	}
	metrics.RecordRoutingDecision(string(decision.TargetAgent), decision.Tier)
	logging.Infof("Routed session %s turn %d: target=%s tier=%s distress=%s score=%.1f",
		sess.ID(), sess.TurnCount(), decision.TargetAgent, decision.Tier, level, score)

	return decision
}

func (e *Engine) evaluateCrisis(in routeInput) (RoutingDecision, bool) {
	if !e.crisis.Detect(in.text) {
		return RoutingDecision{}, false
	}
	return RoutingDecision{TargetAgent: TargetCrisis, CrisisDetected: true}, true
}

func (e *Engine) evaluateMenuReply(in routeInput) (RoutingDecision, bool) {
	options := in.sess.MenuOptions()
	if len(options) == 0 {
		return RoutingDecision{}, false
	}
	selection := e.menu.ExtractSelection(in.text, options)
	if selection == "" {
		return RoutingDecision{}, false
	}

	target := TargetInformation
	if e.menu.IsResourceSelection(selection) {
		target = TargetResource
	}
	return RoutingDecision{TargetAgent: target, MenuSelection: selection}, true
}

func (e *Engine) evaluateExplicitIntent(in routeInput) (RoutingDecision, bool) {
	label := e.intent.Detect(in.text)
	if label == "" {
		return RoutingDecision{}, false
	}
	return RoutingDecision{TargetAgent: labelTarget(label)}, true
}

func (e *Engine) evaluateDistress(in routeInput) (RoutingDecision, bool) {
	if in.level == classification.DistressNone {
		return RoutingDecision{}, false
	}
	return RoutingDecision{TargetAgent: TargetInformation}, true
}

func (e *Engine) evaluateFallback(in routeInput) (RoutingDecision, bool) {
	return RoutingDecision{TargetAgent: labelTarget(e.topics.Classify(in.text))}, true
}

// labelTarget maps classifier labels onto dispatch targets. Education and
// general queries both land on the information handler.
func labelTarget(label string) Target {
	switch label {
	case lexicon.LabelAssessment:
		return TargetAssessment
	case lexicon.LabelResource:
		return TargetResource
	case lexicon.LabelEscalation:
		return TargetEscalation
	default:
		return TargetInformation
	}
}
