// Package phase implements the finite state machine that drives one game:
// each step feeds a (StateDelta, displayText) pair in, resolves them against
// the grammar library, and emits at most one typed domain.Event (none while
// a multi-line event is still being assembled), or an error. The machine is not safe for concurrent use; callers that drive
// many games concurrently hold one Machine per game id (see package feed).
package phase

import (
	"github.com/baseball-sim/feedcore/domain"
	"github.com/baseball-sim/feedcore/grammar"
)

// Phase is the machine's current expectation for the next step. It is a
// closed sum represented as a Go interface with a private marker method,
// the same representation used for domain.Event.
type Phase interface {
	isPhase()
}

// Invalid is the guard phase a Machine enters when any update fails
// (grammar mismatch, missing precondition, or invariant violation). Once Invalid, every subsequent Receive call fails with
// InvariantError until the machine is discarded; it never recovers locally.
type Invalid struct{ Reason string }

func (Invalid) isPhase() {}

// GameStart expects the literal "Play Ball!" line.
type GameStart struct{}

func (GameStart) isPhase() {}

// ExpectBatterUp expects either the next batter's announcement line, or (if
// the previous step left outs at 3 and this delta resets them to 0) the
// end-of-half-inning announcement.
type ExpectBatterUp struct{}

func (ExpectBatterUp) isPhase() {}

// ExpectPitch expects a ball, strike, foul, walk, or contact-bearing line
// for the current batter.
type ExpectPitch struct{}

func (ExpectPitch) isPhase() {}

// ExpectEmptyThenPitch buffers a completed pitch event (Ball, Strike, Foul)
// until the separator empty line arrives, then emits it and returns to
// ExpectPitch. Corresponds to spec's PostPitchEmpty.
type ExpectEmptyThenPitch struct{ Event domain.Event }

func (ExpectEmptyThenPitch) isPhase() {}

// ExpectEmptyThenBatterUp buffers a completed plate-appearance event (only
// HomeRun uses this path) until the separator empty line, then emits it and
// moves to ExpectBatterUp. Corresponds to spec's PostAppearanceEmpty.
type ExpectEmptyThenBatterUp struct{ Event domain.Event }

func (ExpectEmptyThenBatterUp) isPhase() {}

// ExpectContactResolution expects the line following a contact description:
// a HomeRun sentinel, a Flyout resolution, a Fielding adverbial (leading to
// a groundout/hit resolution line), or a FailedFielding adverbial (leading
// directly to a base-hit line).
type ExpectContactResolution struct {
	Batter            domain.PlayerDesc
	Contact           domain.Contact
	BaserunnersBefore []domain.RunnerDesc
}

func (ExpectContactResolution) isPhase() {}

// ExpectGroundBallResolution expects the line resolving a successful
// Fielding adverbial: a groundout line, a base-hit line, or the first
// preceding-runner force-out line of a fielder's choice.
type ExpectGroundBallResolution struct {
	Batter            domain.PlayerDesc
	Contact           domain.Contact
	Fielding          domain.Fielding
	BaserunnersBefore []domain.RunnerDesc
}

func (ExpectGroundBallResolution) isPhase() {}

// ExpectHitResolution expects the base-hit line following a FailedFielding
// adverbial (a failed fielding attempt never produces an out).
type ExpectHitResolution struct {
	Batter            domain.PlayerDesc
	Contact           domain.Contact
	Failed            domain.FailedFielding
	BaserunnersBefore []domain.RunnerDesc
}

func (ExpectHitResolution) isPhase() {}

// ExpectFieldersChoiceConfirm expects the literal "Fielder's choice." line
// that follows the preceding runner's force-out announcement.
type ExpectFieldersChoiceConfirm struct {
	Batter    domain.PlayerDesc
	Contact   domain.Contact
	Fielding  domain.Fielding
	RunnerOut domain.RunnerDesc
}

func (ExpectFieldersChoiceConfirm) isPhase() {}

// pendingKind distinguishes which terminal event ExpectAdvancement is
// assembling once its remaining runners are resolved.
type pendingKind int

const (
	pendingGroundOut pendingKind = iota
	pendingHit
)

// ExpectAdvancement consumes one follow-up line per remaining baserunner
// (in reverse-field order, closest to scoring first) before the terminal
// event it is assembling can be emitted.
type ExpectAdvancement struct {
	Kind         pendingKind
	Batter       domain.PlayerDesc
	Contact      domain.Contact
	GOFielding   domain.Fielding
	GOFlavor     domain.GroundOutFlavor
	HitFielding  domain.FieldingAttempt
	HitType      domain.HitType
	HitFlavor    domain.HitFlavor
	Remaining    []domain.RunnerDesc
	Done         []domain.RunnerAdvancement
}

func (ExpectAdvancement) isPhase() {}

// Machine is one game's running phase machine: current State plus what
// the next Receive call expects.
type Machine struct {
	state domain.State
	next  Phase
}

// New returns a machine in its initial GameStart phase.
func New() *Machine {
	return &Machine{state: domain.NewState(), next: GameStart{}}
}

// State returns a copy of the machine's current running state.
func (m *Machine) State() domain.State { return m.state }

// Receive applies one (delta, displayText) step, advancing the phase and
// returning the typed event it represents (nil while buffering an
// intermediate phase that hasn't completed yet).
func (m *Machine) Receive(delta domain.StateDelta, displayText string) (domain.Event, error) {
	if _, invalid := m.next.(Invalid); invalid {
		return nil, &domain.InvariantError{Detail: "machine already invalid"}
	}

	event, next, err := m.dispatch(delta, displayText)
	if err != nil {
		m.next = Invalid{Reason: err.Error()}
		return nil, err
	}
	m.state.Update(delta)
	m.next = next
	return event, nil
}

func (m *Machine) dispatch(delta domain.StateDelta, text string) (domain.Event, Phase, error) {
	switch next := m.next.(type) {
	case GameStart:
		if event, ok := grammar.PlayBall(text); ok {
			return event, ExpectBatterUp{}, nil
		}
		return nil, nil, &domain.GrammarError{Input: text, Pos: 0}

	case ExpectBatterUp:
		return m.dispatchBatterUp(delta, text)

	case ExpectPitch:
		return m.dispatchPitch(delta, text)

	case ExpectEmptyThenPitch:
		if text != "" {
			return nil, nil, &domain.GrammarError{Input: text, Pos: 0}
		}
		return next.Event, ExpectPitch{}, nil

	case ExpectEmptyThenBatterUp:
		if text != "" {
			return nil, nil, &domain.GrammarError{Input: text, Pos: 0}
		}
		return next.Event, ExpectBatterUp{}, nil

	case ExpectContactResolution:
		return m.dispatchContactResolution(delta, text, next)

	case ExpectGroundBallResolution:
		return m.dispatchGroundBallResolution(delta, text, next)

	case ExpectHitResolution:
		return m.dispatchHitResolution(delta, text, next)

	case ExpectFieldersChoiceConfirm:
		if !grammar.FieldersChoiceConfirm(text) {
			return nil, nil, &domain.GrammarError{Input: text, Pos: 0}
		}
		event := domain.FieldersChoice{
			Batter:    next.Batter,
			Contact:   next.Contact,
			Fielding:  next.Fielding,
			RunnerOut: next.RunnerOut,
		}
		return event, ExpectBatterUp{}, nil

	case ExpectAdvancement:
		return m.dispatchAdvancement(delta, text, next)
	}
	return nil, nil, &domain.InvariantError{Detail: "dispatch from unknown phase"}
}

func (m *Machine) dispatchBatterUp(delta domain.StateDelta, text string) (domain.Event, Phase, error) {
	if m.state.Outs > 2 {
		outsAfter := m.state.Outs
		if v, ok := delta.Outs.Value(); ok {
			outsAfter = v
		}
		if outsAfter == 0 {
			if event, ok := grammar.EndOfHalfInning(text, m.state.TopOfInning, m.state.Inning); ok {
				return event, ExpectBatterUp{}, nil
			}
			return nil, nil, &domain.GrammarError{Input: text, Pos: 0}
		}
	}

	batter, ok := delta.Batter.Value()
	if !ok {
		return nil, nil, &domain.PreconditionError{Field: "batter"}
	}
	if event, ok := grammar.BatterUp(text, batter); ok {
		return event, ExpectPitch{}, nil
	}
	return nil, nil, &domain.GrammarError{Input: text, Pos: 0}
}

func (m *Machine) dispatchPitch(delta domain.StateDelta, text string) (domain.Event, Phase, error) {
	if m.state.Pitcher == nil {
		return nil, nil, &domain.PreconditionError{Field: "pitcher"}
	}
	if m.state.Batter == nil {
		return nil, nil, &domain.PreconditionError{Field: "batter"}
	}
	batter := *m.state.Batter
	pitcher := *m.state.Pitcher

	prevBalls, prevStrikes, prevOuts := m.state.Balls, m.state.Strikes, m.state.Outs
	balls, strikes, outs := prevBalls, prevStrikes, prevOuts
	if v, ok := delta.Balls.Value(); ok {
		balls = v
	}
	if v, ok := delta.Strikes.Value(); ok {
		strikes = v
	}
	if v, ok := delta.Outs.Value(); ok {
		outs = v
	}

	switch {
	case balls == prevBalls+1:
		event, ok := grammar.Ball(text, balls, strikes, batter, pitcher)
		if !ok {
			return nil, nil, &domain.GrammarError{Input: text, Pos: 0}
		}
		return nil, ExpectEmptyThenPitch{Event: event}, nil

	case strikes == prevStrikes+1:
		if event, ok := grammar.Strike(text, balls, strikes, batter, pitcher); ok {
			return nil, ExpectEmptyThenPitch{Event: event}, nil
		}
		if event, ok := grammar.Foul(text, batter, balls, strikes); ok {
			return nil, ExpectEmptyThenPitch{Event: event}, nil
		}
		return nil, nil, &domain.GrammarError{Input: text, Pos: 0}

	case outs == prevOuts+1:
		if event, ok := grammar.Strikeout(text, batter, pitcher); ok {
			return event, ExpectBatterUp{}, nil
		}
		return nil, nil, &domain.GrammarError{Input: text, Pos: 0}

	default:
		if event, ok := grammar.Foul(text, batter, balls, strikes); ok {
			return nil, ExpectEmptyThenPitch{Event: event}, nil
		}
		if event, ok := grammar.Walk(text, batter); ok {
			return event, ExpectBatterUp{}, nil
		}
		if rest, contact, ok := grammar.Contact(text, batter); ok {
			_ = rest
			before := append([]domain.RunnerDesc(nil), m.state.Baserunners...)
			return nil, ExpectContactResolution{Batter: batter, Contact: contact, BaserunnersBefore: before}, nil
		}
		return nil, nil, &domain.GrammarError{Input: text, Pos: 0}
	}
}

func (m *Machine) dispatchContactResolution(delta domain.StateDelta, text string, phase ExpectContactResolution) (domain.Event, Phase, error) {
	if grammar.HomeRun(text, phase.Batter) {
		event := domain.HomeRun{
			Batter:       phase.Batter,
			Contact:      phase.Contact,
			Advancements: scoreEveryone(phase.BaserunnersBefore),
		}
		return nil, ExpectEmptyThenBatterUp{Event: event}, nil
	}

	if defender, catchAdj, ok := grammar.FlyoutResolution(text, m.state.Defenders); ok {
		event := domain.Flyout{
			Batter:      phase.Batter,
			Contact:     phase.Contact,
			Defender:    defender,
			CatchFlavor: catchAdj,
		}
		return event, ExpectBatterUp{}, nil
	}

	attempt, ok := grammar.FieldingResolution(text, m.state.Defenders)
	if !ok {
		return nil, nil, &domain.GrammarError{Input: text, Pos: 0}
	}

	switch f := attempt.(type) {
	case domain.Fielding:
		return nil, ExpectGroundBallResolution{
			Batter:            phase.Batter,
			Contact:           phase.Contact,
			Fielding:          f,
			BaserunnersBefore: phase.BaserunnersBefore,
		}, nil
	case domain.FailedFielding:
		return nil, ExpectHitResolution{
			Batter:            phase.Batter,
			Contact:           phase.Contact,
			Failed:            f,
			BaserunnersBefore: phase.BaserunnersBefore,
		}, nil
	}
	return nil, nil, &domain.InvariantError{Detail: "unknown fielding attempt kind"}
}

func (m *Machine) dispatchGroundBallResolution(delta domain.StateDelta, text string, phase ExpectGroundBallResolution) (domain.Event, Phase, error) {
	if flavor, ok := grammar.GroundOutResolution(text, phase.Batter, m.state.Defenders); ok {
		pending := ExpectAdvancement{
			Kind: pendingGroundOut, Batter: phase.Batter, Contact: phase.Contact,
			GOFielding: phase.Fielding, GOFlavor: flavor,
		}
		event, next := m.resolveOrAdvance(pending, phase.BaserunnersBefore)
		return event, next, nil
	}

	if hitType, hitFlavor, ok := grammar.BaseHit(text, phase.Batter); ok {
		pending := ExpectAdvancement{
			Kind: pendingHit, Batter: phase.Batter, Contact: phase.Contact,
			HitFielding: phase.Fielding, HitType: hitType, HitFlavor: hitFlavor,
		}
		event, next := m.resolveOrAdvance(pending, phase.BaserunnersBefore)
		return event, next, nil
	}

	if runnerOut, ok := grammar.ForceOutAt(text, phase.BaserunnersBefore); ok {
		return nil, ExpectFieldersChoiceConfirm{
			Batter:    phase.Batter,
			Contact:   phase.Contact,
			Fielding:  phase.Fielding,
			RunnerOut: runnerOut,
		}, nil
	}

	return nil, nil, &domain.GrammarError{Input: text, Pos: 0}
}

func (m *Machine) dispatchHitResolution(delta domain.StateDelta, text string, phase ExpectHitResolution) (domain.Event, Phase, error) {
	hitType, hitFlavor, ok := grammar.BaseHit(text, phase.Batter)
	if !ok {
		return nil, nil, &domain.GrammarError{Input: text, Pos: 0}
	}
	pending := ExpectAdvancement{
		Kind: pendingHit, Batter: phase.Batter, Contact: phase.Contact,
		HitFielding: phase.Failed, HitType: hitType, HitFlavor: hitFlavor,
	}
	event, next := m.resolveOrAdvance(pending, phase.BaserunnersBefore)
	return event, next, nil
}

// resolveOrAdvance either emits the finished event directly (no baserunners
// left to resolve) or transitions to ExpectAdvancement to collect one
// follow-up line per remaining runner first.
func (m *Machine) resolveOrAdvance(pending ExpectAdvancement, baserunnersBefore []domain.RunnerDesc) (domain.Event, Phase) {
	remaining := reverseRunners(baserunnersBefore)
	if len(remaining) == 0 {
		return finishPending(pending, nil), ExpectBatterUp{}
	}
	pending.Remaining = remaining
	return nil, pending
}

func finishPending(p ExpectAdvancement, advancements []domain.RunnerAdvancement) domain.Event {
	switch p.Kind {
	case pendingGroundOut:
		return domain.GroundOut{Batter: p.Batter, Contact: p.Contact, Fielding: p.GOFielding, Flavor: p.GOFlavor, Advancements: advancements}
	case pendingHit:
		return domain.Hit{Batter: p.Batter, Contact: p.Contact, Fielding: p.HitFielding, Type: p.HitType, Flavor: p.HitFlavor, Advancements: advancements}
	}
	return nil
}

func (m *Machine) dispatchAdvancement(delta domain.StateDelta, text string, phase ExpectAdvancement) (domain.Event, Phase, error) {
	runner := phase.Remaining[0]
	adv, ok := grammar.Advancement(text, runner)
	if !ok {
		return nil, nil, &domain.GrammarError{Input: text, Pos: 0}
	}
	done := append(append([]domain.RunnerAdvancement(nil), phase.Done...), adv)
	remaining := phase.Remaining[1:]
	if len(remaining) == 0 {
		event := finishPending(phase, done)
		return event, ExpectBatterUp{}, nil
	}
	phase.Remaining = remaining
	phase.Done = done
	return nil, phase, nil
}

func scoreEveryone(runners []domain.RunnerDesc) []domain.RunnerAdvancement {
	advs := make([]domain.RunnerAdvancement, 0, len(runners))
	for _, r := range reverseRunners(runners) {
		advs = append(advs, domain.Scored{Who: r})
	}
	return advs
}

// reverseRunners returns runners in announce order: closest to scoring
// first, i.e. the reverse of State.Baserunners' canonical "closest to
// scoring last" storage order.
func reverseRunners(runners []domain.RunnerDesc) []domain.RunnerDesc {
	out := make([]domain.RunnerDesc, len(runners))
	for i, r := range runners {
		out[len(runners)-1-i] = r
	}
	return out
}
