package phase

import (
	"testing"

	"github.com/baseball-sim/feedcore/domain"
	"github.com/baseball-sim/feedcore/render"
)

func TestMachineGameStartAndBatterUp(t *testing.T) {
	m := New()

	event, err := m.Receive(domain.StateDelta{Started: domain.Some(true)}, "Play Ball!")
	if err != nil {
		t.Fatalf("Receive(Play Ball!) error: %v", err)
	}
	if _, ok := event.(domain.PlayBall); !ok {
		t.Fatalf("event = %#v, want PlayBall", event)
	}

	batter := domain.PlayerDesc{Name: "Jessica Wills"}
	event, err = m.Receive(domain.StateDelta{Batter: domain.Some(batter)}, "Jessica Wills steps up to bat.")
	if err != nil {
		t.Fatalf("Receive(BatterUp) error: %v", err)
	}
	bu, ok := event.(domain.BatterUp)
	if !ok {
		t.Fatalf("event = %#v, want BatterUp", event)
	}
	if bu.Batter.Name != batter.Name {
		t.Errorf("batter = %q, want %q", bu.Batter.Name, batter.Name)
	}
}

func TestMachineRoundTripBallAndStrike(t *testing.T) {
	pitcher := domain.PlayerDesc{Name: "Noa Valdez"}
	batter := domain.PlayerDesc{Name: "Jessica Wills"}

	m := New()
	steps := []struct {
		delta       domain.StateDelta
		text        string
		wantsRender string // non-empty when this step should emit an event rendering back to wantsRender
	}{
		{domain.StateDelta{}, "Play Ball!", "Play Ball!"},
		{domain.StateDelta{Pitcher: domain.Some(pitcher), Batter: domain.Some(batter)}, "Jessica Wills steps up to bat.", "Jessica Wills steps up to bat."},
		{domain.StateDelta{Balls: domain.Some(1)}, "Ball. 1-0.", ""},
		{domain.StateDelta{}, "", "Ball. 1-0."},
		{domain.StateDelta{Strikes: domain.Some(1)}, "Noa Valdez throws a strike. 1-1.", ""},
		{domain.StateDelta{}, "", "Noa Valdez throws a strike. 1-1."},
	}

	var pendingState domain.State
	havePending := false
	for i, step := range steps {
		stateBefore := m.State()
		event, err := m.Receive(step.delta, step.text)
		if err != nil {
			t.Fatalf("step %d: Receive error: %v", i, err)
		}
		if step.wantsRender == "" {
			if event != nil {
				t.Fatalf("step %d: expected buffered nil event, got %#v", i, event)
			}
			pendingState = stateBefore
			havePending = true
			continue
		}
		if event == nil {
			t.Fatalf("step %d: expected event, got nil", i)
		}
		// events emitted after a buffering step render against the state as
		// of when the underlying line was produced, not the separator's.
		renderState := stateBefore
		if havePending {
			renderState = pendingState
			havePending = false
		}
		lines, err := render.Lines(event, renderState)
		if err != nil {
			t.Fatalf("step %d: render.Lines error: %v", i, err)
		}
		if len(lines) != 1 || lines[0] != step.wantsRender {
			t.Errorf("step %d: render.Lines = %v, want [%q]", i, lines, step.wantsRender)
		}
	}
}

func TestMachineInvalidAfterError(t *testing.T) {
	m := New()
	if _, err := m.Receive(domain.StateDelta{}, "not play ball"); err == nil {
		t.Fatal("expected grammar error")
	}
	if _, err := m.Receive(domain.StateDelta{}, "Play Ball!"); err == nil {
		t.Fatal("expected invariant error once machine is invalid")
	}
}
