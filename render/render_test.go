package render

import (
	"errors"
	"testing"

	"github.com/baseball-sim/feedcore/domain"
)

func TestLinesPlayBall(t *testing.T) {
	lines, err := Lines(domain.PlayBall{}, domain.NewState())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "Play Ball!" {
		t.Errorf("lines = %v, want [\"Play Ball!\"]", lines)
	}
}

func TestLinesBatterUpEscapesName(t *testing.T) {
	batter := domain.PlayerDesc{Name: "Kaj O'Dell"}
	lines, err := Lines(domain.BatterUp{Batter: batter}, domain.NewState())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Kaj O&#x27;Dell steps up to bat."
	if len(lines) != 1 || lines[0] != want {
		t.Errorf("lines = %v, want [%q]", lines, want)
	}
}

func TestLinesBallUsesEventCount(t *testing.T) {
	state := domain.NewState() // balls/strikes both zero
	event := domain.Ball{Flavor: domain.BallPeriod{}, Count: domain.Count{Balls: 2, Strikes: 1}}
	lines, err := Lines(event, state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Ball. 2-1."
	if len(lines) != 1 || lines[0] != want {
		t.Errorf("lines = %v, want [%q]", lines, want)
	}
}

func TestLinesEndOfHalfInning(t *testing.T) {
	event := domain.EndOfHalfInning{TopOfInning: true, Inning: 0}
	lines, err := Lines(event, domain.NewState())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "End of the top of the 1."
	if len(lines) != 1 || lines[0] != want {
		t.Errorf("lines = %v, want [%q]", lines, want)
	}
}

func TestLinesFieldersChoice(t *testing.T) {
	batter := domain.PlayerDesc{Name: "Alice"}
	defender := domain.PlayerDesc{Name: "Bob"}
	runnerOut := domain.RunnerDesc{Name: "Runner One", Base: domain.First}
	event := domain.FieldersChoice{
		Batter:    batter,
		Contact:   domain.Contact{Verb: verbPtr(domain.HitsVerb)},
		Fielding:  domain.Fielding{Defender: defender, Flavor: domain.ScoopsIt},
		RunnerOut: runnerOut,
	}
	state := domain.NewState()
	state.Batter = &batter
	lines, err := Lines(event, state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"Alice hits it...",
		"Bob scoops it...",
		"Runner One is forced out at Second.",
		"Fielder's choice.",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func verbPtr(v domain.ContactVerb) *domain.ContactVerb { return &v }

func TestLinesStrikeMissingPitcherErrors(t *testing.T) {
	event := domain.Strike{Flavor: domain.ThrowsAStrike{}, Count: domain.Count{Balls: 0, Strikes: 1}}
	_, err := Lines(event, domain.NewState())
	if err == nil {
		t.Fatal("expected PreconditionError for missing pitcher")
	}
	var precondErr *domain.PreconditionError
	if !errors.As(err, &precondErr) {
		t.Errorf("error = %v, want *domain.PreconditionError", err)
	}
}
