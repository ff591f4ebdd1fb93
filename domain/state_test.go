package domain

import "testing"

func TestOptionalStates(t *testing.T) {
	tests := []struct {
		name       string
		opt        Optional[int]
		wantAbsent bool
		wantNull   bool
		wantValue  int
		wantOK     bool
	}{
		{"absent", Abs[int](), true, false, 0, false},
		{"null", Null[int](), false, true, 0, false},
		{"set", Some(7), false, false, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opt.IsAbsent(); got != tt.wantAbsent {
				t.Errorf("IsAbsent() = %v, want %v", got, tt.wantAbsent)
			}
			if got := tt.opt.IsNull(); got != tt.wantNull {
				t.Errorf("IsNull() = %v, want %v", got, tt.wantNull)
			}
			v, ok := tt.opt.Value()
			if ok != tt.wantOK || v != tt.wantValue {
				t.Errorf("Value() = (%v, %v), want (%v, %v)", v, ok, tt.wantValue, tt.wantOK)
			}
		})
	}
}

func TestStateUpdateHomeAndAwayScoreIndependent(t *testing.T) {
	s := NewState()
	s.Update(StateDelta{
		HomeScore: Some(3.0),
		AwayScore: Some(1.0),
	})
	if s.HomeScore != 3.0 {
		t.Errorf("HomeScore = %v, want 3", s.HomeScore)
	}
	if s.AwayScore != 1.0 {
		t.Errorf("AwayScore = %v, want 1", s.AwayScore)
	}

	// A delta touching only AwayScore must not disturb HomeScore.
	s.Update(StateDelta{AwayScore: Some(2.0)})
	if s.HomeScore != 3.0 {
		t.Errorf("HomeScore changed after an away-only delta: got %v, want 3", s.HomeScore)
	}
	if s.AwayScore != 2.0 {
		t.Errorf("AwayScore = %v, want 2", s.AwayScore)
	}
}

func TestStateUpdateBatterAbsentNullSet(t *testing.T) {
	batter := PlayerDesc{Name: "Kaj Statter Jr."}

	s := NewState()
	s.Update(StateDelta{Batter: Some(batter)})
	if s.Batter == nil || s.Batter.Name != batter.Name {
		t.Fatalf("Batter not set: %+v", s.Batter)
	}

	s.Update(StateDelta{}) // absent: batter must survive untouched
	if s.Batter == nil {
		t.Fatalf("Batter cleared by an absent delta")
	}

	s.Update(StateDelta{Batter: Null[PlayerDesc]()})
	if s.Batter != nil {
		t.Fatalf("Batter not cleared by a null delta: %+v", s.Batter)
	}
}

func TestPlayerDisplayNameEscapesQuote(t *testing.T) {
	p := PlayerDesc{Name: "O'Malley"}
	if got, want := p.DisplayName(), "O&#x27;Malley"; got != want {
		t.Errorf("DisplayName() = %q, want %q", got, want)
	}
}
