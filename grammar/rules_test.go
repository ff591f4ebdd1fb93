package grammar

import (
	"testing"

	"github.com/baseball-sim/feedcore/domain"
)

func TestPlayBall(t *testing.T) {
	if _, ok := PlayBall("Play Ball!"); !ok {
		t.Fatal("expected match")
	}
	if _, ok := PlayBall("Play ball!"); ok {
		t.Fatal("expected mismatch on case difference")
	}
}

func TestBall(t *testing.T) {
	batter := domain.PlayerDesc{Name: "Alice"}
	pitcher := domain.PlayerDesc{Name: "Jessica Wills"}
	tests := []struct {
		name   string
		input  string
		ok     bool
		flavor domain.BallFlavor
	}{
		{"plain", "Ball. 1-0.", true, domain.BallPeriod{}},
		{"comma", "Ball, 1-0.", true, domain.BallComma{}},
		{"way outside", "Ball, way outside. 1-0.", true, domain.WayOutside{}},
		{"extremely outside", "Ball, extremely outside. 1-0.", true, domain.ExtremelyOutside{}},
		{"adjective", "Dominant pitch. Ball, 1-0.", true, domain.BallAdjective{Adjective: domain.Dominant}},
		{"misses the zone", "Jessica Wills misses the zone. Ball, 1-0.", true, domain.MissesTheZone{}},
		{"just misses the zone", "Jessica Wills just misses the zone. Ball, 1-0.", true, domain.JustMisses{}},
		{"does not chase", "Alice does not chase. Ball, 1-0.", true, domain.DoesNotChase{}},
		{"wrong count", "Ball. 2-0.", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := Ball(tt.input, 1, 0, batter, pitcher)
			if ok != tt.ok {
				t.Errorf("Ball(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && ev.Flavor != tt.flavor {
				t.Errorf("flavor = %#v, want %#v", ev.Flavor, tt.flavor)
			}
		})
	}
}

func TestStrikeNamedPitcher(t *testing.T) {
	batter := domain.PlayerDesc{Name: "Alice"}
	pitcher := domain.PlayerDesc{Name: "Jessica Wills"}
	ev, ok := Strike("Jessica Wills throws a strike. 0-1.", 0, 1, batter, pitcher)
	if !ok {
		t.Fatal("expected match")
	}
	if _, isThrows := ev.Flavor.(domain.ThrowsAStrike); !isThrows {
		t.Errorf("flavor = %#v, want ThrowsAStrike", ev.Flavor)
	}
}

func TestStrikeBareFlavors(t *testing.T) {
	batter := domain.PlayerDesc{Name: "Alice"}
	pitcher := domain.PlayerDesc{Name: "Jessica Wills"}
	tests := []struct {
		input  string
		flavor domain.StrikeFlavor
	}{
		{"Strike, looking. 0-1.", domain.Looking{}},
		{"Strike, swinging. 0-1.", domain.Swinging{}},
		{"Strike. 0-1.", domain.NoStrikeFlavor{}},
		{"Alice is caught looking. 0-1.", domain.CaughtLooking{}},
		{"Alice guesses wrong. 0-1.", domain.GuessesWrong{}},
	}
	for _, tt := range tests {
		ev, ok := Strike(tt.input, 0, 1, batter, pitcher)
		if !ok {
			t.Fatalf("Strike(%q) expected match", tt.input)
		}
		if ev.Flavor != tt.flavor {
			t.Errorf("flavor = %#v, want %#v", ev.Flavor, tt.flavor)
		}
	}
}

func TestNameUntilPeriodKajStatter(t *testing.T) {
	// The "Kaj Statter Jr." rule: a name with an internal period must not be
	// truncated at that period when more text follows.
	rest, name, ok := NameUntilPeriod()("Kaj Statter Jr. steps up to bat.")
	if !ok {
		t.Fatal("expected match")
	}
	if name != "Kaj Statter Jr" {
		t.Errorf("name = %q, want %q", name, "Kaj Statter Jr")
	}
	if rest != " steps up to bat." {
		t.Errorf("rest = %q", rest)
	}
}

func TestContactNamedVerb(t *testing.T) {
	batter := domain.PlayerDesc{Name: "Ji-Eun Jasper"}
	rest, c, ok := Contact("Ji-Eun Jasper slaps it to Left Field...", batter)
	if !ok {
		t.Fatal("expected match")
	}
	if c.Verb == nil || *c.Verb != domain.Slaps {
		t.Errorf("verb = %v, want Slaps", c.Verb)
	}
	if c.Location == nil || *c.Location != domain.LeftField {
		t.Errorf("location = %v, want LeftField", c.Location)
	}
	if rest != "..." {
		t.Errorf("rest = %q, want %q", rest, "...")
	}
}

func TestContactIntoPlayNoLocation(t *testing.T) {
	batter := domain.PlayerDesc{Name: "Ji-Eun Jasper"}
	rest, c, ok := Contact("Ji-Eun Jasper hits the pitch into play...", batter)
	if !ok {
		t.Fatal("expected match")
	}
	if !c.IntoPlay {
		t.Error("IntoPlay = false, want true")
	}
	if c.Location != nil {
		t.Errorf("location = %v, want nil", c.Location)
	}
	if rest != "..." {
		t.Errorf("rest = %q, want %q", rest, "...")
	}
}

func TestContactDescriptorLocation(t *testing.T) {
	batter := domain.PlayerDesc{Name: "Ji-Eun Jasper"}
	rest, c, ok := Contact("Ji-Eun Jasper hits the pitch to Left Field...", batter)
	if !ok {
		t.Fatal("expected match")
	}
	if c.Descriptor == nil || *c.Descriptor != domain.ThePitchTo {
		t.Errorf("descriptor = %v, want ThePitchTo", c.Descriptor)
	}
	if c.Location == nil || *c.Location != domain.LeftField {
		t.Errorf("location = %v, want LeftField", c.Location)
	}
	if rest != "..." {
		t.Errorf("rest = %q, want %q", rest, "...")
	}
}

func TestBatterUpApostropheName(t *testing.T) {
	// NameFrom must match the raw (unescaped) name the feed delivers, not
	// the '&#x27;'-escaped DisplayName form.
	batter := domain.PlayerDesc{Name: "Kaj O'Dell"}
	ev, ok := BatterUp("Kaj O'Dell steps up to bat.", batter)
	if !ok {
		t.Fatal("expected match")
	}
	if _, isBatterUp := ev.(domain.BatterUp); !isBatterUp {
		t.Errorf("event = %#v, want domain.BatterUp", ev)
	}
}

func TestFoulFlavors(t *testing.T) {
	batter := domain.PlayerDesc{Name: "Alice"}
	tests := []struct {
		name  string
		input string
	}{
		{"ball", "Foul ball. 0-2."},
		{"tip", "Foul tip. 0-2."},
		{"back", "Alice fouls it back. 0-2."},
		{"off", "Alice fouls it off. 0-2."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Foul(tt.input, batter, 0, 2)
			if !ok {
				t.Errorf("Foul(%q) expected match", tt.input)
			}
		})
	}
}

func TestWalkFlavors(t *testing.T) {
	batter := domain.PlayerDesc{Name: "Alice"}
	tests := []struct {
		input  string
		flavor domain.WalkFlavor
	}{
		{"Alice walks.", domain.Ball4{}},
		{"Alice draws a walk.", domain.DrawsWalk{}},
		{"Alice earns a walk.", domain.EarnsWalk{}},
	}
	for _, tt := range tests {
		ev, ok := Walk(tt.input, batter)
		if !ok {
			t.Fatalf("Walk(%q) expected match", tt.input)
		}
		w, isWalk := ev.(domain.Walk)
		if !isWalk {
			t.Fatalf("event = %#v, want domain.Walk", ev)
		}
		if w.Flavor != tt.flavor {
			t.Errorf("flavor = %#v, want %#v", w.Flavor, tt.flavor)
		}
	}
}

func TestStrikeoutNamedBoth(t *testing.T) {
	batter := domain.PlayerDesc{Name: "Alice"}
	pitcher := domain.PlayerDesc{Name: "Jessica Wills"}
	ev, ok := Strikeout("Jessica Wills strikes out Alice looking.", batter, pitcher)
	if !ok {
		t.Fatal("expected match")
	}
	s, isStrikeout := ev.(domain.Strikeout)
	if !isStrikeout {
		t.Fatalf("event = %#v, want domain.Strikeout", ev)
	}
	if _, ok := s.Flavor.(domain.NamedBoth); !ok {
		t.Errorf("flavor = %#v, want NamedBoth", s.Flavor)
	}
	if s.Pitcher == nil || s.Pitcher.Name != "Jessica Wills" {
		t.Errorf("pitcher = %v, want Jessica Wills", s.Pitcher)
	}
}

func TestHomeRun(t *testing.T) {
	batter := domain.PlayerDesc{Name: "Alice"}
	if !HomeRun("Alice hits a Home Run!", batter) {
		t.Fatal("expected match")
	}
	if HomeRun("Alice hits a Double!", batter) {
		t.Fatal("expected mismatch")
	}
}

func TestEndOfHalfInning(t *testing.T) {
	_, ok := EndOfHalfInning("End of the top of the 1.", true, 0)
	if !ok {
		t.Fatal("expected match")
	}
	_, ok = EndOfHalfInning("End of the bottom of the 1.", true, 0)
	if ok {
		t.Fatal("expected mismatch on wrong half")
	}
}

func TestFieldersChoiceConfirm(t *testing.T) {
	if !FieldersChoiceConfirm("Fielder's choice.") {
		t.Fatal("expected match")
	}
}

func TestFieldingResolution(t *testing.T) {
	defenders := []domain.PlayerDesc{{Name: "Jay Camacho"}}
	attempt, ok := FieldingResolution("Jay Camacho scoops it...", defenders)
	if !ok {
		t.Fatal("expected match")
	}
	f, isFielding := attempt.(domain.Fielding)
	if !isFielding {
		t.Fatalf("attempt = %#v, want domain.Fielding", attempt)
	}
	if f.Flavor != domain.ScoopsIt {
		t.Errorf("flavor = %v, want ScoopsIt", f.Flavor)
	}
}
