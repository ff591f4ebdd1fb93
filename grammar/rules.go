package grammar

import (
	"fmt"

	"github.com/baseball-sim/feedcore/domain"
)

// PlayBall matches the literal game-open line.
func PlayBall(input string) (domain.Event, bool) {
	_, ok := Final(Lit("Play Ball!"))(input)
	return domain.PlayBall{}, ok
}

// BatterUp matches "{batter} steps up to bat."
func BatterUp(input string, batter domain.PlayerDesc) (domain.Event, bool) {
	rest, _, ok := NameFrom(batter)(input)
	if !ok {
		return nil, false
	}
	if _, ok := Final(Lit(" steps up to bat."))(rest); !ok {
		return nil, false
	}
	return domain.BatterUp{Batter: batter}, true
}

// EndOfHalfInning matches "End of the top/bottom of the {inning+1}."
func EndOfHalfInning(input string, topOfInning bool, inning int) (domain.Event, bool) {
	half := "bottom"
	if topOfInning {
		half = "top"
	}
	want := fmt.Sprintf("End of the %s of the %d.", half, inning+1)
	_, ok := Final(Lit(want))(input)
	return domain.EndOfHalfInning{TopOfInning: topOfInning, Inning: inning}, ok
}

// Ball matches a called ball against the closed 15-member BallFlavor
// vocabulary spec.md §3 lists. Several literals share a leading "{pitcher}"
// or "{batter}" prefix (e.g. "misses the zone" vs "just misses the zone.");
// the longer, more specific alternative is tried first.
func Ball(input string, balls, strikes int, batter, pitcher domain.PlayerDesc) (domain.Ball, bool) {
	suffix := fmt.Sprintf(" %d-%d.", balls, strikes)
	count := domain.Count{Balls: balls, Strikes: strikes}

	// "{Adjective} pitch. Ball, {count}" — matches scenario S4 exactly.
	if rest, adj, ok := PitchAdjective()(input); ok {
		if rest2, _, ok := Lit(" pitch. Ball,")(rest); ok {
			if _, ok := Final(Lit(suffix))(rest2); ok {
				return domain.Ball{Flavor: domain.BallAdjective{Adjective: adj}, Count: count}, true
			}
		}
	}

	pitcherLed := []struct {
		lit    string
		flavor domain.BallFlavor
	}{
		{" is just outside. Ball,", domain.JustOutside{}},
		{" just misses the zone. Ball,", domain.JustMisses{}},
		{" misses the zone. Ball,", domain.MissesTheZone{}},
		{" misses big time. Ball,", domain.MissesBigTime{}},
		{" stumbles. Ball,", domain.Stumbles{}},
		{" throws outside. Ball,", domain.ThrowsOutside{}},
	}
	if rest, _, ok := NameFrom(pitcher)(input); ok {
		for _, alt := range pitcherLed {
			if r2, _, ok := Lit(alt.lit)(rest); ok {
				if _, ok := Final(Lit(suffix))(r2); ok {
					return domain.Ball{Flavor: alt.flavor, Count: count}, true
				}
			}
		}
	}

	batterLed := []struct {
		lit    string
		flavor domain.BallFlavor
	}{
		{" does not chase. Ball,", domain.DoesNotChase{}},
		{" doesn't blink. Ball,", domain.DoesntBlink{}},
		{" lays off outside. Ball,", domain.LaysOffOutside{}},
		{" looks at ball outside. Ball,", domain.LooksAtBallOutside{}},
	}
	if rest, _, ok := NameFrom(batter)(input); ok {
		for _, alt := range batterLed {
			if r2, _, ok := Lit(alt.lit)(rest); ok {
				if _, ok := Final(Lit(suffix))(r2); ok {
					return domain.Ball{Flavor: alt.flavor, Count: count}, true
				}
			}
		}
	}

	bare := []struct {
		lit    string
		flavor domain.BallFlavor
	}{
		{"Ball, way outside.", domain.WayOutside{}},
		{"Ball, extremely outside.", domain.ExtremelyOutside{}},
		{"Ball,", domain.BallComma{}},
		{"Ball.", domain.BallPeriod{}},
	}
	for _, alt := range bare {
		if rest, _, ok := Lit(alt.lit)(input); ok {
			if _, ok := Final(Lit(suffix))(rest); ok {
				return domain.Ball{Flavor: alt.flavor, Count: count}, true
			}
		}
	}
	return domain.Ball{}, false
}

// Strike matches a called or swinging strike against the closed 9-member
// StrikeFlavor vocabulary spec.md §3 lists.
func Strike(input string, balls, strikes int, batter, pitcher domain.PlayerDesc) (domain.Strike, bool) {
	suffix := fmt.Sprintf(" %d-%d.", balls, strikes)
	count := domain.Count{Balls: balls, Strikes: strikes}

	if rest, _, ok := Lit("A ")(input); ok {
		if rest, adj, ok := SwingAdjective()(rest); ok {
			if rest2, _, ok := Lit(" swing and a strike, swinging.")(rest); ok {
				if _, ok := Final(Lit(suffix))(rest2); ok {
					return domain.Strike{Flavor: domain.AdjectiveSwing{Adjective: adj}, Count: count}, true
				}
			}
		}
	}

	pitcherLed := []struct {
		lit    string
		flavor domain.StrikeFlavor
	}{
		{" throws a strike.", domain.ThrowsAStrike{}},
		{" drops it in for a strike.", domain.DropsItIn{}},
	}
	if rest, _, ok := NameFrom(pitcher)(input); ok {
		for _, alt := range pitcherLed {
			if r2, _, ok := Lit(alt.lit)(rest); ok {
				if _, ok := Final(Lit(suffix))(r2); ok {
					return domain.Strike{Flavor: alt.flavor, Count: count}, true
				}
			}
		}
	}

	batterLed := []struct {
		lit    string
		flavor domain.StrikeFlavor
	}{
		{" is caught looking.", domain.CaughtLooking{}},
		{" chases the pitch.", domain.Chases{}},
		{" guesses wrong.", domain.GuessesWrong{}},
	}
	if rest, _, ok := NameFrom(batter)(input); ok {
		for _, alt := range batterLed {
			if r2, _, ok := Lit(alt.lit)(rest); ok {
				if _, ok := Final(Lit(suffix))(r2); ok {
					return domain.Strike{Flavor: alt.flavor, Count: count}, true
				}
			}
		}
	}

	bare := []struct {
		lit    string
		flavor domain.StrikeFlavor
	}{
		{"Strike, looking.", domain.Looking{}},
		{"Strike, swinging.", domain.Swinging{}},
		{"Strike.", domain.NoStrikeFlavor{}},
	}
	for _, alt := range bare {
		if rest, _, ok := Lit(alt.lit)(input); ok {
			if _, ok := Final(Lit(suffix))(rest); ok {
				return domain.Strike{Flavor: alt.flavor, Count: count}, true
			}
		}
	}
	return domain.Strike{}, false
}

// Foul matches a foul ball line: "Foul ball. {count}.", "Foul tip.
// {count}.", "{batter} fouls it back. {count}.", or "{batter} fouls it
// off. {count}."
func Foul(input string, batter domain.PlayerDesc, balls, strikes int) (domain.Foul, bool) {
	suffix := fmt.Sprintf(" %d-%d.", balls, strikes)

	if rest, _, ok := Lit("Foul ball.")(input); ok {
		if _, ok := Final(Lit(suffix))(rest); ok {
			return domain.Foul{Batter: batter, Flavor: domain.FoulBall{}, Count: domain.Count{Balls: balls, Strikes: strikes}}, true
		}
	}
	if rest, _, ok := Lit("Foul tip.")(input); ok {
		if _, ok := Final(Lit(suffix))(rest); ok {
			return domain.Foul{Batter: batter, Flavor: domain.FoulTip{}, Count: domain.Count{Balls: balls, Strikes: strikes}}, true
		}
	}
	if rest, _, ok := NameFrom(batter)(input); ok {
		if r2, _, ok := Lit(" fouls it back.")(rest); ok {
			if _, ok := Final(Lit(suffix))(r2); ok {
				return domain.Foul{Batter: batter, Flavor: domain.FoulsItBack{}, Count: domain.Count{Balls: balls, Strikes: strikes}}, true
			}
		}
		if r2, _, ok := Lit(" fouls it off.")(rest); ok {
			if _, ok := Final(Lit(suffix))(r2); ok {
				return domain.Foul{Batter: batter, Flavor: domain.FoulsItOff{}, Count: domain.Count{Balls: balls, Strikes: strikes}}, true
			}
		}
	}
	return domain.Foul{}, false
}

// Walk matches "{batter} walks." or "{batter} draws a walk." or
// "{batter} earns a walk." — the line replacing Ball once the count
// reaches four balls.
func Walk(input string, batter domain.PlayerDesc) (domain.Event, bool) {
	rest, _, ok := NameFrom(batter)(input)
	if !ok {
		return nil, false
	}
	if _, ok := Final(Lit(" draws a walk."))(rest); ok {
		return domain.Walk{Batter: batter, Flavor: domain.DrawsWalk{}}, true
	}
	if _, ok := Final(Lit(" earns a walk."))(rest); ok {
		return domain.Walk{Batter: batter, Flavor: domain.EarnsWalk{}}, true
	}
	if _, ok := Final(Lit(" walks."))(rest); ok {
		return domain.Walk{Batter: batter, Flavor: domain.Ball4{}}, true
	}
	return nil, false
}

// Strikeout matches "{pitcher} strikes out {batter} looking." or
// "{batter} strikes out swinging." — the line replacing Strike once the
// count reaches three strikes.
func Strikeout(input string, batter, pitcher domain.PlayerDesc) (domain.Event, bool) {
	if rest, _, ok := NameFrom(pitcher)(input); ok {
		if rest2, _, ok := Lit(" strikes out ")(rest); ok {
			if rest3, _, ok := NameFrom(batter)(rest2); ok {
				if _, ok := Final(Lit(" looking."))(rest3); ok {
					p := pitcher
					return domain.Strikeout{Batter: batter, Pitcher: &p, Flavor: domain.NamedBoth{}}, true
				}
			}
		}
	}
	if rest, _, ok := NameFrom(batter)(input); ok {
		if _, ok := Final(Lit(" strikes out swinging."))(rest); ok {
			return domain.Strikeout{Batter: batter, Flavor: domain.NamedBatter{}}, true
		}
	}
	return nil, false
}

// Contact parses a contact description shared by every ball-in-play event.
// Three shapes fall out, all optionally preceded by a "{SOUND}! " exclamation:
// "{batter} {verb} it to {location}..." (the object-word "it" shape),
// "{batter} {verb} {pitch_descriptor} {location}..." or "{batter} {verb} the
// pitch into play..." (the sound-less Named shape), and "A {adjective} hit
// to {location}...". The "it" and adjective shapes fail without a location.
func Contact(input string, batter domain.PlayerDesc) (rest string, c domain.Contact, ok bool) {
	rest = input

	if r, snd, matched := SoundEffect()(rest); matched {
		if r2, _, matched := Lit("! ")(r); matched {
			s := snd
			c.Sound = &s
			rest = r2
		}
	}

	if verbRest, verb, matched := namedVerbContact(rest, batter); matched {
		vv := verb
		c.Verb = &vv

		if r, loc, matched := objectIt(verbRest); matched && loc != nil {
			c.Location = loc
			return r, c, true
		}
		if r, matched := intoPlay(verbRest); matched {
			c.IntoPlay = true
			return r, c, true
		}
		if r, desc, loc, matched := descriptorLocation(verbRest); matched {
			dd := desc
			ll := loc
			c.Descriptor = &dd
			c.Location = &ll
			return r, c, true
		}
		return input, domain.Contact{}, false
	}

	if r, adj, matched := adjectiveContact(rest); matched {
		aa := adj
		c.Adjective = &aa
		if r2, loc, matched := toLocation(r); matched {
			l := loc
			c.Location = &l
			return r2, c, true
		}
		return input, domain.Contact{}, false
	}

	return input, domain.Contact{}, false
}

func namedVerbContact(input string, batter domain.PlayerDesc) (string, domain.ContactVerb, bool) {
	rest, _, ok := NameFrom(batter)(input)
	if !ok {
		return input, 0, false
	}
	rest, _, ok = Lit(" ")(rest)
	if !ok {
		return input, 0, false
	}
	rest, verb, ok := ContactVerb()(rest)
	if !ok {
		return input, 0, false
	}
	return rest, verb, true
}

// objectIt matches the fixed " it [to {location}]" object shape a
// NamedWithSound line always uses, and a sound-less Named line may also use.
func objectIt(input string) (string, *domain.FieldLocation, bool) {
	rest, _, ok := Lit(" it")(input)
	if !ok {
		return input, nil, false
	}
	if r, loc, ok := toLocation(rest); ok {
		l := loc
		return r, &l, true
	}
	return rest, nil, true
}

// intoPlay matches the fixed "{batter} {verb} the pitch into play..." tail a
// sound-less Named contact with no field location renders.
func intoPlay(input string) (string, bool) {
	rest, _, ok := Lit(" the pitch into play")(input)
	return rest, ok
}

// descriptorLocation matches "{batter} {verb} {pitch_descriptor} {location}..."
// — a sound-less Named contact hit to a named field zone.
func descriptorLocation(input string) (string, domain.PitchDescriptor, domain.FieldLocation, bool) {
	rest, _, ok := Lit(" ")(input)
	if !ok {
		return input, 0, 0, false
	}
	rest, desc, ok := PitchDescriptor()(rest)
	if !ok {
		return input, 0, 0, false
	}
	rest, _, ok = Lit(" ")(rest)
	if !ok {
		return input, 0, 0, false
	}
	rest, loc, ok := FieldLocation()(rest)
	if !ok {
		return input, 0, 0, false
	}
	return rest, desc, loc, true
}

func toLocation(input string) (string, domain.FieldLocation, bool) {
	rest, _, ok := Lit(" to ")(input)
	if !ok {
		return input, 0, false
	}
	return FieldLocation()(rest)
}

func adjectiveContact(input string) (string, domain.ContactAdjective, bool) {
	rest, _, ok := Lit("A ")(input)
	if !ok {
		return input, 0, false
	}
	rest, adj, ok := ContactAdjective()(rest)
	if !ok {
		return input, 0, false
	}
	rest, _, ok = Lit(" hit")(rest)
	if !ok {
		return input, 0, false
	}
	return rest, adj, true
}

// HomeRun matches "{batter} hits a Home Run!", the literal sentinel line
// following a contact description when the ball clears the fence.
func HomeRun(input string, batter domain.PlayerDesc) bool {
	rest, _, ok := NameFrom(batter)(input)
	if !ok {
		return false
	}
	_, ok = Final(Lit(" hits a Home Run!"))(rest)
	return ok
}

// FlyoutResolution matches the line following a contact description when
// the ball was caught in the air: "Fly out to {defender}." or "Fly out to
// {defender} on a {adjective} catch."
func FlyoutResolution(input string, defenders []domain.PlayerDesc) (domain.PlayerDesc, *domain.CatchAdjective, bool) {
	rest, _, ok := Lit("Fly out to ")(input)
	if !ok {
		return domain.PlayerDesc{}, nil, false
	}
	for _, d := range defenders {
		r, _, ok := NameFrom(d)(rest)
		if !ok {
			continue
		}
		if _, ok := Final(Lit("."))(r); ok {
			return d, nil, true
		}
		if r1, _, ok := Lit(" on a ")(r); ok {
			if r2, adj, ok := CatchAdjective()(r1); ok {
				if _, ok := Final(Lit(" catch."))(r2); ok {
					a := adj
					return d, &a, true
				}
			}
		}
	}
	return domain.PlayerDesc{}, nil, false
}

// FieldingResolution parses the line following a contact description: a
// successful Fielding by a named defender or a FailedFielding.
func FieldingResolution(input string, defenders []domain.PlayerDesc) (domain.FieldingAttempt, bool) {
	for _, d := range defenders {
		rest, _, ok := NameFrom(d)(input)
		if !ok {
			continue
		}
		rest, _, ok = Lit(" ")(rest)
		if !ok {
			continue
		}
		if flavor, ok := Final(FieldingFlavor())(rest); ok {
			return domain.Fielding{Defender: d, Flavor: flavor}, true
		}
		if flavor, ok := Final(FailedFieldingFlavor())(rest); ok {
			return domain.FailedFielding{Defender: d, Flavor: flavor}, true
		}
	}
	return nil, false
}

// GroundOutResolution matches the line following a fielding adverbial that
// resolves a ground ball hit directly at a fielder: "Groundout to
// {defender}.", "{batter} hits a groundout.", or "{batter} is forced out
// at first."
func GroundOutResolution(input string, batter domain.PlayerDesc, defenders []domain.PlayerDesc) (domain.GroundOutFlavor, bool) {
	if rest, _, ok := Lit("Groundout to ")(input); ok {
		for _, d := range defenders {
			if r, _, ok := NameFrom(d)(rest); ok {
				if _, ok := Final(Lit("."))(r); ok {
					return domain.GroundOutTo{}, true
				}
			}
		}
	}
	if rest, _, ok := NameFrom(batter)(input); ok {
		if _, ok := Final(Lit(" hits a groundout."))(rest); ok {
			return domain.HitsAGroundout{}, true
		}
		if _, ok := Final(Lit(" is forced out at first."))(rest); ok {
			return domain.ForcedOutAtFirst{}, true
		}
	}
	return nil, false
}

// BaseHit matches "{batter} hits a {Single|Double|Triple}!" or "{batter}
// is on with a {Single|Double|Triple}!"
func BaseHit(input string, batter domain.PlayerDesc) (domain.HitType, domain.HitFlavor, bool) {
	rest, _, ok := NameFrom(batter)(input)
	if !ok {
		return 0, nil, false
	}
	if r, _, ok := Lit(" hits a ")(rest); ok {
		if ht, ok := Final(HitType())(r); ok {
			return ht, domain.Hits{}, true
		}
	}
	if r, _, ok := Lit(" is on with a ")(rest); ok {
		if ht, ok := Final(HitType())(r); ok {
			return ht, domain.IsOnWith{}, true
		}
	}
	return 0, nil, false
}

// ForceOutAt matches "{runner} is forced out at {Second|Third|Home}." for
// a preceding baserunner retired on a fielder's choice. Base is the
// runner's own (0-indexed) base; the rendered name is base+1.
func ForceOutAt(input string, runners []domain.RunnerDesc) (domain.RunnerDesc, bool) {
	for _, r := range runners {
		rest, _, ok := NameFrom(domain.PlayerDesc{Name: r.Name})(input)
		if !ok {
			continue
		}
		want := fmt.Sprintf(" is forced out at %s.", forcedBaseName(r.Base))
		if _, ok := Final(Lit(want))(rest); ok {
			return r, true
		}
	}
	return domain.RunnerDesc{}, false
}

func forcedBaseName(b domain.Base) string {
	switch b {
	case domain.First:
		return "Second"
	case domain.Second:
		return "Third"
	case domain.Third:
		return "Home"
	}
	return "Home"
}

// FieldersChoiceConfirm matches the literal "Fielder's choice." line that
// closes out a fielder's-choice play.
func FieldersChoiceConfirm(input string) bool {
	_, ok := Final(Lit("Fielder's choice."))(input)
	return ok
}

// Advancement matches one remaining baserunner's follow-up line: "{runner}
// to {Base}.", "{runner} advances to {Base}.", or "{runner} scores!"
func Advancement(input string, runner domain.RunnerDesc) (domain.RunnerAdvancement, bool) {
	rest, _, ok := NameFrom(domain.PlayerDesc{Name: runner.Name})(input)
	if !ok {
		return nil, false
	}
	if _, ok := Final(Lit(" scores!"))(rest); ok {
		return domain.Scored{Who: runner}, true
	}
	if r, _, ok := Lit(" advances to ")(rest); ok {
		if base, ok := matchBaseName(r); ok {
			return domain.Advanced{Who: runner, To: base, Flavor: domain.AdvancesToFlavor{}}, true
		}
	}
	if r, _, ok := Lit(" to ")(rest); ok {
		if base, ok := matchBaseName(r); ok {
			return domain.Advanced{Who: runner, To: base, Flavor: domain.ToFlavor{}}, true
		}
	}
	return nil, false
}

func matchBaseName(input string) (domain.Base, bool) {
	if _, ok := Final(Lit("Second."))(input); ok {
		return domain.Second, true
	}
	if _, ok := Final(Lit("Third."))(input); ok {
		return domain.Third, true
	}
	return 0, false
}
