// Package render reproduces the display lines a typed Event would have
// come from, given the State it was applied against. It is the inverse of
// grammar+phase: Lines(event, state) must reproduce the original feed text
// exactly, which is how tests in package phase check a round trip.
package render

import (
	"fmt"
	"strings"

	"github.com/baseball-sim/feedcore/domain"
)

// Lines renders event against state into the display lines the feed would
// have shown for it.
func Lines(event domain.Event, state domain.State) ([]string, error) {
	switch e := event.(type) {
	case domain.PlayBall:
		return []string{"Play Ball!"}, nil

	case domain.BatterUp:
		return []string{fmt.Sprintf("%s steps up to bat.", e.Batter.DisplayName())}, nil

	case domain.Ball:
		count := countText(e.Count.Balls, e.Count.Strikes)
		pitcherName := func() (string, error) {
			if state.Pitcher == nil {
				return "", &domain.PreconditionError{Field: "pitcher"}
			}
			return state.Pitcher.DisplayName(), nil
		}
		batterName := func() (string, error) {
			if state.Batter == nil {
				return "", &domain.PreconditionError{Field: "batter"}
			}
			return state.Batter.DisplayName(), nil
		}
		switch f := e.Flavor.(type) {
		case domain.BallPeriod:
			return []string{fmt.Sprintf("Ball. %s.", count)}, nil
		case domain.BallComma:
			return []string{fmt.Sprintf("Ball, %s.", count)}, nil
		case domain.WayOutside:
			return []string{fmt.Sprintf("Ball, way outside. %s.", count)}, nil
		case domain.ExtremelyOutside:
			return []string{fmt.Sprintf("Ball, extremely outside. %s.", count)}, nil
		case domain.JustOutside:
			name, err := pitcherName()
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s is just outside. Ball, %s.", name, count)}, nil
		case domain.MissesTheZone:
			name, err := pitcherName()
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s misses the zone. Ball, %s.", name, count)}, nil
		case domain.JustMisses:
			name, err := pitcherName()
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s just misses the zone. Ball, %s.", name, count)}, nil
		case domain.MissesBigTime:
			name, err := pitcherName()
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s misses big time. Ball, %s.", name, count)}, nil
		case domain.Stumbles:
			name, err := pitcherName()
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s stumbles. Ball, %s.", name, count)}, nil
		case domain.ThrowsOutside:
			name, err := pitcherName()
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s throws outside. Ball, %s.", name, count)}, nil
		case domain.DoesNotChase:
			name, err := batterName()
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s does not chase. Ball, %s.", name, count)}, nil
		case domain.DoesntBlink:
			name, err := batterName()
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s doesn't blink. Ball, %s.", name, count)}, nil
		case domain.LaysOffOutside:
			name, err := batterName()
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s lays off outside. Ball, %s.", name, count)}, nil
		case domain.LooksAtBallOutside:
			name, err := batterName()
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s looks at ball outside. Ball, %s.", name, count)}, nil
		case domain.BallAdjective:
			return []string{fmt.Sprintf("%s pitch. Ball, %s.", f.Adjective, count)}, nil
		}
		return nil, &domain.InvariantError{Detail: "ball event with unknown flavor"}

	case domain.Strike:
		count := countText(e.Count.Balls, e.Count.Strikes)
		pitcherName := func() (string, error) {
			if state.Pitcher == nil {
				return "", &domain.PreconditionError{Field: "pitcher"}
			}
			return state.Pitcher.DisplayName(), nil
		}
		batterName := func() (string, error) {
			if state.Batter == nil {
				return "", &domain.PreconditionError{Field: "batter"}
			}
			return state.Batter.DisplayName(), nil
		}
		switch f := e.Flavor.(type) {
		case domain.NoStrikeFlavor:
			return []string{fmt.Sprintf("Strike. %s.", count)}, nil
		case domain.Looking:
			return []string{fmt.Sprintf("Strike, looking. %s.", count)}, nil
		case domain.Swinging:
			return []string{fmt.Sprintf("Strike, swinging. %s.", count)}, nil
		case domain.ThrowsAStrike:
			name, err := pitcherName()
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s throws a strike. %s.", name, count)}, nil
		case domain.DropsItIn:
			name, err := pitcherName()
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s drops it in for a strike. %s.", name, count)}, nil
		case domain.CaughtLooking:
			name, err := batterName()
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s is caught looking. %s.", name, count)}, nil
		case domain.Chases:
			name, err := batterName()
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s chases the pitch. %s.", name, count)}, nil
		case domain.GuessesWrong:
			name, err := batterName()
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s guesses wrong. %s.", name, count)}, nil
		case domain.AdjectiveSwing:
			return []string{fmt.Sprintf("A %s swing and a strike, swinging. %s.", f.Adjective, count)}, nil
		}
		return nil, &domain.InvariantError{Detail: "strike event with unknown flavor"}

	case domain.Foul:
		count := countText(e.Count.Balls, e.Count.Strikes)
		switch e.Flavor.(type) {
		case domain.FoulBall:
			return []string{fmt.Sprintf("Foul ball. %s.", count)}, nil
		case domain.FoulTip:
			return []string{fmt.Sprintf("Foul tip. %s.", count)}, nil
		case domain.FoulsItBack:
			return []string{fmt.Sprintf("%s fouls it back. %s.", e.Batter.DisplayName(), count)}, nil
		case domain.FoulsItOff:
			return []string{fmt.Sprintf("%s fouls it off. %s.", e.Batter.DisplayName(), count)}, nil
		}
		return nil, &domain.InvariantError{Detail: "foul event with unknown flavor"}

	case domain.Strikeout:
		switch e.Flavor.(type) {
		case domain.NamedBoth:
			if e.Pitcher == nil {
				return nil, &domain.PreconditionError{Field: "pitcher"}
			}
			return []string{fmt.Sprintf("%s strikes out %s looking.", e.Pitcher.DisplayName(), e.Batter.DisplayName())}, nil
		case domain.NamedBatter:
			return []string{fmt.Sprintf("%s strikes out swinging.", e.Batter.DisplayName())}, nil
		}
		return nil, &domain.InvariantError{Detail: "strikeout event with unknown flavor"}

	case domain.Walk:
		switch e.Flavor.(type) {
		case domain.DrawsWalk:
			return []string{fmt.Sprintf("%s draws a walk.", e.Batter.DisplayName())}, nil
		case domain.EarnsWalk:
			return []string{fmt.Sprintf("%s earns a walk.", e.Batter.DisplayName())}, nil
		case domain.Ball4:
			return []string{fmt.Sprintf("%s walks.", e.Batter.DisplayName())}, nil
		}
		return nil, &domain.InvariantError{Detail: "walk event with unknown flavor"}

	case domain.Flyout:
		contactText, err := renderContact(e.Contact, state)
		if err != nil {
			return nil, err
		}
		var second string
		if e.CatchFlavor != nil {
			second = fmt.Sprintf("Fly out to %s on a %s catch.", e.Defender.DisplayName(), e.CatchFlavor)
		} else {
			second = fmt.Sprintf("Fly out to %s.", e.Defender.DisplayName())
		}
		lines := []string{contactText, second}
		return append(lines, advancementLines(e.Advancements)...), nil

	case domain.GroundOut:
		contactText, err := renderContact(e.Contact, state)
		if err != nil {
			return nil, err
		}
		lines := []string{contactText, fieldingLine(e.Fielding)}
		switch e.Flavor.(type) {
		case domain.GroundOutTo:
			lines = append(lines, fmt.Sprintf("Groundout to %s.", e.Fielding.Defender.DisplayName()))
		case domain.HitsAGroundout:
			lines = append(lines, fmt.Sprintf("%s hits a groundout.", e.Batter.DisplayName()))
		case domain.ForcedOutAtFirst:
			lines = append(lines, fmt.Sprintf("%s is forced out at first.", e.Batter.DisplayName()))
		default:
			return nil, &domain.InvariantError{Detail: "groundout event with unknown flavor"}
		}
		return append(lines, advancementLines(e.Advancements)...), nil

	case domain.FieldersChoice:
		contactText, err := renderContact(e.Contact, state)
		if err != nil {
			return nil, err
		}
		forceLine := fmt.Sprintf("%s is forced out at %s.", e.RunnerOut.DisplayName(), forcedBaseName(e.RunnerOut.Base))
		return []string{contactText, fieldingLine(e.Fielding), forceLine, "Fielder's choice."}, nil

	case domain.Hit:
		contactText, err := renderContact(e.Contact, state)
		if err != nil {
			return nil, err
		}
		lines := []string{contactText}
		switch f := e.Fielding.(type) {
		case domain.Fielding:
			lines = append(lines, fieldingLine(f))
		case domain.FailedFielding:
			lines = append(lines, failedFieldingLine(f))
		default:
			return nil, &domain.InvariantError{Detail: "hit event with unknown fielding attempt"}
		}
		switch e.Flavor.(type) {
		case domain.Hits:
			lines = append(lines, fmt.Sprintf("%s hits a %s!", e.Batter.DisplayName(), e.Type))
		case domain.IsOnWith:
			lines = append(lines, fmt.Sprintf("%s is on with a %s!", e.Batter.DisplayName(), e.Type))
		default:
			return nil, &domain.InvariantError{Detail: "hit event with unknown flavor"}
		}
		return append(lines, advancementLines(e.Advancements)...), nil

	case domain.HomeRun:
		contactText, err := renderContact(e.Contact, state)
		if err != nil {
			return nil, err
		}
		return []string{contactText, fmt.Sprintf("%s hits a Home Run!", e.Batter.DisplayName())}, nil

	case domain.EndOfHalfInning:
		half := "bottom"
		if e.TopOfInning {
			half = "top"
		}
		return []string{fmt.Sprintf("End of the %s of the %d.", half, e.Inning+1)}, nil
	}

	return nil, &domain.InvariantError{Detail: "unknown event type"}
}

func countText(balls, strikes int) string {
	return fmt.Sprintf("%d-%d", balls, strikes)
}

func renderContact(c domain.Contact, state domain.State) (string, error) {
	if state.Batter == nil {
		return "", &domain.PreconditionError{Field: "batter"}
	}
	var b strings.Builder
	if c.Sound != nil {
		fmt.Fprintf(&b, "%s! ", c.Sound)
	}
	switch {
	case c.Verb != nil && c.IntoPlay:
		fmt.Fprintf(&b, "%s %s the pitch into play", state.Batter.DisplayName(), c.Verb)
	case c.Verb != nil && c.Descriptor != nil:
		fmt.Fprintf(&b, "%s %s %s %s", state.Batter.DisplayName(), c.Verb, c.Descriptor, c.Location)
	case c.Verb != nil:
		fmt.Fprintf(&b, "%s %s it", state.Batter.DisplayName(), c.Verb)
		if c.Location != nil {
			fmt.Fprintf(&b, " to %s", c.Location)
		}
	case c.Adjective != nil:
		fmt.Fprintf(&b, "A %s hit", c.Adjective)
		if c.Location != nil {
			fmt.Fprintf(&b, " to %s", c.Location)
		}
	default:
		return "", &domain.InvariantError{Detail: "contact with neither verb nor adjective"}
	}
	b.WriteString("...")
	return b.String(), nil
}

func fieldingLine(f domain.Fielding) string {
	return fmt.Sprintf("%s %s", f.Defender.DisplayName(), f.Flavor)
}

func failedFieldingLine(f domain.FailedFielding) string {
	return fmt.Sprintf("%s %s", f.Defender.DisplayName(), f.Flavor)
}

func advancementLines(advs []domain.RunnerAdvancement) []string {
	lines := make([]string, 0, len(advs))
	for _, a := range advs {
		switch v := a.(type) {
		case domain.Scored:
			lines = append(lines, fmt.Sprintf("%s scores!", v.Who.DisplayName()))
		case domain.Advanced:
			switch v.Flavor.(type) {
			case domain.AdvancesToFlavor:
				lines = append(lines, fmt.Sprintf("%s advances to %s.", v.Who.DisplayName(), baseName(v.To)))
			case domain.ToFlavor:
				lines = append(lines, fmt.Sprintf("%s to %s.", v.Who.DisplayName(), baseName(v.To)))
			}
		}
	}
	return lines
}

// baseName renders the base a runner advanced to, capitalized as the feed
// writes it in advancement lines ("advances to Second.").
func baseName(b domain.Base) string {
	switch b {
	case domain.First:
		return "First"
	case domain.Second:
		return "Second"
	case domain.Third:
		return "Third"
	}
	return "Home"
}

// forcedBaseName follows the base+1 convention for force-out lines: Base is
// the runner's own (0-indexed) occupied base, but the feed names the base
// they were forced out advancing toward.
func forcedBaseName(b domain.Base) string {
	switch b {
	case domain.First:
		return "Second"
	case domain.Second:
		return "Third"
	}
	return "Home"
}
