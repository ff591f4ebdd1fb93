package domain

// Event is the typed result of fusing one display line with its state
// delta. Concrete variants are listed below; the marker method keeps the
// sum closed to this package.
type Event interface {
	isEvent()
}

// PlayBall opens the game.
type PlayBall struct{}

func (PlayBall) isEvent() {}

// BatterUp announces the next batter stepping in.
type BatterUp struct {
	Batter PlayerDesc
}

func (BatterUp) isEvent() {}

// BallFlavor is the closed, 15-member set of ball-call phrasings spec.md §3
// lists. Each is a zero-field marker except Adjective, which carries the
// PitchAdjective it names.
type BallFlavor interface {
	isBallFlavor()
}

// BallPeriod renders as the bare "Ball. {count}."
type BallPeriod struct{}

func (BallPeriod) isBallFlavor() {}

// BallComma renders as the bare "Ball, {count}." (comma instead of period
// before the count, with no further qualifier).
type BallComma struct{}

func (BallComma) isBallFlavor() {}

// WayOutside renders as "Ball, way outside. {count}."
type WayOutside struct{}

func (WayOutside) isBallFlavor() {}

// JustOutside renders as "{pitcher} is just outside. Ball, {count}."
type JustOutside struct{}

func (JustOutside) isBallFlavor() {}

// ExtremelyOutside renders as "Ball, extremely outside. {count}."
type ExtremelyOutside struct{}

func (ExtremelyOutside) isBallFlavor() {}

// MissesTheZone renders as "{pitcher} misses the zone. Ball, {count}."
type MissesTheZone struct{}

func (MissesTheZone) isBallFlavor() {}

// DoesNotChase renders as "{batter} does not chase. Ball, {count}."
type DoesNotChase struct{}

func (DoesNotChase) isBallFlavor() {}

// DoesntBlink renders as "{batter} doesn't blink. Ball, {count}."
type DoesntBlink struct{}

func (DoesntBlink) isBallFlavor() {}

// JustMisses renders as "{pitcher} just misses the zone. Ball, {count}." —
// the longer, more-specific prefix that must be tried before MissesTheZone.
type JustMisses struct{}

func (JustMisses) isBallFlavor() {}

// LaysOffOutside renders as "{batter} lays off outside. Ball, {count}."
type LaysOffOutside struct{}

func (LaysOffOutside) isBallFlavor() {}

// LooksAtBallOutside renders as "{batter} looks at ball outside. Ball, {count}."
type LooksAtBallOutside struct{}

func (LooksAtBallOutside) isBallFlavor() {}

// MissesBigTime renders as "{pitcher} misses big time. Ball, {count}."
type MissesBigTime struct{}

func (MissesBigTime) isBallFlavor() {}

// Stumbles renders as "{pitcher} stumbles. Ball, {count}."
type Stumbles struct{}

func (Stumbles) isBallFlavor() {}

// ThrowsOutside renders as "{pitcher} throws outside. Ball, {count}."
type ThrowsOutside struct{}

func (ThrowsOutside) isBallFlavor() {}

// BallAdjective renders as "{adjective} pitch. Ball, {count}." — scenario S4.
type BallAdjective struct {
	Adjective PitchAdjective
}

func (BallAdjective) isBallFlavor() {}

// Ball is a pitch called a ball.
type Ball struct {
	Flavor BallFlavor
	Count  Count
}

func (Ball) isEvent() {}

// StrikeFlavor distinguishes how a strike was recorded, per spec.md §3's
// closed 9-member set.
type StrikeFlavor interface {
	isStrikeFlavor()
}

// NoStrikeFlavor renders as the bare "Strike. {count}."
type NoStrikeFlavor struct{}

func (NoStrikeFlavor) isStrikeFlavor() {}

// Looking renders as the bare "Strike, looking. {count}."
type Looking struct{}

func (Looking) isStrikeFlavor() {}

// Swinging renders as the bare "Strike, swinging. {count}."
type Swinging struct{}

func (Swinging) isStrikeFlavor() {}

// ThrowsAStrike renders as "{pitcher} throws a strike. {count}."
type ThrowsAStrike struct{}

func (ThrowsAStrike) isStrikeFlavor() {}

// CaughtLooking renders as "{batter} is caught looking. {count}."
type CaughtLooking struct{}

func (CaughtLooking) isStrikeFlavor() {}

// Chases renders as "{batter} chases the pitch. {count}."
type Chases struct{}

func (Chases) isStrikeFlavor() {}

// GuessesWrong renders as "{batter} guesses wrong. {count}."
type GuessesWrong struct{}

func (GuessesWrong) isStrikeFlavor() {}

// DropsItIn renders as "{pitcher} drops it in for a strike. {count}."
type DropsItIn struct{}

func (DropsItIn) isStrikeFlavor() {}

// AdjectiveSwing renders as "A {adjective} swing and a strike, swinging. {count}."
type AdjectiveSwing struct {
	Adjective SwingAdjective
}

func (AdjectiveSwing) isStrikeFlavor() {}

// Strike is a pitch called a strike.
type Strike struct {
	Flavor StrikeFlavor
	Count  Count
}

func (Strike) isEvent() {}

// FoulFlavor is the closed set of foul-ball phrasings.
type FoulFlavor interface {
	isFoulFlavor()
}

// FoulBall renders as the bare "Foul ball. {count}." line.
type FoulBall struct{}

func (FoulBall) isFoulFlavor() {}

// FoulTip renders as "Foul tip. {count}."
type FoulTip struct{}

func (FoulTip) isFoulFlavor() {}

// FoulsItBack renders as "{batter} fouls it back. {count}."
type FoulsItBack struct{}

func (FoulsItBack) isFoulFlavor() {}

// FoulsItOff renders as "{batter} fouls it off. {count}."
type FoulsItOff struct{}

func (FoulsItOff) isFoulFlavor() {}

// Foul is a foul ball: contact made, no outcome, count unchanged except
// strikes capped at two.
type Foul struct {
	Batter PlayerDesc
	Flavor FoulFlavor
	Count  Count
}

func (Foul) isEvent() {}

// StrikeoutFlavor distinguishes whether the closing line names the pitcher
// as well as the batter.
type StrikeoutFlavor interface {
	isStrikeoutFlavor()
}

// NamedBoth renders as "{pitcher} strikes out {batter} looking."
type NamedBoth struct{}

func (NamedBoth) isStrikeoutFlavor() {}

// NamedBatter renders as "{batter} strikes out swinging."
type NamedBatter struct{}

func (NamedBatter) isStrikeoutFlavor() {}

// Strikeout ends the at-bat on a third strike.
type Strikeout struct {
	Batter  PlayerDesc
	Pitcher *PlayerDesc // set only when Flavor is NamedBoth
	Flavor  StrikeoutFlavor
}

func (Strikeout) isEvent() {}

// WalkFlavor is the closed set of walk phrasings.
type WalkFlavor interface {
	isWalkFlavor()
}

// Ball4 renders as "{batter} walks."
type Ball4 struct{}

func (Ball4) isWalkFlavor() {}

// DrawsWalk renders as "{batter} draws a walk."
type DrawsWalk struct{}

func (DrawsWalk) isWalkFlavor() {}

// EarnsWalk renders as "{batter} earns a walk."
type EarnsWalk struct{}

func (EarnsWalk) isWalkFlavor() {}

// Walk ends the at-bat on a fourth ball, advancing the batter to first.
type Walk struct {
	Batter PlayerDesc
	Flavor WalkFlavor
}

func (Walk) isEvent() {}

// Flyout ends the at-bat on a caught fly ball.
type Flyout struct {
	Batter       PlayerDesc
	Contact      Contact
	Defender     PlayerDesc
	CatchFlavor  *CatchAdjective // nil for a routine catch
	Advancements []RunnerAdvancement
}

func (Flyout) isEvent() {}

// GroundOutFlavor is the closed set of groundout-resolution phrasings.
type GroundOutFlavor interface {
	isGroundOutFlavor()
}

// GroundOutTo renders as "Groundout to {defender}."
type GroundOutTo struct{}

func (GroundOutTo) isGroundOutFlavor() {}

// HitsAGroundout renders as "{batter} hits a groundout."
type HitsAGroundout struct{}

func (HitsAGroundout) isGroundOutFlavor() {}

// ForcedOutAtFirst renders as "{batter} is forced out at first."
type ForcedOutAtFirst struct{}

func (ForcedOutAtFirst) isGroundOutFlavor() {}

// GroundOut ends the at-bat (or a runner's appearance on the bases) on a
// fielded ground ball.
type GroundOut struct {
	Batter       PlayerDesc
	Contact      Contact
	Fielding     Fielding
	Flavor       GroundOutFlavor
	Advancements []RunnerAdvancement
}

func (GroundOut) isEvent() {}

// FieldersChoice ends the at-bat with the batter safe but a preceding
// runner retired in the fielder's choice.
type FieldersChoice struct {
	Batter    PlayerDesc
	Contact   Contact
	Fielding  Fielding
	RunnerOut RunnerDesc
}

func (FieldersChoice) isEvent() {}

// HitFlavor distinguishes the two base-hit phrasings.
type HitFlavor interface {
	isHitFlavor()
}

// Hits renders as "{batter} hits a {type}!"
type Hits struct{}

func (Hits) isHitFlavor() {}

// IsOnWith renders as "{batter} is on with a {type}!"
type IsOnWith struct{}

func (IsOnWith) isHitFlavor() {}

// Hit is a single, double, or triple: a ball that got past the defense
// despite a defender's touch on it (a clean Fielding that still wasn't
// enough to convert the out, or a FailedFielding that missed it outright).
type Hit struct {
	Batter       PlayerDesc
	Contact      Contact
	Fielding     FieldingAttempt
	Type         HitType
	Flavor       HitFlavor
	Advancements []RunnerAdvancement
}

func (Hit) isEvent() {}

// HomeRun clears the field; the batter and every baserunner score.
type HomeRun struct {
	Batter       PlayerDesc
	Contact      Contact
	Advancements []RunnerAdvancement
}

func (HomeRun) isEvent() {}

// EndOfHalfInning closes out a half-inning on the third out.
type EndOfHalfInning struct {
	TopOfInning bool
	Inning      int
}

func (EndOfHalfInning) isEvent() {}

// Count is the ball-strike count at the moment of a pitch event, rendered
// as "balls-strikes".
type Count struct {
	Balls   int
	Strikes int
}
