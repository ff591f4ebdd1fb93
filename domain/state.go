package domain

// Optional represents the "double option" tri-state convention used by the
// upstream feed for nullable fields: a field can be Absent (no change in a
// delta), Null (explicitly cleared), or Set to a value. Absent is the zero
// Optional; Null and Set are both present and differ only in the null flag.
// Only Absent vs. (Null|Set) matters to State.Update, and only Null vs Set
// matters once present.
type Optional[T any] struct {
	present bool
	isNull  bool
	value   T
}

// Abs returns an absent optional: "no change" when applied to State.
func Abs[T any]() Optional[T] { return Optional[T]{} }

// Null returns a present-but-cleared optional.
func Null[T any]() Optional[T] { return Optional[T]{present: true, isNull: true} }

// Some returns a present optional holding value.
func Some[T any](value T) Optional[T] { return Optional[T]{present: true, value: value} }

// IsAbsent reports whether the field was omitted from the delta entirely.
func (o Optional[T]) IsAbsent() bool { return !o.present }

// IsNull reports whether the field was present and explicitly cleared.
func (o Optional[T]) IsNull() bool { return o.present && o.isNull }

// Value returns the set value and true, or the zero value and false if the
// optional is absent or null.
func (o Optional[T]) Value() (T, bool) {
	if !o.present || o.isNull {
		var zero T
		return zero, false
	}
	return o.value, true
}

// State is the running snapshot of one game, mutated only by Update.
type State struct {
	Batter    *PlayerDesc
	Pitcher   *PlayerDesc
	Defenders []PlayerDesc // nil when never set or cleared by a Null delta

	Baserunners []RunnerDesc

	Started     bool
	TeamAtBat   TeamAtBat
	Inning      int
	TopOfInning bool

	Balls   int
	Strikes int
	Outs    int

	HomeScore float64
	AwayScore float64
}

// NewState returns the default state at game creation.
func NewState() State {
	return State{
		TeamAtBat:   Away,
		TopOfInning: true,
	}
}

// StateDelta is a field-wise, non-merging overwrite. Only Batter, Defenders,
// and Pitcher distinguish Null (cleared) from Absent (no change); the rest
// are scalar/sequence fields that only distinguish Absent from Set.
type StateDelta struct {
	Batter    Optional[PlayerDesc]
	Pitcher   Optional[PlayerDesc]
	Defenders Optional[[]PlayerDesc]

	Baserunners Optional[[]RunnerDesc]

	Started     Optional[bool]
	TeamAtBat   Optional[TeamAtBat]
	Inning      Optional[int]
	TopOfInning Optional[bool]

	Balls   Optional[int]
	Strikes Optional[int]
	Outs    Optional[int]

	HomeScore Optional[float64]
	AwayScore Optional[float64]
}

// Update applies delta to s in place, field by field. Absent means "keep
// current value"; Null clears a nullable field to its zero/nil; Set replaces
// outright. There is no merging of sequences: a Set baserunners list replaces
// the whole slice.
func (s *State) Update(delta StateDelta) {
	if v, ok := delta.Batter.Value(); ok {
		cp := v
		s.Batter = &cp
	} else if delta.Batter.IsNull() {
		s.Batter = nil
	}

	if v, ok := delta.Pitcher.Value(); ok {
		cp := v
		s.Pitcher = &cp
	} else if delta.Pitcher.IsNull() {
		s.Pitcher = nil
	}

	if v, ok := delta.Defenders.Value(); ok {
		s.Defenders = v
	} else if delta.Defenders.IsNull() {
		s.Defenders = nil
	}

	if v, ok := delta.Baserunners.Value(); ok {
		s.Baserunners = v
	}

	if v, ok := delta.Started.Value(); ok {
		s.Started = v
	}
	if v, ok := delta.TeamAtBat.Value(); ok {
		s.TeamAtBat = v
	}
	if v, ok := delta.Inning.Value(); ok {
		s.Inning = v
	}
	if v, ok := delta.TopOfInning.Value(); ok {
		s.TopOfInning = v
	}
	if v, ok := delta.Balls.Value(); ok {
		s.Balls = v
	}
	if v, ok := delta.Strikes.Value(); ok {
		s.Strikes = v
	}
	if v, ok := delta.Outs.Value(); ok {
		s.Outs = v
	}
	// The upstream implementation this was distilled from assigned HomeScore
	// twice and never touched AwayScore; that is treated as a bug (see
	// DESIGN.md) and fixed here: each field gets its own overwrite.
	if v, ok := delta.HomeScore.Value(); ok {
		s.HomeScore = v
	}
	if v, ok := delta.AwayScore.Value(); ok {
		s.AwayScore = v
	}
}
