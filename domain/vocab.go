package domain

// The closed vocabularies below are exhaustive: a literal in the feed that
// doesn't match one of these is a hard parse error (domain.GrammarError),
// not a silent fallback. See spec.md §3 and §9 ("closed-vocabulary drift").

// SoundEffect is the exclamation preceding a NamedWithSound contact line.
type SoundEffect int

const (
	Bam SoundEffect = iota
	Boom
	Crack
	Smack
	Smash
	Thwack
	Wham
)

var soundEffectText = map[SoundEffect]string{
	Bam: "BAM", Boom: "BOOM", Crack: "CRACK", Smack: "SMACK",
	Smash: "SMASH", Thwack: "THWACK", Wham: "WHAM",
}

func (s SoundEffect) String() string { return soundEffectText[s] }

// ContactVerb is the verb describing how the bat met the ball.
type ContactVerb int

const (
	Bats ContactVerb = iota
	Chops
	Clips
	Drags
	Dribbles
	HitsVerb
	Knocks
	Nudges
	Pokes
	Punches
	Pushes
	Rolls
	Slaps
	Smacks
	Sputters
	Swats
	Taps
	Thumps
	Trickles
	Whacks
)

var contactVerbText = map[ContactVerb]string{
	Bats: "bats", Chops: "chops", Clips: "clips", Drags: "drags",
	Dribbles: "dribbles", HitsVerb: "hits", Knocks: "knocks", Nudges: "nudges",
	Pokes: "pokes", Punches: "punches", Pushes: "pushes", Rolls: "rolls",
	Slaps: "slaps", Smacks: "smacks", Sputters: "sputters", Swats: "swats",
	Taps: "taps", Thumps: "thumps", Trickles: "trickles", Whacks: "whacks",
}

func (c ContactVerb) String() string { return contactVerbText[c] }

// PitchAdjective (13 entries) flavors a Ball event described only by
// adjective ("Dominant pitch. Ball, 1-1.").
type PitchAdjective int

const (
	Dominant PitchAdjective = iota
	Wild
	Nasty
	Sharp
	Tailing
	Biting
	Filthy
	Lazy
	Sneaky
	Heavy
	Wicked
	Dotted
	Floating
)

var pitchAdjectiveText = map[PitchAdjective]string{
	Dominant: "Dominant", Wild: "Wild", Nasty: "Nasty", Sharp: "Sharp",
	Tailing: "Tailing", Biting: "Biting", Filthy: "Filthy", Lazy: "Lazy",
	Sneaky: "Sneaky", Heavy: "Heavy", Wicked: "Wicked", Dotted: "Dotted",
	Floating: "Floating",
}

func (p PitchAdjective) String() string { return pitchAdjectiveText[p] }

// CatchAdjective (11 entries) flavors a Flyout caught with flair.
type CatchAdjective int

const (
	Diving CatchAdjective = iota
	Leaping
	Sliding
	Running
	Tumbling
	Graceful
	Athletic
	Acrobatic
	Lunging
	Sprawling
	Spectacular
)

var catchAdjectiveText = map[CatchAdjective]string{
	Diving: "diving", Leaping: "leaping", Sliding: "sliding", Running: "running",
	Tumbling: "tumbling", Graceful: "graceful", Athletic: "athletic",
	Acrobatic: "acrobatic", Lunging: "lunging", Sprawling: "sprawling",
	Spectacular: "spectacular",
}

func (c CatchAdjective) String() string { return catchAdjectiveText[c] }

// ContactAdjective (7 entries) flavors a contact line with no named verb,
// e.g. "A solid hit to Left Field...".
type ContactAdjective int

const (
	Solid ContactAdjective = iota
	Weak
	Sharp2
	Lazy2
	Towering
	Scorching
	Flared
)

var contactAdjectiveText = map[ContactAdjective]string{
	Solid: "solid", Weak: "weak", Sharp2: "sharp", Lazy2: "lazy",
	Towering: "towering", Scorching: "scorching", Flared: "flared",
}

func (c ContactAdjective) String() string { return contactAdjectiveText[c] }

// SwingAdjective (4 entries) flavors a swinging strike.
type SwingAdjective int

const (
	Wild2 SwingAdjective = iota
	Late
	Eager
	Hopeless
)

var swingAdjectiveText = map[SwingAdjective]string{
	Wild2: "wild", Late: "late", Eager: "eager", Hopeless: "hopeless",
}

func (s SwingAdjective) String() string { return swingAdjectiveText[s] }

// FieldLocation (8 entries) is a named outfield/infield zone. Absent
// location on a Contact means "into play", not one of these.
type FieldLocation int

const (
	LeftField FieldLocation = iota
	CenterField
	RightField
	DeepLeftField
	DeepCenterField
	DeepRightField
	Infield
	Foul_
)

var fieldLocationText = map[FieldLocation]string{
	LeftField: "Left Field", CenterField: "Center Field", RightField: "Right Field",
	DeepLeftField: "Deep Left Field", DeepCenterField: "Deep Center Field",
	DeepRightField: "Deep Right Field", Infield: "Infield", Foul_: "Foul Territory",
}

func (f FieldLocation) String() string { return fieldLocationText[f] }

// FieldingFlavor (26 entries) is the closed set of adverbial phrases
// describing a successful fielding attempt, e.g. "{defender} scoops it...".
type FieldingFlavor int

const (
	ScoopsIt FieldingFlavor = iota
	FieldsIt
	GlovesIt
	CornersIt
	CollectsIt
	CradlesIt
	SnagsIt
	CorralsIt
	SecuresIt
	PocketsIt
	BackhandsIt
	GathersIt
	TrapsIt
	ScoopsItUp
	ChargesIt
	BarehandsIt
	SmothersIt
	BlocksIt
	HandlesIt
	ReelsItIn
	ReachesIt
	PicksItUp
	GrabsIt
	CollectsItCleanly
	CleanlyFieldsIt
	ScoopsItOnTheShortHop
)

var fieldingFlavorText = map[FieldingFlavor]string{
	ScoopsIt: "scoops it...", FieldsIt: "fields it...", GlovesIt: "gloves it...",
	CornersIt: "corners it...", CollectsIt: "collects it...", CradlesIt: "cradles it...",
	SnagsIt: "snags it...", CorralsIt: "corrals it...", SecuresIt: "secures it...",
	PocketsIt: "pockets it...", BackhandsIt: "backhands it...", GathersIt: "gathers it...",
	TrapsIt: "traps it...", ScoopsItUp: "scoops it up...", ChargesIt: "charges it...",
	BarehandsIt: "barehands it...", SmothersIt: "smothers it...", BlocksIt: "blocks it...",
	HandlesIt: "handles it...", ReelsItIn: "reels it in...", ReachesIt: "reaches it...",
	PicksItUp: "picks it up...", GrabsIt: "grabs it...",
	CollectsItCleanly: "collects it cleanly...", CleanlyFieldsIt: "cleanly fields it...",
	ScoopsItOnTheShortHop: "scoops it on the short hop...",
}

func (f FieldingFlavor) String() string { return fieldingFlavorText[f] }

// FailedFieldingFlavor (12 entries) describes a defender's unsuccessful
// attempt; always implies a hit follows.
type FailedFieldingFlavor int

const (
	CantHandleIt FailedFieldingFlavor = iota
	BootsIt
	CantGloveIt
	MissesIt
	JuggleesIt
	LosesItInTheSun
	CantGetToIt
	LetsItGetBy
	CantComeUpWithIt
	DeflectsIt
	CantMakeThePlay
	FumblesIt
)

var failedFieldingFlavorText = map[FailedFieldingFlavor]string{
	CantHandleIt: "can't handle it...", BootsIt: "boots it...",
	CantGloveIt: "can't glove it...", MissesIt: "misses it...",
	JuggleesIt: "juggles it...", LosesItInTheSun: "loses it in the sun...",
	CantGetToIt: "can't get to it...", LetsItGetBy: "lets it get by...",
	CantComeUpWithIt: "can't come up with it...", DeflectsIt: "deflects it...",
	CantMakeThePlay: "can't make the play...", FumblesIt: "fumbles it...",
}

func (f FailedFieldingFlavor) String() string { return failedFieldingFlavorText[f] }

// PitchDescriptor (3 entries) stands in for the fixed object word "it" on a
// Named contact line that has no preceding sound effect, e.g. "Jessica
// Wills hits the pitch to Left Field...". Each literal carries the
// trailing "to" the template needs before the field location.
type PitchDescriptor int

const (
	ThePitchTo PitchDescriptor = iota
	TheBallTo
	TheOfferingTo
)

var pitchDescriptorText = map[PitchDescriptor]string{
	ThePitchTo: "the pitch to", TheBallTo: "the ball to", TheOfferingTo: "the offering to",
}

func (p PitchDescriptor) String() string { return pitchDescriptorText[p] }

// HitType is the base-hit length.
type HitType int

const (
	Single HitType = iota
	Double
	Triple
)

var hitTypeText = map[HitType]string{Single: "Single", Double: "Double", Triple: "Triple"}

func (h HitType) String() string { return hitTypeText[h] }
