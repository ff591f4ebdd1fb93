package grammar

import (
	"sort"

	"github.com/baseball-sim/feedcore/domain"
)

// literalRule builds an Alt over a closed vocabulary's literal text forms,
// trying longer literals first so a short literal that happens to be a
// prefix of a longer one never shadows it.
func literalRule[T comparable](text map[T]string) Rule[T] {
	type entry struct {
		key T
		lit string
	}
	entries := make([]entry, 0, len(text))
	for k, v := range text {
		entries = append(entries, entry{k, v})
	}
	sort.Slice(entries, func(i, j int) bool { return len(entries[i].lit) > len(entries[j].lit) })

	rules := make([]Rule[T], len(entries))
	for i, e := range entries {
		e := e
		rules[i] = func(input string) (string, T, bool) {
			if len(input) >= len(e.lit) && input[:len(e.lit)] == e.lit {
				return input[len(e.lit):], e.key, true
			}
			var zero T
			return input, zero, false
		}
	}
	return Alt(rules...)
}

// The package-level vocab text maps in domain are unexported, so each
// closed vocabulary gets its own small unexported text table here, mirroring
// the String() methods in domain/vocab.go. Keeping the literal forms next
// to the grammar (rather than calling String() per key) lets this package
// order alternatives by literal length without depending on map iteration
// order in domain.

var pitchAdjectiveText = map[domain.PitchAdjective]string{
	domain.Dominant: "Dominant", domain.Wild: "Wild", domain.Nasty: "Nasty",
	domain.Sharp: "Sharp", domain.Tailing: "Tailing", domain.Biting: "Biting",
	domain.Filthy: "Filthy", domain.Lazy: "Lazy", domain.Sneaky: "Sneaky",
	domain.Heavy: "Heavy", domain.Wicked: "Wicked", domain.Dotted: "Dotted",
	domain.Floating: "Floating",
}

var catchAdjectiveText = map[domain.CatchAdjective]string{
	domain.Diving: "diving", domain.Leaping: "leaping", domain.Sliding: "sliding",
	domain.Running: "running", domain.Tumbling: "tumbling", domain.Graceful: "graceful",
	domain.Athletic: "athletic", domain.Acrobatic: "acrobatic", domain.Lunging: "lunging",
	domain.Sprawling: "sprawling", domain.Spectacular: "spectacular",
}

var contactAdjectiveText = map[domain.ContactAdjective]string{
	domain.Solid: "solid", domain.Weak: "weak", domain.Sharp2: "sharp",
	domain.Lazy2: "lazy", domain.Towering: "towering", domain.Scorching: "scorching",
	domain.Flared: "flared",
}

var swingAdjectiveText = map[domain.SwingAdjective]string{
	domain.Wild2: "wild", domain.Late: "late", domain.Eager: "eager", domain.Hopeless: "hopeless",
}

var fieldLocationText = map[domain.FieldLocation]string{
	domain.LeftField: "Left Field", domain.CenterField: "Center Field",
	domain.RightField: "Right Field", domain.DeepLeftField: "Deep Left Field",
	domain.DeepCenterField: "Deep Center Field", domain.DeepRightField: "Deep Right Field",
	domain.Infield: "Infield", domain.Foul_: "Foul Territory",
}

var fieldingFlavorText = map[domain.FieldingFlavor]string{
	domain.ScoopsIt: "scoops it...", domain.FieldsIt: "fields it...",
	domain.GlovesIt: "gloves it...", domain.CornersIt: "corners it...",
	domain.CollectsIt: "collects it...", domain.CradlesIt: "cradles it...",
	domain.SnagsIt: "snags it...", domain.CorralsIt: "corrals it...",
	domain.SecuresIt: "secures it...", domain.PocketsIt: "pockets it...",
	domain.BackhandsIt: "backhands it...", domain.GathersIt: "gathers it...",
	domain.TrapsIt: "traps it...", domain.ScoopsItUp: "scoops it up...",
	domain.ChargesIt: "charges it...", domain.BarehandsIt: "barehands it...",
	domain.SmothersIt: "smothers it...", domain.BlocksIt: "blocks it...",
	domain.HandlesIt: "handles it...", domain.ReelsItIn: "reels it in...",
	domain.ReachesIt: "reaches it...", domain.PicksItUp: "picks it up...",
	domain.GrabsIt: "grabs it...", domain.CollectsItCleanly: "collects it cleanly...",
	domain.CleanlyFieldsIt: "cleanly fields it...",
	domain.ScoopsItOnTheShortHop: "scoops it on the short hop...",
}

var failedFieldingFlavorText = map[domain.FailedFieldingFlavor]string{
	domain.CantHandleIt: "can't handle it...", domain.BootsIt: "boots it...",
	domain.CantGloveIt: "can't glove it...", domain.MissesIt: "misses it...",
	domain.JuggleesIt: "juggles it...", domain.LosesItInTheSun: "loses it in the sun...",
	domain.CantGetToIt: "can't get to it...", domain.LetsItGetBy: "lets it get by...",
	domain.CantComeUpWithIt: "can't come up with it...", domain.DeflectsIt: "deflects it...",
	domain.CantMakeThePlay: "can't make the play...", domain.FumblesIt: "fumbles it...",
}

var soundEffectText = map[domain.SoundEffect]string{
	domain.Bam: "BAM", domain.Boom: "BOOM", domain.Crack: "CRACK", domain.Smack: "SMACK",
	domain.Smash: "SMASH", domain.Thwack: "THWACK", domain.Wham: "WHAM",
}

var contactVerbText = map[domain.ContactVerb]string{
	domain.Bats: "bats", domain.Chops: "chops", domain.Clips: "clips", domain.Drags: "drags",
	domain.Dribbles: "dribbles", domain.HitsVerb: "hits", domain.Knocks: "knocks",
	domain.Nudges: "nudges", domain.Pokes: "pokes", domain.Punches: "punches",
	domain.Pushes: "pushes", domain.Rolls: "rolls", domain.Slaps: "slaps",
	domain.Smacks: "smacks", domain.Sputters: "sputters", domain.Swats: "swats",
	domain.Taps: "taps", domain.Thumps: "thumps", domain.Trickles: "trickles",
	domain.Whacks: "whacks",
}

// PitchAdjective matches one of the 13 closed pitch-adjective literals.
func PitchAdjective() Rule[domain.PitchAdjective] { return literalRule(pitchAdjectiveText) }

// CatchAdjective matches one of the 11 closed catch-adjective literals.
func CatchAdjective() Rule[domain.CatchAdjective] { return literalRule(catchAdjectiveText) }

// ContactAdjective matches one of the 7 closed contact-adjective literals.
func ContactAdjective() Rule[domain.ContactAdjective] { return literalRule(contactAdjectiveText) }

// SwingAdjective matches one of the 4 closed swing-adjective literals.
func SwingAdjective() Rule[domain.SwingAdjective] { return literalRule(swingAdjectiveText) }

// FieldLocation matches one of the 8 closed field-location literals.
func FieldLocation() Rule[domain.FieldLocation] { return literalRule(fieldLocationText) }

// FieldingFlavor matches one of the 26 closed fielding-flavor literals.
func FieldingFlavor() Rule[domain.FieldingFlavor] { return literalRule(fieldingFlavorText) }

// FailedFieldingFlavor matches one of the 12 closed failed-fielding literals.
func FailedFieldingFlavor() Rule[domain.FailedFieldingFlavor] {
	return literalRule(failedFieldingFlavorText)
}

// SoundEffect matches one of the closed sound-effect exclamations.
func SoundEffect() Rule[domain.SoundEffect] { return literalRule(soundEffectText) }

// ContactVerb matches one of the closed contact-verb literals.
func ContactVerb() Rule[domain.ContactVerb] { return literalRule(contactVerbText) }

var pitchDescriptorText = map[domain.PitchDescriptor]string{
	domain.ThePitchTo: "the pitch to", domain.TheBallTo: "the ball to",
	domain.TheOfferingTo: "the offering to",
}

// PitchDescriptor matches one of the 3 closed pitch-descriptor literals
// that stand in for "it" on a sound-less Named contact line.
func PitchDescriptor() Rule[domain.PitchDescriptor] { return literalRule(pitchDescriptorText) }

var hitTypeText = map[domain.HitType]string{
	domain.Single: "Single!", domain.Double: "Double!", domain.Triple: "Triple!",
}

// HitType matches one of the closed base-hit-length literals, including the
// trailing "!" the feed always pairs with it.
func HitType() Rule[domain.HitType] { return literalRule(hitTypeText) }
