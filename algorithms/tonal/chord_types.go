package tonal

import (
	"strings"
)

// ChordQuality is the chord family a profile belongs to.
type ChordQuality int

const (
	ChordMinor ChordQuality = iota
	ChordMajor
	ChordSuspended
	ChordDominant
	ChordDiminished5th
	ChordAugmented5th
)

// NumQualities is the number of chord qualities.
const NumQualities = 6

func (q ChordQuality) String() string {
	switch q {
	case ChordMinor:
		return "minor"
	case ChordMajor:
		return "major"
	case ChordSuspended:
		return "suspended"
	case ChordDominant:
		return "dominant"
	case ChordDiminished5th:
		return "diminished5th"
	case ChordAugmented5th:
		return "augmented5th"
	default:
		return "unknown"
	}
}

// Valid reports whether q is one of the six qualities.
func (q ChordQuality) Valid() bool {
	return q >= ChordMinor && q <= ChordAugmented5th
}

// baseMask returns the semitone set of the quality's base pattern,
// bit n set for n semitones above the root.
func (q ChordQuality) baseMask() uint16 {
	switch q {
	case ChordMinor:
		return semis(0, 3, 7)
	case ChordMajor:
		return semis(0, 4, 7)
	case ChordSuspended:
		return semis(0, 7)
	case ChordDominant:
		return semis(0, 4, 7, 10)
	case ChordDiminished5th:
		return semis(0, 3, 6)
	case ChordAugmented5th:
		return semis(0, 4, 8)
	default:
		return 0
	}
}

// Intervals is a set of notes layered on top of a quality's base pattern.
// Bit n is set for the note n semitones above the root.
type Intervals uint16

const (
	IntervalFlatNinth      Intervals = 1 << 1
	IntervalNinth          Intervals = 1 << 2 // also the suspended second
	IntervalSharpNinth     Intervals = 1 << 3
	IntervalEleventh       Intervals = 1 << 5 // also the suspended fourth
	IntervalSharpEleventh  Intervals = 1 << 6
	IntervalFlatThirteenth Intervals = 1 << 8
	IntervalThirteenth     Intervals = 1 << 9 // also the sixth
	IntervalMinorSeventh   Intervals = 1 << 10
	IntervalMajorSeventh   Intervals = 1 << 11
)

var intervalNames = []struct {
	flag Intervals
	name string
}{
	{IntervalFlatNinth, "b9"},
	{IntervalNinth, "9"},
	{IntervalSharpNinth, "#9"},
	{IntervalEleventh, "11"},
	{IntervalSharpEleventh, "#11"},
	{IntervalFlatThirteenth, "b13"},
	{IntervalThirteenth, "13"},
	{IntervalMinorSeventh, "b7"},
	{IntervalMajorSeventh, "maj7"},
}

// Has reports whether every interval in other is present.
func (iv Intervals) Has(other Intervals) bool {
	return iv&other == other
}

func (iv Intervals) String() string {
	if iv == 0 {
		return "none"
	}
	var parts []string
	rest := iv
	for _, n := range intervalNames {
		if iv.Has(n.flag) {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, "?")
	}
	return strings.Join(parts, ",")
}

// chordVariant is one (quality, intervals) combination of the vocabulary.
type chordVariant struct {
	Quality   ChordQuality
	Intervals Intervals
	Suffix    string
	Bias      float64
}

// Bias constants. The bias divides a profile's score, so values above 1
// favour a shape. Plain triads and the common sevenths get a small boost;
// the two-note power chord needs a larger one to survive background energy
// spread over its ten inactive bins.
const (
	biasNeutral    = 1.0
	biasCommon     = 1.06
	biasPowerChord = 1.5
)

// chordVariants is the canonical vocabulary. Order matters: a profile's index
// is variant*12 + root, variants are sorted by note count and then quality,
// so any strict superset of a chord always sits at a higher index.
var chordVariants = []chordVariant{
	// 2 notes
	{ChordSuspended, 0, "5", biasPowerChord},

	// 3 notes
	{ChordMinor, 0, "m", biasCommon},
	{ChordMajor, 0, "", biasCommon},
	{ChordSuspended, IntervalEleventh, "sus4", biasNeutral},
	{ChordSuspended, IntervalNinth, "sus2", biasNeutral},
	{ChordDiminished5th, 0, "dim", biasCommon},
	{ChordAugmented5th, 0, "aug", biasCommon},

	// 4 notes
	{ChordMinor, IntervalNinth, "madd9", biasNeutral},
	{ChordMinor, IntervalEleventh, "madd11", biasNeutral},
	{ChordMinor, IntervalThirteenth, "m6", biasNeutral},
	{ChordMinor, IntervalMinorSeventh, "m7", biasCommon},
	{ChordMinor, IntervalMajorSeventh, "mmaj7", biasNeutral},
	{ChordMajor, IntervalNinth, "add9", biasNeutral},
	{ChordMajor, IntervalEleventh, "add11", biasNeutral},
	{ChordMajor, IntervalThirteenth, "6", biasNeutral},
	{ChordMajor, IntervalMajorSeventh, "maj7", biasNeutral},
	{ChordSuspended, IntervalNinth | IntervalEleventh, "sus24", biasNeutral},
	{ChordSuspended, IntervalNinth | IntervalMinorSeventh, "7sus2", biasNeutral},
	{ChordSuspended, IntervalEleventh | IntervalThirteenth, "6sus4", biasNeutral},
	{ChordSuspended, IntervalEleventh | IntervalMinorSeventh, "7sus4", biasNeutral},
	{ChordSuspended, IntervalNinth | IntervalMajorSeventh, "maj7sus2", biasNeutral},
	{ChordSuspended, IntervalEleventh | IntervalMajorSeventh, "maj7sus4", biasNeutral},
	{ChordDominant, 0, "7", biasCommon},
	{ChordDiminished5th, IntervalThirteenth, "dim7", biasNeutral},
	{ChordDiminished5th, IntervalMinorSeventh, "m7b5", biasNeutral},
	{ChordDiminished5th, IntervalMajorSeventh, "dimmaj7", biasNeutral},
	{ChordAugmented5th, IntervalNinth, "augadd9", biasNeutral},
	{ChordAugmented5th, IntervalMinorSeventh, "7#5", biasNeutral},
	{ChordAugmented5th, IntervalMajorSeventh, "maj7#5", biasNeutral},

	// 5 notes
	{ChordMinor, IntervalNinth | IntervalThirteenth, "m6/9", biasNeutral},
	{ChordMinor, IntervalNinth | IntervalMinorSeventh, "m9", biasNeutral},
	{ChordMinor, IntervalEleventh | IntervalMinorSeventh, "m7add11", biasNeutral},
	{ChordMinor, IntervalNinth | IntervalMajorSeventh, "mmaj9", biasNeutral},
	{ChordMajor, IntervalNinth | IntervalThirteenth, "6/9", biasNeutral},
	{ChordMajor, IntervalNinth | IntervalMajorSeventh, "maj9", biasNeutral},
	{ChordMajor, IntervalSharpEleventh | IntervalMajorSeventh, "maj7#11", biasNeutral},
	{ChordSuspended, IntervalNinth | IntervalEleventh | IntervalMinorSeventh, "9sus4", biasNeutral},
	{ChordDominant, IntervalFlatNinth, "7b9", biasNeutral},
	{ChordDominant, IntervalNinth, "9", biasNeutral},
	{ChordDominant, IntervalSharpNinth, "7#9", biasNeutral},
	{ChordDominant, IntervalEleventh, "7add11", biasNeutral},
	{ChordDominant, IntervalSharpEleventh, "7#11", biasNeutral},
	{ChordDominant, IntervalFlatThirteenth, "7b13", biasNeutral},
	{ChordDominant, IntervalThirteenth, "7add13", biasNeutral},
	{ChordDiminished5th, IntervalNinth | IntervalMinorSeventh, "m9b5", biasNeutral},
	{ChordDiminished5th, IntervalEleventh | IntervalMinorSeventh, "m11b5", biasNeutral},
	{ChordAugmented5th, IntervalFlatNinth | IntervalMinorSeventh, "7#5b9", biasNeutral},
	{ChordAugmented5th, IntervalNinth | IntervalMinorSeventh, "9#5", biasNeutral},
	{ChordAugmented5th, IntervalNinth | IntervalMajorSeventh, "maj9#5", biasNeutral},

	// 6 notes
	{ChordMinor, IntervalNinth | IntervalEleventh | IntervalMinorSeventh, "m11", biasNeutral},
	{ChordMinor, IntervalNinth | IntervalThirteenth | IntervalMinorSeventh, "m13", biasNeutral},
	{ChordMajor, IntervalNinth | IntervalSharpEleventh | IntervalMajorSeventh, "maj9#11", biasNeutral},
	{ChordMajor, IntervalNinth | IntervalThirteenth | IntervalMajorSeventh, "maj13", biasNeutral},
	{ChordSuspended, IntervalNinth | IntervalEleventh | IntervalThirteenth | IntervalMinorSeventh, "13sus4", biasNeutral},
	{ChordDominant, IntervalFlatNinth | IntervalFlatThirteenth, "7b9b13", biasNeutral},
	{ChordDominant, IntervalNinth | IntervalEleventh, "11", biasNeutral},
	{ChordDominant, IntervalNinth | IntervalSharpEleventh, "9#11", biasNeutral},
	{ChordDominant, IntervalNinth | IntervalThirteenth, "13", biasNeutral},
	{ChordDominant, IntervalSharpNinth | IntervalFlatThirteenth, "7#9b13", biasNeutral},
}

// NumVariants is the number of (quality, intervals) combinations per root.
var NumVariants = len(chordVariants)

type variantKey struct {
	quality   ChordQuality
	intervals Intervals
}

var (
	variantByKey    = make(map[variantKey]int, len(chordVariants))
	variantBySuffix = make(map[string]int, len(chordVariants))
)

func init() {
	for i, v := range chordVariants {
		variantByKey[variantKey{v.Quality, v.Intervals}] = i
		variantBySuffix[v.Suffix] = i
	}
}

func semis(offsets ...int) uint16 {
	var m uint16
	for _, o := range offsets {
		m |= 1 << uint(o)
	}
	return m
}
