package tonal

import (
	"fmt"

	"github.com/scblakely/chordid/algorithms/chroma"
	"gitlab.com/gomidi/midi/v2"
)

const (
	// NoChordID is reported when no chord was detected.
	NoChordID = 0
	// NoChordName is reported when no chord was detected.
	NoChordName = "N.C."

	// idRootStride separates the root from the packed interval mask in an id.
	idRootStride = 10000

	// middleC is the MIDI note used for root pitch class C.
	middleC = 60
)

// Chord identifies a chord by root pitch class, quality and added intervals.
type Chord struct {
	Root      int          `json:"root"` // 0=C ... 11=B
	Quality   ChordQuality `json:"quality"`
	Intervals Intervals    `json:"intervals"`
}

// variant returns the vocabulary position of the chord's quality and intervals.
func (c Chord) variant() (int, bool) {
	v, ok := variantByKey[variantKey{c.Quality, c.Intervals}]
	return v, ok
}

// Valid reports whether the chord is part of the vocabulary.
func (c Chord) Valid() bool {
	_, ok := c.variant()
	return ok && c.Root >= 0 && c.Root < chroma.NumBins
}

// mask is the relative semitone set, bit n for n semitones above the root.
func (c Chord) mask() uint16 {
	return c.Quality.baseMask() | uint16(c.Intervals)
}

// Semitones returns the chord tones as ascending offsets from the root.
func (c Chord) Semitones() []int {
	m := c.mask()
	out := make([]int, 0, 6)
	for s := 0; s < chroma.NumBins; s++ {
		if m&(1<<uint(s)) != 0 {
			out = append(out, s)
		}
	}
	return out
}

// PitchClasses returns the absolute pitch classes of the chord tones in
// root-relative order.
func (c Chord) PitchClasses() []int {
	semitones := c.Semitones()
	for i, s := range semitones {
		semitones[i] = (c.Root + s) % chroma.NumBins
	}
	return semitones
}

// Num packs the chord tones into a 12-bit number. The root is bit 11 and the
// note n semitones above it is bit 11-n, so every chord has Num >= 2048.
func (c Chord) Num() int {
	num := 0
	for _, s := range c.Semitones() {
		num |= 1 << uint(chroma.NumBins-1-s)
	}
	return num
}

// ID combines root and packed tones: 10000*root + Num.
func (c Chord) ID() int {
	return idRootStride*c.Root + c.Num()
}

// SplitID separates an id into its root and packed tone number.
func SplitID(id int) (root, num int) {
	root = id / idRootStride
	return root, id - idRootStride*root
}

// Name returns the display name, e.g. "C", "Dm7", "G7sus4".
func (c Chord) Name() string {
	root := chroma.PitchClassName(c.Root)
	if v, ok := c.variant(); ok {
		return root + chordVariants[v].Suffix
	}
	return fmt.Sprintf("%s(%s+%s)", root, c.Quality, c.Intervals)
}

func (c Chord) String() string {
	return c.Name()
}

// MIDINotes lists the chord tones as MIDI notes in root position, with the
// root in the octave starting at middle C.
func (c Chord) MIDINotes() []uint8 {
	base := middleC + c.Root
	semitones := c.Semitones()
	notes := make([]uint8, len(semitones))
	for i, s := range semitones {
		notes[i] = uint8(base + s)
	}
	return notes
}

// NoteOnMessages builds one note-on message per chord tone.
func (c Chord) NoteOnMessages(channel, velocity uint8) []midi.Message {
	notes := c.MIDINotes()
	msgs := make([]midi.Message, len(notes))
	for i, n := range notes {
		msgs[i] = midi.NoteOn(channel, n, velocity)
	}
	return msgs
}

// NoteOffMessages builds one note-off message per chord tone.
func (c Chord) NoteOffMessages(channel uint8) []midi.Message {
	notes := c.MIDINotes()
	msgs := make([]midi.Message, len(notes))
	for i, n := range notes {
		msgs[i] = midi.NoteOff(channel, n)
	}
	return msgs
}
