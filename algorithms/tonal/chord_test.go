package tonal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChordNumAndID(t *testing.T) {
	cases := []struct {
		chord Chord
		name  string
		num   int
		id    int
	}{
		{Chord{Root: 0, Quality: ChordMajor}, "C", 2192, 2192},
		{Chord{Root: 0, Quality: ChordDominant}, "C7", 2194, 2194},
		{Chord{Root: 0, Quality: ChordMinor, Intervals: IntervalMinorSeventh}, "Cm7", 2322, 2322},
		{Chord{Root: 7, Quality: ChordMajor}, "G", 2192, 72192},
		{Chord{Root: 2, Quality: ChordMinor, Intervals: IntervalMinorSeventh}, "Dm7", 2322, 22322},
		{Chord{Root: 7, Quality: ChordSuspended, Intervals: IntervalEleventh | IntervalMinorSeventh}, "G7sus4", 2130, 72130},
		{Chord{Root: 4, Quality: ChordSuspended}, "E5", 2064, 42064},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.chord.Name())
			assert.Equal(t, tc.name, tc.chord.String())
			assert.Equal(t, tc.num, tc.chord.Num())
			assert.Equal(t, tc.id, tc.chord.ID())
			assert.True(t, tc.chord.Valid())

			root, num := SplitID(tc.id)
			assert.Equal(t, tc.chord.Root, root)
			assert.Equal(t, tc.num, num)
		})
	}
}

func TestChordPitchClasses(t *testing.T) {
	bb7 := Chord{Root: 10, Quality: ChordDominant}
	assert.Equal(t, []int{0, 4, 7, 10}, bb7.Semitones())
	assert.Equal(t, []int{10, 2, 5, 8}, bb7.PitchClasses())

	fSharpMinor := Chord{Root: 6, Quality: ChordMinor}
	assert.Equal(t, []int{6, 9, 1}, fSharpMinor.PitchClasses())
}

func TestChordOutsideVocabulary(t *testing.T) {
	c := Chord{Root: 0, Quality: ChordMajor, Intervals: IntervalFlatNinth}
	assert.False(t, c.Valid())
	assert.Equal(t, "C(major+b9)", c.Name())

	assert.False(t, Chord{Root: 12, Quality: ChordMajor}.Valid())
	assert.False(t, Chord{Root: 0, Quality: ChordQuality(9)}.Valid())
}

func TestChordMIDINotes(t *testing.T) {
	assert.Equal(t, []uint8{60, 64, 67}, Chord{Root: 0, Quality: ChordMajor}.MIDINotes())
	assert.Equal(t, []uint8{67, 71, 74, 77}, Chord{Root: 7, Quality: ChordDominant}.MIDINotes())
	assert.Equal(t, []uint8{71, 74, 77, 80}, Chord{Root: 11, Quality: ChordDiminished5th, Intervals: IntervalThirteenth}.MIDINotes())
}

func TestChordNoteMessages(t *testing.T) {
	c := Chord{Root: 2, Quality: ChordMinor}

	on := c.NoteOnMessages(3, 100)
	require.Len(t, on, 3)
	for i, want := range []uint8{62, 65, 69} {
		var ch, key, vel uint8
		require.True(t, on[i].GetNoteOn(&ch, &key, &vel))
		assert.Equal(t, uint8(3), ch)
		assert.Equal(t, want, key)
		assert.Equal(t, uint8(100), vel)
	}

	off := c.NoteOffMessages(3)
	require.Len(t, off, 3)
	for i, want := range []uint8{62, 65, 69} {
		var ch, key uint8
		require.True(t, off[i].GetNoteEnd(&ch, &key))
		assert.Equal(t, uint8(3), ch)
		assert.Equal(t, want, key)
	}
}

func TestIntervalsString(t *testing.T) {
	assert.Equal(t, "none", Intervals(0).String())
	assert.Equal(t, "9,b7", (IntervalNinth | IntervalMinorSeventh).String())
	assert.Equal(t, "b9,b13", (IntervalFlatNinth | IntervalFlatThirteenth).String())
	assert.True(t, (IntervalNinth | IntervalEleventh).Has(IntervalEleventh))
	assert.False(t, IntervalNinth.Has(IntervalNinth|IntervalEleventh))
}

func TestChordQualityString(t *testing.T) {
	assert.Equal(t, "minor", ChordMinor.String())
	assert.Equal(t, "augmented5th", ChordAugmented5th.String())
	assert.Equal(t, "unknown", ChordQuality(NumQualities).String())
	assert.False(t, ChordQuality(-1).Valid())
}
