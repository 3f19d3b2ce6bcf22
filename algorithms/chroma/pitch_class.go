package chroma

import (
	"fmt"
	"strings"
)

// pitchClassNames uses sharps for the black keys.
var pitchClassNames = [NumBins]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatNames = map[string]int{
	"Db": 1, "Eb": 3, "Gb": 6, "Ab": 8, "Bb": 10,
	"Cb": 11, "Fb": 4, "E#": 5, "B#": 0,
}

// PitchClassName returns the sharp spelling of a pitch class. Values outside
// 0..11 wrap.
func PitchClassName(pc int) string {
	return pitchClassNames[mod12(pc)]
}

// PitchClassNames returns the 12 note names in bin order.
func PitchClassNames() [NumBins]string {
	return pitchClassNames
}

// ParsePitchClass reads a note name at the start of s and returns its pitch
// class and the number of bytes consumed. Accepts sharps and flats in either
// case for the letter ("C#", "db").
func ParsePitchClass(s string) (int, int, error) {
	if s == "" {
		return 0, 0, fmt.Errorf("empty note name")
	}
	letter := strings.ToUpper(s[:1])
	if len(s) >= 2 && (s[1] == '#' || s[1] == 'b') {
		name := letter + s[1:2]
		for pc, n := range pitchClassNames {
			if n == name {
				return pc, 2, nil
			}
		}
		if pc, ok := flatNames[name]; ok {
			return pc, 2, nil
		}
	}
	for pc, n := range pitchClassNames {
		if n == letter {
			return pc, 1, nil
		}
	}
	return 0, 0, fmt.Errorf("unknown note name %q", s)
}
