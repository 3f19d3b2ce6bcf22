package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/scblakely/chordid/algorithms/chroma"
	"github.com/scblakely/chordid/algorithms/tonal"
)

// splitFields splits a line of chroma values on whitespace and commas.
func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// parseChroma converts 12 textual values into a chroma vector.
func parseChroma(fields []string) (chroma.Vector, error) {
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return chroma.Vector{}, fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = v
	}
	return chroma.FromSlice(values)
}

// resolveChord accepts a chord name ("Dm7") or a numeric id ("22322").
func resolveChord(bank *tonal.ProfileBank, arg string) (tonal.Chord, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		c, ok := bank.LookupID(id)
		if !ok {
			return tonal.Chord{}, fmt.Errorf("no chord with id %d", id)
		}
		return c, nil
	}

	c, ok := bank.LookupName(arg)
	if !ok {
		return tonal.Chord{}, fmt.Errorf("unknown chord %q", arg)
	}
	return c, nil
}

func pitchClassList(pcs []int) string {
	names := make([]string, len(pcs))
	for i, pc := range pcs {
		names[i] = chroma.PitchClassName(pc)
	}
	return strings.Join(names, " ")
}

func noteList(notes []uint8) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = strconv.Itoa(int(n))
	}
	return strings.Join(parts, " ")
}
