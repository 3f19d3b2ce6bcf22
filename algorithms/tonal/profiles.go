package tonal

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/scblakely/chordid/algorithms/chroma"
	"github.com/scblakely/chordid/logging"
)

// Profile is the idealised chromagram of one chord.
type Profile struct {
	Index   int
	Chord   Chord
	Weights [chroma.NumBins]float64 // 1 on active bins, 0 elsewhere
	Active  int                     // number of active bins
	Bias    float64
	Mask    uint16 // absolute pitch-class set, bit pc for each active bin

	complement [chroma.NumBins]float64
}

// ProfileBank is the immutable, ordered set of chord profiles. Profile i
// belongs to variant i/12 at root i%12.
type ProfileBank struct {
	profiles []Profile
	byID     map[int]int
}

var defaultBank = sync.OnceValue(BuildProfileBank)

// DefaultProfileBank returns the process-wide bank, built on first use.
func DefaultProfileBank() *ProfileBank {
	return defaultBank()
}

// BuildProfileBank enumerates every root and variant of the vocabulary.
func BuildProfileBank() *ProfileBank {
	n := NumVariants * chroma.NumBins
	bank := &ProfileBank{
		profiles: make([]Profile, n),
		byID:     make(map[int]int, n),
	}

	for v, variant := range chordVariants {
		for root := 0; root < chroma.NumBins; root++ {
			idx := v*chroma.NumBins + root
			c := Chord{Root: root, Quality: variant.Quality, Intervals: variant.Intervals}
			p := Profile{
				Index: idx,
				Chord: c,
				Bias:  variant.Bias,
			}
			for _, pc := range c.PitchClasses() {
				p.Weights[pc] = 1
				p.Mask |= 1 << uint(pc)
				p.Active++
			}
			for i := range p.complement {
				p.complement[i] = 1 - p.Weights[i]
			}
			bank.profiles[idx] = p
			bank.byID[c.ID()] = idx
		}
	}

	logging.WithFields(logging.Fields{
		"component": "profile_bank",
	}).Debug("profile bank built", logging.Fields{
		"profiles": n,
		"variants": NumVariants,
	})

	return bank
}

// Len returns the number of profiles.
func (b *ProfileBank) Len() int {
	return len(b.profiles)
}

// Profile returns the profile at a canonical index.
func (b *ProfileBank) Profile(index int) (Profile, error) {
	if index < 0 || index >= len(b.profiles) {
		return Profile{}, fmt.Errorf("profile index %d out of range [0, %d)", index, len(b.profiles))
	}
	return b.profiles[index], nil
}

// Profiles returns a copy of all profiles in canonical order.
func (b *ProfileBank) Profiles() []Profile {
	out := make([]Profile, len(b.profiles))
	copy(out, b.profiles)
	return out
}

// Index encodes a chord as its canonical index.
func (b *ProfileBank) Index(c Chord) (int, error) {
	v, ok := c.variant()
	if !ok {
		return -1, fmt.Errorf("chord %s is not in the vocabulary", c.Name())
	}
	if c.Root < 0 || c.Root >= chroma.NumBins {
		return -1, fmt.Errorf("root %d out of range", c.Root)
	}
	return v*chroma.NumBins + c.Root, nil
}

// Decode returns the chord at a canonical index.
func (b *ProfileBank) Decode(index int) (Chord, error) {
	p, err := b.Profile(index)
	if err != nil {
		return Chord{}, err
	}
	return p.Chord, nil
}

// LookupID finds the chord for an id produced by Chord.ID.
func (b *ProfileBank) LookupID(id int) (Chord, bool) {
	idx, ok := b.byID[id]
	if !ok {
		return Chord{}, false
	}
	return b.profiles[idx].Chord, true
}

// LookupName parses a chord name such as "Dm7", "Bb9" or "F#7sus4".
func (b *ProfileBank) LookupName(name string) (Chord, bool) {
	name = strings.TrimSpace(name)
	root, used, err := chroma.ParsePitchClass(name)
	if err != nil {
		return Chord{}, false
	}
	v, ok := variantBySuffix[name[used:]]
	if !ok {
		return Chord{}, false
	}
	return b.profiles[v*chroma.NumBins+root].Chord, true
}

// Aliases groups profiles whose active bins are identical, such as C6 and
// Am7. Distinct variants never alias at the same root, so every group spans
// several roots. The lowest index in a group is what the classifier reports
// for an exact match. Groups are ordered by their lowest index.
func (b *ProfileBank) Aliases() [][]int {
	byMask := make(map[uint16][]int)
	for _, p := range b.profiles {
		byMask[p.Mask] = append(byMask[p.Mask], p.Index)
	}

	var groups [][]int
	for _, g := range byMask {
		if len(g) > 1 {
			groups = append(groups, g)
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i][0] < groups[j][0]
	})
	return groups
}
