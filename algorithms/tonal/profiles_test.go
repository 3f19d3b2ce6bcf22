package tonal

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileBankSize(t *testing.T) {
	bank := DefaultProfileBank()
	assert.Equal(t, 708, bank.Len())
	assert.Equal(t, 59, NumVariants)
	assert.Len(t, bank.Profiles(), 708)
	assert.Same(t, bank, DefaultProfileBank())
}

// Base patterns written out by hand at root C.
var basePatterns = []struct {
	quality ChordQuality
	pcs     []int
}{
	{ChordMinor, []int{0, 3, 7}},
	{ChordMajor, []int{0, 4, 7}},
	{ChordSuspended, []int{0, 7}},
	{ChordDominant, []int{0, 4, 7, 10}},
	{ChordDiminished5th, []int{0, 3, 6}},
	{ChordAugmented5th, []int{0, 4, 8}},
}

func TestProfileBankBasePatterns(t *testing.T) {
	bank := DefaultProfileBank()

	for _, bp := range basePatterns {
		for root := 0; root < 12; root++ {
			c := Chord{Root: root, Quality: bp.quality}
			idx, err := bank.Index(c)
			require.NoError(t, err)
			p, err := bank.Profile(idx)
			require.NoError(t, err)

			var want [12]float64
			for _, pc := range bp.pcs {
				want[(pc+root)%12] = 1
			}
			assert.Equal(t, want, p.Weights, "%s", c.Name())
			assert.Equal(t, len(bp.pcs), p.Active, "%s", c.Name())
		}
	}
}

func TestProfileBankLayout(t *testing.T) {
	bank := DefaultProfileBank()

	cases := map[int]string{
		0:   "C5",
		12:  "Cm",
		24:  "C",
		31:  "G",
		129: "Am7",
		168: "C6",
		264: "C7",
		276: "Cdim7",
		588: "Cm11",
		707: "B7#9b13",
	}
	for idx, name := range cases {
		c, err := bank.Decode(idx)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name(), "index %d", idx)
	}

	_, err := bank.Decode(-1)
	assert.Error(t, err)
	_, err = bank.Decode(708)
	assert.Error(t, err)
}

func TestProfileBankRoundTrip(t *testing.T) {
	bank := DefaultProfileBank()
	ids := make(map[int]bool)

	for i, p := range bank.Profiles() {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, i%12, p.Chord.Root)

		idx, err := bank.Index(p.Chord)
		require.NoError(t, err)
		assert.Equal(t, i, idx)

		byID, ok := bank.LookupID(p.Chord.ID())
		require.True(t, ok, "id %d", p.Chord.ID())
		assert.Equal(t, p.Chord, byID)

		byName, ok := bank.LookupName(p.Chord.Name())
		require.True(t, ok, "name %q", p.Chord.Name())
		assert.Equal(t, p.Chord, byName)

		assert.False(t, ids[p.Chord.ID()], "duplicate id %d", p.Chord.ID())
		ids[p.Chord.ID()] = true
	}
}

func TestProfileBankShapes(t *testing.T) {
	bank := DefaultProfileBank()

	for _, p := range bank.Profiles() {
		name := p.Chord.Name()
		assert.GreaterOrEqual(t, p.Active, 2, name)
		assert.Equal(t, 1.0, p.Weights[p.Chord.Root], "%s root inactive", name)
		assert.Greater(t, p.Bias, 0.0, name)

		active := 0
		for pc, w := range p.Weights {
			assert.True(t, w == 0 || w == 1, name)
			if w == 1 {
				active++
				assert.NotZero(t, p.Mask&(1<<uint(pc)), name)
			}
		}
		assert.Equal(t, p.Active, active, name)
	}
}

func TestProfileBankNoSameRootDuplicates(t *testing.T) {
	bank := DefaultProfileBank()

	for root := 0; root < 12; root++ {
		seen := make(map[uint16]string)
		for v := 0; v < NumVariants; v++ {
			p, err := bank.Profile(v*12 + root)
			require.NoError(t, err)
			if prev, ok := seen[p.Mask]; ok {
				t.Errorf("%s duplicates %s", p.Chord.Name(), prev)
			}
			seen[p.Mask] = p.Chord.Name()
		}
	}
}

func TestProfileBankSupersetsSortLater(t *testing.T) {
	bank := DefaultProfileBank()
	profiles := bank.Profiles()

	for _, a := range profiles {
		for _, b := range profiles {
			if a.Mask != b.Mask && a.Mask&b.Mask == a.Mask {
				assert.Less(t, a.Index, b.Index, "%s is a subset of %s", a.Chord.Name(), b.Chord.Name())
			}
		}
	}
}

func TestProfileBankAliases(t *testing.T) {
	bank := DefaultProfileBank()
	groups := bank.Aliases()

	assert.Len(t, groups, 163)
	assert.Equal(t, []int{36, 53}, groups[0])
	assert.Contains(t, groups, []int{129, 168})
	assert.Contains(t, groups, []int{276, 279, 282, 285})

	for _, g := range groups {
		require.GreaterOrEqual(t, len(g), 2)
		assert.True(t, sort.IntsAreSorted(g))
		mask := bank.profiles[g[0]].Mask
		for _, idx := range g[1:] {
			assert.Equal(t, mask, bank.profiles[idx].Mask)
		}
	}
	assert.True(t, sort.SliceIsSorted(groups, func(i, j int) bool {
		return groups[i][0] < groups[j][0]
	}))
}

func TestProfileBankLookup(t *testing.T) {
	bank := DefaultProfileBank()

	c, ok := bank.LookupName("Bb9")
	require.True(t, ok)
	assert.Equal(t, Chord{Root: 10, Quality: ChordDominant, Intervals: IntervalNinth}, c)

	c, ok = bank.LookupName(" F#7sus4 ")
	require.True(t, ok)
	assert.Equal(t, "F#7sus4", c.Name())

	c, ok = bank.LookupName("Ebm")
	require.True(t, ok)
	assert.Equal(t, "D#m", c.Name())

	_, ok = bank.LookupName("Cfoo")
	assert.False(t, ok)
	_, ok = bank.LookupName("H7")
	assert.False(t, ok)

	c, ok = bank.LookupID(72192)
	require.True(t, ok)
	assert.Equal(t, "G", c.Name())

	_, ok = bank.LookupID(NoChordID)
	assert.False(t, ok)
	c, ok = bank.LookupID(2193)
	require.True(t, ok)
	assert.Equal(t, "Cmaj7", c.Name())

	// {0, 11} has a root bit but no variant in the vocabulary.
	_, ok = bank.LookupID(2049)
	assert.False(t, ok)
	_, ok = bank.LookupID(5)
	assert.False(t, ok)

	_, err := bank.Index(Chord{Root: 0, Quality: ChordMajor, Intervals: IntervalFlatNinth})
	assert.Error(t, err)
	_, err = bank.Index(Chord{Root: 12, Quality: ChordMajor})
	assert.Error(t, err)
}
