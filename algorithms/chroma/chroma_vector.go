package chroma

import (
	"errors"
	"fmt"
	"math"

	"github.com/scblakely/chordid/algorithms/common"
)

// NumBins is the number of pitch classes in a chromagram.
const NumBins = 12

// ErrInvalidInput reports a chromagram that breaks the input contract:
// wrong length, non-finite or negative energy.
var ErrInvalidInput = errors.New("invalid chromagram")

// Vector is a 12-bin chromagram. Index 0 is C, 1 is C#, ..., 11 is B.
// Values are relative energies and need not be normalised.
type Vector [NumBins]float64

// FromSlice copies values into a Vector. The slice must hold exactly 12
// finite, non-negative values.
func FromSlice(values []float64) (Vector, error) {
	var v Vector
	if len(values) != NumBins {
		return v, fmt.Errorf("%w: expected %d bins, got %d", ErrInvalidInput, NumBins, len(values))
	}
	copy(v[:], values)
	if err := v.Validate(); err != nil {
		return Vector{}, err
	}
	return v, nil
}

// FromArray copies a fixed-size array into a Vector.
func FromArray(values *[NumBins]float64) (Vector, error) {
	if values == nil {
		return Vector{}, fmt.Errorf("%w: nil array", ErrInvalidInput)
	}
	v := Vector(*values)
	if err := v.Validate(); err != nil {
		return Vector{}, err
	}
	return v, nil
}

// Validate checks that every bin is finite and non-negative and that the
// total energy is representable.
func (v Vector) Validate() error {
	if i := common.FirstNonFinite(v[:]); i >= 0 {
		return fmt.Errorf("%w: bin %d (%s) is %v", ErrInvalidInput, i, PitchClassName(i), v[i])
	}
	if i := common.FirstNegative(v[:]); i >= 0 {
		return fmt.Errorf("%w: bin %d (%s) is negative (%v)", ErrInvalidInput, i, PitchClassName(i), v[i])
	}
	if total := v.Energy(); math.IsInf(total, 0) {
		return fmt.Errorf("%w: total energy overflows", ErrInvalidInput)
	}
	return nil
}

// Energy returns the total energy across all bins.
func (v Vector) Energy() float64 {
	return common.Sum(v[:])
}

// Normalized returns v scaled to unit total energy along with the original
// total. A silent vector normalises to all zeros.
func (v Vector) Normalized() (Vector, float64) {
	var out Vector
	total := common.NormalizeSumTo(out[:], v[:])
	return out, total
}

// Rotate shifts energy up by the given number of semitones, so that
// bin i moves to bin (i+semitones) mod 12.
func (v Vector) Rotate(semitones int) Vector {
	var out Vector
	for i, val := range v {
		out[mod12(i+semitones)] = val
	}
	return out
}

// Slice returns a copy of the bins as a slice.
func (v Vector) Slice() []float64 {
	out := make([]float64, NumBins)
	copy(out, v[:])
	return out
}

func mod12(n int) int {
	n %= NumBins
	if n < 0 {
		n += NumBins
	}
	return n
}
