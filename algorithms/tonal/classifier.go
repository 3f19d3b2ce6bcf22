package tonal

import (
	"fmt"
	"math"
	"sort"

	"github.com/scblakely/chordid/algorithms/chroma"
	"github.com/scblakely/chordid/algorithms/common"
	"github.com/scblakely/chordid/logging"
	"gonum.org/v1/gonum/floats"
)

// ClassifierParams configures the chord classifier
type ClassifierParams struct {
	// NoiseFloor is the total chromagram energy at or below which the input
	// is reported as silent.
	NoiseFloor float64 `json:"noise_floor"`

	// MaxDistance rejects a winner whose score is above it as ambiguous.
	// Scores are computed on unit-energy chroma, so this is scale free.
	// Zero disables the check.
	MaxDistance float64 `json:"max_distance"`

	// ShortfallWeight scales the penalty for expected chord tones that carry
	// less than their share of energy.
	ShortfallWeight float64 `json:"shortfall_weight"`
}

// DefaultClassifierParams returns the parameters used by NewDefaultChordClassifier.
func DefaultClassifierParams() ClassifierParams {
	return ClassifierParams{
		NoiseFloor:      1e-6,
		MaxDistance:     0.045, // a flat chromagram scores ~0.051
		ShortfallWeight: 0.5,
	}
}

// Validate checks that every parameter is finite and non-negative.
func (p ClassifierParams) Validate() error {
	check := func(name string, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%s must be finite and non-negative, got %v", name, v)
		}
		return nil
	}
	if err := check("noise_floor", p.NoiseFloor); err != nil {
		return err
	}
	if err := check("max_distance", p.MaxDistance); err != nil {
		return err
	}
	return check("shortfall_weight", p.ShortfallWeight)
}

// Status tells whether a chord was reported.
type Status int

const (
	StatusDetected Status = iota
	// StatusSilent means total energy is at or below the noise floor.
	StatusSilent
	// StatusAmbiguous means the best match is too far from any profile.
	StatusAmbiguous
)

func (s Status) String() string {
	switch s {
	case StatusDetected:
		return "detected"
	case StatusSilent:
		return "silent"
	case StatusAmbiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Result is the outcome of one classification.
type Result struct {
	Status Status  `json:"status"`
	Chord  Chord   `json:"chord"` // zero unless Status is StatusDetected
	Index  int     `json:"index"` // canonical profile index, -1 unless detected
	Score  float64 `json:"score"` // best score; 0 when silent
	Energy float64 `json:"energy"`
}

// Detected reports whether a chord was found.
func (r Result) Detected() bool {
	return r.Status == StatusDetected
}

// ID returns the chord id, or NoChordID.
func (r Result) ID() int {
	if !r.Detected() {
		return NoChordID
	}
	return r.Chord.ID()
}

// Num returns the packed 12-bit chord tones, or 0.
func (r Result) Num() int {
	if !r.Detected() {
		return 0
	}
	return r.Chord.Num()
}

// Name returns the chord name, or NoChordName.
func (r Result) Name() string {
	if !r.Detected() {
		return NoChordName
	}
	return r.Chord.Name()
}

// MIDINotes returns the chord's MIDI notes, or nil.
func (r Result) MIDINotes() []uint8 {
	if !r.Detected() {
		return nil
	}
	return r.Chord.MIDINotes()
}

// Candidate is a scored profile.
type Candidate struct {
	Index int     `json:"index"`
	Chord Chord   `json:"chord"`
	Score float64 `json:"score"`
}

// ChordClassifier matches chromagrams against a ProfileBank. It keeps no
// per-call state and is safe for concurrent use.
type ChordClassifier struct {
	bank   *ProfileBank
	params ClassifierParams
	logger logging.Logger
}

// NewDefaultChordClassifier creates a classifier over the default bank with
// default parameters.
func NewDefaultChordClassifier() *ChordClassifier {
	cc, err := NewChordClassifier(nil, DefaultClassifierParams())
	if err != nil {
		panic(err) // defaults are valid
	}
	return cc
}

// NewChordClassifier creates a classifier. A nil bank selects DefaultProfileBank.
func NewChordClassifier(bank *ProfileBank, params ClassifierParams) (*ChordClassifier, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid classifier params: %w", err)
	}
	if bank == nil {
		bank = DefaultProfileBank()
	}

	return &ChordClassifier{
		bank:   bank,
		params: params,
		logger: logging.WithFields(logging.Fields{
			"component": "chord_classifier",
		}),
	}, nil
}

// Bank returns the profile bank the classifier scores against.
func (cc *ChordClassifier) Bank() *ProfileBank {
	return cc.bank
}

// Params returns the classifier parameters.
func (cc *ChordClassifier) Params() ClassifierParams {
	return cc.params
}

// DetectChord classifies a chromagram given as a slice of exactly 12 values.
func (cc *ChordClassifier) DetectChord(values []float64) (Result, error) {
	v, err := chroma.FromSlice(values)
	if err != nil {
		return Result{}, err
	}
	return cc.Classify(v)
}

// DetectChordArray classifies a chromagram given as a fixed-size array.
func (cc *ChordClassifier) DetectChordArray(values *[chroma.NumBins]float64) (Result, error) {
	v, err := chroma.FromArray(values)
	if err != nil {
		return Result{}, err
	}
	return cc.Classify(v)
}

// Classify scores v against every profile and returns the best match, or a
// silent/ambiguous result when the gate rejects it.
func (cc *ChordClassifier) Classify(v chroma.Vector) (Result, error) {
	if err := v.Validate(); err != nil {
		return Result{}, err
	}

	debug := cc.logger.Enabled(logging.DebugLevel)

	energy := v.Energy()
	if energy <= cc.params.NoiseFloor {
		if debug {
			cc.logger.Debug("chromagram below noise floor", logging.Fields{
				"energy":      energy,
				"noise_floor": cc.params.NoiseFloor,
			})
		}
		return Result{Status: StatusSilent, Index: -1, Energy: energy}, nil
	}

	scores := cc.scoreAll(v)
	best := common.ArgMin(scores)
	if best < 0 {
		return Result{}, fmt.Errorf("no finite score for chromagram %v", v)
	}
	score := scores[best]

	if cc.params.MaxDistance > 0 && score > cc.params.MaxDistance {
		if debug {
			cc.logger.Debug("best match above max distance", logging.Fields{
				"nearest":      cc.bank.profiles[best].Chord.Name(),
				"score":        score,
				"max_distance": cc.params.MaxDistance,
			})
		}
		return Result{Status: StatusAmbiguous, Index: -1, Score: score, Energy: energy}, nil
	}

	result := Result{
		Status: StatusDetected,
		Chord:  cc.bank.profiles[best].Chord,
		Index:  best,
		Score:  score,
		Energy: energy,
	}
	if debug {
		cc.logger.Debug("chord classified", logging.Fields{
			"chord": result.Name(),
			"id":    result.ID(),
			"score": score,
		})
	}
	return result, nil
}

// Scores returns the score of every profile for v, in canonical order.
// Lower is better.
func (cc *ChordClassifier) Scores(v chroma.Vector) ([]float64, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return cc.scoreAll(v), nil
}

// Rank returns the n best-scoring profiles for v, best first. Equal scores
// keep canonical order.
func (cc *ChordClassifier) Rank(v chroma.Vector, n int) ([]Candidate, error) {
	scores, err := cc.Scores(v)
	if err != nil {
		return nil, err
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] < scores[order[j]]
	})

	if n <= 0 || n > len(order) {
		n = len(order)
	}
	out := make([]Candidate, n)
	for i := 0; i < n; i++ {
		idx := order[i]
		out[i] = Candidate{Index: idx, Chord: cc.bank.profiles[idx].Chord, Score: scores[idx]}
	}
	return out, nil
}

func (cc *ChordClassifier) scoreAll(v chroma.Vector) []float64 {
	c, _ := v.Normalized()
	var sq chroma.Vector
	floats.MulTo(sq[:], c[:], c[:])

	scores := make([]float64, len(cc.bank.profiles))
	for i := range cc.bank.profiles {
		scores[i] = cc.score(&cc.bank.profiles[i], &c, &sq)
	}
	return scores
}

// score is the biased distance between unit-energy chroma c and profile p:
//
//	mismatch  = sqrt(sum of c_i^2 over inactive bins) / ((12-N) * bias)
//	shortfall = sqrt(sum of max(0, 1/N - c_i)^2 over active bins) / (N * bias)
//	score     = mismatch + ShortfallWeight * shortfall
//
// An exact pattern match scores 0.
func (cc *ChordClassifier) score(p *Profile, c, sq *chroma.Vector) float64 {
	n := float64(p.Active)
	mismatch := math.Sqrt(floats.Dot(p.complement[:], sq[:])) / ((chroma.NumBins - n) * p.Bias)

	expected := 1 / n
	var missing float64
	for i, w := range p.Weights {
		if w == 0 {
			continue
		}
		if d := expected - c[i]; d > 0 {
			missing += d * d
		}
	}
	shortfall := math.Sqrt(missing) / (n * p.Bias)

	return mismatch + cc.params.ShortfallWeight*shortfall
}
