package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/scblakely/chordid/algorithms/chroma"
	"github.com/scblakely/chordid/algorithms/tonal"
	"github.com/spf13/cobra"
)

type classifyOptions struct {
	stdin  bool
	top    int
	asJSON bool
}

func newClassifyCmd(opts *options) *cobra.Command {
	co := &classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify [c c# d d# e f f# g g# a a# b]",
		Short: "Classifies a chromagram",
		Long: `Classifies one chromagram given as 12 arguments, or with --stdin one
chromagram per line (values separated by spaces or commas).`,
		Example: "  chordid classify 1 0 0 0 1 0 0 1 0 0 0 0\n  chordid classify --stdin < frames.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := opts.classifier(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if co.stdin {
				if len(args) > 0 {
					return fmt.Errorf("--stdin takes no arguments")
				}
				return classifyLines(cc, cmd.InOrStdin(), out, co)
			}

			v, err := parseChroma(args)
			if err != nil {
				return err
			}
			return classifyOne(cc, v, out, co)
		},
	}

	cmd.Flags().BoolVar(&co.stdin, "stdin", false, "read chromagrams from standard input")
	cmd.Flags().IntVar(&co.top, "top", 0, "also print the N best candidates")
	cmd.Flags().BoolVar(&co.asJSON, "json", false, "print results as JSON")
	return cmd
}

func classifyLines(cc *tonal.ChordClassifier, r io.Reader, w io.Writer, co *classifyOptions) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := parseChroma(splitFields(text))
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := classifyOne(cc, v, w, co); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return scanner.Err()
}

// classifyRecord is the JSON form of one classification.
type classifyRecord struct {
	Status     string            `json:"status"`
	Name       string            `json:"name"`
	ID         int               `json:"id"`
	Index      int               `json:"index"`
	Score      float64           `json:"score"`
	Energy     float64           `json:"energy"`
	MIDINotes  []int             `json:"midi_notes,omitempty"`
	Candidates []tonal.Candidate `json:"candidates,omitempty"`
}

func classifyOne(cc *tonal.ChordClassifier, v chroma.Vector, w io.Writer, co *classifyOptions) error {
	res, err := cc.Classify(v)
	if err != nil {
		return err
	}

	var candidates []tonal.Candidate
	if co.top > 0 {
		candidates, err = cc.Rank(v, co.top)
		if err != nil {
			return err
		}
	}

	if co.asJSON {
		return json.NewEncoder(w).Encode(classifyRecord{
			Status:     res.Status.String(),
			Name:       res.Name(),
			ID:         res.ID(),
			Index:      res.Index,
			Score:      res.Score,
			Energy:     res.Energy,
			MIDINotes:  midiInts(res.MIDINotes()),
			Candidates: candidates,
		})
	}

	if res.Detected() {
		fmt.Fprintf(w, "%s\tid=%d\troot=%s\tquality=%s\tnotes=%s\tscore=%.4f\n",
			res.Name(), res.ID(), chroma.PitchClassName(res.Chord.Root),
			res.Chord.Quality, noteList(res.MIDINotes()), res.Score)
	} else {
		fmt.Fprintf(w, "%s\tid=%d\tstatus=%s\tscore=%.4f\n",
			res.Name(), res.ID(), res.Status, res.Score)
	}
	for i, c := range candidates {
		fmt.Fprintf(w, "  %d. %-10s index=%d\tscore=%.4f\n", i+1, c.Chord.Name(), c.Index, c.Score)
	}
	return nil
}

// midiInts widens notes so that JSON prints numbers rather than base64.
func midiInts(notes []uint8) []int {
	if notes == nil {
		return nil
	}
	out := make([]int, len(notes))
	for i, n := range notes {
		out[i] = int(n)
	}
	return out
}
