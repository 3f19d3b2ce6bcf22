package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/scblakely/chordid/algorithms/tonal"
	"github.com/spf13/cobra"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "Lists every chord profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "INDEX\tNAME\tID\tNOTES")
			for _, p := range tonal.DefaultProfileBank().Profiles() {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", p.Index, p.Chord.Name(), p.Chord.ID(), pitchClassList(p.Chord.PitchClasses()))
			}
			return tw.Flush()
		},
	}
}

func newAliasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "Lists chords that share the same notes",
		Long: `Lists groups of profiles with identical notes, such as C6 and Am7.
The first name in each group is the one classify reports.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bank := tonal.DefaultProfileBank()
			out := cmd.OutOrStdout()
			for _, group := range bank.Aliases() {
				names := make([]string, len(group))
				for i, idx := range group {
					c, err := bank.Decode(idx)
					if err != nil {
						return err
					}
					names[i] = c.Name()
				}
				fmt.Fprintln(out, strings.Join(names, " = "))
			}
			return nil
		},
	}
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "describe <name|id>",
		Short:   "Shows the notes, id and MIDI notes of a chord",
		Example: "  chordid describe Dm7\n  chordid describe 72192",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bank := tonal.DefaultProfileBank()
			c, err := resolveChord(bank, args[0])
			if err != nil {
				return err
			}
			idx, err := bank.Index(c)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 1, ' ', 0)
			fmt.Fprintf(tw, "name:\t%s\n", c.Name())
			fmt.Fprintf(tw, "index:\t%d\n", idx)
			fmt.Fprintf(tw, "id:\t%d\n", c.ID())
			fmt.Fprintf(tw, "num:\t%012b\n", c.Num())
			fmt.Fprintf(tw, "quality:\t%s\n", c.Quality)
			fmt.Fprintf(tw, "intervals:\t%s\n", c.Intervals)
			fmt.Fprintf(tw, "notes:\t%s\n", pitchClassList(c.PitchClasses()))
			fmt.Fprintf(tw, "midi:\t%s\n", noteList(c.MIDINotes()))
			return tw.Flush()
		},
	}
}
