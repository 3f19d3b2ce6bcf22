package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/scblakely/chordid/algorithms/tonal"
	"github.com/scblakely/chordid/logging"
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath      string
	noiseFloor      float64
	maxDistance     float64
	shortfallWeight float64
	logLevel        string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	defaults := tonal.DefaultClassifierParams()

	rootCmd := &cobra.Command{
		Use:   "chordid",
		Short: "Identifies chords from 12-bin chromagrams",
		Long: `chordid matches a 12-bin chromagram (C, C#, ... B) against 708 chord
profiles and reports the closest chord by name, numeric id and MIDI notes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logger := logging.NewWriterLogger(cmd.ErrOrStderr(), cmd.ErrOrStderr())
			logger.SetLevel(level)
			logging.SetGlobalLogger(logger)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "JSON file with classifier params")
	flags.Float64Var(&opts.noiseFloor, "noise-floor", defaults.NoiseFloor, "total energy at or below which a frame is silent")
	flags.Float64Var(&opts.maxDistance, "max-distance", defaults.MaxDistance, "reject matches scoring above this (0 disables)")
	flags.Float64Var(&opts.shortfallWeight, "shortfall-weight", defaults.ShortfallWeight, "weight of the missing chord tone penalty")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "debug, info, warn or error")

	rootCmd.AddCommand(
		newClassifyCmd(opts),
		newProfilesCmd(),
		newAliasesCmd(),
		newDescribeCmd(),
	)
	return rootCmd
}

// params resolves classifier params: defaults, then the config file, then
// any flag set explicitly on the command line.
func (o *options) params(cmd *cobra.Command) (tonal.ClassifierParams, error) {
	params := tonal.DefaultClassifierParams()
	if o.configPath != "" {
		loaded, err := loadParams(o.configPath)
		if err != nil {
			return params, err
		}
		params = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("noise-floor") {
		params.NoiseFloor = o.noiseFloor
	}
	if flags.Changed("max-distance") {
		params.MaxDistance = o.maxDistance
	}
	if flags.Changed("shortfall-weight") {
		params.ShortfallWeight = o.shortfallWeight
	}
	return params, params.Validate()
}

func (o *options) classifier(cmd *cobra.Command) (*tonal.ChordClassifier, error) {
	params, err := o.params(cmd)
	if err != nil {
		return nil, err
	}
	return tonal.NewChordClassifier(nil, params)
}

// loadParams reads classifier params from a JSON file. Keys left out keep
// their default value.
func loadParams(path string) (tonal.ClassifierParams, error) {
	params := tonal.DefaultClassifierParams()

	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("failed to read config: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&params); err != nil {
		return params, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := params.Validate(); err != nil {
		return params, fmt.Errorf("config %s: %w", path, err)
	}

	logging.Debug("loaded classifier params", logging.Fields{
		"path":             path,
		"noise_floor":      params.NoiseFloor,
		"max_distance":     params.MaxDistance,
		"shortfall_weight": params.ShortfallWeight,
	})
	return params, nil
}
