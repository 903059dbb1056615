// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/pcm8wav"
	"github.com/ik5/pcm8wav/internal/config"
)

var (
	// Global flags
	cfgPath     string
	verbose     bool
	sampleRate  uint32
	maxSamples  uint32
	skipUnknown bool

	// Resolved in setup before any command runs.
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pcm8wav",
	Short: "Inspect and decode mono 8-bit PCM WAV files",
	Long: `pcm8wav reads RIFF/WAVE files holding mono, unsigned 8-bit linear PCM
captured at a fixed sample rate.

Settings come from an optional YAML file and can be overridden by flags:
  sample_rate: 9615
  max_samples: 1048576
  skip_unknown_chunks: false

Examples:
  pcm8wav inspect capture.wav
  pcm8wav --sample-rate 8000 decode --dump capture.wav
  pcm8wav decode --raw capture.wav > capture.s8`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgPath, "config", "c", "", "YAML config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	pf.Uint32Var(&sampleRate, "sample-rate", config.DefaultSampleRate, "required sample rate in Hz")
	pf.Uint32Var(&maxSamples, "max-samples", config.DefaultMaxSamples, "largest accepted sample count, 0 for no limit")
	pf.BoolVar(&skipUnknown, "skip-unknown", false, "skip unrecognised chunks before fmt and data")
}

func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("sample-rate") {
		c.SampleRate = sampleRate
	}
	if flags.Changed("max-samples") {
		c.MaxSamples = maxSamples
	}
	if flags.Changed("skip-unknown") {
		c.SkipUnknownChunks = skipUnknown
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	logger.Debug("config resolved",
		"path", cfgPath,
		"sample_rate", cfg.SampleRate,
		"max_samples", cfg.MaxSamples,
		"skip_unknown_chunks", cfg.SkipUnknownChunks,
	)

	return nil
}

func session() pcm8wav.Session {
	return pcm8wav.Session{
		SampleRate:        cfg.SampleRate,
		MaxSamples:        cfg.MaxSamples,
		SkipUnknownChunks: cfg.SkipUnknownChunks,
		Logger:            logger,
	}
}
