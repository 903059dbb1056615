// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/spf13/cobra"

	"github.com/ik5/pcm8wav"
	"github.com/ik5/pcm8wav/audio"
	"github.com/ik5/pcm8wav/formats/wav"
	"github.com/ik5/pcm8wav/utils"
)

var (
	dumpSamples bool
	rawSamples  bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode <file>",
	Short: "Stream the samples and print a summary",
	Long: `Stream every sample of a WAV file.

By default a summary is printed. --dump prints one signed sample per line.
--raw writes the signed 8-bit samples to stdout as bytes.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().BoolVar(&dumpSamples, "dump", false, "print the samples one per line")
	decodeCmd.Flags().BoolVar(&rawSamples, "raw", false, "write the samples to stdout as signed bytes")
	decodeCmd.MarkFlagsMutuallyExclusive("dump", "raw")

	rootCmd.AddCommand(decodeCmd)
}

func newRegistry() *audio.Registry {
	dec := wav.Decoder{
		SampleRate:        int(cfg.SampleRate),
		SkipUnknownChunks: cfg.SkipUnknownChunks,
		Logger:            logger,
	}

	reg := audio.NewRegistry()
	reg.Register("wav", dec)
	reg.Register("wave", dec)
	return reg
}

func runDecode(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := newRegistry().Decode(strings.TrimPrefix(filepath.Ext(path), "."), f)
	if err != nil {
		return err
	}
	defer src.Close()

	var h wav.Header
	if hs, ok := src.(interface{ Header() wav.Header }); ok {
		h = hs.Header()
	}
	summary := !dumpSamples && !rawSamples
	if summary && cfg.MaxSamples > 0 && h.Samples > cfg.MaxSamples {
		return fmt.Errorf("%w: %d > %d", pcm8wav.ErrTooManySamples, h.Samples, cfg.MaxSamples)
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	var (
		buf     = make([]float32, max(src.BufSize(), 1))
		samples []int8
		count   int
	)
	if summary {
		samples = make([]int8, 0, h.Samples)
	}
	for {
		n, rerr := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			s := utils.Float32ToInt8(v)
			count++

			switch {
			case dumpSamples:
				fmt.Fprintln(out, s)
			case rawSamples:
				out.WriteByte(byte(s))
			default:
				samples = append(samples, s)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}

	logger.Debug("decoded", "path", path, "samples", count)

	if !summary {
		return out.Flush()
	}

	ib := wav.IntBuffer(samples, src.SampleRate())
	st := utils.SampleStats(samples)
	fmt.Fprintf(out, "%s: %d samples, %v\n", path, ib.NumFrames(), bufferDuration(ib))
	fmt.Fprintf(out, "  min %d, max %d, peak %d, mean %.3f\n", st.Min, st.Max, st.Peak, st.Mean)

	return out.Flush()
}

func bufferDuration(ib *goaudio.IntBuffer) time.Duration {
	if ib.Format == nil || ib.Format.SampleRate <= 0 {
		return 0
	}
	return time.Duration(ib.NumFrames()) * time.Second / time.Duration(ib.Format.SampleRate)
}
