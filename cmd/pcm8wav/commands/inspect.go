// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/pcm8wav/chunk"
	"github.com/ik5/pcm8wav/formats/wav"
	"github.com/ik5/pcm8wav/internal/diagnose"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Validate a WAV header",
	Long: `Parse the header of a WAV file with the configured profile.

On success the header fields are printed. On failure the file is read again
with a permissive reader and every reason for the rejection is listed.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src := chunk.NewCounter(bufio.NewReader(f))
	h, err := session().ReadHeader(src)
	if err == nil {
		printHeader(out, path, h)
		return nil
	}

	fmt.Fprintf(out, "%s: rejected at byte %d: %v\n", path, src.Offset(), err)

	rep, derr := diagnose.Describe(f)
	if derr != nil {
		fmt.Fprintf(out, "  %v\n", derr)
		return err
	}
	printReport(out, rep)

	return err
}

func printHeader(w io.Writer, path string, h wav.Header) {
	fmt.Fprintf(w, "%s: ok\n", path)
	fmt.Fprintf(w, "  format:    PCM, %d channel, %d bits, %d Hz\n",
		h.Format.Channels, h.Format.BitsPerSample, h.Format.SampleRate)
	fmt.Fprintf(w, "  fmt extra: %d bytes\n", h.FmtExtra)
	if len(h.Skipped) > 0 {
		fmt.Fprintf(w, "  skipped:   %s\n", joinIDs(h.Skipped))
	}
	fmt.Fprintf(w, "  samples:   %d\n", h.Samples)
	fmt.Fprintf(w, "  duration:  %v\n", h.Duration())
}

func printReport(w io.Writer, rep *diagnose.Report) {
	ids := make([]string, len(rep.Chunks))
	for i, c := range rep.Chunks {
		ids[i] = fmt.Sprintf("%s(%d)", c.ID, c.Size)
	}
	fmt.Fprintf(w, "  chunks:    %s\n", strings.Join(ids, " "))

	if rep.FormatErr == nil {
		fmt.Fprintf(w, "  format:    %d, %d channels, %d bits, %d Hz\n",
			rep.AudioFormat, rep.Channels, rep.BitDepth, rep.SampleRate)
	}

	for _, p := range rep.Problems(cfg.SampleRate) {
		fmt.Fprintf(w, "  problem:   %s\n", p)
	}

	if !cfg.SkipUnknownChunks && len(rep.Unknown()) > 0 {
		fmt.Fprintln(w, "  hint:      --skip-unknown accepts the extra chunks")
	}
}
