// SPDX-License-Identifier: EPL-2.0

// Command pcm8wav inspects and decodes mono 8-bit PCM WAV files.
//
// Usage:
//
//	pcm8wav [flags] <command> [args]
//
// Commands:
//
//	inspect  - Validate the header and explain rejections
//	decode   - Stream the samples and print a summary
//	version  - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/ik5/pcm8wav/cmd/pcm8wav/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
