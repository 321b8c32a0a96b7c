// Package cli provides the command-line interface for Tonal.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/contrast"
	"github.com/jmylchreest/tonal/internal/ramp"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview [family...]",
	Short: "Render ramp swatches in the terminal",
	Long: `Render the generated ramps as coloured swatches, one family per block.

Each block shows a gradient strip sized to the terminal followed by one
row per step with its label and hex value. With no arguments every
configured family is shown; otherwise only the named ones.`,
	RunE: runPreview,
}

// runPreview executes the preview command.
func runPreview(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	families, err := selectFamilies(cfg, args)
	if err != nil {
		return err
	}

	gen := ramp.New(log)
	out := cmd.OutOrStdout()
	width := terminalWidth()
	for _, fam := range families {
		printRampPreview(out, fam.Name, fam.Generate(gen), width)
	}
	return nil
}

// terminalWidth reports the width of the attached terminal, falling back
// to 80 columns when stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// printRampPreview writes one family block: a gradient strip sized to the
// terminal, then a labelled row per step.
func printRampPreview(w io.Writer, name string, r ramp.Ramp, width int) {
	fmt.Fprintln(w, name)

	// The strip is pure colour, so skip it entirely when ANSI output is
	// disabled (piped output, NO_COLOR).
	if !color.NoColor {
		cell := (width - 4) / ramp.StepCount
		if cell < 1 {
			cell = 1
		}
		if cell > 6 {
			cell = 6
		}

		var strip strings.Builder
		strip.WriteString("  ")
		for _, s := range r {
			strip.WriteString(swatch(s, strings.Repeat(" ", cell)))
		}
		fmt.Fprintln(w, strip.String())
	}

	for i, s := range r {
		fmt.Fprintf(w, "  %s  %s\n", swatch(s, fmt.Sprintf("  %3d  ", ramp.LabelAt(i))), s.Hex())
	}
	fmt.Fprintln(w)
}

// swatch renders text on a background of the sample's colour, picking
// black or white text by whichever reads better against it.
func swatch(s colour.Sample, text string) string {
	c := s.Color()
	r8, g8, b8 := c.RGB255()

	sw := color.BgRGB(int(r8), int(g8), int(b8))
	if contrast.Ratio(c, contrast.Black) >= contrast.Ratio(c, contrast.White) {
		sw = sw.AddRGB(0, 0, 0)
	} else {
		sw = sw.AddRGB(255, 255, 255)
	}
	return sw.Sprint(text)
}
