// Package cli provides the command-line interface for Tonal.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/contrast"
	"github.com/jmylchreest/tonal/internal/ramp"
)

var (
	// Contrast command flags
	contrastMetric    string
	contrastTarget    float64
	contrastDirection string
)

// contrastCmd represents the contrast command
var contrastCmd = &cobra.Command{
	Use:   "contrast [family...]",
	Short: "Report contrast values for every ramp step",
	Long: `Score every step of the generated ramps against black and white and
report which ones reach the configured target.

The table shows all four pairings: the ramp colour as text on a white
or black background, and white or black text on the ramp colour. Steps
meeting the target in a pairing are marked with an asterisk, and the
summary lines below each table name the first qualifying step and the
representative step for the pairing selected with --direction.

Metric and target default to the contrast section of the configuration;
--metric and --target override them for a single run.`,
	RunE: runContrast,
}

func init() {
	contrastCmd.Flags().StringVar(&contrastMetric, "metric", "", "Contrast metric: ratio, wcag, apca or lc (default from config)")
	contrastCmd.Flags().Float64Var(&contrastTarget, "target", 0, "Value a step must reach to qualify (default from config)")
	contrastCmd.Flags().StringVar(&contrastDirection, "direction", "white-on-colour", "Pairing the summary lines use")
}

// reportDirections fixes the column order of the contrast table.
var reportDirections = []contrast.Direction{
	contrast.ColourOnWhite,
	contrast.ColourOnBlack,
	contrast.WhiteOnColour,
	contrast.BlackOnColour,
}

// runContrast executes the contrast command.
func runContrast(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	families, err := selectFamilies(cfg, args)
	if err != nil {
		return err
	}

	metricName := cfg.Contrast.Metric
	if contrastMetric != "" {
		metricName = strings.ToLower(strings.TrimSpace(contrastMetric))
	}

	dir, ok := contrast.DirectionByName(contrastDirection)
	if !ok {
		return fmt.Errorf("unknown direction: %s (colour-on-white, colour-on-black, white-on-colour, black-on-colour)", contrastDirection)
	}

	// Bind the metric once per column direction; an unknown name fails
	// here before any ramp is generated.
	metrics := make([]contrast.Metric, len(reportDirections))
	for i, d := range reportDirections {
		m, ok := contrast.MetricByName(metricName, d)
		if !ok {
			return fmt.Errorf("unknown contrast metric %q (ratio, wcag, apca or lc)", metricName)
		}
		metrics[i] = m
	}

	target := contrastTarget
	if target <= 0 {
		// The resolved config target matches the config metric; when
		// --metric changes the metric family the scale changes with it.
		if metricName == cfg.Contrast.Metric {
			target = cfg.Contrast.Target
		} else {
			target = config.DefaultTarget(metricName)
		}
	}

	queries := make([]contrast.MaskQuery, len(metrics))
	for i, m := range metrics {
		queries[i] = contrast.MaskQuery{Metric: m, Threshold: target}
	}

	bound, _ := contrast.MetricByName(metricName, dir)

	gen := ramp.New(log)
	out := cmd.OutOrStdout()
	for fi, fam := range families {
		if fi > 0 {
			fmt.Fprintln(out)
		}

		r := fam.Generate(gen)
		colors := make([]colorful.Color, ramp.StepCount)
		for i, s := range r {
			colors[i] = s.Color()
		}

		fmt.Fprintf(out, "Family: %s (%s ≥ %s, * meets target)\n", fam.Name, metricName, formatScore(metricName, target))
		if err := writeContrastTable(out, r, colors, metricName, queries); err != nil {
			return err
		}

		first := contrast.FirstMeetingThreshold(colors, bound, target)
		rep := contrast.RepresentativeStep(colors, bound, target)
		fmt.Fprintf(out, "First step meeting target (%s): %s\n", dir, stepName(first))
		fmt.Fprintf(out, "Representative step (%s): %s\n", dir, stepName(rep))
	}

	return nil
}

// writeContrastTable renders one family's per-step scores, one column
// per direction, with qualifying cells marked.
func writeContrastTable(out io.Writer, r ramp.Ramp, colors []colorful.Color, metricName string, queries []contrast.MaskQuery) error {
	masks := contrast.ThresholdMasks(colors, queries)

	rows := make([][]string, ramp.StepCount)
	for i, c := range colors {
		row := make([]string, 0, 2+len(queries))
		row = append(row, strconv.Itoa(ramp.LabelAt(i)), r[i].Hex())
		for qi, q := range queries {
			cell := formatScore(metricName, q.Metric(c))
			if masks[qi][i] {
				cell += " *"
			}
			row = append(row, cell)
		}
		rows[i] = row
	}

	table := tablewriter.NewWriter(out)
	table.Header([]string{"Step", "Hex", "Colour on White", "Colour on Black", "White on Colour", "Black on Colour"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build contrast table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render contrast table: %w", err)
	}
	return nil
}

// formatScore formats a metric value at the precision conventional for
// it: two decimals for contrast ratios, one for APCA Lc.
func formatScore(metricName string, v float64) string {
	if metricName == "ratio" || metricName == "wcag" {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// stepName names a classifier result: the step label, or "none" when no
// step qualified.
func stepName(index int) string {
	if index == contrast.None {
		return "none"
	}
	return strconv.Itoa(ramp.LabelAt(index))
}
