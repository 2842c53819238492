package cmd

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/transform"
	"github.com/cwbudde/algo-noise/internal/output"
	"github.com/cwbudde/algo-noise/stats/field"
	"github.com/cwbudde/algo-noise/stats/frequency"
)

var errNotRaw = errors.New("analyze: only raw float32 files can be analyzed")

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Print sample and spectral statistics of a raw field",
	Long: `Analyze reads a raw little-endian float32 field, as written by
"noisegen generate --output name.raw", and prints its sample statistics and
the power-law exponent estimated from its radial power spectrum.`,
	Example: `  noisegen generate --size 256,256 --color pink --output pink.raw
  noisegen analyze --size 256,256 pink.raw`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().IntSlice("size", nil, "Extent of each dimension of the stored field")
	analyzeCmd.Flags().Bool("rows", false, "Also print the mean and deviation of every first-axis slice")

	if err := viper.BindPFlag("analyze.size", analyzeCmd.Flags().Lookup("size")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("analyze.rows", analyzeCmd.Flags().Lookup("rows")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	path := args[0]
	if output.FormatFromPath(path) != output.Raw {
		return fmt.Errorf("%w: %s", errNotRaw, path)
	}
	ext, err := parseExtents(0, viper.GetIntSlice("analyze.size"))
	if err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := readRaw(bufio.NewReader(f), ext.Total())
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	logger.Debug("Loaded field", "file", path, "samples", humanize.Comma(int64(len(data))))

	return analyze(cmd.OutOrStdout(), data, ext, engine, viper.GetBool("analyze.rows"))
}

// readRaw decodes exactly n little-endian float32 samples.
func readRaw(r io.Reader, n int) ([]float64, error) {
	buf := make([]byte, 4*n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:])))
	}
	return data, nil
}

func analyze(w io.Writer, data []float64, ext core.Extents, engine transform.Engine, rows bool) error {
	s := field.Calculate(data)
	profile, err := frequency.RadialPowerSpectrum(engine, data, ext)
	if err != nil {
		return err
	}
	fs := frequency.Calculate(profile)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "extents\t%s\n", ext)
	fmt.Fprintf(tw, "samples\t%s\n", humanize.Comma(int64(s.Length)))
	fmt.Fprintf(tw, "mean\t%.6g\n", s.Mean)
	fmt.Fprintf(tw, "rms\t%.6g\n", s.RMS)
	fmt.Fprintf(tw, "stddev\t%.6g\n", s.StdDev)
	fmt.Fprintf(tw, "min\t%.6g at %v\n", s.Min, field.Position(ext, s.MinPos))
	fmt.Fprintf(tw, "max\t%.6g at %v\n", s.Max, field.Position(ext, s.MaxPos))
	fmt.Fprintf(tw, "skewness\t%.4f\n", s.Skewness)
	fmt.Fprintf(tw, "kurtosis\t%.4f\n", s.Kurtosis)
	fmt.Fprintf(tw, "flatness\t%.4f\n", fs.Flatness)
	fmt.Fprintf(tw, "centroid\t%.3f\n", fs.Centroid)
	fmt.Fprintf(tw, "rolloff\t%.0f\n", fs.Rolloff)
	fmt.Fprintf(tw, "exponent\t%.3f\n", fs.Exponent)
	if err := tw.Flush(); err != nil {
		return err
	}

	if !rows {
		return nil
	}
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nROW\tMEAN\tSTDDEV")
	for i, r := range field.Rows(data, ext) {
		fmt.Fprintf(tw, "%d\t%.6g\t%.6g\n", i, r.Mean, r.StdDev)
	}
	return tw.Flush()
}
