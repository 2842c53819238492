package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/noise"
	"github.com/cwbudde/algo-noise/dsp/signal"
	"github.com/cwbudde/algo-noise/dsp/transform"
	"github.com/cwbudde/algo-noise/internal/output"
	"github.com/cwbudde/algo-noise/stats/field"
	"github.com/cwbudde/algo-noise/stats/frequency"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a colored noise field",
	Long: `Generate a 1, 2 or 3 dimensional colored noise field.

The output format follows the file extension (.txt, .raw, .png, .wav, .bob,
.bos); without --output the field is written as text to stdout.`,
	Example: `  noisegen generate --size 10000 --exponent -1.5
  noisegen generate --size 512,512 --color brown --output brown.png
  noisegen generate --size 100,100 --color blue --output blue.raw
  noisegen generate --size 64,64,64 --distribution gaussian --output brick.bob
  noisegen generate --size 256,256 --color pink --plane 1,1,0,0.2,4 --output streaks.png`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	f := generateCmd.Flags()
	f.Int("dims", 0, "Number of dimensions 1..3 (default: length of --size)")
	f.IntSlice("size", []int{100}, "Extent of each dimension, e.g. 512,512")
	f.String("color", "white", "Noise color (white, pink, red, brown, blue, violet)")
	f.Float64("exponent", 0, "Explicit power-law exponent, overrides --color")
	f.Float64("long", -1, "Longest wavelength kept, as a fraction of the field (<= 0 disables)")
	f.Float64("short", -1, "Shortest wavelength kept, as a fraction of the field (<= 0 disables)")
	f.String("distribution", "uniform", "Sample distribution (uniform, gaussian, perlin)")
	f.String("generator", "mersenne", "Random generator (mersenne, library)")
	f.Int64("seed", signal.DefaultSeed, "Random seed")
	f.Float64("perlin-scale", signal.DefaultPerlinScale, "Samples per Perlin lattice cell")
	f.Bool("zero-mean", false, "Subtract the mean after shaping")
	f.StringArray("plane", nil, "Preference plane x,y,z,width,strength (repeatable, 2D/3D)")
	f.StringP("output", "o", "", "Output file; format from extension (default: text on stdout)")
	f.String("format", "", "Output format override (text, raw, png, wav, bob, bos)")
	f.Float32("png-blur", 0, "Gaussian blur sigma applied to PNG output")
	f.Int("wav-rate", output.DefaultSampleRate, "WAV sample rate in Hz")
	f.Int("blur-debug", 0, "Laplacian blur iterations applied to 2D white noise before shaping")
	f.Bool("stats", false, "Log field and spectral statistics of the result")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"generate.dims", "dims"},
		{"generate.size", "size"},
		{"generate.color", "color"},
		{"generate.exponent", "exponent"},
		{"generate.long", "long"},
		{"generate.short", "short"},
		{"generate.distribution", "distribution"},
		{"generate.generator", "generator"},
		{"generate.seed", "seed"},
		{"generate.perlin-scale", "perlin-scale"},
		{"generate.zero-mean", "zero-mean"},
		{"generate.planes", "plane"},
		{"generate.output", "output"},
		{"generate.format", "format"},
		{"generate.png-blur", "png-blur"},
		{"generate.wav-rate", "wav-rate"},
		{"generate.blur-debug", "blur-debug"},
		{"generate.stats", "stats"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, f.Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

// generateConfig is the resolved configuration of one generate run.
type generateConfig struct {
	Extents      core.Extents
	Params       noise.Params
	Distribution signal.Distribution
	Generator    signal.Generator
	Seed         int64
	PerlinScale  float64
	Output       string
	Format       output.Format
	Write        output.Options
	BlurDebug    int
	Stats        bool
}

func loadGenerateConfig() (generateConfig, error) {
	var cfg generateConfig
	var err error

	cfg.Extents, err = parseExtents(viper.GetInt("generate.dims"), viper.GetIntSlice("generate.size"))
	if err != nil {
		return cfg, err
	}

	color, err := noise.ParseColor(viper.GetString("generate.color"))
	if err != nil {
		return cfg, err
	}
	planes, err := parsePlanes(viper.GetStringSlice("generate.planes"))
	if err != nil {
		return cfg, err
	}
	cfg.Params = noise.Params{
		Color:              color,
		Exponent:           viper.GetFloat64("generate.exponent"),
		ExplicitExponent:   viper.IsSet("generate.exponent"),
		LongestWavelength:  viper.GetFloat64("generate.long"),
		ShortestWavelength: viper.GetFloat64("generate.short"),
		Planes:             planes,
		ZeroMean:           viper.GetBool("generate.zero-mean"),
	}

	if cfg.Distribution, err = signal.ParseDistribution(viper.GetString("generate.distribution")); err != nil {
		return cfg, err
	}
	if cfg.Generator, err = signal.ParseGenerator(viper.GetString("generate.generator")); err != nil {
		return cfg, err
	}
	cfg.Seed = viper.GetInt64("generate.seed")
	cfg.PerlinScale = viper.GetFloat64("generate.perlin-scale")

	cfg.Output = viper.GetString("generate.output")
	cfg.Format = output.FormatFromPath(cfg.Output)
	if name := viper.GetString("generate.format"); name != "" {
		if cfg.Format, err = output.ParseFormat(name); err != nil {
			return cfg, err
		}
	}
	if !cfg.Format.Supports(cfg.Extents.Dims()) {
		return cfg, fmt.Errorf("%w: %s cannot hold %d-dimensional data",
			output.ErrUnsupportedFormat, cfg.Format, cfg.Extents.Dims())
	}
	cfg.Write = output.Options{
		PNGBlur:    float32(viper.GetFloat64("generate.png-blur")),
		SampleRate: viper.GetInt("generate.wav-rate"),
	}
	cfg.BlurDebug = viper.GetInt("generate.blur-debug")
	cfg.Stats = viper.GetBool("generate.stats")
	return cfg, nil
}

// parseExtents applies dims to size: zero keeps every entry, a smaller
// count truncates and a larger count pads with 1.
func parseExtents(dims int, size []int) (core.Extents, error) {
	if dims == 0 {
		dims = len(size)
	}
	if dims < 1 || dims > core.MaxDims {
		return nil, fmt.Errorf("%w: number of dimensions must be 1..%d, got %d",
			core.ErrUnsupportedDims, core.MaxDims, dims)
	}
	n := make([]int, dims)
	for i := range n {
		n[i] = 1
		if i < len(size) {
			n[i] = size[i]
		}
	}
	return core.NewExtents(n...)
}

func parsePlanes(specs []string) ([]noise.Plane, error) {
	planes := make([]noise.Plane, 0, len(specs))
	for _, s := range specs {
		p, err := noise.ParsePlane(s)
		if err != nil {
			return nil, err
		}
		planes = append(planes, p)
	}
	return planes, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	cfg, err := loadGenerateConfig()
	if err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		return generate(cmd.OutOrStdout(), cfg, engine)
	}

	file, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	bw := bufio.NewWriter(file)
	if err := generate(bw, cfg, engine); err != nil {
		file.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	if info, err := os.Stat(cfg.Output); err == nil {
		logger.Info("Wrote output", "file", cfg.Output, "format", cfg.Format, "size", humanize.Bytes(uint64(info.Size())))
	}
	return nil
}

// generate fills, shapes and writes one field.
func generate(w io.Writer, cfg generateConfig, engine transform.Engine) error {
	ext := cfg.Extents
	data := make([]float64, ext.Total())

	src := signal.NewSource(
		signal.WithSeed(cfg.Seed),
		signal.WithGenerator(cfg.Generator),
		signal.WithPerlinScale(cfg.PerlinScale),
	)
	if err := src.FillField(data, ext, cfg.Distribution); err != nil {
		return err
	}
	logger.Info("Created data points",
		"count", humanize.Comma(int64(len(data))),
		"extents", ext.String(),
		"distribution", cfg.Distribution,
		"generator", cfg.Generator,
		"seed", cfg.Seed,
	)

	if cfg.BlurDebug > 0 && ext.Dims() == 2 {
		signal.Blur2D(data, ext[0], ext[1], cfg.BlurDebug)
	}

	synth := noise.NewSynthesizer(noise.WithEngine(engine), noise.WithLogger(logger))
	res, err := synth.Synthesize(data, ext, cfg.Params)
	if err != nil {
		return err
	}
	if res.Shaped {
		logger.Info("Shaped spectrum",
			"exponent", cfg.Params.EffectiveExponent(),
			"planes", len(cfg.Params.Planes),
			"dc", res.DC,
		)
	}

	if cfg.Stats {
		logStats(data, ext, engine)
	}

	opts := cfg.Write
	opts.Logger = logger
	return output.Write(w, cfg.Format, data, ext, opts)
}

func logStats(data []float64, ext core.Extents, engine transform.Engine) {
	s := field.Calculate(data)
	logger.Info("Field statistics",
		"mean", s.Mean,
		"rms", s.RMS,
		"min", s.Min,
		"max", s.Max,
		"stddev", s.StdDev,
	)

	profile, err := frequency.RadialPowerSpectrum(engine, data, ext)
	if err != nil {
		logger.Warn("Spectral statistics unavailable", "error", err)
		return
	}
	fs := frequency.Calculate(profile)
	logger.Info("Spectral statistics",
		"exponent", fs.Exponent,
		"flatness", fs.Flatness,
		"centroid", fs.Centroid,
	)
}
