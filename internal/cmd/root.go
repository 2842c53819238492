// Package cmd implements the noisegen command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-noise/dsp/transform"
)

var (
	cfgFile string
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "noisegen",
	Short: "Colored noise generator",
	Long: `noisegen synthesizes 1, 2 and 3 dimensional colored noise.

White noise is drawn from a seeded uniform or Gaussian source, then its
spectrum is reshaped by a power law, an optional wavelength band and
optional preference planes. The result is written as text, raw floats,
16-bit PNG, WAV or brick-of-bytes/shorts volumes.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./noisegen.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("engine", transform.NameAlgoFFT,
		"Transform engine ("+strings.Join(transform.Names(), ", ")+")")

	for _, key := range []string{"verbose", "log-level", "engine"} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("noisegen")
	}

	viper.SetEnvPrefix("NOISEGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// initLogging builds the process logger from the verbose and log-level
// settings. Logs go to stderr so stdout can carry data.
func initLogging() {
	level := parseLevel(viper.GetString("log-level"))
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// newEngine resolves the configured transform engine.
func newEngine() (transform.Engine, error) {
	return transform.New(viper.GetString("engine"))
}
