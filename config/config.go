// Package config resolves the simulation settings from command-line flags,
// PERCOLATE_* environment variables and an optional config file.
//
// Precedence is flag > env > file > default. Values that are malformed or
// fail validation are reported through the logger and replaced by their
// defaults; they never abort the run.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Keys shared by flags, environment variables and config files.
const (
	KeyResolution        = "res"
	KeyConsole           = "console"
	KeyImage             = "image"
	KeyParallel          = "ll"
	KeySavesDir          = "saves"
	KeyImageMinRes       = "image-min-res"
	KeySeed              = "seed"
	KeyVerify            = "verify"
	KeyStopOnPercolation = "stop-on-percolation"
	KeyDebug             = "debug"
	KeyConfigFile        = "config"

	envPrefix = "PERCOLATE"
)

// Config holds every setting of one simulation run.
type Config struct {
	// Resolution is the number of cells along each side of the square grid.
	Resolution int `validate:"gt=0"`
	// Console prints the grid after every iteration.
	Console bool
	// Image writes one PPM per iteration into SavesDir.
	Image bool
	// Parallel is accepted for compatibility and ignored.
	Parallel bool
	SavesDir string `validate:"required"`
	// ImageMinRes is the minimal side of an exported image in pixels.
	ImageMinRes int `validate:"gt=0"`
	// Seed fixes the random source; 0 draws from entropy.
	Seed              int64
	Verify            bool
	StopOnPercolation bool
	Debug             bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Resolution:  12,
		SavesDir:    "saves",
		ImageMinRes: 300,
	}
}

// NewFlagSet declares every flag on a fresh set. All values are read as
// text so that a malformed value degrades to its default instead of
// failing the parse. Switches still work without an argument.
func NewFlagSet(name string) *pflag.FlagSet {
	def := Default()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.ParseErrorsAllowlist.UnknownFlags = true

	fs.String(KeyResolution, strconv.Itoa(def.Resolution), "grid resolution (cells per side)")
	fs.String(KeySavesDir, def.SavesDir, "directory for PPM files")
	fs.String(KeyImageMinRes, strconv.Itoa(def.ImageMinRes), "minimal image side in pixels")
	fs.String(KeySeed, strconv.FormatInt(def.Seed, 10), "random seed (0 = entropy)")
	fs.String(KeyConfigFile, "", "optional config file (yaml, json, toml, ...)")

	switchFlag(fs, KeyConsole, def.Console, "write cell data to the console")
	switchFlag(fs, KeyImage, def.Image, "write cell data to PPM files")
	switchFlag(fs, KeyParallel, def.Parallel, "run in multiple threads (not implemented, ignored)")
	switchFlag(fs, KeyVerify, def.Verify, "cross-check every iteration with a breadth-first search")
	switchFlag(fs, KeyStopOnPercolation, def.StopOnPercolation, "stop as soon as the grid percolates")
	switchFlag(fs, KeyDebug, def.Debug, "enable debug logging")

	return fs
}

// switchFlag declares a boolean flag kept as text: "--name" alone means true,
// "--name=value" is parsed later by parseBool.
func switchFlag(fs *pflag.FlagSet, name string, value bool, usage string) {
	fs.String(name, strconv.FormatBool(value), usage)
	fs.Lookup(name).NoOptDefVal = "true"
}

// Load parses args (without the program name) and resolves the Config.
// Only pflag.ErrHelp and a missing flag argument are returned; malformed
// values are warned about and defaulted.
func Load(args []string, log *zap.Logger) (Config, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fs := NewFlagSet("percolate")
	if err := fs.Parse(normalizeArgs(args)); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			log.Warn("cannot read config file, using flags and defaults",
				zap.String("path", path), zap.Error(err))
		}
	}

	return fromViper(v, log), nil
}

// fromViper reads every key from v, then validates and repairs the result.
func fromViper(v *viper.Viper, log *zap.Logger) Config {
	def := Default()
	cfg := Config{
		Resolution:        parseInt(v, KeyResolution, log),
		Console:           parseBool(v, KeyConsole, def.Console, log),
		Image:             parseBool(v, KeyImage, def.Image, log),
		Parallel:          parseBool(v, KeyParallel, def.Parallel, log),
		SavesDir:          strings.TrimSpace(v.GetString(KeySavesDir)),
		ImageMinRes:       parseInt(v, KeyImageMinRes, log),
		Seed:              parseInt64(v, KeySeed, def.Seed, log),
		Verify:            parseBool(v, KeyVerify, def.Verify, log),
		StopOnPercolation: parseBool(v, KeyStopOnPercolation, def.StopOnPercolation, log),
		Debug:             parseBool(v, KeyDebug, def.Debug, log),
	}

	err := validator.New().Struct(cfg)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.StructField() {
			case "Resolution":
				cfg.Resolution = def.Resolution
				log.Warn("invalid resolution value, using default",
					zap.Any("value", fe.Value()), zap.Int("default", def.Resolution))
			case "ImageMinRes":
				cfg.ImageMinRes = def.ImageMinRes
				log.Warn("invalid minimal image resolution, using default",
					zap.Any("value", fe.Value()), zap.Int("default", def.ImageMinRes))
			case "SavesDir":
				cfg.SavesDir = def.SavesDir
				log.Warn("empty saves directory, using default", zap.String("default", def.SavesDir))
			}
		}
	}

	if cfg.Parallel {
		log.Warn("parallel execution is not implemented, running sequentially")
	}

	return cfg
}

// parseInt reads key as an integer. Malformed text yields 0, which the
// validator then rejects.
func parseInt(v *viper.Viper, key string, log *zap.Logger) int {
	raw := strings.TrimSpace(v.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn("malformed integer setting", zap.String("key", key), zap.String("value", raw))
		return 0
	}

	return n
}

// parseInt64 reads key as a 64-bit integer, falling back to def.
func parseInt64(v *viper.Viper, key string, def int64, log *zap.Logger) int64 {
	raw := strings.TrimSpace(v.GetString(key))
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Warn("malformed integer setting, using default",
			zap.String("key", key), zap.String("value", raw), zap.Int64("default", def))
		return def
	}

	return n
}

// parseBool reads key as a boolean, falling back to def. Accepts the
// spellings of strconv.ParseBool.
func parseBool(v *viper.Viper, key string, def bool, log *zap.Logger) bool {
	raw := strings.TrimSpace(v.GetString(key))
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Warn("malformed boolean setting, using default",
			zap.String("key", key), zap.String("value", raw), zap.Bool("default", def))
		return def
	}

	return b
}

// normalizeArgs rewrites single-dash long flags (-res 20, -console) into
// the double-dash form pflag expects. Single-letter flags are left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if len(a) > 2 && a[0] == '-' && a[1] != '-' && !isNumber(a) {
			a = "-" + a
		}
		out[i] = a
	}

	return out
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
