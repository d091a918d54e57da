package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/wippyai/grid"
	"github.com/wippyai/grid/errors"
	"github.com/wippyai/grid/internal/coerce"
)

const envPrefix = "GRIDVIEW_"

// Element types accepted by the element key.
const (
	ElemU8   = "u8"
	ElemS32  = "s32"
	ElemF32  = "f32"
	ElemBool = "bool"
)

// Fill patterns accepted by the pattern key.
const (
	PatternFill    = "fill"
	PatternCounter = "counter"
	PatternChecker = "checker"
)

// Output formats accepted by the format key.
const (
	FormatText  = "text"
	FormatTable = "table"
)

// Config is the resolved gridview configuration.
type Config struct {
	Dims    grid.Dims
	Cursor  grid.Coord
	Element string
	Pattern string
	Format  string
	Value   float64
	Offset  uint32
	Verbose bool

	// File is the config file that was read, if any.
	File string
}

// LoadConfig reads configuration from defaults, a YAML file, GRIDVIEW_
// environment variables and explicitly set flags, in increasing precedence.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"dims":    "8,8",
		"element": ElemS32,
		"pattern": PatternCounter,
		"value":   "0",
		"cursor":  "0,0",
		"offset":  0,
		"verbose": false,
		"format":  FormatText,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	cfgFile = findConfigFile(cfgFile)
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Environment: GRIDVIEW_ELEMENT -> element
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were set explicitly
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	cfg, err := resolve(k)
	if err != nil {
		return nil, err
	}
	cfg.File = cfgFile
	return cfg, nil
}

// findConfigFile returns the explicit path, or gridview.yaml / gridview.yml
// in the working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"gridview.yaml", "gridview.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

func resolve(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{
		Element: strings.ToLower(k.String("element")),
		Pattern: strings.ToLower(k.String("pattern")),
		Format:  strings.ToLower(k.String("format")),
		Verbose: k.Bool("verbose"),
	}

	dims, ok := coerce.ToInts(k.Get("dims"))
	if !ok {
		return nil, configError("dims", k.Get("dims"), "dims must be a list of integers")
	}
	switch len(dims) {
	case 2:
		cfg.Dims = grid.Dims2{X: dims[0], Y: dims[1]}
	case 3:
		cfg.Dims = grid.Dims3{X: dims[0], Y: dims[1], Z: dims[2]}
	default:
		return nil, configError("dims", dims, "dims needs 2 or 3 extents, got %d", len(dims))
	}
	for i, n := range dims {
		if n <= 0 {
			return nil, configError("dims", dims, "extent %d is %d, must be positive", i, n)
		}
	}

	switch cfg.Element {
	case ElemU8, ElemS32, ElemF32, ElemBool:
	default:
		return nil, configError("element", cfg.Element, "unknown element type %q", cfg.Element)
	}
	switch cfg.Pattern {
	case PatternFill, PatternCounter, PatternChecker:
	default:
		return nil, configError("pattern", cfg.Pattern, "unknown pattern %q", cfg.Pattern)
	}
	switch cfg.Format {
	case FormatText, FormatTable:
	default:
		return nil, configError("format", cfg.Format, "unknown format %q", cfg.Format)
	}

	raw := k.Get("value")
	if cfg.Element == ElemBool {
		b, ok := coerce.ToBool(raw)
		if !ok {
			return nil, configError("value", raw, "value %v is not a boolean", raw)
		}
		if b {
			cfg.Value = 1
		}
	} else {
		v, ok := coerce.ToFloat64(raw)
		if !ok {
			return nil, configError("value", raw, "value %v is not a number", raw)
		}
		cfg.Value = v
		if err := checkValue(cfg); err != nil {
			return nil, err
		}
	}

	cursor, ok := coerce.ToInts(k.Get("cursor"))
	if !ok {
		return nil, configError("cursor", k.Get("cursor"), "cursor must be a list of integers")
	}
	parts := make([]any, len(cursor))
	for i, n := range cursor {
		parts[i] = n
	}
	c, err := grid.ParseCoord(parts...)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "cursor")
	}
	cfg.Cursor = c

	off, ok := coerce.ToIndex(k.Get("offset"))
	if !ok || uint64(off) > uint64(^uint32(0)) {
		return nil, configError("offset", k.Get("offset"), "offset must fit in uint32")
	}
	cfg.Offset = uint32(off)

	return cfg, nil
}

func configError(key string, value any, format string, args ...any) error {
	err := errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf(format, args...))
	err.Path = []string{key}
	err.Value = value
	return err
}

// checkValue rejects fill values the element type cannot hold. For the
// counter pattern the last value written must fit too.
func checkValue(cfg *Config) error {
	lo, hi := 0.0, 0.0
	switch cfg.Element {
	case ElemU8:
		lo, hi = 0, math.MaxUint8
	case ElemS32:
		lo, hi = math.MinInt32, math.MaxInt32
	case ElemF32:
		if math.IsNaN(cfg.Value) || math.IsInf(cfg.Value, 0) {
			return nil
		}
		lo, hi = -math.MaxFloat32, math.MaxFloat32
	default:
		return nil
	}

	v := cfg.Value
	if cfg.Element != ElemF32 && v != math.Trunc(v) {
		return configError("value", v, "value %v is not an integer", v)
	}
	last := v
	if cfg.Pattern == PatternCounter {
		last = v + float64(cfg.Dims.Extents().Len()-1)
	}
	if v < lo || v > hi || last > hi {
		return configError("value", v, "value %v does not fit %s (range %v to %v)", v, cfg.Element, lo, hi)
	}
	return nil
}
