package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rowalign/grid"
)

// envPrefix namespaces environment overrides, e.g. ROWALIGN_STRATEGY=lcs.
const envPrefix = "ROWALIGN"

// Config is the resolved configuration of one run.
type Config struct {
	Strategy         string
	Key              int
	IgnoreCase       bool
	IgnoreWhitespace bool
	IgnoreColumns    []int
	Sheet            string
	Output           string
	Verify           bool
	Timeout          time.Duration

	LogLevel  string
	LogFormat string

	ConfigFile string
}

// bindFlags registers every configurable flag.
func bindFlags(fs *pflag.FlagSet) {
	fs.StringP("strategy", "s", "position", "alignment strategy: position, key-column, lcs")
	fs.IntP("key", "k", grid.NoKeyColumn, "key column index (0-based) for the key-column strategy")
	fs.BoolP("ignore-case", "i", false, "compare text case-insensitively")
	fs.BoolP("ignore-whitespace", "w", false, "trim surrounding whitespace before comparing text")
	fs.String("ignore-columns", "", "comma-separated 0-based column indices to ignore, e.g. 3,5")
	fs.String("sheet", "", "worksheet to read from .xlsx inputs (default: first sheet)")
	fs.StringP("output", "o", "text", "output format: text, yaml, json")
	fs.Bool("verify", false, "check that the result partitions both datasets")
	fs.Duration("timeout", 0, "abort alignment after this long (0 = no limit)")
	fs.String("log-level", "", "log level: trace, debug, info, warn, error")
	fs.String("log-format", "auto", "log format: auto, console, json")
	fs.BoolP("verbose", "v", false, "shortcut for --log-level=debug")
	fs.String("config", "", "config file (default: ./.rowalign.yaml or $HOME/.rowalign.yaml)")
}

// LoadConfig resolves configuration with precedence
// flags > environment (ROWALIGN_*, .env files) > config file > defaults.
func LoadConfig(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	loadEnvFiles()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", file, err)
		}
	} else {
		v.SetConfigName(".rowalign")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		// a missing default config file is fine
		_ = v.ReadInConfig()
	}

	cols, err := ignoredColumns(v.Get("ignore-columns"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Strategy:         v.GetString("strategy"),
		Key:              v.GetInt("key"),
		IgnoreCase:       v.GetBool("ignore-case"),
		IgnoreWhitespace: v.GetBool("ignore-whitespace"),
		IgnoreColumns:    cols,
		Sheet:            v.GetString("sheet"),
		Output:           strings.ToLower(v.GetString("output")),
		Verify:           v.GetBool("verify"),
		Timeout:          v.GetDuration("timeout"),
		LogLevel:         v.GetString("log-level"),
		LogFormat:        v.GetString("log-format"),
		ConfigFile:       v.ConfigFileUsed(),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
		if v.GetBool("verbose") {
			cfg.LogLevel = "debug"
		}
	}

	return cfg, nil
}

// Options converts the configuration into alignment options.
func (c *Config) Options() (grid.Options, error) {
	s, err := grid.ParseStrategy(c.Strategy)
	if err != nil {
		return grid.Options{}, err
	}
	opts := grid.DefaultOptions()
	opts.Strategy = s
	opts.KeyColumnIndex = c.Key
	opts.IgnoreCase = c.IgnoreCase
	opts.IgnoreWhitespace = c.IgnoreWhitespace
	if len(c.IgnoreColumns) > 0 {
		opts.IgnoredColumns = grid.NewColumnSet(c.IgnoreColumns...)
	}

	return opts, opts.Validate()
}

// ignoredColumns accepts "3,5" from flags and env or a YAML list from a config file.
func ignoredColumns(raw any) ([]int, error) {
	switch x := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return parseColumns(x)
	}
	cols, err := cast.ToIntSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid ignore-columns %v: %w", raw, err)
	}
	for _, c := range cols {
		if c < 0 {
			return nil, fmt.Errorf("invalid column index %d in ignore-columns", c)
		}
	}

	return cols, nil
}

func parseColumns(s string) ([]int, error) {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid column index %q in --ignore-columns", p)
		}
		out = append(out, n)
	}

	return out, nil
}

// loadEnvFiles loads .env then .env.local; neither is required and
// variables already set in the environment win.
func loadEnvFiles() {
	for _, f := range []string{".env", ".env.local"} {
		_ = godotenv.Load(f)
	}
}
