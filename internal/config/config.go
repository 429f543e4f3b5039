// SPDX-License-Identifier: MIT

// Package config loads the CLI settings from saju.yaml, SAJU_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pppaal/saju-astro-chat-sub036/relations"
	"github.com/pppaal/saju-astro-chat-sub036/window"
)

// ErrInvalidConfig indicates a setting that cannot be applied.
var ErrInvalidConfig = errors.New("config: invalid setting")

// EnvPrefix prefixes every environment override, e.g. SAJU_WINDOW_PARALLELISM.
const EnvPrefix = "SAJU"

// Config is the resolved CLI configuration.
type Config struct {
	Timezone  string          `mapstructure:"timezone"`
	Log       LogConfig       `mapstructure:"log"`
	Relations RelationsConfig `mapstructure:"relations"`
	Window    WindowConfig    `mapstructure:"window"`
}

// LogConfig selects the zap level and encoding.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// RelationsConfig mirrors relations.Options.
type RelationsConfig struct {
	ClashMode     string `mapstructure:"clash_mode"`
	Gongmang      string `mapstructure:"gongmang"`
	SelfPunish    bool   `mapstructure:"self_punish"`
	TransformNote bool   `mapstructure:"transform_note"`
}

// WindowConfig configures the window scorer.
type WindowConfig struct {
	Parallelism    int    `mapstructure:"parallelism"`
	CacheSize      int    `mapstructure:"cache_size"`
	ConditionsFile string `mapstructure:"conditions_file"`
}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("timezone", "Asia/Seoul")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("relations.clash_mode", relations.DefaultHeavenlyClashMode.String())
	v.SetDefault("relations.gongmang", relations.DefaultGongmangPolicy.String())
	v.SetDefault("relations.self_punish", relations.DefaultIncludeSelfPunish)
	v.SetDefault("relations.transform_note", relations.DefaultIncludeHeavenlyTransformNote)
	v.SetDefault("window.parallelism", 0)
	v.SetDefault("window.cache_size", window.DefaultCacheSize)
	v.SetDefault("window.conditions_file", "")
}

// Load reads the configuration into v and decodes it. When file is empty,
// saju.yaml is searched in the working directory and $HOME/.config/saju; a
// missing file is not an error. An explicit file must exist.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("saju")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/saju")
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, c.Validate()
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.RelationOptions(); err != nil {
		return err
	}
	if c.Window.Parallelism < 0 || c.Window.CacheSize < 0 {
		return fmt.Errorf("%w: window parallelism and cache size must be non-negative", ErrInvalidConfig)
	}
	return nil
}

// Location resolves the configured time zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}

// RelationOptions converts the relations section into analyzer options.
func (c Config) RelationOptions() ([]relations.Option, error) {
	mode, err := relations.ParseClashMode(c.Relations.ClashMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	policy, err := relations.ParseGongmangPolicy(c.Relations.Gongmang)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	opts := []relations.Option{
		relations.WithClashMode(mode),
		relations.WithGongmangPolicy(policy),
		relations.WithSelfPunish(c.Relations.SelfPunish),
	}
	if c.Relations.TransformNote {
		opts = append(opts, relations.WithTransformNote())
	}
	return opts, nil
}

// WindowOptions converts the window section into scorer options. Zero
// parallelism keeps the scorer default.
func (c Config) WindowOptions() []window.Option {
	opts := []window.Option{window.WithCacheSize(c.Window.CacheSize)}
	if c.Window.Parallelism > 0 {
		opts = append(opts, window.WithParallelism(c.Window.Parallelism))
	}
	return opts
}

// Conditions loads the configured condition file, or the defaults when none
// is set.
func (c Config) Conditions() (window.ConditionTable, error) {
	if c.Window.ConditionsFile == "" {
		return window.DefaultConditionTable(), nil
	}
	f, err := os.Open(c.Window.ConditionsFile)
	if err != nil {
		return nil, fmt.Errorf("open conditions: %w", err)
	}
	defer f.Close()
	return window.LoadConditions(f)
}
