// Package config loads runtime settings from .env, environment, an optional config file and flags
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/pixel-spin/constants"
	"github.com/lixenwraith/pixel-spin/question"
)

// EnvPrefix prefixes every environment variable, e.g. PIXEL_SPIN_FPS
const EnvPrefix = "PIXEL_SPIN"

// Config is the resolved runtime configuration
type Config struct {
	Questions  string   // Source: embedded, *.json path or sqlite:<path>
	Categories []string // Initial filter tags
	Muted      bool
	Audio      AudioConfig
	FPS        int
	Debug      bool
	Seed       int64             // 0 seeds from time
	Keys       map[string]string // Key name → action overrides
}

// AudioConfig is the audio section
type AudioConfig struct {
	Enabled    bool
	Volume     int // Percent
	SampleRate int
}

// flagKeys maps flag names to viper keys
var flagKeys = map[string]string{
	"questions":   "questions",
	"categories":  "categories",
	"muted":       "muted",
	"no-audio":    "audio.disabled",
	"volume":      "audio.volume",
	"sample-rate": "audio.sample_rate",
	"fps":         "fps",
	"debug":       "debug",
	"seed":        "seed",
	"config":      "config",
	"env-file":    "env_file",
}

// RegisterFlags adds every configuration flag to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("questions", "embedded", "question source: embedded, path to .json, or sqlite:<path>")
	fs.StringSlice("categories", question.DefaultTags, "initial category filter")
	fs.Bool("muted", false, "start with audio muted")
	fs.Bool("no-audio", false, "disable audio output")
	fs.Int("volume", 100, "master volume percent")
	fs.Int("sample-rate", constants.DefaultSampleRate, "audio sample rate")
	fs.Int("fps", constants.DefaultFPS, "frame rate")
	fs.Bool("debug", false, "enable debug logging to file")
	fs.Int64("seed", 0, "random seed, 0 seeds from time")
	fs.String("config", "", "optional config file (toml, yaml or json)")
	fs.String("env-file", ".env", "dotenv file loaded before the environment")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("questions", "embedded")
	v.SetDefault("categories", question.DefaultTags)
	v.SetDefault("muted", false)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.disabled", false)
	v.SetDefault("audio.volume", 100)
	v.SetDefault("audio.sample_rate", constants.DefaultSampleRate)
	v.SetDefault("fps", constants.DefaultFPS)
	v.SetDefault("debug", false)
	v.SetDefault("seed", 0)
	v.SetDefault("env_file", ".env")
}

// Load resolves configuration with precedence flags > environment > .env > config file > defaults
// fs may be nil
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Lookups are lazy, so variables from .env are still seen by every Get below
	if envFile := v.GetString("env_file"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, errors.Wrapf(err, "load %s", envFile)
			}
		} else {
			log.Printf("config: loaded %s", envFile)
		}
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
	}

	cfg := &Config{
		Questions:  strings.TrimSpace(v.GetString("questions")),
		Categories: splitList(v.GetStringSlice("categories")),
		Muted:      v.GetBool("muted"),
		Audio: AudioConfig{
			Enabled:    v.GetBool("audio.enabled") && !v.GetBool("audio.disabled"),
			Volume:     v.GetInt("audio.volume"),
			SampleRate: v.GetInt("audio.sample_rate"),
		},
		FPS:   v.GetInt("fps"),
		Debug: v.GetBool("debug"),
		Seed:  v.GetInt64("seed"),
		// viper folds map keys to lower case; upper-case runes are bound as "shift+<char>"
		Keys: v.GetStringMapString("keys"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and category names
func (c *Config) Validate() error {
	if c.Questions == "" {
		return errors.New("questions: empty source")
	}
	if c.FPS < 1 || c.FPS > constants.MaxFPS {
		return errors.Errorf("fps: %d out of range 1-%d", c.FPS, constants.MaxFPS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return errors.Errorf("audio.volume: %d out of range 0-100", c.Audio.Volume)
	}
	if c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 192000 {
		return errors.Errorf("audio.sample_rate: %d out of range 8000-192000", c.Audio.SampleRate)
	}
	for _, tag := range c.Categories {
		if !knownCategory(tag) {
			return errors.Errorf("categories: unknown category %q", tag)
		}
	}
	return nil
}

// Filter returns the initial category filter
func (c *Config) Filter() question.Filter {
	return question.NewFilter(c.Categories...)
}

func knownCategory(tag string) bool {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	for _, c := range question.Categories {
		if c.Tag == tag {
			return true
		}
	}
	return false
}

// splitList flattens comma separated entries, as environment variables arrive as one string
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
