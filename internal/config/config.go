// Package config loads rtree settings from defaults, an optional YAML file
// and RTREE_* environment variables, in increasing order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appName   = "rtree"
	envPrefix = "RTREE"
)

// Config is the effective configuration.
type Config struct {
	LogFile  string        `mapstructure:"log_file" yaml:"log_file"`
	LogLevel string        `mapstructure:"log_level" yaml:"log_level" default:"info" validate:"oneof=debug info warn error"`
	Ignore   []string      `mapstructure:"ignore" yaml:"ignore"`
	MaxDepth int           `mapstructure:"max_depth" yaml:"max_depth" validate:"gte=0"`
	TabWidth int           `mapstructure:"tab_width" yaml:"tab_width" default:"4" validate:"min=1,max=16"`
	Preview  PreviewConfig `mapstructure:"preview" yaml:"preview"`
}

// PreviewConfig controls the preview panel.
type PreviewConfig struct {
	// MIME adds a sniffed content type to file summaries.
	MIME bool `mapstructure:"mime" yaml:"mime" default:"true"`
	// Markdown renders Markdown as styled text instead of raw source.
	Markdown bool `mapstructure:"markdown" yaml:"markdown" default:"true"`
	Wrap     bool `mapstructure:"wrap" yaml:"wrap" default:"true"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	// Tag values are constants; Set cannot fail on them.
	_ = defaults.Set(cfg)
	return cfg
}

// Options selects where Load looks for settings.
type Options struct {
	// File is an explicit config path. When empty the XDG config directory
	// and ~/.config/rtree are searched, and a missing file is not an error.
	File string
	// Overrides win over every other source; used for command-line flags.
	Overrides map[string]any
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "apply defaults")
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Env lookups only see keys viper already knows about.
	v.SetDefault("log_file", cfg.LogFile)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("ignore", []string{})
	v.SetDefault("max_depth", cfg.MaxDepth)
	v.SetDefault("tab_width", cfg.TabWidth)
	v.SetDefault("preview.mime", cfg.Preview.MIME)
	v.SetDefault("preview.markdown", cfg.Preview.Markdown)
	v.SetDefault("preview.wrap", cfg.Preview.Wrap)

	if err := readConfigFile(v, opts.File); err != nil {
		return nil, err
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode configuration")
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readConfigFile(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", file)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range searchDirs() {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "read config")
	}
	return nil
}

func searchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, appName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", appName))
	}
	return dirs
}

// Validate checks field constraints.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

// YAML renders the configuration in the file format Load accepts.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}
