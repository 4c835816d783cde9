package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/imgreorder/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "IMGREORDER_"

// Output formats accepted by output.format
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Config is the merged configuration of the command-line host.
type Config struct {
	Output  OutputConfig  `koanf:"output"`
	Logging LoggingConfig `koanf:"logging"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format   string `koanf:"format"`
	Color    bool   `koanf:"color"`
	Progress bool   `koanf:"progress"`
}

// LoggingConfig controls log destinations.
type LoggingConfig struct {
	File bool `koanf:"file"`
}

// LoadOptions selects which user configuration file is read.
type LoadOptions struct {
	// ConfigFile is an explicit file; it must exist when set.
	ConfigFile string
	// SearchPaths are tried in order when ConfigFile is empty; the first
	// existing one is loaded. Defaults to DefaultConfigPath().
	SearchPaths []string
	// Overrides are dotted keys applied last, e.g. {"output.format": "json"}
	// from command-line flags.
	Overrides map[string]interface{}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/imgreorder/config.toml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "imgreorder", "config.toml")
}

// Load merges the embedded defaults, the user file, the environment and
// the overrides, later layers winning.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	userPath, err := resolveUserConfig(opts)
	if err != nil {
		return nil, err
	}
	if userPath != "" {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", userPath).
				WithDetail(errors.DetailPath, userPath)
		}
	}

	// 3. Environment, IMGREORDER_OUTPUT_FORMAT -> output.format
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	// 6. Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that the TOML and env layers cannot constrain.
func (c *Config) Validate() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return nil
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown output format %q (want text, json, yaml or toml)", c.Output.Format)
	}
}

func resolveUserConfig(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.ConfigFile).
				WithDetail(errors.DetailPath, opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	paths := opts.SearchPaths
	if paths == nil {
		paths = []string{DefaultConfigPath()}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}
