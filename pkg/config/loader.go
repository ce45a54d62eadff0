package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/portfs/pkg/errors"
	"github.com/arthur-debert/portfs/pkg/logging"
)

const envPrefix = "PORTFS_"

// LoadOptions selects the sources for Load.
type LoadOptions struct {
	// File replaces the default user config path. A missing explicit file
	// is an error; a missing default file is not.
	File string
	// Overrides are dotted keys applied after every other layer.
	Overrides map[string]interface{}
}

// UserConfigPath is the default location of the user config file.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "portfs", "config.toml")
}

// Load builds the configuration from all layers.
func Load(opts LoadOptions) (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	path := opts.File
	if path == "" {
		path = UserConfigPath()
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			code := errors.ErrConfigParse
			if errors.Classify(err) == errors.ErrNotFound {
				code = errors.ErrConfigLoad
			}
			return nil, errors.Wrapf(err, code, "failed to load config from %s", path).WithPaths(path)
		}
		log.Debug().Str("path", path).Msg("loaded config file")
	}

	// 3. Environment. PORTFS_ITERATE_MAX_DEPTH maps to iterate.max_depth:
	// only the first underscore separates section from key.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
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
			ErrorUnused:      false,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the embedded defaults alone.
func Default() *Config {
	k := koanf.New(".")
	var cfg Config
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err == nil {
		_ = k.Unmarshal("", &cfg)
	}
	return &cfg
}
