package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/wsp/pkg/errors"
	"github.com/arthur-debert/wsp/pkg/logging"
	"github.com/arthur-debert/wsp/pkg/paths"
	"github.com/arthur-debert/wsp/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for configuration environment variables
const EnvPrefix = "WSP_"

// Config is the resolved wsp configuration
type Config struct {
	Root         string        `koanf:"root" toml:"root"`
	ManagedFiles []ManagedFile `koanf:"managed_files" toml:"managed_files"`

	// Source is the user file that was loaded, empty when none was.
	Source string `koanf:"-" toml:"-"`
}

// ManagedFile is one entry of the managed file table as written in config.
type ManagedFile struct {
	Target string `koanf:"target" toml:"target"`
	Name   string `koanf:"name" toml:"name"`
}

// Load builds the configuration. configFile is an explicit user file; when
// empty the default location is used if it exists.
func Load(configFile string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	path := configFile
	if path == "" {
		path = paths.ConfigFile()
	}

	var source string
	if _, err := os.Stat(path); err == nil {
		if err := checkUserFile(path); err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		source = path
		logger.Debug().Str("path", path).Msg("Loaded user config")
	} else if configFile != "" {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", configFile)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", cfg.Root).
		Int("managedFiles", len(cfg.ManagedFiles)).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Default returns the embedded defaults without reading any user input.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal defaults")
	}
	return &cfg, nil
}

// Validate checks the managed file table.
func (c *Config) Validate() error {
	if err := paths.ValidatePath(c.Root); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid root")
	}
	seen := make(map[string]bool, len(c.ManagedFiles))
	for i, mf := range c.ManagedFiles {
		if err := paths.ValidateFileName(mf.Name); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "managed_files[%d]", i)
		}
		if err := paths.ValidatePath(mf.Target); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "managed_files[%d] target", i)
		}
		key := mf.Target + "\x00" + mf.Name
		if seen[key] {
			return errors.Newf(errors.ErrConfigParse, "managed_files[%d]: duplicate entry %s/%s", i, mf.Target, mf.Name)
		}
		seen[key] = true
	}
	return nil
}

// Files resolves the managed file table against home, expanding "~" and
// environment variables in each target.
func (c *Config) Files(home string) []types.ManagedFile {
	files := make([]types.ManagedFile, 0, len(c.ManagedFiles))
	for _, mf := range c.ManagedFiles {
		files = append(files, types.ManagedFile{
			TargetPath: paths.ExpandHome(os.ExpandEnv(mf.Target), home),
			FileName:   mf.Name,
		})
	}
	return files
}
