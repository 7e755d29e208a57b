package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/snippet/pkg/errors"
	"github.com/arthur-debert/snippet/pkg/logging"
	"github.com/arthur-debert/snippet/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "SNIPPET_"

// Load reads every configuration layer. explicitPath may be empty; when
// set, the file must exist.
func Load(p paths.Paths, explicitPath string) (*Config, error) {
	return load(p, explicitPath, true, nil)
}

// LoadWithOverrides is Load followed by one last layer of dotted keys,
// e.g. {"output.format": "json"} from command line flags.
func LoadWithOverrides(p paths.Paths, explicitPath string, overrides map[string]interface{}) (*Config, error) {
	return load(p, explicitPath, true, overrides)
}

// Default returns the embedded defaults alone
func Default() (*Config, error) {
	return load(emptyPaths{}, "", false, nil)
}

func load(p paths.Paths, explicitPath string, withEnv bool, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if err := loadIfExists(k, p.HomeConfigPath()); err != nil {
		return nil, err
	}

	for _, candidate := range p.AppConfigPaths() {
		loaded, err := loadFile(k, candidate, false)
		if err != nil {
			return nil, err
		}
		if loaded {
			logger.Debug().Str("path", candidate).Msg("Loaded app config")
			break
		}
	}

	if explicitPath != "" {
		if _, err := loadFile(k, paths.ExpandHome(explicitPath), true); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", explicitPath).Msg("Loaded explicit config")
	}

	if withEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
		}
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Trace().
		Str("format", cfg.Output.Format).
		Strs("templates", cfg.TemplateNames()).
		Msg("Configuration loaded")
	return &cfg, nil
}

func loadIfExists(k *koanf.Koanf, path string) error {
	_, err := loadFile(k, path, false)
	return err
}

// loadFile merges path into k, choosing the parser by extension.
// A missing file is an error only when required.
func loadFile(k *koanf.Koanf, path string, required bool) (bool, error) {
	if path == "" {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return false, errors.Newf(errors.ErrConfigLoad, "config %s is a directory", path).
			WithDetail("path", path)
	}

	var parser koanf.Parser = toml.Parser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config %s", path).
			WithDetail("path", path)
	}
	return true, nil
}

// envKey maps SNIPPET_OUTPUT_FORMAT to output.format. Only the logging and
// output sections can be set this way; other variables are skipped.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	key = strings.Replace(key, "_", ".", 1)
	if strings.HasPrefix(key, "logging.") || strings.HasPrefix(key, "output.") {
		return key
	}
	return ""
}

// emptyPaths points every config location nowhere
type emptyPaths struct{}

func (emptyPaths) HomeDir() string          { return "" }
func (emptyPaths) HomeConfigPath() string   { return "" }
func (emptyPaths) ConfigDir() string        { return "" }
func (emptyPaths) AppConfigPaths() []string { return nil }
func (emptyPaths) StateDir() string         { return "" }
func (emptyPaths) LogFilePath() string      { return "" }
