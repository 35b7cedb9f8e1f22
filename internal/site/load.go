package site

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/lint"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name used when none is given.
const DefaultConfigFile = "sitecfg.yaml"

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load reads, decodes and validates the configuration file at path.
// Validation errors abort loading; warnings are logged.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := gate(Validate(cfg)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read reads and decodes the configuration file at path without validating it.
// `.env` and `.env.local` next to the file are loaded first so that ${VAR}
// references can be resolved; existing environment variables win.
func Read(path string) (*Config, error) {
	loadEnvFiles(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ferrors.ConfigError("configuration file not found").WithContext("path", path).Build()
	}
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read configuration file").
			WithContext("path", path).Build()
	}

	cfg, nres, err := Decode(data)
	if err != nil {
		return nil, err
	}
	for _, w := range nres.Warnings {
		slog.Warn("Config normalization", slog.String("detail", w), logfields.Path(path))
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Config, error) {
	cfg, _, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err := gate(Validate(cfg)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode expands ${VAR} references, strictly decodes the YAML document,
// normalizes it and applies defaults.
func Decode(data []byte) (*Config, *NormalizeResult, error) {
	expanded := envRef.ReplaceAllFunc(data, func(m []byte) []byte {
		return []byte(os.Getenv(string(envRef.FindSubmatch(m)[1])))
	})

	dec := yaml.NewDecoder(bytes.NewReader(expanded))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, ferrors.ConfigError("configuration file is empty").Build()
		}
		return nil, nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to decode configuration").Fatal().Build()
	}

	nres, err := Normalize(&cfg)
	if err != nil {
		return nil, nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to normalize configuration").Fatal().Build()
	}
	applyDefaults(&cfg)
	return &cfg, nres, nil
}

// gate turns error-level issues into a classified validation error and logs warnings.
func gate(res *lint.Result) error {
	for _, issue := range res.Issues {
		if issue.Severity == lint.SeverityWarning {
			slog.Warn(issue.Message, logfields.Field(issue.Field), logfields.Rule(issue.Rule))
		}
	}
	errs := res.Errors()
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	return ferrors.ValidationError(fmt.Sprintf("configuration validation failed: %s", first.Message)).
		WithContext("field", first.Field).
		WithContext("errors", len(errs)).
		Build()
}

// Init writes cfg as an example configuration file. An existing file is only
// replaced when force is set.
func Init(path string, force bool, cfg *Config) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.AlreadyExistsError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).Build()
	}
	if cfg == nil {
		cfg = Default()
	}

	var buf bytes.Buffer
	buf.WriteString("# Site configuration rendered by `sitecfg render`.\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal configuration").Build()
	}
	if err := enc.Close(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal configuration").Build()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create configuration directory").
				WithContext("path", dir).Build()
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write configuration file").
			WithContext("path", path).Build()
	}
	return nil
}

func loadEnvFiles(dir string) {
	for _, name := range []string{".env", ".env.local"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			slog.Warn("Failed to load env file", logfields.Path(p), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment variables", logfields.Path(p))
	}
}
