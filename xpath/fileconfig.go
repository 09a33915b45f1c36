package xpath

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/CognitoIQ/go-xpath/internal/xlog"
	"github.com/CognitoIQ/go-xpath/staticctx"
)

// FileConfig is a YAML-loadable subset of Config, for hosts that want
// to declare XPath settings in a config file instead of Go code.
type FileConfig struct {
	Version              string `yaml:"version"`
	Strict               bool   `yaml:"strict"`
	EnableNamespaceAxis  bool   `yaml:"enableNamespaceAxis"`
	XPath10Compatibility bool   `yaml:"xpath10Compatibility"`
	LogLevel             string `yaml:"logLevel"`
	LogFormat            string `yaml:"logFormat"`
}

// LoadFileConfig reads and parses a YAML file at path into a
// FileConfig.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

// Options turns the declared fields into a slice of Option values, so
// a host can splice a FileConfig into the same Option list it would
// pass to New or Compile: New(append(fc.Options(), xpath.WithCache(c))...).
// A LogLevel/LogFormat pair that fails to parse is silently skipped
// (logging stays at its discard default) rather than returned as an
// error, since Options has no error return of its own; a host that
// needs to surface a bad config value should validate LogLevel/
// LogFormat itself with internal package xlog's parsing rules before
// calling Options.
func (fc *FileConfig) Options() []Option {
	var opts []Option
	if fc.Version != "" {
		opts = append(opts, WithVersion(staticctx.Version(fc.Version)))
	}
	opts = append(opts,
		WithStrictMode(fc.Strict),
		WithNamespaceAxis(fc.EnableNamespaceAxis),
		WithXPath10Compatibility(fc.XPath10Compatibility),
	)
	if fc.LogLevel != "" || fc.LogFormat != "" {
		if logger, err := xlog.NewLoggerFromStrings(os.Stderr, fc.LogLevel, fc.LogFormat); err == nil {
			opts = append(opts, WithLogger(logger))
		}
	}
	return opts
}
