// Package config loads engine and command options from defaults, a YAML or TOML file,
// and ZEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	koanftoml "github.com/knadh/koanf/parsers/toml"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/ava12/zen/descriptor"
	"github.com/ava12/zen/expand"
)

// EnvPrefix is the prefix of environment variables overriding options, e.g. ZEN_STRICT=true.
const EnvPrefix = "ZEN_"

const (
	MultiClass  = "multi"
	SingleClass = "single"
)

// Options are engine and command settings.
type Options struct {
	ClassMode string `koanf:"class_mode" toml:"class_mode" validate:"oneof=multi single"`
	Strict    bool   `koanf:"strict" toml:"strict"`
	Minify    bool   `koanf:"minify" toml:"minify"`
	LogLevel  string `koanf:"log_level" toml:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`
}

func Defaults() *Options {
	return &Options{
		ClassMode: MultiClass,
		LogLevel:  zerolog.WarnLevel.String(),
	}
}

func defaultsMap() map[string]any {
	d := Defaults()
	return map[string]any{
		"class_mode": d.ClassMode,
		"strict":     d.Strict,
		"minify":     d.Minify,
		"log_level":  d.LogLevel,
	}
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return koanfyaml.Parser(), nil
	case ".toml":
		return koanftoml.Parser(), nil
	}
	return nil, fmt.Errorf("unsupported config file type: %s", path)
}

// Load returns validated options. path may be empty, then only defaults and environment are used.
func Load(path string) (*Options, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var opts Options
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &opts,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &opts, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})
	return v
}

// Validate checks option values, the error lists every invalid option.
func (o *Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, ve := range verrs {
		switch ve.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s, got %q", ve.Field(), ve.Param(), ve.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", ve.Field()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func (o *Options) Classes() descriptor.ClassMode {
	if o.ClassMode == SingleClass {
		return descriptor.SingleClass
	}
	return descriptor.MultiClass
}

// Level returns the configured log level, invalid names give zerolog.WarnLevel.
func (o *Options) Level() zerolog.Level {
	l, err := zerolog.ParseLevel(o.LogLevel)
	if err != nil || o.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return l
}

// EngineOptions converts options to expand options.
func (o *Options) EngineOptions() []expand.Option {
	return []expand.Option{
		expand.WithClassMode(o.Classes()),
		expand.WithStrict(o.Strict),
	}
}

// Dump writes options as TOML.
func Dump(w io.Writer, o *Options) error {
	return toml.NewEncoder(w).Encode(o)
}
