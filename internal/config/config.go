// Package config loads the optional YAML settings file for wordcalc.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// ColorMode selects when reports are colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const DefaultSentinel = "exit"

type Config struct {
	Banner  string    `yaml:"banner"`
	Prompt  string    `yaml:"prompt"`
	Exit    string    `yaml:"exit"`
	Color   ColorMode `yaml:"color"`
	Preload []string  `yaml:"preload"`
}

func Default() Config {
	return Config{
		Banner: Banner(DefaultSentinel),
		Prompt: "> ",
		Exit:   DefaultSentinel,
		Color:  ColorAuto,
	}
}

// Banner is the greeting printed when a session starts.
func Banner(sentinel string) string {
	return fmt.Sprintf("Simple Interpreter. Type '%s' to quit.", sentinel)
}

// Load reads path on top of the defaults. Keys left out of the file keep
// their default values; unknown keys are an error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// file mirrors Config with optional fields so absent keys can be told apart
// from empty ones.
type file struct {
	Banner  *string    `yaml:"banner"`
	Prompt  *string    `yaml:"prompt"`
	Exit    *string    `yaml:"exit"`
	Color   *ColorMode `yaml:"color"`
	Preload []string   `yaml:"preload"`
}

func Decode(r io.Reader) (Config, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	cfg := Default()
	if f.Exit != nil {
		cfg.Exit = *f.Exit
	}
	// the default greeting names the sentinel, so it follows a custom one
	cfg.Banner = Banner(cfg.Exit)
	if f.Banner != nil {
		cfg.Banner = *f.Banner
	}
	if f.Prompt != nil {
		cfg.Prompt = *f.Prompt
	}
	if f.Color != nil {
		cfg.Color = *f.Color
	}
	cfg.Preload = f.Preload
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Exit == "" {
		return errors.New("exit sentinel must not be empty")
	}
	if strings.IndexFunc(c.Exit, unicode.IsSpace) >= 0 {
		return fmt.Errorf("exit sentinel %q must be a single word", c.Exit)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", c.Color)
	}
	return nil
}
