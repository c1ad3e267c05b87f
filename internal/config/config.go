// Package config loads render settings from a YAML file.
//
// Every key is optional; keys left out keep the value already in the
// primespiral.Config the file is applied to.
//
//	width: 6000
//	height: 6000
//	spiral_width: 1.5
//	offset: 0.1
//	kernel_radius: 5
//	background: "#121212"
//	foreground: "#f2f5ff"
//	output: prime.png
//	workers: 0
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/primespiral"
	"github.com/gogpu/primespiral/internal/color"
)

// ErrInvalidColor is returned for color strings that are not hex RGB.
var ErrInvalidColor = errors.New("config: invalid color")

// File mirrors the YAML document. Pointer fields distinguish "absent" from zero.
type File struct {
	Width        *int     `yaml:"width"`
	Height       *int     `yaml:"height"`
	SpiralWidth  *float64 `yaml:"spiral_width"`
	Offset       *float64 `yaml:"offset"`
	KernelRadius *int     `yaml:"kernel_radius"`
	Background   string   `yaml:"background"`
	Foreground   string   `yaml:"foreground"`
	Output       string   `yaml:"output"`
	Workers      *int     `yaml:"workers"`
}

// Load reads and parses a YAML config file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a YAML document. Unknown keys are rejected.
// An empty or comment-only document yields an empty File.
func Parse(data []byte) (*File, error) {
	f := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty or comment-only document.
			return f, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return f, nil
}

// Apply overwrites the fields of cfg that are set in f.
// cfg is left untouched if any color fails to parse.
func (f *File) Apply(cfg *primespiral.Config) error {
	bg, fg := cfg.Gradient.Background, cfg.Gradient.Foreground
	var err error
	if f.Background != "" {
		if bg, err = ParseColor(f.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	if f.Foreground != "" {
		if fg, err = ParseColor(f.Foreground); err != nil {
			return fmt.Errorf("foreground: %w", err)
		}
	}
	cfg.Gradient.Background, cfg.Gradient.Foreground = bg, fg

	if f.Width != nil {
		cfg.Width = *f.Width
	}
	if f.Height != nil {
		cfg.Height = *f.Height
	}
	if f.SpiralWidth != nil {
		cfg.SpiralWidth = *f.SpiralWidth
	}
	if f.Offset != nil {
		cfg.Offset = *f.Offset
	}
	if f.KernelRadius != nil {
		cfg.KernelRadius = *f.KernelRadius
	}
	if f.Output != "" {
		cfg.Output = f.Output
	}
	if f.Workers != nil {
		cfg.Workers = *f.Workers
	}
	return nil
}

// ParseColor parses "#rrggbb", "#rgb" or the same without the leading '#'.
func ParseColor(s string) (color.ColorU8, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return color.ColorU8{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.ColorU8{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return color.RGB(r, g, b), nil
}

// Marshal renders cfg as a YAML document that Parse accepts.
func Marshal(cfg primespiral.Config) ([]byte, error) {
	f := File{
		Width:        &cfg.Width,
		Height:       &cfg.Height,
		SpiralWidth:  &cfg.SpiralWidth,
		Offset:       &cfg.Offset,
		KernelRadius: &cfg.KernelRadius,
		Background:   cfg.Gradient.Background.Hex(),
		Foreground:   cfg.Gradient.Foreground.Hex(),
		Output:       cfg.Output,
		Workers:      &cfg.Workers,
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
