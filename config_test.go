package primespiral

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/primespiral/internal/color"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 6000 || cfg.Height != 6000 {
		t.Errorf("size = %dx%d, want 6000x6000", cfg.Width, cfg.Height)
	}
	if cfg.SpiralWidth != 1.5 {
		t.Errorf("SpiralWidth = %v, want 1.5", cfg.SpiralWidth)
	}
	if cfg.Offset != 0.1 {
		t.Errorf("Offset = %v, want 0.1", cfg.Offset)
	}
	if cfg.KernelRadius != 5 {
		t.Errorf("KernelRadius = %v, want 5", cfg.KernelRadius)
	}
	if cfg.Output != "prime.png" {
		t.Errorf("Output = %q, want prime.png", cfg.Output)
	}
	if cfg.Gradient != color.DefaultGradient() {
		t.Errorf("Gradient = %+v, want default", cfg.Gradient)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -4 }},
		{"zero spiral width", func(c *Config) { c.SpiralWidth = 0 }},
		{"NaN spiral width", func(c *Config) { c.SpiralWidth = math.NaN() }},
		{"infinite spiral width", func(c *Config) { c.SpiralWidth = math.Inf(1) }},
		{"negative offset", func(c *Config) { c.Offset = -0.1 }},
		{"NaN offset", func(c *Config) { c.Offset = math.NaN() }},
		{"negative radius", func(c *Config) { c.KernelRadius = -1 }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigBound(t *testing.T) {
	tests := []struct {
		w, h        int
		spiralWidth float64
		wantDist    float64
		wantBound   int
	}{
		// sqrt(2)*50*1.1 = 77.78, (77.78/1.5)^2 = 2688.9
		{100, 100, 1.5, 77.7817459305202, 2688},
		// sqrt(2)*3000*1.1 = 4666.9, (4666.9/1.5)^2 = 9680000
		{6000, 6000, 1.5, 4666.904755831214, 9680000},
		{30, 40, 1, 27.5, 756},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height, cfg.SpiralWidth = tt.w, tt.h, tt.spiralWidth

		if got := cfg.MaxDistance(); math.Abs(got-tt.wantDist) > 1e-9 {
			t.Errorf("%dx%d MaxDistance() = %v, want %v", tt.w, tt.h, got, tt.wantDist)
		}
		if got := cfg.Bound(); got < tt.wantBound-1 || got > tt.wantBound {
			t.Errorf("%dx%d Bound() = %d, want %d", tt.w, tt.h, got, tt.wantBound)
		}
	}
}
