// Package config loads the backdrop theme file. Every visual constant has
// a built-in default, so running without a file gives the stock scene.
package config

import (
	"fmt"
	"os"

	"gopkg.in/gcfg.v1"
)

// RGB is an INI color value written as three 0-255 components, e.g.
// "top = 26 16 64".
type RGB struct {
	R, G, B uint8
}

func (c *RGB) UnmarshalText(text []byte) error {
	var r, g, b int
	if _, err := fmt.Sscanf(string(text), "%d %d %d", &r, &g, &b); err != nil {
		return fmt.Errorf("color needs three components %q: %w", text, err)
	}
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return fmt.Errorf("color component %d out of range [0,255]", v)
		}
	}
	c.R, c.G, c.B = uint8(r), uint8(g), uint8(b)
	return nil
}

// Norm returns the color as float RGB in [0,1] for shader uniforms.
func (c RGB) Norm() [3]float32 {
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

type ColorsConfig struct {
	Top    RGB
	Bottom RGB
}

type StarfieldConfig struct {
	Count     int
	RadiusMin float64
	RadiusMax float64
	SpinRate  float64
	Opacity   float64
}

func (c *StarfieldConfig) CheckInit() error {
	if c.Count <= 0 {
		return fmt.Errorf("starfield count must be positive, got %d", c.Count)
	}
	if c.RadiusMin <= 0 || c.RadiusMax < c.RadiusMin {
		return fmt.Errorf("starfield radius range [%g, %g] invalid", c.RadiusMin, c.RadiusMax)
	}
	if c.Opacity < 0 || c.Opacity > 1 {
		return fmt.Errorf("starfield opacity %g outside [0,1]", c.Opacity)
	}
	return nil
}

type MistConfig struct {
	Count    int
	Width    float64
	Height   float64
	Depth    float64
	SpinRate float64
	Opacity  float64
}

func (c *MistConfig) CheckInit() error {
	if c.Count <= 0 {
		return fmt.Errorf("mist count must be positive, got %d", c.Count)
	}
	if c.Width <= 0 || c.Height <= 0 || c.Depth <= 0 {
		return fmt.Errorf("mist volume %gx%gx%g invalid", c.Width, c.Height, c.Depth)
	}
	if c.Opacity < 0 || c.Opacity > 1 {
		return fmt.Errorf("mist opacity %g outside [0,1]", c.Opacity)
	}
	return nil
}

type BodiesConfig struct {
	Count int
}

func (c *BodiesConfig) CheckInit() error {
	if c.Count <= 0 {
		return fmt.Errorf("bodies count must be positive, got %d", c.Count)
	}
	return nil
}

type CameraConfig struct {
	Distance float64
	Fov      float64
}

func (c *CameraConfig) CheckInit() error {
	if c.Distance <= 0 {
		return fmt.Errorf("camera distance must be positive, got %g", c.Distance)
	}
	if c.Fov <= 0 || c.Fov >= 180 {
		return fmt.Errorf("camera fov %g outside (0,180)", c.Fov)
	}
	return nil
}

type CaptureConfig struct {
	Dir string
}

type Config struct {
	Colors    ColorsConfig
	Starfield StarfieldConfig
	Mist      MistConfig
	Bodies    BodiesConfig
	Camera    CameraConfig
	Capture   CaptureConfig
}

// Default is the stock theme: deep indigo gradient, 1200-star shell,
// 900-mote mist, twelve drifting spheres, camera 14 units out.
func Default() *Config {
	return &Config{
		Colors: ColorsConfig{
			Top:    RGB{26, 16, 64},
			Bottom: RGB{6, 3, 18},
		},
		Starfield: StarfieldConfig{
			Count:     1200,
			RadiusMin: 40,
			RadiusMax: 70,
			SpinRate:  0.0004,
			Opacity:   0.85,
		},
		Mist: MistConfig{
			Count:    900,
			Width:    30,
			Height:   18,
			Depth:    24,
			SpinRate: 0.0002,
			Opacity:  0.13,
		},
		Bodies: BodiesConfig{Count: 12},
		Camera: CameraConfig{Distance: 14, Fov: 45},
		Capture: CaptureConfig{
			Dir: ".",
		},
	}
}

// Load reads an INI theme file over the defaults. An empty path returns
// the defaults untouched; a missing file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	if err := gcfg.ReadFileInto(cfg, path); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := cfg.CheckInit(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) CheckInit() error {
	if err := c.Starfield.CheckInit(); err != nil {
		return err
	}
	if err := c.Mist.CheckInit(); err != nil {
		return err
	}
	if err := c.Bodies.CheckInit(); err != nil {
		return err
	}
	return c.Camera.CheckInit()
}
