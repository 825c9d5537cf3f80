// Package config loads viewer settings from YAML on top of built-in
// defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/leterax/go-meshview/pkg/viewer"
)

// Window sets the GLFW window and the OpenGL context it requests.
type Window struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	VSync   bool   `yaml:"vsync"`
	Samples int    `yaml:"samples"`
	GLMajor int    `yaml:"gl_major"`
	GLMinor int    `yaml:"gl_minor"`
}

// Shaders names the Phong program sources.
type Shaders struct {
	Vertex         string `yaml:"vertex"`
	Fragment       string `yaml:"fragment"`
	FragmentOutput string `yaml:"fragment_output"`
}

// Light is the point light, position in eye space.
type Light struct {
	Position  [4]float32 `yaml:"position"`
	Intensity [3]float32 `yaml:"intensity"`
}

// Material holds the Phong reflectance terms of the mesh.
type Material struct {
	Kd        [3]float32 `yaml:"kd"`
	Ka        [3]float32 `yaml:"ka"`
	Ks        [3]float32 `yaml:"ks"`
	Shininess float32    `yaml:"shininess"`
}

// Interaction tunes the mouse controls.
type Interaction struct {
	RotateFactor float32 `yaml:"rotate_factor"`
	Increment    float32 `yaml:"increment"`
	Zoom         float32 `yaml:"zoom"`
}

// Config is the full viewer configuration.
type Config struct {
	Window      Window      `yaml:"window"`
	Shaders     Shaders     `yaml:"shaders"`
	Model       string      `yaml:"model"`
	ClearColor  [4]float32  `yaml:"clear_color"`
	Camera      [3]float32  `yaml:"camera"`
	Light       Light       `yaml:"light"`
	Material    Material    `yaml:"material"`
	Interaction Interaction `yaml:"interaction"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	o := viewer.DefaultOptions()
	return Config{
		Window: Window{
			Width:   800,
			Height:  600,
			Title:   "meshview",
			Samples: 4,
			GLMajor: 4,
			GLMinor: 1,
		},
		Shaders: Shaders{
			Vertex:         o.Program.VertexPath,
			Fragment:       o.Program.FragmentPath,
			FragmentOutput: o.Program.FragmentOutput,
		},
		Model:      o.ModelPath,
		ClearColor: o.ClearColor,
		Camera:     o.CameraPosition,
		Light: Light{
			Position:  o.Light.Position,
			Intensity: o.Light.Intensity,
		},
		Material: Material{
			Kd:        o.Material.Kd,
			Ka:        o.Material.Ka,
			Ks:        o.Material.Ks,
			Shininess: o.Material.Shininess,
		},
		Interaction: Interaction{
			RotateFactor: o.Interaction.RotateFactor,
			Increment:    o.Interaction.Increment,
			Zoom:         o.Interaction.ZoomStep,
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads YAML from r over the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Samples < 0 {
		return fmt.Errorf("invalid sample count %d", c.Window.Samples)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return errors.New("shader paths must not be empty")
	}
	if c.Model == "" {
		return errors.New("model path must not be empty")
	}
	for name, v := range map[string]float32{
		"rotate_factor": c.Interaction.RotateFactor,
		"increment":     c.Interaction.Increment,
		"zoom":          c.Interaction.Zoom,
	} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("interaction.%s must be finite", name)
		}
	}
	return nil
}

// WindowTitle is the title shown for the loaded model. A positive fps is
// appended as the measured frame rate.
func (c Config) WindowTitle(fps float64) string {
	if fps <= 0 {
		return fmt.Sprintf("%s - %s", c.Window.Title, c.Model)
	}
	return fmt.Sprintf("%s - %s - %.0f fps", c.Window.Title, c.Model, fps)
}

// ViewerOptions maps the configuration onto widget options.
func (c Config) ViewerOptions() viewer.Options {
	return viewer.Options{
		Program: viewer.ProgramSource{
			VertexPath:     c.Shaders.Vertex,
			FragmentPath:   c.Shaders.Fragment,
			FragmentOutput: c.Shaders.FragmentOutput,
		},
		ModelPath:      c.Model,
		ClearColor:     mgl32.Vec4(c.ClearColor),
		CameraPosition: mgl32.Vec3(c.Camera),
		Light: viewer.Light{
			Position:  mgl32.Vec4(c.Light.Position),
			Intensity: mgl32.Vec3(c.Light.Intensity),
		},
		Material: viewer.Material{
			Kd:        mgl32.Vec3(c.Material.Kd),
			Ka:        mgl32.Vec3(c.Material.Ka),
			Ks:        mgl32.Vec3(c.Material.Ks),
			Shininess: c.Material.Shininess,
		},
		Interaction: viewer.InteractionParams{
			RotateFactor: c.Interaction.RotateFactor,
			Increment:    c.Interaction.Increment,
			ZoomStep:     c.Interaction.Zoom,
		},
	}
}
