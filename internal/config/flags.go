package config

import "flag"

// Overrides are command line values that replace file settings.
type Overrides struct {
	Model  string
	Width  int
	Height int
	VSync  bool
}

// Bind registers the override flags on fs.
func (o *Overrides) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.Model, "model", "", "OBJ file to display, or \"cube\"")
	fs.IntVar(&o.Width, "width", 0, "Window width (overrides config)")
	fs.IntVar(&o.Height, "height", 0, "Window height (overrides config)")
	fs.BoolVar(&o.VSync, "vsync", false, "Wait for vertical sync between frames (overrides config)")
}

// Apply copies the flags explicitly set on fs into c and validates the
// result. Flags left at their default do not touch c.
func (o *Overrides) Apply(fs *flag.FlagSet, c *Config) error {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			c.Model = o.Model
		case "width":
			c.Window.Width = o.Width
		case "height":
			c.Window.Height = o.Height
		case "vsync":
			c.Window.VSync = o.VSync
		}
	})
	return c.Validate()
}
