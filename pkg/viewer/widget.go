// Package viewer implements an interactive single mesh viewer: mouse input
// rotates and translates the mesh in front of a fixed camera, and every
// frame is drawn with a Phong shader through a Device.
package viewer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrAlreadyInitialized is returned by a second call to Initialize.
	ErrAlreadyInitialized = errors.New("viewer: already initialized")
	// ErrClosed is returned by Initialize after Close.
	ErrClosed = errors.New("viewer: widget closed")
)

// Light is a point light in the Phong shader.
type Light struct {
	Position  mgl32.Vec4
	Intensity mgl32.Vec3
}

// Material holds the Phong reflectance terms.
type Material struct {
	Kd        mgl32.Vec3
	Ka        mgl32.Vec3
	Ks        mgl32.Vec3
	Shininess float32
}

// Options configure a Widget.
type Options struct {
	Program        ProgramSource
	ModelPath      string
	ClearColor     mgl32.Vec4
	CameraPosition mgl32.Vec3
	Light          Light
	Material       Material
	Interaction    InteractionParams
	Logger         *slog.Logger
}

// DefaultOptions returns the stock viewer set-up.
func DefaultOptions() Options {
	return Options{
		Program: ProgramSource{
			VertexPath:     "shaders/PhongVert.glsl",
			FragmentPath:   "shaders/PhongFrag.glsl",
			FragmentOutput: "fragColour",
		},
		ModelPath:      "models/sphere.obj",
		ClearColor:     mgl32.Vec4{0.5, 0.5, 0.5, 1.0},
		CameraPosition: mgl32.Vec3{0, 0, 5},
		Light: Light{
			Position:  mgl32.Vec4{1, 1, 1, 1},
			Intensity: mgl32.Vec3{0.8, 0.8, 0.8},
		},
		Material: Material{
			Kd:        mgl32.Vec3{0.5, 0.5, 0.5},
			Ka:        mgl32.Vec3{0.5, 0.5, 0.5},
			Ks:        mgl32.Vec3{1, 1, 1},
			Shininess: 100,
		},
		Interaction: DefaultInteraction(),
	}
}

type uniforms struct {
	projection Uniform
	normal     Uniform
	modelView  Uniform
	mvp        Uniform
}

// Widget owns the camera, shader program and model of one viewer and turns
// lifecycle callbacks and input events into draw calls.
type Widget struct {
	opts   Options
	log    *slog.Logger
	device Device

	camera  *Camera
	program Program
	model   Model
	locs    uniforms

	input *Interaction
	frame Frame

	width, height int
	timerStarted  bool
	closed        bool
}

// NewWidget creates a widget sized to its parent's width and height. No
// device work happens until Initialize.
func NewWidget(device Device, width, height int, opts Options) *Widget {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Widget{
		opts:   opts,
		log:    log,
		device: device,
		input:  NewInteraction(opts.Interaction),
		width:  width,
		height: height,
	}
}

// Initialize builds all device resources once the context is current.
func (w *Widget) Initialize() (err error) {
	if w.closed {
		return ErrClosed
	}
	if w.program != nil || w.model != nil || w.camera != nil {
		return ErrAlreadyInitialized
	}

	w.device.Configure(w.opts.ClearColor)
	// no resize is delivered for the initial size
	w.device.Viewport(0, 0, w.width, w.height)

	program, err := w.device.LoadProgram(w.opts.Program)
	if err != nil {
		return fmt.Errorf("failed to build shader program: %w", err)
	}
	defer func() {
		if err != nil {
			program.Delete()
		}
	}()
	program.Use()

	model, err := w.device.LoadModel(w.opts.ModelPath)
	if err != nil {
		return fmt.Errorf("failed to load model %q: %w", w.opts.ModelPath, err)
	}

	w.locs = uniforms{
		projection: program.UniformLocation("projectionMatrix"),
		normal:     program.UniformLocation("normalMatrix"),
		modelView:  program.UniformLocation("modelViewMatrix"),
		mvp:        program.UniformLocation("modelViewProjectionMatrix"),
	}

	light, mat := w.opts.Light, w.opts.Material
	program.SetVec4(program.UniformLocation("light.position"), light.Position)
	program.SetVec3(program.UniformLocation("light.intensity"), light.Intensity)
	program.SetVec3(program.UniformLocation("Kd"), mat.Kd)
	program.SetVec3(program.UniformLocation("Ka"), mat.Ka)
	program.SetVec3(program.UniformLocation("Ks"), mat.Ks)
	program.SetFloat(program.UniformLocation("shininess"), mat.Shininess)

	w.program = program
	w.model = model
	w.camera = NewCamera(w.opts.CameraPosition, w.width, w.height)
	w.timerStarted = true

	w.log.Info("viewer initialized",
		"model", w.opts.ModelPath,
		"vertices", model.NumVerts(),
		"width", w.width,
		"height", w.height)
	return nil
}

// Resize updates the viewport and the camera shape.
func (w *Widget) Resize(width, height int) {
	w.width, w.height = width, height
	if w.camera == nil {
		return
	}
	w.device.Viewport(0, 0, width, height)
	w.camera.SetShape(width, height)
}

// Tick is the redraw timer callback.
func (w *Widget) Tick() {
	if w.timerStarted {
		w.Paint()
	}
}

// Paint draws one frame.
func (w *Widget) Paint() {
	if w.program == nil {
		return
	}
	w.device.Clear()

	model := ModelMatrix(w.input.SpinX, w.input.SpinY, w.input.Position)
	w.frame = ComposeFrame(model, w.camera)
	w.loadMatrices()

	w.model.Bind()
	w.device.DrawTriangles(0, w.model.NumVerts())
	w.model.Unbind()
}

func (w *Widget) loadMatrices() {
	w.program.SetMat4(w.locs.modelView, w.frame.ModelView)
	w.program.SetMat4(w.locs.projection, w.frame.Projection)
	w.program.SetMat3(w.locs.normal, w.frame.Normal)
	w.program.SetMat4(w.locs.mvp, w.frame.MVP)
}

// MousePress handles a button press.
func (w *Widget) MousePress(e MouseEvent) { w.input.Press(e) }

// MouseMove handles cursor motion.
func (w *Widget) MouseMove(e MouseEvent) { w.input.Move(e) }

// MouseRelease handles a button release.
func (w *Widget) MouseRelease(e MouseEvent) { w.input.Release(e) }

// Wheel handles a scroll; only the sign of delta matters.
func (w *Widget) Wheel(delta float32) { w.input.Wheel(delta) }

// Reset returns the mesh to its initial orientation and offset.
func (w *Widget) Reset() {
	w.input.Reset()
	w.log.Debug("view reset")
}

// Camera returns the camera, nil before Initialize.
func (w *Widget) Camera() *Camera { return w.camera }

// Frame returns the matrices of the last painted frame.
func (w *Widget) Frame() Frame { return w.frame }

// Close releases the shader program and model. It is safe to call more
// than once.
func (w *Widget) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.timerStarted = false
	if w.program != nil {
		w.program.Delete()
		w.program = nil
	}
	if w.model != nil {
		w.model.Delete()
		w.model = nil
	}
	w.camera = nil
}
