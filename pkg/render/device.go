package render

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-meshview/internal/openglhelper"
	"github.com/leterax/go-meshview/pkg/model"
	"github.com/leterax/go-meshview/pkg/viewer"
)

// Device draws through the OpenGL context current on the calling thread.
type Device struct {
	log *slog.Logger
}

var _ viewer.Device = (*Device)(nil)

// NewDevice returns a Device. A GL context must be current.
func NewDevice(log *slog.Logger) *Device {
	return &Device{log: log}
}

// Configure sets the clear colour and enables depth testing and multisampling.
func (d *Device) Configure(clear mgl32.Vec4) {
	gl.ClearColor(clear.X(), clear.Y(), clear.Z(), clear.W())
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
}

// Viewport maps clip space onto the given framebuffer rectangle.
func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// Clear clears the colour and depth buffers.
func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawTriangles draws count vertices of the bound mesh starting at first.
func (d *Device) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// LoadProgram compiles and links the shader sources in src.
func (d *Device) LoadProgram(src viewer.ProgramSource) (viewer.Program, error) {
	p, err := openglhelper.LoadProgramFromFiles(src.VertexPath, src.FragmentPath, src.FragmentOutput)
	if err != nil {
		return nil, err
	}
	d.log.Debug("shader program linked", "vertex", src.VertexPath, "fragment", src.FragmentPath, "id", p.ID)
	return program{p}, nil
}

// LoadModel reads the mesh at path and uploads it to the GPU.
func (d *Device) LoadModel(path string) (viewer.Model, error) {
	g, err := model.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load geometry: %w", err)
	}
	d.log.Debug("model loaded",
		"path", path,
		"triangles", g.NumVerts()/3,
		"min", g.Min,
		"max", g.Max)
	return openglhelper.NewMesh(g.Vertices), nil
}

// program adapts openglhelper.ShaderProgram to typed uniform locations.
type program struct {
	*openglhelper.ShaderProgram
}

func (p program) UniformLocation(name string) viewer.Uniform {
	return viewer.Uniform(p.ShaderProgram.UniformLocation(name))
}

func (p program) SetMat4(loc viewer.Uniform, m mgl32.Mat4) { p.ShaderProgram.SetMat4(int32(loc), m) }
func (p program) SetMat3(loc viewer.Uniform, m mgl32.Mat3) { p.ShaderProgram.SetMat3(int32(loc), m) }
func (p program) SetVec4(loc viewer.Uniform, v mgl32.Vec4) { p.ShaderProgram.SetVec4(int32(loc), v) }
func (p program) SetVec3(loc viewer.Uniform, v mgl32.Vec3) { p.ShaderProgram.SetVec3(int32(loc), v) }
func (p program) SetFloat(loc viewer.Uniform, f float32) { p.ShaderProgram.SetFloat(int32(loc), f) }
