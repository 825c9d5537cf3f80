package viewer

import "github.com/go-gl/mathgl/mgl32"

// Uniform is a resolved shader uniform location. -1 means the name is not
// active in the linked program; setting it is silently ignored by GL.
type Uniform int32

// Device is the graphics backend the widget draws through.
type Device interface {
	// Configure sets the fixed pipeline state: clear colour, depth test and
	// multisampling.
	Configure(clear mgl32.Vec4)
	Viewport(x, y, width, height int)
	Clear()
	LoadProgram(src ProgramSource) (Program, error)
	LoadModel(path string) (Model, error)
	DrawTriangles(first, count int32)
}

// ProgramSource names the shader files and fragment output of a program.
type ProgramSource struct {
	VertexPath     string
	FragmentPath   string
	FragmentOutput string
}

// Program is a linked shader program.
type Program interface {
	Use()
	UniformLocation(name string) Uniform
	SetMat4(loc Uniform, m mgl32.Mat4)
	SetMat3(loc Uniform, m mgl32.Mat3)
	SetVec4(loc Uniform, v mgl32.Vec4)
	SetVec3(loc Uniform, v mgl32.Vec3)
	SetFloat(loc Uniform, f float32)
	Delete()
}

// Model is drawable mesh geometry resident on the device.
type Model interface {
	Bind()
	Unbind()
	NumVerts() int32
	Delete()
}
