package openglhelper

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader is a single compiled shader stage.
type Shader struct {
	ID   uint32
	Type uint32
}

// compileShader compiles a single shader
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile shader: %v", strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

// NewShaderFromFile reads and compiles a shader stage.
func NewShaderFromFile(path string, shaderType uint32) (*Shader, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader file: %w", err)
	}
	id, err := compileShader(string(source), shaderType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Shader{ID: id, Type: shaderType}, nil
}

// Delete flags the stage for deletion. An attached stage lives until its
// program is deleted.
func (s *Shader) Delete() {
	gl.DeleteShader(s.ID)
}

// ShaderProgram is a linkable set of shader stages.
type ShaderProgram struct {
	ID uint32
}

// NewShaderProgram creates an empty program.
func NewShaderProgram() *ShaderProgram {
	return &ShaderProgram{ID: gl.CreateProgram()}
}

// AttachShader adds a compiled stage to the program.
func (p *ShaderProgram) AttachShader(s *Shader) {
	gl.AttachShader(p.ID, s.ID)
}

// BindFragDataLocation binds a fragment shader output to a colour number.
// It must be called before Link.
func (p *ShaderProgram) BindFragDataLocation(colour uint32, name string) {
	gl.BindFragDataLocation(p.ID, colour, gl.Str(name+"\x00"))
}

// Link links the attached stages.
func (p *ShaderProgram) Link() error {
	gl.LinkProgram(p.ID)

	var status int32
	gl.GetProgramiv(p.ID, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(p.ID, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(p.ID, logLength, nil, gl.Str(log))

		return fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}
	return nil
}

// Use activates the shader program
func (p *ShaderProgram) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the shader program
func (p *ShaderProgram) Delete() {
	gl.DeleteProgram(p.ID)
}

// UniformLocation returns the location of name, or -1 if it is not active.
func (p *ShaderProgram) UniformLocation(name string) int32 {
	return gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
}

func (p *ShaderProgram) SetFloat(loc int32, value float32) {
	gl.Uniform1f(loc, value)
}

func (p *ShaderProgram) SetVec3(loc int32, v mgl32.Vec3) {
	gl.Uniform3f(loc, v[0], v[1], v[2])
}

func (p *ShaderProgram) SetVec4(loc int32, v mgl32.Vec4) {
	gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
}

func (p *ShaderProgram) SetMat3(loc int32, m mgl32.Mat3) {
	gl.UniformMatrix3fv(loc, 1, false, &m[0])
}

func (p *ShaderProgram) SetMat4(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// LoadProgramFromFiles compiles a vertex and a fragment shader, binds the
// fragment output to colour 0 and links them.
func LoadProgramFromFiles(vertexPath, fragmentPath, fragOutput string) (*ShaderProgram, error) {
	vertex, err := NewShaderFromFile(vertexPath, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	defer vertex.Delete()

	fragment, err := NewShaderFromFile(fragmentPath, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader compilation failed: %w", err)
	}
	defer fragment.Delete()

	program := NewShaderProgram()
	program.AttachShader(vertex)
	program.AttachShader(fragment)
	if fragOutput != "" {
		program.BindFragDataLocation(0, fragOutput)
	}
	if err := program.Link(); err != nil {
		program.Delete()
		return nil, err
	}
	return program, nil
}
