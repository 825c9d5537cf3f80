package viewer

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

type viewport struct{ x, y, w, h int }

type fakeDevice struct {
	configured []mgl32.Vec4
	viewports  []viewport
	clears     int
	draws      [][2]int32

	programErr error
	modelErr   error

	program *fakeProgram
	model   *fakeModel
	log     []string
}

func newFakeDevice() *fakeDevice {
	d := &fakeDevice{}
	d.program = &fakeProgram{dev: d, locs: map[string]Uniform{}, values: map[Uniform]any{}}
	d.model = &fakeModel{dev: d, verts: 36}
	return d
}

func (d *fakeDevice) Configure(clear mgl32.Vec4) { d.configured = append(d.configured, clear) }

func (d *fakeDevice) Viewport(x, y, w, h int) {
	d.viewports = append(d.viewports, viewport{x, y, w, h})
}

func (d *fakeDevice) Clear() {
	d.clears++
	d.log = append(d.log, "clear")
}

func (d *fakeDevice) LoadProgram(src ProgramSource) (Program, error) {
	if d.programErr != nil {
		return nil, d.programErr
	}
	d.program.src = src
	return d.program, nil
}

func (d *fakeDevice) LoadModel(path string) (Model, error) {
	if d.modelErr != nil {
		return nil, d.modelErr
	}
	d.model.path = path
	return d.model, nil
}

func (d *fakeDevice) DrawTriangles(first, count int32) {
	d.draws = append(d.draws, [2]int32{first, count})
	d.log = append(d.log, "draw")
}

type fakeProgram struct {
	dev     *fakeDevice
	src     ProgramSource
	used    bool
	deleted int
	locs    map[string]Uniform
	values  map[Uniform]any
}

func (p *fakeProgram) Use() { p.used = true }

func (p *fakeProgram) UniformLocation(name string) Uniform {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := Uniform(len(p.locs))
	p.locs[name] = loc
	return loc
}

func (p *fakeProgram) value(name string) any {
	loc, ok := p.locs[name]
	if !ok {
		return nil
	}
	return p.values[loc]
}

func (p *fakeProgram) SetMat4(loc Uniform, m mgl32.Mat4) {
	p.values[loc] = m
	p.dev.log = append(p.dev.log, "mat4")
}

func (p *fakeProgram) SetMat3(loc Uniform, m mgl32.Mat3) {
	p.values[loc] = m
	p.dev.log = append(p.dev.log, "mat3")
}

func (p *fakeProgram) SetVec4(loc Uniform, v mgl32.Vec4) { p.values[loc] = v }
func (p *fakeProgram) SetVec3(loc Uniform, v mgl32.Vec3) { p.values[loc] = v }
func (p *fakeProgram) SetFloat(loc Uniform, f float32) { p.values[loc] = f }
func (p *fakeProgram) Delete() { p.deleted++ }

type fakeModel struct {
	dev     *fakeDevice
	path    string
	verts   int32
	deleted int
}

func (m *fakeModel) Bind() { m.dev.log = append(m.dev.log, "bind") }
func (m *fakeModel) Unbind() { m.dev.log = append(m.dev.log, "unbind") }
func (m *fakeModel) NumVerts() int32 { return m.verts }
func (m *fakeModel) Delete() { m.deleted++ }

var errFake = errors.New("fake failure")
