package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Mesh is a non-indexed triangle list with interleaved position (location
// 0) and normal (location 1) attributes.
type Mesh struct {
	vao      *VertexArrayObject
	vbo      *BufferObject
	numVerts int32
}

// NewMesh uploads vertices laid out as x y z nx ny nz.
func NewMesh(vertices []float32) *Mesh {
	const floatsPerVertex = 6
	const stride = floatsPerVertex * 4

	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)

	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, stride, 0)
	// Normal attribute (3 floats)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, stride, 3*4)

	vao.Unbind()
	vbo.Unbind()

	return &Mesh{
		vao:      vao,
		vbo:      vbo,
		numVerts: int32(len(vertices) / floatsPerVertex),
	}
}

// Bind makes the mesh's vertex state current.
func (m *Mesh) Bind() {
	m.vao.Bind()
}

// Unbind clears the current vertex array.
func (m *Mesh) Unbind() {
	m.vao.Unbind()
}

// NumVerts returns the vertex count for DrawArrays.
func (m *Mesh) NumVerts() int32 {
	return m.numVerts
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
}
