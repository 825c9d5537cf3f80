// Package model loads triangle meshes into flat, non-indexed vertex data
// ready to be uploaded as a single vertex buffer.
package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/udhos/gwob"
)

// FloatsPerVertex is the interleaved layout: position (3), normal (3).
const FloatsPerVertex = 6

// ErrNoGeometry is returned when a source contains no faces.
var ErrNoGeometry = errors.New("model: no triangles")

// Geometry is a triangle list. Every three vertices form one triangle.
type Geometry struct {
	Vertices []float32
	Min, Max mgl32.Vec3
}

// NumVerts returns the number of vertices in the list.
func (g *Geometry) NumVerts() int32 {
	return int32(len(g.Vertices) / FloatsPerVertex)
}

// Position returns the position of vertex i.
func (g *Geometry) Position(i int) mgl32.Vec3 {
	o := i * FloatsPerVertex
	return mgl32.Vec3{g.Vertices[o], g.Vertices[o+1], g.Vertices[o+2]}
}

// Normal returns the normal of vertex i.
func (g *Geometry) Normal(i int) mgl32.Vec3 {
	o := i*FloatsPerVertex + 3
	return mgl32.Vec3{g.Vertices[o], g.Vertices[o+1], g.Vertices[o+2]}
}

func (g *Geometry) add(p, n mgl32.Vec3) {
	if len(g.Vertices) == 0 {
		g.Min, g.Max = p, p
	}
	for i := 0; i < 3; i++ {
		g.Min[i] = min(g.Min[i], p[i])
		g.Max[i] = max(g.Max[i], p[i])
	}
	g.Vertices = append(g.Vertices, p[0], p[1], p[2], n[0], n[1], n[2])
}

func parserOptions() *gwob.ObjParserOptions {
	return &gwob.ObjParserOptions{
		Logger: func(msg string) { slog.Debug("obj parser", "msg", msg) },
	}
}

// LoadOBJ reads a Wavefront OBJ file.
func LoadOBJ(path string) (*Geometry, error) {
	o, err := gwob.NewObjFromFile(path, parserOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to load model file: %w", err)
	}
	g, err := fromObj(o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ParseOBJ reads an OBJ document from r. Polygons are triangulated by the
// parser; texture coordinates, groups and materials are ignored.
func ParseOBJ(r io.Reader) (*Geometry, error) {
	o, err := gwob.NewObjFromReader("obj", bufio.NewReader(r), parserOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to parse OBJ: %w", err)
	}
	return fromObj(o)
}

// fromObj expands the indexed triangles of o into a flat list. Vertices
// without a usable normal get the flat normal of their triangle.
func fromObj(o *gwob.Obj) (*Geometry, error) {
	if len(o.Indices) < 3 || o.StrideSize == 0 {
		return nil, ErrNoGeometry
	}
	// strides are in bytes
	stride := o.StrideSize / 4
	posOff := o.StrideOffsetPosition / 4
	normOff := o.StrideOffsetNormal / 4

	vec := func(index, offset int) (mgl32.Vec3, error) {
		base := index*stride + offset
		if index < 0 || base+3 > len(o.Coord) {
			return mgl32.Vec3{}, fmt.Errorf("vertex index %d out of range", index)
		}
		return mgl32.Vec3{o.Coord[base], o.Coord[base+1], o.Coord[base+2]}, nil
	}

	tris := len(o.Indices) / 3
	g := &Geometry{Vertices: make([]float32, 0, tris*3*FloatsPerVertex)}
	for t := 0; t < tris; t++ {
		var p, n [3]mgl32.Vec3
		for k := 0; k < 3; k++ {
			idx := o.Indices[t*3+k]
			var err error
			if p[k], err = vec(idx, posOff); err != nil {
				return nil, err
			}
			if o.NormCoordFound {
				if n[k], err = vec(idx, normOff); err != nil {
					return nil, err
				}
			}
		}
		flat := p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
		if flat.Len() > 0 {
			flat = flat.Normalize()
		}
		for k := 0; k < 3; k++ {
			if n[k].Len() == 0 {
				n[k] = flat
			}
			g.add(p[k], n[k])
		}
	}
	return g, nil
}
