package model

import "github.com/go-gl/mathgl/mgl32"

// CubeName selects the built-in cube instead of a file.
const CubeName = "cube"

type cubeFace struct {
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3 // counter-clockwise seen from outside
}

var cubeFaces = [6]cubeFace{
	// Front
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
	// Back
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, -0.5, -0.5}}},
	// Top
	{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-0.5, 0.5, -0.5}, {-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}}},
	// Bottom
	{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	// Right
	{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {0.5, -0.5, 0.5}}},
	// Left
	{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
}

// Cube returns a unit cube centred on the origin, 36 vertices.
func Cube() *Geometry {
	g := &Geometry{Vertices: make([]float32, 0, 36*FloatsPerVertex)}
	for _, f := range cubeFaces {
		for _, i := range [6]int{0, 1, 2, 2, 3, 0} {
			g.add(f.corners[i], f.normal)
		}
	}
	return g
}

// Load returns the built-in cube for CubeName and parses path as OBJ
// otherwise.
func Load(path string) (*Geometry, error) {
	if path == CubeName {
		return Cube(), nil
	}
	return LoadOBJ(path)
}
