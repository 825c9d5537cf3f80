package viewer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// approxEqual compares component-wise with an absolute tolerance. mgl32's
// threshold helpers are relative and reject tiny errors around zero.
func approxEqual(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) >= tolerance {
			return false
		}
	}
	return true
}

func approxFloat(a, b float32) bool { return approxEqual([]float32{a}, []float32{b}) }

func approxVec3(a, b mgl32.Vec3) bool { return approxEqual(a[:], b[:]) }

func approxVec4(a, b mgl32.Vec4) bool { return approxEqual(a[:], b[:]) }

func approxMat3(a, b mgl32.Mat3) bool { return approxEqual(a[:], b[:]) }

func approxMat4(a, b mgl32.Mat4) bool { return approxEqual(a[:], b[:]) }

func TestModelMatrix(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		m := ModelMatrix(0, 0, mgl32.Vec3{})
		if !approxMat4(m, mgl32.Ident4()) {
			t.Errorf("expected identity, got %v", m)
		}
	})
	t.Run("TranslationColumn", func(t *testing.T) {
		pos := mgl32.Vec3{1, -2, 3}
		m := ModelMatrix(30, 60, pos)
		if got := m.Col(3); !approxVec4(got, pos.Vec4(1)) {
			t.Errorf("expected translation %v, got %v", pos, got)
		}
	})
	t.Run("RotationOrder", func(t *testing.T) {
		m := ModelMatrix(90, 90, mgl32.Vec3{})
		// Y rotation is applied to the vertex first: +X -> -Z, then X rotation: -Z -> +Y
		got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3()
		if !approxVec3(got, mgl32.Vec3{0, 1, 0}) {
			t.Errorf("expected +Y, got %v", got)
		}
	})
}

func TestNormalMatrix(t *testing.T) {
	t.Run("Rotation", func(t *testing.T) {
		mv := mgl32.HomogRotate3DZ(mgl32.DegToRad(40))
		n := NormalMatrix(mv)
		if !approxMat3(n, mv.Mat3()) {
			t.Errorf("normal matrix of a rotation should equal the rotation, got %v", n)
		}
	})
	t.Run("NonUniformScale", func(t *testing.T) {
		mv := mgl32.Scale3D(2, 4, 1).Mul4(mgl32.Translate3D(5, 5, 5))
		n := NormalMatrix(mv)
		expected := mgl32.Diag3(mgl32.Vec3{0.5, 0.25, 1})
		if !approxMat3(n, expected) {
			t.Errorf("expected %v, got %v", expected, n)
		}
	})
}

func TestComposeFrame(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 5}, 800, 600)
	model := ModelMatrix(10, 20, mgl32.Vec3{0.1, 0.2, 0.3})
	f := ComposeFrame(model, cam)

	if !approxMat4(f.ModelView, cam.ViewMatrix().Mul4(model)) {
		t.Error("model-view should be view * model")
	}
	if !approxMat4(f.MVP, cam.ProjectionMatrix().Mul4(f.ModelView)) {
		t.Error("mvp should be projection * model-view")
	}
	if !approxMat3(f.Normal, f.ModelView.Mat3().Inv().Transpose()) {
		t.Error("normal should be the inverse transpose of model-view")
	}
}

func TestCamera(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 5}, 800, 600)

	// the origin sits straight ahead, 5 units down -Z in eye space
	eye := cam.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !approxVec4(eye, mgl32.Vec4{0, 0, -5, 1}) {
		t.Errorf("expected origin at (0,0,-5), got %v", eye)
	}

	cam.SetShape(1024, 256)
	if w, h := cam.Shape(); w != 1024 || h != 256 {
		t.Errorf("expected shape 1024x256, got %dx%d", w, h)
	}
	expected := mgl32.Perspective(mgl32.DegToRad(DefaultFOV), 4, nearPlane, farPlane)
	if !approxMat4(cam.ProjectionMatrix(), expected) {
		t.Errorf("projection not updated for new aspect: %v", cam.ProjectionMatrix())
	}

	cam.SetShape(100, 0)
	for _, v := range cam.ProjectionMatrix() {
		if math.IsNaN(float64(v)) {
			t.Fatal("zero height produced NaN projection")
		}
	}
}
