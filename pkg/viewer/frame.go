package viewer

import "github.com/go-gl/mathgl/mgl32"

// Frame holds the matrices uploaded for one draw.
type Frame struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
	ModelView  mgl32.Mat4
	Normal     mgl32.Mat3
	MVP        mgl32.Mat4
}

// ModelMatrix rotates about X by spinX then about Y by spinY (degrees) and
// writes pos straight into the translation column.
func ModelMatrix(spinX, spinY float32, pos mgl32.Vec3) mgl32.Mat4 {
	rotx := mgl32.HomogRotate3DX(mgl32.DegToRad(spinX))
	roty := mgl32.HomogRotate3DY(mgl32.DegToRad(spinY))
	m := rotx.Mul4(roty)
	m[12] = pos[0]
	m[13] = pos[1]
	m[14] = pos[2]
	return m
}

// NormalMatrix is the inverse transpose of the upper 3x3 of modelView.
func NormalMatrix(modelView mgl32.Mat4) mgl32.Mat3 {
	return modelView.Mat3().Inv().Transpose()
}

// ComposeFrame derives the per-frame matrices from the model transform and
// the camera.
func ComposeFrame(model mgl32.Mat4, cam *Camera) Frame {
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	mv := view.Mul4(model)
	return Frame{
		Model:      model,
		View:       view,
		Projection: proj,
		ModelView:  mv,
		Normal:     NormalMatrix(mv),
		MVP:        proj.Mul4(mv),
	}
}
