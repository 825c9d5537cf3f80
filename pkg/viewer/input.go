package viewer

import "github.com/go-gl/mathgl/mgl32"

// MouseButton identifies the button that changed state in a press or
// release event.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// Buttons is the set of buttons held while an event was generated.
type Buttons uint8

const (
	HeldLeft Buttons = 1 << iota
	HeldRight
	HeldMiddle
)

// Mask returns the held-set bit for b.
func (b MouseButton) Mask() Buttons {
	switch b {
	case ButtonLeft:
		return HeldLeft
	case ButtonRight:
		return HeldRight
	case ButtonMiddle:
		return HeldMiddle
	}
	return 0
}

// MouseEvent is a cursor event in window coordinates, origin top left.
type MouseEvent struct {
	X, Y    float32
	Button  MouseButton
	Buttons Buttons
}

// InteractionParams are the fixed input gains.
type InteractionParams struct {
	RotateFactor float32 // degrees per pixel
	Increment    float32 // translation units per pixel
	ZoomStep     float32 // translation units per wheel notch
}

// DefaultInteraction returns the stock gains.
func DefaultInteraction() InteractionParams {
	return InteractionParams{
		RotateFactor: 0.5,
		Increment:    0.01,
		ZoomStep:     0.1,
	}
}

// Interaction accumulates mouse input into an orientation and a position
// offset for the displayed mesh.
type Interaction struct {
	params InteractionParams

	SpinX, SpinY float32
	Position     mgl32.Vec3

	Rotating    bool
	Translating bool

	origX, origY       float32
	origXPos, origYPos float32
}

// NewInteraction returns a zeroed interaction state using params.
func NewInteraction(params InteractionParams) *Interaction {
	return &Interaction{params: params}
}

// Press enters rotate mode for the left button and translate mode for the
// right one. Other buttons are ignored.
func (in *Interaction) Press(e MouseEvent) {
	switch e.Button {
	case ButtonLeft:
		in.origX, in.origY = e.X, e.Y
		in.Rotating = true
	case ButtonRight:
		in.origXPos, in.origYPos = e.X, e.Y
		in.Translating = true
	}
}

// Move applies a drag. Rotation wins when both modes are on; each mode
// only reacts while its own button is the only one held.
func (in *Interaction) Move(e MouseEvent) {
	switch {
	case in.Rotating && e.Buttons == HeldLeft:
		dx := e.X - in.origX
		dy := e.Y - in.origY
		in.SpinX += in.params.RotateFactor * dy
		in.SpinY += in.params.RotateFactor * dx
		in.origX, in.origY = e.X, e.Y
	case in.Translating && e.Buttons == HeldRight:
		dx := e.X - in.origXPos
		dy := e.Y - in.origYPos
		in.origXPos, in.origYPos = e.X, e.Y
		in.Position[0] += in.params.Increment * dx
		// screen y grows downwards
		in.Position[1] -= in.params.Increment * dy
	}
}

// Release leaves the mode belonging to e.Button.
func (in *Interaction) Release(e MouseEvent) {
	if e.Button == ButtonLeft {
		in.Rotating = false
	}
	if e.Button == ButtonRight {
		in.Translating = false
	}
}

// Wheel moves the mesh one zoom step along Z in the direction of delta.
func (in *Interaction) Wheel(delta float32) {
	if delta > 0 {
		in.Position[2] += in.params.ZoomStep
	} else if delta < 0 {
		in.Position[2] -= in.params.ZoomStep
	}
}

// Reset clears orientation, offset and both modes.
func (in *Interaction) Reset() {
	*in = Interaction{params: in.params}
}
