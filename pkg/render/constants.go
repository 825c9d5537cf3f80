package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key constants for keyboard input
const (
	KeyEscape = glfw.KeyEscape
	KeyReset  = glfw.KeyR
)

// Action constants for key and button states
const (
	Press   = glfw.Press
	Release = glfw.Release
)
