// Package render hosts a viewer.Widget in a GLFW window and feeds it the
// window's lifecycle and input callbacks.
package render

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-meshview/internal/config"
	"github.com/leterax/go-meshview/internal/openglhelper"
	"github.com/leterax/go-meshview/pkg/viewer"
)

// Renderer owns the window and the widget drawn into it.
type Renderer struct {
	window *openglhelper.Window
	widget *viewer.Widget
	cfg    config.Config
	log    *slog.Logger
}

// NewRenderer opens the window, initializes the widget and wires the GLFW
// callbacks. It must run on the main, locked OS thread.
func NewRenderer(cfg config.Config, log *slog.Logger) (*Renderer, error) {
	window, err := openglhelper.NewWindow(openglhelper.WindowConfig{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Title:   cfg.WindowTitle(0),
		VSync:   cfg.Window.VSync,
		Samples: cfg.Window.Samples,
		GLMajor: cfg.Window.GLMajor,
		GLMinor: cfg.Window.GLMinor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	log.Info("OpenGL context created", "version", openglhelper.GLVersion())

	opts := cfg.ViewerOptions()
	opts.Logger = log
	// the widget tracks the drawable size, not the window size
	fbWidth, fbHeight := window.FramebufferSize()
	widget := viewer.NewWidget(NewDevice(log), fbWidth, fbHeight, opts)
	if err := widget.Initialize(); err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to initialize viewer: %w", err)
	}

	r := &Renderer{
		window: window,
		widget: widget,
		cfg:    cfg,
		log:    log,
	}

	gw := window.GLFWWindow()
	gw.SetKeyCallback(r.keyCallback)
	gw.SetCursorPosCallback(r.cursorPosCallback)
	gw.SetMouseButtonCallback(r.mouseButtonCallback)
	gw.SetScrollCallback(r.scrollCallback)
	gw.SetFramebufferSizeCallback(r.framebufferSizeCallback)

	return r, nil
}

// Run drives the event loop until the window is closed, then releases
// everything. Each turn of the loop is one redraw timer tick.
func (r *Renderer) Run() {
	defer r.Cleanup()

	frames := 0
	lastReport := glfw.GetTime()
	for !r.window.ShouldClose() {
		r.window.PollEvents()
		r.widget.Tick()
		r.window.SwapBuffers()

		frames++
		if now := glfw.GetTime(); now-lastReport >= 1 {
			fps := float64(frames) / (now - lastReport)
			r.window.SetTitle(r.cfg.WindowTitle(fps))
			r.log.Debug("frame rate", "fps", fps)
			frames = 0
			lastReport = now
		}
	}
}

// Cleanup releases the widget's GPU resources and then the window.
func (r *Renderer) Cleanup() {
	r.widget.Close()
	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != Press {
		return
	}
	switch key {
	case KeyEscape:
		r.window.SetShouldClose(true)
	case KeyReset:
		r.widget.Reset()
	}
}

func (r *Renderer) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	r.widget.MouseMove(viewer.MouseEvent{
		X:       float32(xpos),
		Y:       float32(ypos),
		Buttons: heldButtons(w),
	})
}

func (r *Renderer) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	x, y := w.GetCursorPos()
	e := viewer.MouseEvent{
		X:       float32(x),
		Y:       float32(y),
		Button:  viewerButton(button),
		Buttons: heldButtons(w),
	}
	switch action {
	case Press:
		r.widget.MousePress(e)
	case Release:
		r.widget.MouseRelease(e)
	}
}

func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.widget.Wheel(float32(yoffset))
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.widget.Resize(width, height)
}

func viewerButton(b glfw.MouseButton) viewer.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return viewer.ButtonLeft
	case glfw.MouseButtonRight:
		return viewer.ButtonRight
	case glfw.MouseButtonMiddle:
		return viewer.ButtonMiddle
	}
	return viewer.ButtonNone
}

func heldButtons(w *glfw.Window) viewer.Buttons {
	var held viewer.Buttons
	for _, b := range [...]glfw.MouseButton{glfw.MouseButtonLeft, glfw.MouseButtonRight, glfw.MouseButtonMiddle} {
		if w.GetMouseButton(b) == Press {
			held |= viewerButton(b).Mask()
		}
	}
	return held
}
