package viewer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestWidget(t *testing.T, d *fakeDevice) *Widget {
	t.Helper()
	w := NewWidget(d, 640, 480, DefaultOptions())
	if err := w.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return w
}

func TestWidgetInitialize(t *testing.T) {
	d := newFakeDevice()
	w := newTestWidget(t, d)

	if len(d.configured) != 1 || d.configured[0] != (mgl32.Vec4{0.5, 0.5, 0.5, 1}) {
		t.Errorf("unexpected clear colour configuration: %v", d.configured)
	}
	if !reflect.DeepEqual(d.viewports, []viewport{{0, 0, 640, 480}}) {
		t.Errorf("expected initial viewport 640x480, got %v", d.viewports)
	}
	if d.program.src.FragmentOutput != "fragColour" || d.program.src.VertexPath != "shaders/PhongVert.glsl" {
		t.Errorf("unexpected program source: %+v", d.program.src)
	}
	if !d.program.used {
		t.Error("program should be in use after Initialize")
	}
	if d.model.path != "models/sphere.obj" {
		t.Errorf("unexpected model path %q", d.model.path)
	}

	constants := map[string]any{
		"light.position":  mgl32.Vec4{1, 1, 1, 1},
		"light.intensity": mgl32.Vec3{0.8, 0.8, 0.8},
		"Kd":              mgl32.Vec3{0.5, 0.5, 0.5},
		"Ka":              mgl32.Vec3{0.5, 0.5, 0.5},
		"Ks":              mgl32.Vec3{1, 1, 1},
		"shininess":       float32(100),
	}
	for name, expected := range constants {
		if got := d.program.value(name); got != expected {
			t.Errorf("%s: expected %v, got %v", name, expected, got)
		}
	}

	cam := w.Camera()
	if cam == nil {
		t.Fatal("camera not created")
	}
	if cam.Position() != (mgl32.Vec3{0, 0, 5}) {
		t.Errorf("unexpected camera position %v", cam.Position())
	}

	if err := w.Initialize(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("expected ErrAlreadyInitialized, got %v", err)
	}
}

func TestWidgetInitializeErrors(t *testing.T) {
	t.Run("Program", func(t *testing.T) {
		d := newFakeDevice()
		d.programErr = errFake
		w := NewWidget(d, 10, 10, DefaultOptions())
		if err := w.Initialize(); !errors.Is(err, errFake) {
			t.Fatalf("expected wrapped program error, got %v", err)
		}
		w.Tick()
		if d.clears != 0 {
			t.Error("failed widget should not paint")
		}
	})
	t.Run("Model", func(t *testing.T) {
		d := newFakeDevice()
		d.modelErr = errFake
		w := NewWidget(d, 10, 10, DefaultOptions())
		if err := w.Initialize(); !errors.Is(err, errFake) {
			t.Fatalf("expected wrapped model error, got %v", err)
		}
		if d.program.deleted != 1 {
			t.Errorf("program should be released on model failure, deleted %d times", d.program.deleted)
		}
	})
}

func TestWidgetResize(t *testing.T) {
	testCases := map[string]struct {
		w, h int
	}{
		"Landscape": {1920, 1080},
		"Portrait":  {300, 900},
		"Square":    {512, 512},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			d := newFakeDevice()
			w := newTestWidget(t, d)
			d.viewports = nil

			w.Resize(tt.w, tt.h)

			if !reflect.DeepEqual(d.viewports, []viewport{{0, 0, tt.w, tt.h}}) {
				t.Errorf("expected viewport %dx%d, got %v", tt.w, tt.h, d.viewports)
			}
			if cw, ch := w.Camera().Shape(); cw != tt.w || ch != tt.h {
				t.Errorf("expected camera shape %dx%d, got %dx%d", tt.w, tt.h, cw, ch)
			}
		})
	}
}

func TestWidgetResizeBeforeInitialize(t *testing.T) {
	d := newFakeDevice()
	w := NewWidget(d, 10, 10, DefaultOptions())
	w.Resize(200, 100)
	if len(d.viewports) != 0 {
		t.Errorf("resize before the context exists should not touch the device, got %v", d.viewports)
	}
	if err := w.Initialize(); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(d.viewports, []viewport{{0, 0, 200, 100}}) {
		t.Errorf("expected pending size on Initialize, got %v", d.viewports)
	}
	if cw, ch := w.Camera().Shape(); cw != 200 || ch != 100 {
		t.Errorf("expected camera shape 200x100, got %dx%d", cw, ch)
	}
}

func TestWidgetPaint(t *testing.T) {
	d := newFakeDevice()
	w := newTestWidget(t, d)
	d.log = nil

	w.MousePress(press(ButtonLeft, 0, 0))
	w.MouseMove(drag(HeldLeft, 20, 40))
	w.MouseRelease(MouseEvent{Button: ButtonLeft})
	w.Wheel(-1)
	w.Tick()

	expectedLog := []string{"clear", "mat4", "mat4", "mat3", "mat4", "bind", "draw", "unbind"}
	if !reflect.DeepEqual(d.log, expectedLog) {
		t.Errorf("expected call order %v, got %v", expectedLog, d.log)
	}
	if !reflect.DeepEqual(d.draws, [][2]int32{{0, 36}}) {
		t.Errorf("expected one draw of 36 vertices, got %v", d.draws)
	}

	f := w.Frame()
	expectedModel := ModelMatrix(20, 10, mgl32.Vec3{0, 0, -0.1})
	if !approxMat4(f.Model, expectedModel) {
		t.Errorf("unexpected model matrix %v", f.Model)
	}
	if got := d.program.value("modelViewProjectionMatrix"); got != f.MVP {
		t.Errorf("uploaded mvp %v does not match frame %v", got, f.MVP)
	}
	if got := d.program.value("normalMatrix"); got != f.Normal {
		t.Errorf("uploaded normal matrix %v does not match frame %v", got, f.Normal)
	}
	if got := d.program.value("projectionMatrix"); got != f.Projection {
		t.Error("uploaded projection does not match frame")
	}
}

func TestWidgetTickBeforeInitialize(t *testing.T) {
	d := newFakeDevice()
	w := NewWidget(d, 10, 10, DefaultOptions())
	w.Tick()
	w.Paint()
	if d.clears != 0 || len(d.draws) != 0 {
		t.Error("nothing should be drawn before Initialize")
	}
}

func TestWidgetClose(t *testing.T) {
	d := newFakeDevice()
	w := newTestWidget(t, d)

	w.Close()
	w.Close()
	if d.program.deleted != 1 || d.model.deleted != 1 {
		t.Errorf("expected one release each, got program=%d model=%d", d.program.deleted, d.model.deleted)
	}

	w.Tick()
	if d.clears != 0 {
		t.Error("closed widget should not paint")
	}
	if err := w.Initialize(); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}

	w.Resize(100, 100)
	w.Paint()
	w.MousePress(press(ButtonLeft, 0, 0))
	w.MouseMove(drag(HeldLeft, 10, 10))
	if d.clears != 0 || len(d.draws) != 0 {
		t.Error("closed widget should not draw")
	}
}

func TestWidgetReset(t *testing.T) {
	d := newFakeDevice()
	w := newTestWidget(t, d)
	w.Wheel(1)
	w.Reset()
	w.Paint()
	if !approxMat4(w.Frame().Model, mgl32.Ident4()) {
		t.Errorf("expected identity model after reset, got %v", w.Frame().Model)
	}
}
