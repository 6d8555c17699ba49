package glwindow

import (
	"errors"
	"runtime"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/polyfloyd/glwindow/format"
)

func TestCreationError(t *testing.T) {
	reason := errors.New("pixel format unavailable")
	var err error = CreationError{Err: reason}

	if !errors.Is(err, reason) {
		t.Fatalf("CreationError should unwrap to its reason")
	}
	var cerr CreationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a CreationError")
	}
	if err.Error() != "error creating OpenGL context: pixel format unavailable" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCreationErrorWithoutReason(t *testing.T) {
	var err error = CreationError{}
	if err.Error() != "error creating OpenGL context" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if errors.Unwrap(err) != nil {
		t.Fatalf("expected no reason")
	}
}

func TestMakeCurrentConsumes(t *testing.T) {
	nc := &NotCurrent{}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic when activating a consumed context")
		}
	}()
	nc.MakeCurrent()
}

func TestEventQueue(t *testing.T) {
	el := &EventLoop{}
	el.push(Resized{Width: 10, Height: 20})
	el.push(CloseRequested{})

	events := el.drain()
	if len(events) != 2 {
		t.Fatalf("unexpected number of events: %d", len(events))
	}
	if r, ok := events[0].(Resized); !ok || r.Width != 10 || r.Height != 20 {
		t.Fatalf("unexpected first event: %#v", events[0])
	}
	if _, ok := events[1].(CloseRequested); !ok {
		t.Fatalf("unexpected second event: %#v", events[1])
	}
	if len(el.drain()) != 0 {
		t.Fatalf("the queue should be empty after draining")
	}
}

func TestInit(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	el, err := NewEventLoop()
	if err != nil {
		t.Skip(err)
	}
	defer el.Terminate()

	wb := NewWindowBuilder().WithTitle("glwindow test").WithSize(320, 240).WithVisible(false)
	setup, err := Init[format.Rgba8, format.DepthStencil](wb, NewContextBuilder(), el)
	var cerr CreationError
	if errors.As(err, &cerr) {
		t.Skip(err)
	} else if err != nil {
		t.Fatal(err)
	}
	defer setup.Context.Destroy()
	defer setup.Device.Close()

	w, h := setup.Context.FramebufferSize()
	exp := SurfaceDimensions(setup.Context)
	if exp.Width != uint32(w) || exp.Height != uint32(h) || exp.Layers != 1 {
		t.Fatalf("unexpected surface dimensions: %v", exp)
	}
	if setup.Color.Dimensions() != exp || setup.DepthStencil.Dimensions() != exp {
		t.Fatalf("unexpected target dimensions: exp %v, got %v and %v", exp, setup.Color.Dimensions(), setup.DepthStencil.Dimensions())
	}
	if setup.UpdateViews() {
		t.Fatalf("views should not change without a resize")
	}

	setup.Context.Window().SetSize(400, 300)
	el.Poll()
	if w2, h2 := setup.Context.FramebufferSize(); w2 != w || h2 != h {
		if !setup.UpdateViews() {
			t.Fatalf("views should change after a resize")
		}
	}
}

func TestInitExisting(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	el, err := NewEventLoop()
	if err != nil {
		t.Skip(err)
	}
	defer el.Terminate()

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(64, 64, "glwindow test", nil, nil)
	if err != nil {
		t.Skip(err)
	}
	el.Track(window)

	setup := InitExisting[format.Rgba8, format.DepthStencil](WrapNotCurrent(window))
	defer setup.Context.Destroy()
	defer setup.Device.Close()
	if setup.Color.Dimensions() != setup.DepthStencil.Dimensions() {
		t.Fatalf("main targets should share dimensions")
	}
}
