package glwindow

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// CreationError is returned when the window system is unable to create a
// window or context. Err is the reason reported by the window system.
type CreationError struct {
	Err error
}

func (err CreationError) Error() string {
	if err.Err == nil {
		return "error creating OpenGL context"
	}
	return "error creating OpenGL context: " + err.Err.Error()
}

func (err CreationError) Unwrap() error {
	return err.Err
}

type Event interface{}

// Resized is emitted when the framebuffer of a window changes size. The size
// is in pixels.
type Resized struct {
	Width, Height int
}

// CloseRequested is emitted when the user attempts to close a window.
type CloseRequested struct{}

// EventLoop owns the window system. It must be created, used and terminated
// on the main thread, which should be locked with runtime.LockOSThread.
type EventLoop struct {
	queue []Event
}

func NewEventLoop() (*EventLoop, error) {
	if err := glfw.Init(); err != nil {
		return nil, CreationError{Err: err}
	}
	return &EventLoop{}, nil
}

// Track routes the events of a window to the event loop. Windows built by
// BuildWindowed are tracked already.
func (el *EventLoop) Track(window *glfw.Window) {
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		el.push(Resized{Width: width, Height: height})
	})
	window.SetCloseCallback(func(_ *glfw.Window) {
		el.push(CloseRequested{})
	})
}

func (el *EventLoop) push(ev Event) {
	el.queue = append(el.queue, ev)
}

func (el *EventLoop) drain() []Event {
	events := el.queue
	el.queue = nil
	return events
}

// Poll processes pending window system events without blocking and returns
// the events that were emitted since the last call.
func (el *EventLoop) Poll() []Event {
	glfw.PollEvents()
	return el.drain()
}

// Wait blocks until at least one window system event is available and
// returns the emitted events.
func (el *EventLoop) Wait() []Event {
	glfw.WaitEvents()
	return el.drain()
}

// Terminate destroys all remaining windows and shuts down the window system.
func (el *EventLoop) Terminate() {
	glfw.Terminate()
}

// NotCurrent is a window with a context that has not yet been made current.
type NotCurrent struct {
	window       *glfw.Window
	swapInterval int
}

// WrapNotCurrent wraps a window created by the caller. The window must have
// been created with an OpenGL context compatible with the formats of the
// targets that will be created for it, and its context must not be current.
func WrapNotCurrent(window *glfw.Window) *NotCurrent {
	return &NotCurrent{window: window, swapInterval: -1}
}

// MakeCurrent makes the context current on the calling thread and returns
// the handle to the current context. The NotCurrent can not be used
// afterwards.
//
// The calling thread must be locked to the goroutine and must not have a
// different context current.
func (nc *NotCurrent) MakeCurrent() *Current {
	if nc.window == nil {
		panic("glwindow: context has already been made current")
	}
	window := nc.window
	nc.window = nil

	window.MakeContextCurrent()
	if nc.swapInterval >= 0 {
		glfw.SwapInterval(nc.swapInterval)
	}
	return &Current{window: window}
}

// Current is a window with a context that is current on the thread that
// called MakeCurrent. All methods must be called on that thread.
type Current struct {
	window  *glfw.Window
	samples int
}

func (c *Current) Window() *glfw.Window {
	return c.window
}

// FramebufferSize returns the size of the default framebuffer in pixels,
// which accounts for the scale factor of the display.
func (c *Current) FramebufferSize() (width, height int) {
	return c.window.GetFramebufferSize()
}

// Samples returns the multisample count of the default framebuffer, 0 if it
// is not multisampled.
func (c *Current) Samples() int {
	return c.samples
}

// GetProcAddress resolves an OpenGL entry point of the context.
func (c *Current) GetProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (c *Current) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Current) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (c *Current) ShouldClose() bool {
	return c.window.ShouldClose()
}

// Destroy destroys the window and its context. Devices, factories and views
// created from the context must not be used afterwards.
func (c *Current) Destroy() {
	glfw.DetachCurrentContext()
	c.window.Destroy()
}
