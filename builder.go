package glwindow

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type GLVersion struct {
	Major, Minor int
}

var glVersionRe = regexp.MustCompile(`^(\d+)\.(\d+)$`)

// ParseGLVersion parses a version in MAJOR.MINOR notation.
func ParseGLVersion(s string) (GLVersion, error) {
	m := glVersionRe.FindStringSubmatch(s)
	if m == nil {
		return GLVersion{}, fmt.Errorf("invalid OpenGL version: %q", s)
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	if major == 0 {
		return GLVersion{}, fmt.Errorf("invalid OpenGL version: %q", s)
	}
	return GLVersion{Major: major, Minor: minor}, nil
}

func (v GLVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// AtLeast reports whether v is the same or a later version than major.minor.
func (v GLVersion) AtLeast(major, minor int) bool {
	return v.Major > major || v.Major == major && v.Minor >= minor
}

// WindowBuilder describes the window to create.
type WindowBuilder struct {
	title         string
	width, height int
	resizable     bool
	visible       bool
}

func NewWindowBuilder() WindowBuilder {
	return WindowBuilder{
		width:     800,
		height:    600,
		resizable: true,
		visible:   true,
	}
}

func (wb WindowBuilder) WithTitle(title string) WindowBuilder {
	wb.title = title
	return wb
}

// WithSize sets the size of the window in screen coordinates. On high DPI
// displays the framebuffer may be larger.
func (wb WindowBuilder) WithSize(width, height int) WindowBuilder {
	wb.width, wb.height = width, height
	return wb
}

func (wb WindowBuilder) WithResizable(resizable bool) WindowBuilder {
	wb.resizable = resizable
	return wb
}

func (wb WindowBuilder) WithVisible(visible bool) WindowBuilder {
	wb.visible = visible
	return wb
}

// ContextBuilder describes the OpenGL context and default framebuffer to
// create alongside a window.
type ContextBuilder struct {
	version       GLVersion
	forwardCompat bool
	debug         bool
	pixelFormat   PixelFormat
	samples       uint8
	vsync         bool
}

// NewContextBuilder returns a builder for a forward compatible OpenGL 3.3 core
// context with a 24-bit color, 8-bit alpha, 24-bit depth and 8-bit stencil
// buffer.
func NewContextBuilder() ContextBuilder {
	return ContextBuilder{
		version:       GLVersion{Major: 3, Minor: 3},
		forwardCompat: true,
		pixelFormat: PixelFormat{
			ColorBits:   24,
			AlphaBits:   8,
			DepthBits:   24,
			StencilBits: 8,
		},
		vsync: true,
	}
}

// WithGLVersion sets the minimum context version. Versions from 3.2 onwards
// request the core profile.
func (cb ContextBuilder) WithGLVersion(version GLVersion) ContextBuilder {
	cb.version = version
	return cb
}

func (cb ContextBuilder) WithForwardCompatible(fc bool) ContextBuilder {
	cb.forwardCompat = fc
	return cb
}

// WithDebug requests a debug context, which is required for
// device.Device.DebugOutput on most drivers.
func (cb ContextBuilder) WithDebug(debug bool) ContextBuilder {
	cb.debug = debug
	return cb
}

func (cb ContextBuilder) WithDepthBuffer(bits uint8) ContextBuilder {
	cb.pixelFormat.DepthBits = bits
	return cb
}

func (cb ContextBuilder) WithStencilBuffer(bits uint8) ContextBuilder {
	cb.pixelFormat.StencilBits = bits
	return cb
}

// WithPixelFormat sets the number of color bits, excluding alpha, and alpha
// bits.
func (cb ContextBuilder) WithPixelFormat(colorBits, alphaBits uint8) ContextBuilder {
	cb.pixelFormat.ColorBits = colorBits
	cb.pixelFormat.AlphaBits = alphaBits
	return cb
}

func (cb ContextBuilder) WithSRGB(srgb bool) ContextBuilder {
	cb.pixelFormat.SRGB = srgb
	return cb
}

// WithPixelFormatOf applies all buffer sizes of a negotiated pixel format.
func (cb ContextBuilder) WithPixelFormatOf(pf PixelFormat) ContextBuilder {
	cb.pixelFormat = pf
	return cb
}

// WithMultisampling sets the number of samples of the default framebuffer, 0
// disables multisampling.
func (cb ContextBuilder) WithMultisampling(samples uint8) ContextBuilder {
	cb.samples = samples
	return cb
}

func (cb ContextBuilder) WithVSync(vsync bool) ContextBuilder {
	cb.vsync = vsync
	return cb
}

func (cb ContextBuilder) GLVersion() GLVersion { return cb.version }

func (cb ContextBuilder) PixelFormat() PixelFormat { return cb.pixelFormat }

func (cb ContextBuilder) Multisampling() uint8 { return cb.samples }

type windowHint struct {
	hint  glfw.Hint
	value int
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (wb WindowBuilder) hints() []windowHint {
	return []windowHint{
		{glfw.Resizable, glfwBool(wb.resizable)},
		{glfw.Visible, glfwBool(wb.visible)},
	}
}

func (cb ContextBuilder) hints() []windowHint {
	r, g, b := cb.pixelFormat.RGB()
	hints := []windowHint{
		{glfw.ContextVersionMajor, cb.version.Major},
		{glfw.ContextVersionMinor, cb.version.Minor},
		{glfw.RedBits, int(r)},
		{glfw.GreenBits, int(g)},
		{glfw.BlueBits, int(b)},
		{glfw.AlphaBits, int(cb.pixelFormat.AlphaBits)},
		{glfw.DepthBits, int(cb.pixelFormat.DepthBits)},
		{glfw.StencilBits, int(cb.pixelFormat.StencilBits)},
		{glfw.SRGBCapable, glfwBool(cb.pixelFormat.SRGB)},
		{glfw.Samples, int(cb.samples)},
		{glfw.OpenGLDebugContext, glfwBool(cb.debug)},
	}
	// Profiles do not exist before 3.2.
	if cb.version.AtLeast(3, 2) {
		hints = append(hints,
			windowHint{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
			windowHint{glfw.OpenGLForwardCompatible, glfwBool(cb.forwardCompat)},
		)
	}
	return hints
}

// BuildWindowed creates a window with an OpenGL context. The context is not
// current on any thread.
//
// A failure of the window system is returned as a CreationError.
func (cb ContextBuilder) BuildWindowed(wb WindowBuilder, el *EventLoop) (*NotCurrent, error) {
	glfw.DefaultWindowHints()
	for _, h := range append(wb.hints(), cb.hints()...) {
		glfw.WindowHint(h.hint, h.value)
	}
	window, err := glfw.CreateWindow(wb.width, wb.height, wb.title, nil, nil)
	if err != nil {
		return nil, CreationError{Err: err}
	}
	el.Track(window)

	swapInterval := 0
	if cb.vsync {
		swapInterval = 1
	}
	return &NotCurrent{window: window, swapInterval: swapInterval}, nil
}
