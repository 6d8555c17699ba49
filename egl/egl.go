package egl

// #cgo LDFLAGS: -lEGL
// #include <stdlib.h>
// #include <EGL/egl.h>
import "C"
import (
	"fmt"
	"strings"
	"unsafe"
)

var DefaultDisplay = NativeDisplayType(nil) // C.EGL_DEFAULT_DISPLAY

type NativeDisplayType C.EGLNativeDisplayType

type API C.EGLenum

const (
	OpenGLAPI   = API(C.EGL_OPENGL_API)
	OpenGLESAPI = API(C.EGL_OPENGL_ES_API)
)

// ConfigAttribs lists the minimum buffer sizes a config must provide.
type ConfigAttribs struct {
	RedBits, GreenBits, BlueBits, AlphaBits uint8
	DepthBits, StencilBits                  uint8
	Samples                                 uint8
}

func (ca ConfigAttribs) list() []C.EGLint {
	attribs := []C.EGLint{
		C.EGL_SURFACE_TYPE, C.EGL_PBUFFER_BIT,
		C.EGL_RENDERABLE_TYPE, C.EGL_OPENGL_BIT,
		C.EGL_RED_SIZE, C.EGLint(ca.RedBits),
		C.EGL_GREEN_SIZE, C.EGLint(ca.GreenBits),
		C.EGL_BLUE_SIZE, C.EGLint(ca.BlueBits),
		C.EGL_ALPHA_SIZE, C.EGLint(ca.AlphaBits),
		C.EGL_DEPTH_SIZE, C.EGLint(ca.DepthBits),
		C.EGL_STENCIL_SIZE, C.EGLint(ca.StencilBits),
	}
	if ca.Samples > 0 {
		attribs = append(attribs,
			C.EGL_SAMPLE_BUFFERS, 1,
			C.EGL_SAMPLES, C.EGLint(ca.Samples),
		)
	}
	return append(attribs, C.EGL_NONE)
}

type Display struct {
	dpy C.EGLDisplay
}

type Config struct {
	display Display
	conf    C.EGLConfig
}

type Surface struct {
	display Display
	surf    C.EGLSurface
}

type Context struct {
	Display Display
	Surface Surface

	context C.EGLContext
}

func GetDisplay(dtype NativeDisplayType) (Display, error) {
	dpy := C.eglGetDisplay(C.EGLNativeDisplayType(dtype))
	if dpy == nil {
		return Display{}, fmt.Errorf("no EGL display available")
	}
	if C.eglInitialize(dpy, nil, nil) == C.EGL_FALSE {
		return Display{}, fmt.Errorf("error initializing display: %v", getError())
	}
	return Display{dpy: dpy}, nil
}

// ClientAPIs retrieves a list of supported client APIs.
func (d Display) ClientAPIs() []string {
	str := C.GoString(C.eglQueryString(d.dpy, C.EGL_CLIENT_APIS))
	return strings.Split(strings.Trim(str, " "), " ")
}

// Vendor retrieves the EGL vendor string.
func (d Display) Vendor() string {
	return C.GoString(C.eglQueryString(d.dpy, C.EGL_VENDOR))
}

// Version retrieves the EGL version string.
func (d Display) Version() string {
	return C.GoString(C.eglQueryString(d.dpy, C.EGL_VERSION))
}

func (d Display) Destroy() {
	C.eglMakeCurrent(d.dpy, nil, nil, nil)
	C.eglTerminate(d.dpy)
}

// ChooseConfig picks the best frame buffer configuration that satisfies the
// attributes.
func (d Display) ChooseConfig(attribs ConfigAttribs) (Config, error) {
	list := attribs.list()
	var numConfigs C.EGLint
	var eglCfg C.EGLConfig
	if C.eglChooseConfig(d.dpy, &list[0], &eglCfg, 1, &numConfigs) == C.EGL_FALSE {
		return Config{}, fmt.Errorf("error choosing config: %v", getError())
	}
	if numConfigs == 0 {
		return Config{}, fmt.Errorf("no EGL config matches %+v", attribs)
	}
	return Config{display: d, conf: eglCfg}, nil
}

func (c Config) attrib(attr C.EGLint) int {
	var value C.EGLint
	C.eglGetConfigAttrib(c.display.dpy, c.conf, attr, &value)
	return int(value)
}

// Samples returns the number of multisample buffers samples of the config.
func (c Config) Samples() int {
	return c.attrib(C.EGL_SAMPLES)
}

func (d Display) CreatePbufferSurface(config Config, width, height uint) (Surface, error) {
	pbufferAttribs := []C.EGLint{
		C.EGL_WIDTH, C.EGLint(width),
		C.EGL_HEIGHT, C.EGLint(height),
		C.EGL_NONE,
	}
	surf := C.eglCreatePbufferSurface(d.dpy, config.conf, &pbufferAttribs[0])
	if surf == nil {
		return Surface{}, fmt.Errorf("error creating pbuffer surface: %v", getError())
	}
	return Surface{display: d, surf: surf}, nil
}

// Size queries the current size of the surface in pixels.
func (s Surface) Size() (width, height int) {
	var w, h C.EGLint
	C.eglQuerySurface(s.display.dpy, s.surf, C.EGL_WIDTH, &w)
	C.eglQuerySurface(s.display.dpy, s.surf, C.EGL_HEIGHT, &h)
	return int(w), int(h)
}

func (d Display) BindAPI(api API) error {
	if C.eglBindAPI(C.EGLenum(api)) == C.EGL_FALSE {
		return fmt.Errorf("error binding API: %v", getError())
	}
	return nil
}

// CreateContext creates a core profile context of at least the specified
// version, rendering to the surface.
func (d Display) CreateContext(config Config, surface Surface, major, minor int) (Context, error) {
	attribs := []C.EGLint{
		C.EGL_CONTEXT_MAJOR_VERSION, C.EGLint(major),
		C.EGL_CONTEXT_MINOR_VERSION, C.EGLint(minor),
		C.EGL_CONTEXT_OPENGL_PROFILE_MASK, C.EGL_CONTEXT_OPENGL_CORE_PROFILE_BIT,
		C.EGL_NONE,
	}
	context := C.eglCreateContext(d.dpy, config.conf, nil, &attribs[0])
	if context == nil {
		return Context{}, fmt.Errorf("error creating context: %v", getError())
	}
	return Context{
		Display: d,
		Surface: surface,
		context: context,
	}, nil
}

func (cx Context) MakeCurrent() error {
	if C.eglMakeCurrent(cx.Display.dpy, cx.Surface.surf, cx.Surface.surf, cx.context) == C.EGL_FALSE {
		return fmt.Errorf("error making context current: %v", getError())
	}
	return nil
}

func (cx Context) Destroy() {
	C.eglDestroyContext(cx.Display.dpy, cx.context)
	C.eglDestroySurface(cx.Display.dpy, cx.Surface.surf)
}

// GetProcAddress resolves an OpenGL entry point.
func GetProcAddress(name string) unsafe.Pointer {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return unsafe.Pointer(C.eglGetProcAddress(cname))
}

func getError() error {
	switch code := C.eglGetError(); code {
	case C.EGL_NOT_INITIALIZED:
		return fmt.Errorf("EGL is not initialized, or could not be initialized, for the specified EGL display connection")
	case C.EGL_BAD_ACCESS:
		return fmt.Errorf("EGL cannot access a requested resource (for example a context is bound in another thread)")
	case C.EGL_BAD_ALLOC:
		return fmt.Errorf("EGL failed to allocate resources for the requested operation")
	case C.EGL_BAD_ATTRIBUTE:
		return fmt.Errorf("An unrecognized attribute or attribute value was passed in the attribute list")
	case C.EGL_BAD_CONTEXT:
		return fmt.Errorf("An EGLContext argument does not name a valid EGL rendering context")
	case C.EGL_BAD_CONFIG:
		return fmt.Errorf("An EGLConfig argument does not name a valid EGL frame buffer configuration")
	case C.EGL_BAD_CURRENT_SURFACE:
		return fmt.Errorf("The current surface of the calling thread is a window, pixel buffer or pixmap that is no longer valid")
	case C.EGL_BAD_DISPLAY:
		return fmt.Errorf("An EGLDisplay argument does not name a valid EGL display connection")
	case C.EGL_BAD_SURFACE:
		return fmt.Errorf("An EGLSurface argument does not name a valid surface (window, pixel buffer or pixmap) configured for GL rendering")
	case C.EGL_BAD_MATCH:
		return fmt.Errorf("Arguments are inconsistent (for example, a valid context requires buffers not supplied by a valid surface)")
	case C.EGL_BAD_PARAMETER:
		return fmt.Errorf("One or more argument values are invalid")
	case C.EGL_BAD_NATIVE_PIXMAP:
		return fmt.Errorf("A NativePixmapType argument does not refer to a valid native pixmap")
	case C.EGL_BAD_NATIVE_WINDOW:
		return fmt.Errorf("A NativeWindowType argument does not refer to a valid native window")
	case C.EGL_CONTEXT_LOST:
		return fmt.Errorf("A power management event has occurred. The application must destroy all contexts and reinitialise OpenGL ES state and objects to continue rendering")
	case C.EGL_SUCCESS:
		return nil
	default:
		return fmt.Errorf("unknown EGL error: %v", code)
	}
}
