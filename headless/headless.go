// Package headless creates OpenGL contexts that render to an offscreen EGL
// pbuffer instead of a window.
package headless

import (
	"fmt"
	"strings"

	"github.com/polyfloyd/glwindow"
	"github.com/polyfloyd/glwindow/device"
	"github.com/polyfloyd/glwindow/egl"
	"github.com/polyfloyd/glwindow/format"
)

// Context is a current headless context. It implements glwindow.Surface.
type Context struct {
	display egl.Display
	context egl.Context
	samples int
}

func (c *Context) FramebufferSize() (width, height int) {
	return c.context.Surface.Size()
}

func (c *Context) Samples() int {
	return c.samples
}

// String describes the EGL implementation backing the context.
func (c *Context) String() string {
	return fmt.Sprintf("EGL %s (%s)", c.display.Version(), c.display.Vendor())
}

// Destroy releases the context and its display connection.
func (c *Context) Destroy() {
	c.context.Destroy()
	c.display.Destroy()
}

type RawSetup struct {
	Context      *Context
	Device       *device.Device
	Factory      *device.Factory
	Color        device.RawRenderTargetView
	DepthStencil device.RawDepthStencilView

	colorFormat, depthFormat format.Format
}

// UpdateViews replaces the main target views if the pbuffer's size differs
// from theirs and reports whether it did so. A pbuffer keeps the size it was
// created with, so this only reports a change for views that were replaced
// by the caller.
func (s *RawSetup) UpdateViews() bool {
	cv, dv, ok := glwindow.UpdateViewsRaw(s.Context, s.Color.Dimensions(), s.colorFormat, s.depthFormat)
	if ok {
		s.Color, s.DepthStencil = cv, dv
	}
	return ok
}

type Setup[Cf format.RenderFormat, Df format.DepthFormat] struct {
	Context      *Context
	Device       *device.Device
	Factory      *device.Factory
	Color        device.RenderTargetView[Cf]
	DepthStencil device.DepthStencilView[Df]
}

// UpdateViews is RawSetup.UpdateViews for typed views.
func (s *Setup[Cf, Df]) UpdateViews() bool {
	return glwindow.UpdateViews(s.Context, &s.Color, &s.DepthStencil)
}

// InitRaw creates a headless context of the specified size with buffers
// matching the formats, makes it current on the calling thread and creates
// the device, factory and main targets.
//
// The version and multisampling of the context are taken from cb. EGL
// pbuffers have no sRGB toggle, so the sRGB flag of the color format has no
// effect. Failures are returned as a glwindow.CreationError.
func InitRaw(width, height uint, cb glwindow.ContextBuilder, color, depthStencil format.Format) (*RawSetup, error) {
	ctx, err := create(width, height, cb, glwindow.Negotiate(color, depthStencil))
	if err != nil {
		return nil, glwindow.CreationError{Err: err}
	}

	dev, factory := device.Create(egl.GetProcAddress)
	cv, dv := glwindow.NewViewsRaw(ctx, color, depthStencil)
	return &RawSetup{
		Context:      ctx,
		Device:       dev,
		Factory:      factory,
		Color:        cv,
		DepthStencil: dv,
		colorFormat:  color,
		depthFormat:  depthStencil,
	}, nil
}

// Init is InitRaw with the formats given as type parameters.
func Init[Cf format.RenderFormat, Df format.DepthFormat](width, height uint, cb glwindow.ContextBuilder) (*Setup[Cf, Df], error) {
	raw, err := InitRaw(width, height, cb, format.Of[Cf](), format.Of[Df]())
	if err != nil {
		return nil, err
	}
	return &Setup[Cf, Df]{
		Context:      raw.Context,
		Device:       raw.Device,
		Factory:      raw.Factory,
		Color:        device.NewRenderTargetView[Cf](raw.Color),
		DepthStencil: device.NewDepthStencilView[Df](raw.DepthStencil),
	}, nil
}

func create(width, height uint, cb glwindow.ContextBuilder, pf glwindow.PixelFormat) (*Context, error) {
	display, err := egl.GetDisplay(egl.DefaultDisplay)
	if err != nil {
		return nil, err
	}
	fail := func(err error) (*Context, error) {
		display.Destroy()
		return nil, err
	}

	if apis := display.ClientAPIs(); !hasAPI(apis, "OpenGL") {
		return fail(fmt.Errorf("EGL display does not support OpenGL, only %s", strings.Join(apis, ", ")))
	}
	if err := display.BindAPI(egl.OpenGLAPI); err != nil {
		return fail(err)
	}
	r, g, b := pf.RGB()
	config, err := display.ChooseConfig(egl.ConfigAttribs{
		RedBits:     r,
		GreenBits:   g,
		BlueBits:    b,
		AlphaBits:   pf.AlphaBits,
		DepthBits:   pf.DepthBits,
		StencilBits: pf.StencilBits,
		Samples:     cb.Multisampling(),
	})
	if err != nil {
		return fail(err)
	}
	surface, err := display.CreatePbufferSurface(config, width, height)
	if err != nil {
		return fail(err)
	}
	version := cb.GLVersion()
	context, err := display.CreateContext(config, surface, version.Major, version.Minor)
	if err != nil {
		return fail(err)
	}
	if err := context.MakeCurrent(); err != nil {
		context.Destroy()
		return fail(err)
	}
	return &Context{
		display: display,
		context: context,
		samples: config.Samples(),
	}, nil
}

func hasAPI(apis []string, name string) bool {
	for _, api := range apis {
		if api == name {
			return true
		}
	}
	return false
}
