package glwindow

import (
	"github.com/polyfloyd/glwindow/device"
	"github.com/polyfloyd/glwindow/format"
)

// RawSetup is everything needed to start rendering to a window.
type RawSetup struct {
	Context      *Current
	Device       *device.Device
	Factory      *device.Factory
	Color        device.RawRenderTargetView
	DepthStencil device.RawDepthStencilView

	colorFormat, depthFormat format.Format
}

// UpdateViews replaces the main target views if the window has been resized
// and reports whether it did so.
func (s *RawSetup) UpdateViews() bool {
	cv, dv, ok := UpdateViewsRaw(s.Context, s.Color.Dimensions(), s.colorFormat, s.depthFormat)
	if ok {
		s.Color, s.DepthStencil = cv, dv
	}
	return ok
}

// Setup is RawSetup with views tagged by their formats.
type Setup[Cf format.RenderFormat, Df format.DepthFormat] struct {
	Context      *Current
	Device       *device.Device
	Factory      *device.Factory
	Color        device.RenderTargetView[Cf]
	DepthStencil device.DepthStencilView[Df]
}

// UpdateViews replaces the main target views if the window has been resized
// and reports whether it did so.
func (s *Setup[Cf, Df]) UpdateViews() bool {
	return UpdateViews(s.Context, &s.Color, &s.DepthStencil)
}

// InitRaw creates a window with a context that has buffers matching the
// formats, makes the context current on the calling thread and creates the
// device, factory and main targets.
//
// The only error returned is a CreationError.
func InitRaw(wb WindowBuilder, cb ContextBuilder, el *EventLoop, color, depthStencil format.Format) (*RawSetup, error) {
	nc, err := cb.WithPixelFormatOf(Negotiate(color, depthStencil)).BuildWindowed(wb, el)
	if err != nil {
		return nil, err
	}
	return InitExistingRaw(nc, color, depthStencil), nil
}

// InitExistingRaw makes the context of an existing window current on the
// calling thread and creates the device, factory and main targets.
//
// The window's buffers are not checked against the formats.
func InitExistingRaw(nc *NotCurrent, color, depthStencil format.Format) *RawSetup {
	ctx := nc.MakeCurrent()
	dev, factory := device.Create(ctx.GetProcAddress)
	ctx.samples = int(dev.Info().Samples)

	cv, dv := NewViewsRaw(ctx, color, depthStencil)
	return &RawSetup{
		Context:      ctx,
		Device:       dev,
		Factory:      factory,
		Color:        cv,
		DepthStencil: dv,
		colorFormat:  color,
		depthFormat:  depthStencil,
	}
}

// Init is InitRaw with the formats given as type parameters.
//
//	el, err := glwindow.NewEventLoop()
//	...
//	setup, err := glwindow.Init[format.Srgba8, format.DepthStencil](
//		glwindow.NewWindowBuilder().WithTitle("Example"),
//		glwindow.NewContextBuilder(),
//		el,
//	)
func Init[Cf format.RenderFormat, Df format.DepthFormat](wb WindowBuilder, cb ContextBuilder, el *EventLoop) (*Setup[Cf, Df], error) {
	raw, err := InitRaw(wb, cb, el, format.Of[Cf](), format.Of[Df]())
	if err != nil {
		return nil, err
	}
	return typedSetup[Cf, Df](raw), nil
}

// InitExisting is InitExistingRaw with the formats given as type parameters.
func InitExisting[Cf format.RenderFormat, Df format.DepthFormat](nc *NotCurrent) *Setup[Cf, Df] {
	return typedSetup[Cf, Df](InitExistingRaw(nc, format.Of[Cf](), format.Of[Df]()))
}

func typedSetup[Cf format.RenderFormat, Df format.DepthFormat](raw *RawSetup) *Setup[Cf, Df] {
	return &Setup[Cf, Df]{
		Context:      raw.Context,
		Device:       raw.Device,
		Factory:      raw.Factory,
		Color:        device.NewRenderTargetView[Cf](raw.Color),
		DepthStencil: device.NewDepthStencilView[Df](raw.DepthStencil),
	}
}
