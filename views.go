package glwindow

import (
	"fmt"

	"github.com/polyfloyd/glwindow/device"
	"github.com/polyfloyd/glwindow/format"
)

// Surface is a drawable whose default framebuffer is sized by the window
// system.
type Surface interface {
	// FramebufferSize returns the size of the default framebuffer in pixels.
	FramebufferSize() (width, height int)
	// Samples returns the multisample count, 0 if not multisampled.
	Samples() int
}

// SurfaceDimensions returns the current dimensions of the surface's default
// framebuffer.
func SurfaceDimensions(s Surface) device.Dimensions {
	w, h := s.FramebufferSize()
	return device.Dimensions{
		Width:   uint32(w),
		Height:  uint32(h),
		Layers:  1,
		Samples: uint8(s.Samples()),
	}
}

// NewViewsRaw creates main target views sized to the surface.
func NewViewsRaw(s Surface, color, depthStencil format.Format) (device.RawRenderTargetView, device.RawDepthStencilView) {
	return device.CreateMainTargetsRaw(SurfaceDimensions(s), color.Surface, depthStencil.Surface)
}

// NewViews creates main target views sized to the surface. It is best called
// right after the surface has been resized.
func NewViews[Cf format.RenderFormat, Df format.DepthFormat](s Surface) (device.RenderTargetView[Cf], device.DepthStencilView[Df]) {
	cv, dv := NewViewsRaw(s, format.Of[Cf](), format.Of[Df]())
	return device.NewRenderTargetView[Cf](cv), device.NewDepthStencilView[Df](dv)
}

// UpdateViewsRaw returns new main target views if the surface's dimensions
// differ from oldDimensions. The returned bool is false if nothing changed,
// in which case no views are created.
func UpdateViewsRaw(s Surface, oldDimensions device.Dimensions, color, depthStencil format.Format) (device.RawRenderTargetView, device.RawDepthStencilView, bool) {
	dim := SurfaceDimensions(s)
	if dim == oldDimensions {
		return device.RawRenderTargetView{}, device.RawDepthStencilView{}, false
	}
	cv, dv := device.CreateMainTargetsRaw(dim, color.Surface, depthStencil.Surface)
	return cv, dv, true
}

// UpdateViews replaces the views if the surface's dimensions differ from
// theirs and reports whether it did so.
//
// The views must have the same dimensions, UpdateViews panics otherwise.
func UpdateViews[Cf format.RenderFormat, Df format.DepthFormat](s Surface, color *device.RenderTargetView[Cf], depthStencil *device.DepthStencilView[Df]) bool {
	dim := color.Dimensions()
	if dsDim := depthStencil.Dimensions(); dim != dsDim {
		panic(fmt.Sprintf("glwindow: color target is %v while depth-stencil target is %v", dim, dsDim))
	}
	cv, dv, ok := UpdateViewsRaw(s, dim, format.Of[Cf](), format.Of[Df]())
	if !ok {
		return false
	}
	*color = device.NewRenderTargetView[Cf](cv)
	*depthStencil = device.NewDepthStencilView[Df](dv)
	return true
}
