package device

import (
	"fmt"
	"sync/atomic"

	"github.com/polyfloyd/glwindow/format"
)

// Dimensions describes the size and sampling of a render target. Two values
// are equal iff all fields match.
type Dimensions struct {
	Width  uint32
	Height uint32
	Layers uint16
	// Samples is the multisample count, 0 if the target is not multisampled.
	Samples uint8
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d (%d samples)", d.Width, d.Height, d.Layers, d.Samples)
}

var lastViewID uint64

type view struct {
	id          uint64
	framebuffer uint32
	surface     format.SurfaceType
	dim         Dimensions
}

// ID uniquely identifies the view within the process. The zero view has ID 0.
func (v view) ID() uint64 { return v.id }

// Framebuffer returns the GL framebuffer the view renders into. The main
// targets use the window system's default framebuffer, 0.
func (v view) Framebuffer() uint32 { return v.framebuffer }

func (v view) Surface() format.SurfaceType { return v.surface }

func (v view) Dimensions() Dimensions { return v.dim }

// RawRenderTargetView is a handle to a color target without a compile-time
// format.
type RawRenderTargetView struct {
	view
}

// RawDepthStencilView is a handle to a depth-stencil target without a
// compile-time format.
type RawDepthStencilView struct {
	view
}

// CreateMainTargetsRaw creates views of the default framebuffer's color and
// depth-stencil buffers. Every call yields new handles, the GL objects they
// refer to are owned by the window system.
func CreateMainTargetsRaw(dim Dimensions, color, depth format.SurfaceType) (RawRenderTargetView, RawDepthStencilView) {
	cv := RawRenderTargetView{view{
		id:      atomic.AddUint64(&lastViewID, 1),
		surface: color,
		dim:     dim,
	}}
	dv := RawDepthStencilView{view{
		id:      atomic.AddUint64(&lastViewID, 1),
		surface: depth,
		dim:     dim,
	}}
	return cv, dv
}

// RenderTargetView tags a raw color view with its format.
type RenderTargetView[F format.RenderFormat] struct {
	raw RawRenderTargetView
}

func NewRenderTargetView[F format.RenderFormat](raw RawRenderTargetView) RenderTargetView[F] {
	return RenderTargetView[F]{raw: raw}
}

func (v RenderTargetView[F]) Raw() RawRenderTargetView { return v.raw }

func (v RenderTargetView[F]) Dimensions() Dimensions { return v.raw.dim }

// DepthStencilView tags a raw depth-stencil view with its format.
type DepthStencilView[F format.DepthFormat] struct {
	raw RawDepthStencilView
}

func NewDepthStencilView[F format.DepthFormat](raw RawDepthStencilView) DepthStencilView[F] {
	return DepthStencilView[F]{raw: raw}
}

func (v DepthStencilView[F]) Raw() RawDepthStencilView { return v.raw }

func (v DepthStencilView[F]) Dimensions() Dimensions { return v.raw.dim }
