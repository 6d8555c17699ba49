package glwindow

import (
	"github.com/polyfloyd/glwindow/format"
)

// PixelFormat holds the buffer sizes a context must be created with to back
// a pair of main targets.
type PixelFormat struct {
	ColorBits   uint8
	AlphaBits   uint8
	DepthBits   uint8
	StencilBits uint8
	SRGB        bool
}

// Negotiate splits the bits of the color and depth-stencil formats into the
// per-buffer sizes requested from the window system.
func Negotiate(color, depthStencil format.Format) PixelFormat {
	alpha := color.Surface.AlphaOrStencilBits()
	stencil := depthStencil.Surface.AlphaOrStencilBits()
	return PixelFormat{
		ColorBits:   color.Surface.TotalBits() - alpha,
		AlphaBits:   alpha,
		DepthBits:   depthStencil.Surface.TotalBits() - stencil,
		StencilBits: stencil,
		SRGB:        color.Channel == format.Srgb,
	}
}

// RGB splits the color bits over the red, green and blue channels. A single
// leftover bit goes to green and two go to red and green, which matches the
// packed layouts: 16 bits become 5-6-5 and 32 bits become 11-11-10.
func (pf PixelFormat) RGB() (r, g, b uint8) {
	r = pf.ColorBits / 3
	g, b = r, r
	switch pf.ColorBits % 3 {
	case 1:
		g++
	case 2:
		r++
		g++
	}
	return
}
