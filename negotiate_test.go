package glwindow

import (
	"testing"

	"github.com/polyfloyd/glwindow/format"
)

func TestNegotiate(t *testing.T) {
	pf := Negotiate(format.Of[format.Srgba8](), format.Of[format.DepthStencil]())
	exp := PixelFormat{ColorBits: 24, AlphaBits: 8, DepthBits: 24, StencilBits: 8, SRGB: true}
	if pf != exp {
		t.Fatalf("unexpected pixel format: exp %+v, got %+v", exp, pf)
	}
}

func TestNegotiateBits(t *testing.T) {
	for st := format.R4G4; st <= format.D32S8; st++ {
		f := format.Format{Surface: st, Channel: format.Unorm}
		pf := Negotiate(f, f)
		total, alpha := st.TotalBits(), st.AlphaOrStencilBits()

		if pf.ColorBits != total-alpha || pf.AlphaBits != alpha {
			t.Errorf("%v: unexpected color split: exp %d+%d, got %d+%d", st, total-alpha, alpha, pf.ColorBits, pf.AlphaBits)
		}
		if pf.DepthBits != total-alpha || pf.StencilBits != alpha {
			t.Errorf("%v: unexpected depth split: exp %d+%d, got %d+%d", st, total-alpha, alpha, pf.DepthBits, pf.StencilBits)
		}
	}
}

func TestNegotiateSRGB(t *testing.T) {
	ds := format.Of[format.Depth]()
	channels := []format.ChannelType{format.Int, format.Uint, format.Inorm, format.Unorm, format.Float, format.Srgb}
	for _, ch := range channels {
		pf := Negotiate(format.Format{Surface: format.R8G8B8A8, Channel: ch}, ds)
		if pf.SRGB != (ch == format.Srgb) {
			t.Errorf("%v: unexpected sRGB flag %v", ch, pf.SRGB)
		}
	}
}

func TestPixelFormatRGB(t *testing.T) {
	cases := map[uint8][3]uint8{
		24: {8, 8, 8},
		16: {5, 6, 5},
		30: {10, 10, 10},
		32: {11, 11, 10},
		15: {5, 5, 5},
		12: {4, 4, 4},
		0:  {0, 0, 0},
	}
	for bits, exp := range cases {
		r, g, b := PixelFormat{ColorBits: bits}.RGB()
		if [3]uint8{r, g, b} != exp {
			t.Errorf("%d bits: unexpected split: exp %v, got %v", bits, exp, [3]uint8{r, g, b})
		}
	}
}

func TestPixelFormatRGBPacked(t *testing.T) {
	for _, st := range []format.SurfaceType{format.R5G6B5, format.R11G11B10, format.R10G10B10A2, format.R8G8B8A8} {
		pf := Negotiate(format.Format{Surface: st, Channel: format.Unorm}, format.Of[format.DepthStencil]())
		r, g, b := pf.RGB()
		if r+g+b != pf.ColorBits {
			t.Errorf("%v: split %d-%d-%d does not add up to %d", st, r, g, b, pf.ColorBits)
		}
	}
	r, g, b := Negotiate(format.Format{Surface: format.R11G11B10, Channel: format.Float}, format.Of[format.Depth]()).RGB()
	if r != 11 || g != 11 || b != 10 {
		t.Fatalf("unexpected R11G11B10 split: %d-%d-%d", r, g, b)
	}
}
