package format

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestSurfaceBits(t *testing.T) {
	cases := map[SurfaceType]struct {
		total, alphaStencil uint8
		depth               bool
	}{
		R5G6B5:       {total: 16},
		R8G8B8A8:     {total: 32, alphaStencil: 8},
		R10G10B10A2:  {total: 32, alphaStencil: 2},
		R16G16B16A16: {total: 64, alphaStencil: 16},
		B8G8R8A8:     {total: 32, alphaStencil: 8},
		D16:          {total: 16, depth: true},
		D24:          {total: 24, depth: true},
		D24S8:        {total: 32, alphaStencil: 8, depth: true},
		D32:          {total: 32, depth: true},
	}
	for st, exp := range cases {
		if got := st.TotalBits(); got != exp.total {
			t.Errorf("%v: unexpected total bits: exp %v, got %v", st, exp.total, got)
		}
		if got := st.AlphaOrStencilBits(); got != exp.alphaStencil {
			t.Errorf("%v: unexpected alpha/stencil bits: exp %v, got %v", st, exp.alphaStencil, got)
		}
		if got := st.IsDepth(); got != exp.depth {
			t.Errorf("%v: unexpected depth flag: exp %v, got %v", st, exp.depth, got)
		}
	}
}

func TestAlphaNeverExceedsTotal(t *testing.T) {
	for st := R4G4; st <= D32S8; st++ {
		if st.AlphaOrStencilBits() > st.TotalBits() {
			t.Fatalf("%v has more alpha/stencil bits than total bits", st)
		}
		if st.TotalBits() == 0 {
			t.Fatalf("%v has no bits", st)
		}
	}
}

func TestUnknownSurface(t *testing.T) {
	st := SurfaceType(200)
	if st.TotalBits() != 0 || st.AlphaOrStencilBits() != 0 {
		t.Fatalf("unknown surface should have no bits")
	}
	if st.String() != "SurfaceType(200)" {
		t.Fatalf("unexpected name: %q", st.String())
	}
}

func TestMarkers(t *testing.T) {
	if f := Of[Srgba8](); f != (Format{Surface: R8G8B8A8, Channel: Srgb}) {
		t.Fatalf("unexpected Srgba8 format: %v", f)
	}
	if f := Of[DepthStencil](); f != (Format{Surface: D24S8, Channel: Unorm}) {
		t.Fatalf("unexpected DepthStencil format: %v", f)
	}
	if f := Of[Depth32F](); !f.Surface.IsDepth() {
		t.Fatalf("Depth32F is not a depth format: %v", f)
	}
	if s := Of[Rgba8]().String(); s != "R8_G8_B8_A8/Unorm" {
		t.Fatalf("unexpected string: %q", s)
	}
}

func TestTextureFormat(t *testing.T) {
	f, err := FromTextureFormat(gputypes.TextureFormatDepth24PlusStencil8)
	if err != nil {
		t.Fatal(err)
	}
	if f != Of[DepthStencil]() {
		t.Fatalf("unexpected format: %v", f)
	}
	if tf := Of[Bgra8]().TextureFormat(); tf != gputypes.TextureFormatBGRA8Unorm {
		t.Fatalf("unexpected texture format: %v", tf)
	}
	if tf := Of[Srgba8]().TextureFormat(); tf != gputypes.TextureFormatRGBA8UnormSrgb {
		t.Fatalf("unexpected texture format for Srgba8: %v", tf)
	}
	if tf := Of[Rgba32F]().TextureFormat(); tf != gputypes.TextureFormatUndefined {
		t.Fatalf("expected no texture format for Rgba32F, got %v", tf)
	}
	if _, err := FromTextureFormat(gputypes.TextureFormatUndefined); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestParseTextureFormat(t *testing.T) {
	for _, name := range TextureFormatNames() {
		tf, err := ParseTextureFormat(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		f, err := FromTextureFormat(tf)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if f.TextureFormatName() != name {
			t.Errorf("%s: name does not survive conversion, got %q", name, f.TextureFormatName())
		}
	}

	tf, err := ParseTextureFormat("rgba8unorm-srgb")
	if err != nil {
		t.Fatal(err)
	}
	if f, _ := FromTextureFormat(tf); f != Of[Srgba8]() {
		t.Fatalf("unexpected format: exp %v, got %v", Of[Srgba8](), f)
	}
	if _, err := ParseTextureFormat("rgba32float"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if name := Of[Rgba32F]().TextureFormatName(); name != "" {
		t.Fatalf("expected no name for Rgba32F, got %q", name)
	}
}
