package glwindow

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/polyfloyd/glwindow/format"
)

func hintMap(hints []windowHint) map[glfw.Hint]int {
	m := map[glfw.Hint]int{}
	for _, h := range hints {
		m[h.hint] = h.value
	}
	return m
}

func TestContextHints(t *testing.T) {
	pf := Negotiate(format.Of[format.Srgba8](), format.Of[format.DepthStencil]())
	cb := NewContextBuilder().WithPixelFormatOf(pf).WithMultisampling(4)
	hints := hintMap(cb.hints())

	exp := map[glfw.Hint]int{
		glfw.ContextVersionMajor:     3,
		glfw.ContextVersionMinor:     3,
		glfw.RedBits:                 8,
		glfw.GreenBits:               8,
		glfw.BlueBits:                8,
		glfw.AlphaBits:               8,
		glfw.DepthBits:               24,
		glfw.StencilBits:             8,
		glfw.SRGBCapable:             glfw.True,
		glfw.Samples:                 4,
		glfw.OpenGLDebugContext:      glfw.False,
		glfw.OpenGLProfile:           glfw.OpenGLCoreProfile,
		glfw.OpenGLForwardCompatible: glfw.True,
	}
	for hint, value := range exp {
		got, ok := hints[hint]
		if !ok {
			t.Errorf("missing hint %v", hint)
			continue
		}
		if got != value {
			t.Errorf("unexpected value for hint %v: exp %v, got %v", hint, value, got)
		}
	}
}

func TestContextHintsBuilders(t *testing.T) {
	cb := NewContextBuilder().
		WithDepthBuffer(16).
		WithStencilBuffer(0).
		WithPixelFormat(16, 0).
		WithSRGB(false).
		WithDebug(true)
	hints := hintMap(cb.hints())
	if hints[glfw.DepthBits] != 16 || hints[glfw.StencilBits] != 0 {
		t.Fatalf("unexpected depth/stencil bits: %d/%d", hints[glfw.DepthBits], hints[glfw.StencilBits])
	}
	if hints[glfw.RedBits] != 5 || hints[glfw.GreenBits] != 6 || hints[glfw.BlueBits] != 5 {
		t.Fatalf("unexpected color bits: %d/%d/%d", hints[glfw.RedBits], hints[glfw.GreenBits], hints[glfw.BlueBits])
	}
	if hints[glfw.SRGBCapable] != glfw.False || hints[glfw.OpenGLDebugContext] != glfw.True {
		t.Fatalf("unexpected flags: %v", hints)
	}
}

func TestContextHintsLegacyVersion(t *testing.T) {
	cb := NewContextBuilder().WithGLVersion(GLVersion{Major: 2, Minor: 1})
	hints := hintMap(cb.hints())
	if _, ok := hints[glfw.OpenGLProfile]; ok {
		t.Fatalf("no profile should be requested for OpenGL 2.1")
	}
	if hints[glfw.ContextVersionMajor] != 2 || hints[glfw.ContextVersionMinor] != 1 {
		t.Fatalf("unexpected version hints: %v", hints)
	}
}

func TestWindowHints(t *testing.T) {
	wb := NewWindowBuilder().WithTitle("test").WithSize(320, 240).WithResizable(false)
	if wb.width != 320 || wb.height != 240 || wb.title != "test" {
		t.Fatalf("unexpected window builder: %+v", wb)
	}
	hints := hintMap(wb.hints())
	if hints[glfw.Resizable] != glfw.False || hints[glfw.Visible] != glfw.True {
		t.Fatalf("unexpected window hints: %v", hints)
	}
}

func TestParseGLVersion(t *testing.T) {
	valid := map[string]GLVersion{
		"3.3":  {Major: 3, Minor: 3},
		"4.6":  {Major: 4, Minor: 6},
		"2.1":  {Major: 2, Minor: 1},
		"10.0": {Major: 10, Minor: 0},
	}
	for input, exp := range valid {
		v, err := ParseGLVersion(input)
		if err != nil {
			t.Errorf("error parsing valid version %q: %v", input, err)
		}
		if v != exp {
			t.Errorf("mismatched result %v, expected %v", v, exp)
		}
		if v.String() != input {
			t.Errorf("version %q does not round trip: %q", input, v.String())
		}
	}

	invalid := []string{"", "3", "3.", ".3", "0.1", "a.b", "3.3.0", " 3.3"}
	for _, input := range invalid {
		if _, err := ParseGLVersion(input); err == nil {
			t.Errorf("expected an error while parsing invalid version %q", input)
		}
	}
}

func TestGLVersionAtLeast(t *testing.T) {
	v := GLVersion{Major: 3, Minor: 3}
	if !v.AtLeast(3, 2) || !v.AtLeast(3, 3) || !v.AtLeast(2, 9) {
		t.Fatalf("3.3 should be at least 3.2, 3.3 and 2.9")
	}
	if v.AtLeast(3, 4) || v.AtLeast(4, 0) {
		t.Fatalf("3.3 should not be at least 3.4 or 4.0")
	}
}
