package device

import (
	"image"
	"image/color"
	"testing"

	"github.com/polyfloyd/glwindow/format"
)

func TestFlip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 2, color.RGBA{B: 255, A: 255})

	flip := &Flip{Image: img}
	if r, _, _, _ := flip.At(0, 2).RGBA(); r != 0xffff {
		t.Fatalf("expected the top row at the bottom")
	}
	if _, _, b, _ := flip.At(0, 0).RGBA(); b != 0xffff {
		t.Fatalf("expected the bottom row at the top")
	}
}

func TestReadImage(t *testing.T) {
	dev, _ := initTestGL(t)

	cv, _ := CreateMainTargetsRaw(Dimensions{Width: 4, Height: 4, Layers: 1}, format.R8G8B8A8, format.D24S8)
	dev.Clear(cv, 1, 0, 0, 1)
	img := dev.ReadImage(cv)
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("unexpected image bounds: %v", img.Bounds())
	}
	if r, g, _, _ := img.At(2, 2).RGBA(); r != 0xffff || g != 0 {
		t.Fatalf("expected a red pixel, got %v", img.At(2, 2))
	}
}
