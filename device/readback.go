package device

import (
	"image"
	"image/color"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// ReadImage copies the contents of the color target to main memory. This
// stalls until all rendering to the target has completed.
func (dev *Device) ReadImage(target RawRenderTargetView) image.Image {
	w, h := int(target.dim.Width), int(target.dim.Height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, target.framebuffer)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&img.Pix[0]))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return &Flip{Image: img}
}

// Flip wraps an image and flips it upside down. OpenGL stores rows bottom to
// top.
type Flip struct {
	image.Image
}

func (flip *Flip) At(x, y int) color.Color {
	b := flip.Bounds()
	return flip.Image.At(x, b.Max.Y-(y-b.Min.Y)-1)
}
