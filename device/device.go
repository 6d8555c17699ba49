package device

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// ProcAddrFunc resolves the address of a GL entry point of the context that
// is current on the calling thread.
type ProcAddrFunc func(name string) unsafe.Pointer

// Info describes the context the device was created from.
type Info struct {
	Vendor      string
	Renderer    string
	Version     string
	GLSLVersion string
	// Samples is the multisample count of the default framebuffer.
	Samples uint8
}

func (info Info) String() string {
	return fmt.Sprintf("%s (%s), OpenGL %s, GLSL %s", info.Renderer, info.Vendor, info.Version, info.GLSLVersion)
}

// Device submits work to the context it was created from.
//
// A Device must only be used on the thread its context is current on, and
// not after that context has been destroyed.
type Device struct {
	info  Info
	debug debugOutput

	quadVAO uint32
	quadVBO uint32
}

// Factory allocates resources for a Device.
type Factory struct{}

// Create loads the GL entry points through procAddr and returns a device and
// factory bound to the current context.
//
// There is no way to recover from a context that can not provide the entry
// points, so a failure to load them panics.
func Create(procAddr ProcAddrFunc) (*Device, *Factory) {
	if err := gl.InitWithProcAddrFunc(procAddr); err != nil {
		panic(fmt.Sprintf("device: could not load OpenGL entry points: %v", err))
	}

	var samples int32
	gl.GetIntegerv(gl.SAMPLES, &samples)
	dev := &Device{
		info: Info{
			Vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
			Renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
			Version:     gl.GoStr(gl.GetString(gl.VERSION)),
			GLSLVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
			Samples:     uint8(samples),
		},
	}
	return dev, &Factory{}
}

func (dev *Device) Info() Info {
	return dev.info
}

func (dev *Device) bind(v view) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, v.framebuffer)
	gl.Viewport(0, 0, int32(v.dim.Width), int32(v.dim.Height))
}

// Clear fills the color target with the specified color.
func (dev *Device) Clear(target RawRenderTargetView, r, g, b, a float32) {
	dev.bind(target.view)
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// ClearDepthStencil resets the depth and stencil buffers of the target.
func (dev *Device) ClearDepthStencil(target RawDepthStencilView, depth float64, stencil int32) {
	dev.bind(target.view)
	gl.ClearDepth(depth)
	gl.ClearStencil(stencil)
	gl.Clear(gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

// DrawQuad renders a quad covering the entire target using the specified
// program. The program receives the corners of the quad through the "vert"
// attribute, if it declares one.
func (dev *Device) DrawQuad(target RawRenderTargetView, prog *Program) {
	if dev.quadVAO == 0 {
		vertices := []float32{
			-1.0, -1.0, 0.0,
			1.0, -1.0, 0.0,
			-1.0, 1.0, 0.0,
			1.0, 1.0, 0.0,
		}
		gl.GenVertexArrays(1, &dev.quadVAO)
		gl.BindVertexArray(dev.quadVAO)
		gl.GenBuffers(1, &dev.quadVBO)
		gl.BindBuffer(gl.ARRAY_BUFFER, dev.quadVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(&vertices[0]), gl.STATIC_DRAW)
	}

	dev.bind(target.view)
	gl.UseProgram(prog.id)
	gl.BindVertexArray(dev.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, dev.quadVBO)
	if prog.position >= 0 {
		gl.EnableVertexAttribArray(uint32(prog.position))
		gl.VertexAttribPointer(uint32(prog.position), 3, gl.FLOAT, false, 0, nil)
	}
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

// Close frees the resources the device allocated on its own and ends its
// debug output. Closing twice is a no-op.
func (dev *Device) Close() error {
	dev.stopDebugOutput()
	if dev.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &dev.quadVAO)
		gl.DeleteBuffers(1, &dev.quadVBO)
		dev.quadVAO, dev.quadVBO = 0, 0
	}
	return nil
}
