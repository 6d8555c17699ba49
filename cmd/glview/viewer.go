package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/polyfloyd/glwindow"
	"github.com/polyfloyd/glwindow/device"
	"github.com/polyfloyd/glwindow/format"
)

type viewer struct {
	window  *glwindow.Current
	device  *device.Device
	factory *device.Factory
	program *device.Program
	start   time.Time
	format  format.Format

	// The views are typed by the color format chosen on the command line,
	// these close over them.
	updateViews func() bool
	color       func() device.RawRenderTargetView
	depth       func() device.RawDepthStencilView
}

func newViewer[Cf format.RenderFormat](wb glwindow.WindowBuilder, cb glwindow.ContextBuilder, el *glwindow.EventLoop) (*viewer, error) {
	setup, err := glwindow.Init[Cf, format.DepthStencil](wb, cb, el)
	if err != nil {
		return nil, err
	}
	return &viewer{
		window:      setup.Context,
		device:      setup.Device,
		factory:     setup.Factory,
		start:       time.Now(),
		format:      format.Of[Cf](),
		updateViews: setup.UpdateViews,
		color:       func() device.RawRenderTargetView { return setup.Color.Raw() },
		depth:       func() device.RawDepthStencilView { return setup.DepthStencil.Raw() },
	}, nil
}

// newViewerFor opens a viewer with a color buffer of the specified format.
func newViewerFor(color format.Format, wb glwindow.WindowBuilder, cb glwindow.ContextBuilder, el *glwindow.EventLoop) (*viewer, error) {
	switch color {
	case format.Of[format.Rgba8]():
		return newViewer[format.Rgba8](wb, cb, el)
	case format.Of[format.Srgba8]():
		return newViewer[format.Srgba8](wb, cb, el)
	case format.Of[format.Bgra8]():
		return newViewer[format.Bgra8](wb, cb, el)
	case format.Of[format.Sbgra8]():
		return newViewer[format.Sbgra8](wb, cb, el)
	}
	return nil, fmt.Errorf("%v can not be used as a window color format", color)
}

func (v *viewer) dimensions() device.Dimensions {
	return v.color().Dimensions()
}

// load replaces the current program. The old program is kept if the new one
// fails to compile.
func (v *viewer) load(files []device.SourceFile) error {
	prog, err := v.factory.CreateProgram(map[device.Stage][]device.Source{
		device.StageVertex:   {device.SourceBuf(vertexShader)},
		device.StageFragment: append([]device.Source{device.SourceBuf(fragmentHeader)}, device.SourceFiles(files...)...),
	})
	if err != nil {
		return err
	}
	if v.program != nil {
		v.program.Delete()
	}
	v.program = prog
	return nil
}

func (v *viewer) draw() {
	color, depth := v.color(), v.depth()
	v.device.ClearDepthStencil(depth, 1, 0)
	if v.program == nil {
		v.device.Clear(color, 0.1, 0.1, 0.1, 1)
		return
	}
	dim := color.Dimensions()
	v.program.Set("resolution", float32(dim.Width), float32(dim.Height))
	v.program.Set("time", since(v.start))
	v.device.DrawQuad(color, v.program)
}

func (v *viewer) run(ctx context.Context, el *glwindow.EventLoop, sources <-chan []device.SourceFile, verbose bool) {
	for ctx.Err() == nil && !v.window.ShouldClose() {
		for _, ev := range el.Poll() {
			switch ev.(type) {
			case glwindow.Resized:
				if v.updateViews() && verbose {
					log.Printf("Main targets: %s", v.dimensions())
				}
			case glwindow.CloseRequested:
				return
			}
		}

		select {
		case files := <-sources:
			if err := v.load(files); err != nil {
				log.Println(err)
			} else if verbose {
				log.Printf("Loaded %d source file(s)", len(files))
			}
		default:
		}

		v.draw()
		v.window.SwapBuffers()
	}
}

// capture renders a frame and returns it without presenting it.
func (v *viewer) capture() image.Image {
	v.draw()
	return v.device.ReadImage(v.color())
}

func (v *viewer) close() {
	if v.program != nil {
		v.program.Delete()
	}
	v.device.Close()
	v.window.Destroy()
}
