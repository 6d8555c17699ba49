package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/polyfloyd/glwindow"
	"github.com/polyfloyd/glwindow/device"
	"github.com/polyfloyd/glwindow/format"
)

const vertexShader = `#version 330 core
in vec3 vert;
void main() {
	gl_Position = vec4(vert, 1.0);
}
`

// fragmentHeader precedes the fragment shader sources.
const fragmentHeader = `#version 330 core
uniform vec2 resolution;
uniform float time;
out vec4 color;
`

func init() {
	// OpenGL contexts and the window system are bound to the main thread.
	runtime.LockOSThread()
}

func main() {
	log.SetOutput(os.Stderr)

	var inputFiles arrayFlags
	flag.Var(&inputFiles, "i", "The fragment shader file(s) to render. The window is cleared if none are given")
	geometry := flag.String("g", "800x600", "The initial size of the window in WIDTHxHEIGHT format")
	title := flag.String("title", "glview", "The title of the window")
	openGLVersionStr := flag.String("opengl", "3.3", "The OpenGL version to request")
	samples := flag.Uint("samples", 0, "The number of multisample samples, 0 disables multisampling")
	colorFormatName := flag.String("format", "rgba8unorm-srgb", "The color buffer format, one of "+strings.Join(format.TextureFormatNames(), ", "))
	vsync := flag.Bool("vsync", true, "Synchronize buffer swaps to the display refresh rate")
	watch := flag.Bool("w", false, "Watch the shader source files for changes")
	debug := flag.Bool("debug", false, "Create a debug context and log OpenGL debug messages")
	verbose := flag.Bool("v", false, "Show verbose output")
	screenshot := flag.String("o", "", "Write the last rendered frame to this PNG or JPEG file on exit")
	flag.Parse()

	width, height, err := parseGeometry(*geometry)
	if err != nil {
		log.Fatal(err)
	}
	openGLVersion, err := glwindow.ParseGLVersion(*openGLVersionStr)
	if err != nil {
		log.Fatal(err)
	}
	colorFormat, err := parseColorFormat(*colorFormatName)
	if err != nil {
		log.Fatal(err)
	}
	if *samples > 255 {
		log.Fatalf("-samples must be at most 255, got %d", *samples)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig
		signal.Stop(sig)
		cancel()
	}()

	el, err := glwindow.NewEventLoop()
	if err != nil {
		log.Fatal(err)
	}
	defer el.Terminate()

	wb := glwindow.NewWindowBuilder().
		WithTitle(*title).
		WithSize(int(width), int(height))
	cb := glwindow.NewContextBuilder().
		WithGLVersion(openGLVersion).
		WithMultisampling(uint8(*samples)).
		WithVSync(*vsync).
		WithDebug(*debug)

	app, err := newViewerFor(colorFormat, wb, cb, el)
	var cerr glwindow.CreationError
	if errors.As(err, &cerr) {
		log.Fatalf("Could not create window: %v", cerr.Err)
	} else if err != nil {
		log.Fatal(err)
	}
	defer app.close()

	if *verbose {
		log.Printf("Device: %s", app.device.Info())
		log.Printf("Main targets: %s, %s", app.dimensions(), app.format.TextureFormatName())
	}
	if *debug {
		go func(messages <-chan device.DebugMessage) {
			for dm := range messages {
				if !dm.IsNotification() {
					log.Printf("OpenGL %s: %s", dm.SeverityString(), dm.Message)
				}
			}
		}(app.device.DebugOutput())
	}

	sources := make(chan []device.SourceFile, 1)
	if len(inputFiles) > 0 {
		if *watch {
			go watchSources(ctx, inputFiles, sources)
		} else {
			files, err := device.Includes(inputFiles...)
			if err != nil {
				log.Fatal(err)
			}
			sources <- files
		}
	}

	app.run(ctx, el, sources, *verbose)

	if *screenshot != "" {
		if err := writeImage(*screenshot, app.capture()); err != nil {
			log.Fatal(err)
		}
	}
}

func parseGeometry(geom string) (uint, uint, error) {
	re := regexp.MustCompile(`^(\d+)x(\d+)$`)
	matches := re.FindStringSubmatch(geom)
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid geometry: %q", geom)
	}
	w, err := strconv.ParseUint(matches[1], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid geometry width: %w", err)
	}
	h, err := strconv.ParseUint(matches[2], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid geometry height: %w", err)
	}
	if w == 0 || h == 0 {
		return 0, 0, fmt.Errorf("no geometry dimension can be 0, got (%d, %d)", w, h)
	}
	return uint(w), uint(h), nil
}

// parseColorFormat resolves the WebGPU name of a color format.
func parseColorFormat(name string) (format.Format, error) {
	tf, err := format.ParseTextureFormat(name)
	if err != nil {
		return format.Format{}, err
	}
	f, err := format.FromTextureFormat(tf)
	if err != nil {
		return format.Format{}, err
	}
	if f.Surface.IsDepth() {
		return format.Format{}, fmt.Errorf("%s is not a color format", name)
	}
	return f, nil
}

type arrayFlags []string

func (i *arrayFlags) String() string {
	return "more of the same"
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// since returns the time elapsed since start in seconds.
func since(start time.Time) float32 {
	return float32(time.Since(start)) / float32(time.Second)
}
