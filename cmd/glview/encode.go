package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var encoders = map[string]func(io.Writer, image.Image) error{
	".png": png.Encode,
	".jpg": func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	},
}

func init() {
	encoders[".jpeg"] = encoders[".jpg"]
}

func writeImage(filename string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(filename))
	encode, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("unable to detect image format of %q", filename)
	}
	fd, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := encode(fd, img); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
