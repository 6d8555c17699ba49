package format

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gogpu/gputypes"
)

var ErrUnsupported = errors.New("unsupported texture format")

var textureFormats = []struct {
	name string
	tf   gputypes.TextureFormat
	f    Format
}{
	{"rgba8unorm", gputypes.TextureFormatRGBA8Unorm, Format{Surface: R8G8B8A8, Channel: Unorm}},
	{"rgba8unorm-srgb", gputypes.TextureFormatRGBA8UnormSrgb, Format{Surface: R8G8B8A8, Channel: Srgb}},
	{"bgra8unorm", gputypes.TextureFormatBGRA8Unorm, Format{Surface: B8G8R8A8, Channel: Unorm}},
	{"bgra8unorm-srgb", gputypes.TextureFormatBGRA8UnormSrgb, Format{Surface: B8G8R8A8, Channel: Srgb}},
	{"r8unorm", gputypes.TextureFormatR8Unorm, Format{Surface: R8, Channel: Unorm}},
	{"depth24plus-stencil8", gputypes.TextureFormatDepth24PlusStencil8, Format{Surface: D24S8, Channel: Unorm}},
}

// ParseTextureFormat looks up a texture format by its WebGPU name, e.g.
// "rgba8unorm-srgb".
func ParseTextureFormat(name string) (gputypes.TextureFormat, error) {
	for _, e := range textureFormats {
		if e.name == name {
			return e.tf, nil
		}
	}
	return gputypes.TextureFormatUndefined, fmt.Errorf("%w: %q", ErrUnsupported, name)
}

// TextureFormatNames lists the names accepted by ParseTextureFormat.
func TextureFormatNames() []string {
	names := make([]string, 0, len(textureFormats))
	for _, e := range textureFormats {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

// FromTextureFormat converts a WebGPU texture format to its descriptor.
func FromTextureFormat(tf gputypes.TextureFormat) (Format, error) {
	for _, e := range textureFormats {
		if e.tf == tf {
			return e.f, nil
		}
	}
	return Format{}, fmt.Errorf("%w: %v", ErrUnsupported, tf)
}

// TextureFormat returns the WebGPU equivalent of the format, or
// TextureFormatUndefined if there is none.
func (f Format) TextureFormat() gputypes.TextureFormat {
	for _, e := range textureFormats {
		if e.f == f {
			return e.tf
		}
	}
	return gputypes.TextureFormatUndefined
}

// TextureFormatName returns the WebGPU name of the format, or "" if it has no
// WebGPU equivalent.
func (f Format) TextureFormatName() string {
	for _, e := range textureFormats {
		if e.f == f {
			return e.name
		}
	}
	return ""
}
