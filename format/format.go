package format

import (
	"fmt"
)

// SurfaceType describes the bit layout of a single pixel.
type SurfaceType uint8

const (
	R4G4 SurfaceType = iota
	R4G4B4A4
	R5G5B5A1
	R5G6B5
	R8
	R8G8
	R8G8B8A8
	R10G10B10A2
	R11G11B10
	R16
	R16G16
	R16G16B16
	R16G16B16A16
	R32
	R32G32
	R32G32B32
	R32G32B32A32
	B8G8R8A8
	D16
	D24
	D24S8
	D32
	D32S8
)

type surfaceInfo struct {
	name         string
	total        uint8
	alphaStencil uint8
	depth        bool
}

var surfaces = [...]surfaceInfo{
	R4G4:         {name: "R4_G4", total: 8},
	R4G4B4A4:     {name: "R4_G4_B4_A4", total: 16, alphaStencil: 4},
	R5G5B5A1:     {name: "R5_G5_B5_A1", total: 16, alphaStencil: 1},
	R5G6B5:       {name: "R5_G6_B5", total: 16},
	R8:           {name: "R8", total: 8},
	R8G8:         {name: "R8_G8", total: 16},
	R8G8B8A8:     {name: "R8_G8_B8_A8", total: 32, alphaStencil: 8},
	R10G10B10A2:  {name: "R10_G10_B10_A2", total: 32, alphaStencil: 2},
	R11G11B10:    {name: "R11_G11_B10", total: 32},
	R16:          {name: "R16", total: 16},
	R16G16:       {name: "R16_G16", total: 32},
	R16G16B16:    {name: "R16_G16_B16", total: 48},
	R16G16B16A16: {name: "R16_G16_B16_A16", total: 64, alphaStencil: 16},
	R32:          {name: "R32", total: 32},
	R32G32:       {name: "R32_G32", total: 64},
	R32G32B32:    {name: "R32_G32_B32", total: 96},
	R32G32B32A32: {name: "R32_G32_B32_A32", total: 128, alphaStencil: 32},
	B8G8R8A8:     {name: "B8_G8_R8_A8", total: 32, alphaStencil: 8},
	D16:          {name: "D16", total: 16, depth: true},
	D24:          {name: "D24", total: 24, depth: true},
	D24S8:        {name: "D24_S8", total: 32, alphaStencil: 8, depth: true},
	D32:          {name: "D32", total: 32, depth: true},
	D32S8:        {name: "D32_S8", total: 40, alphaStencil: 8, depth: true},
}

func (st SurfaceType) info() surfaceInfo {
	if int(st) >= len(surfaces) {
		return surfaceInfo{}
	}
	return surfaces[st]
}

// TotalBits returns the number of bits a single pixel occupies.
func (st SurfaceType) TotalBits() uint8 {
	return st.info().total
}

// AlphaOrStencilBits returns the number of bits used by the alpha channel of a
// color surface or by the stencil of a depth surface.
func (st SurfaceType) AlphaOrStencilBits() uint8 {
	return st.info().alphaStencil
}

// IsDepth reports whether the surface holds depth (and possibly stencil) data.
func (st SurfaceType) IsDepth() bool {
	return st.info().depth
}

func (st SurfaceType) String() string {
	if name := st.info().name; name != "" {
		return name
	}
	return fmt.Sprintf("SurfaceType(%d)", uint8(st))
}

// ChannelType describes how the bits of a channel are interpreted.
type ChannelType uint8

const (
	Int ChannelType = iota
	Uint
	Inorm
	Unorm
	Float
	Srgb
)

func (ct ChannelType) String() string {
	switch ct {
	case Int:
		return "Int"
	case Uint:
		return "Uint"
	case Inorm:
		return "Inorm"
	case Unorm:
		return "Unorm"
	case Float:
		return "Float"
	case Srgb:
		return "Srgb"
	}
	return fmt.Sprintf("ChannelType(%d)", uint8(ct))
}

// Format is a runtime descriptor of a pixel format.
type Format struct {
	Surface SurfaceType
	Channel ChannelType
}

func (f Format) String() string {
	return fmt.Sprintf("%s/%s", f.Surface, f.Channel)
}
