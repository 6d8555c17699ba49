package format

// Formatted is implemented by the marker types below. The marker values carry
// no data, they only name a Format at compile time.
type Formatted interface {
	Format() Format
}

// RenderFormat is satisfied by formats that can back a color render target.
type RenderFormat interface {
	Formatted
	renderFormat()
}

// DepthFormat is satisfied by formats that can back a depth-stencil target.
type DepthFormat interface {
	Formatted
	depthFormat()
}

// Of returns the runtime descriptor named by the marker type F.
func Of[F Formatted]() Format {
	var f F
	return f.Format()
}

type (
	Rgba8    struct{}
	Srgba8   struct{}
	Bgra8    struct{}
	Sbgra8   struct{}
	Rgb10a2F struct{}
	Rgba16F  struct{}
	Rgba32F  struct{}

	Depth        struct{}
	DepthStencil struct{}
	Depth32F     struct{}
)

func (Rgba8) Format() Format    { return Format{Surface: R8G8B8A8, Channel: Unorm} }
func (Srgba8) Format() Format   { return Format{Surface: R8G8B8A8, Channel: Srgb} }
func (Bgra8) Format() Format    { return Format{Surface: B8G8R8A8, Channel: Unorm} }
func (Sbgra8) Format() Format   { return Format{Surface: B8G8R8A8, Channel: Srgb} }
func (Rgb10a2F) Format() Format { return Format{Surface: R10G10B10A2, Channel: Float} }
func (Rgba16F) Format() Format  { return Format{Surface: R16G16B16A16, Channel: Float} }
func (Rgba32F) Format() Format  { return Format{Surface: R32G32B32A32, Channel: Float} }

func (Depth) Format() Format        { return Format{Surface: D16, Channel: Unorm} }
func (DepthStencil) Format() Format { return Format{Surface: D24S8, Channel: Unorm} }
func (Depth32F) Format() Format     { return Format{Surface: D32, Channel: Float} }

func (Rgba8) renderFormat()    {}
func (Srgba8) renderFormat()   {}
func (Bgra8) renderFormat()    {}
func (Sbgra8) renderFormat()   {}
func (Rgb10a2F) renderFormat() {}
func (Rgba16F) renderFormat()  {}
func (Rgba32F) renderFormat()  {}

func (Depth) depthFormat()        {}
func (DepthStencil) depthFormat() {}
func (Depth32F) depthFormat()     {}
