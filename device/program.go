package device

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Stage identifies a programmable stage of the pipeline.
type Stage string

const (
	StageVertex   Stage = "vert"
	StageFragment Stage = "frag"
)

type stageInfo struct {
	name   string
	glEnum uint32
}

var stages = map[Stage]stageInfo{
	StageVertex:   {name: "vertex", glEnum: gl.VERTEX_SHADER},
	StageFragment: {name: "fragment", glEnum: gl.FRAGMENT_SHADER},
}

// pipelineOrder is the order in which stages are compiled and reported.
var pipelineOrder = []Stage{StageVertex, StageFragment}

// positionAttrib is the vertex attribute DrawQuad feeds the quad corners to.
const positionAttrib = "vert"

// Program is a linked shader program that can be drawn with a Device.
type Program struct {
	id       uint32
	uniforms map[string]Uniform
	// position is the location of positionAttrib, -1 if the program does not
	// read it.
	position int32
}

// Uniform is an active uniform of a program. Size is the number of elements
// of an array uniform and 1 otherwise.
type Uniform struct {
	Name     string
	Type     uint32
	Size     int32
	Location int32
}

// CreateProgram compiles the sources of each stage and links them. The
// sources of a stage are concatenated in order.
func (f *Factory) CreateProgram(sources map[Stage][]Source) (*Program, error) {
	for stage := range sources {
		if _, ok := stages[stage]; !ok {
			return nil, fmt.Errorf("invalid pipeline stage: %q", stage)
		}
	}

	id := gl.CreateProgram()
	if err := f.link(id, sources); err != nil {
		gl.DeleteProgram(id)
		return nil, err
	}
	return &Program{
		id:       id,
		uniforms: activeUniforms(id),
		position: gl.GetAttribLocation(id, gl.Str(positionAttrib+"\x00")),
	}, nil
}

// link attaches the compiled stages to the program and links it. The shader
// objects are released before it returns.
func (f *Factory) link(id uint32, sources map[Stage][]Source) error {
	var shaders []uint32
	defer func() {
		for _, sh := range shaders {
			gl.DetachShader(id, sh)
			gl.DeleteShader(sh)
		}
	}()

	for _, stage := range pipelineOrder {
		src, ok := sources[stage]
		if !ok {
			continue
		}
		sh, err := f.compile(stage, src)
		if err != nil {
			return err
		}
		gl.AttachShader(id, sh)
		shaders = append(shaders, sh)
	}

	gl.LinkProgram(id)
	var linked int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &linked)
	if linked == gl.FALSE {
		return LinkError{Log: infoLog(id, gl.GetProgramiv, gl.GetProgramInfoLog)}
	}
	return nil
}

func (f *Factory) compile(stage Stage, sources []Source) (uint32, error) {
	var src strings.Builder
	for _, s := range sources {
		c, err := s.Contents()
		if err != nil {
			return 0, err
		}
		src.Write(c)
		src.WriteByte('\n')
	}

	sh := gl.CreateShader(stages[stage].glEnum)
	csrc, free := gl.Strs(src.String() + "\x00")
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var compiled int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &compiled)
	if compiled == gl.FALSE {
		err := CompileError{Stage: stage, Log: infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)}
		gl.DeleteShader(sh)
		return 0, err
	}
	return sh, nil
}

// infoLog reads the info log of a shader or program object.
func infoLog(id uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var size int32
	getiv(id, gl.INFO_LOG_LENGTH, &size)
	if size <= 0 {
		return ""
	}
	buf := make([]uint8, size)
	var n int32
	getLog(id, size, &n, &buf[0])
	return strings.TrimSpace(string(buf[:n]))
}

func activeUniforms(id uint32) map[string]Uniform {
	var count, maxLen int32
	gl.GetProgramiv(id, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(id, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)

	uniforms := make(map[string]Uniform, count)
	if count == 0 || maxLen == 0 {
		return uniforms
	}
	buf := make([]uint8, maxLen)
	for i := int32(0); i < count; i++ {
		var n, size int32
		var typ uint32
		gl.GetActiveUniform(id, uint32(i), maxLen, &n, &size, &typ, &buf[0])
		// Arrays are reported by their first element.
		name := strings.TrimSuffix(string(buf[:n]), "[0]")
		uniforms[name] = Uniform{
			Name:     name,
			Type:     typ,
			Size:     size,
			Location: gl.GetUniformLocation(id, gl.Str(name+"\x00")),
		}
	}
	return uniforms
}

// Uniforms returns the active uniforms of the program by name.
func (p *Program) Uniforms() map[string]Uniform {
	return p.uniforms
}

// Set assigns a float, vec2, vec3 or vec4 uniform. Uniforms that are not
// active in the program are ignored.
func (p *Program) Set(name string, values ...float32) {
	u, ok := p.uniforms[name]
	if !ok {
		return
	}
	gl.UseProgram(p.id)
	switch len(values) {
	case 1:
		gl.Uniform1f(u.Location, values[0])
	case 2:
		gl.Uniform2f(u.Location, values[0], values[1])
	case 3:
		gl.Uniform3f(u.Location, values[0], values[1], values[2])
	case 4:
		gl.Uniform4f(u.Location, values[0], values[1], values[2], values[3])
	}
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.id)
	p.id = 0
}

// CompileError holds the compiler output of a stage that failed to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (err CompileError) Error() string {
	return fmt.Sprintf("compiling %s shader: %s", stages[err.Stage].name, err.Log)
}

// LinkError holds the linker output of a program whose stages compiled but
// could not be linked together.
type LinkError struct {
	Log string
}

func (err LinkError) Error() string {
	return "linking program: " + err.Log
}
