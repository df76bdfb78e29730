// Package opengl is the desktop host's draw primitive: it implements
// core.Renderer on an OpenGL 4.1 core context.
package opengl

import (
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"sandbox/core"
	"sandbox/math"
)

// Renderer draws batched triangle lists from one dynamic vertex/index
// buffer pair sized to the batcher's capacity.
type Renderer struct {
	program uint32
	mvpLoc  int32

	vao, vbo, ebo  uint32
	indexCapacity  int
	vertexCapacity int

	log *slog.Logger
}

var _ core.Renderer = (*Renderer)(nil)

// vertex shader: MVP transform, normal and brightness passthrough
const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in float inValue;

uniform mat4 mvp;

out vec3 fragNormal;
out float fragValue;

void main() {
    gl_Position = mvp * vec4(inPosition, 1.0);
    fragNormal  = inNormal;
    fragValue   = inValue;
}
` + "\x00"

// fragment shader: grey level from brightness and a fixed sun
const fragSrc = `
#version 410 core
in vec3 fragNormal;
in float fragValue;

out vec4 outColor;

void main() {
    vec3  lightDir = normalize(vec3(0.4, -1.0, 0.3));
    float diff     = max(dot(normalize(fragNormal), -lightDir), 0.0);
    float lit      = fragValue * (0.45 + 0.55 * diff);
    outColor = vec4(vec3(lit), 1.0);
}
` + "\x00"

// NewRenderer initialises OpenGL and allocates the stream buffers.
// Must be called after the GLFW window context is made current.
func NewRenderer(indexCapacity, vertexCapacity int, log *slog.Logger) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}
	log.Info("OpenGL ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("shader program: %w", err)
	}

	r := &Renderer{
		program:        prog,
		mvpLoc:         gl.GetUniformLocation(prog, gl.Str("mvp\x00")),
		indexCapacity:  indexCapacity,
		vertexCapacity: vertexCapacity,
		log:            log,
	}
	r.createBuffers()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	return r, nil
}

func (r *Renderer) createBuffers() {
	var v core.Vertex
	stride := int32(unsafe.Sizeof(v))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, r.vertexCapacity*int(stride), nil, gl.STREAM_DRAW)

	// location 0: Position (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Position))))
	// location 1: Normal (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Normal))))
	// location 2: Value (float)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 1, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Value))))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, r.indexCapacity*2, nil, gl.STREAM_DRAW)

	gl.BindVertexArray(0)
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears colour and depth.
func (r *Renderer) BeginFrame(red, green, blue float32) {
	gl.ClearColor(red, green, blue, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Render uploads one batch into the stream buffers and draws it.
func (r *Renderer) Render(indices []uint16, vertices []core.Vertex, mvp math.Mat4) {
	if len(indices) == 0 || len(vertices) == 0 {
		return
	}
	if len(indices) > r.indexCapacity || len(vertices) > r.vertexCapacity {
		r.log.Error("batch exceeds GPU buffers",
			"indices", len(indices),
			"vertices", len(vertices),
			"index_capacity", r.indexCapacity,
			"vertex_capacity", r.vertexCapacity)
		return
	}

	gl.UseProgram(r.program)
	// Mat4 rows are the columns GL expects, so it goes up untransposed.
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, &mvp[0][0])

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*int(unsafe.Sizeof(vertices[0])), gl.Ptr(vertices))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices)*2, gl.Ptr(indices))
	gl.DrawElements(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

func (r *Renderer) ToggleDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteProgram(r.program)
}

// ── shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vert)
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(frag)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		info := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(info))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link: %s", strings.TrimRight(info, "\x00"))
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		info := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(info))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(info, "\x00"))
	}
	return shader, nil
}
