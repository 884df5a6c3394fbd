// Package renderer draws the current mesh with the current camera pose.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/formforge/internal/engine/camera"
	"github.com/Faultbox/formforge/internal/engine/geometry"
	"github.com/Faultbox/formforge/internal/engine/lighting"
	"github.com/Faultbox/formforge/internal/engine/shader"
	"github.com/Faultbox/formforge/internal/logger"
)

const vertexShaderSrc = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uView;
uniform mat4 uProj;

out vec3 vNormal;

void main() {
	vNormal = aNormal;
	gl_Position = uProj * uView * vec4(aPos, 1.0);
}
`

const fragmentShaderSrc = `#version 410 core
in vec3 vNormal;

uniform vec3 uLightDir;
uniform vec3 uAmbient;
uniform vec3 uDiffuse;
uniform vec3 uBaseColor;

out vec4 fragColor;

void main() {
	vec3 n = normalize(vNormal);
	float lambert = max(dot(n, normalize(uLightDir)), 0.0);
	vec3 color = uBaseColor * (uAmbient + uDiffuse * lambert);
	fragColor = vec4(color, 1.0);
}
`

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the GL state for drawing one mesh at a time. The mesh
// buffers are replaced whole whenever the scene swaps its mesh.
type Renderer struct {
	config Config

	program      uint32
	locView      int32
	locProj      int32
	locLightDir  int32
	locAmbient   int32
	locDiffuse   int32
	locBaseColor int32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	rig lighting.Rig
}

// New creates the renderer. Must be called after the OpenGL context
// exists.
func New(cfg Config, rig lighting.Rig) (*Renderer, error) {
	r := &Renderer{config: cfg, rig: rig}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	program, err := shader.CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program
	r.locView = shader.GetUniform(program, "uView")
	r.locProj = shader.GetUniform(program, "uProj")
	r.locLightDir = shader.GetUniform(program, "uLightDir")
	r.locAmbient = shader.GetUniform(program, "uAmbient")
	r.locDiffuse = shader.GetUniform(program, "uDiffuse")
	r.locBaseColor = shader.GetUniform(program, "uBaseColor")

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetMesh uploads a mesh, replacing the previous buffers. Positions and
// normals are interleaved; faces go into the element buffer.
func (r *Renderer) SetMesh(mesh *geometry.Mesh) {
	if mesh == nil || mesh.VertexCount() == 0 {
		r.indexCount = 0
		return
	}

	vertices := make([]float32, 0, mesh.VertexCount()*6)
	for i, p := range mesh.Positions {
		n := mesh.Normals[i]
		vertices = append(vertices, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
	}

	indices := make([]uint32, 0, mesh.FaceCount()*3)
	for _, f := range mesh.Faces {
		indices = append(indices, f[0], f[1], f[2])
	}

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	gl.BindVertexArray(0)

	r.indexCount = int32(len(indices))
}

// Render clears the frame and draws the current mesh from the camera's
// point of view.
func (r *Renderer) Render(cam *camera.Orbit) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.indexCount == 0 {
		return
	}

	aspect := float32(r.config.Width) / float32(r.config.Height)
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(aspect)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.locProj, 1, false, proj.Ptr())
	gl.Uniform3f(r.locLightDir, r.rig.KeyDirection.X, r.rig.KeyDirection.Y, r.rig.KeyDirection.Z)
	gl.Uniform3f(r.locAmbient, r.rig.Ambient[0], r.rig.Ambient[1], r.rig.Ambient[2])
	gl.Uniform3f(r.locDiffuse, r.rig.Diffuse[0], r.rig.Diffuse[1], r.rig.Diffuse[2])
	gl.Uniform3f(r.locBaseColor, 0.8, 0.75, 0.65)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}
