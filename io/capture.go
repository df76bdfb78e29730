// Package io records frames produced by the sandbox and writes them out
// for inspection outside the running program.
package io

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"sandbox/core"
	"sandbox/math"
)

var ErrNothingCaptured = errors.New("no depth-tested draws captured")

// Draw is one recorded Render call.
type Draw struct {
	Indices   []uint16
	Vertices  []core.Vertex
	MVP       math.Mat4
	DepthTest bool
}

// Capture is a core.Renderer that keeps copies of every draw call instead
// of rasterising them. It backs headless runs and frame export.
type Capture struct {
	Draws     []Draw
	depthTest bool
}

var _ core.Renderer = (*Capture)(nil)

func NewCapture() *Capture {
	return &Capture{depthTest: true}
}

func (c *Capture) Render(indices []uint16, vertices []core.Vertex, mvp math.Mat4) {
	c.Draws = append(c.Draws, Draw{
		Indices:   append([]uint16(nil), indices...),
		Vertices:  append([]core.Vertex(nil), vertices...),
		MVP:       mvp,
		DepthTest: c.depthTest,
	})
}

func (c *Capture) ToggleDepthTest(enabled bool) {
	c.depthTest = enabled
}

// Reset drops recorded draws, keeping the depth state.
func (c *Capture) Reset() {
	c.Draws = c.Draws[:0]
}

// Triangles counts recorded triangles across all draws.
func (c *Capture) Triangles() int {
	n := 0
	for _, d := range c.Draws {
		n += len(d.Indices) / 3
	}
	return n
}

// ExportGLB writes the depth-tested draws as a binary glTF scene, one
// mesh per draw call. Overlay draws are skipped: their vertices live in
// screen space. Brightness becomes a grey vertex colour.
func (c *Capture) ExportGLB(path string) error {
	doc := gltf.NewDocument()
	for i, d := range c.Draws {
		if !d.DepthTest || len(d.Indices) == 0 {
			continue
		}
		positions := make([][3]float32, len(d.Vertices))
		normals := make([][3]float32, len(d.Vertices))
		colors := make([][3]uint8, len(d.Vertices))
		for j, v := range d.Vertices {
			positions[j] = [3]float32{v.Position.X, v.Position.Y, v.Position.Z}
			normals[j] = [3]float32{v.Normal.X, v.Normal.Y, v.Normal.Z}
			grey := uint8(math.Clamp(v.Value, 0, 1) * 255)
			colors[j] = [3]uint8{grey, grey, grey}
		}

		mesh := &gltf.Mesh{
			Name: fmt.Sprintf("draw%d", i),
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(modeler.WriteIndices(doc, d.Indices)),
				Attributes: map[string]int{
					gltf.POSITION: modeler.WritePosition(doc, positions),
					gltf.NORMAL:   modeler.WriteNormal(doc, normals),
					gltf.COLOR_0:  modeler.WriteColor(doc, colors),
				},
			}},
		}
		doc.Meshes = append(doc.Meshes, mesh)
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: mesh.Name,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}
	if len(doc.Meshes) == 0 {
		return ErrNothingCaptured
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save %q: %w", path, err)
	}
	return nil
}
