package renderer

import (
	"errors"
	"fmt"
	"log/slog"

	"sandbox/core"
	"sandbox/math"
	"sandbox/scene"
)

// ErrShapeTooLarge is returned when a shape cannot fit even an empty frame buffer.
var ErrShapeTooLarge = errors.New("shape larger than frame buffer")

// Batcher accumulates transformed shape instances into one frame buffer and
// hands it to the host in as few draw calls as capacity allows. Geometry
// queued under one view-projection is always drawn with that matrix.
type Batcher struct {
	host       core.Renderer
	frame      *scene.Geo
	viewProj   math.Mat4
	depthTest  bool
	generation uint64
	log        *slog.Logger
}

func NewBatcher(host core.Renderer, indexCapacity, vertexCapacity int, log *slog.Logger) *Batcher {
	return &Batcher{
		host:      host,
		frame:     scene.NewGeo(indexCapacity, vertexCapacity),
		viewProj:  math.Mat4Identity(),
		depthTest: true,
		log:       log,
	}
}

// Instance transforms shape's template by model and appends it to the frame
// buffer with a flat per-face normal and the given brightness. When the
// buffer is too full the pending batch is flushed and the append retried
// once; a shape that cannot fit an empty buffer is dropped.
func (b *Batcher) Instance(shape scene.Shape, model math.Mat4, value float32) error {
	tmpl := shape.Template()
	if tmpl == nil {
		return fmt.Errorf("instance shape %d: %w", int(shape), scene.ErrUnknownShape)
	}
	if !b.frame.Fits(len(tmpl.Indices), len(tmpl.Vertices)) {
		b.Flush()
		if !b.frame.Fits(len(tmpl.Indices), len(tmpl.Vertices)) {
			b.log.Warn("shape dropped: larger than frame buffer",
				"shape", shape.String(),
				"indices", len(tmpl.Indices),
				"vertices", len(tmpl.Vertices),
				"index_capacity", b.frame.IndexCapacity(),
				"vertex_capacity", b.frame.VertexCapacity())
			return fmt.Errorf("instance %s: %w", shape, ErrShapeTooLarge)
		}
	}

	// Capacity was checked above, so the appends below cannot fail.
	base := len(b.frame.Vertices)
	for _, v := range tmpl.Vertices {
		_, _ = b.frame.AppendVertex(core.Vertex{
			Position: model.MulPoint(v.Position),
			Value:    value,
		})
	}
	out := b.frame.Vertices[base:]
	for i := 0; i+2 < len(tmpl.Indices); i += 3 {
		ia, ib, ic := tmpl.Indices[i], tmpl.Indices[i+1], tmpl.Indices[i+2]
		pa, pb, pc := out[ia].Position, out[ib].Position, out[ic].Position
		n := pb.Sub(pa).Cross(pc.Sub(pa)).Normalize()
		out[ia].Normal = n
		out[ib].Normal = n
		out[ic].Normal = n
	}
	for _, idx := range tmpl.Indices {
		_ = b.frame.AppendIndex(uint16(base) + idx)
	}
	return nil
}

// Flush issues one draw call for the pending geometry under the bound
// view-projection and empties the buffer. An empty buffer draws nothing.
func (b *Batcher) Flush() {
	if b.frame.Empty() {
		return
	}
	b.host.Render(b.frame.Indices, b.frame.Vertices, b.viewProj)
	b.generation++
	b.log.Debug("batch flushed",
		"generation", b.generation,
		"indices", len(b.frame.Indices),
		"vertices", len(b.frame.Vertices))
	b.frame.Reset()
}

// SetViewProjection flushes anything queued under the previous matrix and
// binds m for subsequent instances.
func (b *Batcher) SetViewProjection(m math.Mat4) {
	b.Flush()
	b.viewProj = m
}

func (b *Batcher) ViewProjection() math.Mat4 {
	return b.viewProj
}

func (b *Batcher) DepthTest() bool {
	return b.depthTest
}

// SetDepthTest flushes pending geometry, then switches host depth testing.
func (b *Batcher) SetDepthTest(enabled bool) {
	b.Flush()
	b.depthTest = enabled
	b.host.ToggleDepthTest(enabled)
}

// Generation counts draw calls issued so far.
func (b *Batcher) Generation() uint64 {
	return b.generation
}

// Pending reports the queued index and vertex counts.
func (b *Batcher) Pending() (indices, vertices int) {
	return len(b.frame.Indices), len(b.frame.Vertices)
}
