// Package editor is the sandbox simulation context: it owns the camera,
// world, batcher and player state, consumes host input events and turns
// each frame step into draw calls.
package editor

import (
	"errors"
	"log/slog"

	"sandbox/collision"
	"sandbox/core"
	"sandbox/math"
	"sandbox/renderer"
	"sandbox/scene"
)

const historyDepth = 100

// Brightness values handed to the batcher.
const (
	valueTerrain = 0.45
	valueObject  = 0.75
	valueFacing  = 1.0
	valueMarker  = 1.0
)

const markerScale = 0.06

// Sandbox is the simulation context. It is driven from one goroutine: the
// host delivers events and calls Step once per frame.
type Sandbox struct {
	Camera    *scene.Camera
	World     *scene.World
	Batcher   *renderer.Batcher
	Inventory *Inventory
	Input     *InputState
	History   *History
	Selection Selection

	cfg    core.Config
	log    *slog.Logger
	width  int
	height int
	frames uint64
	culled int
}

var _ core.EventHandler = (*Sandbox)(nil)

func New(cfg core.Config, host core.Renderer, log *slog.Logger) *Sandbox {
	s := &Sandbox{
		Camera:    scene.NewCamera(cfg.Camera.FOV, float32(cfg.Window.Width)/float32(cfg.Window.Height)),
		World:     scene.NewWorld(cfg.World.Capacity),
		Batcher:   renderer.NewBatcher(host, cfg.Batch.IndexCapacity, cfg.Batch.VertexCapacity, log),
		Inventory: NewInventory(scene.ItemBlock, scene.ItemPole, scene.ItemWood),
		Input:     NewInputState(),
		History:   NewHistory(historyDepth),
		cfg:       cfg,
		log:       log,
		width:     cfg.Window.Width,
		height:    cfg.Window.Height,
	}
	s.Selection.Clear()
	return s
}

// Initialize resets the player and builds the starting world: an
// unbreakable floor under layer 0 and a few breakable objects on it.
func (s *Sandbox) Initialize() error {
	s.Camera.Position = math.NewVec3(s.cfg.Camera.StartX, s.cfg.Camera.StartY, s.cfg.Camera.StartZ)
	s.Camera.Rotation = math.Vec3Zero
	s.Selection.Clear()
	s.History.Clear()

	for x := -5; x < 5; x++ {
		for z := -5; z < 5; z++ {
			if err := s.place(scene.Object{
				Shape:       scene.ShapeCube,
				Position:    math.NewVec3(float32(x), -1, float32(z)),
				Scale:       math.Vec3One,
				Unbreakable: true,
			}); err != nil {
				return err
			}
		}
	}

	starters := []scene.Object{
		{Shape: scene.ShapeCube, DropItem: scene.ItemBlock, Position: math.NewVec3(2, 0, 3)},
		{Shape: scene.ShapeCube, DropItem: scene.ItemBlock, Position: math.NewVec3(-2, 0, 3)},
		{Shape: scene.ShapeCube, DropItem: scene.ItemBlock, Position: math.NewVec3(-2, 1, 3)},
		{Shape: scene.ShapeCylinder, DropItem: scene.ItemPole, Position: math.NewVec3(3, 0, -2)},
		{Shape: scene.ShapeCylinder, DropItem: scene.ItemWood, Position: math.NewVec3(-3, 0, -3), Rotation: math.NewVec3(0, 0.4, 0)},
	}
	for _, o := range starters {
		o.Scale = math.Vec3One
		if err := s.place(o); err != nil {
			return err
		}
	}

	if err := s.Inventory.Add(scene.ItemBlock, 8); err != nil {
		return err
	}
	if err := s.Inventory.Add(scene.ItemPole, 2); err != nil {
		return err
	}
	s.log.Info("world initialized",
		"objects", s.World.Count(),
		"capacity", s.World.Capacity(),
		"position", s.Camera.Position)
	return nil
}

func (s *Sandbox) place(o scene.Object) error {
	_, err := s.World.Place(o)
	return err
}

// Eye is the camera position; Foot is the point the player stands on.
func (s *Sandbox) Eye() math.Vec3 { return s.Camera.Position }
func (s *Sandbox) Foot() math.Vec3 {
	return s.Camera.Position.Sub(math.Vec3{Y: s.cfg.Camera.EyeHeight})
}

// Step advances one frame of dt seconds and draws it.
func (s *Sandbox) Step(dt float32) {
	s.handleShortcuts()
	s.handleMovement(dt)
	s.Selection.Update(s.World, s.Camera)
	s.handleActions()
	s.render()
	s.Input.EndFrame()
	s.frames++
}

func (s *Sandbox) Frames() uint64 { return s.frames }

// Culled is the number of objects skipped as outside the view last frame.
func (s *Sandbox) Culled() int { return s.culled }

func (s *Sandbox) handleShortcuts() {
	for i, k := range []Key{KeySlot1, KeySlot2, KeySlot3} {
		if s.Input.IsKeyPressed(k) {
			if err := s.Inventory.Select(i); err != nil {
				s.log.Debug("slot select ignored", "slot", i, "err", err)
			}
		}
	}
	if s.Input.IsKeyPressed(KeyUndo) {
		if cmd, err := s.History.Undo(); err != nil {
			s.log.Debug("undo failed", "err", err)
		} else {
			s.log.Info("undo", "command", cmd.Description())
		}
	}
	if s.Input.IsKeyPressed(KeyRedo) {
		if cmd, err := s.History.Redo(); err != nil {
			s.log.Debug("redo failed", "err", err)
		} else {
			s.log.Info("redo", "command", cmd.Description())
		}
	}
}

// handleMovement turns the camera by the accumulated mouse motion, then
// moves it by the held keys, resolving the horizontal and vertical parts
// of the move against the world separately so walls can be slid along.
func (s *Sandbox) handleMovement(dt float32) {
	look := s.cfg.Camera.LookSpeed
	s.Camera.Move(math.Vec3{X: s.Input.MouseDY * look, Y: -s.Input.MouseDX * look}, math.Vec3Zero)

	local := math.Vec3{
		X: s.Input.Axis(KeyLeft, KeyRight),
		Y: s.Input.Axis(KeyUp, KeyDown),
		Z: s.Input.Axis(KeyForward, KeyBack),
	}
	if local == math.Vec3Zero {
		return
	}
	delta := s.Camera.Displacement(local.Mul(s.cfg.Camera.MoveSpeed * dt))

	eyeOffset := s.Eye().Sub(s.Foot())
	foot := collision.ResolveMotion(s.World, s.Foot(), math.Vec3{X: delta.X, Z: delta.Z})
	foot = collision.ResolveMotion(s.World, foot, math.Vec3{Y: delta.Y})
	s.Camera.Position = foot.Add(eyeOffset)
}

func (s *Sandbox) handleActions() {
	if s.Input.IsButtonPressed(ButtonBreak) {
		if err := s.Break(); err != nil {
			s.log.Debug("break rejected", "err", err)
		}
	}
	if s.Input.IsButtonPressed(ButtonPlace) {
		if err := s.Place(); err != nil {
			s.log.Debug("place rejected", "err", err)
		}
	}
}

var ErrNothingFacing = errors.New("no object under crosshair")

// Break removes the facing object and credits its drop.
func (s *Sandbox) Break() error {
	if !s.Selection.HasFacing {
		return ErrNothingFacing
	}
	cmd := NewBreakCommand(s.World, s.Inventory, s.Selection.Facing.Index)
	cmd.Check = s.checkRestore
	if err := s.History.Do(cmd); err != nil {
		return err
	}
	s.log.Info("object broken", "slot", s.Selection.Facing.Index, "item", s.World.At(s.Selection.Facing.Index).DropItem)
	s.Selection.Update(s.World, s.Camera)
	return nil
}

// Place puts the selected item into the world at PlacementTarget.
func (s *Sandbox) Place() error {
	item := s.Inventory.Selected()
	shape, ok := item.PlacedShape()
	if !ok {
		return ErrNoSelected
	}
	target := PlacementTarget(s.World, s.Camera, s.Selection, shape)
	target.DropItem = item
	if err := CheckPlacement(s.World, target, s.Eye(), s.Foot()); err != nil {
		return err
	}
	cmd := NewPlaceCommand(s.World, s.Inventory, target, item)
	cmd.Check = s.checkRestore
	if err := s.History.Do(cmd); err != nil {
		return err
	}
	s.log.Info("object placed", "slot", cmd.Slot, "item", item, "position", target.Position)
	s.Selection.Update(s.World, s.Camera)
	return nil
}

// checkRestore refuses to bring an object back into an occupied cell or
// around the player's current position.
func (s *Sandbox) checkRestore(o scene.Object) error {
	return CheckPlacement(s.World, o, s.Eye(), s.Foot())
}

// render batches the visible world, the facing highlight and hit marker, then the
// overlay. Depth testing is left enabled for the next frame.
func (s *Sandbox) render() {
	vp := s.Camera.ViewProjection()
	s.Batcher.SetViewProjection(vp)
	frustum := scene.FrustumFromViewProjection(vp)

	culled := 0
	s.World.Each(func(i int, o *scene.Object) {
		if !o.Bounds().IntersectsFrustum(&frustum) {
			culled++
			return
		}
		value := float32(valueObject)
		switch {
		case s.Selection.IsFacing(i):
			value = valueFacing
		case o.Unbreakable:
			value = valueTerrain
		}
		s.instance(o.Shape, o.Model(), value)
	})
	s.culled = culled
	if s.Selection.HasFacing {
		marker := math.Mat4TRS(s.Selection.Facing.Point, math.Vec3Zero,
			math.NewVec3(markerScale, markerScale, markerScale))
		s.instance(scene.ShapeCube, marker, valueMarker)
	}

	s.drawOverlay()
	s.Batcher.Flush()
	s.Batcher.SetDepthTest(true)
}

func (s *Sandbox) instance(shape scene.Shape, model math.Mat4, value float32) {
	if err := s.Batcher.Instance(shape, model, value); err != nil {
		s.log.Debug("instance dropped", "shape", shape.String(), "err", err)
	}
}

// OnKey records a key transition; unknown codes are ignored.
func (s *Sandbox) OnKey(down bool, code string) {
	s.Input.SetKey(down, code)
}

func (s *Sandbox) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.Camera.Resize(width, height)
	s.log.Debug("resized", "width", width, "height", height)
}

func (s *Sandbox) OnMouseMove(dx, dy float32) {
	s.Input.AddMouseMotion(dx, dy)
}

func (s *Sandbox) OnMouseButton(down bool, button int) {
	s.Input.SetButton(down, button)
}
