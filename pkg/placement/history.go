package placement

import "github.com/philipparndt/goroom/pkg/geometry"

// CommandKind tags the five reversible mutations
type CommandKind int

const (
	CommandPlace CommandKind = iota
	CommandMove
	CommandRotate
	CommandScale
	CommandDelete
)

// String returns the command name for status output
func (k CommandKind) String() string {
	switch k {
	case CommandPlace:
		return "place"
	case CommandMove:
		return "move"
	case CommandRotate:
		return "rotate"
	case CommandScale:
		return "scale"
	default:
		return "delete"
	}
}

// TransformState is the transform and surface metadata a command needs to
// restore one side of a mutation. It is deliberately not a full object
// snapshot: entry, bounds and base scale never change after creation.
type TransformState struct {
	Position      geometry.Vector3
	Rotation      geometry.Quaternion
	Scale         geometry.Vector3
	SurfaceNormal geometry.Vector3
	HasSurface    bool
	ContactAxis   ContactAxis
}

// CaptureState reads the object's current transform state
func CaptureState(obj *PlacedObject) TransformState {
	return TransformState{
		Position:      obj.Position,
		Rotation:      obj.Rotation,
		Scale:         obj.Scale,
		SurfaceNormal: obj.SurfaceNormal,
		HasSurface:    obj.HasSurface,
		ContactAxis:   obj.ContactAxis,
	}
}

func (s TransformState) applyTo(obj *PlacedObject) {
	obj.Position = s.Position
	obj.Rotation = s.Rotation
	obj.Scale = s.Scale
	obj.SurfaceNormal = s.SurfaceNormal
	obj.HasSurface = s.HasSurface
	obj.ContactAxis = s.ContactAxis
}

// Command is one reversible mutation of a placed object: a tagged variant
// carrying the before/after transform state. Place uses only After,
// Delete only Before; the transform kinds use both.
type Command struct {
	Kind   CommandKind
	Object *PlacedObject
	Before TransformState
	After  TransformState
}

// NewPlaceCommand records adding an object at its current transform
func NewPlaceCommand(obj *PlacedObject) Command {
	return Command{Kind: CommandPlace, Object: obj, After: CaptureState(obj)}
}

// NewMoveCommand records a transform change from before to the object's
// current state
func NewMoveCommand(obj *PlacedObject, before TransformState) Command {
	return Command{Kind: CommandMove, Object: obj, Before: before, After: CaptureState(obj)}
}

// NewRotateCommand records a rotation change from before to the object's
// current state
func NewRotateCommand(obj *PlacedObject, before TransformState) Command {
	return Command{Kind: CommandRotate, Object: obj, Before: before, After: CaptureState(obj)}
}

// NewScaleCommand records a scale change from before to the object's
// current state
func NewScaleCommand(obj *PlacedObject, before TransformState) Command {
	return Command{Kind: CommandScale, Object: obj, Before: before, After: CaptureState(obj)}
}

// NewDeleteCommand records removing the object at its current transform
func NewDeleteCommand(obj *PlacedObject) Command {
	return Command{Kind: CommandDelete, Object: obj, Before: CaptureState(obj)}
}

// DefaultMaxHistory bounds the undo history depth
const DefaultMaxHistory = 50

// CommandStack is the undo/redo history over a scene. Pushing a new
// command clears the redo stack; exceeding the history bound discards the
// oldest undo entry.
type CommandStack struct {
	scene      *Scene
	undo       []Command
	redo       []Command
	maxHistory int
}

// NewCommandStack creates a history for the scene with the given bound;
// maxHistory <= 0 uses DefaultMaxHistory
func NewCommandStack(scene *Scene, maxHistory int) *CommandStack {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &CommandStack{scene: scene, maxHistory: maxHistory}
}

// Execute applies the command and pushes it onto the undo stack
func (s *CommandStack) Execute(cmd Command) {
	s.apply(cmd)
	s.push(cmd)
}

// Record pushes a command whose mutation already happened interactively
// (e.g. at drag end) without re-applying it
func (s *CommandStack) Record(cmd Command) {
	s.push(cmd)
}

// Undo reverts the most recent command. Returns false when the history is
// empty.
func (s *CommandStack) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	cmd := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.revert(cmd)
	s.redo = append(s.redo, cmd)
	return true
}

// Redo re-applies the most recently undone command. Returns false when
// there is nothing to redo.
func (s *CommandStack) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	cmd := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.apply(cmd)
	s.undo = append(s.undo, cmd)
	return true
}

// CanUndo reports whether the undo stack is non-empty
func (s *CommandStack) CanUndo() bool {
	return len(s.undo) > 0
}

// CanRedo reports whether the redo stack is non-empty
func (s *CommandStack) CanRedo() bool {
	return len(s.redo) > 0
}

// UndoDepth returns the number of undoable commands
func (s *CommandStack) UndoDepth() int {
	return len(s.undo)
}

// Reset drops both stacks. Used when a loaded layout replaces the scene:
// old commands reference objects that no longer exist.
func (s *CommandStack) Reset() {
	s.undo = s.undo[:0]
	s.redo = s.redo[:0]
}

func (s *CommandStack) push(cmd Command) {
	s.undo = append(s.undo, cmd)
	if len(s.undo) > s.maxHistory {
		copy(s.undo, s.undo[1:])
		s.undo = s.undo[:len(s.undo)-1]
	}
	s.redo = s.redo[:0]
}

func (s *CommandStack) apply(cmd Command) {
	switch cmd.Kind {
	case CommandPlace:
		cmd.After.applyTo(cmd.Object)
		s.scene.Add(cmd.Object)
	case CommandDelete:
		s.scene.Remove(cmd.Object)
	default:
		cmd.After.applyTo(cmd.Object)
	}
}

func (s *CommandStack) revert(cmd Command) {
	switch cmd.Kind {
	case CommandPlace:
		s.scene.Remove(cmd.Object)
	case CommandDelete:
		cmd.Before.applyTo(cmd.Object)
		s.scene.Add(cmd.Object)
	default:
		cmd.Before.applyTo(cmd.Object)
	}
}
