// Package engine is a small deterministic scene graph for arcade games.
//
// A World holds a tree of nodes in world units (origin bottom-left, y up).
// Nodes can carry a physics body described by three bitmasks, run timed
// move actions, and be grouped under parent nodes. Repeating timers and
// contact callbacks are delivered from World.Update on the caller's
// goroutine; nothing in this package starts goroutines.
//
// Games depend on the Scene, Node and Timer interfaces only. World is the
// implementation used by the terminal and desktop hosts.
package engine

import "github.com/vovakirdan/color-stack/internal/core"

// Mask is a physics category bitmask.
type Mask uint32

// BodySpec describes a physics body.
//
// Two bodies report a contact when either one's Category intersects the
// other's Contact mask. Collision is kept for parity with engines that
// resolve impulses; bodies here are kinematic so it never pushes anything.
type BodySpec struct {
	Category  Mask
	Contact   Mask
	Collision Mask
	Sensor    bool
}

// ShapeKind selects the geometry of a node.
type ShapeKind uint8

const (
	ShapeNone ShapeKind = iota // group node, nothing drawn
	ShapeCircle
	ShapeRect
)

// NodeSpec is the blueprint passed to AddChild.
type NodeSpec struct {
	Name     string
	Shape    ShapeKind
	Radius   float64    // ShapeCircle
	Frame    core.RectF // ShapeRect, relative to the node position
	Position core.Vec   // relative to the parent
	Color    core.Color
	Glyph    rune // terminal rune; zero picks a default for the shape
	Z        int  // draw order, higher on top
	Body     *BodySpec
}

// MoveBy translates a node by (DX, DY) over Duration seconds, linearly.
type MoveBy struct {
	DX, DY   float64
	Duration float64
}

// Node is an element of the scene tree.
type Node interface {
	Name() string
	Color() core.Color
	// Position is relative to the parent.
	Position() core.Vec
	SetPosition(p core.Vec)
	AddChild(spec NodeSpec) Node
	Children() []Node
	// Parent returns nil for nodes added directly to the scene.
	Parent() Node
	// Run starts an action. done, if non-nil, runs once when the action
	// completes. Removed actions never complete.
	Run(a MoveBy, done func())
	RemoveAllActions()
	HasActions() bool
	// SetSpeed scales the action clock of the node and its descendants.
	SetSpeed(s float64)
	Speed() float64
	RemoveFromParent()
	// InScene reports whether the node is attached to a scene.
	InScene() bool
}

// Timer is a scheduled callback.
type Timer interface {
	Invalidate()
	Valid() bool
}

// Scene is the surface games drive.
type Scene interface {
	Size() core.Size
	AddChild(spec NodeSpec) Node
	Children() []Node
	// ChildrenNamed returns the direct children with the given name.
	ChildrenNamed(name string) []Node
	// Schedule runs fn every interval seconds of scene time, or once if
	// repeats is false. The first call happens one interval from now.
	Schedule(interval float64, repeats bool, fn func()) Timer
	// SetContactFunc installs the contact callback. It is called after the
	// physics step, once per pair per overlap episode.
	SetContactFunc(fn func(a, b Node))
	SetLabel(text string)
	Label() string
	SetLabelPosition(p core.Vec)
}
