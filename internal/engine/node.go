package engine

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/color-stack/internal/core"
)

type node struct {
	world    *World
	spec     NodeSpec
	pos      core.Vec
	parent   *node
	children []*node
	actions  []*moveAction
	speed    float64
	attached bool

	body  *cp.Body
	shape *cp.Shape
	group uint
}

func newNode(w *World, spec NodeSpec) *node {
	return &node{
		world: w,
		spec:  spec,
		pos:   spec.Position,
		speed: 1,
	}
}

func (n *node) Name() string       { return n.spec.Name }
func (n *node) Color() core.Color  { return n.spec.Color }
func (n *node) Position() core.Vec { return n.pos }

func (n *node) SetPosition(p core.Vec) {
	n.pos = p
}

func (n *node) AddChild(spec NodeSpec) Node {
	child := newNode(n.world, spec)
	n.children = append(n.children, child)
	child.parent = n
	if n.attached {
		n.world.attach(child, n.groupFor())
	}
	return child
}

func (n *node) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *node) Parent() Node {
	if n.parent == nil || n.parent == n.world.root {
		return nil
	}
	return n.parent
}

func (n *node) Run(a MoveBy, done func()) {
	n.actions = append(n.actions, &moveAction{move: a, done: done})
}

func (n *node) RemoveAllActions() {
	n.actions = nil
}

func (n *node) HasActions() bool {
	return len(n.actions) > 0
}

func (n *node) SetSpeed(s float64) {
	if s < 0 {
		s = 0
	}
	n.speed = s
}

func (n *node) Speed() float64 {
	return n.speed
}

func (n *node) RemoveFromParent() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
	if n.attached {
		n.world.detach(n)
	}
}

func (n *node) InScene() bool {
	return n.attached
}

// groupFor returns the physics group children of n inherit. Every subtree
// hanging off the root shares one group, so siblings inside a composite
// node never touch each other.
func (n *node) groupFor() uint {
	if n == n.world.root {
		return 0
	}
	return n.group
}

// worldPosition sums positions up to the root.
func (n *node) worldPosition() core.Vec {
	p := n.pos
	for a := n.parent; a != nil; a = a.parent {
		p = p.Add(a.pos)
	}
	return p
}

// effectiveSpeed multiplies speeds up to the root.
func (n *node) effectiveSpeed() float64 {
	s := n.speed
	for a := n.parent; a != nil; a = a.parent {
		s *= a.speed
	}
	return s
}

func (n *node) walk(fn func(*node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}
