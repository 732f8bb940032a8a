package engine

import (
	"github.com/jakecoffman/cp"
)

type contact struct {
	a, b *node
}

// physics wraps a Chipmunk space. All bodies are kinematic: positions come
// from the scene graph and the space only reports overlaps.
type physics struct {
	space     *cp.Space
	pending   []contact
	nextGroup uint
}

func newPhysics() *physics {
	p := &physics{space: cp.NewSpace()}

	// Chipmunk's own category filter needs both directions to agree, while
	// contacts here fire when either direction matches, so every shape
	// accepts every category and the rule is applied in begin.
	h := p.space.NewCollisionHandler(0, 0)
	h.BeginFunc = p.begin
	return p
}

func (p *physics) newGroup() uint {
	p.nextGroup++
	return p.nextGroup
}

func (p *physics) add(n *node, pos cp.Vector) {
	spec := n.spec.Body
	if spec == nil || n.spec.Shape == ShapeNone {
		return
	}

	body := cp.NewKinematicBody()
	body.SetPosition(pos)
	body.UserData = n

	var shape *cp.Shape
	switch n.spec.Shape {
	case ShapeCircle:
		shape = cp.NewCircle(body, n.spec.Radius, cp.Vector{})
	case ShapeRect:
		f := n.spec.Frame
		shape = cp.NewBox2(body, cp.BB{L: f.X, B: f.Y, R: f.MaxX(), T: f.MaxY()}, 0)
	}
	shape.SetSensor(spec.Sensor)
	shape.SetFilter(cp.ShapeFilter{
		Group:      n.group,
		Categories: cp.ALL_CATEGORIES,
		Mask:       cp.ALL_CATEGORIES,
	})
	shape.UserData = n

	p.space.AddBody(body)
	p.space.AddShape(shape)
	n.body, n.shape = body, shape
}

func (p *physics) remove(n *node) {
	if n.shape != nil && p.space.ContainsShape(n.shape) {
		p.space.RemoveShape(n.shape)
	}
	if n.body != nil && p.space.ContainsBody(n.body) {
		p.space.RemoveBody(n.body)
	}
	n.body, n.shape = nil, nil
}

func (p *physics) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	sa, sb := arb.Shapes()
	a, _ := sa.UserData.(*node)
	b, _ := sb.UserData.(*node)
	if a == nil || b == nil || a.spec.Body == nil || b.spec.Body == nil {
		return false
	}
	ba, bb := a.spec.Body, b.spec.Body

	if ba.Category&bb.Contact != 0 || bb.Category&ba.Contact != 0 {
		p.pending = append(p.pending, contact{a: a, b: b})
	}
	return ba.Category&bb.Collision != 0 || bb.Category&ba.Collision != 0
}

// step runs the space and returns the contacts that began during it.
func (p *physics) step(dt float64) []contact {
	p.pending = p.pending[:0]
	p.space.Step(dt)
	out := make([]contact, len(p.pending))
	copy(out, p.pending)
	return out
}
