package engine

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/color-stack/internal/core"
)

// World is the Scene implementation. It is not safe for concurrent use.
type World struct {
	size      core.Size
	root      *node
	timers    []*timer
	phys      *physics
	onContact func(a, b Node)

	label    string
	labelPos core.Vec
	elapsed  float64
}

// NewWorld creates an empty world of the given size.
func NewWorld(size core.Size) *World {
	w := &World{
		size:     size,
		phys:     newPhysics(),
		labelPos: core.V(size.W/2, size.H/2),
	}
	w.root = newNode(w, NodeSpec{})
	w.root.attached = true
	return w
}

// Size returns the field size.
func (w *World) Size() core.Size { return w.size }

// Elapsed returns the total scene time advanced by Update.
func (w *World) Elapsed() float64 { return w.elapsed }

func (w *World) AddChild(spec NodeSpec) Node {
	return w.root.AddChild(spec)
}

func (w *World) Children() []Node {
	return w.root.Children()
}

func (w *World) ChildrenNamed(name string) []Node {
	var out []Node
	for _, c := range w.root.children {
		if c.spec.Name == name {
			out = append(out, c)
		}
	}
	return out
}

func (w *World) Schedule(interval float64, repeats bool, fn func()) Timer {
	if interval <= 0 {
		panic(fmt.Sprintf("engine: timer interval must be positive, got %v", interval))
	}
	t := &timer{interval: interval, repeats: repeats, fn: fn, valid: true}
	w.timers = append(w.timers, t)
	return t
}

func (w *World) SetContactFunc(fn func(a, b Node)) {
	w.onContact = fn
}

func (w *World) SetLabel(text string)        { w.label = text }
func (w *World) Label() string               { return w.label }
func (w *World) SetLabelPosition(p core.Vec) { w.labelPos = p }

// LabelPosition returns where the label is centred.
func (w *World) LabelPosition() core.Vec { return w.labelPos }

// Update advances the world by dt seconds: timers fire, actions run,
// bodies follow their nodes, the physics space steps and contacts that
// began are delivered. Contacts involving a node removed earlier in the
// same delivery pass are dropped.
func (w *World) Update(dt float64) {
	if dt <= 0 {
		return
	}
	w.elapsed += dt

	w.runTimers(dt)
	w.runActions(dt)
	w.syncBodies()

	for _, c := range w.phys.step(dt) {
		if w.onContact == nil {
			break
		}
		if !c.a.attached || !c.b.attached {
			continue
		}
		w.onContact(c.a, c.b)
	}
}

func (w *World) runTimers(dt float64) {
	// Timers scheduled by a callback start on the next update.
	current := w.timers
	for _, t := range current {
		t.tick(dt)
	}

	kept := w.timers[:0]
	for _, t := range w.timers {
		if t.valid {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(w.timers); i++ {
		w.timers[i] = nil
	}
	w.timers = kept
}

func (w *World) runActions(dt float64) {
	var busy []*node
	w.root.walk(func(n *node) {
		if len(n.actions) > 0 {
			busy = append(busy, n)
		}
	})

	for _, n := range busy {
		if !n.attached {
			continue
		}
		scaled := dt * n.effectiveSpeed()
		if scaled == 0 {
			continue
		}

		running := n.actions
		var finished []*moveAction
		for _, a := range running {
			if a.advance(n, scaled) {
				finished = append(finished, a)
			}
		}
		if len(finished) == 0 {
			continue
		}

		n.actions = without(n.actions, finished)
		for _, a := range finished {
			if a.done != nil {
				a.done()
			}
		}
	}
}

func without(actions, drop []*moveAction) []*moveAction {
	var out []*moveAction
	for _, a := range actions {
		keep := true
		for _, d := range drop {
			if a == d {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, a)
		}
	}
	return out
}

func (w *World) syncBodies() {
	w.root.walk(func(n *node) {
		if n.body == nil {
			return
		}
		p := n.worldPosition()
		n.body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
	})
}

// attach marks a new subtree as part of the scene and registers its bodies.
func (w *World) attach(n *node, group uint) {
	if group == 0 {
		group = w.phys.newGroup()
	}
	n.walk(func(d *node) {
		d.attached = true
		d.group = group
		p := d.worldPosition()
		w.phys.add(d, cp.Vector{X: p.X, Y: p.Y})
	})
}

func (w *World) detach(n *node) {
	n.walk(func(d *node) {
		d.attached = false
		w.phys.remove(d)
	})
}
