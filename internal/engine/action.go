package engine

type moveAction struct {
	move    MoveBy
	elapsed float64
	done    func()
}

// advance moves n by the part of the action covered in dt seconds and
// reports whether the action has finished.
func (a *moveAction) advance(n *node, dt float64) bool {
	if a.move.Duration <= 0 {
		n.pos.X += a.move.DX
		n.pos.Y += a.move.DY
		return true
	}

	before := a.fraction()
	a.elapsed += dt
	after := a.fraction()

	step := after - before
	n.pos.X += a.move.DX * step
	n.pos.Y += a.move.DY * step
	return after >= 1
}

func (a *moveAction) fraction() float64 {
	f := a.elapsed / a.move.Duration
	if f > 1 {
		return 1
	}
	return f
}
