package colorstack

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Score    int
	BallY    float64
	Stacks   int
	Blocks   int // blocks still attached, collected coins excluded
	Duration float64
	Paused   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Phase:    g.ctrl.State().Phase,
		Score:    g.ctrl.Score(),
		BallY:    g.ctrl.Ball().Position().Y,
		Duration: g.ctrl.Duration(),
		Paused:   g.paused,
	}
	for _, s := range g.world.ChildrenNamed(StackName) {
		snap.Stacks++
		snap.Blocks += len(s.Children())
	}
	return snap
}
