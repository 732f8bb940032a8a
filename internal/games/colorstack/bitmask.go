package colorstack

import "github.com/vovakirdan/color-stack/internal/engine"

// Physics categories.
const (
	MaskBall     engine.Mask = 0b001
	MaskObstacle engine.Mask = 0b010
	MaskCoin     engine.Mask = 0b100
)

// StackName tags every spawned wall so walls can be found and removed in bulk.
const StackName = "main_stack"

// Role is what a node means to the game. It is carried in the node name.
type Role uint8

const (
	RoleNone Role = iota
	RoleBall
	RoleObstacle
	RoleCoin
)

func (r Role) String() string {
	switch r {
	case RoleBall:
		return "ball"
	case RoleObstacle:
		return "obstacle"
	case RoleCoin:
		return "coin"
	default:
		return ""
	}
}

// RoleOf returns the role of n. Nil and untagged nodes are RoleNone.
func RoleOf(n engine.Node) Role {
	if n == nil {
		return RoleNone
	}
	switch n.Name() {
	case "ball":
		return RoleBall
	case "obstacle":
		return RoleObstacle
	case "coin":
		return RoleCoin
	default:
		return RoleNone
	}
}

// Body returns the physics body for a role, or nil for RoleNone.
func (r Role) Body() *engine.BodySpec {
	switch r {
	case RoleBall:
		return &engine.BodySpec{Category: MaskBall, Contact: MaskObstacle, Collision: MaskObstacle}
	case RoleObstacle:
		return &engine.BodySpec{Category: MaskObstacle, Contact: MaskBall, Collision: MaskBall}
	case RoleCoin:
		return &engine.BodySpec{Category: MaskCoin, Contact: MaskBall, Sensor: true}
	default:
		return nil
	}
}
