package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData is an entity's body in the broadphase space. Its rectangle is
// derived from Position each tick and never drives movement.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton broadphase grid shared by every collidable entity.
var Space = donburi.NewComponentType[resolv.Space]()

// CenterOn moves the body so its centre sits on p. The space is offset from
// the arena by margin on every side.
func (o *ObjectData) CenterOn(p math.Vec2, margin float64) {
	o.X = p.X - o.W/2 + margin
	o.Y = p.Y - o.H/2 + margin
	o.Update()
}
