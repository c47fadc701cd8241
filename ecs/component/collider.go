package component

import "github.com/jakecoffman/cp"

// AttachCollider asks the auto collider system to derive a Collider from the
// entity's mesh once that mesh is loaded.
type AttachCollider struct{}

var AttachColliderComponent = NewComponent[AttachCollider]()

// Collider is a shape template. The physics system turns it into a cp shape
// on the entity's body. A positive Radius makes a circle, otherwise Outline
// is used as a convex polygon in local coordinates.
type Collider struct {
	Outline    []cp.Vector
	Radius     float64
	Elasticity float64
	Friction   float64
	Sensor     bool
}

var ColliderComponent = NewComponent[Collider]()
