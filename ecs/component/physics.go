package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data. Body and Shape are filled in
// by the physics system; the remaining fields configure body creation.
type PhysicsBody struct {
	Body      *cp.Body
	Shape     *cp.Shape
	Mass      float64
	Kinematic bool
	// Velocity is applied once, when the body is created.
	Velocity cp.Vector
	Damping  float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
