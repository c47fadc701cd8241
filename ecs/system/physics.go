package system

import (
	"github.com/jakecoffman/cp"
	"github.com/rs/zerolog"

	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/ecs/component"
)

// PhysicsOptions configures the cp space. Bounds is the field rectangle in
// field units; dynamic bodies that leave it by more than Margin are
// destroyed.
type PhysicsOptions struct {
	Iterations int
	Damping    float64
	Bounds     cp.BB
	Margin     float64
	Step       float64
}

// PhysicsSystem mirrors entities carrying PhysicsBody, Collider and Transform
// into a zero-gravity cp space. Kinematic bodies follow their Transform;
// dynamic bodies write their simulated position back into it.
type PhysicsSystem struct {
	space    *cp.Space
	opts     PhysicsOptions
	entities map[ecs.Entity]*bodyInfo
	log      zerolog.Logger
}

type bodyInfo struct {
	body      *cp.Body
	shape     *cp.Shape
	kinematic bool
}

func NewPhysicsSystem(opts PhysicsOptions, logger zerolog.Logger) *PhysicsSystem {
	if opts.Iterations <= 0 {
		opts.Iterations = 10
	}
	if opts.Step <= 0 {
		opts.Step = DefaultStep
	}
	space := cp.NewSpace()
	space.Iterations = uint(opts.Iterations)
	space.SetGravity(cp.Vector{})
	if opts.Damping > 0 && opts.Damping <= 1 {
		space.SetDamping(opts.Damping)
	}
	return &PhysicsSystem{
		space:    space,
		opts:     opts,
		entities: make(map[ecs.Entity]*bodyInfo),
		log:      logger.With().Str("component", "physics").Logger(),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// BodyCount returns the number of bodies mirrored into the space.
func (ps *PhysicsSystem) BodyCount() int {
	if ps == nil {
		return 0
	}
	return len(ps.entities)
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.space.Step(ps.opts.Step)
	ps.syncTransforms(w)
	ps.despawnOutOfBounds(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach3(w, component.PhysicsBodyComponent.Kind(), component.ColliderComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, bodyComp *component.PhysicsBody, col *component.Collider, transform *component.Transform) {
			info := ps.entities[e]
			if info == nil {
				info = ps.createBodyInfo(transform, bodyComp, col)
				if info == nil {
					return
				}
				ps.entities[e] = info
				bodyComp.Body = info.body
				bodyComp.Shape = info.shape
			}
			if info.kinematic {
				info.body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
				info.body.SetAngle(transform.Rotation)
			}
		})
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, col *component.Collider) *bodyInfo {
	if col.Radius <= 0 && len(col.Outline) < 3 {
		ps.log.Warn().Msg("collider has neither radius nor outline")
		return nil
	}

	var body *cp.Body
	if bodyComp.Kinematic {
		body = cp.NewKinematicBody()
	} else {
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		var moment float64
		if col.Radius > 0 {
			moment = cp.MomentForCircle(mass, 0, col.Radius, cp.Vector{})
		} else {
			moment = cp.MomentForPoly(mass, len(col.Outline), col.Outline, cp.Vector{}, 0)
		}
		body = cp.NewBody(mass, moment)
	}
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	if !bodyComp.Kinematic {
		body.SetVelocityVector(bodyComp.Velocity)
	}

	var shape *cp.Shape
	if col.Radius > 0 {
		shape = cp.NewCircle(body, col.Radius, cp.Vector{})
	} else {
		shape = cp.NewPolyShape(body, len(col.Outline), col.Outline, cp.NewTransformIdentity(), 0)
	}
	shape.SetFriction(col.Friction)
	shape.SetElasticity(col.Elasticity)
	shape.SetSensor(col.Sensor)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape, kinematic: bodyComp.Kinematic}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.kinematic {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = info.body.Angle()
	}
}

func (ps *PhysicsSystem) despawnOutOfBounds(w *ecs.World) {
	b := ps.opts.Bounds
	if b.R <= b.L || b.T <= b.B {
		return
	}
	m := ps.opts.Margin
	for _, e := range w.Entities() {
		info, ok := ps.entities[e]
		if !ok || info.kinematic {
			continue
		}
		pos := info.body.Position()
		if pos.X < b.L-m || pos.X > b.R+m || pos.Y < b.B-m || pos.Y > b.T+m {
			ps.log.Debug().Stringer("entity", e).Float64("x", pos.X).Float64("y", pos.Y).Msg("body left the field")
			w.DestroyRecursive(e)
		}
	}
	ps.cleanupEntities(w)
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) && ecs.Has(w, e, component.ColliderComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
