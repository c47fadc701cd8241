package system

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/rs/zerolog"

	"github.com/milk9111/hexfield/common"
	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/ecs/component"
)

const (
	explosionGrid      = 4
	explosionSpacing   = 0.06
	particleRadius     = 0.03
	particleMass       = 0.1
	particleSpeed      = 2.0
	scaleJitter        = 0.3
	minExplosionScale  = 0.2
	maxExplosionScale  = 1.4
	particleFadeDelay  = 1.0
	particleFadeLength = 1.0
)

// RotateSystem spins tiles carrying DoRotate half a turn per second and
// removes the component once the half turn is complete.
type RotateSystem struct {
	Step float64
}

func NewRotateSystem(step float64) *RotateSystem {
	return &RotateSystem{Step: step}
}

func (s *RotateSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.DoRotateComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, rot *component.DoRotate, transform *component.Transform) {
			rot.Progress += s.Step * math.Pi
			if rot.Progress >= math.Pi {
				ecs.Remove(w, e, component.DoRotateComponent.Kind())
				transform.Rotation = 0
				return
			}
			transform.Rotation = rot.Progress
		})
}

// PlayerExplosionSystem shakes players that are about to explode and turns
// them into a burst of particles when their timer runs out.
type PlayerExplosionSystem struct {
	Step float64
	rng  *rand.Rand
	log  zerolog.Logger
}

func NewPlayerExplosionSystem(step float64, rng *rand.Rand, logger zerolog.Logger) *PlayerExplosionSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &PlayerExplosionSystem{
		Step: step,
		rng:  rng,
		log:  logger.With().Str("component", "fx").Logger(),
	}
}

func (s *PlayerExplosionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.PlayerExplosionComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, ex *component.PlayerExplosion, transform *component.Transform) {
			ex.TimeLeft -= s.Step
			if ex.TimeLeft <= 0 {
				x, y := transform.X, transform.Y
				w.DestroyRecursive(e)
				n := s.spawnParticles(w, x, y)
				s.log.Info().Stringer("entity", e).Int("particles", n).Msg("player exploded")
				return
			}
			v := common.Clamp(1-ex.TimeLeft, 0, 1) * scaleJitter
			transform.ScaleX = common.Clamp(transform.ScaleX+s.jitter(v), minExplosionScale, maxExplosionScale)
			transform.ScaleY = common.Clamp(transform.ScaleY+s.jitter(v), minExplosionScale, maxExplosionScale)
		})
}

func (s *PlayerExplosionSystem) jitter(v float64) float64 {
	return (s.rng.Float64()*2 - 1) * v
}

func (s *PlayerExplosionSystem) spawnParticles(w *ecs.World, x, y float64) int {
	n := 0
	half := float64(explosionGrid-1) * explosionSpacing / 2
	for gy := 0; gy < explosionGrid; gy++ {
		for gx := 0; gx < explosionGrid; gx++ {
			c := common.Palette[s.rng.IntN(len(common.Palette))]
			e := w.CreateEntity()
			transform := component.NewTransform(x+float64(gx)*explosionSpacing-half, y+float64(gy)*explosionSpacing-half)
			_ = ecs.Add(w, e, component.ParticleTagComponent.Kind(), &component.ParticleTag{})
			_ = ecs.Add(w, e, component.TransformComponent.Kind(), &transform)
			_ = ecs.Add(w, e, component.TintComponent.Kind(), &component.Tint{R: c[0], G: c[1], B: c[2]})
			_ = ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Radius: particleRadius, Elasticity: 1})
			_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
				Mass: particleMass,
				Velocity: cp.Vector{
					X: (s.rng.Float64()*2 - 1) * particleSpeed,
					Y: (s.rng.Float64()*2 - 1) * particleSpeed,
				},
			})
			fade := component.NewFadeOut(particleFadeDelay, particleFadeLength)
			_ = ecs.Add(w, e, component.FadeOutComponent.Kind(), &fade)
			n++
		}
	}
	return n
}

// FadeOutSystem shrinks entities carrying FadeOut and destroys them once
// the fade has finished.
type FadeOutSystem struct {
	Step float64
}

func NewFadeOutSystem(step float64) *FadeOutSystem {
	return &FadeOutSystem{Step: step}
}

func (s *FadeOutSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.FadeOutComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, fade *component.FadeOut, transform *component.Transform) {
			if fade.UntilStart > 0 {
				fade.UntilStart -= s.Step
				return
			}
			if fade.Left <= 0 || fade.Start <= 0 {
				w.DestroyRecursive(e)
				return
			}
			v := fade.Left / fade.Start
			fade.Left -= s.Step
			transform.ScaleX = v
			transform.ScaleY = v
		})
}
