package component

type TileTag struct{}

var TileTagComponent = NewComponent[TileTag]()

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// ParticleTag marks explosion debris.
type ParticleTag struct{}

var ParticleTagComponent = NewComponent[ParticleTag]()
