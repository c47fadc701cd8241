package component

// DoRotate spins a tile half a turn. Progress is in radians.
type DoRotate struct {
	Progress float64
}

var DoRotateComponent = NewComponent[DoRotate]()

// PlayerExplosion counts down to a player bursting into particles.
type PlayerExplosion struct {
	TimeLeft float64
}

var PlayerExplosionComponent = NewComponent[PlayerExplosion]()

// FadeOut waits UntilStart seconds, then shrinks the entity over Start
// seconds and destroys it.
type FadeOut struct {
	UntilStart float64
	Left       float64
	Start      float64
}

func NewFadeOut(untilStart, fadeTime float64) FadeOut {
	return FadeOut{UntilStart: untilStart, Left: fadeTime, Start: fadeTime}
}

var FadeOutComponent = NewComponent[FadeOut]()
