package component

// Tint is a fill colour with channels in [0, 1].
type Tint struct {
	R, G, B float32
}

var TintComponent = NewComponent[Tint]()
