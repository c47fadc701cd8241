package component

// Name labels an entity for lookups and debug tooling.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
