package asset

import "github.com/milk9111/hexfield/ecs/component"

// MeshRef ties an entity to a mesh in the Store.
type MeshRef struct {
	Handle Handle
}

var MeshRefComponent = component.NewComponent[MeshRef]()
