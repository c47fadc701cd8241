package system

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/milk9111/hexfield/asset"
	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/ecs/component"
	"github.com/milk9111/hexfield/hex"
)

// TileMeshName is the asset name of the shared hex tile outline.
const TileMeshName = "hextile"

// FieldOptions describes the initial board.
type FieldOptions struct {
	Size       int
	SpinCenter bool
}

// HasPlayer reports whether the odd-r cell (x, y) starts with a player.
func HasPlayer(x, y int) bool {
	return (x%2+y)%2 == 0
}

// SpawnField creates a Size x Size odd-r field of tiles and places players on
// every cell HasPlayer selects. Tiles get their colliders from the tile mesh
// once it is loaded. It returns the number of tiles and players spawned.
func SpawnField(w *ecs.World, assets *asset.Store, opts FieldOptions, logger zerolog.Logger) (tiles, players int) {
	mesh := assets.Load(TileMeshName, func() (*asset.Mesh, error) {
		return asset.HexTileMesh(1, 1)
	})
	center := opts.Size / 2
	for y := 0; y < opts.Size; y++ {
		for x := 0; x < opts.Size; x++ {
			cube := hex.FromOffset(float64(x), float64(y))
			px, py := cube.ToScreen()

			tile := w.CreateEntity()
			transform := component.NewTransform(px, py)
			_ = ecs.Add(w, tile, component.NameComponent.Kind(), &component.Name{Value: fmt.Sprintf("tile.%d.%d", x, y)})
			_ = ecs.Add(w, tile, component.TileTagComponent.Kind(), &component.TileTag{})
			_ = ecs.Add(w, tile, component.HexCellComponent.Kind(), &component.HexCell{Cube: cube})
			_ = ecs.Add(w, tile, component.TransformComponent.Kind(), &transform)
			_ = ecs.Add(w, tile, asset.MeshRefComponent.Kind(), &asset.MeshRef{Handle: mesh})
			_ = ecs.Add(w, tile, component.AttachColliderComponent.Kind(), &component.AttachCollider{})
			_ = ecs.Add(w, tile, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Kinematic: true})
			if opts.SpinCenter && x == center && y == center {
				_ = ecs.Add(w, tile, component.DoRotateComponent.Kind(), &component.DoRotate{})
			}
			tiles++

			if HasPlayer(x, y) {
				player := w.CreateEntity()
				_ = ecs.Add(w, player, component.NameComponent.Kind(), &component.Name{Value: fmt.Sprintf("player.%d.%d", x, y)})
				_ = ecs.Add(w, player, component.HexCellComponent.Kind(), &component.HexCell{Cube: cube})
				_ = ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
				players++
			}
		}
	}
	logger.Info().Int("size", opts.Size).Int("tiles", tiles).Int("players", players).Msg("field spawned")
	return tiles, players
}
