package component

import "github.com/milk9111/hexfield/hex"

// HexCell records the grid cell an entity occupies. Tiles and the players
// standing on them share a cell.
type HexCell struct {
	Cube hex.Cube
}

var HexCellComponent = NewComponent[HexCell]()
