package system

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/milk9111/hexfield/asset"
	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/ecs/component"
	"github.com/milk9111/hexfield/hex"
)

func TestSpawnField(t *testing.T) {
	w := ecs.NewWorld()
	store := asset.NewStore(zerolog.Nop())
	tiles, players := SpawnField(w, store, FieldOptions{Size: 11, SpinCenter: true}, zerolog.Nop())
	if tiles != 121 {
		t.Fatalf("expected 121 tiles, got %d", tiles)
	}
	want := 0
	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			if HasPlayer(x, y) {
				want++
			}
		}
	}
	if players != want || ecs.Count(w, component.PlayerTagComponent.Kind()) != want {
		t.Fatalf("expected %d players, got %d", want, players)
	}
	if got := ecs.Count(w, component.DoRotateComponent.Kind()); got != 1 {
		t.Fatalf("expected the centre tile to spin, got %d spinning", got)
	}
}

func TestHasPlayer(t *testing.T) {
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{1, 0, false},
		{0, 1, false},
		{1, 1, true},
		{2, 2, true},
		{3, 0, false},
	}
	for _, tc := range tests {
		if got := HasPlayer(tc.x, tc.y); got != tc.want {
			t.Fatalf("HasPlayer(%d,%d) = %v want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestPickTriggersExplosion(t *testing.T) {
	w := ecs.NewWorld()
	store := asset.NewStore(zerolog.Nop())
	SpawnField(w, store, FieldOptions{Size: 3}, zerolog.Nop())
	NewPlayerSpawnSystem().Update(w)

	view := &View{OriginX: 100, OriginY: 50, Scale: 40}
	cell := hex.FromOffset(0, 0)
	fx, fy := cell.ToScreen()
	sx, sy := view.ToScreen(fx, fy)

	clicks := 0
	click := func() (int, int, bool) {
		clicks++
		return int(sx), int(sy), true
	}
	sys := NewPickingSystem(view, click, zerolog.Nop())
	sys.Update(w)

	player, ok := findOnCell(w, component.PlayerTagComponent.Kind(), cell)
	if !ok {
		t.Fatal("no player on the clicked cell")
	}
	ex, ok := ecs.Get(w, player, component.PlayerExplosionComponent.Kind())
	if !ok || ex.TimeLeft != 1 {
		t.Fatalf("expected explosion with 1s left, got %+v ok=%v", ex, ok)
	}
	tile, _ := findOnCell(w, component.TileTagComponent.Kind(), cell)
	if !ecs.Has(w, tile, component.DoRotateComponent.Kind()) {
		t.Fatal("clicked tile should rotate")
	}

	// a second click while the tile is still rotating is ignored
	ex.TimeLeft = 0.5
	sys.Update(w)
	if ex.TimeLeft != 0.5 {
		t.Fatal("explosion restarted by a click on a rotating tile")
	}

	sys.SetBlocked(func(int, int) bool { return true })
	ecs.Remove(w, tile, component.DoRotateComponent.Kind())
	sys.Update(w)
	if ecs.Has(w, tile, component.DoRotateComponent.Kind()) {
		t.Fatal("blocked click reached the field")
	}
	if clicks != 3 {
		t.Fatalf("expected 3 polls, got %d", clicks)
	}
}

func TestPickEmptyCell(t *testing.T) {
	w := ecs.NewWorld()
	store := asset.NewStore(zerolog.Nop())
	SpawnField(w, store, FieldOptions{Size: 3}, zerolog.Nop())
	sys := NewPickingSystem(&View{Scale: 1}, func() (int, int, bool) { return 0, 0, false }, zerolog.Nop())

	if sys.Pick(w, hex.FromOffset(7, 7)) {
		t.Fatal("pick outside the field hit a tile")
	}
	// tile without a player still rotates
	cell := hex.FromOffset(1, 0)
	if !sys.Pick(w, cell) {
		t.Fatal("expected a tile at (1,0)")
	}
	if ecs.Count(w, component.PlayerExplosionComponent.Kind()) != 0 {
		t.Fatal("explosion on a cell without a player")
	}
}

func TestPlayerSpawnSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	cube := hex.FromOffset(3, 1)
	_ = ecs.Add(w, e, component.HexCellComponent.Kind(), &component.HexCell{Cube: cube})
	_ = ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})

	sys := NewPlayerSpawnSystem()
	sys.Update(w)

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatal("player has no transform")
	}
	x, y := cube.ToScreen()
	if tr.X != x || tr.Y != y {
		t.Fatalf("transform (%v,%v) want (%v,%v)", tr.X, tr.Y, x, y)
	}
	if !ecs.Has(w, e, component.ColliderComponent.Kind()) || !ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
		t.Fatal("player missing collider or body")
	}

	tr.X = 42
	sys.Update(w)
	if tr.X != 42 {
		t.Fatal("player respawned on a later tick")
	}
}
