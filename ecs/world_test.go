package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/hexfield/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for dead entity")
				}
				if w.EntityCount() != c.create-1 {
					t.Fatalf("expected %d live entities, got %d", c.create-1, w.EntityCount())
				}
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := w.CreateEntity()
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	if fresh.id() != old.id() {
		t.Fatalf("expected id reuse, got %v after %v", fresh, old)
	}
	if fresh == old {
		t.Fatalf("recycled entity kept its generation: %v", fresh)
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("recycled entity inherited a component")
	}
	if _, ok := Get(w, old, h.Kind()); ok {
		t.Fatalf("stale handle still resolves")
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if got := Query(w, h2.Kind()); len(got) != 2 || got[0] != e1 {
					t.Fatalf("expected [e1 e2], got %v", got)
				}
				if Count(w, h2.Kind()) != 2 {
					t.Fatalf("expected count 2")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
		{
			name: "replace_keeps_single_entry",
			setup: func() error {
				if err := Add(w, e2, h1.Kind(), intPtr(1)); err != nil {
					return err
				}
				return Add(w, e2, h1.Kind(), intPtr(2))
			},
			check: func(t *testing.T) {
				v, _ := Get(w, e2, h1.Kind())
				if *v != 2 || Count(w, h1.Kind()) != 1 {
					t.Fatalf("expected single replaced value, got %d count=%d", *v, Count(w, h1.Kind()))
				}
			},
			teardown: func() bool { return Remove(w, e2, h1.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	alive := w.CreateEntity()
	dead := w.CreateEntity()
	w.DestroyEntity(dead)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"dead_entity", Add(w, dead, h.Kind(), intPtr(1)), component.ErrEntityNotAlive},
		{"nil_value", Add(w, alive, h.Kind(), nil), component.ErrNilComponent},
		{"zero_kind", Add(w, alive, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.want) {
				t.Fatalf("got %v want %v", tc.err, tc.want)
			}
		})
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		ents = append(ents, e)
		// destroying a later entity mid-iteration must not visit it
		if e == e1 {
			w.DestroyEntity(e3)
		}
	})
	if len(ents) != 1 || ents[0] != e1 {
		t.Fatalf("expected only e1, got %v (e2=%v)", ents, e2)
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := w.CreateEntity()
				e2 := w.CreateEntity()
				e3 := w.CreateEntity()
				e4 := w.CreateEntity()

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				for _, add := range []struct {
					e    Entity
					kind component.ComponentKind[int]
					v    int
				}{
					{e1, ka, 1}, {e2, ka, 2}, {e2, kb, 3}, {e2, kc, 5}, {e3, kb, 4}, {e4, kc, 6},
				} {
					if err := Add(w, add.e, add.kind, intPtr(add.v)); err != nil {
						t.Fatal(err)
					}
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := w.CreateEntity()

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				for _, k := range []component.ComponentKind[int]{ka, kb, kc} {
					if err := Add(w, e, k, intPtr(1)); err != nil {
						t.Fatal(err)
					}
				}
				if !w.DestroyEntity(e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := w.CreateEntity()

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestForEachAdded(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	mark := w.ChangeTick()

	e2 := w.CreateEntity()
	if err := Add(w, e2, h.Kind(), intPtr(2)); err != nil {
		t.Fatal(err)
	}
	// replacing does not count as an insert
	if err := Add(w, e1, h.Kind(), intPtr(3)); err != nil {
		t.Fatal(err)
	}

	var seen []Entity
	ForEachAdded(w, h.Kind(), mark, func(e Entity, _ *int) { seen = append(seen, e) })
	if len(seen) != 1 || seen[0] != e2 {
		t.Fatalf("expected only e2, got %v", seen)
	}

	seen = nil
	ForEachAdded(w, h.Kind(), w.ChangeTick(), func(e Entity, _ *int) { seen = append(seen, e) })
	if len(seen) != 0 {
		t.Fatalf("expected nothing after latest mark, got %v", seen)
	}

	seen = nil
	ForEachAdded(w, h.Kind(), 0, func(e Entity, _ *int) { seen = append(seen, e) })
	if len(seen) != 2 {
		t.Fatalf("expected both entities from zero, got %v", seen)
	}
}

func TestHierarchy(t *testing.T) {
	w := NewWorld()
	root := w.CreateEntity()
	a := w.CreateEntity()
	b := w.CreateEntity()
	leaf := w.CreateEntity()

	for _, link := range [][2]Entity{{a, root}, {b, root}, {leaf, a}, {a, root}} {
		if err := w.SetParent(link[0], link[1]); err != nil {
			t.Fatal(err)
		}
	}
	if got := w.Children(root); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("expected [a b] under root, got %v", got)
	}

	if err := w.SetParent(leaf, b); err != nil {
		t.Fatal(err)
	}
	if got := w.Children(a); len(got) != 0 {
		t.Fatalf("reparented leaf still under a: %v", got)
	}
	if p, ok := w.Parent(leaf); !ok || p != b {
		t.Fatalf("expected leaf under b, got %v", p)
	}

	w.DestroyEntity(b)
	if _, ok := w.Parent(leaf); ok {
		t.Fatal("leaf should be orphaned after its parent is destroyed")
	}
	if got := w.Children(root); len(got) != 1 || got[0] != a {
		t.Fatalf("expected [a] under root, got %v", got)
	}

	if err := w.SetParent(leaf, a); err != nil {
		t.Fatal(err)
	}
	w.DestroyRecursive(root)
	for _, e := range []Entity{root, a, leaf} {
		if w.IsAlive(e) {
			t.Fatalf("%v survived DestroyRecursive", e)
		}
	}
	if w.EntityCount() != 0 {
		t.Fatalf("expected empty world, got %d", w.EntityCount())
	}

	dead := w.CreateEntity()
	w.DestroyEntity(dead)
	if err := w.SetParent(dead, w.CreateEntity()); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestEvents(t *testing.T) {
	var q Events[string]
	q.Push("a")
	q.Push("b")
	if q.Len() != 2 {
		t.Fatalf("expected 2 events, got %d", q.Len())
	}
	got := q.Drain()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected drain %v", got)
	}
	if q.Drain() != nil || q.Len() != 0 {
		t.Fatal("queue not cleared by Drain")
	}
}

func TestSchedulerRunsInOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	sched := NewScheduler(
		SystemFunc(func(*World) { order = append(order, "first") }),
		nil,
		SystemFunc(func(*World) { order = append(order, "second") }),
	)
	sched.Add(SystemFunc(func(*World) { order = append(order, "third") }))

	start := w.Tick()
	sched.Update(w)

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Fatalf("unexpected order %v", order)
	}
	if w.Tick() != start+1 {
		t.Fatalf("expected tick %d, got %d", start+1, w.Tick())
	}
	if len(sched.Systems()) != 3 {
		t.Fatalf("nil system was registered")
	}
}
