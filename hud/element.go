package hud

import (
	"fmt"
	"sort"

	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/ecs/component"
)

// DefaultGroup titles elements whose Order has no group.
const DefaultGroup = "HUD"

type ElementKind uint8

const (
	// TextWithSource shows a diagnostic reading.
	TextWithSource ElementKind = iota
	// ToggleButtonProperty flips a named Bool property.
	ToggleButtonProperty
	// EditThis edits the property that lives on the element's own entity.
	EditThis
)

func (k ElementKind) String() string {
	switch k {
	case TextWithSource:
		return "text"
	case ToggleButtonProperty:
		return "toggle"
	case EditThis:
		return "edit"
	default:
		return "unknown"
	}
}

// Source samples a diagnostic. ok is false when no reading is available.
type Source func(w *ecs.World) (v float64, ok bool)

// Diagnostic labels a Source. Unit readings are printed with a magnitude
// suffix instead of two decimals.
type Diagnostic struct {
	Label  string
	Source Source
	Unit   bool
}

func (d Diagnostic) read(w *ecs.World) (float64, bool) {
	if d.Source == nil {
		return 0, false
	}
	return d.Source(w)
}

// Element is one row of the overlay.
type Element struct {
	Kind       ElementKind
	Diagnostic Diagnostic

	// Property, On and Off are used by ToggleButtonProperty.
	Property string
	On, Off  string
}

func NewDiagnosticElement(label string, src Source, unit bool) Element {
	return Element{Kind: TextWithSource, Diagnostic: Diagnostic{Label: label, Source: src, Unit: unit}}
}

func NewToggleElement(name, on, off string) Element {
	return Element{Kind: ToggleButtonProperty, Property: name, On: on, Off: off}
}

func NewEditThisElement() Element {
	return Element{Kind: EditThis}
}

// Order positions an element: one column per Group, rows sorted by ID.
type Order struct {
	Group string
	ID    int
}

// InGroup returns o moved to group.
func (o Order) InGroup(group string) Order {
	o.Group = group
	return o
}

func (o Order) title() string {
	if o.Group == "" {
		return DefaultGroup
	}
	return o.Group
}

func (o Order) less(p Order) bool {
	if o.Group != p.Group {
		return o.Group < p.Group
	}
	return o.ID < p.ID
}

// Sequence hands out increasing Orders.
type Sequence struct {
	next int
}

func (s *Sequence) Next() Order {
	o := Order{ID: s.next}
	s.next++
	return o
}

var (
	ElementComponent = component.NewComponent[Element]()
	OrderComponent   = component.NewComponent[Order]()
	PlotComponent    = component.NewComponent[Plot]()
)

// Attach turns e into an element, e.g. an EditThis row on a property entity.
func Attach(w *ecs.World, e ecs.Entity, el Element, order Order) error {
	if err := ecs.Add(w, e, ElementComponent.Kind(), &el); err != nil {
		return fmt.Errorf("hud: attach %s element: %w", el.Kind, err)
	}
	if err := ecs.Add(w, e, OrderComponent.Kind(), &order); err != nil {
		return fmt.Errorf("hud: attach %s order: %w", el.Kind, err)
	}
	return nil
}

// Spawn creates an element entity.
func Spawn(w *ecs.World, el Element, order Order) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := Attach(w, e, el, order); err != nil {
		w.DestroyEntity(e)
		return 0, err
	}
	return e, nil
}

type item struct {
	entity  ecs.Entity
	order   Order
	element Element
}

type group struct {
	title string
	items []item
}

// collect returns the elements in display order, split into groups.
func collect(w *ecs.World) []group {
	var items []item
	ecs.ForEach2(w, ElementComponent.Kind(), OrderComponent.Kind(), func(e ecs.Entity, el *Element, o *Order) {
		items = append(items, item{entity: e, order: *o, element: *el})
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].order.less(items[j].order)
	})

	var groups []group
	for _, it := range items {
		if n := len(groups); n > 0 && groups[n-1].title == it.order.title() {
			groups[n-1].items = append(groups[n-1].items, it)
			continue
		}
		groups = append(groups, group{title: it.order.title(), items: []item{it}})
	}
	return groups
}
