package vis

import "testing"

func TestEventBusDispatch(t *testing.T) {
	bus := NewEventBus()

	var shapes []Shape
	bus.Subscribe(EventShapeSelected, func(e Event) {
		shapes = append(shapes, e.Shape)
	})
	calls := 0
	bus.Subscribe(EventShapeSelected, func(Event) { calls++ })

	bus.Emit(Event{Type: EventShapeSelected, Shape: ShapeHeart})
	bus.Emit(Event{Type: EventShapeSelected, Shape: ShapeStar})
	bus.Emit(Event{Type: EventColorSelected, ColorIndex: 1}) // nobody listening

	if calls != 2 {
		t.Errorf("second handler called %d times, want 2", calls)
	}
	if len(shapes) != 2 || shapes[0] != ShapeHeart || shapes[1] != ShapeStar {
		t.Errorf("handler saw %v, want [heart star]", shapes)
	}
}
