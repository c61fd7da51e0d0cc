package vis

type EventType int

const (
	EventShapeSelected EventType = iota
	EventColorSelected
	EventHandAppeared
	EventHandLost
	EventPinch
)

type Event struct {
	Type       EventType
	Shape      Shape
	ColorIndex int
}

type EventHandler func(Event)

// EventBus carries the discrete UI-boundary events (shape and colour
// selection) plus gesture transitions into the main loop.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
