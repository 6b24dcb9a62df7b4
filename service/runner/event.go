package runner

import (
	"github.com/duke-git/lancet/v2/eventbus"

	"slicer-runner/service/dispatch"
)

const (
	EventInFlight = "inflight"
	EventSettled  = "settled"

	topic = "dispatch"
)

// Event marks a state transition of one invocation. Outcome is set on
// EventSettled only.
type Event struct {
	Type         string
	InvocationID string
	URL          string
	Outcome      dispatch.Outcome
}

type Events struct {
	bus *eventbus.EventBus[Event]
}

func NewEvents() *Events {
	return &Events{bus: eventbus.NewEventBus[Event]()}
}

func (e *Events) publish(ev Event) {
	e.bus.Publish(eventbus.Event[Event]{Topic: topic, Payload: ev})
}

// Subscribe registers a synchronous handler for every transition.
func (e *Events) Subscribe(handler func(Event)) {
	e.bus.Subscribe(topic, handler, false, 0, nil)
}
