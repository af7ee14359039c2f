package inmem

import (
	"sync"

	"github.com/lukasz-zimnoch/trading"
)

const eventsWindowSize = 100

// EventService logs events instead of publishing them anywhere. The most
// recent events are retained for inspection.
type EventService struct {
	logger trading.Logger

	eventsMutex sync.Mutex
	events      []*trading.Event
}

func NewEventService(logger trading.Logger) *EventService {
	return &EventService{logger: logger}
}

func (es *EventService) Publish(event *trading.Event) {
	es.eventsMutex.Lock()
	defer es.eventsMutex.Unlock()

	es.logger.Debugf("event [%v]: %v", event.Subject, event.Payload)

	es.events = append(es.events, event)
	if len(es.events) > eventsWindowSize {
		es.events = es.events[len(es.events)-eventsWindowSize:]
	}
}

func (es *EventService) Events() []*trading.Event {
	es.eventsMutex.Lock()
	defer es.eventsMutex.Unlock()

	snapshot := make([]*trading.Event, len(es.events))
	copy(snapshot, es.events)

	return snapshot
}
