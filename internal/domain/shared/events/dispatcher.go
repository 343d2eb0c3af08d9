package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// SyncEventDispatcher delivers events to subscribed handlers on the caller's goroutine.
// Callers publish after their transaction commits, so handlers observe committed state.
type SyncEventDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
}

func NewSyncEventDispatcher() *SyncEventDispatcher {
	return &SyncEventDispatcher{
		handlers: make(map[string][]EventHandler),
	}
}

// Subscribe registers a handler for an event type
func (d *SyncEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

// PublishAll runs every matching handler for every event. A failing or
// panicking handler does not stop delivery to the rest; its failure is
// returned in the joined error.
func (d *SyncEventDispatcher) PublishAll(ctx context.Context, events []DomainEvent) error {
	var errs []error
	for _, event := range events {
		d.mu.RLock()
		handlers := d.handlers[event.GetEventType()]
		d.mu.RUnlock()

		for _, h := range handlers {
			if !h.CanHandle(event.GetEventType()) {
				continue
			}
			if err := safeHandle(ctx, h, event); err != nil {
				errs = append(errs, fmt.Errorf("handle %s for aggregate %s: %w",
					event.GetEventType(), event.GetAggregateID(), err))
			}
		}
	}
	return errors.Join(errs...)
}

func safeHandle(ctx context.Context, h EventHandler, event DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return h.Handle(ctx, event)
}

// HandlerCount returns the number of handlers registered for eventType.
func (d *SyncEventDispatcher) HandlerCount(eventType string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers[eventType])
}
