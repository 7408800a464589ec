// Package event provides a pub-sub event bus for decoupled communication
// between the project store and its observers.
//
// # Main Types
//
//   - [Event]: Interface that all events implement, providing ID(), EventType() and Timestamp()
//   - [ProjectEvent]: Event that also names the affected project and store version
//   - [Bus]: Synchronous pub-sub dispatcher with thread-safe operations
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Event Categories
//
// Project lifecycle:
//   - [ProjectCreatedEvent]
//   - [ProjectUpdatedEvent]
//   - [ProjectDeletedEvent]
//
// Tasks:
//   - [TaskAddedEvent]
//   - [TaskUpdatedEvent]
//
// # Thread Safety
//
// The [Bus] type is safe for concurrent use. Handlers are called
// synchronously on the publishing goroutine, outside the bus lock, so a
// handler may subscribe or unsubscribe. A panicking handler is recovered
// and logged without affecting other handlers.
//
// # Usage
//
//	bus := event.NewBus(logger)
//	id := bus.Subscribe(event.TypeProjectDeleted, func(e event.Event) {
//		pe := e.(event.ProjectEvent)
//		fmt.Println("deleted", pe.ProjectID())
//	})
//	defer bus.Unsubscribe(id)
package event
