package engine

import (
	"iter"
	"reflect"

	"github.com/plus3/frameloop/ecs"
)

// Events is a double-buffered channel of frame-scoped events.
// Send appends to the write buffer; Len, IsEmpty, Iter and Drain observe the
// read buffer. Update swaps the two and clears the new write buffer, so an
// event becomes readable exactly one Update after it was sent.
//
// The zero value is ready to use.
type Events[T any] struct {
	buffers [2][]T
	read    int
}

// Send queues event into the write buffer.
func (e *Events[T]) Send(event T) {
	w := 1 - e.read
	e.buffers[w] = append(e.buffers[w], event)
}

// Extend queues every event in order.
func (e *Events[T]) Extend(events ...T) {
	w := 1 - e.read
	e.buffers[w] = append(e.buffers[w], events...)
}

// Len returns the number of readable events.
func (e *Events[T]) Len() int {
	return len(e.buffers[e.read])
}

// IsEmpty reports whether there are no readable events.
func (e *Events[T]) IsEmpty() bool {
	return e.Len() == 0
}

// Iter yields the readable events without consuming them.
func (e *Events[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, event := range e.buffers[e.read] {
			if !yield(event) {
				return
			}
		}
	}
}

// Drain yields and removes the readable events in send order. The read buffer
// is emptied as soon as iteration starts; stopping early discards the rest.
// Draining again before the next Update yields nothing.
func (e *Events[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		read := e.read
		buf := e.buffers[read]
		if len(buf) == 0 {
			return
		}
		e.buffers[read] = nil

		defer func() {
			clear(buf)
			// keep the capacity unless the slot was reused while draining
			if e.buffers[read] == nil {
				e.buffers[read] = buf[:0]
			}
		}()

		for _, event := range buf {
			if !yield(event) {
				return
			}
		}
	}
}

// Update makes the events sent since the previous Update readable and drops
// the ones that were readable until now.
func (e *Events[T]) Update() {
	e.read = 1 - e.read
	w := 1 - e.read
	clear(e.buffers[w])
	e.buffers[w] = e.buffers[w][:0]
}

// Clear drops both readable and pending events.
func (e *Events[T]) Clear() {
	for i := range e.buffers {
		clear(e.buffers[i])
		e.buffers[i] = e.buffers[i][:0]
	}
}

// UpdateEvents is the system that swaps the Events[T] resource, if present.
func UpdateEvents[T any](res *Resources, _ *ecs.Storage) {
	if events, ok := GetMut[Events[T]](res); ok {
		events.Update()
	}
}

// AddEvent registers an Events[T] resource and schedules its Update at the
// given stage and priority. Registering the same event type twice keeps the
// existing channel and schedule.
func AddEvent[T any](a *App, stage Stage, priority Priority) *App {
	name := "UpdateEvents[" + reflect.TypeFor[T]().String() + "]"
	if Contains[Events[T]](a.resources) {
		a.log.Debug("event channel already registered", "event", name)
		return a
	}

	Insert(a.resources, Events[T]{})
	a.scheduler.AddNamedSystem(stage, priority, name, UpdateEvents[T])
	return a
}

// Send is shorthand for looking up the Events[T] resource and sending event.
// It reports false when the channel is not registered.
func Send[T any](res *Resources, event T) bool {
	events, ok := GetMut[Events[T]](res)
	if !ok {
		return false
	}
	events.Send(event)
	return true
}
