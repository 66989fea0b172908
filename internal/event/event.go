// Package event fans applied map commands out to interested parties such as
// the frame dumper.
package event

import "hexmancer/pkg/hexmap"

// Event carries the map state right after the change.
type Event struct {
	Type   Type
	Status hexmap.Status
}

type Listener interface {
	OnEvent(e Event)
}

// Dispatcher delivers events synchronously, in subscription order.
type Dispatcher struct {
	listeners map[Type][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[Type][]Listener)}
}

// Subscribe registers l for the given types, or for all of them when none
// are named.
func (d *Dispatcher) Subscribe(l Listener, types ...Type) {
	if len(types) == 0 {
		types = Types
	}
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], l)
	}
}

func (d *Dispatcher) Unsubscribe(t Type, l Listener) {
	ls := d.listeners[t]
	for i := range ls {
		if ls[i] == l {
			d.listeners[t] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}
