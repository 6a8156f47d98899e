// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// Notifier is invoked after every successful persist so a presentation layer
// can refresh. Engines work identically without one.
type Notifier interface {
	StateChanged()
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func()

// StateChanged implements the Notifier interface.
func (f NotifierFunc) StateChanged() { f() }
