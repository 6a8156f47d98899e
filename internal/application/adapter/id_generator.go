// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// IDGenerator produces opaque string identifiers. Uniqueness within practical
// collision bounds is the only guarantee; callers must not rely on ordering
// or format.
type IDGenerator interface {
	NewID() string
}
