// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock abstracts the current time so interest accrual and payment stamping
// are testable with a fixed date.
type Clock interface {
	Now() time.Time
}
