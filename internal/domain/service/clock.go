package service

import "time"

// Clock abstracts wall-clock access so window gating and schedule arithmetic
// can be tested with injected instants.
type Clock interface {
	Now() time.Time
}
