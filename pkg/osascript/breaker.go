// pkg/osascript/breaker.go

package osascript

import (
	"time"

	"github.com/sony/gobreaker"
)

// interpreterBreaker fails fast when the interpreter cannot reach Notes at
// all. Only hard failures count against it - a not-found or permission
// error proves the connection works fine.
type interpreterBreaker struct {
	cb *gobreaker.CircuitBreaker
}

const defaultBreakerCooldown = 30 * time.Second

func newInterpreterBreaker(threshold int, cooldown time.Duration) *interpreterBreaker {
	if cooldown <= 0 {
		cooldown = defaultBreakerCooldown
	}
	return &interpreterBreaker{
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "osascript",
			MaxRequests: 1,
			Timeout:     cooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= uint32(threshold)
			},
		}),
	}
}

func (b *interpreterBreaker) allow() bool {
	return b.cb.State() != gobreaker.StateOpen
}

func (b *interpreterBreaker) record(kind ErrorKind) {
	// Timeouts also suggest the interpreter cannot make progress.
	hard := kind == KindConnectionLost || kind == KindTimeout
	_, _ = b.cb.Execute(func() (interface{}, error) {
		if hard {
			return nil, errInterpreterDown
		}
		return nil, nil
	})
}

func (b *interpreterBreaker) recordSuccess() {
	_, _ = b.cb.Execute(func() (interface{}, error) { return nil, nil })
}

type interpreterDownError struct{}

func (interpreterDownError) Error() string { return "automation interpreter unreachable" }

var errInterpreterDown = interpreterDownError{}
