// Package oracle adapts text-completion services used for per-section
// config generation. The core treats any oracle failure as "no config
// produced": the caller re-asks and the user retries or rephrases.
package oracle

import (
	"context"
	"errors"
)

// Oracle turns a prompt into raw completion text. Implementations apply
// their own request timeout; callers may layer a stricter context deadline.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrUnavailable wraps every completion failure: timeout, auth, rate limit,
// network. It is recoverable by resubmitting the same request.
var ErrUnavailable = errors.New("completion oracle unavailable")

// IsUnavailable checks whether an error is a recoverable oracle failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
