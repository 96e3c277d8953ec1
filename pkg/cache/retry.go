package cache

import (
	"context"
	"errors"
	"time"

	sbgnerr "github.com/matzehuels/sbgnconv/pkg/errors"
)

// Backoff controls how remote backends retry failed calls. Only errors
// produced by [Unavailable] are retried; the delay doubles after each try.
type Backoff struct {
	Attempts int
	Delay    time.Duration
}

// DefaultBackoff is used when a backend is configured without one.
var DefaultBackoff = Backoff{Attempts: 3, Delay: 250 * time.Millisecond}

func (b Backoff) orDefault() Backoff {
	if b.Attempts <= 0 {
		return DefaultBackoff
	}
	return b
}

// Do calls fn until it succeeds, fails permanently, or the attempts run out.
func (b Backoff) Do(ctx context.Context, fn func() error) error {
	b = b.orDefault()
	delay := b.Delay
	var err error
	for i := 0; i < b.Attempts; i++ {
		if err = fn(); err == nil || !IsUnavailable(err) {
			return err
		}
		if i == b.Attempts-1 {
			break
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2
	}
	return err
}

type unavailableError struct{ err error }

func (e *unavailableError) Error() string { return e.err.Error() }
func (e *unavailableError) Unwrap() error { return e.err }

// Unavailable reports that backend could not be reached during op. The
// result carries the NETWORK_ERROR code and is retried by [Backoff.Do].
func Unavailable(backend, op string, err error) error {
	if err == nil {
		return nil
	}
	return &unavailableError{sbgnerr.Wrap(sbgnerr.ErrCodeNetwork, err, "%s %s", backend, op)}
}

// IsUnavailable reports whether err came from [Unavailable].
func IsUnavailable(err error) bool {
	var u *unavailableError
	return errors.As(err, &u)
}
