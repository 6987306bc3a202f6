// Package waitfor retries fallible UI operations with a fixed pause between
// attempts. Only *core.TestingError failures are retried; any other error is
// wrapped and returned on the spot.
package waitfor

import (
	"errors"
	"time"

	"github.com/devicelab-dev/xcuikit/pkg/core"
	"github.com/devicelab-dev/xcuikit/pkg/logger"
)

// Defaults used by every helper unless a Config says otherwise.
const (
	DefaultWaitPerAttempt        = 3 * time.Second
	DefaultTotalNumberOfAttempts = 5
)

// sleep is swapped out by tests.
var sleep = time.Sleep

// Config is the retry budget for one call.
type Config struct {
	WaitPerAttempt        time.Duration `yaml:"waitPerAttempt"`
	TotalNumberOfAttempts int           `yaml:"totalNumberOfAttempts"`
}

// DefaultConfig returns the process-wide defaults.
func DefaultConfig() Config {
	return Config{
		WaitPerAttempt:        DefaultWaitPerAttempt,
		TotalNumberOfAttempts: DefaultTotalNumberOfAttempts,
	}
}

// Outcome is the result of a retried operation: a value or a domain error.
type Outcome[T any] struct {
	value T
	err   *core.TestingError
}

// Success builds a successful Outcome.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// Failure builds a failed Outcome.
func Failure[T any](err *core.TestingError) Outcome[T] {
	return Outcome[T]{err: err}
}

// IsSuccess reports whether the operation eventually succeeded.
func (o Outcome[T]) IsSuccess() bool {
	return o.err == nil
}

// Value returns the operation's value; the zero value on failure.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the failure, or nil on success.
func (o Outcome[T]) Err() *core.TestingError {
	return o.err
}

// Get returns the value and the failure as a plain error.
func (o Outcome[T]) Get() (T, error) {
	if o.err != nil {
		return o.value, o.err
	}
	return o.value, nil
}

// Result invokes attempt until it succeeds or cfg's budget is spent.
func Result[T any](cfg Config, attempt func() (T, error)) Outcome[T] {
	if cfg.TotalNumberOfAttempts <= 0 {
		return Failure[T](core.NewTestingError("totalNumberOfAttempts <= 0"))
	}

	for n := 1; ; n++ {
		v, err := attempt()
		if err == nil {
			return Success(v)
		}

		var te *core.TestingError
		if !errors.As(err, &te) {
			return Failure[T](core.WrapError(err))
		}

		logger.Warn("attempt %d/%d failed: %v", n, cfg.TotalNumberOfAttempts, te)
		if n >= cfg.TotalNumberOfAttempts {
			return Failure[T](te)
		}
		sleep(cfg.WaitPerAttempt)
	}
}

// TryThrows retries attempt and reports a final failure to sink at loc.
func TryThrows(cfg Config, sink core.FailureSink, loc core.Location, attempt func() error) {
	outcome := Result(cfg, func() (struct{}, error) {
		return struct{}{}, attempt()
	})
	if err := outcome.Err(); err != nil {
		err.Fail(sink, loc)
	}
}

// Bool retries attempt and reports only whether it eventually succeeded.
func Bool(cfg Config, attempt func() error) bool {
	return Result(cfg, func() (struct{}, error) {
		return struct{}{}, attempt()
	}).IsSuccess()
}
