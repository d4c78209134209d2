package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/asteria-rituals/daily-ritual/internal/platform/logging"
)

// ExecutionStep names one phase of an Operation. Steps always run in the
// order validate, perform, verify, respond, and the first failure stops the
// run.
type ExecutionStep string

const (
	// StepValidate checks settings before any network call.
	StepValidate ExecutionStep = "validate"
	// StepPerform does the outbound work.
	StepPerform ExecutionStep = "perform"
	// StepVerify confirms the result before success is reported.
	StepVerify ExecutionStep = "verify"
	// StepRespond shapes the result for the caller.
	StepRespond ExecutionStep = "respond"
)

// ExecutionError records the step an operation failed in.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

func (e *ExecutionError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
	}

	return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
}

func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Executor runs Operations and logs each step boundary.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor returns an Executor logging to logger, or slog.Default when nil.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Operation is a unit of work split into steps. Nil steps are skipped and
// yield the zero value.
type Operation[I, P, V, O any] struct {
	Name string

	// Validate may enrich the input; later steps see what it returns.
	Validate func(ctx context.Context, input I) (I, error)
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, performed P) (V, error)
	Respond  func(ctx context.Context, input I, verified V) (O, error)
}

// runStep calls fn when enabled, logging a failure at level and wrapping it
// with the step name.
func runStep[T any](ctx context.Context, logger *slog.Logger, step ExecutionStep, level slog.Level, message string, enabled bool, fn func() (T, error)) (T, error) {
	var zero T

	if !enabled {
		return zero, nil
	}

	logger.DebugContext(ctx, "step started", slog.String("step", string(step)))

	out, err := fn()
	if err != nil {
		logger.Log(ctx, level, "step failed", slog.String("step", string(step)), slog.Any("error", err))

		return zero, &ExecutionError{Step: step, Message: message, Cause: err}
	}

	return out, nil
}

// Execute runs op over input. The returned error is an *ExecutionError
// wrapping the failing step's cause.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (O, error) {
	var zero O

	logger := logging.FromContextOr(ctx, exec.logger).With(slog.String("operation", op.Name))
	start := time.Now()

	if op.Validate != nil {
		validated, err := runStep(ctx, logger, StepValidate, slog.LevelWarn, "precondition failed", true,
			func() (I, error) { return op.Validate(ctx, input) })
		if err != nil {
			return zero, err
		}

		input = validated
	}

	performed, err := runStep(ctx, logger, StepPerform, slog.LevelError, "operation failed", op.Perform != nil,
		func() (P, error) { return op.Perform(ctx, input) })
	if err != nil {
		return zero, err
	}

	verified, err := runStep(ctx, logger, StepVerify, slog.LevelError, "verification failed", op.Verify != nil,
		func() (V, error) { return op.Verify(ctx, input, performed) })
	if err != nil {
		return zero, err
	}

	result, err := runStep(ctx, logger, StepRespond, slog.LevelWarn, "response formatting failed", op.Respond != nil,
		func() (O, error) { return op.Respond(ctx, input, verified) })
	if err != nil {
		return zero, err
	}

	logger.InfoContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}

// IsExecutionError reports whether err carries an *ExecutionError.
func IsExecutionError(err error) bool {
	var execErr *ExecutionError

	return errors.As(err, &execErr)
}

// GetExecutionStep returns the step recorded in err, if any.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
