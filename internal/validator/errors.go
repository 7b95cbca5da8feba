package validator

import (
	"errors"
	"fmt"
)

// ValidationError represents a single structural failure.
type ValidationError struct {
	Key    string // State id, edge "from->to" or "start"
	Reason string // Human-readable reason for failure
	Value  any    // The offending value, if any
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("%s: %s (got %v)", e.Key, e.Reason, e.Value)
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

func (e *AggregateError) Unwrap() []error { return e.Errors }

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}

// WithoutReason drops the validation errors carrying reason. It returns nil
// when nothing else is left.
func WithoutReason(err error, reason string) error {
	errs := ValidationErrors(err)
	if errs == nil {
		return err
	}
	kept := make([]error, 0, len(errs))
	for _, e := range errs {
		var ve *ValidationError
		if errors.As(e, &ve) && ve.Reason == reason {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		return nil
	}
	return &AggregateError{Errors: kept}
}
