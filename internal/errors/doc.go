// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// invalid input, counting failures, etc.) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method to support errors.Is() and errors.As().
// Every input rejection unwraps to ErrInvalidArgument.
package apperrors
