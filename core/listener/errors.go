package listener

import "errors"

var (
	// ErrNilOwner is returned when an operation receives a nil owner.
	ErrNilOwner = errors.New("owner is nil")

	// ErrEmptyEventName is returned when an operation receives an empty event name.
	ErrEmptyEventName = errors.New("event name is empty")

	// ErrUnidentifiableOwner is returned when no stable identity can be derived for an owner.
	ErrUnidentifiableOwner = errors.New("owner has no stable identity")

	// ErrInvalidTarget is returned when a listener target cannot be matched against itself,
	// such as a func or a struct holding one.
	ErrInvalidTarget = errors.New("listener target cannot be identified")

	// ErrInvalidMethod is returned when a listener is registered with a zero Method.
	ErrInvalidMethod = errors.New("listener method is empty")

	// ErrNilActionSet is returned when a set algebra operation receives a nil accumulator.
	ErrNilActionSet = errors.New("action set is nil")

	// ErrNilBody is returned when Suspend is called without a body.
	ErrNilBody = errors.New("suspend body is nil")

	// ErrMethodNotFound is returned when a named method cannot be resolved on its target.
	ErrMethodNotFound = errors.New("method not found on target")

	// ErrBadArguments is returned when dispatch params do not fit a reflected method signature.
	ErrBadArguments = errors.New("arguments do not match method signature")

	// ErrListenerPanic is returned by handlers wrapped with Recover when they panic.
	ErrListenerPanic = errors.New("listener panicked")
)
