// Package errs holds the error types shared by the domain, the use cases and the adapters.
//
// Every type unwraps to a sentinel, so callers classify with errors.Is and read the
// details with errors.As:
//
//	ErrValueIsRequired     ValueIsRequiredError
//	ErrValueIsInvalid      ValueIsInvalidError
//	ErrValueIsOutOfRange   ValueIsOutOfRangeError
//	ErrObjectNotFound      ObjectNotFoundError
//	ErrObjectAlreadyExists ObjectAlreadyExistsError
//	ErrInvalidTransition   InvalidTransitionError
//
// Constructors come in pairs, NewXError and NewXErrorWithCause. The cause only shows up
// in Error(); classification always goes through the sentinel.
package errs
