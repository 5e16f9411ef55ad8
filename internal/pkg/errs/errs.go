package errs

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors used as the unwrap targets for the typed errors below.
// Call sites classify failures with errors.Is against these values.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrVersionIsInvalid   = errors.New("version is invalid")
	ErrIllegalTransition  = errors.New("illegal transition")
	ErrOutOfOrderEvent    = errors.New("event is out of order")
	ErrInvoiceLocked      = errors.New("invoice is locked")
	ErrCourierUnavailable = errors.New("courier is unavailable")
	ErrStaleWrite         = errors.New("stale write")
)

// sanitize flattens a formatted message to a single line so errors stay
// readable in logs even when parameter values contain newlines.
func sanitize(msg string) string {
	return strings.ReplaceAll(msg, "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, cause)
	}
	return msg
}

// ObjectNotFoundError indicates that an object could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(withCause(
			fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectNotFound, e.ParamName, e.ID), e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value does not satisfy a validation rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return sanitize(withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value falls outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value any, minValue any, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return sanitize(withCause(
		fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max), e.Cause))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return sanitize(withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that an aggregate version stamp is malformed or unusable.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	return sanitize(withCause(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName), e.Cause))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// IllegalTransitionError indicates that a requested status change is not in the
// legal-successor set of the current status, or that the current status is terminal.
type IllegalTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewIllegalTransitionError creates an IllegalTransitionError for the given status pair.
func NewIllegalTransitionError(from string, to string) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

// NewIllegalTransitionErrorWithCause creates an IllegalTransitionError wrapping an underlying cause.
func NewIllegalTransitionErrorWithCause(from string, to string, cause error) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to, Cause: cause}
}

func (e *IllegalTransitionError) Error() string {
	return sanitize(withCause(fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To), e.Cause))
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// OutOfOrderEventError indicates that a tracking event violates the ascending
// timestamp order of a shipment timeline.
type OutOfOrderEventError struct {
	LastTimestamp  time.Time
	EventTimestamp time.Time
}

// NewOutOfOrderEventError creates an OutOfOrderEventError for the given timestamp pair.
func NewOutOfOrderEventError(lastTimestamp time.Time, eventTimestamp time.Time) *OutOfOrderEventError {
	return &OutOfOrderEventError{LastTimestamp: lastTimestamp, EventTimestamp: eventTimestamp}
}

func (e *OutOfOrderEventError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s is before %s",
		ErrOutOfOrderEvent, e.EventTimestamp.Format(time.RFC3339), e.LastTimestamp.Format(time.RFC3339)))
}

func (e *OutOfOrderEventError) Unwrap() error {
	return ErrOutOfOrderEvent
}

// InvoiceLockedError indicates that a line-item edit was attempted on an invoice
// that is no longer in draft status.
type InvoiceLockedError struct {
	Status string
}

// NewInvoiceLockedError creates an InvoiceLockedError for the given invoice status.
func NewInvoiceLockedError(status string) *InvoiceLockedError {
	return &InvoiceLockedError{Status: status}
}

func (e *InvoiceLockedError) Error() string {
	return sanitize(fmt.Sprintf("%s: status is %s", ErrInvoiceLocked, e.Status))
}

func (e *InvoiceLockedError) Unwrap() error {
	return ErrInvoiceLocked
}

// CourierUnavailableError indicates an assignment attempt to a courier that
// cannot take work in its current status.
type CourierUnavailableError struct {
	CourierID string
	Status    string
}

// NewCourierUnavailableError creates a CourierUnavailableError for the given courier.
func NewCourierUnavailableError(courierID string, status string) *CourierUnavailableError {
	return &CourierUnavailableError{CourierID: courierID, Status: status}
}

func (e *CourierUnavailableError) Error() string {
	return sanitize(fmt.Sprintf("%s: courier %s is %s", ErrCourierUnavailable, e.CourierID, e.Status))
}

func (e *CourierUnavailableError) Unwrap() error {
	return ErrCourierUnavailable
}

// StaleWriteError indicates an optimistic-concurrency conflict: the aggregate
// was modified between read and commit.
type StaleWriteError struct {
	ParamName       string
	ExpectedVersion int
	ActualVersion   int
}

// NewStaleWriteError creates a StaleWriteError for the given version pair.
func NewStaleWriteError(paramName string, expectedVersion int, actualVersion int) *StaleWriteError {
	return &StaleWriteError{ParamName: paramName, ExpectedVersion: expectedVersion, ActualVersion: actualVersion}
}

func (e *StaleWriteError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s expected version %d, actual version %d",
		ErrStaleWrite, e.ParamName, e.ExpectedVersion, e.ActualVersion))
}

func (e *StaleWriteError) Unwrap() error {
	return ErrStaleWrite
}
