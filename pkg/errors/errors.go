package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	field   string
	message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{field: field, message: message}
}

func (e *ValidationError) Error() string {
	if e.field == "" {
		return e.message
	}
	return fmt.Sprintf("%s: %s", e.field, e.message)
}

func (e *ValidationError) Field() string {
	return e.field
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

type ResourceNotFoundError struct {
	resource string
	id       string
}

func NewResourceNotFoundError(resource string, id any) *ResourceNotFoundError {
	return &ResourceNotFoundError{resource: resource, id: fmt.Sprint(id)}
}

func NewCreatureNotFoundError(catalogID int) *ResourceNotFoundError {
	return NewResourceNotFoundError("creature", catalogID)
}

func NewTrainerNotFoundError(id int64) *ResourceNotFoundError {
	return NewResourceNotFoundError("trainer", id)
}

func NewRosterSlotNotFoundError(id int64) *ResourceNotFoundError {
	return NewResourceNotFoundError("roster slot", id)
}

func NewTagNotFoundError(id int64) *ResourceNotFoundError {
	return NewResourceNotFoundError("tag", id)
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.resource, e.id)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

type ConflictError struct {
	resource string
	key      string
}

func NewConflictError(resource, key string) *ConflictError {
	return &ConflictError{resource: resource, key: key}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.resource, e.key)
}

func IsConflictError(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

// CapacityExceededError is returned when the roster already holds its maximum number of slots.
type CapacityExceededError struct {
	capacity int
}

func NewCapacityExceededError(capacity int) *CapacityExceededError {
	return &CapacityExceededError{capacity: capacity}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("roster is already full (max %d slots)", e.capacity)
}

func IsCapacityExceededError(err error) bool {
	var e *CapacityExceededError
	return errors.As(err, &e)
}

// UnknownCreatureError is returned when a roster slot references a catalog id
// outside the supported range or absent from the local catalog.
type UnknownCreatureError struct {
	catalogID int
	reason    string
}

func NewUnknownCreatureError(catalogID int, reason string) *UnknownCreatureError {
	return &UnknownCreatureError{catalogID: catalogID, reason: reason}
}

func (e *UnknownCreatureError) Error() string {
	return fmt.Sprintf("unknown creature %d: %s", e.catalogID, e.reason)
}

func IsUnknownCreatureError(err error) bool {
	var e *UnknownCreatureError
	return errors.As(err, &e)
}

// RemoteUnavailableError is returned when the remote catalog answers with a non-success status.
type RemoteUnavailableError struct {
	URL        string
	StatusCode int
	Status     string
}

func NewRemoteUnavailableError(url string, statusCode int, status string) *RemoteUnavailableError {
	return &RemoteUnavailableError{URL: url, StatusCode: statusCode, Status: status}
}

func (e *RemoteUnavailableError) Error() string {
	return fmt.Sprintf("remote catalog %s responded with %s", e.URL, e.Status)
}

// Transient reports whether retrying the same request may succeed.
func (e *RemoteUnavailableError) Transient() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

func IsRemoteUnavailableError(err error) bool {
	var e *RemoteUnavailableError
	return errors.As(err, &e)
}

// RemoteUnreachableError wraps network level failures, timeouts included.
type RemoteUnreachableError struct {
	URL string
	err error
}

func NewRemoteUnreachableError(url string, err error) *RemoteUnreachableError {
	return &RemoteUnreachableError{URL: url, err: err}
}

func (e *RemoteUnreachableError) Error() string {
	return fmt.Sprintf("remote catalog %s unreachable: %v", e.URL, e.err)
}

func (e *RemoteUnreachableError) Unwrap() error {
	return e.err
}

func IsRemoteUnreachableError(err error) bool {
	var e *RemoteUnreachableError
	return errors.As(err, &e)
}

type StoreFailureError struct {
	op  string
	err error
}

func NewStoreFailureError(op string, err error) *StoreFailureError {
	return &StoreFailureError{op: op, err: err}
}

func (e *StoreFailureError) Error() string {
	return fmt.Sprintf("store failure during %s: %v", e.op, e.err)
}

func (e *StoreFailureError) Unwrap() error {
	return e.err
}

func IsStoreFailureError(err error) bool {
	var e *StoreFailureError
	return errors.As(err, &e)
}

type MigrationFailedError struct {
	Unit      string
	Direction string
	err       error
}

func NewMigrationFailedError(unit, direction string, err error) *MigrationFailedError {
	return &MigrationFailedError{Unit: unit, Direction: direction, err: err}
}

func (e *MigrationFailedError) Error() string {
	return fmt.Sprintf("migration %s (%s) failed: %v", e.Unit, e.Direction, e.err)
}

func (e *MigrationFailedError) Unwrap() error {
	return e.err
}

func IsMigrationFailedError(err error) bool {
	var e *MigrationFailedError
	return errors.As(err, &e)
}
