package domain

import "errors"

// Error kinds surfaced to callers. Handlers map them to HTTP status codes.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrDuplicateConflict = errors.New("duplicate record")
	ErrConflict          = errors.New("conflict")
)

// Error is a specific failure tagged with one of the kinds above,
// so errors.Is(err, ErrNotFound) holds for ErrClientNotFound.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Invalid returns an InvalidInput error carrying message
func Invalid(message string) error {
	return newError(ErrInvalidInput, message)
}

// Branch errors
var (
	ErrBranchNotFound   = newError(ErrNotFound, "branch not found")
	ErrBranchCodeExists = newError(ErrDuplicateKey, "branch code already exists")
)

// Client errors
var (
	ErrMissingScope            = newError(ErrInvalidInput, "x-branch-id header is required for non DG actors")
	ErrClientNotFound          = newError(ErrNotFound, "client not found")
	ErrCNIAlreadyUsed          = newError(ErrDuplicateKey, "cni already used")
	ErrClientDuplicate         = newError(ErrDuplicateConflict, "client already exists (phone + last name)")
	ErrClientHasActivePolicies = newError(ErrConflict, "client has active policies")
)

// Policy errors
var (
	ErrPolicyNotFound   = newError(ErrNotFound, "policy not found")
	ErrInvalidDates     = newError(ErrInvalidInput, "invalid dates")
	ErrInvalidStartDate = newError(ErrInvalidInput, "invalid startDate")
	ErrInvalidEndDate   = newError(ErrInvalidInput, "invalid endDate")
	ErrEndBeforeStart   = newError(ErrInvalidInput, "endDate must be after startDate")
)
