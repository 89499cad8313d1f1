package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrEmptyInput indicates that a required field was missing or blank.
var ErrEmptyInput = errors.New("empty input")

// ErrBadRequest indicates malformed or otherwise unusable input data.
var ErrBadRequest = errors.New("bad request")

// ErrDateFormat indicates a date/time parameter that could not be parsed.
var ErrDateFormat = errors.New("invalid date format")

// ErrFunctional indicates a business-rule violation: duplicates,
// invalid state, lookups that miss on a business key.
var ErrFunctional = errors.New("functional error")

// ErrDatabaseConstraint indicates a persistence-level constraint
// violation (unique key, foreign key).
var ErrDatabaseConstraint = errors.New("database constraint violation")

// ErrBadCredentials indicates a failed credential check for an
// otherwise well-formed request.
var ErrBadCredentials = errors.New("bad credentials")

// ErrUnauthorized indicates a protected resource was requested without
// an authenticated principal.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated principal lacks the role
// required by the route.
var ErrForbidden = errors.New("access denied")
