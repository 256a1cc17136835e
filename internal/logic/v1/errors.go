// Package v1 implements the business rules for API version 1.
//
// Expected failures are modeled as sentinel errors wrapped with
// context via fmt.Errorf("%w"); handlers translate them to HTTP
// statuses with errors.Is. Verification of session tokens is not an
// error path at all: the auth package returns nil sessions for every
// untrusted-input problem.
package v1

import "errors"

// Sentinel errors returned by the logic layer.
var (
	// ErrInvalidCredentials indicates the provided credentials are
	// incorrect. HTTP 401. Also covers unknown users, so login does
	// not reveal account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserExists indicates the email is already registered.
	// HTTP 409.
	ErrUserExists = errors.New("user already exists")

	// ErrAccountDisabled indicates the account was deactivated by an
	// admin. HTTP 403.
	ErrAccountDisabled = errors.New("account disabled")

	// ErrNotFound indicates the requested resource does not exist.
	// HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrForbidden indicates the principal does not own the resource
	// it tried to mutate. HTTP 403.
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyApplied indicates the candidate already applied to
	// the job. HTTP 409.
	ErrAlreadyApplied = errors.New("already applied")

	// ErrJobNotOpen indicates the job is not accepting applications
	// (draft, closed or unapproved). HTTP 409.
	ErrJobNotOpen = errors.New("job not open")

	// ErrInvalidTransition indicates an illegal application status
	// change. HTTP 409.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrSlugTaken indicates a blog post slug collision. HTTP 409.
	ErrSlugTaken = errors.New("slug already in use")

	// ErrUnknownTerm indicates a category, job type or city code that
	// is not in the taxonomy. HTTP 400.
	ErrUnknownTerm = errors.New("unknown taxonomy term")
)
