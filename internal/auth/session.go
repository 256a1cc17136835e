// Package auth implements the session token codec, the session cookie
// contract and the role gate. Sessions are stateless signed claim sets;
// nothing is persisted server-side and every request re-verifies the
// token signature.
package auth

import "time"

// SuperuserSubject is the sentinel subject for the single configured
// admin identity that is not backed by a user row.
const SuperuserSubject = "root"

// Session is the decoded, verified claim set identifying a request's
// principal. It is only ever produced by Codec.Verify from a token with
// a valid signature; it is never built from untrusted input directly.
//
// DisplayName and Email are denormalized at issuance time and may go
// stale relative to storage until the principal logs in again. That
// staleness is accepted; there is no per-request re-validation.
type Session struct {
	Subject     string
	Role        Role
	DisplayName string
	Email       string
	ExpiresAt   time.Time
}

// Claims is the input to Codec.Issue. The caller is responsible for
// passing a valid role; the codec checks shape, not business rules.
type Claims struct {
	Subject     string
	Role        Role
	DisplayName string
	Email       string
}
