package auth

// Role represents a principal's access tier.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleEmployer  Role = "EMPLOYER"
	RoleCandidate Role = "CANDIDATE"
)

// IsValid reports whether r is one of the three enumerated roles.
// Any other value must be treated as "no valid session".
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmployer, RoleCandidate:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsAuthorized is the role gate: it reports whether sess carries one of
// the allowed roles. A nil session is never authorized. Pure predicate,
// no I/O.
func IsAuthorized(sess *Session, allowed ...Role) bool {
	if sess == nil {
		return false
	}
	for _, r := range allowed {
		if sess.Role == r {
			return true
		}
	}
	return false
}
