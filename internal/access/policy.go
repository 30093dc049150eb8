// Package access holds the per-resource authorization rules as data, so
// handlers and middleware share one dispatch function instead of ad-hoc
// role checks.
package access

// Policy names the authorization variant a resource kind is served under.
type Policy int

const (
	// Public resources need no credentials at all (signup, login, health).
	Public Policy = iota
	// AuthenticatedReadOnly resources can be read by any authenticated
	// caller but written by nobody through the API.
	AuthenticatedReadOnly
	// AdminWrite resources can be read by any authenticated caller and
	// written only by staff.
	AdminWrite
	// OwnerScoped resources can be read and written by any authenticated
	// caller, with row visibility restricted to the owner at the
	// repository level.
	OwnerScoped
)

// Caller is the identity a decision is made for. A zero Caller is an
// anonymous request.
type Caller struct {
	ID            uint
	Authenticated bool
	IsStaff       bool
}

// Decision is the outcome of an access check. Unauthorized and Forbidden
// are kept distinct: missing credentials must never be reported as an
// insufficient role.
type Decision int

const (
	Allow Decision = iota
	DenyUnauthorized
	DenyForbidden
)

// Allowed evaluates a policy for one request. write covers create,
// update and delete; everything else counts as a read. Decisions are
// stateless; owner-row filtering under OwnerScoped is enforced where the
// rows are read, not here.
func Allowed(p Policy, c Caller, write bool) Decision {
	switch p {
	case Public:
		return Allow
	case AuthenticatedReadOnly:
		if !c.Authenticated {
			return DenyUnauthorized
		}
		if write {
			return DenyForbidden
		}
		return Allow
	case AdminWrite:
		if !c.Authenticated {
			return DenyUnauthorized
		}
		if write && !c.IsStaff {
			return DenyForbidden
		}
		return Allow
	case OwnerScoped:
		if !c.Authenticated {
			return DenyUnauthorized
		}
		return Allow
	default:
		return DenyForbidden
	}
}
