// Package roles defines the closed role set used by the inventory service
// and the client-side role gate.
//
// The gate only decides which requests the client bothers to attempt and
// which navigation entries it shows. The server's 403 response remains the
// sole authorization authority.
package roles

import "fmt"

// Role is a role name as issued by the server at login time.
type Role string

const (
	// Admin has full access, including user management.
	Admin Role = "admin"
	// ProductManager can manage products and categories.
	ProductManager Role = "product_manager"
	// Viewer has read-only access to products and categories.
	Viewer Role = "viewer"
)

// rank orders roles for Allowed. Higher rank implies every capability of
// lower ranks.
var rank = map[Role]int{
	Viewer:         1,
	ProductManager: 2,
	Admin:          3,
}

// Parse validates a role string against the closed set.
func Parse(s string) (Role, error) {
	r := Role(s)
	if _, ok := rank[r]; !ok {
		return "", fmt.Errorf("unknown role: %q (valid: admin, product_manager, viewer)", s)
	}
	return r, nil
}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	_, ok := rank[r]
	return ok
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// Allowed reports whether an identity holding role have may use a feature
// gated on role required. Unknown roles are never allowed.
func Allowed(required, have Role) bool {
	req, ok := rank[required]
	if !ok {
		return false
	}
	got, ok := rank[have]
	if !ok {
		return false
	}
	return got >= req
}
