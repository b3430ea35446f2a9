// Package contextkeys defines the request context keys set by the
// authentication middleware.
package contextkeys

type contextKey string

const (
	// AuthUserKey holds the resolved anonymous identity (db.User).
	AuthUserKey contextKey = "auth_user"
	// IsAdminKey holds a bool marking a valid admin session.
	IsAdminKey contextKey = "is_admin"
	// AdminClaimsKey holds the parsed admin session claims (*auth.Claims).
	AdminClaimsKey contextKey = "admin_claims"
)
