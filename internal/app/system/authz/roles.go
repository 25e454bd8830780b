// internal/app/system/authz/roles.go
package authz

// Operator roles, from most to least privileged.
const (
	RoleAdmin     = "admin"
	RoleCommander = "commander"
	RoleSergeant  = "sergeant"
	RoleViewer    = "viewer"
)
