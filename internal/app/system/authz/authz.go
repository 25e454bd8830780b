// internal/app/system/authz/authz.go

// Package authz bridges the session layer and the policy layer: it reads
// the signed-in user out of the request and exposes role and scope
// accessors that handlers and policies consume.
package authz

import (
	"net/http"
	"strings"

	"github.com/unitops/rollcall/internal/app/system/auth"
	"github.com/unitops/rollcall/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCtx returns the user's role (lowercased), name, ObjectID, and a
// found flag. If no user is present or the user ID is malformed, it
// returns "visitor", "", NilObjectID, false, so ok=true always means a
// valid authenticated user.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in session; fail closed.
		return "visitor", "", primitive.NilObjectID, false
	}
	return strings.ToLower(user.Role), user.Name, userID, true
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleAdmin
}

// IsCommander reports whether the current request's user is a commander.
func IsCommander(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleCommander
}

// IsSergeant reports whether the current request's user is a sergeant.
func IsSergeant(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleSergeant
}

// CanEdit reports whether the current request's user holds an editing role
// at all; whether a specific soldier is in reach is the policy layer's
// call (policy/presencepolicy).
func CanEdit(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && (role == RoleAdmin || role == RoleCommander || role == RoleSergeant)
}

// UserScope returns the current user's data scope, defaulting to
// framework_only for safety when the session carries no scope.
func UserScope(r *http.Request) string {
	user, ok := auth.CurrentUser(r)
	if !ok || user.DataScope == "" {
		return models.ScopeFrameworkOnly
	}
	return user.DataScope
}

// UserHomeFramework returns the current user's home framework ID.
// NilObjectID when not signed in or not assigned.
func UserHomeFramework(r *http.Request) primitive.ObjectID {
	user, ok := auth.CurrentUser(r)
	if !ok || user.HomeFrameworkID == "" {
		return primitive.NilObjectID
	}
	oid, err := primitive.ObjectIDFromHex(user.HomeFrameworkID)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}
