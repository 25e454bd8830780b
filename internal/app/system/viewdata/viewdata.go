// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/unitops/rollcall/internal/app/system/authz"
)

// BaseVM contains the fields every page template needs. Embed it in
// feature-specific view models:
//
//	type pageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	Title      string
	IsLoggedIn bool
	Role       string
	UserName   string
	BackURL    string
}

// NewBaseVM fills the common fields from the request context.
func NewBaseVM(r *http.Request, title, backURL string) BaseVM {
	role, name, _, signedIn := authz.UserCtx(r)
	return BaseVM{
		Title:      title,
		IsLoggedIn: signedIn,
		Role:       role,
		UserName:   name,
		BackURL:    backURL,
	}
}
