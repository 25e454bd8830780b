// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	userstore "github.com/unitops/rollcall/internal/app/store/users"
	"github.com/unitops/rollcall/internal/app/system/auth"
	"github.com/unitops/rollcall/internal/app/system/normalize"
	"github.com/unitops/rollcall/internal/app/system/timeouts"
	"github.com/unitops/rollcall/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Users      *userstore.Store
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		SessionMgr: sessionMgr,
		Users:      userstore.New(db),
	}
}

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Email     string
	ReturnURL string
}

// ServeLogin handles GET /login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, signed := auth.CurrentUser(r); signed {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
		ReturnURL: strings.TrimSpace(r.URL.Query().Get("return")),
	}
	templates.Render(w, r, "login", data)
}

// HandleLoginPost handles POST /login.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, "", "", "Could not read the form. Please try again.")
		return
	}

	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")
	ret := strings.TrimSpace(r.FormValue("return"))

	if email == "" || password == "" {
		h.renderError(w, r, email, ret, "Email and password are required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			h.Log.Error("login: user lookup failed", zap.Error(err))
		}
		h.renderError(w, r, email, ret, "Invalid email or password.")
		return
	}

	if !userstore.VerifyPassword(u, password) {
		h.renderError(w, r, email, ret, "Invalid email or password.")
		return
	}

	su := auth.SessionUser{
		ID:        u.ID.Hex(),
		Name:      u.FullName,
		Role:      u.Role,
		DataScope: u.DataScope,
	}
	if u.HomeFrameworkID != nil {
		su.HomeFrameworkID = u.HomeFrameworkID.Hex()
	}

	if err := h.SessionMgr.SignIn(w, r, su); err != nil {
		h.Log.Error("login: session sign-in failed", zap.Error(err))
		h.renderError(w, r, email, ret, "Could not start a session. Please try again.")
		return
	}

	dest := "/dashboard"
	// Only honor same-site return targets.
	if ret != "" && strings.HasPrefix(ret, "/") && !strings.HasPrefix(ret, "//") {
		dest = ret
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, email, ret, msg string) {
	data := loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
		Error:     msg,
		Email:     email,
		ReturnURL: ret,
	}
	templates.Render(w, r, "login", data)
}
