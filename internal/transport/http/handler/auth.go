package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/promo-api-nosql/internal/application/auth"
	"github.com/promo-api-nosql/internal/pkg/state"
)

const stateCookie = "oauth_state"

// AuthHandler runs the browser-facing half of the SSO flow.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler { return &AuthHandler{svc: svc} }

// Login redirects the browser to the chosen provider's consent page.
// The CSRF state is pinned in a short-lived cookie for the callback.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	s, err := state.New()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	url, err := h.svc.AuthCodeURL(chi.URLParam(r, "provider"), s)
	if err != nil {
		httpError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    s,
		Path:     "/login",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
	})
	http.Redirect(w, r, url, http.StatusFound)
}

// Callback completes the flow: state must match the login cookie, then
// the code is exchanged and an identity token returned.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		writeError(w, http.StatusUnauthorized, "oauth state mismatch")
		return
	}
	res, err := h.svc.Login(r.Context(), chi.URLParam(r, "provider"), r.URL.Query().Get("code"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TokenEnvelope{Token: res.Token, User: res.User})
}
