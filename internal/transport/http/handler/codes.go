package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/promo-api-nosql/internal/application/code"
	"github.com/promo-api-nosql/internal/domain"
	"github.com/promo-api-nosql/internal/pkg/validate"
	"github.com/promo-api-nosql/internal/transport/http/middleware"
)

// CodeHandler handles the code endpoints nested under a game. The
// ownership check lives in the code service; handlers only shape the
// request and the response.
type CodeHandler struct {
	svc code.Service
}

func NewCodeHandler(svc code.Service) *CodeHandler { return &CodeHandler{svc: svc} }

func (h *CodeHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	codes, err := h.svc.List(r.Context(), claims.UserID, chi.URLParam(r, "gameId"))
	if err != nil {
		httpError(w, err)
		return
	}
	if codes == nil {
		codes = []domain.Code{}
	}
	writeJSON(w, http.StatusOK, codes)
}

func (h *CodeHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	c, err := h.svc.Get(r.Context(), claims.UserID, chi.URLParam(r, "gameId"), chi.URLParam(r, "codeId"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CodeHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	c, ok := decodeCode(w, r)
	if !ok {
		return
	}
	created, err := h.svc.Create(r.Context(), claims.UserID, c)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *CodeHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	c, ok := decodeCode(w, r)
	if !ok {
		return
	}
	updated, err := h.svc.Update(r.Context(), claims.UserID, c)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CodeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := h.svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "gameId"), chi.URLParam(r, "codeId")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "code deleted"})
}

// decodeCode parses the body and pins the game id to the URL: a body
// naming a different game cannot smuggle a code into another partition.
func decodeCode(w http.ResponseWriter, r *http.Request) (domain.Code, bool) {
	var c domain.Code
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return c, false
	}
	c.GameID = chi.URLParam(r, "gameId")
	if err := validate.Struct(c); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return c, false
	}
	return c, true
}
