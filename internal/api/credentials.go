package api

import (
	"errors"
	"net/http"

	"ecoentorno/internal/auth"
	"ecoentorno/internal/models"
)

type credentialRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Password   string `json:"password"`
}

func (h *Handler) CreateCredential(w http.ResponseWriter, r *http.Request) {
	var req credentialRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if req.EmployeeID <= 0 {
		badRequest(w, "employee_id must be a positive number")
		return
	}
	c, err := h.d.Credentials.Register(r.Context(), req.EmployeeID, req.Password)
	if err != nil {
		h.credentialFail(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) ListCredentials(w http.ResponseWriter, r *http.Request) {
	creds, err := h.d.Credentials.List(r.Context())
	if err != nil {
		h.internal(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, nonNil(creds))
}

// UpdateCredential: без password (или с пустым) хэш не меняется.
func (h *Handler) UpdateCredential(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "employee_id")
	if !ok {
		badRequest(w, "invalid employee id")
		return
	}
	var req credentialRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	c, err := h.d.Credentials.Update(r.Context(), id, req.Password)
	if err != nil {
		h.credentialFail(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) DeleteCredential(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "employee_id")
	if !ok {
		badRequest(w, "invalid employee id")
		return
	}
	if err := h.d.Credentials.Delete(r.Context(), id); err != nil {
		h.credentialFail(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "credential deleted"})
}

func (h *Handler) credentialFail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrEmptyPassword), errors.Is(err, auth.ErrPasswordTooLong):
		badRequest(w, err.Error())
	default:
		h.fail(w, r, err, "credential not found")
	}
}
