package api

import (
	"net/http"
	"strings"

	"ecoentorno/internal/models"
	"ecoentorno/internal/repo"
)

type userRequest struct {
	DocumentID int64       `json:"document_id"`
	Name       string      `json:"name"`
	Surname    string      `json:"surname"`
	Role       models.Role `json:"role"`
}

func (u *userRequest) validate(requireID bool) string {
	u.Name = strings.TrimSpace(u.Name)
	u.Surname = strings.TrimSpace(u.Surname)
	switch {
	case requireID && u.DocumentID <= 0:
		return "document_id must be a positive number"
	case u.Name == "" || u.Surname == "":
		return "name and surname are required"
	case !u.Role.Valid():
		return "invalid role"
	}
	return ""
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if msg := req.validate(true); msg != "" {
		badRequest(w, msg)
		return
	}
	u := &models.User{
		DocumentID: req.DocumentID,
		Name:       req.Name,
		Surname:    req.Surname,
		Role:       req.Role,
	}
	if err := h.d.Users.Create(r.Context(), u); err != nil {
		h.fail(w, r, err, "user not found")
		return
	}
	models.WriteJSON(w, http.StatusCreated, u)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.d.Users.List(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.internal(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, nonNil(users))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "document_id")
	if !ok {
		badRequest(w, "invalid document id")
		return
	}
	u, err := h.d.Users.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "user not found")
		return
	}
	models.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "document_id")
	if !ok {
		badRequest(w, "invalid document id")
		return
	}
	var req userRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if msg := req.validate(false); msg != "" {
		badRequest(w, msg)
		return
	}
	u, err := h.d.Users.Update(r.Context(), id, repo.UserUpdate{
		Name:    req.Name,
		Surname: req.Surname,
		Role:    req.Role,
	})
	if err != nil {
		h.fail(w, r, err, "user not found")
		return
	}
	models.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "document_id")
	if !ok {
		badRequest(w, "invalid document id")
		return
	}
	if err := h.d.Users.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err, "user not found")
		return
	}
	models.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "user deleted"})
}
