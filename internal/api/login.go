package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"ecoentorno/internal/auth"
	"ecoentorno/internal/models"
)

type loginRequest struct {
	// номер документа сотрудника: число или строка из цифр
	Username json.RawMessage `json:"username"`
	// nil — поле отсутствует; пустая строка — обычный неверный пароль
	Password *string `json:"password"`
}

type loginResponse struct {
	Message     string      `json:"message"`
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	Role        models.Role `json:"role"`
}

const msgBadCredentials = "incorrect username or password"

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, "invalid login payload")
		return
	}
	if len(req.Username) == 0 || req.Password == nil {
		badRequest(w, "username and password are required")
		return
	}

	employeeID, ok := parseUsername(req.Username)
	if !ok {
		models.WriteProblem(w, http.StatusUnauthorized, msgBadCredentials, nil)
		return
	}

	res, err := h.d.Auth.Login(r.Context(), employeeID, *req.Password)
	switch {
	case err == nil:
		models.WriteJSON(w, http.StatusOK, loginResponse{
			Message:     "login successful",
			AccessToken: res.AccessToken,
			TokenType:   res.TokenType,
			Role:        res.Role,
		})
	case errors.Is(err, auth.ErrAuthenticationFailed):
		models.WriteProblem(w, http.StatusUnauthorized, msgBadCredentials, nil)
	case errors.Is(err, auth.ErrInconsistentState):
		models.WriteProblem(w, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, auth.ErrInvalidRole):
		models.WriteProblem(w, http.StatusBadRequest, "invalid role", nil)
	default:
		h.internal(w, r, err)
	}
}

func parseUsername(raw json.RawMessage) (int64, bool) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		id, err := n.Int64()
		return id, err == nil && id > 0
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return id, err == nil && id > 0
}
