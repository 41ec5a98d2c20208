package models

import (
	"encoding/json"
	"net/http"
)

// Problem — единый формат ответа об ошибке.
// Поле message обязательно: клиенты показывают его пользователю как есть.
type Problem struct {
	Title   string `json:"title"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Extra   any    `json:"extra,omitempty"`
}

func WriteProblem(w http.ResponseWriter, status int, message string, extra any) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Problem{
		Title:   http.StatusText(status),
		Status:  status,
		Message: message,
		Extra:   extra,
	})
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// MessageResponse — ответ без полезной нагрузки (удаление и т.п.).
type MessageResponse struct {
	Message string `json:"message"`
}
