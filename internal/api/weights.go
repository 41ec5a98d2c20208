package api

import (
	"net/http"
	"strings"

	"ecoentorno/internal/models"
)

type weightRequest struct {
	EmployeeID int64   `json:"employee_id"`
	Shift      string  `json:"shift"`
	Area       string  `json:"area"`
	WeightKg   float64 `json:"weight_kg"`
	RecordedOn string  `json:"recorded_on"`
	Notes      string  `json:"notes"`
}

func (h *Handler) CreateWeight(w http.ResponseWriter, r *http.Request) {
	var req weightRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	req.Shift = strings.TrimSpace(req.Shift)
	switch {
	case req.EmployeeID <= 0:
		badRequest(w, "employee_id must be a positive number")
		return
	case req.Shift == "":
		badRequest(w, "shift is required")
		return
	case req.WeightKg < 0:
		badRequest(w, "weight_kg must not be negative")
		return
	}
	day, err := parseDate(req.RecordedOn)
	if err != nil {
		badRequest(w, "recorded_on must be YYYY-MM-DD")
		return
	}

	rec := &models.WeightRecord{
		EmployeeID: req.EmployeeID,
		Shift:      req.Shift,
		Area:       strings.TrimSpace(req.Area),
		WeightKg:   req.WeightKg,
		RecordedOn: day,
		Notes:      req.Notes,
	}
	if err := h.d.Weights.Create(r.Context(), rec); err != nil {
		h.internal(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusCreated, rec)
}

func (h *Handler) ListWeights(w http.ResponseWriter, r *http.Request) {
	out, err := h.d.Weights.List(r.Context())
	if err != nil {
		h.internal(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, nonNil(out))
}

func (h *Handler) GetWeightByEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "employee_id")
	if !ok {
		badRequest(w, "invalid employee id")
		return
	}
	rec, err := h.d.Weights.FirstByEmployee(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "weight record not found")
		return
	}
	models.WriteJSON(w, http.StatusOK, rec)
}
