package api

import (
	"net/http"
	"strings"

	"ecoentorno/internal/models"
)

type eppRequest struct {
	EmployeeID   int64  `json:"employee_id"`
	Item         string `json:"item"`
	Quantity     int    `json:"quantity"`
	DeliveredOn  string `json:"delivered_on"`
	Observations string `json:"observations"`
}

func (h *Handler) CreateEPPDelivery(w http.ResponseWriter, r *http.Request) {
	var req eppRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	req.Item = strings.TrimSpace(req.Item)
	switch {
	case req.EmployeeID <= 0:
		badRequest(w, "employee_id must be a positive number")
		return
	case req.Item == "":
		badRequest(w, "item is required")
		return
	case req.Quantity <= 0:
		badRequest(w, "quantity must be positive")
		return
	}
	day, err := parseDate(req.DeliveredOn)
	if err != nil {
		badRequest(w, "delivered_on must be YYYY-MM-DD")
		return
	}

	d := &models.EPPDelivery{
		EmployeeID:   req.EmployeeID,
		Item:         req.Item,
		Quantity:     req.Quantity,
		DeliveredOn:  day,
		Observations: req.Observations,
	}
	if err := h.d.EPP.Create(r.Context(), d); err != nil {
		h.internal(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusCreated, d)
}

func (h *Handler) ListEPPDeliveries(w http.ResponseWriter, r *http.Request) {
	out, err := h.d.EPP.List(r.Context())
	if err != nil {
		h.internal(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, nonNil(out))
}

func (h *Handler) GetEPPDeliveryByEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "employee_id")
	if !ok {
		badRequest(w, "invalid employee id")
		return
	}
	d, err := h.d.EPP.FirstByEmployee(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "EPP delivery not found")
		return
	}
	models.WriteJSON(w, http.StatusOK, d)
}
