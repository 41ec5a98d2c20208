package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/datatypes"

	"ecoentorno/internal/auth"
	"ecoentorno/internal/logs"
	"ecoentorno/internal/middleware"
	"ecoentorno/internal/models"
	"ecoentorno/internal/repo"
)

const maxBodyBytes = 1 << 20

// Authenticator — сценарий логина.
type Authenticator interface {
	Login(ctx context.Context, employeeID int64, password string) (*auth.LoginResult, error)
}

// CredentialManager — управление учётными данными.
type CredentialManager interface {
	Register(ctx context.Context, employeeID int64, password string) (*models.Credential, error)
	Update(ctx context.Context, employeeID int64, newPassword string) (*models.Credential, error)
	List(ctx context.Context) ([]models.Credential, error)
	Delete(ctx context.Context, employeeID int64) error
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Get(ctx context.Context, documentID int64) (*models.User, error)
	List(ctx context.Context, query string) ([]models.User, error)
	Update(ctx context.Context, documentID int64, in repo.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, documentID int64) error
}

type WeightStore interface {
	Create(ctx context.Context, w *models.WeightRecord) error
	List(ctx context.Context) ([]models.WeightRecord, error)
	FirstByEmployee(ctx context.Context, employeeID int64) (*models.WeightRecord, error)
}

type EPPStore interface {
	Create(ctx context.Context, d *models.EPPDelivery) error
	List(ctx context.Context) ([]models.EPPDelivery, error)
	FirstByEmployee(ctx context.Context, employeeID int64) (*models.EPPDelivery, error)
}

type Handler struct {
	d Dependencies
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// decodeOptionalJSON допускает пустое тело запроса.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if err := decodeJSON(w, r, v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func badRequest(w http.ResponseWriter, msg string) {
	models.WriteProblem(w, http.StatusBadRequest, msg, nil)
}

// pathID — положительный числовой идентификатор из пути.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// fail отображает ошибки хранилища в HTTP. Неожиданные ошибки логируются
// целиком, клиенту уходит только общий текст.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteProblem(w, http.StatusNotFound, notFound, nil)
	case errors.Is(err, repo.ErrConflict):
		models.WriteProblem(w, http.StatusConflict, "record already exists", nil)
	default:
		h.internal(w, r, err)
	}
}

func (h *Handler) internal(w http.ResponseWriter, r *http.Request, err error) {
	reqid := middleware.GetRequestID(r)
	logs.Logger.Errorf("reqid=%s method=%s uri=%s err=%v", reqid, r.Method, r.RequestURI, err)
	models.WriteProblem(w, http.StatusInternalServerError, "internal server error", map[string]any{
		"reqid": reqid,
	})
}

// parseDate: YYYY-MM-DD; пустая строка — сегодняшняя дата (UTC).
func parseDate(s string) (datatypes.Date, error) {
	if s == "" {
		return datatypes.Date(time.Now().UTC().Truncate(24 * time.Hour)), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
