package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"ecoentorno/internal/models"
)

// Pinger — проверка доступности хранилища для /readyz.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// GormPinger достаёт *sql.DB из gorm. nil db — in-memory режим, всегда готов.
type GormPinger struct{ DB *gorm.DB }

func (p GormPinger) PingContext(ctx context.Context) error {
	if p.DB == nil {
		return nil
	}
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// RegisterRoutes — /healthz, /readyz и /metrics.
func RegisterRoutes(r *mux.Router, p Pinger) {
	r.HandleFunc("/healthz", liveness).Methods(http.MethodGet)
	r.HandleFunc("/readyz", readiness(p)).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

func liveness(w http.ResponseWriter, _ *http.Request) {
	models.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func readiness(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := p.PingContext(ctx); err != nil {
			models.WriteProblem(w, http.StatusServiceUnavailable, "db unreachable", nil)
			return
		}
		models.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
