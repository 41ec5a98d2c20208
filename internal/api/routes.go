package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"ecoentorno/internal/auth"
	"ecoentorno/internal/models"
)

type Dependencies struct {
	Auth        Authenticator
	Issuer      *auth.Issuer
	Credentials CredentialManager
	Users       UserStore
	Weights     WeightStore
	EPP         EPPStore
}

var (
	admin       = models.RoleAdministrator
	coordinator = models.RoleCoordinator
	operator    = models.RoleOperator
	eppUser     = models.RoleEPPUser
)

func only(roles ...models.Role) func(http.HandlerFunc) http.Handler {
	mw := auth.RequireRole(roles...)
	return func(f http.HandlerFunc) http.Handler { return mw(f) }
}

// Attach регистрирует /login и защищённое /api/v1.
func Attach(r *mux.Router, d Dependencies) {
	h := &Handler{d: d}

	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.JWTMiddleware(d.Issuer))

	weights := api.PathPrefix("/weights").Subrouter()
	weights.Use(auth.RequireRole(admin, coordinator, operator))
	weights.HandleFunc("", h.CreateWeight).Methods(http.MethodPost)
	weights.HandleFunc("", h.ListWeights).Methods(http.MethodGet)
	weights.HandleFunc("/{employee_id:[0-9]+}", h.GetWeightByEmployee).Methods(http.MethodGet)

	epp := api.PathPrefix("/epp-deliveries").Subrouter()
	epp.Use(auth.RequireRole(admin, coordinator, eppUser))
	epp.HandleFunc("", h.CreateEPPDelivery).Methods(http.MethodPost)
	epp.HandleFunc("", h.ListEPPDeliveries).Methods(http.MethodGet)
	epp.HandleFunc("/{employee_id:[0-9]+}", h.GetEPPDeliveryByEmployee).Methods(http.MethodGet)

	adminOnly := only(admin)
	readers := only(admin, coordinator)

	users := api.PathPrefix("/users").Subrouter()
	users.Handle("", adminOnly(h.CreateUser)).Methods(http.MethodPost)
	users.Handle("", readers(h.ListUsers)).Methods(http.MethodGet)
	users.Handle("/{document_id:[0-9]+}", readers(h.GetUser)).Methods(http.MethodGet)
	users.Handle("/{document_id:[0-9]+}", adminOnly(h.UpdateUser)).Methods(http.MethodPut)
	users.Handle("/{document_id:[0-9]+}", adminOnly(h.DeleteUser)).Methods(http.MethodDelete)

	creds := api.PathPrefix("/credentials").Subrouter()
	creds.Use(auth.RequireRole(admin))
	creds.HandleFunc("", h.CreateCredential).Methods(http.MethodPost)
	creds.HandleFunc("", h.ListCredentials).Methods(http.MethodGet)
	creds.HandleFunc("/{employee_id:[0-9]+}", h.UpdateCredential).Methods(http.MethodPut)
	creds.HandleFunc("/{employee_id:[0-9]+}", h.DeleteCredential).Methods(http.MethodDelete)
}
