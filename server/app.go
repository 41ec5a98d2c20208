package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"ecoentorno/config"
	"ecoentorno/internal/api"
	"ecoentorno/internal/auth"
	"ecoentorno/internal/db"
	"ecoentorno/internal/health"
	"ecoentorno/internal/logs"
	"ecoentorno/internal/middleware"
	"ecoentorno/internal/repo"
)

type App struct {
	cfg        *config.Config
	db         *gorm.DB
	Router     *mux.Router
	Handler    http.Handler
	httpServer *http.Server

	ctx    context.Context
	cancel context.CancelFunc
}

type stores struct {
	users   api.UserStore
	creds   auth.CredentialStore
	weights api.WeightStore
	epp     api.EPPStore
}

func (a *App) Initialize(cfg *config.Config) error {
	a.cfg = cfg

	/* 1) Логи */
	if err := logs.Init(logs.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}); err != nil {
		return err
	}

	/* 2) DB (опционально) */
	d, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("db open failed: %w", err)
	}
	a.db = d
	if err := db.Migrate(a.db); err != nil {
		return fmt.Errorf("db migrate failed: %w", err)
	}

	s := a.newStores()

	/* 3) Аутентификация */
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	credentials := auth.NewCredentials(s.creds, hasher)
	authSvc, err := auth.NewService(s.creds, s.users, hasher, issuer)
	if err != nil {
		return fmt.Errorf("auth init failed: %w", err)
	}

	if cfg.Seed.File != "" {
		if err := auth.SeedFromFile(context.Background(), cfg.Seed.File, s.users, credentials); err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	/* 4) Router + middleware */
	a.Router = mux.NewRouter().StrictSlash(true)
	a.Router.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.LoggerMW,
		middleware.Metrics,
	)

	health.RegisterRoutes(a.Router, health.GormPinger{DB: a.db})
	api.Attach(a.Router, api.Dependencies{
		Auth:        authSvc,
		Issuer:      issuer,
		Credentials: credentials,
		Users:       s.users,
		Weights:     s.weights,
		EPP:         s.epp,
	})

	a.Handler = middleware.CORS(cfg.CORS.AllowedOrigins)(a.Router)

	_ = a.Router.Walk(func(rt *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, err := rt.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, _ := rt.GetMethods()
		if len(methods) == 0 {
			methods = []string{"ANY"}
		}
		logs.Logger.Debugf("route: %-6v %s", methods, path)
		return nil
	})
	return nil
}

// newStores: gorm при настроенной БД, иначе in-memory.
func (a *App) newStores() stores {
	if a.db == nil {
		logs.Logger.Warn("database.driver is empty: using in-memory stores, data is lost on restart")
		return stores{
			users:   repo.NewMemoryUserStore(),
			creds:   repo.NewMemoryCredentialStore(),
			weights: repo.NewMemoryWeightStore(),
			epp:     repo.NewMemoryEPPStore(),
		}
	}
	return stores{
		users:   repo.NewUserStore(a.db),
		creds:   repo.NewCredentialStore(a.db),
		weights: repo.NewWeightStore(a.db),
		epp:     repo.NewEPPStore(a.db),
	}
}

func (a *App) Run() error {
	if a.Handler == nil || a.cfg == nil {
		return fmt.Errorf("server not initialized")
	}

	bind := net.JoinHostPort(a.cfg.Server.Address, a.cfg.Server.HTTPPort)

	a.ctx, a.cancel = context.WithCancel(context.Background())
	defer a.cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case s := <-sigs:
			logs.Logger.Infof("shutdown signal: %s", s)
			a.cancel()
		case <-a.ctx.Done():
		}
	}()

	a.httpServer = &http.Server{
		Addr:              bind,
		Handler:           a.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logs.Logger.Infof("HTTP listening on %s", bind)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-a.ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		logs.Logger.Errorf("http shutdown: %v", err)
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return nil
}
