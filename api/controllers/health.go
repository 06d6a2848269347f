package controllers

import (
	"context"
	"net/http"

	"github.com/lukustore/lukustore-backend/api/responses"
	"github.com/lukustore/lukustore-backend/pkg/config"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
	"github.com/lukustore/lukustore-backend/pkg/logger"
)

const envHeader = "X-LukuStore-Env"

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness of the datasource dependencies. A nil
// pinger is treated as not wired and skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbPinger, redisPinger pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		checks := map[string]pinger{
			"database": dbPinger,
			"redis":    redisPinger,
		}
		status := map[string]string{}
		ready := true

		for name, p := range checks {
			if p == nil {
				status[name] = "skipped"
				continue
			}
			if err := p.Ping(r.Context()); err != nil {
				status[name] = "down"
				ready = false
				if logg != nil {
					ctx := logg.WithField(r.Context(), "dependency", name)
					logg.Error(ctx, "health.dependency_down", err)
				}
				continue
			}
			status[name] = "up"
		}

		if !ready {
			responses.WriteError(r.Context(), nil, w,
				pkgerrors.New(pkgerrors.CodeDependency, "dependency not ready").WithDetails(status))
			return
		}
		responses.WriteSuccess(w, status)
	}
}
