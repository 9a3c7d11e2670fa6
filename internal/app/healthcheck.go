package app

import (
	"context"
	"net/http"
	"time"

	"github.com/metinatakli/content-catalog/api"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	dbConnected    = "connected"
	dbDisconnected = "disconnected"
)

func (app *Application) GetServiceInfo(w http.ResponseWriter, r *http.Request) {
	resp := api.ServiceInfo{
		Status:  "ok",
		Service: serviceName,
		Version: version,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetHealth always answers 200; store reachability is reported in the body.
func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	db := dbConnected

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if app.store == nil {
		db = dbDisconnected
	} else if err := app.store.Ping(ctx, readpref.Primary()); err != nil {
		app.logger.Warn("store ping failed", "error", err)
		db = dbDisconnected
	}

	resp := api.HealthcheckResponse{
		Status: "healthy",
		DB:     db,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
