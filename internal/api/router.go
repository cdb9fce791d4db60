package api

import (
	"arena-route-planner/internal/api/handlers"
	"arena-route-planner/internal/ports"
	"arena-route-planner/internal/services"
	"log"
	"net/http"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type RouterConfig struct {
	Session   *services.Session
	Repo      ports.LayoutRepository
	StoreName string
	HitRadius float64
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of the concrete layout store.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter().StrictSlash(true)

	health := &handlers.HealthHandler{Store: cfg.StoreName}
	route := &handlers.RouteHandler{Session: cfg.Session, HitRadius: cfg.HitRadius}
	layouts := &handlers.LayoutHandler{Session: cfg.Session, Repo: cfg.Repo}

	r.HandleFunc("/health", health.Health).Methods(http.MethodGet)

	r.HandleFunc("/route", route.Get).Methods(http.MethodGet)
	r.HandleFunc("/route/waypoints", route.AddWaypoint).Methods(http.MethodPost)
	r.HandleFunc("/route/toggle", route.Toggle).Methods(http.MethodPost)
	r.HandleFunc("/route/landmarks", route.AddLandmark).Methods(http.MethodPost)
	r.HandleFunc("/route/obstacles", route.AddObstacle).Methods(http.MethodPost)
	r.HandleFunc("/route/reset", route.Reset).Methods(http.MethodPost)
	r.HandleFunc("/route/config", route.SetConfig).Methods(http.MethodPut)
	r.HandleFunc("/route/analysis", route.Analysis).Methods(http.MethodGet)
	r.HandleFunc("/route/info", route.Info).Methods(http.MethodGet)

	r.HandleFunc("/layout", layouts.Export).Methods(http.MethodGet)
	r.HandleFunc("/layout", layouts.Import).Methods(http.MethodPut)
	r.HandleFunc("/layouts", layouts.List).Methods(http.MethodGet)
	r.HandleFunc("/layouts/{name}", layouts.Save).Methods(http.MethodPut)
	r.HandleFunc("/layouts/{name}/load", layouts.Load).Methods(http.MethodPost)

	recovery := gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(log.Default()),
		gorillahandlers.PrintRecoveryStack(true),
	)

	return requestIDMiddleware(loggingMiddleware(recovery(r)))
}
