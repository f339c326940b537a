// cmd/server/main.go
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/tahcohcat/puravida-web/config"
	"github.com/tahcohcat/puravida-web/internal/api"
	"github.com/tahcohcat/puravida-web/internal/auth"
	"github.com/tahcohcat/puravida-web/internal/game"
	"github.com/tahcohcat/puravida-web/internal/logger"
	"github.com/tahcohcat/puravida-web/internal/notify"
	"github.com/tahcohcat/puravida-web/internal/proximity"
	"github.com/tahcohcat/puravida-web/internal/store"
	"github.com/tahcohcat/puravida-web/internal/websocket"
)

func main() {
	// Load config from files and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Configure(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	log := logger.New()

	st, _ := store.Open(cfg, log)
	defer st.Close()

	// Notification sinks: log lines, prometheus counters, websocket push
	registry := prometheus.NewRegistry()
	hub := websocket.NewHub(log)
	go hub.Run()
	defer hub.Stop()
	sink := notify.Multi(notify.NewLogSink(log), notify.NewMetricsSink(registry), hub)

	engine := game.NewEngine(st, game.WithSink(sink), game.WithLogger(log))
	sim := proximity.NewSimulator(proximity.NewSource(cfg.Game.Seed), cfg.Game.CheckInSuccessRate)
	handler := api.NewHandler(engine, api.Options{
		Simulator:       sim,
		Sink:            sink,
		NearbyExplorers: cfg.Game.NearbyExplorers,
		Logger:          log,
	})
	gate := auth.NewGate(cfg.Auth, log)

	r := mux.NewRouter()

	// Public routes (no authentication required)
	r.HandleFunc("/login", gate.LoginHandler).Methods("GET", "POST")
	r.HandleFunc("/logout", gate.LogoutHandler).Methods("POST", "GET")
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods("GET")

	// Authenticated routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(gate.AuthMiddleware)

	api.RegisterRoutes(authRouter.PathPrefix("/api/v1").Subrouter(), handler)
	websocket.RegisterRoutes(authRouter, hub)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).WithField("storage", cfg.Storage.Driver).WithField("auth", gate.Enabled()).
		Info("Pura Vida server starting")

	if err := http.ListenAndServe(":"+port, c.Handler(r)); err != nil {
		log.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
