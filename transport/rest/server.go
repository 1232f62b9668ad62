package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Start - starts the REST server on the given port.
func Start(port string, h Handlers) error {
	router := mux.NewRouter()

	router.HandleFunc("/ping", h.Ping).Methods(http.MethodGet)
	router.HandleFunc("/api/sections", h.Sections).Methods(http.MethodGet)
	router.HandleFunc("/api/theme", h.Theme).Methods(http.MethodGet)
	router.HandleFunc("/api/theme/toggle", h.ToggleTheme).Methods(http.MethodPost)
	router.HandleFunc("/api/contact", h.Contact).Methods(http.MethodPost)
	router.HandleFunc("/api/assist", h.Assist).Methods(http.MethodPost)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowCredentials(),
	)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      cors(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
