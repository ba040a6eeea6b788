package handler

import (
	"net/http"

	"github.com/Thomaslgrn/pdftotexte/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(extractHandler *ExtractHandler, requestLogger func(http.Handler) http.Handler) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.RootResponse{Message: domain.RootMessage})
	}).Methods(http.MethodGet)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.HealthResponse{Status: "healthy", Service: domain.ServiceName})
	}).Methods(http.MethodGet)

	router.HandleFunc("/extract", extractHandler.Extract).Methods(http.MethodPost)

	// Any origin is accepted. The origin is echoed back instead of "*" so
	// browsers honour Access-Control-Allow-Credentials.
	c := cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
			http.MethodConnect,
			http.MethodTrace,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           600,
	})

	return c.Handler(requestLogger(router))
}
