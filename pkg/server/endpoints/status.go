package endpoints

import (
	"net/http"
	"time"

	"github.com/robohub/robohub/pkg/server"
	"github.com/robohub/robohub/pkg/server/apierror"
	"github.com/robohub/robohub/pkg/server/store"
)

const (
	platformName    = "RoboHub"
	platformVersion = "1.0.0"
)

// RegisterStatusEndpoints registers the health and version endpoints
func RegisterStatusEndpoints(s *server.Server) {
	healthStore := s.HealthStore

	s.Router.HandleFunc("/health", handleHealth(healthStore)).Methods("GET")
	s.Router.HandleFunc("/api/health", handleHealth(healthStore)).Methods("GET")
	s.Router.HandleFunc("/api/version", handleVersion()).Methods("GET")

	s.Router.NotFoundHandler = http.HandlerFunc(handleNotFound)
}

func handleHealth(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		database := "connected"
		code := http.StatusOK
		if err := healthStore.CheckConnectivity(); err != nil {
			database = "unavailable"
			code = http.StatusServiceUnavailable
		}

		respondWithJSON(w, code, map[string]interface{}{
			"status":    statusWord(code),
			"database":  database,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func handleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{
			"platform": platformName,
			"version":  platformVersion,
		})
	}
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, apierror.New(apierror.NotFound, "Resource not found"))
}

func statusWord(code int) string {
	if code == http.StatusOK {
		return "healthy"
	}
	return "degraded"
}
