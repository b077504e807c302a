package api

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/jmoiron/sqlx"

	"summit-insurance/portal/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(db *sqlx.DB, uploadsDir string, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]entities.ServiceStatus)

		// Check postgres
		pgStatus := "ok"
		pgDetails := "Postgres Connected"
		if err := db.Ping(); err != nil {
			pgStatus = "down"
			pgDetails = err.Error()
		}
		services["postgres"] = entities.ServiceStatus{
			Status:  pgStatus,
			Details: pgDetails,
		}

		// Check resume storage
		storageStatus := "ok"
		storageDetails := "Uploads directory available"
		if info, err := os.Stat(uploadsDir); err != nil || !info.IsDir() {
			storageStatus = "down"
			storageDetails = "Uploads directory unavailable"
		}
		services["storage"] = entities.ServiceStatus{
			Status:  storageStatus,
			Details: storageDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		uptime := time.Since(upSince).Round(time.Second).String()

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
