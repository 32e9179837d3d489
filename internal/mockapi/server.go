package mockapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/visionpay/fieldops/pkg/walker"
)

// NewHandler mounts the ten walker operations on a chi router. CORS is
// wide open; this server only ever runs against local dev frontends.
func NewHandler(data *Dataset) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/walker", func(r chi.Router) {
		r.Post("/GetDashboardStats", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, data.Stats())
		})
		r.Post("/GetOfficers", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, data.Officers())
		})
		r.Post("/GetMembers", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, data.Members())
		})
		r.Post("/AnalyzeRiskZones", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, data.RiskZones())
		})

		r.Post("/AddOfficer", func(w http.ResponseWriter, r *http.Request) {
			var req walker.AddOfficerRequest
			if !decode(w, r, &req) {
				return
			}
			if err := data.AddOfficer(req); err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "created"})
		})

		r.Post("/AddMember", func(w http.ResponseWriter, r *http.Request) {
			var req walker.AddMemberRequest
			if !decode(w, r, &req) {
				return
			}
			if err := data.AddMember(req); err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "created"})
		})

		r.Post("/AssignMembersToOfficers", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				RadiusKM int `json:"radius_km"`
			}
			if !decode(w, r, &req) {
				return
			}
			count, err := data.Assign(req.RadiusKM)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, walker.AssignResult{AssignedCount: count})
		})

		r.Post("/OptimizeRoute", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				OfficerID int `json:"officer_id"`
			}
			if !decode(w, r, &req) {
				return
			}
			route, err := data.Route(req.OfficerID)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, route)
		})

		r.Post("/GenerateAISummary", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, data.Summary())
		})

		r.Post("/RecordPayment", func(w http.ResponseWriter, r *http.Request) {
			var req walker.PaymentRequest
			if !decode(w, r, &req) {
				return
			}
			if err := data.RecordPayment(req); err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
		})
	})

	return r
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Warn("mockapi: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"detail": err.Error()})
}
