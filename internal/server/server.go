// Package server is the local dashboard BFF: a thin HTTP surface over
// the orchestration core so a web frontend can drive the same workflows
// the CLI does.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/visionpay/fieldops/internal/capture"
	"github.com/visionpay/fieldops/internal/datasync"
	"github.com/visionpay/fieldops/internal/forms"
	"github.com/visionpay/fieldops/internal/notify"
	"github.com/visionpay/fieldops/internal/panel"
	"github.com/visionpay/fieldops/internal/settings"
	"github.com/visionpay/fieldops/internal/state"
	"github.com/visionpay/fieldops/internal/view"
	"github.com/visionpay/fieldops/internal/workflow"
)

// Deps are the collaborators the handler operates on. One set of deps is
// one dashboard session; the BFF is single-tenant like the UI it backs.
type Deps struct {
	Store          *state.Store
	Syncer         *datasync.Controller
	Drafts         *forms.Drafts
	Panels         *panel.Controller
	Settings       *settings.Settings
	Feed           *notify.Feed
	Workflows      *workflow.Workflows
	Capture        *capture.Machine
	AllowedOrigins []string
}

// NewHandler mounts the dashboard API.
func NewHandler(d Deps) http.Handler {
	r := chi.NewRouter()

	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", func(w http.ResponseWriter, r *http.Request) {
			respond(w, http.StatusOK, view.Reconcile(d.Store, d.Panels, d.Settings))
		})

		r.Get("/notifications", func(w http.ResponseWriter, r *http.Request) {
			respond(w, http.StatusOK, d.Feed.All())
		})

		r.Post("/refresh", func(w http.ResponseWriter, r *http.Request) {
			if err := d.Syncer.Refresh(r.Context()); err != nil {
				fail(w, err)
				return
			}
			respond(w, http.StatusOK, map[string]string{"status": "refreshed"})
		})

		r.Post("/officers", func(w http.ResponseWriter, r *http.Request) {
			var req officerForm
			if !parse(w, r, &req) {
				return
			}
			d.Drafts.SetOfficer(req.draft())
			if err := d.Workflows.AddOfficer(r.Context()); err != nil {
				fail(w, err)
				return
			}
			respond(w, http.StatusOK, map[string]string{"status": "added"})
		})

		r.Post("/members", func(w http.ResponseWriter, r *http.Request) {
			var req memberForm
			if !parse(w, r, &req) {
				return
			}
			d.Drafts.SetMember(req.draft())
			if err := d.Workflows.AddMember(r.Context()); err != nil {
				fail(w, err)
				return
			}
			respond(w, http.StatusOK, map[string]string{"status": "added"})
		})

		r.Post("/payments", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				MemberID int `json:"member_id"`
			}
			if !parse(w, r, &req) {
				return
			}
			if err := d.Workflows.RecordPayment(r.Context(), req.MemberID); err != nil {
				fail(w, err)
				return
			}
			respond(w, http.StatusOK, map[string]string{"status": "recorded"})
		})

		r.Post("/assign", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				RadiusKM *int `json:"radius_km"`
			}
			if !parse(w, r, &req) {
				return
			}
			if req.RadiusKM != nil {
				d.Settings.SetRadiusKM(*req.RadiusKM)
			}
			if err := d.Workflows.AutoAssign(r.Context()); err != nil {
				fail(w, err)
				return
			}
			respond(w, http.StatusOK, map[string]int{"radius_km": d.Settings.RadiusKM()})
		})

		r.Post("/route", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				OfficerID int `json:"officer_id"`
			}
			if !parse(w, r, &req) {
				return
			}
			if err := d.Workflows.ViewRoute(r.Context(), req.OfficerID); err != nil {
				fail(w, err)
				return
			}
			respond(w, http.StatusOK, view.Reconcile(d.Store, d.Panels, d.Settings).Route)
		})

		r.Post("/insights", func(w http.ResponseWriter, r *http.Request) {
			if err := d.Workflows.GenerateInsights(r.Context()); err != nil {
				fail(w, err)
				return
			}
			respond(w, http.StatusOK, map[string]string{"insights": d.Store.Insights()})
		})

		r.Post("/capture/map", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Form string `json:"form"`
			}
			if !parse(w, r, &req) {
				return
			}
			var form forms.FormType
			switch req.Form {
			case "officer":
				form = forms.FormOfficer
			case "member":
				form = forms.FormMember
			default:
				respond(w, http.StatusBadRequest, map[string]string{"detail": "form must be officer or member"})
				return
			}
			d.Capture.BeginMapCapture(form)
			respond(w, http.StatusOK, map[string]string{"status": "listening"})
		})

		r.Post("/capture/click", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			}
			if !parse(w, r, &req) {
				return
			}
			handled := d.Capture.HandleMapClick(req.Lat, req.Lng)
			respond(w, http.StatusOK, map[string]bool{"handled": handled})
		})
	})

	return r
}

// officerForm and memberForm carry the raw form text the frontend
// collected. Values stay strings; coercion is the workflows' job.
type officerForm struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

func (f officerForm) draft() forms.OfficerDraft {
	return forms.OfficerDraft{ID: f.ID, Name: f.Name, Latitude: f.Latitude, Longitude: f.Longitude}
}

type memberForm struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Latitude      string `json:"latitude"`
	Longitude     string `json:"longitude"`
	Amount        string `json:"amount"`
	PaymentStatus string `json:"payment_status"`
	OfficerID     string `json:"officer_id"`
	PaymentDate   string `json:"payment_date"`
}

func (f memberForm) draft() forms.MemberDraft {
	return forms.MemberDraft{
		ID: f.ID, Name: f.Name, Latitude: f.Latitude, Longitude: f.Longitude,
		Amount: f.Amount, PaymentStatus: f.PaymentStatus, OfficerID: f.OfficerID,
		PaymentDate: f.PaymentDate,
	}
}

func parse(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return false
	}
	return true
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Warn("server: encode response", zap.Error(err))
	}
}

// fail maps any workflow error to 502. The workflows have already posted
// details to the notification feed; the status only tells the frontend
// to re-pull it.
func fail(w http.ResponseWriter, err error) {
	respond(w, http.StatusBadGateway, map[string]string{"detail": err.Error()})
}
