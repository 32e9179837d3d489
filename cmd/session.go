package main

import (
	"net/http"

	"github.com/visionpay/fieldops/internal/capture"
	"github.com/visionpay/fieldops/internal/datasync"
	"github.com/visionpay/fieldops/internal/forms"
	"github.com/visionpay/fieldops/internal/notify"
	"github.com/visionpay/fieldops/internal/panel"
	"github.com/visionpay/fieldops/internal/settings"
	"github.com/visionpay/fieldops/internal/state"
	"github.com/visionpay/fieldops/internal/workflow"
	"github.com/visionpay/fieldops/pkg/walker"
)

// session holds one wired dashboard session: the walker client, the
// entity store, and every controller operating on them.
type session struct {
	Client    walker.Client
	Store     *state.Store
	Syncer    *datasync.Controller
	Drafts    *forms.Drafts
	Panels    *panel.Controller
	Settings  *settings.Settings
	Feed      *notify.Feed
	Workflows *workflow.Workflows
	Capture   *capture.Machine
}

// initSession validates config and wires a session. CLI commands notify
// through the console and the feed both; the feed is what `serve` hands
// to the browser.
func initSession() (*session, error) {
	if err := cfg.Validate("client"); err != nil {
		return nil, err
	}

	client := walker.NewClient(
		walker.WithBaseURL(cfg.Walker.BaseURL),
		walker.WithHTTPClient(&http.Client{Timeout: cfg.Walker.Timeout()}),
		walker.WithRateLimit(cfg.Walker.RateLimit),
	)

	store := state.New()
	syncer := datasync.NewController(client, store)
	drafts := forms.NewDrafts()
	panels := panel.NewController()

	set := settings.New()
	set.SetRadiusKM(cfg.Defaults.RadiusKM)
	set.SetFrequency(settings.PaydayFrequency(cfg.Defaults.PaydayFrequency))

	feed := notify.NewFeed(cfg.Defaults.NotificationKeep)
	notifier := notify.Multi{notify.Console{}, feed}

	return &session{
		Client:    client,
		Store:     store,
		Syncer:    syncer,
		Drafts:    drafts,
		Panels:    panels,
		Settings:  set,
		Feed:      feed,
		Workflows: workflow.New(client, store, syncer, drafts, panels, set, notifier),
		Capture:   capture.NewMachine(drafts, panels, notifier, nil),
	}, nil
}
