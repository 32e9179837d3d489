// Package workflow sequences the mutation pipelines: validate, write,
// refresh, and (for adds) reassign. Stages run strictly in order; a stage
// failure aborts the workflow there but never rolls back a completed
// stage, and every failure is reported through the notifier.
package workflow

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/visionpay/fieldops/internal/datasync"
	"github.com/visionpay/fieldops/internal/forms"
	"github.com/visionpay/fieldops/internal/notify"
	"github.com/visionpay/fieldops/internal/panel"
	"github.com/visionpay/fieldops/internal/settings"
	"github.com/visionpay/fieldops/internal/state"
	"github.com/visionpay/fieldops/pkg/walker"
)

// Workflows drives every user-triggered mutation. Nothing here retries
// automatically; a retry is the user re-invoking the action.
type Workflows struct {
	client   walker.Client
	store    *state.Store
	syncer   *datasync.Controller
	drafts   *forms.Drafts
	panels   *panel.Controller
	settings *settings.Settings
	notifier notify.Notifier
}

// New wires the workflows to their collaborators.
func New(
	client walker.Client,
	store *state.Store,
	syncer *datasync.Controller,
	drafts *forms.Drafts,
	panels *panel.Controller,
	set *settings.Settings,
	notifier notify.Notifier,
) *Workflows {
	return &Workflows{
		client:   client,
		store:    store,
		syncer:   syncer,
		drafts:   drafts,
		panels:   panels,
		settings: set,
		notifier: notifier,
	}
}

// runStage executes one named stage, logging its duration and outcome.
func (w *Workflows) runStage(workflow, stage string, fn func() error) error {
	log := zap.L().Named("workflow").With(zap.String("workflow", workflow), zap.String("stage", stage))

	start := time.Now()
	err := fn()
	duration := time.Since(start)

	if err != nil {
		log.Error("stage failed", zap.Duration("duration", duration), zap.Error(err))
		return err
	}
	log.Info("stage complete", zap.Duration("duration", duration))
	return nil
}

// runAddPipeline is the shared add-officer/add-member tail: the write has
// already succeeded, so refresh, auto-assign with the session radius, and
// refresh again. The reassignment stage's failure is reported on its own
// and leaves the completed add in effect.
func (w *Workflows) runAddPipeline(ctx context.Context, name string) error {
	if err := w.runStage(name, "refresh", func() error {
		return w.syncer.Refresh(ctx)
	}); err != nil {
		notify.Error(w.notifier, "Refresh failed: %v", err)
		return err
	}

	radius := w.settings.RadiusKM()
	var assigned int
	if err := w.runStage(name, "reassign", func() error {
		result, err := w.client.AssignMembersToOfficers(ctx, radius)
		if err != nil {
			return err
		}
		assigned = result.AssignedCount
		return nil
	}); err != nil {
		notify.Error(w.notifier, "Auto-assignment failed: %v", err)
		return err
	}
	notify.Info(w.notifier, "Assigned %d members within %dkm", assigned, radius)

	if err := w.runStage(name, "refresh_after_assign", func() error {
		return w.syncer.Refresh(ctx)
	}); err != nil {
		notify.Error(w.notifier, "Refresh failed: %v", err)
		return err
	}

	return nil
}
