package workflow

import (
	"context"

	"github.com/visionpay/fieldops/internal/notify"
)

// AddOfficer runs the add-officer pipeline for the pending officer draft:
// validate and coerce, write, clear the draft and close the modal, then
// refresh, reassign, refresh.
func (w *Workflows) AddOfficer(ctx context.Context) error {
	draft := w.drafts.Officer()

	req, err := draft.ToRequest()
	if err != nil {
		// Validation failure: no network call, no state change.
		notify.Error(w.notifier, "Please fill all fields: %v", err)
		return err
	}

	if err := w.runStage("add_officer", "write", func() error {
		return w.client.AddOfficer(ctx, req)
	}); err != nil {
		notify.Error(w.notifier, "Failed to add officer: %v", err)
		return err
	}

	notify.Success(w.notifier, "Officer %s added", req.Name)
	w.drafts.ResetOfficer()
	w.panels.CloseModal()

	return w.runAddPipeline(ctx, "add_officer")
}
