package workflow

import (
	"context"

	"github.com/visionpay/fieldops/internal/notify"
)

// AddMember runs the add-member pipeline for the pending member draft.
// Shape matches AddOfficer: a reassignment failure after a successful
// write is reported independently and never undoes the add.
func (w *Workflows) AddMember(ctx context.Context) error {
	draft := w.drafts.Member()

	req, err := draft.ToRequest()
	if err != nil {
		notify.Error(w.notifier, "Please fill all required fields: %v", err)
		return err
	}

	if err := w.runStage("add_member", "write", func() error {
		return w.client.AddMember(ctx, req)
	}); err != nil {
		notify.Error(w.notifier, "Failed to add member: %v", err)
		return err
	}

	notify.Success(w.notifier, "Member %s added", req.Name)
	w.drafts.ResetMember()
	w.panels.CloseModal()

	return w.runAddPipeline(ctx, "add_member")
}
