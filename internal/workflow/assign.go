package workflow

import (
	"context"

	"github.com/visionpay/fieldops/internal/notify"
)

// AutoAssign runs the server-side proximity assignment with the session's
// radius and refreshes.
func (w *Workflows) AutoAssign(ctx context.Context) error {
	radius := w.settings.RadiusKM()

	var assigned int
	if err := w.runStage("auto_assign", "assign", func() error {
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

	notify.Success(w.notifier, "Assigned %d members within %dkm", assigned, radius)

	if err := w.runStage("auto_assign", "refresh", func() error {
		return w.syncer.Refresh(ctx)
	}); err != nil {
		notify.Error(w.notifier, "Refresh failed: %v", err)
		return err
	}
	return nil
}
