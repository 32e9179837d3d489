package workflow

import (
	"context"

	"github.com/visionpay/fieldops/internal/notify"
)

// ViewRoute fetches the optimized route for one officer and replaces the
// held route with it. The previous selection, whoever it belonged to, is
// discarded entirely.
func (w *Workflows) ViewRoute(ctx context.Context, officerID int) error {
	if err := w.runStage("view_route", "optimize", func() error {
		route, err := w.client.OptimizeRoute(ctx, officerID)
		if err != nil {
			return err
		}
		w.store.SetRoute(officerID, *route)
		return nil
	}); err != nil {
		notify.Error(w.notifier, "Failed to compute route: %v", err)
		return err
	}
	return nil
}
