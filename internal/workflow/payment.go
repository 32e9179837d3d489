package workflow

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/visionpay/fieldops/internal/notify"
	"github.com/visionpay/fieldops/pkg/walker"
)

// RecordPayment records a payment for a pending member, sending the
// client-cached amount and officer assignment. The cache can be stale
// relative to the server; the wrong-amount risk is accepted rather than
// having the server re-derive the values.
func (w *Workflows) RecordPayment(ctx context.Context, memberID int) error {
	member, ok := w.store.MemberByID(memberID)
	if !ok {
		err := eris.Errorf("workflow: member %d not found", memberID)
		notify.Error(w.notifier, "Member %d not found", memberID)
		return err
	}
	if member.PaymentStatus != walker.PaymentPending {
		err := eris.Errorf("workflow: member %d is %s, only pending payments can be recorded", memberID, member.PaymentStatus)
		notify.Error(w.notifier, "Member %s is %s; only pending payments can be recorded", member.Name, member.PaymentStatus)
		return err
	}

	if err := w.runStage("record_payment", "write", func() error {
		return w.client.RecordPayment(ctx, walker.PaymentRequest{
			MemberID:  memberID,
			Amount:    member.Amount,
			OfficerID: member.OfficerID,
		})
	}); err != nil {
		notify.Error(w.notifier, "Failed to record payment: %v", err)
		return err
	}

	notify.Success(w.notifier, "Payment recorded for %s", member.Name)

	if err := w.runStage("record_payment", "refresh", func() error {
		return w.syncer.Refresh(ctx)
	}); err != nil {
		notify.Error(w.notifier, "Refresh failed: %v", err)
		return err
	}
	return nil
}
