// Package datasync fetches the four read endpoints and reconciles their
// results into the entity store.
package datasync

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/visionpay/fieldops/internal/state"
	"github.com/visionpay/fieldops/pkg/walker"
)

// Controller is the single mutation path into the entity store's fetched
// collections. Every mutation workflow funnels through Refresh.
type Controller struct {
	client walker.Client
	store  *state.Store
}

// NewController creates a data sync controller.
func NewController(client walker.Client, store *state.Store) *Controller {
	return &Controller{client: client, store: store}
}

// Refresh issues the four reads in parallel and replaces the corresponding
// store fields. The reads are independent: each successful response lands
// in the store even when a sibling fails. A list endpoint returning a
// non-array payload is degraded to an empty collection; a stats failure or
// a list transport failure is returned to the caller. Overlapping refreshes
// are last-write-wins per field; there is no de-duplication, so a slow
// stale response can overwrite a fresher one.
func (c *Controller) Refresh(ctx context.Context) error {
	log := zap.L().Named("datasync")

	// Deliberately not errgroup.WithContext: one failing read must not
	// cancel its siblings.
	var g errgroup.Group

	g.Go(func() error {
		stats, err := c.client.GetDashboardStats(ctx)
		if err != nil {
			// Headline counters have no sane zero-state fallback, so a
			// stats failure is the caller's problem.
			return err
		}
		c.store.SetStats(*stats)
		return nil
	})

	g.Go(func() error {
		officers, err := c.client.GetOfficers(ctx)
		if err != nil {
			if errors.Is(err, walker.ErrMalformedPayload) {
				log.Warn("officers payload malformed, using empty collection", zap.Error(err))
				c.store.SetOfficers(nil)
				return nil
			}
			return err
		}
		c.store.SetOfficers(officers)
		return nil
	})

	g.Go(func() error {
		members, err := c.client.GetMembers(ctx)
		if err != nil {
			if errors.Is(err, walker.ErrMalformedPayload) {
				log.Warn("members payload malformed, using empty collection", zap.Error(err))
				c.store.SetMembers(nil)
				return nil
			}
			return err
		}
		c.store.SetMembers(members)
		return nil
	})

	g.Go(func() error {
		zones, err := c.client.AnalyzeRiskZones(ctx)
		if err != nil {
			if errors.Is(err, walker.ErrMalformedPayload) {
				log.Warn("risk zones payload malformed, using empty collection", zap.Error(err))
				c.store.SetRiskZones(nil)
				return nil
			}
			return err
		}
		c.store.SetRiskZones(zones)
		return nil
	})

	return g.Wait()
}
