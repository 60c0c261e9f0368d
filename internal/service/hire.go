package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhidesai17/gigflow/internal/model"
	"github.com/abhidesai17/gigflow/internal/notify"
	"github.com/abhidesai17/gigflow/internal/store"
)

// HireCoordinator moves a gig from open to assigned and a bid from pending
// to hired, guaranteeing at most one winner under concurrent hire attempts.
//
// The store offers only single-row conditional updates, so the two-entity
// transition is decomposed into two compare-and-set steps plus a
// compensation path:
//
//	Step A: gig open → assigned (the lock; only one caller can win)
//	Step B: bid pending → hired (commit; compensated on failure)
//	Step C: remaining pending bids → rejected (best effort)
type HireCoordinator struct {
	gigs    store.GigStore
	bids    store.BidStore
	emitter notify.Emitter
	log     zerolog.Logger
}

func NewHireCoordinator(gigs store.GigStore, bids store.BidStore, emitter notify.Emitter, log zerolog.Logger) *HireCoordinator {
	return &HireCoordinator{gigs: gigs, bids: bids, emitter: emitter, log: log}
}

// HireResult carries the post-transition snapshots returned to the caller.
type HireResult struct {
	Gig      *model.Gig
	HiredBid *model.Bid
}

// Hire executes the hire protocol for the given bid on behalf of the
// requester. Any precondition failure or lost race aborts without mutation;
// only a caller that wins Step A proceeds to commit.
func (c *HireCoordinator) Hire(ctx context.Context, requesterID, bidID uuid.UUID) (*HireResult, error) {
	bid, err := c.bids.GetByID(ctx, bidID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: bid", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: load bid: %v", ErrStoreUnavailable, err)
	}

	gig, err := c.gigs.GetByID(ctx, bid.GigID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: gig", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: load gig: %v", ErrStoreUnavailable, err)
	}

	if gig.OwnerID != requesterID {
		return nil, fmt.Errorf("%w: only the gig owner can hire", ErrForbidden)
	}

	// Redundant with the owner check above, but kept as an independent
	// invariant: an owner must never hire their own bid.
	if bid.BidderID == requesterID {
		return nil, fmt.Errorf("%w: cannot hire your own bid", ErrInvalidRequest)
	}

	if gig.Status != model.GigStatusOpen {
		return nil, fmt.Errorf("%w: gig already assigned", ErrConflict)
	}

	if bid.Status != model.BidStatusPending {
		return nil, fmt.Errorf("%w: bid is not pending", ErrConflict)
	}

	// Step A: lock the gig. Exactly one concurrent caller observes the
	// open → assigned transition succeed.
	updatedGig, err := c.gigs.CompareAndSetStatus(ctx, gig.ID, model.GigStatusOpen, model.GigStatusAssigned)
	if err != nil {
		if errors.Is(err, store.ErrStatusMismatch) {
			return nil, fmt.Errorf("%w: gig already assigned", ErrConflict)
		}
		return nil, fmt.Errorf("%w: lock gig: %v", ErrStoreUnavailable, err)
	}

	// Step B: commit the winner. Step A already serialized concurrent hire
	// attempts, so a mismatch here means the bid changed status through
	// some other path; compensate so the gig is not stuck assigned with
	// no hired bid.
	updatedBid, err := c.bids.CompareAndSetStatus(ctx, bid.ID, model.BidStatusPending, model.BidStatusHired)
	if err != nil {
		if errors.Is(err, store.ErrStatusMismatch) {
			c.compensate(ctx, gig.ID)
			return nil, fmt.Errorf("%w: bid is not pending", ErrConflict)
		}
		c.compensate(ctx, gig.ID)
		return nil, fmt.Errorf("%w: commit bid: %v", ErrStoreUnavailable, err)
	}

	// Step C: reject the losers. Idempotent and order-independent; a
	// failure here never rolls back A/B, read-side rules hide leftover
	// pending bids of an assigned gig.
	if _, err := c.bids.RejectOtherPending(ctx, gig.ID, bid.ID); err != nil {
		c.log.Error().Err(err).
			Str("gig_id", gig.ID.String()).
			Str("bid_id", bid.ID.String()).
			Msg("loser rejection failed")
	}

	c.emitter.Emit(ctx, model.HiredEvent{
		Type:       model.EventTypeHired,
		GigID:      updatedGig.ID,
		HiredBidID: updatedBid.ID,
		OwnerID:    updatedGig.OwnerID,
		BidderID:   updatedBid.BidderID,
	})

	return &HireResult{Gig: updatedGig, HiredBid: updatedBid}, nil
}

// compensate reverts the gig to open after a failed Step B, unless some bid
// for the gig is already hired.
func (c *HireCoordinator) compensate(ctx context.Context, gigID uuid.UUID) {
	hired, err := c.bids.HasHired(ctx, gigID)
	if err != nil {
		c.log.Error().Err(err).Str("gig_id", gigID.String()).Msg("compensation check failed")
		return
	}
	if hired {
		return
	}
	if _, err := c.gigs.CompareAndSetStatus(ctx, gigID, model.GigStatusAssigned, model.GigStatusOpen); err != nil &&
		!errors.Is(err, store.ErrStatusMismatch) {
		c.log.Error().Err(err).Str("gig_id", gigID.String()).Msg("gig reopen failed")
	}
}
