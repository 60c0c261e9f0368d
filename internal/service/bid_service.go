package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abhidesai17/gigflow/internal/model"
	"github.com/abhidesai17/gigflow/internal/store"
)

type BidService struct {
	gigs store.GigStore
	bids store.BidStore
}

func NewBidService(gigs store.GigStore, bids store.BidStore) *BidService {
	return &BidService{gigs: gigs, bids: bids}
}

type CreateBidInput struct {
	GigID         uuid.UUID
	BidderID      uuid.UUID
	Message       string
	ProposedPrice float64
}

// CreateBid guards bid creation: the gig must exist and be open, owners
// cannot bid on their own gigs, and a bidder gets at most one bid per gig.
func (s *BidService) CreateBid(ctx context.Context, input CreateBidInput) (*model.Bid, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidRequest)
	}
	if input.ProposedPrice < 0 {
		return nil, fmt.Errorf("%w: proposed price must be non-negative", ErrInvalidRequest)
	}

	gig, err := s.gigs.GetByID(ctx, input.GigID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: gig", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: load gig: %v", ErrStoreUnavailable, err)
	}
	if gig.Status != model.GigStatusOpen {
		return nil, fmt.Errorf("%w: gig is not open for bidding", ErrConflict)
	}
	if gig.OwnerID == input.BidderID {
		return nil, fmt.Errorf("%w: cannot bid on your own gig", ErrInvalidRequest)
	}

	bid := &model.Bid{
		GigID:         gig.ID,
		BidderID:      input.BidderID,
		Message:       message,
		ProposedPrice: input.ProposedPrice,
		Status:        model.BidStatusPending,
	}
	if err := s.bids.Create(ctx, bid); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("%w: you have already bid on this gig", ErrConflict)
		}
		return nil, fmt.Errorf("%w: create bid: %v", ErrStoreUnavailable, err)
	}
	return bid, nil
}

// ListBidsForGig is restricted to the gig's owner.
func (s *BidService) ListBidsForGig(ctx context.Context, requesterID, gigID uuid.UUID) ([]model.Bid, error) {
	gig, err := s.gigs.GetByID(ctx, gigID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: gig", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: load gig: %v", ErrStoreUnavailable, err)
	}
	if gig.OwnerID != requesterID {
		return nil, fmt.Errorf("%w: only the gig owner can view bids", ErrForbidden)
	}

	bids, err := s.bids.ListForGig(ctx, gigID)
	if err != nil {
		return nil, fmt.Errorf("%w: list bids: %v", ErrStoreUnavailable, err)
	}
	return bids, nil
}
