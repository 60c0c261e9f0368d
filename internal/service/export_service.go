package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhidesai17/gigflow/internal/model"
	"github.com/abhidesai17/gigflow/internal/store"
)

type BidSheetWriter interface {
	Generate(gig model.Gig, bids []model.Bid) ([]byte, error)
	FileName(gig model.Gig) string
}

type AgreementWriter interface {
	Generate(doc model.AgreementDocument) ([]byte, error)
	FileName(gig model.Gig) string
}

// ExportService produces owner-only document downloads: the bid sheet for a
// gig and the hire agreement once the gig is assigned.
type ExportService struct {
	gigs      store.GigStore
	bids      store.BidStore
	users     store.UserStore
	bidSheet  BidSheetWriter
	agreement AgreementWriter
}

func NewExportService(gigs store.GigStore, bids store.BidStore, users store.UserStore, bidSheet BidSheetWriter, agreement AgreementWriter) *ExportService {
	return &ExportService{gigs: gigs, bids: bids, users: users, bidSheet: bidSheet, agreement: agreement}
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *ExportService) BidSheet(ctx context.Context, requesterID, gigID uuid.UUID) (*ExportResult, error) {
	gig, err := s.ownedGig(ctx, requesterID, gigID)
	if err != nil {
		return nil, err
	}

	bids, err := s.bids.ListForGig(ctx, gig.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: list bids: %v", ErrStoreUnavailable, err)
	}

	content, err := s.bidSheet.Generate(*gig, bids)
	if err != nil {
		return nil, err
	}
	return &ExportResult{FileName: s.bidSheet.FileName(*gig), Content: content}, nil
}

func (s *ExportService) Agreement(ctx context.Context, requesterID, gigID uuid.UUID) (*ExportResult, error) {
	gig, err := s.ownedGig(ctx, requesterID, gigID)
	if err != nil {
		return nil, err
	}
	if gig.Status != model.GigStatusAssigned {
		return nil, fmt.Errorf("%w: gig is not assigned yet", ErrConflict)
	}

	bids, err := s.bids.ListForGig(ctx, gig.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: list bids: %v", ErrStoreUnavailable, err)
	}
	var hired *model.Bid
	for i := range bids {
		if bids[i].Status == model.BidStatusHired {
			hired = &bids[i]
			break
		}
	}
	if hired == nil {
		// Assigned with no hired bid is the transient window between the
		// hire protocol's two steps; the caller may retry.
		return nil, fmt.Errorf("%w: no hired bid yet", ErrConflict)
	}

	doc := model.AgreementDocument{
		Gig:        *gig,
		HiredBid:   *hired,
		OwnerName:  s.userName(ctx, gig.OwnerID),
		BidderName: s.userName(ctx, hired.BidderID),
	}
	content, err := s.agreement.Generate(doc)
	if err != nil {
		return nil, err
	}
	return &ExportResult{FileName: s.agreement.FileName(*gig), Content: content}, nil
}

func (s *ExportService) ownedGig(ctx context.Context, requesterID, gigID uuid.UUID) (*model.Gig, error) {
	gig, err := s.gigs.GetByID(ctx, gigID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: gig", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: load gig: %v", ErrStoreUnavailable, err)
	}
	if gig.OwnerID != requesterID {
		return nil, fmt.Errorf("%w: only the gig owner can export documents", ErrForbidden)
	}
	return gig, nil
}

func (s *ExportService) userName(ctx context.Context, id uuid.UUID) string {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return ""
	}
	return user.Name
}
