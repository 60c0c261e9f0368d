package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abhidesai17/gigflow/internal/model"
	"github.com/abhidesai17/gigflow/internal/store"
)

type GigService struct {
	gigs store.GigStore
}

func NewGigService(gigs store.GigStore) *GigService {
	return &GigService{gigs: gigs}
}

type CreateGigInput struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Budget      float64
}

func (s *GigService) CreateGig(ctx context.Context, input CreateGigInput) (*model.Gig, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description are required", ErrInvalidRequest)
	}
	if input.Budget < 0 {
		return nil, fmt.Errorf("%w: budget must be non-negative", ErrInvalidRequest)
	}

	gig := &model.Gig{
		OwnerID:     input.OwnerID,
		Title:       title,
		Description: description,
		Budget:      input.Budget,
		Status:      model.GigStatusOpen,
	}
	if err := s.gigs.Create(ctx, gig); err != nil {
		return nil, fmt.Errorf("%w: create gig: %v", ErrStoreUnavailable, err)
	}
	return gig, nil
}

// ListOpenGigs is public: only open gigs are visible, optionally filtered
// by a case-insensitive substring match on title.
func (s *GigService) ListOpenGigs(ctx context.Context, search string) ([]model.Gig, error) {
	gigs, err := s.gigs.ListOpen(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("%w: list gigs: %v", ErrStoreUnavailable, err)
	}
	return gigs, nil
}
